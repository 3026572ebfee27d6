// Package crossword models the structure of a crossword puzzle: the grid of
// open and blocked cells, the word slots ("variables") the grid implies, the
// overlap relation between crossing slots, and the candidate word list.
// Everything here is immutable once constructed; the filler package consumes
// it read-only.
package crossword

import (
	"fmt"
)

type Direction uint8

const (
	Across Direction = iota
	Down
)

func (d Direction) String() string {
	if d == Across {
		return "across"
	}
	return "down"
}

// A Variable is one word slot: its starting cell, its length in letters, and
// whether it runs across or down. It is a comparable value type; two
// Variables are the same slot iff all four fields match, so it can be used
// directly as a map key.
type Variable struct {
	Row       int
	Col       int
	Length    int
	Direction Direction
}

func (v Variable) String() string {
	return fmt.Sprintf("(%d, %d) %s : %d", v.Row, v.Col, v.Direction, v.Length)
}

// Cell is a single grid coordinate.
type Cell struct {
	Row int
	Col int
}

// Cells returns the grid coordinates this variable occupies, in word order.
func (v Variable) Cells() []Cell {
	cells := make([]Cell, v.Length)
	for k := 0; k < v.Length; k++ {
		switch v.Direction {
		case Down:
			cells[k] = Cell{Row: v.Row + k, Col: v.Col}
		case Across:
			cells[k] = Cell{Row: v.Row, Col: v.Col + k}
		}
	}
	return cells
}

type overlap struct {
	// character index into the first and second variable's word, respectively
	ix int
	iy int
}

// Crossword is the puzzle model. Structure[r][c] is true when the cell is
// open (fillable). Words is the candidate vocabulary, upper-cased and
// deduplicated. Variables, the overlap table and the neighbor lists are
// derived at construction time and never change afterwards.
type Crossword struct {
	Height    int
	Width     int
	Structure [][]bool
	Words     []string
	Variables []Variable

	overlaps  map[[2]Variable]overlap
	neighbors map[Variable][]Variable
}

// New builds a Crossword from a structure grid and a word list, deriving the
// variable set from the grid: every maximal run of two or more open cells,
// across and down, is a slot.
func New(structure [][]bool, words []string) *Crossword {
	c := &Crossword{
		Height:    len(structure),
		Structure: structure,
		Words:     NormalizeWords(words),
	}
	for _, row := range structure {
		if len(row) > c.Width {
			c.Width = len(row)
		}
	}
	c.Variables = c.deriveVariables()
	c.computeOverlaps()
	return c
}

// NewWithVariables builds a Crossword with an explicitly supplied variable
// set instead of deriving one from the grid. Used by callers that construct
// puzzles programmatically (and by tests).
func NewWithVariables(structure [][]bool, words []string, vars []Variable) *Crossword {
	c := &Crossword{
		Height:    len(structure),
		Structure: structure,
		Words:     NormalizeWords(words),
		Variables: vars,
	}
	for _, row := range structure {
		if len(row) > c.Width {
			c.Width = len(row)
		}
	}
	c.computeOverlaps()
	return c
}

func (c *Crossword) open(row, col int) bool {
	if row < 0 || row >= len(c.Structure) {
		return false
	}
	if col < 0 || col >= len(c.Structure[row]) {
		return false
	}
	return c.Structure[row][col]
}

// deriveVariables scans the grid for maximal runs of open cells. A run only
// becomes a variable if it is at least two cells long; a lone open cell is
// not a slot in either direction.
func (c *Crossword) deriveVariables() []Variable {
	var vars []Variable
	for row := 0; row < c.Height; row++ {
		for col := 0; col < c.Width; col++ {
			if !c.open(row, col) {
				continue
			}
			// starts an across run?
			if !c.open(row, col-1) {
				length := 1
				for c.open(row, col+length) {
					length++
				}
				if length > 1 {
					vars = append(vars, Variable{Row: row, Col: col, Length: length, Direction: Across})
				}
			}
			// starts a down run?
			if !c.open(row-1, col) {
				length := 1
				for c.open(row+length, col) {
					length++
				}
				if length > 1 {
					vars = append(vars, Variable{Row: row, Col: col, Length: length, Direction: Down})
				}
			}
		}
	}
	return vars
}

// computeOverlaps fills the overlap table and neighbor lists by intersecting
// the cell sets of every ordered pair of distinct variables. Two slots in a
// rectangular grid can share at most one cell.
func (c *Crossword) computeOverlaps() {
	c.overlaps = make(map[[2]Variable]overlap)
	c.neighbors = make(map[Variable][]Variable)
	for _, x := range c.Variables {
		xcells := x.Cells()
		for _, y := range c.Variables {
			if x == y {
				continue
			}
			for ix, cell := range xcells {
				for iy, ycell := range y.Cells() {
					if cell == ycell {
						c.overlaps[[2]Variable{x, y}] = overlap{ix: ix, iy: iy}
						c.neighbors[x] = append(c.neighbors[x], y)
					}
				}
			}
		}
	}
}

// Overlap reports whether x and y cross, and if so at which character
// offsets: character ix of x's word must equal character iy of y's word.
func (c *Crossword) Overlap(x, y Variable) (ix, iy int, ok bool) {
	o, ok := c.overlaps[[2]Variable{x, y}]
	if !ok {
		return 0, 0, false
	}
	return o.ix, o.iy, true
}

// Neighbors returns the variables that share a cell with v. The returned
// slice is owned by the Crossword; callers must not modify it.
func (c *Crossword) Neighbors(v Variable) []Variable {
	return c.neighbors[v]
}

// OverlapPairs returns every ordered pair of crossing variables, in the
// (stable) order the variables were derived in.
func (c *Crossword) OverlapPairs() [][2]Variable {
	var pairs [][2]Variable
	for _, x := range c.Variables {
		for _, y := range c.Variables {
			if x == y {
				continue
			}
			if _, ok := c.overlaps[[2]Variable{x, y}]; ok {
				pairs = append(pairs, [2]Variable{x, y})
			}
		}
	}
	return pairs
}
