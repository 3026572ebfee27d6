// Package filler fills a crossword by treating each word slot as a variable
// in a constraint satisfaction problem. Domains are pruned with node and arc
// consistency (AC-3) and the remaining space is searched with heuristic
// backtracking: minimum-remaining-values variable selection with a degree
// tie-break, least-constraining-value ordering, and arc consistency
// maintained incrementally after each tentative assignment.
package filler

import (
	"encoding/binary"
	"errors"
	"time"

	"github.com/rs/zerolog/log"
	"lukechampine.com/frand"

	"github.com/wordgrid/crossfill/crossword"
)

var ErrNoSolution = errors.New("no solution found")

// Assignment maps each assigned variable to its chosen word. A complete
// assignment covers every variable of the puzzle.
type Assignment map[crossword.Variable]string

type wordSet map[string]struct{}

func (ws wordSet) copy() wordSet {
	c := make(wordSet, len(ws))
	for w := range ws {
		c[w] = struct{}{}
	}
	return c
}

// Filler owns the mutable domain store for one solve. A Filler is not safe
// for concurrent use; create one per solve.
type Filler struct {
	cw      *crossword.Crossword
	domains map[crossword.Variable]wordSet
	rng     *frand.RNG

	// search counters, for logging
	nodes     int
	revisions int
}

type Option func(*Filler)

// WithSeed seeds the generator used to break ties in variable selection.
// Any given seed makes the whole search reproducible.
func WithSeed(seed uint64) Option {
	return func(f *Filler) {
		key := make([]byte, 32)
		binary.LittleEndian.PutUint64(key, seed)
		f.rng = frand.NewCustom(key, 1024, 12)
	}
}

// New creates a Filler for the given puzzle. Every variable's domain starts
// as the full vocabulary.
func New(cw *crossword.Crossword, opts ...Option) *Filler {
	f := &Filler{
		cw:      cw,
		domains: make(map[crossword.Variable]wordSet, len(cw.Variables)),
	}
	for _, v := range cw.Variables {
		dom := make(wordSet, len(cw.Words))
		for _, w := range cw.Words {
			dom[w] = struct{}{}
		}
		f.domains[v] = dom
	}
	for _, o := range opts {
		o(f)
	}
	if f.rng == nil {
		f.rng = frand.New()
	}
	return f
}

// Domain returns a copy of v's current candidate set.
func (f *Filler) Domain(v crossword.Variable) []string {
	words := make([]string, 0, len(f.domains[v]))
	for w := range f.domains[v] {
		words = append(words, w)
	}
	return words
}

// Solve enforces node consistency, runs a global arc consistency pass, and
// then backtracks to a complete assignment. It returns ErrNoSolution when
// the search space is exhausted.
//
// The result of the global AC-3 pass is intentionally not checked: if it
// empties a domain, that slot simply has no candidates left and the search
// fails there on its own.
func (f *Filler) Solve() (Assignment, error) {
	start := time.Now()
	f.EnforceNodeConsistency()
	f.AC3(nil)

	assignment := f.Backtrack(Assignment{})
	if assignment == nil {
		log.Info().Int("nodes", f.nodes).Int("revisions", f.revisions).
			Dur("elapsed", time.Since(start)).Msg("search exhausted")
		return nil, ErrNoSolution
	}
	log.Info().Int("nodes", f.nodes).Int("revisions", f.revisions).
		Dur("elapsed", time.Since(start)).Msg("filled")
	return assignment, nil
}

// EnforceNodeConsistency removes from every domain the words whose length
// differs from the slot's length.
func (f *Filler) EnforceNodeConsistency() {
	for v, dom := range f.domains {
		for w := range dom {
			if len(w) != v.Length {
				delete(dom, w)
			}
		}
	}
}

// Revise makes x arc consistent with y: it drops every word in x's domain
// that has no supporting word in y's current domain at their overlap. It
// reports whether anything was removed. A no-op if x and y don't cross.
func (f *Filler) Revise(x, y crossword.Variable) bool {
	ix, iy, ok := f.cw.Overlap(x, y)
	if !ok {
		return false
	}
	revised := false
	for w := range f.domains[x] {
		if !f.supported(w, ix, iy, y) {
			delete(f.domains[x], w)
			revised = true
		}
	}
	if revised {
		f.revisions++
	}
	return revised
}

func (f *Filler) supported(w string, ix, iy int, y crossword.Variable) bool {
	for yw := range f.domains[y] {
		if w[ix] == yw[iy] {
			return true
		}
	}
	return false
}

// AC3 runs worklist arc consistency propagation. If arcs is nil the
// worklist is seeded with every crossing ordered pair in the puzzle.
// Whenever revising (x, y) shrinks x's domain, the arcs (z, x) for every
// other neighbor z of x are requeued. Returns false as soon as any domain
// empties; true once the worklist drains.
func (f *Filler) AC3(arcs [][2]crossword.Variable) bool {
	if arcs == nil {
		arcs = f.cw.OverlapPairs()
	}
	queue := make([][2]crossword.Variable, len(arcs))
	copy(queue, arcs)

	for len(queue) > 0 {
		arc := queue[0]
		queue = queue[1:]
		x, y := arc[0], arc[1]
		if !f.Revise(x, y) {
			continue
		}
		if len(f.domains[x]) == 0 {
			return false
		}
		for _, z := range f.cw.Neighbors(x) {
			if z != y {
				queue = append(queue, [2]crossword.Variable{z, x})
			}
		}
	}
	return true
}

// inboundArcs returns the arcs (z, v) for every neighbor z of v, used to
// propagate a fresh assignment of v outward.
func (f *Filler) inboundArcs(v crossword.Variable) [][2]crossword.Variable {
	neighbors := f.cw.Neighbors(v)
	arcs := make([][2]crossword.Variable, 0, len(neighbors))
	for _, z := range neighbors {
		arcs = append(arcs, [2]crossword.Variable{z, v})
	}
	return arcs
}

func (f *Filler) copyDomains() map[crossword.Variable]wordSet {
	c := make(map[crossword.Variable]wordSet, len(f.domains))
	for v, dom := range f.domains {
		c[v] = dom.copy()
	}
	return c
}

// Consistent reports whether an assignment (partial or complete) violates
// no constraint: no word used twice, every crossing pair of assigned slots
// agrees at the shared cell, and every word fits its slot's length.
func (f *Filler) Consistent(assignment Assignment) bool {
	used := make(map[string]bool, len(assignment))
	for v, w := range assignment {
		if len(w) != v.Length {
			return false
		}
		if used[w] {
			return false
		}
		used[w] = true
		for _, n := range f.cw.Neighbors(v) {
			nw, ok := assignment[n]
			// A wrong-length neighbor word fails on its own turn through
			// the outer loop; skip it here so the overlap offset can't
			// index past its end.
			if !ok || len(nw) != n.Length {
				continue
			}
			ix, iy, _ := f.cw.Overlap(v, n)
			if w[ix] != nw[iy] {
				return false
			}
		}
	}
	return true
}

func (f *Filler) complete(assignment Assignment) bool {
	for _, v := range f.cw.Variables {
		if _, ok := assignment[v]; !ok {
			return false
		}
	}
	return true
}

// Backtrack recursively extends a partial assignment to a complete one, or
// returns nil if none is reachable. After each tentative assignment the
// slot's domain is collapsed to the chosen word and arc consistency is
// re-propagated from its neighbors; the domain store is snapshotted first
// and restored whenever the branch is abandoned, so a nil return always
// leaves the domains exactly as it found them.
func (f *Filler) Backtrack(assignment Assignment) Assignment {
	if f.complete(assignment) {
		return assignment
	}
	f.nodes++

	v := f.SelectUnassignedVariable(assignment)
	for _, word := range f.OrderDomainValues(v, assignment) {
		assignment[v] = word
		if f.Consistent(assignment) {
			snapshot := f.copyDomains()
			f.domains[v] = wordSet{word: {}}
			if !f.AC3(f.inboundArcs(v)) {
				// Discard the speculative pruning but keep the tentative
				// assignment: an emptied neighbor domain will surface as a
				// dead end one level down. Re-copy the snapshot so the
				// recursion below mutates a private map, not the one we
				// will restore from after it unwinds.
				f.domains = snapshot
				snapshot = f.copyDomains()
			}
			if result := f.Backtrack(assignment); result != nil {
				return result
			}
			f.domains = snapshot
		}
		delete(assignment, v)
	}
	return nil
}

// LetterGrid maps an assignment back onto grid coordinates. Cells not
// covered by any assigned word hold the zero rune.
func LetterGrid(cw *crossword.Crossword, assignment Assignment) [][]rune {
	letters := make([][]rune, cw.Height)
	for i := range letters {
		letters[i] = make([]rune, cw.Width)
	}
	for v, word := range assignment {
		for k, cell := range v.Cells() {
			letters[cell.Row][cell.Col] = rune(word[k])
		}
	}
	return letters
}

// LetterGrid is the method form of the package-level query, for callers
// that already hold a Filler.
func (f *Filler) LetterGrid(assignment Assignment) [][]rune {
	return LetterGrid(f.cw, assignment)
}
