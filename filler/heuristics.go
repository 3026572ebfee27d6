package filler

import (
	"sort"

	"github.com/samber/lo"

	"github.com/wordgrid/crossfill/crossword"
)

// SelectUnassignedVariable picks the next slot to fill: the unassigned
// variable with the fewest remaining candidates (minimum remaining values),
// ties broken by the most neighbors (degree). Variables still tied after
// both heuristics are chosen by the filler's seeded generator, so a run is
// reproducible for a given seed.
func (f *Filler) SelectUnassignedVariable(assignment Assignment) crossword.Variable {
	unassigned := lo.Filter(f.cw.Variables, func(v crossword.Variable, _ int) bool {
		_, ok := assignment[v]
		return !ok
	})

	var best []crossword.Variable
	bestSize := -1
	for _, v := range unassigned {
		size := len(f.domains[v])
		if bestSize < 0 || size < bestSize {
			bestSize = size
			best = best[:0]
		}
		if size == bestSize {
			best = append(best, v)
		}
	}

	var tied []crossword.Variable
	bestDegree := -1
	for _, v := range best {
		degree := len(f.cw.Neighbors(v))
		if degree > bestDegree {
			bestDegree = degree
			tied = tied[:0]
		}
		if degree == bestDegree {
			tied = append(tied, v)
		}
	}

	return tied[f.rng.Intn(len(tied))]
}

// OrderDomainValues returns v's candidates ordered by how constraining they
// are: for each word, count across v's unassigned neighbors how many of the
// neighbor's candidates disagree at the shared cell, and try
// lowest-conflict words first. Assigned neighbors are skipped; their choice
// is already fixed. Equal counts fall back to lexicographic order, so the
// result is deterministic.
func (f *Filler) OrderDomainValues(v crossword.Variable, assignment Assignment) []string {
	words := lo.Keys(f.domains[v])

	conflicts := make(map[string]int, len(words))
	for _, w := range words {
		for _, n := range f.cw.Neighbors(v) {
			if _, assigned := assignment[n]; assigned {
				continue
			}
			ix, iy, _ := f.cw.Overlap(v, n)
			for nw := range f.domains[n] {
				if w[ix] != nw[iy] {
					conflicts[w]++
				}
			}
		}
	}

	sort.Slice(words, func(i, j int) bool {
		if conflicts[words[i]] != conflicts[words[j]] {
			return conflicts[words[i]] < conflicts[words[j]]
		}
		return words[i] < words[j]
	})
	return words
}
