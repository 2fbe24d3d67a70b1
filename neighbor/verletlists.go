// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package neighbor builds VerletLists, the per-particle candidate
// interaction lists derived from a LinkedCells grid, and exposes a
// flat pair iterator over them.
//
// Under a fully periodic topology, the half-neighborhood stencil used
// here combined with LinkedCells' open-boundary neighbor-cell lookup
// misses pair candidates across the periodic seam (a particle in the
// first row or column can have neighbors in the last row or column
// that this stencil never visits). This is an accepted approximation,
// not a bug: it is accurate whenever the domain is many cells wide in
// the wrapped direction, and spec.md designates it the reference
// behavior rather than something to silently patch.
package neighbor

import (
	"errors"
	"fmt"

	"github.com/gophysics/mdsim2d/cells"
	"github.com/gophysics/mdsim2d/simdata"
)

// ErrInvalidArgument is wrapped by Create when cutoff is negative and
// sim holds at least one particle (an empty store yields empty lists
// without checking cutoff); callers can test for it with errors.Is.
var ErrInvalidArgument = errors.New("invalid argument")

// entry is one (id1, candidates) pair in enumeration order.
type entry struct {
	id1        int
	candidates []int
}

// VerletLists is a sequence of (id1, [id2, id2', ...]) entries, each
// listing candidate interacting partners of id1 found within the
// cutoff distance.
type VerletLists struct {
	entries  []entry
	numPairs int
}

// NumPairs returns the total number of (id1, id2) candidate pairs
// across all entries.
func (o *VerletLists) NumPairs() int {
	return o.numPairs
}

// Pair is one candidate interacting pair.
type Pair struct {
	ID1, ID2 int
}

// Pairs returns every (id1, id2) candidate pair in enumeration order:
// outer loop over cells (ix outermost, then iy), then particles within
// a cell, then each inner list in the order its candidates were found.
func (o *VerletLists) Pairs() []Pair {
	pairs := make([]Pair, 0, o.numPairs)
	for _, e := range o.entries {
		for _, id2 := range e.candidates {
			pairs = append(pairs, Pair{ID1: e.id1, ID2: id2})
		}
	}
	return pairs
}

// checkNeighbors appends to neighbors every id2 in idsToCheck whose
// distance to id1 is within radii[id1]+radii[id2]+cutoff.
func checkNeighbors(id1 int, idsToCheck []int, sim *simdata.SimData, cutoff float64, neighbors *[]int) error {
	for _, id2 := range idsToCheck {
		rsqr, err := sim.DistanceSqrBetween(id1, id2)
		if err != nil {
			return err
		}
		rdiff := sim.Radii[id1] + sim.Radii[id2] + cutoff
		if rsqr < rdiff*rdiff {
			*neighbors = append(*neighbors, id2)
		}
	}
	return nil
}

// halfStencil is the set of neighbor-cell offsets checked in addition
// to the same cell, chosen so that every unordered pair of particles in
// the same or adjacent cells is visited exactly once under an open
// boundary.
var halfStencil = [][2]int{
	{-1, 1}, {0, 1}, {1, 1}, {-1, 0},
}

// Create builds the verlet lists for sim at the given skin distance
// cutoff (cutoff >= 0). It uses the largest particle radius as the
// LinkedCells bin size and searches only the same and adjacent cells
// (the half-neighborhood stencil above), so a pair whose cells are not
// adjacent is not listed even when it lies within
// radii[id1]+radii[id2]+cutoff.
func Create(sim *simdata.SimData, cutoff float64) (*VerletLists, error) {
	if sim.IsEmpty() {
		return &VerletLists{}, nil
	}
	if cutoff < 0 {
		return nil, fmt.Errorf("%w: cutoff must be non-negative; got %v", ErrInvalidArgument, cutoff)
	}

	maxRadius := sim.Radii[0]
	for _, r := range sim.Radii[1:] {
		if r > maxRadius {
			maxRadius = r
		}
	}

	lc, err := cells.New(sim.Bounds, maxRadius)
	if err != nil {
		return nil, err
	}
	for id := 0; id < sim.NumParticles(); id++ {
		lc.AddParticle(sim.Positions[id], id)
	}

	var entries []entry
	numPairs := 0
	for ix := 0; ix < lc.NumX; ix++ {
		for iy := 0; iy < lc.NumY; iy++ {
			cell, _ := lc.GetCell(ix, iy)

			for i, id1 := range cell.ParticleIds {
				var neighbors []int

				for _, off := range halfStencil {
					if adj, ok := lc.GetAdjustedCell(ix, iy, off[0], off[1]); ok {
						if err := checkNeighbors(id1, adj.ParticleIds, sim, cutoff, &neighbors); err != nil {
							return nil, err
						}
					}
				}

				// Same cell, restricted to later slots to avoid
				// double-counting and self-pairs.
				if err := checkNeighbors(id1, cell.ParticleIds[i+1:], sim, cutoff, &neighbors); err != nil {
					return nil, err
				}

				if len(neighbors) > 0 {
					entries = append(entries, entry{id1: id1, candidates: neighbors})
					numPairs += len(neighbors)
				}
			}
		}
	}

	return &VerletLists{entries: entries, numPairs: numPairs}, nil
}
