// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cells implements LinkedCells, a uniform-grid spatial index
// over a rectangular domain. It is rebuilt from scratch every step by
// the neighbor package; it is never incrementally updated.
package cells

import (
	"errors"
	"fmt"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"

	"github.com/gophysics/mdsim2d/domain"
	"github.com/gophysics/mdsim2d/vec2"
)

// ErrInvalidArgument is wrapped by New when targetSize is not
// strictly positive; callers can test for it with errors.Is.
var ErrInvalidArgument = errors.New("invalid argument")

// Cell holds the indices of the particles currently binned into it.
type Cell struct {
	ParticleIds []int
}

// LinkedCells is a uniform grid of NumX x NumY cells over Bounds.
type LinkedCells struct {
	NumX, NumY            int
	CellWidth, CellHeight float64
	Bounds                domain.Bounds
	cells                 []Cell
}

// New builds a LinkedCells over bounds, sized so that each cell is
// approximately targetSize wide/tall: num_x = max(1, floor(width/s)),
// num_y = max(1, floor(height/s)). targetSize must be strictly
// positive.
func New(bounds domain.Bounds, targetSize float64) (*LinkedCells, error) {
	if targetSize <= 0 {
		return nil, fmt.Errorf("%w: target cell size must be greater than zero; got %v", ErrInvalidArgument, targetSize)
	}

	numX := int(utl.Max(1, float64(int(bounds.Width()/targetSize))))
	numY := int(utl.Max(1, float64(int(bounds.Height()/targetSize))))

	cw := bounds.Width() / float64(numX)
	ch := bounds.Height() / float64(numY)

	return &LinkedCells{
		NumX:       numX,
		NumY:       numY,
		CellWidth:  cw,
		CellHeight: ch,
		Bounds:     bounds,
		cells:      make([]Cell, numX*numY),
	}, nil
}

// index returns the flat, row-major index of cell (ix, iy).
func (o *LinkedCells) index(ix, iy int) int {
	return o.NumX*iy + ix
}

// GetCell returns the cell at (ix, iy), or (nil, false) if out of
// range.
func (o *LinkedCells) GetCell(ix, iy int) (*Cell, bool) {
	if ix < 0 || iy < 0 || ix >= o.NumX || iy >= o.NumY {
		return nil, false
	}
	return &o.cells[o.index(ix, iy)], true
}

// GetAdjustedCell returns the cell at (ix+dx, iy+dy), or (nil, false)
// if that cell is out of range. No wrapping is performed at this
// layer; wrapping (where applicable) is handled by the caller's
// minimum-image distance check, not by neighbor-cell lookup.
func (o *LinkedCells) GetAdjustedCell(ix, iy, dx, dy int) (*Cell, bool) {
	return o.GetCell(ix+dx, iy+dy)
}

// cellIndices returns the (ix, iy) cell coordinates for a point.
func (o *LinkedCells) cellIndices(x, y float64) (int, int) {
	ix := int((x - o.Bounds.Xlo) / o.CellWidth)
	iy := int((y - o.Bounds.Ylo) / o.CellHeight)
	return ix, iy
}

// AddParticle bins particle id into the cell containing position. The
// caller must guarantee position lies within Bounds (i.e. has already
// been canonicalized); this is what keeps ix/iy in range even at the
// xhi/yhi edge, since Bounds.Contains is half-open. A position outside
// Bounds is a broken precondition, not a reportable failure: it panics
// rather than returning an error.
func (o *LinkedCells) AddParticle(position vec2.Vector, id int) {
	ix, iy := o.cellIndices(position.X, position.Y)
	cell, ok := o.GetCell(ix, iy)
	if !ok {
		chk.Panic("particle %d at (%v, %v) does not belong to any cell", id, position.X, position.Y)
	}
	cell.ParticleIds = append(cell.ParticleIds, id)
}
