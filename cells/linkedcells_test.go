// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cells

import (
	"errors"
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/gophysics/mdsim2d/domain"
	"github.com/gophysics/mdsim2d/vec2"
)

func Test_linkedcells01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("linkedcells01: construction and sizing")

	b, _ := domain.NewBounds(0, 10, 0, 10)
	lc, err := New(b, 3)
	if err != nil {
		tst.Errorf("unexpected error: %v", err)
		return
	}
	chk.IntAssert(lc.NumX, 3)
	chk.IntAssert(lc.NumY, 3)
	chk.Scalar(tst, "cell_width", 1e-12, lc.CellWidth, 10.0/3.0)
	chk.Scalar(tst, "cell_height", 1e-12, lc.CellHeight, 10.0/3.0)

	_, err = New(b, 0)
	if err == nil {
		tst.Errorf("expected error for target_size<=0")
	}
	if !errors.Is(err, ErrInvalidArgument) {
		tst.Errorf("expected error to wrap ErrInvalidArgument, got: %v", err)
	}
}

func Test_linkedcells02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("linkedcells02: binning at edges")

	b, _ := domain.NewBounds(0, 10, 0, 10)
	lc, _ := New(b, 3)

	lc.AddParticle(vec2.New(0, 0), 0)
	lc.AddParticle(vec2.New(9.999, 9.999), 1)

	c00, _ := lc.GetCell(0, 0)
	if len(c00.ParticleIds) != 1 || c00.ParticleIds[0] != 0 {
		tst.Errorf("particle at (0,0) should bin to cell (0,0)")
	}
	c22, _ := lc.GetCell(2, 2)
	if len(c22.ParticleIds) != 1 || c22.ParticleIds[0] != 1 {
		tst.Errorf("particle at (9.999,9.999) should bin to cell (2,2)")
	}
}

func Test_linkedcells03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("linkedcells03: get_adjusted_cell out of range")

	b, _ := domain.NewBounds(0, 10, 0, 10)
	lc, _ := New(b, 3)

	_, ok := lc.GetAdjustedCell(0, 0, -1, 0)
	if ok {
		tst.Errorf("expected absent cell to the left of (0,0)")
	}
	_, ok = lc.GetAdjustedCell(2, 2, 1, 0)
	if ok {
		tst.Errorf("expected absent cell to the right of (2,2)")
	}
	_, ok = lc.GetAdjustedCell(1, 1, 1, 1)
	if !ok {
		tst.Errorf("expected cell (2,2) to exist")
	}
}

func Test_linkedcells04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("linkedcells04: binning totality")

	b, _ := domain.NewBounds(0, 10, 0, 10)
	lc, _ := New(b, 2)

	positions := []vec2.Vector{
		vec2.New(0.1, 0.1), vec2.New(5, 5), vec2.New(9.9, 9.9),
		vec2.New(3.3, 7.1), vec2.New(8.8, 1.2),
	}
	for i, p := range positions {
		lc.AddParticle(p, i)
	}

	total := 0
	seen := map[int]bool{}
	for iy := 0; iy < lc.NumY; iy++ {
		for ix := 0; ix < lc.NumX; ix++ {
			c, _ := lc.GetCell(ix, iy)
			for _, id := range c.ParticleIds {
				if seen[id] {
					tst.Errorf("particle %d appears in more than one cell", id)
				}
				seen[id] = true
			}
			total += len(c.ParticleIds)
		}
	}
	chk.IntAssert(total, len(positions))
}
