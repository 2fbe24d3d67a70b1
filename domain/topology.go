// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package domain

import (
	"math"

	"github.com/cpmech/gosl/chk"
)

// Kind enumerates the closed set of topology variants. Topology is a
// tagged variant rather than an open interface: the set of boundary
// behaviors the engine supports is fixed by the specification.
type Kind int

const (
	// KindOpen performs no canonicalization; out-of-bounds particles
	// remain out of bounds and are the caller's responsibility.
	KindOpen Kind = iota

	// KindPeriodic folds wrapped axes back into [lo, hi).
	KindPeriodic
)

// Topology selects the domain's boundary behavior.
type Topology struct {
	Kind  Kind
	WrapX bool
	WrapY bool
}

// Open returns the open (non-wrapping) topology.
func Open() Topology {
	return Topology{Kind: KindOpen}
}

// Periodic returns a periodic topology, wrapping the axes requested.
func Periodic(wrapX, wrapY bool) Topology {
	return Topology{Kind: KindPeriodic, WrapX: wrapX, WrapY: wrapY}
}

// CanonicalizePoint folds (x, y) in place under this topology and the
// given bounds, wrapping each axis independently according to WrapX
// and WrapY.
func (o Topology) CanonicalizePoint(x, y *float64, b Bounds) {
	if o.Kind == KindOpen {
		return
	}
	if o.WrapX {
		*x = wrapAxis(*x, b.Xlo, b.Xhi)
	}
	if o.WrapY {
		*y = wrapAxis(*y, b.Ylo, b.Yhi)
	}
}

// wrapAxis reduces coord into [lo, hi) by adding/subtracting the axis
// length, the modular-reduction equivalent of spec.md's "repeated
// addition/subtraction" procedure.
func wrapAxis(coord, lo, hi float64) float64 {
	length := hi - lo
	c := math.Mod(coord-lo, length)
	if c < 0 {
		c += length
	}
	c += lo
	// guard floating-point edge cases so the half-open invariant
	// [lo, hi) genuinely holds after reduction.
	if c >= hi {
		c -= length
	}
	if c < lo {
		c += length
	}
	if c < lo || c >= hi {
		chk.Panic("canonicalization invariant violated: %v not in [%v, %v)", c, lo, hi)
	}
	return c
}

// MinimumImage returns the axial distance magnitude between two
// coordinates separated by d along an axis of the given length, under
// the minimum-image convention: min(|d|, length - |d|) when wrap is
// true, otherwise |d|.
func MinimumImage(d, length float64, wrap bool) float64 {
	ad := math.Abs(d)
	if !wrap {
		return ad
	}
	return math.Min(ad, math.Abs(ad-length))
}
