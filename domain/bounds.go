// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package domain implements the rectangular simulation region and the
// boundary topology (open or periodic) used to canonicalize particle
// positions against it.
package domain

import (
	"errors"
	"fmt"
)

// ErrInvalidBounds is wrapped by every error NewBounds returns; callers
// can test for it with errors.Is.
var ErrInvalidBounds = errors.New("invalid bounds")

// Bounds is a rectangular region (xlo, xhi, ylo, yhi).
type Bounds struct {
	Xlo, Xhi, Ylo, Yhi float64
}

// NewBounds validates and returns a new Bounds. It returns an error
// wrapping ErrInvalidBounds if xhi <= xlo or yhi <= ylo.
func NewBounds(xlo, xhi, ylo, yhi float64) (Bounds, error) {
	if xhi <= xlo {
		return Bounds{}, fmt.Errorf("%w: xhi=%v must be greater than xlo=%v", ErrInvalidBounds, xhi, xlo)
	}
	if yhi <= ylo {
		return Bounds{}, fmt.Errorf("%w: yhi=%v must be greater than ylo=%v", ErrInvalidBounds, yhi, ylo)
	}
	return Bounds{Xlo: xlo, Xhi: xhi, Ylo: ylo, Yhi: yhi}, nil
}

// Width returns xhi - xlo.
func (o Bounds) Width() float64 {
	return o.Xhi - o.Xlo
}

// Height returns yhi - ylo.
func (o Bounds) Height() float64 {
	return o.Yhi - o.Ylo
}

// Contains reports whether (x, y) lies in the half-open region
// [xlo, xhi) x [ylo, yhi).
func (o Bounds) Contains(x, y float64) bool {
	return o.Xlo <= x && x < o.Xhi && o.Ylo <= y && y < o.Yhi
}
