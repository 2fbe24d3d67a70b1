// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package vec2 implements two-dimensional vector arithmetic used
// throughout the particle simulation engine for positions, velocities
// and forces.
package vec2

import "math"

// Vector is an ordered pair of double-precision scalars.
type Vector struct {
	X, Y float64
}

// Zero returns the zero vector.
func Zero() Vector {
	return Vector{}
}

// New returns a new vector with the given components.
func New(x, y float64) Vector {
	return Vector{X: x, Y: y}
}

// Add returns o + w.
func (o Vector) Add(w Vector) Vector {
	return Vector{o.X + w.X, o.Y + w.Y}
}

// Sub returns o - w.
func (o Vector) Sub(w Vector) Vector {
	return Vector{o.X - w.X, o.Y - w.Y}
}

// Scale returns o scaled by s.
func (o Vector) Scale(s float64) Vector {
	return Vector{o.X * s, o.Y * s}
}

// Div returns o divided by s.
func (o Vector) Div(s float64) Vector {
	return Vector{o.X / s, o.Y / s}
}

// AddAssign adds w into o in place.
func (o *Vector) AddAssign(w Vector) {
	o.X += w.X
	o.Y += w.Y
}

// SubAssign subtracts w from o in place.
func (o *Vector) SubAssign(w Vector) {
	o.X -= w.X
	o.Y -= w.Y
}

// LengthSqr returns the squared L2 norm of o.
func (o Vector) LengthSqr() float64 {
	return o.X*o.X + o.Y*o.Y
}

// Length returns the L2 norm of o.
func (o Vector) Length() float64 {
	return math.Sqrt(o.LengthSqr())
}

// Normalize returns a unit vector in the direction of v, or the zero
// vector if v is the zero vector.
func Normalize(v Vector) Vector {
	if v.X == 0.0 && v.Y == 0.0 {
		return v
	}
	return v.Div(v.Length())
}
