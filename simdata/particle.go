// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package simdata

import (
	"math"

	"github.com/gophysics/mdsim2d/vec2"
)

// Particle is a plain value used to materialize a particle into a
// SimData via AddParticle/AddParticles. It is not itself stored by
// the engine.
type Particle struct {
	Position vec2.Vector
	Radius   float64
	Mass     float64
	Velocity vec2.Vector
	Force    vec2.Vector
}

// NewParticle returns a particle with unit radius and mass, at rest at
// the origin, suitable for further configuration via the With*
// methods.
func NewParticle() Particle {
	return Particle{
		Radius: 1,
		Mass:   1,
	}
}

// WithPosition sets the particle's position and returns the particle
// for chaining.
func (o Particle) WithPosition(pos vec2.Vector) Particle {
	o.Position = pos
	return o
}

// WithCoords sets the particle's position from bare x, y coordinates.
func (o Particle) WithCoords(x, y float64) Particle {
	o.Position = vec2.New(x, y)
	return o
}

// WithVelocity sets the particle's velocity.
func (o Particle) WithVelocity(vel vec2.Vector) Particle {
	o.Velocity = vel
	return o
}

// WithRadius sets the particle's radius.
func (o Particle) WithRadius(r float64) Particle {
	o.Radius = r
	return o
}

// WithMass sets the particle's mass.
func (o Particle) WithMass(m float64) Particle {
	o.Mass = m
	return o
}

// WithDensity sets the particle's mass from a density, assuming a
// disk of its current radius: mass = density * pi * radius^2. Call
// WithRadius first if the default radius is not wanted.
func (o Particle) WithDensity(density float64) Particle {
	o.Mass = density * math.Pi * o.Radius * o.Radius
	return o
}
