// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package simdata implements the structure-of-arrays particle store
// that underlies the simulation engine: parallel slices of radius,
// mass, position, velocity and force, indexed by particle id, plus
// the domain (bounds and topology) they live in.
package simdata

import (
	"errors"
	"fmt"

	"github.com/gophysics/mdsim2d/domain"
	"github.com/gophysics/mdsim2d/vec2"
)

// ErrInvalidParticle is wrapped by AddParticle/AddParticles when a
// particle's mass or radius fails validation; callers can test for it
// with errors.Is.
var ErrInvalidParticle = errors.New("invalid particle")

// ErrIndexOutOfRange is wrapped whenever a particle index falls
// outside [0, NumParticles()); callers can test for it with errors.Is.
var ErrIndexOutOfRange = errors.New("index out of range")

// SimData stores the fundamental data of the simulation: every
// particle's radius, mass, position, velocity and force, plus the
// domain (bounds and topology) the particles live in. Particle
// identity is the array index; particles are appended only, never
// removed.
type SimData struct {
	Radii      []float64
	Masses     []float64
	Positions  []vec2.Vector
	Velocities []vec2.Vector
	Forces     []vec2.Vector

	Bounds   domain.Bounds
	Topology domain.Topology

	// SimulationTime is the elapsed simulation clock, advanced by the
	// integrator's post_step hook.
	SimulationTime float64
}

// New returns a new, empty SimData over the given bounds and topology.
func New(bounds domain.Bounds, topology domain.Topology) *SimData {
	return &SimData{Bounds: bounds, Topology: topology}
}

// NumParticles returns the number of particles currently stored.
func (o *SimData) NumParticles() int {
	return len(o.Radii)
}

// IsEmpty reports whether no particles have been added yet.
func (o *SimData) IsEmpty() bool {
	return len(o.Radii) == 0
}

// AddParticle appends a particle to the store. Force is always
// initialized to zero, regardless of the builder's Force field.
func (o *SimData) AddParticle(p Particle) error {
	if p.Mass <= 0 {
		return fmt.Errorf("%w: particle mass must be greater than zero; got %v", ErrInvalidParticle, p.Mass)
	}
	if p.Radius < 0 {
		return fmt.Errorf("%w: particle radius must not be negative; got %v", ErrInvalidParticle, p.Radius)
	}
	o.Radii = append(o.Radii, p.Radius)
	o.Masses = append(o.Masses, p.Mass)
	o.Positions = append(o.Positions, p.Position)
	o.Velocities = append(o.Velocities, p.Velocity)
	o.Forces = append(o.Forces, vec2.Zero())
	return nil
}

// AddParticles appends every particle in ps, in order. It fails on the
// first invalid particle, leaving any particles already appended in
// place (append-only semantics: a partial failure is not rolled back).
func (o *SimData) AddParticles(ps []Particle) error {
	for _, p := range ps {
		if err := o.AddParticle(p); err != nil {
			return err
		}
	}
	return nil
}

// checkIndex returns an error if id is out of [0, NumParticles()).
func (o *SimData) checkIndex(id int) error {
	if id < 0 || id >= o.NumParticles() {
		return fmt.Errorf("%w: %d not in [0, %d)", ErrIndexOutOfRange, id, o.NumParticles())
	}
	return nil
}

// DistanceSqrBetween returns the squared distance between particles i
// and j under the minimum-image convention implied by the topology:
// for each axis with wrapping enabled the axial distance is
// min(|d|, axis_length - |d|); with wrapping disabled it is |d|.
func (o *SimData) DistanceSqrBetween(i, j int) (float64, error) {
	if err := o.checkIndex(i); err != nil {
		return 0, err
	}
	if err := o.checkIndex(j); err != nil {
		return 0, err
	}
	wrapX := o.Topology.Kind == domain.KindPeriodic && o.Topology.WrapX
	wrapY := o.Topology.Kind == domain.KindPeriodic && o.Topology.WrapY

	dx := domain.MinimumImage(o.Positions[i].X-o.Positions[j].X, o.Bounds.Width(), wrapX)
	dy := domain.MinimumImage(o.Positions[i].Y-o.Positions[j].Y, o.Bounds.Height(), wrapY)
	return dx*dx + dy*dy, nil
}

// CanonicalPositions applies the topology's canonicalization to every
// particle's position. Must be called after any mutation that may
// have pushed a particle out of the domain.
func (o *SimData) CanonicalPositions() {
	for i := range o.Positions {
		o.Topology.CanonicalizePoint(&o.Positions[i].X, &o.Positions[i].Y, o.Bounds)
	}
}
