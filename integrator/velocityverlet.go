// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package integrator

import (
	"fmt"

	"github.com/cpmech/gosl/fun/dbf"

	"github.com/gophysics/mdsim2d/simdata"
)

// VelocityVerlet is the symmetric half-kick/drift/half-kick scheme:
// velocities are advanced by a half step, positions are drifted by a
// full step using those half-updated velocities, forces are
// recomputed by the caller, and velocities are advanced by the
// remaining half step.
type VelocityVerlet struct {
	Dt float64
}

// NewVelocityVerlet returns a VelocityVerlet with the given timestep.
// dt must be strictly positive.
func NewVelocityVerlet(dt float64) (*VelocityVerlet, error) {
	if dt <= 0 {
		return nil, fmt.Errorf("%w: timestep must be greater than zero; got %v", ErrInvalidArgument, dt)
	}
	return &VelocityVerlet{Dt: dt}, nil
}

// NewVelocityVerletFromParams builds a VelocityVerlet from named
// parameters, the same convention HardSphereForce uses. Recognized
// parameters: "dt" (required).
func NewVelocityVerletFromParams(prms dbf.Params) (*VelocityVerlet, error) {
	var dt float64
	var hasDt bool
	for _, p := range prms {
		if p.N == "dt" {
			dt, hasDt = p.V, true
		}
	}
	if !hasDt {
		return nil, fmt.Errorf("%w: VelocityVerlet requires a %q parameter", ErrInvalidArgument, "dt")
	}
	return NewVelocityVerlet(dt)
}

func (o *VelocityVerlet) GetTimestep() float64 {
	return o.Dt
}

// PreForces performs the first half kick on velocities, then drifts
// positions by a full step and re-canonicalizes them.
func (o *VelocityVerlet) PreForces(sim *simdata.SimData) {
	o.updateVelocities(sim)
	o.updatePositions(sim)
}

// PostForces performs the second half kick on velocities, using the
// forces just recomputed at the drifted positions.
func (o *VelocityVerlet) PostForces(sim *simdata.SimData) {
	o.updateVelocities(sim)
}

// PostStep advances SimulationTime by Dt.
func (o *VelocityVerlet) PostStep(sim *simdata.SimData) {
	sim.SimulationTime += o.Dt
}

func (o *VelocityVerlet) updatePositions(sim *simdata.SimData) {
	for i := 0; i < sim.NumParticles(); i++ {
		sim.Positions[i].X += sim.Velocities[i].X * o.Dt
		sim.Positions[i].Y += sim.Velocities[i].Y * o.Dt
	}
	sim.CanonicalPositions()
}

func (o *VelocityVerlet) updateVelocities(sim *simdata.SimData) {
	hdt := o.Dt / 2.0
	for i := 0; i < sim.NumParticles(); i++ {
		im := 1.0 / sim.Masses[i]
		sim.Velocities[i].X += sim.Forces[i].X * hdt * im
		sim.Velocities[i].Y += sim.Forces[i].Y * hdt * im
	}
}
