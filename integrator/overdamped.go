// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package integrator

import (
	"fmt"

	"github.com/cpmech/gosl/fun/dbf"

	"github.com/gophysics/mdsim2d/simdata"
)

// OverdampedIntegrator is a first-order (velocity-free) scheme: each
// step drifts a particle's position directly from its force and mass,
// as if inertia were negligible compared to drag. DampingConstant is
// accepted and stored for API symmetry with the reference engine's
// constructor, but it is not used by PostForces below; see DESIGN.md
// Open Question resolutions for why this field is carried unused
// rather than removed.
type OverdampedIntegrator struct {
	Dt              float64
	DampingConstant float64
}

// NewOverdampedIntegrator returns an OverdampedIntegrator with the
// given timestep and damping constant. dt must be strictly positive.
func NewOverdampedIntegrator(dt, dampingConstant float64) (*OverdampedIntegrator, error) {
	if dt <= 0 {
		return nil, fmt.Errorf("%w: timestep must be greater than zero; got %v", ErrInvalidArgument, dt)
	}
	return &OverdampedIntegrator{Dt: dt, DampingConstant: dampingConstant}, nil
}

// NewOverdampedIntegratorFromParams builds an OverdampedIntegrator
// from named parameters. Recognized parameters: "dt" (required) and
// "damping_constant" (optional, defaults to zero).
func NewOverdampedIntegratorFromParams(prms dbf.Params) (*OverdampedIntegrator, error) {
	var dt, damping float64
	var hasDt bool
	for _, p := range prms {
		switch p.N {
		case "dt":
			dt, hasDt = p.V, true
		case "damping_constant":
			damping = p.V
		}
	}
	if !hasDt {
		return nil, fmt.Errorf("%w: OverdampedIntegrator requires a %q parameter", ErrInvalidArgument, "dt")
	}
	return NewOverdampedIntegrator(dt, damping)
}

func (o *OverdampedIntegrator) GetTimestep() float64 {
	return o.Dt
}

// PreForces is a no-op: the overdamped scheme needs nothing done
// before forces are computed at the current positions.
func (o *OverdampedIntegrator) PreForces(sim *simdata.SimData) {}

// PostForces drifts every particle's position directly from its force
// and mass, then re-canonicalizes positions.
func (o *OverdampedIntegrator) PostForces(sim *simdata.SimData) {
	for i := 0; i < sim.NumParticles(); i++ {
		im := 1.0 / sim.Masses[i]
		sim.Positions[i].X += sim.Forces[i].X * o.Dt * im
		sim.Positions[i].Y += sim.Forces[i].Y * o.Dt * im
	}
	sim.CanonicalPositions()
}

// PostStep advances SimulationTime by Dt.
func (o *OverdampedIntegrator) PostStep(sim *simdata.SimData) {
	sim.SimulationTime += o.Dt
}
