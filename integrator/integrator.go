// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package integrator implements the time-stepping schemes that advance
// a simdata.SimData's positions and velocities once per Universe step.
//
// Integrator is an interface, so user code may supply further schemes;
// the engine itself ships exactly VelocityVerlet and
// OverdampedIntegrator, matching the two schemes the reference engine
// implements.
package integrator

import (
	"errors"

	"github.com/gophysics/mdsim2d/simdata"
)

// ErrInvalidArgument is wrapped by the VelocityVerlet and
// OverdampedIntegrator constructors when dt is not strictly positive,
// or a required dbf.Params entry is missing; callers can test for it
// with errors.Is.
var ErrInvalidArgument = errors.New("invalid argument")

// Integrator advances a SimData through one timestep via three hooks
// called by Universe around the force evaluation: PreForces (before
// forces are recomputed), PostForces (after), and PostStep (once the
// step is otherwise complete, to advance SimulationTime).
type Integrator interface {
	GetTimestep() float64
	PreForces(sim *simdata.SimData)
	PostForces(sim *simdata.SimData)
	PostStep(sim *simdata.SimData)
}
