// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package integrator

import (
	"errors"
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/gophysics/mdsim2d/domain"
	"github.com/gophysics/mdsim2d/force"
	"github.com/gophysics/mdsim2d/neighbor"
	"github.com/gophysics/mdsim2d/simdata"
	"github.com/gophysics/mdsim2d/vec2"
)

func runSteps(tst *testing.T, sim *simdata.SimData, integ Integrator, f force.Force, cutoff float64, steps int) {
	for s := 0; s < steps; s++ {
		integ.PreForces(sim)
		vl, err := neighbor.Create(sim, cutoff)
		if err != nil {
			tst.Fatalf("unexpected error: %v", err)
		}
		if err := force.Loop(f, sim, vl.Pairs()); err != nil {
			tst.Fatalf("unexpected error: %v", err)
		}
		integ.PostForces(sim)
		integ.PostStep(sim)
	}
}

func Test_velocityverlet01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("velocityverlet01: single non-overlapping pair stays at rest")

	b, _ := domain.NewBounds(0, 10, 0, 10)
	sim := simdata.New(b, domain.Open())
	sim.AddParticles([]simdata.Particle{
		simdata.NewParticle().WithCoords(2, 5).WithRadius(1).WithMass(1),
		simdata.NewParticle().WithCoords(8, 5).WithRadius(1).WithMass(1),
	})

	hs, _ := force.NewHardSphereForce(10)
	vv, err := NewVelocityVerlet(0.01)
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}

	runSteps(tst, sim, vv, hs, 0.1, 10)

	chk.Scalar(tst, "forces[0].x", 1e-15, sim.Forces[0].X, 0)
	chk.Scalar(tst, "position[0].x", 1e-12, sim.Positions[0].X, 2)
	chk.Scalar(tst, "position[1].x", 1e-12, sim.Positions[1].X, 8)
	chk.Scalar(tst, "velocity[0].x", 1e-15, sim.Velocities[0].X, 0)
	chk.Scalar(tst, "simulation_time", 1e-12, sim.SimulationTime, 0.10)
}

func Test_velocityverlet02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("velocityverlet02: head-on overlap separates symmetrically")

	b, _ := domain.NewBounds(0, 10, 0, 10)
	sim := simdata.New(b, domain.Open())
	sim.AddParticles([]simdata.Particle{
		simdata.NewParticle().WithCoords(4, 5).WithRadius(1).WithMass(1),
		simdata.NewParticle().WithCoords(5.5, 5).WithRadius(1).WithMass(1),
	})

	hs, _ := force.NewHardSphereForce(100)
	vv, err := NewVelocityVerlet(0.001)
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}

	runSteps(tst, sim, vv, hs, 0.1, 1)

	chk.Scalar(tst, "velocity[0].x + velocity[1].x", 1e-12, sim.Velocities[0].X+sim.Velocities[1].X, 0)
	if sim.Velocities[0].X >= 0 {
		tst.Errorf("particle 0 should move in -x")
	}
	if sim.Velocities[1].X <= 0 {
		tst.Errorf("particle 1 should move in +x")
	}

	// the first drift uses the zero initial velocities, so the centers
	// only start to move apart on the second step.
	runSteps(tst, sim, vv, hs, 0.1, 1)
	if sim.Positions[0].X >= 4 {
		tst.Errorf("particle 0 should have moved left")
	}
	if sim.Positions[1].X <= 5.5 {
		tst.Errorf("particle 1 should have moved right")
	}

	momentumX := sim.Masses[0]*sim.Velocities[0].X + sim.Masses[1]*sim.Velocities[1].X
	chk.Scalar(tst, "total momentum x", 1e-12, momentumX, 0)
}

func Test_velocityverlet03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("velocityverlet03: periodic wrap across the right edge")

	b, _ := domain.NewBounds(0, 10, 0, 10)
	sim := simdata.New(b, domain.Periodic(true, true))
	sim.AddParticle(simdata.NewParticle().WithCoords(9.9, 5).WithRadius(0.01).WithMass(1).WithVelocity(vec2.New(1, 0)))

	vv, err := NewVelocityVerlet(0.2)
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	vv.PreForces(sim)
	// no force model involved; skip straight to PostForces/PostStep.
	vv.PostForces(sim)
	vv.PostStep(sim)

	chk.Scalar(tst, "position.x after wrap", 1e-9, sim.Positions[0].X, 0.1)
	chk.Scalar(tst, "position.y", 1e-12, sim.Positions[0].Y, 5)
}

func Test_velocityverlet_invalid_dt(tst *testing.T) {

	//verbose()
	chk.PrintTitle("velocityverlet_invalid_dt: non-positive timestep rejected")

	if _, err := NewVelocityVerlet(0); err == nil {
		tst.Errorf("expected an error for dt=0")
	} else if !errors.Is(err, ErrInvalidArgument) {
		tst.Errorf("expected error to wrap ErrInvalidArgument, got: %v", err)
	}
	if _, err := NewVelocityVerlet(-1); err == nil {
		tst.Errorf("expected an error for dt<0")
	}
	if _, err := NewOverdampedIntegrator(0, 1); err == nil {
		tst.Errorf("expected an error for dt=0")
	} else if !errors.Is(err, ErrInvalidArgument) {
		tst.Errorf("expected error to wrap ErrInvalidArgument, got: %v", err)
	}
}

func Test_overdamped01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("overdamped01: drift is proportional to force and dt")

	b, _ := domain.NewBounds(0, 10, 0, 10)
	sim := simdata.New(b, domain.Open())
	sim.AddParticle(simdata.NewParticle().WithCoords(5, 5).WithRadius(1).WithMass(2))
	sim.Forces[0].X = 4

	od, err := NewOverdampedIntegrator(0.5, 1.7)
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	od.PreForces(sim)
	od.PostForces(sim)
	od.PostStep(sim)

	// dx = force * dt / mass = 4 * 0.5 / 2 = 1.
	chk.Scalar(tst, "position.x after drift", 1e-12, sim.Positions[0].X, 6)
	chk.Scalar(tst, "simulation_time", 1e-12, sim.SimulationTime, 0.5)
	chk.Scalar(tst, "damping_constant is stored but unused", 1e-15, od.DampingConstant, 1.7)
}
