// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command mdsim2d runs a short 2-D hard-sphere molecular-dynamics
// simulation and optionally plots the final particle snapshot. This
// front end is a thin external collaborator over the core engine
// packages (domain, simdata, force, integrator, monitor, universe);
// it owns no simulation logic of its own.
package main

import (
	"flag"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/plt"

	"github.com/gophysics/mdsim2d/domain"
	"github.com/gophysics/mdsim2d/force"
	"github.com/gophysics/mdsim2d/integrator"
	"github.com/gophysics/mdsim2d/monitor"
	"github.com/gophysics/mdsim2d/simdata"
	"github.com/gophysics/mdsim2d/universe"
)

func main() {

	demo := flag.Bool("seed-demo", false, "replay the built-in ten-particle demo scenario")
	numParticles := flag.Int("seed-random", 30, "number of randomly seeded particles (ignored with -seed-demo)")
	nonOverlapping := flag.Bool("non-overlapping", true, "reject overlapping candidates when seeding randomly")
	side := flag.Float64("side", 10, "side length of the square simulation domain")
	radius := flag.Float64("radius", 0.3, "particle radius for randomly seeded particles")
	repulsion := flag.Float64("repulsion", 100, "HardSphereForce repulsion coefficient")
	dt := flag.Float64("dt", 0.001, "VelocityVerlet timestep")
	runTime := flag.Float64("run-time", 1, "simulated time to run, in seconds of simulation clock")
	snapshotDelay := flag.Float64("snapshot-delay", 1.0/30.0, "PositionMonitor snapshot cadence")
	periodic := flag.Bool("periodic", false, "use a fully periodic topology instead of open boundaries")
	verbose := flag.Bool("verbose", false, "print a progress line every iteration")
	plotFinal := flag.Bool("plot", false, "render a scatter plot of the final particle snapshot")
	flag.Parse()

	defer func() {
		if err := recover(); err != nil {
			chk.Verbose = true
			io.PfRed("ERROR: %v\n", err)
		}
	}()

	io.PfWhite("\nmdsim2d -- 2-D hard-sphere molecular dynamics\n\n")

	bounds, err := domain.NewBounds(0, *side, 0, *side)
	if err != nil {
		chk.Panic("invalid bounds: %v", err)
	}
	topology := domain.Open()
	if *periodic {
		topology = domain.Periodic(true, true)
	}

	var particles []simdata.Particle
	if *demo {
		particles = demoScenario()
	} else {
		particles, err = generateRandomParticles(*numParticles, *side, *radius, *nonOverlapping)
		if err != nil {
			chk.Panic("cannot seed particles: %v", err)
		}
	}

	sim := simdata.New(bounds, topology)
	if err := sim.AddParticles(particles); err != nil {
		chk.Panic("cannot populate sim data: %v", err)
	}

	vv, err := integrator.NewVelocityVerlet(*dt)
	if err != nil {
		chk.Panic("cannot build integrator: %v", err)
	}
	hs, err := force.NewHardSphereForce(*repulsion)
	if err != nil {
		chk.Panic("cannot build force: %v", err)
	}

	u := universe.New(bounds).WithSimData(sim).WithForces(hs).WithIntegrator(vv)
	u.Verbose = *verbose

	pm, err := monitor.NewPositionMonitor(*snapshotDelay)
	if err != nil {
		chk.Panic("cannot build position monitor: %v", err)
	}
	u.AddMonitor("positions", pm)

	io.Pf("> running %d particles for %v seconds of simulation time\n", sim.NumParticles(), *runTime)
	if err := u.RunUntil(*runTime); err != nil {
		chk.Panic("simulation failed: %v", err)
	}
	io.PfGreen("> done: %d iterations, %d snapshots, wall time = %v\n", u.Iterations, len(pm.Times), u.TotalTime)
	io.Pf("> final |total momentum| = %v\n", u.TotalMomentumMagnitude())

	if *plotFinal {
		plotSnapshot(sim)
	}
}

// plotSnapshot renders a scatter plot of every particle's final
// position, the Go equivalent of the reference engine's plotly
// scatter trace over the end-of-run positions.
func plotSnapshot(sim *simdata.SimData) {
	x := make([]float64, sim.NumParticles())
	y := make([]float64, sim.NumParticles())
	for i, p := range sim.Positions {
		x[i] = p.X
		y[i] = p.Y
	}
	plt.Plot(x, y, &plt.A{C: "b", M: "o", Ls: "none"})
	plt.Equal()
	plt.AxisRange(sim.Bounds.Xlo, sim.Bounds.Xhi, sim.Bounds.Ylo, sim.Bounds.Yhi)
	plt.Gll("x", "y", nil)
	if err := plt.Save("/tmp", "mdsim2d_final"); err != nil {
		io.PfRed("cannot save plot: %v\n", err)
	}
}
