// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package universe implements Universe, the step driver that owns a
// simulation's SimData, Integrator and Force, runs the step loop with
// configurable stopping criteria, and dispatches to registered
// Monitors at each hook point.
package universe

import (
	"time"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/gophysics/mdsim2d/domain"
	"github.com/gophysics/mdsim2d/force"
	"github.com/gophysics/mdsim2d/integrator"
	"github.com/gophysics/mdsim2d/monitor"
	"github.com/gophysics/mdsim2d/neighbor"
	"github.com/gophysics/mdsim2d/simdata"
)

// defaultCutoff is the skin distance used to build VerletLists when
// the caller has not configured one explicitly.
const defaultCutoff = 0.1

// Universe owns the simulation state and drives it forward one step
// at a time, dispatching to the configured Integrator, Force and any
// registered Monitors.
type Universe struct {
	SimData    *simdata.SimData
	Integrator integrator.Integrator
	Forces     force.Force

	// Cutoff is the skin distance passed to neighbor.Create every
	// step; the VerletLists are rebuilt from scratch each step, with
	// no reuse heuristic.
	Cutoff float64

	IsRunning  bool
	Iterations int64

	// MaxTime and MaxIterations are optional termination criteria;
	// HasMaxTime/HasMaxIterations report whether they are set.
	MaxTime          float64
	HasMaxTime       bool
	MaxIterations    int64
	HasMaxIterations bool

	// Verbose enables a progress line per iteration via gosl/io,
	// matching the reference engine's per-iteration println.
	Verbose bool

	monitors map[string]monitor.Monitor

	IntegratorTime  time.Duration
	ForcesTime      time.Duration
	VerletListsTime time.Duration
	TotalTime       time.Duration
}

// New returns a Universe over the given bounds, defaulting to an open
// topology, a 0.001 VelocityVerlet integrator and a repulsion-100
// HardSphereForce, matching the reference engine's defaults.
func New(bounds domain.Bounds) *Universe {
	vv, err := integrator.NewVelocityVerlet(0.001)
	if err != nil {
		chk.Panic("default integrator construction must not fail: %v", err)
	}
	hs, err := force.NewHardSphereForce(100)
	if err != nil {
		chk.Panic("default force construction must not fail: %v", err)
	}
	return &Universe{
		SimData:    simdata.New(bounds, domain.Open()),
		Integrator: vv,
		Forces:     hs,
		Cutoff:     defaultCutoff,
		IsRunning:  true,
		monitors:   make(map[string]monitor.Monitor),
	}
}

// WithSimData replaces the owned SimData and returns the Universe for
// chaining.
func (o *Universe) WithSimData(sim *simdata.SimData) *Universe {
	o.SimData = sim
	return o
}

// WithForces replaces the configured Force and returns the Universe
// for chaining.
func (o *Universe) WithForces(f force.Force) *Universe {
	o.Forces = f
	return o
}

// WithIntegrator replaces the configured Integrator and returns the
// Universe for chaining.
func (o *Universe) WithIntegrator(i integrator.Integrator) *Universe {
	o.Integrator = i
	return o
}

// WithCutoff replaces the VerletLists skin distance and returns the
// Universe for chaining. cutoff must be non-negative.
func (o *Universe) WithCutoff(cutoff float64) *Universe {
	if cutoff < 0 {
		chk.Panic("cutoff must be non-negative; got %v", cutoff)
	}
	o.Cutoff = cutoff
	return o
}

// AddMonitor registers a monitor under name, replacing any monitor
// previously registered under the same name.
func (o *Universe) AddMonitor(name string, m monitor.Monitor) {
	if o.monitors == nil {
		o.monitors = make(map[string]monitor.Monitor)
	}
	o.monitors[name] = m
}

// GetMonitor returns the monitor registered under name, or nil and
// false if none is registered.
func (o *Universe) GetMonitor(name string) (monitor.Monitor, bool) {
	m, ok := o.monitors[name]
	return m, ok
}

// Run executes the step loop until IsRunning becomes false, either by
// external mutation, or by a configured termination criterion.
func (o *Universe) Run() error {
	o.SimData.CanonicalPositions()

	start := time.Now()
	for o.IsRunning {
		if o.Verbose {
			io.Pf("Iteration %d, t = %v. There are %d particles.\n",
				o.Iterations, o.SimData.SimulationTime, o.SimData.NumParticles())
		}

		o.preStep()
		o.preForces()
		if err := o.forces(); err != nil {
			return err
		}
		o.postForces()
		o.postStep()

		o.Iterations++

		if o.HasMaxTime && o.SimData.SimulationTime > o.MaxTime {
			o.IsRunning = false
		}
		if o.HasMaxIterations && o.Iterations >= o.MaxIterations {
			o.IsRunning = false
		}
	}
	o.TotalTime = time.Since(start)
	return nil
}

// RunUntil sets MaxTime and runs to completion.
func (o *Universe) RunUntil(t float64) error {
	o.MaxTime = t
	o.HasMaxTime = true
	return o.Run()
}

func (o *Universe) preStep() {
	for _, m := range o.monitors {
		m.PreStep(o.SimData)
	}
}

func (o *Universe) preForces() {
	start := time.Now()
	o.Integrator.PreForces(o.SimData)
	o.IntegratorTime += time.Since(start)

	for _, m := range o.monitors {
		m.PreForces(o.SimData)
	}
}

func (o *Universe) forces() error {
	vlStart := time.Now()
	vl, err := neighbor.Create(o.SimData, o.Cutoff)
	o.VerletListsTime += time.Since(vlStart)
	if err != nil {
		return err
	}

	flStart := time.Now()
	err = force.Loop(o.Forces, o.SimData, vl.Pairs())
	o.ForcesTime += time.Since(flStart)
	return err
}

func (o *Universe) postForces() {
	o.Integrator.PostForces(o.SimData)
	for _, m := range o.monitors {
		m.PostForces(o.SimData)
	}
}

func (o *Universe) postStep() {
	o.Integrator.PostStep(o.SimData)
	for _, m := range o.monitors {
		m.PostStep(o.SimData)
	}
}
