// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package monitor

import (
	"errors"
	"fmt"

	"github.com/gophysics/mdsim2d/simdata"
	"github.com/gophysics/mdsim2d/vec2"
)

// ErrInvalidArgument is wrapped by NewPositionMonitor when
// snapshotDelay is not strictly positive; callers can test for it
// with errors.Is.
var ErrInvalidArgument = errors.New("invalid argument")

// PositionMonitor records a snapshot of every particle's position,
// paired with the simulation time, no more often than every
// SnapshotDelay of simulated time: the first post_step is always
// recorded, and a later one is recorded once simulation_time has
// advanced by strictly more than SnapshotDelay since the last
// recorded snapshot. A gap within a relative snapshotTol of
// SnapshotDelay counts as equal to it, so round-off in the accumulated
// simulation clock does not trigger a snapshot one step early.
type PositionMonitor struct {
	Base

	SnapshotDelay float64

	Times     []float64
	Positions [][]vec2.Vector

	hasSnapshot      bool
	lastSnapshotTime float64
}

// NewPositionMonitor returns a PositionMonitor with the given cadence.
// snapshotDelay must be strictly positive.
func NewPositionMonitor(snapshotDelay float64) (*PositionMonitor, error) {
	if snapshotDelay <= 0 {
		return nil, fmt.Errorf("%w: snapshot_delay must be greater than zero; got %v", ErrInvalidArgument, snapshotDelay)
	}
	return &PositionMonitor{SnapshotDelay: snapshotDelay}, nil
}

// snapshotTol is the relative slack applied to SnapshotDelay when
// comparing it with the time elapsed since the last snapshot.
const snapshotTol = 1e-9

// PostStep records a snapshot if none has been recorded yet, or if
// enough simulation time has elapsed since the last one.
func (o *PositionMonitor) PostStep(sim *simdata.SimData) {
	if o.hasSnapshot && sim.SimulationTime-o.lastSnapshotTime <= o.SnapshotDelay*(1+snapshotTol) {
		return
	}
	snapshot := make([]vec2.Vector, sim.NumParticles())
	copy(snapshot, sim.Positions)

	o.Times = append(o.Times, sim.SimulationTime)
	o.Positions = append(o.Positions, snapshot)
	o.hasSnapshot = true
	o.lastSnapshotTime = sim.SimulationTime
}
