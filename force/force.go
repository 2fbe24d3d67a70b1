// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package force implements the pluggable pair-interaction model: the
// Force contract, the driver that zeroes and accumulates into a
// SimData's force buffer, and the sole built-in implementation,
// HardSphereForce.
package force

import (
	"github.com/gophysics/mdsim2d/neighbor"
	"github.com/gophysics/mdsim2d/simdata"
)

// Force computes contributions to each particle's force buffer from a
// single candidate pair. Unlike Topology, this contract is left open:
// user code may implement additional force models.
type Force interface {
	CalculateForces(sim *simdata.SimData, i, j int) error
}

// Loop zeros every entry of sim.Forces, then invokes
// force.CalculateForces for every pair produced by pairs.
func Loop(f Force, sim *simdata.SimData, pairs []neighbor.Pair) error {
	for i := range sim.Forces {
		sim.Forces[i].X = 0
		sim.Forces[i].Y = 0
	}
	for _, p := range pairs {
		if err := f.CalculateForces(sim, p.ID1, p.ID2); err != nil {
			return err
		}
	}
	return nil
}
