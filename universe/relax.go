// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package universe

import (
	"github.com/gophysics/mdsim2d/integrator"
)

// relaxationDt and relaxationDamping match the values the reference
// engine's commented-out relax_for sketch used to build its throwaway
// OverdampedIntegrator.
const (
	relaxationDt      = 0.001
	relaxationDamping = 5.0
)

// RelaxFor evolves the system forward under an overdamped integrator
// for duration t, to let overlapping particles dissipate excess
// overlap, without advancing the caller-visible simulation clock: the
// relaxation runs against the same *SimData in place, but
// SimulationTime is restored to its pre-relaxation value once done.
func (o *Universe) RelaxFor(t float64) error {
	savedTime := o.SimData.SimulationTime

	relaxer := New(o.SimData.Bounds)
	od, err := integrator.NewOverdampedIntegrator(relaxationDt, relaxationDamping)
	if err != nil {
		return err
	}
	relaxer.WithSimData(o.SimData).WithForces(o.Forces).WithIntegrator(od)
	relaxer.Cutoff = o.Cutoff

	if err := relaxer.RunUntil(o.SimData.SimulationTime + t); err != nil {
		return err
	}

	o.SimData.SimulationTime = savedTime
	return nil
}
