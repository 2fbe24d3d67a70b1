// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package universe

import (
	"github.com/cpmech/gosl/la"

	"github.com/gophysics/mdsim2d/vec2"
)

// TotalMomentum returns Σ mass_i * velocity_i over every particle in
// the owned SimData.
func (o *Universe) TotalMomentum() vec2.Vector {
	var total vec2.Vector
	for i, v := range o.SimData.Velocities {
		m := o.SimData.Masses[i]
		total.X += m * v.X
		total.Y += m * v.Y
	}
	return total
}

// TotalMomentumMagnitude returns the L2 norm of TotalMomentum, via
// gosl/la's dynamically-sized vector norm (the same helper the teacher
// uses for shape-function/residual norms, e.g. fem/e_pp.go).
func (o *Universe) TotalMomentumMagnitude() float64 {
	p := o.TotalMomentum()
	return la.VecNorm([]float64{p.X, p.Y})
}

// TotalKineticEnergy returns Σ (1/2) mass_i * |velocity_i|^2 over every
// particle in the owned SimData.
func (o *Universe) TotalKineticEnergy() float64 {
	var total float64
	for i, v := range o.SimData.Velocities {
		speedSqr := v.X*v.X + v.Y*v.Y
		total += 0.5 * o.SimData.Masses[i] * speedSqr
	}
	return total
}
