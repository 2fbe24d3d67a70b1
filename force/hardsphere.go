// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package force

import (
	"errors"
	"fmt"
	"math"

	"github.com/cpmech/gosl/fun/dbf"

	"github.com/gophysics/mdsim2d/simdata"
	"github.com/gophysics/mdsim2d/vec2"
)

// ErrInvalidArgument is wrapped by the HardSphereForce constructors
// when repulsion is not strictly positive, or a required dbf.Params
// entry is missing; callers can test for it with errors.Is.
var ErrInvalidArgument = errors.New("invalid argument")

// HardSphereForce is a short-range repulsive pair interaction: two
// overlapping disks push apart along the line joining their centers,
// scaled by Repulsion and the overlap magnitude.
//
// The overlap magnitude is computed one of two ways depending on how
// the force was constructed. NewHardSphereForce reproduces the
// reference engine's formula, overlap = sum_radii - sqrt(sum_radii),
// which spec.md flags as almost certainly a bug (it does not even
// have the right units) but keeps as the documented default pending
// confirmation. NewCorrectedHardSphereForce uses the geometrically
// meaningful overlap = sum_radii - sqrt(r_sqr) instead. See DESIGN.md
// Open Question 1.
type HardSphereForce struct {
	Repulsion float64
	corrected bool
}

// NewHardSphereForce returns a HardSphereForce using the reference
// (likely buggy) overlap formula. repulsion must be strictly positive.
func NewHardSphereForce(repulsion float64) (*HardSphereForce, error) {
	if repulsion <= 0 {
		return nil, fmt.Errorf("%w: repulsion must be greater than zero; got %v", ErrInvalidArgument, repulsion)
	}
	return &HardSphereForce{Repulsion: repulsion}, nil
}

// NewCorrectedHardSphereForce returns a HardSphereForce using the
// geometrically meaningful overlap formula, overlap = sum_radii -
// sqrt(r_sqr). repulsion must be strictly positive.
func NewCorrectedHardSphereForce(repulsion float64) (*HardSphereForce, error) {
	if repulsion <= 0 {
		return nil, fmt.Errorf("%w: repulsion must be greater than zero; got %v", ErrInvalidArgument, repulsion)
	}
	return &HardSphereForce{Repulsion: repulsion, corrected: true}, nil
}

// NewHardSphereFromParams builds a HardSphereForce from named
// parameters, the same ergonomic convention the teacher's constitutive
// models use (mdl/solid.SmallElasticity.Init). Recognized parameters:
// "repulsion" (required) and "corrected" (optional, nonzero selects
// NewCorrectedHardSphereForce).
func NewHardSphereFromParams(prms dbf.Params) (*HardSphereForce, error) {
	var repulsion float64
	var hasRepulsion bool
	corrected := false
	for _, p := range prms {
		switch p.N {
		case "repulsion":
			repulsion, hasRepulsion = p.V, true
		case "corrected":
			corrected = p.V != 0
		}
	}
	if !hasRepulsion {
		return nil, fmt.Errorf("%w: HardSphereForce requires a %q parameter", ErrInvalidArgument, "repulsion")
	}
	if corrected {
		return NewCorrectedHardSphereForce(repulsion)
	}
	return NewHardSphereForce(repulsion)
}

// CalculateForces accumulates the pairwise hard-sphere repulsion
// between particles i and j into sim.Forces, if they overlap.
func (o *HardSphereForce) CalculateForces(sim *simdata.SimData, i, j int) error {
	rsqr, err := sim.DistanceSqrBetween(i, j)
	if err != nil {
		return err
	}
	sumRadii := sim.Radii[i] + sim.Radii[j]
	if rsqr >= sumRadii*sumRadii {
		return nil
	}

	var overlap float64
	if o.corrected {
		overlap = sumRadii - math.Sqrt(rsqr)
	} else {
		overlap = sumRadii - math.Sqrt(sumRadii)
	}

	displacement := sim.Positions[j].Sub(sim.Positions[i])
	unit := vec2.Normalize(displacement)

	f := unit.Scale(o.Repulsion * overlap)
	sim.Forces[i].SubAssign(f)
	sim.Forces[j].AddAssign(f)
	return nil
}
