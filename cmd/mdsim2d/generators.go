// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/gm"
	"github.com/cpmech/gosl/rnd"

	"github.com/gophysics/mdsim2d/simdata"
	"github.com/gophysics/mdsim2d/vec2"
)

// minSeparationTol is the skin added on top of two radii when rejecting
// an overlapping candidate while seeding particles into non-overlapping
// positions.
const minSeparationTol = 1e-6

// generateRandomParticles returns n particles of the given radius with
// uniformly random positions in [0, side)^2 and uniformly random
// velocities in [-5, 5)^2, mirroring the reference engine's
// generate_particles. When nonOverlapping is true, a candidate is
// rejected and redrawn (up to a bounded number of attempts per
// particle) while it overlaps the previously accepted particle that
// gm.Bins.Find returns for its position; other accepted particles are
// not checked, so the result is not guaranteed to be overlap-free.
func generateRandomParticles(n int, side, radius float64, nonOverlapping bool) ([]simdata.Particle, error) {
	var bins gm.Bins
	if nonOverlapping {
		xi := []float64{0, 0}
		xf := []float64{side, side}
		if err := bins.Init(xi, xf, 20); err != nil {
			return nil, chk.Err("cannot initialise seeding bins: %v", err)
		}
	}

	particles := make([]simdata.Particle, 0, n)
	positions := make([]vec2.Vector, 0, n)

	for i := 0; i < n; i++ {
		const maxAttempts = 1000
		accepted := false
		var candidate vec2.Vector

		for attempt := 0; attempt < maxAttempts; attempt++ {
			candidate = vec2.New(rnd.Float64(0, side), rnd.Float64(0, side))

			if !nonOverlapping {
				accepted = true
				break
			}
			coords := []float64{candidate.X, candidate.Y}
			nearest := bins.Find(coords)
			if nearest < 0 {
				accepted = true
				break
			}
			other := positions[nearest]
			dx, dy := candidate.X-other.X, candidate.Y-other.Y
			if dx*dx+dy*dy >= (2*radius+minSeparationTol)*(2*radius+minSeparationTol) {
				accepted = true
				break
			}
		}
		if !accepted {
			return nil, chk.Err("could not place particle %d without overlap after %d attempts", i, maxAttempts)
		}

		vel := vec2.New(rnd.Float64(-5, 5), rnd.Float64(-5, 5))
		particles = append(particles, simdata.NewParticle().WithPosition(candidate).WithVelocity(vel).WithRadius(radius))
		positions = append(positions, candidate)
		if nonOverlapping {
			if err := bins.Append([]float64{candidate.X, candidate.Y}, i); err != nil {
				return nil, chk.Err("cannot append seeded particle to bins: %v", err)
			}
		}
	}
	return particles, nil
}

// demoScenario replays the reference engine's hardcoded ten-particle
// layout from original_source/src/main.rs's specific_scenario.
func demoScenario() []simdata.Particle {
	type seed struct{ px, py, vx, vy float64 }
	seeds := []seed{
		{6.446288539458056, 6.217110127096928, -4.407848524198707, 3.6995346746413134},
		{6.294063113202821, 9.164060403351451, -3.3529670672928336, 3.455264102358342},
		{5.2501633111388095, 6.756661016465184, 1.8355446297693963, 0.6900124402930423},
		{1.9520727230736101, 9.617699811943838, -3.4658370935872185, 2.9162615067827495},
		{6.891032536613626, 7.272656589024029, 0.7620983716169505, 3.4213059428926798},
		{8.772348654700451, 7.040637761906032, -1.744660216621523, -2.174623389581567},
		{1.7275232232347149, 1.5405706994551838, 4.088895874634694, -3.0403902851946674},
		{3.094174157733802, 3.6138067778299576, -4.943446795030946, 4.199995443461713},
		{6.651726140957884, 9.262470253887123, 2.5922623665517435, -4.134675846003271},
		{4.557260954842059, 7.77621971951792, -1.0911654157490402, -1.662858835103338},
	}
	particles := make([]simdata.Particle, 0, len(seeds))
	for _, s := range seeds {
		particles = append(particles, simdata.NewParticle().
			WithCoords(s.px, s.py).
			WithVelocity(vec2.New(s.vx, s.vy)))
	}
	return particles
}
