// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package monitor implements passive observers that Universe invokes
// at well-defined hook points during each step, without influencing
// the simulation itself.
package monitor

import (
	"github.com/gophysics/mdsim2d/simdata"
)

// Monitor is invoked by Universe at four points of every step:
// PreStep, PreForces, PostForces and PostStep. The contract is left
// open so user code can add new monitor kinds (see DESIGN.md).
type Monitor interface {
	PreStep(sim *simdata.SimData)
	PreForces(sim *simdata.SimData)
	PostForces(sim *simdata.SimData)
	PostStep(sim *simdata.SimData)
}

// Base supplies no-op implementations of all four Monitor hooks, so a
// concrete monitor need only override the ones it cares about, the
// same default-trait-method shape the reference engine's Monitor
// trait provides.
type Base struct{}

func (o Base) PreStep(sim *simdata.SimData)    {}
func (o Base) PreForces(sim *simdata.SimData)  {}
func (o Base) PostForces(sim *simdata.SimData) {}
func (o Base) PostStep(sim *simdata.SimData)   {}
