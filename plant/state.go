// Copyright 2017 The Gopwr Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package plant implements the regime controller and simulation engine:
// it owns the mass ledger, routes each tick to exactly one sub-model
// and performs the one-way solid => two-phase transition
package plant

import "github.com/cpmech/gopwr/solver"

// PrimarySystemState holds the system-level view shared by both regimes
type PrimarySystemState struct {
	Pressure     float64      // system pressure [psia]
	Temperature  float64      // RCS average temperature [°F]
	RcsVolume    float64      // RCS loop volume; fixed [ft³]
	RcsWaterMass float64      // RCS water mass [lbm]
	Stats        solver.Stats // solver diagnostics of the last tick
}
