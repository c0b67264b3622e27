// Copyright 2017 The Gopwr Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package out implements simulation output: an observer interface fed
// one sample per tick, a time-series recorder, and plotting helpers
package out

// Sample holds the per-tick observation handed to observers
type Sample struct {
	Time         float64 // simulation time [s]
	Pressure     float64 // system pressure [psia]
	Temperature  float64 // RCS temperature [°F]
	PzrTemp      float64 // pressurizer water temperature [°F]
	Level        float64 // pressurizer level [%]
	PzrWaterMass float64 // pressurizer liquid mass [lbm]
	PzrSteamMass float64 // pressurizer steam mass [lbm]
	RcsWaterMass float64 // RCS water mass [lbm]
	TotalMass    float64 // ledger total primary mass [lbm]
	NetSteamRate float64 // net steam generation [lbm/s]
	ReliefFlow   float64 // relief flow [gpm]
	Mode         string  // regime/mode tag
	Iterations   int     // solver iterations of this tick
	Converged    bool    // solver convergence of this tick
}

// Observer receives one sample per simulation tick
type Observer interface {
	Observe(smp Sample)
}

// Null is the do-nothing observer
type Null struct{}

// Observe discards the sample
func (o Null) Observe(smp Sample) {}
