// Copyright 2017 The Gopwr Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pzr

// State holds the two-phase pressurizer state variables
//  Units: P [psia], T [°F], mass [lbm], volume [ft³], rates [lbm/s]
type State struct {

	// primary variables
	Pressure     float64 // pressure
	PressureRate float64 // dP/dt [psi/s]
	WaterMass    float64 // liquid region mass
	SteamMass    float64 // steam region mass
	WaterVolume  float64 // liquid region volume
	SteamVolume  float64 // steam region volume
	WallTemp     float64 // lumped wall metal temperature
	SteamTemp    float64 // steam region temperature
	WaterTemp    float64 // liquid region temperature

	// heaters
	HeaterEffectivePower float64 // effective heater power after lag [kW]

	// regime flag; one-way: false => true at bubble formation, never reverts
	BubbleFormed bool

	// phase-change rates from the last update
	FlashRate    float64 // flash evaporation
	HeaterRate   float64 // heater steam generation
	SprayRate    float64 // spray condensation
	WallRate     float64 // wall condensation
	RainoutRate  float64 // rainout (bulk steam condensation)
	NetSteamRate float64 // net steam generation
}

// TotalMass returns the total pressurizer inventory
func (o *State) TotalMass() float64 {
	return o.WaterMass + o.SteamMass
}

// Level returns the collapsed liquid level [%] of total vessel volume
func (o *State) Level() float64 {
	V := o.WaterVolume + o.SteamVolume
	if V < 1e-10 {
		return 0
	}
	return 100.0 * o.WaterVolume / V
}

// IsSolid tells whether the pressurizer is still water-solid
func (o *State) IsSolid() bool {
	return !o.BubbleFormed
}
