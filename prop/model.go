// Copyright 2017 The Gopwr Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package prop implements water/steam property models (density, enthalpy,
// saturation curves) used by the primary-loop thermodynamic core
package prop

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// Model defines water/steam property functions
//  Units: T [°F], P [psia], ρ [lbm/ft³], h [BTU/lbm], cp [BTU/(lbm·°F)],
//         β [1/°F], κ [1/psi]
type Model interface {
	Init(prms dbf.Params) error                // Init initialises this structure
	GetPrms() dbf.Params                       // gets (an example) of parameters
	WaterDensity(T, P float64) float64         // ρ of (compressed) liquid water
	WaterSpecificHeat(T, P float64) float64    // cp of liquid water
	SaturationTemperature(P float64) float64   // Tsat
	SaturationPressure(T float64) float64      // Psat
	SaturatedLiquidDensity(P float64) float64  // ρf @ Tsat(P)
	SaturatedSteamDensity(P float64) float64   // ρg @ Tsat(P)
	SaturatedLiquidEnthalpy(P float64) float64 // hf
	SaturatedSteamEnthalpy(P float64) float64  // hg
	LatentHeat(P float64) float64              // hfg = hg - hf
	ExpansionCoef(T, P float64) float64        // β = -(1/ρ)·∂ρ/∂T
	Compressibility(T, P float64) float64      // κ = (1/ρ)·∂ρ/∂P
	DTsatDP(P float64) float64                 // ∂Tsat/∂P
}

// New property model
func New(name string) (model Model, err error) {
	allocator, ok := allocators[name]
	if !ok {
		return nil, chk.Err("model %q is not available in prop database", name)
	}
	return allocator(), nil
}

// allocators holds all available models
var allocators = map[string]func() Model{}
