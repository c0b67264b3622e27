// Copyright 2017 The Gopwr Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package prop

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/num"
)

// Simple implements smooth water/steam property correlations for the
// range 15–3200 psia and 40–700 °F. The liquid density takes the form
//
//   ρ(T,P) = ρref · exp(-B(T)) · [1 + κ(T)·(P-Pref)]
//
//   B(T) = β0·(T-Tref) + β1·(T-Tref)²/2
//
// so that β and κ returned by ExpansionCoef and Compressibility are the
// exact analytic derivatives of the density form. The saturation curve
// is Tsat = tsb·P^tse; SaturationPressure inverts it with Brent's
// method so the pair stays consistent under coefficient overrides.
type Simple struct {
	ρref, Tref, Pref float64 // liquid density reference point
	β0, β1           float64 // expansion coefficient: β = β0 + β1·(T-Tref)
	κ0, κ1, Tκ       float64 // compressibility: κ = κ0 + κ1·(T/Tκ)³
	tsb, tse         float64 // saturation curve Tsat = tsb·P^tse
	rg0, rg1         float64 // saturated steam density ρg = rg0·P^rg1
	hf0, hf1, hf2    float64 // hf = hf0 + hf1·ln(P) + hf2·ln(P)²
	hg0, hg1, hg2    float64 // hg = hg0 + hg1·ln(P) + hg2·ln(P)²
	cp0, cp1, cpe    float64 // cp = cp0 + cp1·T^cpe
	pmin, pmax       float64 // pressure validity window for clamping
}

// add model to factory
func init() {
	allocators["simple"] = func() Model { return new(Simple) }
}

// Init initialises this structure
func (o *Simple) Init(prms dbf.Params) (err error) {

	// defaults
	o.ρref, o.Tref, o.Pref = 62.30, 70.0, 400.0
	o.β0, o.β1 = 1.795e-4, 8.5e-7
	o.κ0, o.κ1, o.Tκ = 2.2e-6, 3.0e-6, 650.0
	o.tsb, o.tse = 115.1, 0.225
	o.rg0, o.rg1 = 8.26e-4, 1.16
	o.hf0, o.hf1, o.hf2 = 257.2, -74.8, 17.14
	o.hg0, o.hg1, o.hg2 = 861.0, 148.5, -15.21
	o.cp0, o.cp1, o.cpe = 0.98, 8.0e-9, 2.8
	o.pmin, o.pmax = 0.5, 3200.0

	// parameters
	for _, p := range prms {
		switch p.N {
		case "rhoref":
			o.ρref = p.V
		case "Tref":
			o.Tref = p.V
		case "Pref":
			o.Pref = p.V
		case "bet0":
			o.β0 = p.V
		case "bet1":
			o.β1 = p.V
		case "kap0":
			o.κ0 = p.V
		case "kap1":
			o.κ1 = p.V
		case "tsb":
			o.tsb = p.V
		case "tse":
			o.tse = p.V
		case "rg0":
			o.rg0 = p.V
		case "rg1":
			o.rg1 = p.V
		default:
			return chk.Err("simple: parameter named %q is incorrect", p.N)
		}
	}
	if o.ρref < 1 || o.tsb < 1 || o.tse < 1e-3 {
		return chk.Err("simple: invalid parameters: {rhoref=%g, tsb=%g, tse=%g} must be all positive", o.ρref, o.tsb, o.tse)
	}
	return
}

// GetPrms gets (an example) of parameters
func (o Simple) GetPrms() dbf.Params {
	return []*fun.P{
		&fun.P{N: "rhoref", V: 62.30},
		&fun.P{N: "Tref", V: 70},
		&fun.P{N: "Pref", V: 400},
		&fun.P{N: "bet0", V: 1.795e-4},
		&fun.P{N: "bet1", V: 8.5e-7},
	}
}

// clampP bounds pressure to the validity window of the correlations
func (o Simple) clampP(P float64) float64 {
	if P < o.pmin {
		return o.pmin
	}
	if P > o.pmax {
		return o.pmax
	}
	return P
}

// kapT computes the temperature part of the compressibility
func (o Simple) kapT(T float64) float64 {
	r := T / o.Tκ
	return o.κ0 + o.κ1*r*r*r
}

// WaterDensity returns the density of (compressed) liquid water
func (o Simple) WaterDensity(T, P float64) float64 {
	P = o.clampP(P)
	ΔT := T - o.Tref
	B := o.β0*ΔT + 0.5*o.β1*ΔT*ΔT
	return o.ρref * math.Exp(-B) * (1.0 + o.kapT(T)*(P-o.Pref))
}

// WaterSpecificHeat returns cp of liquid water
func (o Simple) WaterSpecificHeat(T, P float64) float64 {
	if T < 40 {
		T = 40
	}
	return o.cp0 + o.cp1*math.Pow(T, o.cpe)
}

// SaturationTemperature returns Tsat
func (o Simple) SaturationTemperature(P float64) float64 {
	return o.tsb * math.Pow(o.clampP(P), o.tse)
}

// DTsatDP returns ∂Tsat/∂P
func (o Simple) DTsatDP(P float64) float64 {
	P = o.clampP(P)
	return o.tsb * o.tse * math.Pow(P, o.tse-1.0)
}

// SaturationPressure returns Psat by inverting the saturation curve
// with Brent's method. Temperatures outside the curve's window are
// clamped to the nearest endpoint.
func (o Simple) SaturationPressure(T float64) float64 {
	Tlo := o.SaturationTemperature(o.pmin)
	Thi := o.SaturationTemperature(o.pmax)
	if T <= Tlo {
		return o.pmin
	}
	if T >= Thi {
		return o.pmax
	}
	var br num.Brent
	br.Init(func(p float64) (float64, error) {
		return o.SaturationTemperature(p) - T, nil
	})
	P, err := br.Solve(o.pmin, o.pmax, true)
	if err != nil {
		// the curve is monotone within [pmin,pmax]; failure here is a defect
		chk.Panic("simple: saturation pressure inversion failed for T=%g: %v", T, err)
	}
	return P
}

// SaturatedLiquidDensity returns ρf at Tsat(P)
func (o Simple) SaturatedLiquidDensity(P float64) float64 {
	return o.WaterDensity(o.SaturationTemperature(P), P)
}

// SaturatedSteamDensity returns ρg at Tsat(P)
func (o Simple) SaturatedSteamDensity(P float64) float64 {
	return o.rg0 * math.Pow(o.clampP(P), o.rg1)
}

// SaturatedLiquidEnthalpy returns hf
func (o Simple) SaturatedLiquidEnthalpy(P float64) float64 {
	x := math.Log(o.clampP(P))
	return o.hf0 + o.hf1*x + o.hf2*x*x
}

// SaturatedSteamEnthalpy returns hg
func (o Simple) SaturatedSteamEnthalpy(P float64) float64 {
	x := math.Log(o.clampP(P))
	return o.hg0 + o.hg1*x + o.hg2*x*x
}

// LatentHeat returns hfg, floored to stay away from zero near the
// critical region so that phase-change rates remain finite
func (o Simple) LatentHeat(P float64) float64 {
	hfg := o.SaturatedSteamEnthalpy(P) - o.SaturatedLiquidEnthalpy(P)
	if hfg < 40 {
		return 40
	}
	return hfg
}

// ExpansionCoef returns β = -(1/ρ)·∂ρ/∂T (analytic, at P=Pref)
func (o Simple) ExpansionCoef(T, P float64) float64 {
	return o.β0 + o.β1*(T-o.Tref)
}

// Compressibility returns κ = (1/ρ)·∂ρ/∂P (analytic)
func (o Simple) Compressibility(T, P float64) float64 {
	P = o.clampP(P)
	κ := o.kapT(T)
	return κ / (1.0 + κ*(P-o.Pref))
}
