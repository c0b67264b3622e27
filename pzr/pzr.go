// Copyright 2017 The Gopwr Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package pzr implements the two-phase pressurizer phase-change model:
// five phase-change rate functions combined into a mass/energy balance
// over the water and steam regions, plus a lumped wall thermal node
package pzr

import (
	"math"

	"github.com/cpmech/gopwr/inp"
	"github.com/cpmech/gopwr/prop"
	"github.com/cpmech/gosl/chk"
)

// phase-change closure constants
const (
	flashEff     = 0.8   // flash evaporation efficiency
	flashCap     = 0.01  // flash cap [fraction of water mass per second]
	sprayEff     = 0.85  // spray condensation efficiency
	rainoutTau   = 5.0   // rainout time constant [s]
	rainoutScale = 100.0 // rainout subcooling scale [°F]
	rainoutCap   = 0.10  // rainout cap [fraction of steam mass per second]
	wallSatBand  = 10.0  // wall temperature clamp above Tsat [°F]
)

// Model implements the two-phase pressurizer phase-change model.
// All rate functions are pure over their arguments and floored at zero
// where physically required; Update performs the explicit-Euler mass
// integration with physical clamps.
type Model struct {
	cfg *inp.Config
	mdl prop.Model
}

// NewModel returns a new two-phase pressurizer model
func NewModel(cfg *inp.Config, mdl prop.Model) *Model {
	if cfg == nil || mdl == nil {
		chk.Panic("pzr: NewModel needs non-nil configuration and property model")
	}
	return &Model{cfg: cfg, mdl: mdl}
}

// FlashRate computes the flash evaporation rate [lbm/s]. Flashing only
// occurs while depressurizing (dPdt < 0): the saturation temperature
// drops below the liquid temperature and part of the liquid boils off.
func (o *Model) FlashRate(waterMass, P, dPdt float64) float64 {
	if dPdt >= 0 || waterMass <= 0 {
		return 0
	}
	cp := o.mdl.WaterSpecificHeat(o.mdl.SaturationTemperature(P), P)
	hfg := o.mdl.LatentHeat(P)
	rate := waterMass * cp * math.Abs(o.mdl.DTsatDP(P)*dPdt) / hfg * flashEff
	cap := flashCap * waterMass
	if rate > cap {
		return cap
	}
	return rate
}

// HeaterSteamRate computes the steam generation rate from the effective
// heater power [lbm/s]. qeff is the post-lag heater power in kW.
func (o *Model) HeaterSteamRate(qeffKw, P float64) float64 {
	if qeffKw <= 0 {
		return 0
	}
	return qeffKw * inp.KwToBtuS / o.mdl.LatentHeat(P)
}

// SprayCondRate computes the spray condensation rate [lbm/s]. Zero
// unless the spray is subcooled below Tsat.
func (o *Model) SprayCondRate(sprayGpm, sprayTemp, P float64) float64 {
	if sprayGpm <= 0 {
		return 0
	}
	Tsat := o.mdl.SaturationTemperature(P)
	sub := Tsat - sprayTemp
	if sub <= 0 {
		return 0
	}
	mdot := sprayGpm * inp.GpmToCfs * o.mdl.WaterDensity(sprayTemp, P) // [lbm/s]
	cp := o.mdl.WaterSpecificHeat(sprayTemp, P)
	return mdot * cp * sub * sprayEff / o.mdl.LatentHeat(P)
}

// WallCondRate computes the wall condensation rate [lbm/s]. Zero unless
// the wall is below Tsat.
func (o *Model) WallCondRate(P, wallTemp float64) float64 {
	Tsat := o.mdl.SaturationTemperature(P)
	ΔT := Tsat - wallTemp
	if ΔT <= 0 {
		return 0
	}
	h := o.FilmHTC(P, wallTemp)
	return h * o.cfg.Geom.WallArea * ΔT / o.mdl.LatentHeat(P) / 3600.0
}

// RainoutRate computes the bulk steam condensation (rainout) rate
// [lbm/s]. Zero unless the steam region is subcooled.
func (o *Model) RainoutRate(steamMass, steamTemp, P float64) float64 {
	if steamMass <= 0 {
		return 0
	}
	sub := o.mdl.SaturationTemperature(P) - steamTemp
	if sub <= 0 {
		return 0
	}
	rate := steamMass * sub / (rainoutScale * rainoutTau)
	cap := rainoutCap * steamMass
	if rate > cap {
		return cap
	}
	return rate
}

// FilmHTC computes the film-condensation heat-transfer coefficient on
// the vessel wall [BTU/(hr·ft²·°F)]. Empirical fit: the coefficient
// increases with pressure and decreases weakly with film subcooling
// and vessel height.
func (o *Model) FilmHTC(P, wallTemp float64) float64 {
	ΔT := o.mdl.SaturationTemperature(P) - wallTemp
	if ΔT < 0.1 {
		ΔT = 0.1
	}
	H := o.cfg.Geom.PzrHeight
	if H < 1 {
		H = 1
	}
	return 250.0 * (1.0 + P/2000.0) * math.Pow(ΔT, -0.25) * math.Pow(10.0/H, 0.25)
}

// Update advances the two-phase state by one tick (explicit Euler).
// Rates are evaluated with the region temperatures of the previous
// tick; afterwards both region temperatures are forced to Tsat(P)
// (within-region equilibrium) and the wall node is advanced.
func (o *Model) Update(s *State, in *inp.Inputs, dt float64) {

	// heater first-order lag toward demand
	α := dt / o.cfg.Heater.LagTau
	if α > 1 {
		α = 1
	}
	s.HeaterEffectivePower += (in.HeaterKw - s.HeaterEffectivePower) * α

	// phase-change rates
	P := s.Pressure
	s.FlashRate = o.FlashRate(s.WaterMass, P, s.PressureRate)
	s.HeaterRate = o.HeaterSteamRate(s.HeaterEffectivePower, P)
	s.SprayRate = o.SprayCondRate(in.Spray, in.SprayTemp, P)
	s.WallRate = o.WallCondRate(P, s.WallTemp)
	s.RainoutRate = o.RainoutRate(s.SteamMass, s.SteamTemp, P)
	s.NetSteamRate = s.FlashRate + s.HeaterRate - s.SprayRate - s.WallRate - s.RainoutRate

	// explicit-Euler mass integration; phase change moves mass between
	// the regions, the total pressurizer inventory is untouched
	Δm := s.NetSteamRate * dt
	s.SteamMass += Δm
	s.WaterMass -= Δm

	// physical clamps, implemented as transfers to conserve inventory
	Tsat := o.mdl.SaturationTemperature(P)
	ρg := o.mdl.SaturatedSteamDensity(P)
	ρf := o.mdl.WaterDensity(Tsat, P)
	msMin := o.cfg.Geom.MinSteamVolume * ρg
	if s.SteamMass < msMin {
		s.WaterMass -= msMin - s.SteamMass
		s.SteamMass = msMin
	}
	mwMax := (o.cfg.Geom.PzrVolume - o.cfg.Geom.MinSteamVolume) * ρf
	if s.WaterMass > mwMax {
		s.SteamMass += s.WaterMass - mwMax
		s.WaterMass = mwMax
	}
	if s.WaterMass < 0 {
		s.SteamMass += s.WaterMass
		s.WaterMass = 0
	}

	// region volumes from the steam inventory; vessel volume is fixed
	s.SteamVolume = s.SteamMass / ρg
	if s.SteamVolume > o.cfg.Geom.PzrVolume {
		s.SteamVolume = o.cfg.Geom.PzrVolume
	}
	s.WaterVolume = o.cfg.Geom.PzrVolume - s.SteamVolume

	// within-region equilibrium
	s.WaterTemp = Tsat
	s.SteamTemp = Tsat

	// wall thermal node
	o.updateWall(s, dt, Tsat)
}

// updateWall advances the lumped wall node: the wall exchanges with the
// steam and liquid regions weighted by volume fraction
func (o *Model) updateWall(s *State, dt, Tsat float64) {
	V := o.cfg.Geom.PzrVolume
	fs := s.SteamVolume / V
	fw := 1.0 - fs
	A := o.cfg.Geom.WallArea
	hs := o.cfg.Loss.SteamHTC / 3600.0 // [BTU/(s·ft²·°F)]
	hw := o.cfg.Loss.WaterHTC / 3600.0
	q := hs*A*fs*(s.SteamTemp-s.WallTemp) + hw*A*fw*(s.WaterTemp-s.WallTemp)
	s.WallTemp += q * dt / (o.cfg.Mass.PzrWall * o.cfg.Mass.CpSteel)

	// clamp to the physically reachable window
	Tcold := 40.0
	if s.WallTemp < Tcold {
		s.WallTemp = Tcold
	}
	if s.WallTemp > Tsat+wallSatBand {
		s.WallTemp = Tsat + wallSatBand
	}
}

// FormBubble seeds the two-phase state at the moment of bubble
// formation: water/steam volumes from the target level, temperatures at
// saturation, rates zeroed. The caller keeps the total-mass ledger
// untouched; only the mass distribution changes.
func FormBubble(cfg *inp.Config, mdl prop.Model, P, wallTemp float64) *State {
	Tsat := mdl.SaturationTemperature(P)
	Vw := cfg.Bubble.TargetLevel / 100.0 * cfg.Geom.PzrVolume
	if Vw > cfg.Geom.PzrWaterMax {
		Vw = cfg.Geom.PzrWaterMax
	}
	Vs := cfg.Geom.PzrVolume - Vw
	s := &State{
		Pressure:    P,
		WaterMass:   Vw * mdl.WaterDensity(Tsat, P),
		SteamMass:   Vs * mdl.SaturatedSteamDensity(P),
		WaterVolume: Vw,
		SteamVolume: Vs,
		WallTemp:    wallTemp,
		SteamTemp:   Tsat,
		WaterTemp:   Tsat,
	}
	s.BubbleFormed = true
	return s
}
