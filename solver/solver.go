// Copyright 2017 The Gopwr Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package solver implements the coupled pressure-temperature-volume
// equilibrium solver of the primary system: a fixed-point iteration on
// pressure with a lever-rule mass split between the RCS and the
// pressurizer regions
package solver

import (
	"math"

	"github.com/cpmech/gopwr/inp"
	"github.com/cpmech/gopwr/prop"
	"github.com/cpmech/gopwr/pzr"
	"github.com/cpmech/gosl/chk"
)

// Stats holds iteration diagnostics of the last solve
type Stats struct {
	Iterations int     // fixed-point iterations performed
	Residual   float64 // last fractional mass residual
	Converged  bool    // tolerance met within MaxIt
}

// Solver implements the coupled P-T-V solver
type Solver struct {
	cfg *inp.Config
	mdl prop.Model
}

// New returns a new solver
func New(cfg *inp.Config, mdl prop.Model) *Solver {
	if cfg == nil || mdl == nil {
		chk.Panic("solver: New needs non-nil configuration and property model")
	}
	return &Solver{cfg: cfg, mdl: mdl}
}

// pfloor returns the regime-dependent pressure floor
func (o *Solver) pfloor(atPower bool) float64 {
	if atPower {
		return o.cfg.Solver.PfloorPower
	}
	return o.cfg.Solver.PfloorCold
}

// SolveEquilibrium finds the coupled equilibrium pressure and mass
// split for a given canonical total primary mass and RCS temperature.
// ΔT is the RCS temperature change of this tick, used only for the
// closed-form initial pressure guess. The pressurizer state is updated
// in place (pressure, region masses, volumes, temperatures) and the
// finalized RCS water mass is returned; by construction
// mRcs + WaterMass + SteamMass == totalMass exactly.
//
// On non-convergence the last iterate is retained and sts.Converged is
// false; the solver never retries and never panics on physics. A
// non-positive totalMass is a programming defect.
func (o *Solver) SolveEquilibrium(s *pzr.State, totalMass, Trcs, ΔT float64, atPower bool) (mRcs float64, sts Stats) {

	if totalMass <= 0 {
		chk.Panic("SolveEquilibrium: non-positive total primary mass (%g)", totalMass)
	}
	cfg := &o.cfg.Solver
	Vrcs := o.cfg.Geom.RcsVolume
	Vpzr := o.cfg.Geom.PzrVolume
	vwMax := o.cfg.Geom.PzrWaterMax
	pFloor := o.pfloor(atPower)
	pCeil := cfg.Pceiling

	// closed-form initial guess: thermal expansion over the combined
	// liquid/steam compliance of the system
	P := s.Pressure
	Vs := s.SteamVolume
	if Vs < o.cfg.Geom.MinSteamVolume {
		Vs = o.cfg.Geom.MinSteamVolume
	}
	β := o.mdl.ExpansionCoef(Trcs, P)
	κ := o.mdl.Compressibility(Trcs, P)
	P += cfg.GuessCoef * β * ΔT / ((κ*Vrcs + (2.0/P)*Vs) / Vrcs)
	if P < pFloor {
		P = pFloor
	}
	if P > pCeil {
		P = pCeil
	}

	// fixed-point loop on pressure
	var Tsat, Vw, mW, mS float64
	for it := 1; it <= cfg.MaxIt; it++ {
		sts.Iterations = it

		// lever-rule split at the current pressure iterate
		Tsat = o.mdl.SaturationTemperature(P)
		ρf := o.mdl.SaturatedLiquidDensity(P)
		ρg := o.mdl.SaturatedSteamDensity(P)
		mRcs = o.mdl.WaterDensity(Trcs, P) * Vrcs
		mPzr := totalMass - mRcs
		Vw = (mPzr - ρg*Vpzr) / (ρf - ρg)
		if Vw < 0 {
			Vw = 0
		}
		if Vw > vwMax {
			Vw = vwMax
		}
		mW = Vw * ρf
		mS = (Vpzr - Vw) * ρg

		// fractional mass residual and relaxed pressure correction
		sts.Residual = (mRcs + mW + mS - totalMass) / totalMass
		δP := -sts.Residual * P * cfg.Relax
		if math.Abs(δP) < cfg.TolPressure && math.Abs(sts.Residual) < cfg.TolMass {
			sts.Converged = true
			break
		}
		P += δP
		if P < pFloor {
			P = pFloor
		}
		if P > pCeil {
			P = pCeil
		}
	}

	// finalization: exact conservation by construction
	s.Pressure = P
	s.WaterMass = mW
	s.SteamMass = mS
	s.WaterVolume = Vw
	s.SteamVolume = Vpzr - Vw
	s.WaterTemp = Tsat
	s.SteamTemp = Tsat
	mRcs = totalMass - mW - mS
	return
}

// SolveTransient applies one tick of net RCS heat and re-solves the
// equilibrium. qBtu is the net heat input [BTU/s]; mRcsWater is the RCS
// water mass entering the tick. Returns the new RCS temperature and the
// finalized RCS water mass.
func (o *Solver) SolveTransient(s *pzr.State, totalMass, Trcs, mRcsWater, qBtu, dt float64, atPower bool) (Tnew, mRcs float64, sts Stats) {
	cp := o.mdl.WaterSpecificHeat(Trcs, s.Pressure)
	ΔT := qBtu * dt / (mRcsWater*cp + o.cfg.Mass.RcsMetal*o.cfg.Mass.CpSteel)
	Tnew = Trcs + ΔT
	mRcs, sts = o.SolveEquilibrium(s, totalMass, Tnew, ΔT, atPower)
	return
}

// SolveWithPressurizer runs the reduced non-iterative two-phase path:
// advances the pressurizer phase-change model for heater/spray dynamics
// and layers a steam-compressibility correction on top of the current
// pressure estimate. Best effort: always reports success.
func (o *Solver) SolveWithPressurizer(s *pzr.State, pm *pzr.Model, in *inp.Inputs, dt float64, atPower bool) (ok bool) {

	P0 := s.Pressure
	Vs0 := s.SteamVolume
	if Vs0 < o.cfg.Geom.MinSteamVolume {
		Vs0 = o.cfg.Geom.MinSteamVolume
	}

	// phase-change dynamics at the current pressure
	pm.Update(s, in, dt)

	// steam-compressibility correction: net steam generation grows the
	// steam inventory and raises pressure
	ΔVs := s.SteamVolume - Vs0
	s.Pressure += (s.Pressure / 2.0) * ΔVs / Vs0
	pFloor := o.pfloor(atPower)
	if s.Pressure < pFloor {
		s.Pressure = pFloor
	}
	if s.Pressure > o.cfg.Solver.Pceiling {
		s.Pressure = o.cfg.Solver.Pceiling
	}

	s.PressureRate = (s.Pressure - P0) / dt
	return true
}
