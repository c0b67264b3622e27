// Copyright 2017 The Gopwr Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package solid implements the pre-bubble (water-solid) plant pressure
// model: thermal-expansion/CVCS-balance physics with a three-mode PI
// pressure controller, relief valve and bubble-formation check
package solid

import (
	"github.com/cpmech/gopwr/inp"
	"github.com/cpmech/gopwr/prop"
	"github.com/cpmech/gosl/chk"
)

// ControlMode is the solid-plant pressure control mode
type ControlMode int

const (
	// HeaterPressurize is the thermal-expansion-led mode with CVCS net
	// trim capped to a small authority
	HeaterPressurize ControlMode = iota

	// HoldSolid gives the PI controller full authority
	HoldSolid

	// IsolatedNoFlow is the explicit zero-flow hold used when base
	// letdown and charging are both off
	IsolatedNoFlow
)

// String returns the mode name
func (m ControlMode) String() string {
	switch m {
	case HeaterPressurize:
		return "heater-pressurize"
	case HoldSolid:
		return "hold-solid"
	case IsolatedNoFlow:
		return "isolated-no-flow"
	}
	return "unknown"
}

// State holds the solid-plant state variables
type State struct {

	// primary variables
	Pressure     float64 // [psia]
	Tpzr         float64 // pressurizer water temperature [°F]
	Trcs         float64 // RCS average temperature [°F]
	PzrWaterMass float64 // pressurizer inventory; leaves only via surge [lbm]

	// heaters and control
	HeaterEffectivePower float64     // effective heater power after lag [kW]
	Mode                 ControlMode // control mode
	Dwell                float64     // time within the hold band [s]

	// relief
	ReliefFlow float64 // current relief flow [gpm]

	// bubble formation; terminal for this model
	BubbleFormed        bool    // one-way flag
	BubbleFormationTemp float64 // frozen Tpzr at formation

	// bookkeeping
	CumSurgeMass  float64 // cumulative surge transfer to the RCS [lbm]
	CumReliefMass float64 // cumulative relief loss [lbm]
}

// Model implements the solid-plant pressure model
type Model struct {
	cfg  *inp.Config
	mdl  prop.Model
	ctl  *Controller
	rlf  *Relief
	trim float64 // applied letdown trim of the last tick [gpm]
}

// NewModel returns a new solid-plant model and its initial state. Both
// pressurizer and RCS start at the same temperature T0; the pressurizer
// is water-solid so its inventory fills the whole vessel.
func NewModel(cfg *inp.Config, mdl prop.Model, P0, T0, dt float64) (*Model, *State) {
	if cfg == nil || mdl == nil {
		chk.Panic("solid: NewModel needs non-nil configuration and property model")
	}
	o := &Model{
		cfg: cfg,
		mdl: mdl,
		ctl: NewController(&cfg.Control, P0, dt),
		rlf: NewRelief(&cfg.Relief),
	}
	s := &State{
		Pressure:     P0,
		Tpzr:         T0,
		Trcs:         T0,
		PzrWaterMass: cfg.Geom.PzrVolume * mdl.WaterDensity(T0, P0),
		Mode:         HeaterPressurize,
	}
	return o, s
}

// AppliedTrim returns the letdown trim applied on the last tick [gpm]
func (o *Model) AppliedTrim() float64 { return o.trim }

// Update advances the solid-plant state by one tick. Once the bubble
// has formed this is a no-op: the regime controller must route ticks to
// the two-phase pair instead.
func (o *Model) Update(s *State, in *inp.Inputs, dt float64) {

	if s.BubbleFormed {
		return
	}
	cfg := o.cfg
	mdl := o.mdl

	// mode machine
	o.updateMode(s, in, dt)

	// heater first-order lag toward demand
	α := dt / cfg.Heater.LagTau
	if α > 1 {
		α = 1
	}
	s.HeaterEffectivePower += (in.HeaterKw - s.HeaterEffectivePower) * α

	// pressurizer heat balance: heater minus surge-line conduction to
	// the RCS minus ambient loss
	cond := cfg.Loss.SurgeUA * (s.Tpzr - s.Trcs)
	qpzr := s.HeaterEffectivePower*inp.KwToBtuS - cond - cfg.Loss.PzrAmbient
	ΔTpzr := qpzr * dt / (s.PzrWaterMass * mdl.WaterSpecificHeat(s.Tpzr, s.Pressure))

	// RCS heat balance: surge conduction plus external net heat minus
	// ambient loss; water plus structural metal heat capacity
	mRcs := cfg.Geom.RcsVolume * mdl.WaterDensity(s.Trcs, s.Pressure)
	qrcs := in.Qrcs + cond - cfg.Loss.RcsAmbient
	ccap := mRcs*mdl.WaterSpecificHeat(s.Trcs, s.Pressure) + cfg.Mass.RcsMetal*cfg.Mass.CpSteel
	ΔTrcs := qrcs * dt / ccap

	// thermal expansion volumes
	ρpre := mdl.WaterDensity(s.Tpzr, s.Pressure) // density at which water departs
	dVpzr := mdl.ExpansionCoef(s.Tpzr, s.Pressure) * cfg.Geom.PzrVolume * ΔTpzr
	dVrcs := mdl.ExpansionCoef(s.Trcs, s.Pressure) * cfg.Geom.RcsVolume * ΔTrcs

	// CVCS volume balance
	o.trim = 0
	dVcvcs := 0.0
	s.ReliefFlow = o.rlf.Flow(s.Pressure)
	if s.Mode == IsolatedNoFlow {
		dVcvcs = s.ReliefFlow * inp.GpmToCfs * dt
	} else {
		authority := cfg.Cvcs.TrimCapPressurize
		if s.Mode == HoldSolid {
			authority = cfg.Cvcs.TrimCapHold
		}
		o.trim = o.ctl.Update(s.Pressure, dt, authority)
		letdown := in.Letdown + o.trim
		if letdown < cfg.Cvcs.LetdownMin {
			letdown = cfg.Cvcs.LetdownMin
		}
		if letdown > cfg.Cvcs.LetdownMax {
			letdown = cfg.Cvcs.LetdownMax
		}
		dVcvcs = (letdown - in.Charging + in.Seal + s.ReliefFlow) * inp.GpmToCfs * dt
	}

	// pressure update from net volume imbalance over system stiffness
	Tavg := 0.5 * (s.Tpzr + s.Trcs)
	Vtot := cfg.Geom.RcsVolume + cfg.Geom.PzrVolume
	dP := (dVpzr + dVrcs - dVcvcs) / (Vtot * mdl.Compressibility(Tavg, s.Pressure))
	s.Pressure += dP
	if s.Pressure < 14.696 && !cfg.Diag.AllowSubAtmospheric {
		s.Pressure = 14.696
	}
	if s.Pressure > cfg.Solver.Pceiling {
		s.Pressure = cfg.Solver.Pceiling
	}

	// surge transfer: pressurizer mass leaves only through thermal
	// expansion, at the pre-heating density
	surge := dVpzr * ρpre
	s.PzrWaterMass -= surge
	s.CumSurgeMass += surge
	s.CumReliefMass += s.ReliefFlow * inp.GpmToCfs * dt * ρpre

	// temperatures
	s.Tpzr += ΔTpzr
	s.Trcs += ΔTrcs

	// bubble-formation check (terminal)
	Tsat := mdl.SaturationTemperature(s.Pressure)
	if s.Tpzr >= Tsat-cfg.Bubble.SatMargin && s.Tpzr >= cfg.Bubble.MinTemp {
		s.BubbleFormed = true
		s.BubbleFormationTemp = s.Tpzr
	}
}

// updateMode advances the three-mode state machine
func (o *Model) updateMode(s *State, in *inp.Inputs, dt float64) {
	cfg := o.cfg
	iso := in.Letdown < cfg.Cvcs.IsolatedFlowTol && in.Charging < cfg.Cvcs.IsolatedFlowTol
	if iso {
		if s.Mode != IsolatedNoFlow {
			// reset accumulators to avoid integrator drift
			o.ctl.Reset(s.Pressure)
			s.Dwell = 0
		}
		s.Mode = IsolatedNoFlow
		return
	}
	if s.Mode == IsolatedNoFlow {
		s.Mode = HeaterPressurize
		s.Dwell = 0
	}
	switch s.Mode {
	case HeaterPressurize:
		if s.Pressure >= cfg.Control.Setpoint-cfg.Control.HoldBand &&
			s.Pressure <= cfg.Control.Setpoint+cfg.Control.HoldBand {
			s.Dwell += dt
		} else {
			s.Dwell = 0
		}
		if s.Dwell >= cfg.Control.HoldDwell {
			s.Mode = HoldSolid
		}
	case HoldSolid:
		if s.Pressure < cfg.Control.Setpoint-cfg.Control.DropBand {
			s.Mode = HeaterPressurize
			s.Dwell = 0
		}
	}
}
