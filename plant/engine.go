// Copyright 2017 The Gopwr Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plant

import (
	"math"

	"github.com/cpmech/gopwr/inp"
	"github.com/cpmech/gopwr/out"
	"github.com/cpmech/gopwr/prop"
	"github.com/cpmech/gopwr/pzr"
	"github.com/cpmech/gopwr/solid"
	"github.com/cpmech/gopwr/solver"
	"github.com/cpmech/gosl/chk"
)

// Engine owns the whole simulation: configuration, property model, mass
// ledger, system state and the current regime. Each tick is routed to
// exactly one sub-model; the solid => two-phase transition happens at
// most once, on the tick the bubble forms.
type Engine struct {

	// essential
	Cfg *inp.Config        // configuration
	Mdl prop.Model         // property model
	Led *Ledger            // canonical mass ledger
	Sta PrimarySystemState // system-level state
	Reg Regime             // current operating regime
	Obs out.Observer       // per-tick observer

	// derived
	Time    float64 // simulation time [s]
	Dt      float64 // tick length [s]
	atPower bool    // at-power pressure floor applies

	// sub-models
	smdl *solid.Model   // solid-plant model (nil when starting two-phase)
	pmdl *pzr.Model     // two-phase phase-change model
	slv  *solver.Solver // coupled P-T-V solver
}

// NewEngine builds an engine from a simulation definition. The initial
// regime follows the scenario: at-power scenarios start two-phase with
// the bubble already drawn; otherwise the plant starts water-solid.
func NewEngine(sim *inp.Simulation, obs out.Observer) (o *Engine) {

	scn := &sim.Scenario
	mdl, err := prop.New(scn.PropName)
	if err != nil {
		chk.Panic("NewEngine: %v", err)
	}
	err = mdl.Init(nil)
	if err != nil {
		chk.Panic("NewEngine: cannot initialise property model: %v", err)
	}
	if obs == nil {
		obs = out.Null{}
	}

	o = &Engine{
		Cfg:     &sim.Config,
		Mdl:     mdl,
		Obs:     obs,
		Dt:      scn.Dt,
		atPower: scn.AtPower,
	}
	o.pmdl = pzr.NewModel(o.Cfg, mdl)
	o.slv = solver.New(o.Cfg, mdl)

	mRcs := mdl.WaterDensity(scn.Tini, scn.Pini) * o.Cfg.Geom.RcsVolume
	o.Sta = PrimarySystemState{
		Pressure:    scn.Pini,
		Temperature: scn.Tini,
		RcsVolume:   o.Cfg.Geom.RcsVolume,
	}

	if scn.AtPower {
		// two-phase start: bubble drawn at the target level
		ps := pzr.FormBubble(o.Cfg, mdl, scn.Pini, mdl.SaturationTemperature(scn.Pini))
		o.Led = NewLedger(mRcs + ps.TotalMass())
		o.Sta.RcsWaterMass = mRcs
		o.Reg = TwoPhaseRegime{ps}
		return
	}

	// water-solid start
	var ss *solid.State
	o.smdl, ss = solid.NewModel(o.Cfg, mdl, scn.Pini, scn.Tini, scn.Dt)
	o.Led = NewLedger(mRcs + ss.PzrWaterMass)
	o.Sta.RcsWaterMass = mRcs
	o.Reg = SolidRegime{ss}
	return
}

// Step advances the simulation by one tick
func (o *Engine) Step(in *inp.Inputs) {
	o.Time += o.Dt
	switch r := o.Reg.(type) {
	case SolidRegime:
		o.stepSolid(r.S, in)
	case TwoPhaseRegime:
		o.stepTwoPhase(r.S, in)
	}
}

// Run executes the full scenario tick loop
func (o *Engine) Run(b *inp.Boundary, nticks int) {
	for i := 0; i < nticks; i++ {
		in := b.At(o.Time + o.Dt)
		o.Step(&in)
	}
}

// stepSolid runs one water-solid tick and performs the one-way
// transition to the two-phase regime when the bubble forms
func (o *Engine) stepSolid(s *solid.State, in *inp.Inputs) {

	o.smdl.Update(s, in, o.Dt)

	// ledger transactions at the RCS density
	ρ := o.Mdl.WaterDensity(s.Trcs, s.Pressure)
	cvt := inp.GpmToCfs * o.Dt * ρ
	if s.Mode != solid.IsolatedNoFlow {
		letdown := in.Letdown + o.smdl.AppliedTrim()
		if letdown < o.Cfg.Cvcs.LetdownMin {
			letdown = o.Cfg.Cvcs.LetdownMin
		}
		if letdown > o.Cfg.Cvcs.LetdownMax {
			letdown = o.Cfg.Cvcs.LetdownMax
		}
		o.Led.ReceiveCharging(in.Charging * cvt)
		o.Led.ReceiveLetdown(letdown * cvt)
		o.Led.ReceiveSealLeakoff(in.Seal * cvt)
	}
	if s.ReliefFlow > 0 {
		o.Led.ReceiveReliefLoss(s.ReliefFlow * cvt)
	}

	// system-level state
	o.Sta.Pressure = s.Pressure
	o.Sta.Temperature = s.Trcs
	o.Sta.RcsWaterMass = o.Led.Total() - s.PzrWaterMass
	o.Sta.Stats = solver.Stats{}

	// bubble formation: the single transition tick
	if s.BubbleFormed {
		ps := pzr.FormBubble(o.Cfg, o.Mdl, s.Pressure, s.Tpzr)
		o.Sta.RcsWaterMass = o.Led.Total() - ps.TotalMass()
		o.Reg = TwoPhaseRegime{ps}
	}

	o.checkSolid(s)
	o.observe(s.Tpzr, s.ReliefFlow, 0)
}

// stepTwoPhase runs one two-phase tick: ledger transactions, transient
// heat + equilibrium re-solve, then the reduced pressurizer path
func (o *Engine) stepTwoPhase(s *pzr.State, in *inp.Inputs) {

	// ledger transactions at the RCS density
	ρ := o.Mdl.WaterDensity(o.Sta.Temperature, s.Pressure)
	cvt := inp.GpmToCfs * o.Dt * ρ
	if in.Charging > o.Cfg.Cvcs.IsolatedFlowTol {
		o.Led.ReceiveCharging(in.Charging * cvt)
	}
	if in.Letdown > o.Cfg.Cvcs.IsolatedFlowTol {
		letdown := in.Letdown
		if letdown > o.Cfg.Cvcs.LetdownMax {
			letdown = o.Cfg.Cvcs.LetdownMax
		}
		o.Led.ReceiveLetdown(letdown * cvt)
	}
	if in.Seal > 0 {
		o.Led.ReceiveSealLeakoff(in.Seal * cvt)
	}

	// transient heat and coupled equilibrium on the canonical total
	Tnew, mRcs, sts := o.slv.SolveTransient(s, o.Led.Total(), o.Sta.Temperature,
		o.Sta.RcsWaterMass, in.Qrcs, o.Dt, o.atPower)

	// phase-change dynamics layered on top; inventory-conserving, so
	// the finalized RCS mass remains valid
	o.slv.SolveWithPressurizer(s, o.pmdl, in, o.Dt, o.atPower)

	o.Sta.Pressure = s.Pressure
	o.Sta.Temperature = Tnew
	o.Sta.RcsWaterMass = mRcs
	o.Sta.Stats = sts

	o.checkTwoPhase(s)
	o.observe(s.WaterTemp, 0, s.NetSteamRate)
}

// observe emits the per-tick sample
func (o *Engine) observe(Tpzr, relief, netSteam float64) {
	smp := out.Sample{
		Time:         o.Time,
		Pressure:     o.Sta.Pressure,
		Temperature:  o.Sta.Temperature,
		PzrTemp:      Tpzr,
		RcsWaterMass: o.Sta.RcsWaterMass,
		TotalMass:    o.Led.Total(),
		NetSteamRate: netSteam,
		ReliefFlow:   relief,
		Mode:         o.Reg.Tag(),
		Iterations:   o.Sta.Stats.Iterations,
		Converged:    o.Sta.Stats.Converged,
	}
	if r, isTwoPhase := o.Reg.(TwoPhaseRegime); isTwoPhase {
		smp.Level = r.S.Level()
		smp.PzrWaterMass = r.S.WaterMass
		smp.PzrSteamMass = r.S.SteamMass
	}
	o.Obs.Observe(smp)
}

// checkSolid verifies the water-solid invariants
func (o *Engine) checkSolid(s *solid.State) {
	if !o.Cfg.Diag.CheckInvariants {
		return
	}
	if s.Pressure < 14.695 && !o.Cfg.Diag.AllowSubAtmospheric {
		chk.Panic("plant: pressure %g below atmospheric floor", s.Pressure)
	}
	if s.Pressure > o.Cfg.Solver.Pceiling+1e-8 {
		chk.Panic("plant: pressure %g above ceiling", s.Pressure)
	}
	if s.PzrWaterMass <= 0 {
		chk.Panic("plant: pressurizer drained while water-solid (m=%g)", s.PzrWaterMass)
	}
}

// checkTwoPhase verifies the two-phase invariants
func (o *Engine) checkTwoPhase(s *pzr.State) {
	if !o.Cfg.Diag.CheckInvariants {
		return
	}
	total := o.Led.Total()
	if diff := math.Abs(o.Sta.RcsWaterMass + s.TotalMass() - total); diff > 1e-6*total {
		chk.Panic("plant: mass sum differs from ledger total by %g lbm", diff)
	}
	V := s.WaterVolume + s.SteamVolume
	if math.Abs(V-o.Cfg.Geom.PzrVolume) > 1e-6*o.Cfg.Geom.PzrVolume {
		chk.Panic("plant: pressurizer volume sum %g differs from vessel volume", V)
	}
	if s.SteamVolume < o.Cfg.Geom.MinSteamVolume-1e-8 {
		chk.Panic("plant: steam space %g below minimum", s.SteamVolume)
	}
	if !s.BubbleFormed {
		chk.Panic("plant: two-phase regime with BubbleFormed unset")
	}
}
