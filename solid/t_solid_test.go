// Copyright 2017 The Gopwr Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solid

import (
	"math"
	"testing"

	"github.com/cpmech/gopwr/inp"
	"github.com/cpmech/gopwr/prop"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func init() {
	io.Verbose = false
}

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

func newTestModel(tst *testing.T, P0, T0, dt float64) (*inp.Config, *Model, *State) {
	cfg := new(inp.Config)
	cfg.SetDefault()
	mdl, err := prop.New("simple")
	if err != nil {
		tst.Fatalf("prop.New failed: %v\n", err)
	}
	err = mdl.Init(nil)
	if err != nil {
		tst.Fatalf("cannot initialise property model: %v\n", err)
	}
	o, s := NewModel(cfg, mdl, P0, T0, dt)
	return cfg, o, s
}

func Test_ctl01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("ctl01. controller priming, slew and lag")

	cfg := new(inp.Config)
	cfg.SetDefault()
	ctl := NewController(&cfg.Control, 400, 10)
	if len(ctl.Buf) != 6 {
		tst.Errorf("delay buffer has %d slots, expected 6\n", len(ctl.Buf))
		return
	}

	// constant 35 psi error: buffer yields zero while priming, then the
	// slew-clamped first entry followed by the lagged raw output
	expected := []float64{0, 0, 0, 0, 0, 0, 10, 10.5, 10.5, 10.5}
	for i, e := range expected {
		trim := ctl.Update(400, 10, 50)
		chk.Scalar(tst, io.Sf("trim%02d", i), 1e-12, trim, e)
	}

	// trim never exceeds the mode authority
	for i := 0; i < 50; i++ {
		trim := ctl.Update(500, 10, 50)
		if math.Abs(trim) > 50+1e-12 {
			tst.Errorf("trim %g exceeds authority\n", trim)
			return
		}
	}

	// reset clears all accumulators
	ctl.Reset(365)
	chk.Scalar(tst, "filtered", 1e-15, ctl.Filtered, 365)
	chk.Scalar(tst, "integral", 1e-15, ctl.Integral, 0)
	chk.Scalar(tst, "trim0   ", 1e-15, ctl.Update(365, 10, 50), 0)
}

func Test_rlf01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("rlf01. relief valve pop action and hysteresis")

	cfg := new(inp.Config)
	cfg.SetDefault()
	o := NewRelief(&cfg.Relief)

	// closed below the opening pressure
	chk.Scalar(tst, "flow(400psig)", 1e-15, o.Flow(400+14.696), 0)
	chk.Scalar(tst, "flow(449psig)", 1e-15, o.Flow(449+14.696), 0)

	// pop action: strictly increasing between opening and full flow
	chk.Scalar(tst, "flow(455psig)", 1e-12, o.Flow(455+14.696), 80)
	chk.Scalar(tst, "flow(460psig)", 1e-12, o.Flow(460+14.696), 120)
	chk.Scalar(tst, "flow(470psig)", 1e-12, o.Flow(470+14.696), 200)
	chk.Scalar(tst, "flow(480psig)", 1e-12, o.Flow(480+14.696), 200)
	prev := 0.0
	for pg := 451.0; pg <= 470.0; pg += 1.0 {
		f := o.Flow(pg + 14.696)
		if f <= prev && pg < 470 {
			tst.Errorf("flow %g at %g psig is not increasing\n", f, pg)
			return
		}
		prev = f
	}

	// hysteresis: stays open down to the reseat pressure
	chk.Scalar(tst, "flow(450psig)", 1e-12, o.Flow(450+14.696), 40)
	if !o.Open {
		tst.Errorf("valve must remain open above reseat pressure\n")
		return
	}
	chk.Scalar(tst, "flow(444psig)", 1e-15, o.Flow(444+14.696), 0)
	if o.Open {
		tst.Errorf("valve must reseat below reseat pressure\n")
		return
	}
}

func Test_solid01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("solid01. heater pressurization with balanced flows")

	_, o, s := newTestModel(tst, 365, 100, 10)
	m0 := s.PzrWaterMass

	in := &inp.Inputs{HeaterKw: 1800, Charging: 75, Letdown: 75}
	Plo, Phi := s.Pressure, s.Pressure
	for i := 0; i < 100; i++ {
		o.Update(s, in, 10)
		Plo = math.Min(Plo, s.Pressure)
		Phi = math.Max(Phi, s.Pressure)
	}

	// pressure moved a nonzero, bounded amount and the controller
	// reached the hold mode
	chk.Scalar(tst, "P   ", 1e-4, s.Pressure, 369.082496)
	chk.Scalar(tst, "Tpzr", 1e-4, s.Tpzr, 115.227769)
	if Plo < 360 || Phi > 383 {
		tst.Errorf("pressure excursion [%g,%g] out of bounds\n", Plo, Phi)
		return
	}
	if s.Mode != HoldSolid {
		tst.Errorf("mode %v, expected hold-solid\n", s.Mode)
		return
	}

	// pressurizer mass leaves only through surge
	chk.Scalar(tst, "surge", 1e-6, m0-s.PzrWaterMass, s.CumSurgeMass)
	chk.Scalar(tst, "cum  ", 1e-3, s.CumSurgeMass, 358.335445)
}

func Test_solid02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("solid02. isolated no-flow hold")

	_, o, s := newTestModel(tst, 365, 100, 10)

	in := &inp.Inputs{HeaterKw: 1800} // letdown and charging off
	for i := 0; i < 100; i++ {
		o.Update(s, in, 10)
		if s.Mode != IsolatedNoFlow {
			tst.Errorf("mode %v at tick %d, expected isolated-no-flow\n", s.Mode, i)
			return
		}
		chk.Scalar(tst, "trim", 1e-15, o.AppliedTrim(), 0)
	}

	// pressure rises through the thermal term alone
	if s.Pressure <= 365 {
		tst.Errorf("pressure %g did not rise under heater input\n", s.Pressure)
		return
	}
	chk.Scalar(tst, "P", 1e-4, s.Pressure, 455.532056)
}

func Test_solid03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("solid03. bubble formation is one-way and terminal")

	_, o, s := newTestModel(tst, 365, 430, 10)

	// close to saturation already: heaters push the pressurizer over
	in := &inp.Inputs{HeaterKw: 1800, Charging: 75, Letdown: 75}
	nform := 0
	for i := 0; i < 5000; i++ {
		o.Update(s, in, 10)
		if s.BubbleFormed {
			nform = i + 1
			break
		}
	}
	if !s.BubbleFormed {
		tst.Errorf("bubble did not form\n")
		return
	}
	io.Pforan("bubble formed after %d ticks at Tpzr=%g\n", nform, s.BubbleFormationTemp)
	chk.Scalar(tst, "TpzrFrozen", 1e-14, s.BubbleFormationTemp, s.Tpzr)

	// further updates are no-ops
	before := *s
	o.Update(s, in, 10)
	if *s != before {
		tst.Errorf("state changed after bubble formation\n")
		return
	}
}
