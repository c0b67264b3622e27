// Copyright 2017 The Gopwr Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pzr

import (
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

func newTestModel(tst *testing.T) (*inp.Config, prop.Model, *Model) {
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
	return cfg, mdl, NewModel(cfg, mdl)
}

func Test_pzr01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("pzr01. phase-change rates")

	_, _, o := newTestModel(tst)

	// flash: zero while pressurizing or holding
	chk.Scalar(tst, "flash(dPdt=0) ", 1e-15, o.FlashRate(50000, 2250, 0), 0)
	chk.Scalar(tst, "flash(dPdt=+1)", 1e-15, o.FlashRate(50000, 2250, 1), 0)
	chk.Scalar(tst, "flash(mW=0)   ", 1e-15, o.FlashRate(0, 2250, -1), 0)

	// flash: magnitude, linearity and cap
	chk.Scalar(tst, "flash(-1)  ", 1e-6, o.FlashRate(50000, 2250, -1), 10.39748009)
	chk.Scalar(tst, "flash(-0.5)", 1e-6, o.FlashRate(50000, 2250, -0.5), 5.198740045)
	chk.Scalar(tst, "flash(-100)", 1e-10, o.FlashRate(50000, 2250, -100), 500)

	// flash: strictly increasing in |dPdt| up to the cap
	prev := 0.0
	for _, dPdt := range []float64{-0.1, -0.5, -1, -2, -5} {
		rate := o.FlashRate(50000, 2250, dPdt)
		if rate <= prev {
			tst.Errorf("flash rate %g at dPdt=%g is not greater than %g\n", rate, dPdt, prev)
			return
		}
		prev = rate
	}

	// heater
	chk.Scalar(tst, "heater(1800,400) ", 1e-7, o.HeaterSteamRate(1800, 400), 2.186134501)
	chk.Scalar(tst, "heater(150,2250) ", 1e-8, o.HeaterSteamRate(150, 2250), 0.3554040539)
	chk.Scalar(tst, "heater(0)        ", 1e-15, o.HeaterSteamRate(0, 400), 0)

	// spray: zero without subcooling, magnitude otherwise
	chk.Scalar(tst, "spray(sat)  ", 1e-15, o.SprayCondRate(100, 700, 2250), 0)
	chk.Scalar(tst, "spray(off)  ", 1e-15, o.SprayCondRate(0, 558, 2250), 0)
	chk.Scalar(tst, "spray(558)  ", 1e-7, o.SprayCondRate(100, 558, 2250), 3.228639982)

	// wall: zero above saturation, magnitude below
	chk.Scalar(tst, "wall(hot) ", 1e-15, o.WallCondRate(2250, 660), 0)
	chk.Scalar(tst, "wall(600) ", 1e-7, o.WallCondRate(2250, 600), 5.376090778)
	chk.Scalar(tst, "htc(600)  ", 1e-6, o.FilmHTC(2250, 600), 131.2961509)

	// rainout: zero at saturation, magnitude and cap below
	chk.Scalar(tst, "rain(sat)  ", 1e-15, o.RainoutRate(5000, 654, 2250), 0)
	chk.Scalar(tst, "rain(640)  ", 1e-6, o.RainoutRate(5000, 640, 2250), 136.0654165)
	chk.Scalar(tst, "rain(cap)  ", 1e-10, o.RainoutRate(5000, 100, 2250), 500)
	chk.Scalar(tst, "rain(mS=0) ", 1e-15, o.RainoutRate(0, 640, 2250), 0)
}

func Test_pzr02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("pzr02. bubble seeding and update")

	cfg, mdl, o := newTestModel(tst)

	s := FormBubble(cfg, mdl, 400, mdl.SaturationTemperature(400))
	if !s.BubbleFormed {
		tst.Errorf("FormBubble must set BubbleFormed\n")
		return
	}
	if s.IsSolid() {
		tst.Errorf("IsSolid must be false after FormBubble\n")
		return
	}
	chk.Scalar(tst, "level", 1e-12, s.Level(), 25.0)
	chk.Scalar(tst, "Vw   ", 1e-12, s.WaterVolume, 450)
	chk.Scalar(tst, "mW   ", 1e-5, s.WaterMass, 24712.32136)
	chk.Scalar(tst, "mS   ", 1e-6, s.SteamMass, 1163.33128)

	// one tick with heaters on: inventory conserved, net boiling
	total0 := s.TotalMass()
	in := &inp.Inputs{HeaterKw: 1000}
	o.Update(s, in, 1.0)
	chk.Scalar(tst, "heff ", 1e-12, s.HeaterEffectivePower, 50)
	chk.Scalar(tst, "net  ", 1e-8, s.NetSteamRate, 0.06072595836)
	chk.Scalar(tst, "mW   ", 1e-5, s.WaterMass, 24712.26063)
	chk.Scalar(tst, "mS   ", 1e-6, s.SteamMass, 1163.392006)
	chk.Scalar(tst, "total", 1e-9*total0, s.TotalMass(), total0)
	Tsat := mdl.SaturationTemperature(s.Pressure)
	chk.Scalar(tst, "Twat ", 1e-12, s.WaterTemp, Tsat)
	chk.Scalar(tst, "Tst  ", 1e-12, s.SteamTemp, Tsat)
	if s.WallTemp > Tsat+10 {
		tst.Errorf("wall temperature %g above clamp window\n", s.WallTemp)
		return
	}
}

func Test_pzr03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("pzr03. clamps conserve inventory")

	cfg, mdl, o := newTestModel(tst)

	// almost no steam: the minimum steam space must be restored by
	// transfer, keeping the total untouched
	P := 400.0
	ρg := mdl.SaturatedSteamDensity(P)
	s := &State{
		Pressure:  P,
		WaterMass: 90000,
		SteamMass: 0.1 * cfg.Geom.MinSteamVolume * ρg,
		WallTemp:  mdl.SaturationTemperature(P),
	}
	s.BubbleFormed = true
	total0 := s.TotalMass()
	o.Update(s, &inp.Inputs{}, 1.0)
	if s.SteamVolume < cfg.Geom.MinSteamVolume-1e-8 {
		tst.Errorf("steam space %g below minimum\n", s.SteamVolume)
		return
	}
	chk.Scalar(tst, "total", 1e-9*total0, s.TotalMass(), total0)
	chk.Scalar(tst, "Vsum ", 1e-9, s.WaterVolume+s.SteamVolume, cfg.Geom.PzrVolume)

	// drained water region: mass must not go negative
	s = &State{
		Pressure:  P,
		WaterMass: 0.01,
		SteamMass: 2000,
		WallTemp:  mdl.SaturationTemperature(P),
	}
	s.BubbleFormed = true
	total0 = s.TotalMass()
	o.Update(s, &inp.Inputs{HeaterKw: 1800}, 10.0)
	if s.WaterMass < 0 {
		tst.Errorf("negative water mass %g\n", s.WaterMass)
		return
	}
	chk.Scalar(tst, "total", 1e-9*total0, s.TotalMass(), total0)
}
