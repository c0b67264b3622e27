// Copyright 2017 The Gopwr Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
	"github.com/cpmech/gosl/io"
)

func init() {
	io.Verbose = false
}

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

func Test_config01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("config01. default configuration")

	var cfg Config
	cfg.SetDefault()
	chk.Scalar(tst, "rcsvolume", 1e-15, cfg.Geom.RcsVolume, 11500)
	chk.Scalar(tst, "pzrvolume", 1e-15, cfg.Geom.PzrVolume, 1800)
	chk.Scalar(tst, "setpoint ", 1e-15, cfg.Control.Setpoint, 365)
	chk.Scalar(tst, "openpsig ", 1e-15, cfg.Relief.OpenPsig, 450)
	chk.Scalar(tst, "relax    ", 1e-15, cfg.Solver.Relax, 0.5)
	if cfg.Solver.MaxIt != 50 {
		tst.Errorf("maxit = %d incorrect\n", cfg.Solver.MaxIt)
		return
	}
	if !cfg.Diag.CheckInvariants {
		tst.Errorf("invariant checking must default to on\n")
		return
	}
}

func Test_read01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("read01. heatup scenario file")

	sim := ReadSim("data/heatup.pwr")
	if sim.Key != "heatup" {
		tst.Errorf("filename key %q incorrect\n", sim.Key)
		return
	}

	scn := &sim.Scenario
	chk.Scalar(tst, "dt  ", 1e-15, scn.Dt, 10)
	chk.Scalar(tst, "pini", 1e-15, scn.Pini, 365)
	chk.Scalar(tst, "tini", 1e-15, scn.Tini, 120)
	if scn.Nticks != 2400 {
		tst.Errorf("nticks = %d incorrect\n", scn.Nticks)
		return
	}
	if scn.AtPower {
		tst.Errorf("heatup must not be an at-power scenario\n")
		return
	}
	if scn.PropName != "simple" {
		tst.Errorf("propname %q incorrect\n", scn.PropName)
		return
	}

	// defaults survive a partial config section
	chk.Scalar(tst, "setpoint", 1e-15, sim.Config.Control.Setpoint, 365)
	chk.Scalar(tst, "kp      ", 1e-15, sim.Config.Control.Kp, 0.3)

	// boundary functions resolve and evaluate
	b, err := scn.Boundary()
	if err != nil {
		tst.Errorf("cannot resolve boundary functions: %v\n", err)
		return
	}
	in := b.At(0)
	chk.Scalar(tst, "heater  ", 1e-15, in.HeaterKw, 1800)
	chk.Scalar(tst, "charging", 1e-15, in.Charging, 75)
	chk.Scalar(tst, "letdown ", 1e-15, in.Letdown, 75)
	chk.Scalar(tst, "seal    ", 1e-15, in.Seal, 0)
	chk.Scalar(tst, "qrcs    ", 1e-15, in.Qrcs, 0)

	in = b.At(10000)
	chk.Scalar(tst, "heater  ", 1e-15, in.HeaterKw, 1800)
}

func Test_func01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("func01. function database")

	fdb := FuncsData{
		&FuncData{Name: "htr", Type: "cte", Prms: []*fun.P{&fun.P{N: "c", V: 1800}}},
	}

	fcn, err := fdb.Get("htr")
	if err != nil {
		tst.Errorf("cannot get function: %v\n", err)
		return
	}
	chk.Scalar(tst, "htr(0)  ", 1e-15, fcn.F(0, nil), 1800)
	chk.Scalar(tst, "htr(100)", 1e-15, fcn.F(100, nil), 1800)

	// "zero" and empty names map to the zero function
	fcn, err = fdb.Get("zero")
	if err != nil {
		tst.Errorf("cannot get zero function: %v\n", err)
		return
	}
	chk.Scalar(tst, "zero(3)", 1e-15, fcn.F(3, nil), 0)

	// unknown names fail
	_, err = fdb.Get("missing")
	if err == nil {
		tst.Errorf("Get should have failed with unknown function name\n")
		return
	}
}
