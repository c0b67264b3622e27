// Copyright 2017 The Gopwr Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
	"github.com/cpmech/gosl/fun/dbf"
)

// FuncData holds function definition
type FuncData struct {
	Name string     `json:"name"` // name of function. ex: heaterfull, rampup
	Type string     `json:"type"` // type of function. ex: cte, rmp
	Prms dbf.Params `json:"prms"` // parameters
}

// FuncsData holds functions
type FuncsData []*FuncData

// Get returns function by name
func (o FuncsData) Get(name string) (fcn fun.TimeSpace, err error) {
	if name == "zero" || name == "none" || name == "" {
		fcn = &fun.Zero
		return
	}
	for _, f := range o {
		if f.Name == name {
			fcn, err = fun.New(f.Type, f.Prms)
			if err != nil {
				err = chk.Err("cannot get function named %q because of the following error:\n%v", name, err)
			}
			return
		}
	}
	err = chk.Err("cannot find function named %q", name)
	return
}

// Inputs holds the boundary inputs of one simulation tick
type Inputs struct {
	HeaterKw  float64 // heater power demand [kW]
	Charging  float64 // base charging flow [gpm]
	Letdown   float64 // base letdown flow [gpm]
	Seal      float64 // seal leakoff flow [gpm]
	Qrcs      float64 // net RCS heat input [BTU/s]
	Spray     float64 // spray flow [gpm]
	SprayTemp float64 // spray temperature [°F]
}

// Boundary holds resolved input functions
type Boundary struct {
	heater, charging, letdown, seal, qrcs, spray, spraytemp fun.TimeSpace
}

// Boundary resolves the scenario's named input functions
func (o *Scenario) Boundary() (b *Boundary, err error) {
	b = new(Boundary)
	type item struct {
		dst  *fun.TimeSpace
		name string
	}
	for _, it := range []item{
		{&b.heater, o.HeaterFunc},
		{&b.charging, o.ChargingFunc},
		{&b.letdown, o.LetdownFunc},
		{&b.seal, o.SealFunc},
		{&b.qrcs, o.QrcsFunc},
		{&b.spray, o.SprayFunc},
		{&b.spraytemp, o.SprayTempFunc},
	} {
		*it.dst, err = o.Functions.Get(it.name)
		if err != nil {
			return nil, err
		}
	}
	return
}

// At evaluates the boundary inputs at time t
func (o *Boundary) At(t float64) (in Inputs) {
	in.HeaterKw = o.heater.F(t, nil)
	in.Charging = o.charging.F(t, nil)
	in.Letdown = o.letdown.F(t, nil)
	in.Seal = o.seal.F(t, nil)
	in.Qrcs = o.qrcs.F(t, nil)
	in.Spray = o.spray.F(t, nil)
	in.SprayTemp = o.spraytemp.F(t, nil)
	return
}
