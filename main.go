// Copyright 2017 The Gopwr Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"github.com/cpmech/gopwr/inp"
	"github.com/cpmech/gopwr/out"
	"github.com/cpmech/gopwr/plant"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			io.PfRed("\nERROR: %v", err)
			io.Pf("See location of error below:\n")
			chk.Verbose = true
			for i := 5; i > 3; i-- {
				chk.CallerInfo(i)
			}
		}
	}()

	// read input parameters
	fnamepath, _ := io.ArgToFilename(0, "inp/data/heatup", ".pwr", true)
	verbose := io.ArgToBool(1, true)
	doplot := io.ArgToBool(2, false)

	// message
	if verbose {
		io.PfWhite("\nGopwr -- PWR Primary Loop / Pressurizer Coupling\n")
		io.Pf("Copyright 2017 The Gopwr Authors. All rights reserved.\n")
		io.Pf("Use of this source code is governed by a BSD-style\n")
		io.Pf("license that can be found in the LICENSE file.\n")

		io.Pf("\n%v\n", io.ArgsTable("INPUT ARGUMENTS",
			"filename path", "fnamepath", fnamepath,
			"show messages", "verbose", verbose,
			"plot results", "doplot", doplot,
		))
	}

	// simulation data
	sim := inp.ReadSim(fnamepath)
	scn := &sim.Scenario
	bnd, err := scn.Boundary()
	if err != nil {
		chk.Panic("cannot resolve boundary-input functions:\n%v", err)
	}

	// run tick loop
	rec := out.NewRecorder(scn.Nticks)
	eng := plant.NewEngine(sim, rec)
	eng.Run(bnd, scn.Nticks)

	// summary
	if verbose {
		last := rec.Last()
		io.Pf("\nscenario  = %q (%s)\n", sim.Key, scn.Desc)
		io.Pf("ticks     = %d (dt=%g s, t=%g s)\n", scn.Nticks, scn.Dt, last.Time)
		io.Pf("regime    = %s\n", last.Mode)
		io.Pf("pressure  = %.2f psia\n", last.Pressure)
		io.Pf("Trcs      = %.2f F\n", last.Temperature)
		io.Pf("Tpzr      = %.2f F\n", last.PzrTemp)
		io.Pf("level     = %.2f %%\n", last.Level)
		io.Pf("totalmass = %.1f lbm\n", last.TotalMass)
		io.Pf("charge    = %.1f lbm  letdown = %.1f lbm  seal = %.1f lbm  relief = %.1f lbm\n",
			eng.Led.CumCharge, eng.Led.CumLetdown, eng.Led.CumSeal, eng.Led.CumRelief)
		if last.Iterations > 0 {
			io.Pf("solver    = %d iterations (converged=%v)\n", last.Iterations, last.Converged)
		}
	}

	// plot
	if doplot {
		rec.Plot("/tmp/gopwr", sim.Key)
	}
}
