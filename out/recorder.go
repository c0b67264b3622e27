// Copyright 2017 The Gopwr Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

// Recorder accumulates the full time series of a run
type Recorder struct {
	T      []float64 // time [s]
	P      []float64 // pressure [psia]
	Trcs   []float64 // RCS temperature [°F]
	Tpzr   []float64 // pressurizer temperature [°F]
	Level  []float64 // pressurizer level [%]
	Mtotal []float64 // ledger total mass [lbm]
	Relief []float64 // relief flow [gpm]
	Modes  []string  // regime/mode tags
	Niter  []int     // solver iterations
	Conv   []bool    // solver convergence
}

// NewRecorder returns a recorder with capacity for nticks samples
func NewRecorder(nticks int) (o *Recorder) {
	o = new(Recorder)
	o.T = make([]float64, 0, nticks)
	o.P = make([]float64, 0, nticks)
	o.Trcs = make([]float64, 0, nticks)
	o.Tpzr = make([]float64, 0, nticks)
	o.Level = make([]float64, 0, nticks)
	o.Mtotal = make([]float64, 0, nticks)
	o.Relief = make([]float64, 0, nticks)
	o.Modes = make([]string, 0, nticks)
	o.Niter = make([]int, 0, nticks)
	o.Conv = make([]bool, 0, nticks)
	return
}

// Observe appends one sample
func (o *Recorder) Observe(smp Sample) {
	o.T = append(o.T, smp.Time)
	o.P = append(o.P, smp.Pressure)
	o.Trcs = append(o.Trcs, smp.Temperature)
	o.Tpzr = append(o.Tpzr, smp.PzrTemp)
	o.Level = append(o.Level, smp.Level)
	o.Mtotal = append(o.Mtotal, smp.TotalMass)
	o.Relief = append(o.Relief, smp.ReliefFlow)
	o.Modes = append(o.Modes, smp.Mode)
	o.Niter = append(o.Niter, smp.Iterations)
	o.Conv = append(o.Conv, smp.Converged)
}

// Last returns the last recorded sample values; zero sample if empty
func (o *Recorder) Last() (smp Sample) {
	n := len(o.T)
	if n == 0 {
		return
	}
	i := n - 1
	smp.Time = o.T[i]
	smp.Pressure = o.P[i]
	smp.Temperature = o.Trcs[i]
	smp.PzrTemp = o.Tpzr[i]
	smp.Level = o.Level[i]
	smp.TotalMass = o.Mtotal[i]
	smp.ReliefFlow = o.Relief[i]
	smp.Mode = o.Modes[i]
	smp.Iterations = o.Niter[i]
	smp.Converged = o.Conv[i]
	return
}
