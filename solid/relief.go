// Copyright 2017 The Gopwr Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solid

import "github.com/cpmech/gopwr/inp"

// Relief implements the relief valve: closed below the opening
// pressure, pop action with a linear ramp to full flow, hysteresis
// reseat below the opening pressure.
type Relief struct {
	cfg  *inp.ReliefData
	Open bool // valve is open
}

// NewRelief returns a new relief valve
func NewRelief(cfg *inp.ReliefData) *Relief {
	return &Relief{cfg: cfg}
}

// Flow returns the relief flow [gpm] for pressure P [psia], advancing
// the open/reseat hysteresis
func (o *Relief) Flow(P float64) float64 {
	pg := P - 14.696 // [psig]
	if !o.Open && pg > o.cfg.OpenPsig {
		o.Open = true
	}
	if o.Open && pg < o.cfg.ReseatPsig {
		o.Open = false
	}
	if !o.Open {
		return 0
	}
	span := o.cfg.FullPsig - o.cfg.ReseatPsig
	f := (pg - o.cfg.ReseatPsig) / span
	if f < 0 {
		f = 0
	}
	if f > 1 {
		f = 1
	}
	return o.cfg.MaxFlow * f
}
