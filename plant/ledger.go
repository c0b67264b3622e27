// Copyright 2017 The Gopwr Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plant

import "github.com/cpmech/gosl/chk"

// Ledger is the canonical total-primary-mass accountant. All boundary
// mass flows pass through it; the solver conserves whatever total the
// ledger reports. Transaction masses are magnitudes; a negative value
// is a programming defect.
type Ledger struct {
	total      float64 // canonical total primary mass [lbm]
	CumCharge  float64 // cumulative charging inflow [lbm]
	CumLetdown float64 // cumulative letdown outflow [lbm]
	CumSeal    float64 // cumulative seal leakoff outflow [lbm]
	CumRelief  float64 // cumulative relief outflow [lbm]
}

// NewLedger returns a ledger with the given initial total mass
func NewLedger(total float64) *Ledger {
	if total <= 0 {
		chk.Panic("Ledger: non-positive initial total mass (%g)", total)
	}
	return &Ledger{total: total}
}

// Total returns the canonical total primary mass
func (o *Ledger) Total() float64 { return o.total }

// ReceiveCharging books a charging inflow of m lbm
func (o *Ledger) ReceiveCharging(m float64) {
	o.check("charging", m)
	o.total += m
	o.CumCharge += m
}

// ReceiveLetdown books a letdown outflow of m lbm
func (o *Ledger) ReceiveLetdown(m float64) {
	o.check("letdown", m)
	o.total -= m
	o.CumLetdown += m
}

// ReceiveSealLeakoff books a seal leakoff outflow of m lbm
func (o *Ledger) ReceiveSealLeakoff(m float64) {
	o.check("seal leakoff", m)
	o.total -= m
	o.CumSeal += m
}

// ReceiveReliefLoss books a relief valve outflow of m lbm
func (o *Ledger) ReceiveReliefLoss(m float64) {
	o.check("relief", m)
	o.total -= m
	o.CumRelief += m
}

func (o *Ledger) check(path string, m float64) {
	if m < 0 {
		chk.Panic("Ledger: negative %s transaction mass (%g)", path, m)
	}
}
