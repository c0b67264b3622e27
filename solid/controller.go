// Copyright 2017 The Gopwr Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solid

import (
	"math"

	"github.com/cpmech/gopwr/inp"
)

// Controller implements the CVCS PI pressure controller chain:
// low-pass error filter => PI with clamped integral and anti-windup =>
// actuator first-order lag => slew limiter => transport-delay ring
// buffer. The buffer output (written one delay period earlier) is the
// trim actually applied to letdown flow.
type Controller struct {

	// configuration
	cfg *inp.ControlData

	// state
	Filtered float64   // low-pass filtered pressure [psia]
	Integral float64   // integral accumulator [psi·s]
	LagY     float64   // actuator lag output [gpm]
	SlewY    float64   // slew-limited output [gpm]
	Buf      []float64 // transport-delay ring buffer [gpm]
	Head     int       // ring buffer head index
}

// NewController returns a new controller with the delay buffer sized to
// ⌈delay/dt⌉ slots, capped at the configured maximum
func NewController(cfg *inp.ControlData, P0, dt float64) (o *Controller) {
	n := int(math.Ceil(cfg.DelayTime / dt))
	if n < 1 {
		n = 1
	}
	if n > cfg.MaxSlots {
		n = cfg.MaxSlots
	}
	return &Controller{
		cfg:      cfg,
		Filtered: P0,
		Buf:      make([]float64, n),
	}
}

// Reset zeroes all accumulators (entering isolated/no-flow hold)
func (o *Controller) Reset(P float64) {
	o.Filtered = P
	o.Integral = 0
	o.LagY = 0
	o.SlewY = 0
	for i := range o.Buf {
		o.Buf[i] = 0
	}
	o.Head = 0
}

// Update advances the controller by one tick and returns the letdown
// trim [gpm] to apply now. cap is the trim authority of the current
// mode. While the ring buffer is still priming the returned trim is
// zero: no correction is applied until the first written slot has
// traversed the full delay period.
func (o *Controller) Update(P, dt, cap float64) (trim float64) {

	// low-pass filter on pressure; the coefficient is clamped at one so
	// that coarse ticks cannot destabilize the explicit filter
	α := dt / o.cfg.FilterTau
	if α > 1 {
		α = 1
	}
	o.Filtered += (P - o.Filtered) * α
	err := o.Filtered - o.cfg.Setpoint

	// dead-time gap between the current effective output and the value
	// currently exiting the delay buffer
	gap := math.Abs(o.SlewY - o.Buf[o.Head])

	// PI with clamped raw output
	raw := o.cfg.Kp*err + o.cfg.Ki*o.Integral
	if raw > cap {
		raw = cap
	}
	if raw < -cap {
		raw = -cap
	}

	// actuator first-order lag
	α = dt / o.cfg.ActuatorTau
	if α > 1 {
		α = 1
	}
	o.LagY += (raw - o.LagY) * α

	// slew limiter
	step := o.LagY - o.SlewY
	max := o.cfg.SlewMax * dt
	slewClamped := false
	if step > max {
		step = max
		slewClamped = true
	}
	if step < -max {
		step = -max
		slewClamped = true
	}
	o.SlewY += step

	// anti-windup: freeze the integrator while the actuator is
	// slew-clamped or while the dead-time gap is open
	if !slewClamped && gap <= o.cfg.GapTol {
		o.Integral += err * dt
		lim := o.cfg.IntegralCap / o.cfg.Ki
		if o.Integral > lim {
			o.Integral = lim
		}
		if o.Integral < -lim {
			o.Integral = -lim
		}
	}

	// transport delay: pop the value written one delay period ago and
	// push the current effective output
	trim = o.Buf[o.Head]
	o.Buf[o.Head] = o.SlewY
	o.Head = (o.Head + 1) % len(o.Buf)
	return
}
