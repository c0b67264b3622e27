// Copyright 2017 The Gopwr Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plant

import (
	"github.com/cpmech/gopwr/pzr"
	"github.com/cpmech/gopwr/solid"
)

// Regime is the tagged union of operating regimes. The two-phase model
// is reachable only through TwoPhaseRegime, so routing phase-change
// physics to a water-solid plant cannot be expressed.
type Regime interface {
	regime() // unexported marker: only the two types below qualify
	Tag() string
}

// SolidRegime is the pre-bubble regime carrying the solid-plant state
type SolidRegime struct {
	S *solid.State
}

// TwoPhaseRegime is the post-bubble regime carrying the pressurizer state
type TwoPhaseRegime struct {
	S *pzr.State
}

func (o SolidRegime) regime()    {}
func (o TwoPhaseRegime) regime() {}

// Tag returns the regime name
func (o SolidRegime) Tag() string { return "solid:" + o.S.Mode.String() }

// Tag returns the regime name
func (o TwoPhaseRegime) Tag() string { return "two-phase" }
