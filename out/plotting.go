// Copyright 2017 The Gopwr Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"github.com/cpmech/gosl/plt"
)

// Plot draws the recorded time series: pressure, temperatures, level
// and relief flow versus time, saving an eps file to dirout
func (o *Recorder) Plot(dirout, fnkey string) {

	plt.SetForEps(1.2, 500)

	plt.Subplot(4, 1, 1)
	plt.Plot(o.T, o.P, "'b-', clip_on=0")
	plt.Gll("$t$ [s]", "$P$ [psia]", "")

	plt.Subplot(4, 1, 2)
	plt.Plot(o.T, o.Trcs, "'r-', clip_on=0, label='RCS'")
	plt.Plot(o.T, o.Tpzr, "'m-', clip_on=0, label='PZR'")
	plt.Gll("$t$ [s]", "$T$ [F]", "")

	plt.Subplot(4, 1, 3)
	plt.Plot(o.T, o.Level, "'g-', clip_on=0")
	plt.Gll("$t$ [s]", "level [%]", "")

	plt.Subplot(4, 1, 4)
	plt.Plot(o.T, o.Relief, "'k-', clip_on=0")
	plt.Gll("$t$ [s]", "relief [gpm]", "")

	plt.SaveD(dirout, fnkey+".eps")
}
