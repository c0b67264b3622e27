// Copyright 2017 The Gopwr Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements the input data read from a (.pwr) JSON file:
// the immutable plant configuration and the scenario definition
package inp

import (
	"encoding/json"
	"path/filepath"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// unit conversion factors
const (
	KwToBtuS = 0.947817  // [kW] => [BTU/s]
	GpmToCfs = 0.0022283 // [gpm] => [ft³/s]
)

// GeomData holds vessel geometry
type GeomData struct {
	RcsVolume      float64 `json:"rcsvolume"`      // RCS loop volume, excluding pressurizer [ft³]
	PzrVolume      float64 `json:"pzrvolume"`      // total pressurizer volume [ft³]
	MinSteamVolume float64 `json:"minsteamvolume"` // minimum steam space [ft³]
	PzrWaterMax    float64 `json:"pzrwatermax"`    // maximum pressurizer water volume [ft³]
	PzrHeight      float64 `json:"pzrheight"`      // pressurizer vessel height [ft]
	WallArea       float64 `json:"wallarea"`       // pressurizer wall heat-transfer area [ft²]
}

// MassData holds metal masses and specific heats
type MassData struct {
	RcsMetal float64 `json:"rcsmetal"` // RCS structural metal mass [lbm]
	PzrWall  float64 `json:"pzrwall"`  // pressurizer wall metal mass [lbm]
	CpSteel  float64 `json:"cpsteel"`  // steel specific heat [BTU/(lbm·°F)]
}

// HeaterData holds pressurizer heater data
type HeaterData struct {
	MaxPower float64 `json:"maxpower"` // total installed heater power [kW]
	LagTau   float64 `json:"lagtau"`   // first-order heater lag time constant [s]
}

// CvcsData holds charging/letdown limits
type CvcsData struct {
	LetdownMin        float64 `json:"letdownmin"`        // minimum total letdown flow [gpm]
	LetdownMax        float64 `json:"letdownmax"`        // maximum total letdown flow [gpm]
	TrimCapPressurize float64 `json:"trimcappressurize"` // trim authority in heater-pressurize mode [gpm]
	TrimCapHold       float64 `json:"trimcaphold"`       // trim authority in hold-solid mode [gpm]
	IsolatedFlowTol   float64 `json:"isolatedflowtol"`   // base flows below this are treated as isolated [gpm]
}

// ControlData holds the CVCS PI pressure controller data
type ControlData struct {
	Setpoint    float64 `json:"setpoint"`    // pressure setpoint [psia]
	Kp          float64 `json:"kp"`          // proportional gain [gpm/psi]
	Ki          float64 `json:"ki"`          // integral gain [gpm/(psi·s)]
	IntegralCap float64 `json:"integralcap"` // bound on the integral contribution [gpm]
	FilterTau   float64 `json:"filtertau"`   // pressure low-pass filter time constant [s]
	ActuatorTau float64 `json:"actuatortau"` // actuator first-order lag time constant [s]
	SlewMax     float64 `json:"slewmax"`     // actuator slew limit [gpm/s]
	DelayTime   float64 `json:"delaytime"`   // transport delay [s]
	MaxSlots    int     `json:"maxslots"`    // cap on delay ring buffer slots
	GapTol      float64 `json:"gaptol"`      // dead-time gap freezing the integrator [gpm]
	HoldBand    float64 `json:"holdband"`    // band around setpoint to enter hold-solid [psi]
	HoldDwell   float64 `json:"holddwell"`   // continuous dwell to enter hold-solid [s]
	DropBand    float64 `json:"dropband"`    // drop below setpoint exiting hold-solid [psi]
}

// ReliefData holds relief valve data
type ReliefData struct {
	OpenPsig   float64 `json:"openpsig"`   // opening pressure [psig]
	FullPsig   float64 `json:"fullpsig"`   // full-flow pressure [psig]
	ReseatPsig float64 `json:"reseatpsig"` // reseat pressure [psig]
	MaxFlow    float64 `json:"maxflow"`    // full relief flow [gpm]
}

// SolverData holds coupled P-T-V solver data
type SolverData struct {
	MaxIt       int     `json:"maxit"`       // max fixed-point iterations
	TolPressure float64 `json:"tolpressure"` // pressure-correction tolerance [psi]
	TolMass     float64 `json:"tolmass"`     // fractional mass-residual tolerance
	Relax       float64 `json:"relax"`       // relaxation factor on pressure correction
	GuessCoef   float64 `json:"guesscoef"`   // closed-form initial guess coefficient
	PfloorCold  float64 `json:"pfloorcold"`  // pressure floor before power operation [psia]
	PfloorPower float64 `json:"pfloorpower"` // pressure floor at power [psia]
	Pceiling    float64 `json:"pceiling"`    // pressure ceiling [psia]
}

// BubbleData holds bubble-formation data
type BubbleData struct {
	MinTemp     float64 `json:"mintemp"`     // minimum pressurizer temperature for bubble formation [°F]
	SatMargin   float64 `json:"satmargin"`   // bubble forms at Tpzr ≥ Tsat - SatMargin [°F]
	TargetLevel float64 `json:"targetlevel"` // post-formation water level [%]
}

// LossData holds heat-loss and conduction data
type LossData struct {
	SurgeUA    float64 `json:"surgeua"`    // surge-line conductance pressurizer<->RCS [BTU/(s·°F)]
	PzrAmbient float64 `json:"pzrambient"` // pressurizer ambient/insulation loss [BTU/s]
	RcsAmbient float64 `json:"rcsambient"` // RCS ambient/insulation loss [BTU/s]
	SteamHTC   float64 `json:"steamhtc"`   // wall<->steam region film coefficient [BTU/(hr·ft²·°F)]
	WaterHTC   float64 `json:"waterhtc"`   // wall<->liquid region film coefficient [BTU/(hr·ft²·°F)]
}

// DiagData holds diagnostics switches
type DiagData struct {
	AllowSubAtmospheric bool `json:"allowsubatm"` // disable the atmospheric pressure floor (diagnostics only)
	CheckInvariants     bool `json:"checkinv"`    // panic on conservation-invariant violations
}

// Config is the single immutable configuration injected at construction
type Config struct {
	Geom    GeomData    `json:"geom"`
	Mass    MassData    `json:"mass"`
	Heater  HeaterData  `json:"heater"`
	Cvcs    CvcsData    `json:"cvcs"`
	Control ControlData `json:"control"`
	Relief  ReliefData  `json:"relief"`
	Solver  SolverData  `json:"solver"`
	Bubble  BubbleData  `json:"bubble"`
	Loss    LossData    `json:"loss"`
	Diag    DiagData    `json:"diag"`
}

// SetDefault sets default values corresponding to a 4-loop plant
func (o *Config) SetDefault() {
	o.Geom = GeomData{
		RcsVolume:      11500,
		PzrVolume:      1800,
		MinSteamVolume: 50,
		PzrWaterMax:    1750,
		PzrHeight:      50,
		WallArea:       1100,
	}
	o.Mass = MassData{RcsMetal: 2.0e6, PzrWall: 190000, CpSteel: 0.11}
	o.Heater = HeaterData{MaxPower: 1800, LagTau: 20}
	o.Cvcs = CvcsData{
		LetdownMin:        20,
		LetdownMax:        120,
		TrimCapPressurize: 1,
		TrimCapHold:       50,
		IsolatedFlowTol:   0.1,
	}
	o.Control = ControlData{
		Setpoint:    365,
		Kp:          0.3,
		Ki:          0.003,
		IntegralCap: 25,
		FilterTau:   3,
		ActuatorTau: 10,
		SlewMax:     1.0,
		DelayTime:   60,
		MaxSlots:    24,
		GapTol:      0.5,
		HoldBand:    5,
		HoldDwell:   30,
		DropBand:    15,
	}
	o.Relief = ReliefData{OpenPsig: 450, FullPsig: 470, ReseatPsig: 445, MaxFlow: 200}
	o.Solver = SolverData{
		MaxIt:       50,
		TolPressure: 0.1,
		TolMass:     0.001,
		Relax:       0.5,
		GuessCoef:   0.85,
		PfloorCold:  15,
		PfloorPower: 1800,
		Pceiling:    2500,
	}
	o.Bubble = BubbleData{MinTemp: 400, SatMargin: 2, TargetLevel: 25}
	o.Loss = LossData{SurgeUA: 1.5, PzrAmbient: 10, RcsAmbient: 50, SteamHTC: 50, WaterHTC: 200}
	o.Diag = DiagData{AllowSubAtmospheric: false, CheckInvariants: true}
}

// Scenario holds the definition of one simulation run
type Scenario struct {

	// general
	Desc     string  `json:"desc"`     // description of scenario
	Dt       float64 `json:"dt"`       // simulation tick [s]
	Nticks   int     `json:"nticks"`   // number of ticks to run
	AtPower  bool    `json:"atpower"`  // at-power pressure floor applies
	PropName string  `json:"propname"` // property model name; e.g. "simple"

	// initial conditions
	Pini float64 `json:"pini"` // initial pressure [psia]
	Tini float64 `json:"tini"` // initial temperature, pressurizer and RCS [°F]

	// boundary-input functions (names into Functions)
	HeaterFunc    string `json:"heaterfunc"`    // heater power demand [kW]
	ChargingFunc  string `json:"chargingfunc"`  // base charging flow [gpm]
	LetdownFunc   string `json:"letdownfunc"`   // base letdown flow [gpm]
	SealFunc      string `json:"sealfunc"`      // seal leakoff flow [gpm]
	QrcsFunc      string `json:"qrcsfunc"`      // net RCS heat input [BTU/s]
	SprayFunc     string `json:"sprayfunc"`     // spray flow [gpm]
	SprayTempFunc string `json:"spraytempfunc"` // spray temperature [°F]

	// functions database
	Functions FuncsData `json:"functions"`
}

// Simulation holds all data read from a (.pwr) file
type Simulation struct {
	Config   Config   `json:"config"`
	Scenario Scenario `json:"scenario"`
	Key      string   // filename key; e.g. heatup.pwr => heatup
}

// ReadSim reads a simulation input file
func ReadSim(simfilepath string) *Simulation {

	// new simulation with defaults
	var o Simulation
	o.Config.SetDefault()
	o.Scenario.Dt = 10
	o.Scenario.PropName = "simple"

	// read and decode
	b, err := io.ReadFile(simfilepath)
	if err != nil {
		chk.Panic("ReadSim: cannot read simulation file %q", simfilepath)
	}
	err = json.Unmarshal(b, &o)
	if err != nil {
		chk.Panic("ReadSim: cannot unmarshal simulation file %q:\n%v", simfilepath, err)
	}

	// filename key
	o.Key = io.FnKey(filepath.Base(simfilepath))
	return &o
}
