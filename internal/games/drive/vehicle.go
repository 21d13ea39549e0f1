// Package drive implements the Neon Drive challenge: a vehicle steered
// through three scripted stages (start light, slalom, reverse parking)
// against a penalty-adjusted timer.
//
// The package is pure simulation. Time comes from a core.Clock and
// randomness from an injected *rand.Rand, so a fixed seed and a manual
// clock replay a run exactly.
package drive

import (
	"math"

	"github.com/vovakirdan/neon-drive/internal/config"
	"github.com/vovakirdan/neon-drive/internal/core"
)

// Gear is the selected direction of travel.
type Gear int

const (
	GearDrive   Gear = 1
	GearReverse Gear = -1
)

// String returns the gear letter shown on the HUD.
func (g Gear) String() string {
	if g == GearReverse {
		return "R"
	}
	return "D"
}

// Controls are the per-tick driver inputs.
type Controls struct {
	SteerTarget float64 // -1 full left .. +1 full right
	Gas         bool
	Brake       bool
}

// Vehicle is the simulated car. Pos is the centre of the footprint and
// Heading is in radians, 0 pointing along +X.
type Vehicle struct {
	Pos      core.Vec2
	Heading  float64
	Speed    float64 // signed, positive is forward
	Steer    float64 // current front wheel angle
	Gear     Gear
	Controls Controls
}

// Place puts the vehicle at rest at pos, facing heading, in drive.
func (v *Vehicle) Place(pos core.Vec2, heading float64) {
	*v = Vehicle{Pos: pos, Heading: heading, Gear: GearDrive}
}

// ToggleGear flips between drive and reverse.
func (v *Vehicle) ToggleGear() {
	v.Gear = -v.Gear
}

// Corners returns the oriented footprint of the vehicle.
func (v *Vehicle) Corners(p config.VehicleConfig) [4]core.Vec2 {
	return footprint(p).Corners(v.Pos, v.Heading)
}

func footprint(p config.VehicleConfig) core.Footprint {
	return core.Footprint{Front: p.Front, Back: p.Back, HalfWidth: p.HalfWidth}
}

// Step integrates one tick of arcade dynamics. It never fails: every
// branch is a total function of bounded inputs.
func (v *Vehicle) Step(dt float64, p config.VehicleConfig) {
	v.steer(dt, p)
	v.throttle(dt, p)

	v.Speed = core.ClampF(v.Speed, -p.MaxReverse, p.MaxForward)

	// Bicycle model; below the turn speed the car is treated as parked.
	if math.Abs(v.Speed) > p.MinTurnSpeed {
		angVel := v.Speed / p.Wheelbase * math.Tan(v.Steer)
		v.Heading += angVel * dt
		v.Pos = v.Pos.Add(core.FromAngle(v.Heading).Scale(v.Speed * dt))
	}
}

func (v *Vehicle) steer(dt float64, p config.VehicleConfig) {
	target := core.ClampF(v.Controls.SteerTarget, -1, 1) * p.MaxSteer

	var alpha float64
	if p.SteerSmoothing == "exp" {
		alpha = 1 - math.Exp(-p.SteerRate*dt)
	} else {
		alpha = dt * p.SteerRate
	}
	v.Steer = core.Lerp(v.Steer, target, core.ClampF(alpha, 0, 1))
}

func (v *Vehicle) throttle(dt float64, p config.VehicleConfig) {
	switch {
	case v.Controls.Gas:
		acc := p.AccelForward
		if v.Gear == GearReverse {
			acc = p.AccelReverse
		}
		v.Speed += acc * dt * float64(v.Gear)
	case v.Controls.Brake:
		if math.Abs(v.Speed) > p.BrakeSnap {
			v.Speed -= core.Sign(v.Speed) * p.Brake * dt
		} else {
			v.Speed = 0
		}
	default:
		v.Speed -= v.Speed * p.Drag * dt
		if math.Abs(v.Speed) < p.DragSnap {
			v.Speed = 0
		}
	}
}
