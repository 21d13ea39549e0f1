package drive

import "math"

// checkWin runs the shared hold-to-validate rule after the stage update.
// It returns true on the tick the stage is cleared.
func (rs *RunState) checkWin(dt float64) bool {
	target := rs.Stage.Target.Box
	v := &rs.Vehicle
	wc := rs.cfg.Win

	near := v.Pos.Dist(target.Center) < math.Max(target.W, target.H)*wc.NearFactor
	stopped := math.Abs(v.Speed) < wc.StopSpeed

	if !rs.Stage.gated() {
		if near {
			rs.Message = "Reverse gear required (R)."
		}
		rs.WinHold = 0
		return false
	}

	if !near || !stopped {
		rs.WinHold = 0
		return false
	}

	rs.WinHold += dt * 1000
	if rs.WinHold <= wc.HoldMs {
		rs.Message = "Validating..."
		return false
	}

	inside := rs.cornersInside()
	if inside == 4 {
		rs.Score.RewardPerfect()
		rs.events.emit(EventPerfect, "Perfect stop")
	} else {
		missing := float64(4 - inside)
		rs.penalize(missing*rs.cfg.Penalties.PrecisionPerCorner, PenaltyPrecision, "Precision")
	}
	rs.WinHold = 0
	return true
}

// cornersInside counts footprint corners strictly inside the target.
func (rs *RunState) cornersInside() int {
	n := 0
	for _, p := range rs.Vehicle.Corners(rs.cfg.Vehicle) {
		if rs.Stage.Target.Box.ContainsStrict(p) {
			n++
		}
	}
	return n
}
