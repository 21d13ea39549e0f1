package drive

import (
	"math"
	"time"

	"github.com/vovakirdan/neon-drive/internal/core"
)

// StageKind discriminates the stage variants.
type StageKind int

const (
	StageStartLight StageKind = iota
	StageSlalom
	StageParking
)

// stageOrder is the scripted sequence of a run.
var stageOrder = []StageKind{StageStartLight, StageSlalom, StageParking}

// StageCount is the number of stages in a run.
func StageCount() int { return len(stageOrder) }

func (k StageKind) String() string {
	switch k {
	case StageStartLight:
		return "start-light"
	case StageSlalom:
		return "slalom"
	case StageParking:
		return "parking"
	default:
		return "unknown"
	}
}

// ObstacleKind tags a static rectangle.
type ObstacleKind int

const (
	ObstacleBoundary ObstacleKind = iota
	ObstacleCurb
	ObstacleParked
)

// Obstacle is a static axis-aligned rectangle.
type Obstacle struct {
	Box  core.Box
	Kind ObstacleKind
}

// Hazard is a cone. Hit only ever goes from false to true.
type Hazard struct {
	Center core.Vec2
	Radius float64
	Hit    bool
}

// TargetZone is where the vehicle must come to rest.
type TargetZone struct {
	Box core.Box
}

// LightPhase is the start light colour.
type LightPhase int

const (
	LightRed LightPhase = iota
	LightGreen
)

func (p LightPhase) String() string {
	if p == LightGreen {
		return "GREEN"
	}
	return "RED"
}

// StartLightState is the meta of the start-light stage.
type StartLightState struct {
	Phase          LightPhase
	GreenAt        time.Time
	FalseStartDone bool
	Pos            core.Vec2
}

// Gate is a slalom checkpoint on the centre line, just past a cone.
type Gate struct {
	Pos    core.Vec2
	Passed bool
}

// SlalomState is the meta of the slalom stage.
type SlalomState struct {
	Gates []Gate
}

// ParkingState is the meta of the parking stage.
type ParkingState struct {
	Reversed bool
}

// Stage is the active stage. Exactly one of Light, Slalom or Parking is
// set, matching Kind; the meta is discarded when the next stage loads.
type Stage struct {
	Kind      StageKind
	Title     string
	Intro     string
	Target    TargetZone
	Obstacles []Obstacle
	Hazards   []Hazard

	Light   *StartLightState
	Slalom  *SlalomState
	Parking *ParkingState
}

// gated reports whether the stage-specific win gate is open.
func (s *Stage) gated() bool {
	if s.Kind == StageParking {
		return s.Parking.Reversed
	}
	return true
}

// cx and cy convert layout percentages to world units.
func (rs *RunState) cx(pct float64) float64 { return rs.cfg.World.Width * pct / 100 }
func (rs *RunState) cy(pct float64) float64 { return rs.cfg.World.Height * pct / 100 }

// between draws uniformly from [lo, hi).
func (rs *RunState) between(lo, hi float64) float64 {
	return lo + rs.rng.Float64()*(hi-lo)
}

// road adds the two boundary walls either side of a road centre line.
func (rs *RunState) road(st *Stage, centerY, halfGap, thickness float64) {
	for _, y := range []float64{centerY - halfGap, centerY + halfGap} {
		st.Obstacles = append(st.Obstacles, Obstacle{
			Box:  core.NewBox(rs.cx(50), y, rs.cx(100), thickness),
			Kind: ObstacleBoundary,
		})
	}
}

// setupStage builds the layout of kind and places the vehicle.
func (rs *RunState) setupStage(kind StageKind) Stage {
	st := Stage{Kind: kind}

	switch kind {
	case StageStartLight:
		roadY := rs.cy(62)
		rs.road(&st, roadY, 100, 18)

		st.Title = "1) START LIGHT"
		st.Intro = "Wait for green. The clock starts on green, or on your first move if you jump it."
		st.Target = TargetZone{Box: core.NewBox(rs.cx(72), roadY+38, 110, 80)}

		sl := rs.cfg.StartLight
		delay := rs.between(sl.MinDelayMs, sl.MaxDelayMs)
		st.Light = &StartLightState{
			Phase:   LightRed,
			GreenAt: rs.Now.Add(time.Duration(delay * float64(time.Millisecond))),
			Pos:     core.V(rs.cx(46), roadY-130),
		}
		rs.Vehicle.Place(core.V(rs.cx(12), roadY+38), 0)
		rs.Message = "Stay ready. Wait for green."

	case StageSlalom:
		rs.road(&st, rs.cy(50), rs.cy(32), 16)

		st.Title = "2) NEON SLALOM"
		st.Intro = "Thread the cones. A cone costs time; clean gates build the combo."
		st.Target = TargetZone{Box: core.NewBox(rs.cx(88), rs.cy(50), 130, 96)}
		st.Slalom = &SlalomState{}

		sc := rs.cfg.Slalom
		n, offMin, offMax := rs.difficulty.SlalomLayout()
		baseY := rs.cy(50)
		for i := 0; i < n; i++ {
			x := core.Lerp(rs.cx(sc.StartPct), rs.cx(sc.EndPct), float64(i)/float64(n-1))
			side := -1.0
			if i%2 == 1 {
				side = 1
			}
			offset := side * rs.between(offMin, offMax)
			y := baseY + offset + rs.between(-sc.Jitter, sc.Jitter)

			st.Hazards = append(st.Hazards, Hazard{Center: core.V(x, y), Radius: sc.ConeRadius})
			st.Slalom.Gates = append(st.Slalom.Gates, Gate{Pos: core.V(x+sc.GateAhead, baseY)})
		}
		rs.Vehicle.Place(core.V(rs.cx(12), rs.cy(62)), 0)
		rs.Message = "Smooth line. Small steering inputs."

	case StageParking:
		roadY := rs.cy(64)
		rs.road(&st, roadY, 98, 16)

		px, py := rs.cx(56), roadY-40
		st.Obstacles = append(st.Obstacles,
			Obstacle{Box: core.NewBox(rs.cx(82), roadY-4, 14, 260), Kind: ObstacleCurb},
			Obstacle{Box: core.NewBox(px-120, py, 36, 76), Kind: ObstacleParked},
			Obstacle{Box: core.NewBox(px+120, py, 36, 76), Kind: ObstacleParked},
		)

		st.Title = "3) PARALLEL PARK"
		st.Intro = "Reverse gear is mandatory. Precision earns the best result."
		st.Target = TargetZone{Box: core.NewBox(px, py, 100, 76)}
		st.Parking = &ParkingState{}
		rs.Vehicle.Place(core.V(rs.cx(14), roadY+42), 0)
		rs.Message = "Shift to R and park inside the zone."
	}

	return st
}

// updateStage runs the stage-specific rules for one tick.
func (rs *RunState) updateStage(dt float64) {
	st := &rs.Stage

	switch st.Kind {
	case StageStartLight:
		rs.updateStartLight(st.Light)
	case StageSlalom:
		rs.updateSlalom(st.Slalom)
	case StageParking:
		if rs.Vehicle.Gear == GearReverse && math.Abs(rs.Vehicle.Speed) > rs.cfg.Win.ReverseSpeed {
			st.Parking.Reversed = true
		}
	}
}

func (rs *RunState) updateStartLight(l *StartLightState) {
	if l.Phase == LightRed && !rs.Now.Before(l.GreenAt) {
		l.Phase = LightGreen
		rs.startTimer()
		rs.Message = "Green. Go!"
		rs.events.emit(EventPhaseGreen, "GREEN")
	}

	if l.Phase != LightRed {
		return
	}
	moving := math.Abs(rs.Vehicle.Speed) > rs.cfg.StartLight.MoveSpeed || rs.Vehicle.Controls.Gas
	if !moving {
		return
	}
	rs.startTimer()
	if !l.FalseStartDone {
		l.FalseStartDone = true
		rs.penalize(rs.cfg.Penalties.FalseStart, PenaltyFalseStart, "False start")
	}
}

func (rs *RunState) updateSlalom(s *SlalomState) {
	radius := rs.cfg.Slalom.GateRadius
	for i := range s.Gates {
		g := &s.Gates[i]
		if g.Passed || rs.Vehicle.Pos.X <= g.Pos.X {
			continue
		}
		g.Passed = true
		if math.Abs(rs.Vehicle.Pos.Y-g.Pos.Y) >= radius {
			continue
		}
		stats := rs.Score.Stats
		if stats.ConeHits == 0 && stats.WallHits == 0 {
			if rs.Score.Combo != nil {
				rs.Score.RewardPerfect()
				rs.events.emit(EventPerfect, "Clean gate")
			}
		} else {
			rs.Score.GateCredit()
		}
	}
}
