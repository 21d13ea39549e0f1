package drive

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/vovakirdan/neon-drive/internal/config"
)

// RunState is everything one run mutates. It is owned by the Run and
// advanced once per tick; tests may build one directly.
type RunState struct {
	Vehicle     Vehicle
	Stage       Stage
	StageIndex  int
	Score       Scoring
	TimerOrigin *time.Time // nil until the clock starts; never reset within a run
	WinHold     float64    // milliseconds held near, stopped and gated
	Mission     *Mission
	Message     string

	// Now is the wall-clock time of the current tick.
	Now time.Time

	cfg        *config.DriveConfig
	difficulty *config.DifficultyManager
	rng        *rand.Rand
	events     eventQueue
}

// NewRunState prepares a run at stage 0. The stage layout draws from rng.
func NewRunState(cfg *config.DriveConfig, rng *rand.Rand, now time.Time, withCombo bool) *RunState {
	dm := config.NewDifficultyManager(*cfg)
	rs := &RunState{
		Score:      NewScoring(cfg.Scoring, dm.PenaltyFactor(), withCombo),
		Now:        now,
		cfg:        cfg,
		difficulty: dm,
		rng:        rng,
	}
	return rs
}

// loadStage replaces the active stage with stage i of the sequence.
func (rs *RunState) loadStage(i int) {
	rs.StageIndex = i
	rs.WinHold = 0
	rs.Stage = rs.setupStage(stageOrder[i])
	rs.events.emit(EventStageStart, rs.Stage.Title)
}

// lastStage reports whether the active stage ends the run.
func (rs *RunState) lastStage() bool {
	return rs.StageIndex >= len(stageOrder)-1
}

// startTimer sets the timer origin once.
func (rs *RunState) startTimer() {
	if rs.TimerOrigin != nil {
		return
	}
	t := rs.Now
	rs.TimerOrigin = &t
}

// Elapsed is wall time since the origin plus penalties, or 0 before the
// origin is set.
func (rs *RunState) Elapsed() float64 {
	if rs.TimerOrigin == nil {
		return 0
	}
	return rs.Now.Sub(*rs.TimerOrigin).Seconds() + rs.Score.Penalty
}

// penalize applies a penalty and raises the matching event.
func (rs *RunState) penalize(seconds float64, kind PenaltyKind, reason string) {
	applied := rs.Score.AddPenalty(seconds, kind)
	if applied > 0 {
		rs.events.emit(EventPenalty, fmt.Sprintf("+%.1fs %s", applied, reason))
	}
}

// step runs one PLAY tick: timer start, vehicle, stage rules, combo decay,
// collision and the win check. It returns true when the stage is cleared.
func (rs *RunState) step(dt float64) bool {
	rs.Score.FadeShake()

	// Apart from the start light, the clock starts on the first input or motion.
	if rs.Stage.Kind != StageStartLight && rs.TimerOrigin == nil {
		c := rs.Vehicle.Controls
		if c.Gas || c.Brake || math.Abs(rs.Vehicle.Speed) > rs.cfg.Scoring.MoveStartSpeed {
			rs.startTimer()
		}
	}

	rs.Vehicle.Step(dt, rs.cfg.Vehicle)
	rs.updateStage(dt)
	rs.Score.Decay(dt)
	Resolve(rs)
	return rs.checkWin(dt)
}
