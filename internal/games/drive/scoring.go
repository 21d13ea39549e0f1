package drive

import (
	"math"

	"github.com/vovakirdan/neon-drive/internal/config"
)

// PenaltyKind classifies a penalty for the per-kind counters.
type PenaltyKind string

const (
	PenaltyBoundary   PenaltyKind = "boundary"
	PenaltyWall       PenaltyKind = "wall"
	PenaltyCone       PenaltyKind = "cone"
	PenaltyFalseStart PenaltyKind = "false-start"
	PenaltyPrecision  PenaltyKind = "precision"
)

// breaksClean reports whether the kind spoils a clean run.
func (k PenaltyKind) breaksClean() bool {
	return k == PenaltyBoundary || k == PenaltyWall || k == PenaltyCone
}

// RunStats are the counters read at finish. Boundary exits count as wall
// hits as well as boundary hits.
type RunStats struct {
	ConeHits         int
	WallHits         int
	BoundaryHits     int
	FalseStarts      int
	PrecisionPenalty float64
	FinalTime        float64
}

// Combo is the optional multiplier rewarding clean driving.
// Value stays within [1, cfg.ComboMax].
type Combo struct {
	Value       float64
	sinceReward float64
}

// Scoring accumulates penalties, the clean flag, the combo and the camera
// shake produced by hits.
type Scoring struct {
	Penalty float64
	Factor  float64
	Clean   bool
	Combo   *Combo // nil when the variant has no combo
	Shake   float64
	Stats   RunStats

	cfg config.ScoringConfig
}

// NewScoring returns a fresh scoring state. factor scales every penalty.
func NewScoring(cfg config.ScoringConfig, factor float64, withCombo bool) Scoring {
	s := Scoring{Factor: factor, Clean: true, cfg: cfg}
	if withCombo {
		s.Combo = &Combo{Value: 1}
	}
	return s
}

// AddPenalty applies seconds×Factor and returns the applied amount.
// Non-positive amounts are ignored so the accumulator never decreases.
func (s *Scoring) AddPenalty(seconds float64, kind PenaltyKind) float64 {
	applied := seconds * s.Factor
	if applied <= 0 {
		return 0
	}
	s.Penalty += applied

	switch kind {
	case PenaltyBoundary:
		s.Stats.BoundaryHits++
		s.Stats.WallHits++
	case PenaltyWall:
		s.Stats.WallHits++
	case PenaltyCone:
		s.Stats.ConeHits++
	case PenaltyFalseStart:
		s.Stats.FalseStarts++
	case PenaltyPrecision:
		s.Stats.PrecisionPenalty += applied
	}
	if kind.breaksClean() {
		s.Clean = false
	}

	s.Shake = math.Min(s.cfg.ShakeMax, s.Shake+s.cfg.ShakeKick)
	if s.Combo != nil {
		s.Combo.Value = 1
		s.Combo.sinceReward = 0
	}
	return applied
}

// RewardPerfect grows the combo after a clean pass.
func (s *Scoring) RewardPerfect() {
	if s.Combo == nil {
		return
	}
	s.Combo.Value = math.Min(s.cfg.ComboMax, s.Combo.Value+s.cfg.ComboStep)
	s.Combo.sinceReward = 0
}

// GateCredit is the small reward for a tidy gate after an earlier mistake.
// It is capped low and never lowers a combo already above the cap.
func (s *Scoring) GateCredit() {
	if s.Combo == nil {
		return
	}
	s.Combo.Value = math.Max(s.Combo.Value, math.Min(s.cfg.GateCreditCap, s.Combo.Value+s.cfg.GateCredit))
}

// Decay runs once per tick: the combo drains toward 1 after the grace
// period and the shake fades.
func (s *Scoring) Decay(dt float64) {
	if s.Combo != nil {
		s.Combo.sinceReward += dt
		if s.Combo.sinceReward > s.cfg.ComboGrace && s.Combo.Value > 1 {
			s.Combo.Value = math.Max(1, s.Combo.Value-dt*s.cfg.ComboDecay)
		}
	}
}

// FadeShake applies one frame of shake decay.
func (s *Scoring) FadeShake() {
	if s.Shake > s.cfg.ShakeCut {
		s.Shake *= s.cfg.ShakeDecay
	} else {
		s.Shake = 0
	}
}

// ComboValue returns the multiplier, 1 when the variant has none.
func (s *Scoring) ComboValue() float64 {
	if s.Combo == nil {
		return 1
	}
	return s.Combo.Value
}

// FinalTime removes the clean bonus from elapsed, floored at zero.
func (s *Scoring) FinalTime(elapsed float64) float64 {
	if s.Clean {
		elapsed -= s.cfg.CleanBonus
	}
	return math.Max(0, elapsed)
}
