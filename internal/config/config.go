// Package config provides YAML-based tuning for the driving challenge:
// vehicle feel, collision response, penalties, stage layout and scoring
// tiers, plus the contest/practice/easy presets.
package config

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is returned by Validate for out-of-range values.
var ErrInvalidConfig = errors.New("invalid config")

// DriveConfig contains all tunables of the driving challenge.
type DriveConfig struct {
	World      WorldConfig      `yaml:"world"`
	Vehicle    VehicleConfig    `yaml:"vehicle"`
	Collision  CollisionConfig  `yaml:"collision"`
	Penalties  PenaltyConfig    `yaml:"penalties"`
	Win        WinConfig        `yaml:"win"`
	StartLight StartLightConfig `yaml:"start_light"`
	Slalom     SlalomConfig     `yaml:"slalom"`
	Scoring    ScoringConfig    `yaml:"scoring"`
	Transition TransitionConfig `yaml:"transition"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// WorldConfig is the size of the playable area in world units.
// Stage layouts are expressed as percentages of it.
type WorldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// VehicleConfig defines the arcade bicycle model.
type VehicleConfig struct {
	MaxSteer       float64 `yaml:"max_steer"`       // radians at full lock
	SteerRate      float64 `yaml:"steer_rate"`      // smoothing constant k
	SteerSmoothing string  `yaml:"steer_smoothing"` // "linear" or "exp"
	Wheelbase      float64 `yaml:"wheelbase"`
	AccelForward   float64 `yaml:"accel_forward"`
	AccelReverse   float64 `yaml:"accel_reverse"`
	MaxForward     float64 `yaml:"max_forward"`
	MaxReverse     float64 `yaml:"max_reverse"`
	Brake          float64 `yaml:"brake"`
	BrakeSnap      float64 `yaml:"brake_snap"`
	Drag           float64 `yaml:"drag"`
	DragSnap       float64 `yaml:"drag_snap"`
	MinTurnSpeed   float64 `yaml:"min_turn_speed"`
	Front          float64 `yaml:"front"`
	Back           float64 `yaml:"back"`
	HalfWidth      float64 `yaml:"half_width"`
}

// CollisionConfig defines how contacts are resolved.
type CollisionConfig struct {
	BoundsMargin float64 `yaml:"bounds_margin"` // slack outside the world before a boundary hit
	ClampInset   float64 `yaml:"clamp_inset"`   // where the vehicle is put back
	PushBack     float64 `yaml:"push_back"`     // distance moved back against the direction of travel after a wall hit
	Bounce       float64 `yaml:"bounce"`        // speed multiplier after a hit, negative
	ConeMargin   float64 `yaml:"cone_margin"`
}

// PenaltyConfig holds penalty magnitudes in seconds.
type PenaltyConfig struct {
	Boundary           float64 `yaml:"boundary"`
	Wall               float64 `yaml:"wall"`
	Cone               float64 `yaml:"cone"`
	FalseStart         float64 `yaml:"false_start"`
	PrecisionPerCorner float64 `yaml:"precision_per_corner"`
}

// WinConfig defines the shared win-hold check.
type WinConfig struct {
	NearFactor   float64 `yaml:"near_factor"`
	StopSpeed    float64 `yaml:"stop_speed"`
	HoldMs       float64 `yaml:"hold_ms"`
	ReverseSpeed float64 `yaml:"reverse_speed"` // parking gate
}

// StartLightConfig defines the traffic-light start.
type StartLightConfig struct {
	MinDelayMs float64 `yaml:"min_delay_ms"`
	MaxDelayMs float64 `yaml:"max_delay_ms"`
	MoveSpeed  float64 `yaml:"move_speed"` // |v| above this while red is a false start
}

// SlalomConfig defines cone generation and gate rewards.
type SlalomConfig struct {
	Cones         int     `yaml:"cones"`
	EasyCones     int     `yaml:"easy_cones"`
	OffsetMin     float64 `yaml:"offset_min"`
	OffsetMax     float64 `yaml:"offset_max"`
	EasyOffsetMin float64 `yaml:"easy_offset_min"`
	EasyOffsetMax float64 `yaml:"easy_offset_max"`
	Jitter        float64 `yaml:"jitter"`
	ConeRadius    float64 `yaml:"cone_radius"`
	StartPct      float64 `yaml:"start_pct"`
	EndPct        float64 `yaml:"end_pct"`
	GateAhead     float64 `yaml:"gate_ahead"`
	GateRadius    float64 `yaml:"gate_radius"`
}

// ScoringConfig defines combo, clean bonus, shake and result tiers.
type ScoringConfig struct {
	ComboStep       float64 `yaml:"combo_step"`
	ComboMax        float64 `yaml:"combo_max"`
	GateCredit      float64 `yaml:"gate_credit"`
	GateCreditCap   float64 `yaml:"gate_credit_cap"`
	ComboGrace      float64 `yaml:"combo_grace"`
	ComboDecay      float64 `yaml:"combo_decay"`
	CleanBonus      float64 `yaml:"clean_bonus"`
	ShakeKick       float64 `yaml:"shake_kick"`
	ShakeMax        float64 `yaml:"shake_max"`
	ShakeDecay      float64 `yaml:"shake_decay"`
	ShakeCut        float64 `yaml:"shake_cut"`
	MoveStartSpeed  float64 `yaml:"move_start_speed"`
	FastMission     float64 `yaml:"fast_mission"`
	PrecisionBudget float64 `yaml:"precision_budget"`
	Medals          []Tier  `yaml:"medals"`
	Grades          []Tier  `yaml:"grades"`
}

// Tier is one rung of an ordered result ladder. A nil bound is unbounded.
// The first tier whose bounds both hold wins.
type Tier struct {
	Name       string   `yaml:"name"`
	MaxPenalty *float64 `yaml:"max_penalty,omitempty"` // penalty <= MaxPenalty
	Under      *float64 `yaml:"under,omitempty"`       // time < Under
}

// Matches reports whether (finalTime, penalty) satisfies the tier.
func (t Tier) Matches(finalTime, penalty float64) bool {
	if t.MaxPenalty != nil && penalty > *t.MaxPenalty {
		return false
	}
	if t.Under != nil && finalTime >= *t.Under {
		return false
	}
	return true
}

// TransitionConfig defines the stage handoff and frame clamp.
type TransitionConfig struct {
	DelayMs float64 `yaml:"delay_ms"`
	MaxDt   float64 `yaml:"max_dt"`
}

// DifficultyConfig picks the preset and its penalty relief.
type DifficultyConfig struct {
	Preset       DifficultyPreset `yaml:"preset"`
	ReliefFactor float64          `yaml:"relief_factor"` // penalty multiplier in practice/easy
}

// Validate checks ranges and tier ordering.
// Ladders must relax monotonically and end with an unbounded tier so that
// a lower time or penalty can never produce a worse result.
func (c DriveConfig) Validate() error {
	checks := []struct {
		ok   bool
		what string
	}{
		{c.World.Width > 0 && c.World.Height > 0, "world size must be positive"},
		{c.Vehicle.Wheelbase > 0, "vehicle.wheelbase must be positive"},
		{c.Vehicle.MaxForward > 0 && c.Vehicle.MaxReverse > 0, "vehicle speed caps must be positive"},
		{c.Vehicle.SteerSmoothing == "" || c.Vehicle.SteerSmoothing == "linear" || c.Vehicle.SteerSmoothing == "exp", "vehicle.steer_smoothing must be linear or exp"},
		{c.Collision.Bounce <= 0, "collision.bounce must not be positive"},
		{c.Win.HoldMs > 0, "win.hold_ms must be positive"},
		{c.StartLight.MinDelayMs >= 0 && c.StartLight.MaxDelayMs >= c.StartLight.MinDelayMs, "start_light delays out of order"},
		{c.Slalom.Cones >= 2 && c.Slalom.EasyCones >= 2, "slalom needs at least two cones"},
		{c.Slalom.OffsetMax >= c.Slalom.OffsetMin && c.Slalom.EasyOffsetMax >= c.Slalom.EasyOffsetMin, "slalom offsets out of order"},
		{c.Scoring.ComboMax >= 1, "scoring.combo_max must be at least 1"},
		{c.Scoring.CleanBonus >= 0, "scoring.clean_bonus must not be negative"},
		{c.Transition.MaxDt > 0, "transition.max_dt must be positive"},
		{c.Difficulty.ReliefFactor > 0 && c.Difficulty.ReliefFactor <= 1, "difficulty.relief_factor must be in (0, 1]"},
	}
	for _, chk := range checks {
		if !chk.ok {
			return fmt.Errorf("%w: %s", ErrInvalidConfig, chk.what)
		}
	}

	if err := validateLadder("medals", c.Scoring.Medals); err != nil {
		return err
	}
	return validateLadder("grades", c.Scoring.Grades)
}

func validateLadder(name string, tiers []Tier) error {
	if len(tiers) == 0 {
		return fmt.Errorf("%w: scoring.%s is empty", ErrInvalidConfig, name)
	}
	last := tiers[len(tiers)-1]
	if last.MaxPenalty != nil || last.Under != nil {
		return fmt.Errorf("%w: scoring.%s must end with an unbounded tier", ErrInvalidConfig, name)
	}
	for i := 1; i < len(tiers); i++ {
		prev, cur := tiers[i-1], tiers[i]
		if looser(prev.MaxPenalty, cur.MaxPenalty) || looser(prev.Under, cur.Under) {
			return fmt.Errorf("%w: scoring.%s tier %q is stricter than %q", ErrInvalidConfig, name, cur.Name, prev.Name)
		}
	}
	return nil
}

// looser reports whether bound a is looser than bound b (nil is infinite).
func looser(a, b *float64) bool {
	switch {
	case a == nil:
		return b != nil
	case b == nil:
		return false
	default:
		return *a > *b
	}
}
