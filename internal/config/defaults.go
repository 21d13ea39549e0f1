package config

import (
	_ "embed"
)

//go:embed defaults/drive.yaml
var defaultDriveYAML []byte

func bound(v float64) *float64 { return &v }

// DefaultDriveConfig returns the hardcoded default configuration.
// It mirrors defaults/drive.yaml and is used when the embed cannot be parsed.
func DefaultDriveConfig() DriveConfig {
	return DriveConfig{
		World: WorldConfig{Width: 1280, Height: 720},
		Vehicle: VehicleConfig{
			MaxSteer:       0.68,
			SteerRate:      10.5,
			SteerSmoothing: "linear",
			Wheelbase:      46,
			AccelForward:   560,
			AccelReverse:   390,
			MaxForward:     300,
			MaxReverse:     170,
			Brake:          680,
			BrakeSnap:      10,
			Drag:           3.0,
			DragSnap:       2,
			MinTurnSpeed:   0.5,
			Front:          30,
			Back:           30,
			HalfWidth:      14,
		},
		Collision: CollisionConfig{
			BoundsMargin: 10,
			ClampInset:   20,
			PushBack:     18,
			Bounce:       -0.35,
			ConeMargin:   7,
		},
		Penalties: PenaltyConfig{
			Boundary:           4,
			Wall:               4,
			Cone:               2,
			FalseStart:         5,
			PrecisionPerCorner: 1,
		},
		Win: WinConfig{
			NearFactor:   0.85,
			StopSpeed:    14,
			HoldMs:       850,
			ReverseSpeed: 12,
		},
		StartLight: StartLightConfig{
			MinDelayMs: 1200,
			MaxDelayMs: 2800,
			MoveSpeed:  10,
		},
		Slalom: SlalomConfig{
			Cones:         8,
			EasyCones:     6,
			OffsetMin:     44,
			OffsetMax:     78,
			EasyOffsetMin: 30,
			EasyOffsetMax: 52,
			Jitter:        10,
			ConeRadius:    14,
			StartPct:      22,
			EndPct:        80,
			GateAhead:     18,
			GateRadius:    42,
		},
		Scoring: ScoringConfig{
			ComboStep:       0.05,
			ComboMax:        2.0,
			GateCredit:      0.02,
			GateCreditCap:   1.4,
			ComboGrace:      2.0,
			ComboDecay:      0.06,
			CleanBonus:      1.0,
			ShakeKick:       7,
			ShakeMax:        12,
			ShakeDecay:      0.86,
			ShakeCut:        0.2,
			MoveStartSpeed:  12,
			FastMission:     70,
			PrecisionBudget: 2,
			Medals: []Tier{
				{Name: "GOLD", MaxPenalty: bound(3), Under: bound(60)},
				{Name: "SILVER", MaxPenalty: bound(8), Under: bound(75)},
				{Name: "BRONZE", Under: bound(95)},
				{Name: "PARTICIPATION"},
			},
			Grades: []Tier{
				{Name: "A", MaxPenalty: bound(3), Under: bound(60)},
				{Name: "B", MaxPenalty: bound(8), Under: bound(75)},
				{Name: "C", MaxPenalty: bound(14)},
				{Name: "D"},
			},
		},
		Transition: TransitionConfig{DelayMs: 520, MaxDt: 0.033},
		Difficulty: DifficultyConfig{Preset: DifficultyContest, ReliefFactor: 0.6},
	}
}

// DefaultDriveYAML returns the embedded default YAML.
func DefaultDriveYAML() []byte {
	return defaultDriveYAML
}
