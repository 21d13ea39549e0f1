package drive

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/neon-drive/internal/config"
)

// Mission is a side objective picked at run start and checked at finish.
type Mission struct {
	ID    string
	Label string
	Check func(RunStats) bool
}

// MissionPool returns the fixed set of missions for the given scoring tuning.
func MissionPool(sc config.ScoringConfig) []Mission {
	return []Mission{
		{ID: "clean", Label: "No collisions", Check: func(s RunStats) bool { return s.WallHits == 0 && s.ConeHits == 0 }},
		{ID: "noCone", Label: "No cone touched", Check: func(s RunStats) bool { return s.ConeHits == 0 }},
		{ID: "noWall", Label: "No wall hit", Check: func(s RunStats) bool { return s.WallHits == 0 }},
		{ID: "fast", Label: fmt.Sprintf("Under %.0fs", sc.FastMission), Check: func(s RunStats) bool { return s.FinalTime < sc.FastMission }},
		{ID: "precision", Label: fmt.Sprintf("Precise parking (<=%.0fs)", sc.PrecisionBudget), Check: func(s RunStats) bool { return s.PrecisionPenalty <= sc.PrecisionBudget }},
		{ID: "noFalse", Label: "No false start", Check: func(s RunStats) bool { return s.FalseStarts == 0 }},
	}
}

// pickMission draws one mission uniformly from the pool.
func pickMission(rng *rand.Rand, sc config.ScoringConfig) *Mission {
	pool := MissionPool(sc)
	m := pool[rng.Intn(len(pool))]
	return &m
}

// MissionResult is the outcome of a mission at finish.
type MissionResult struct {
	Label     string
	Passed    bool
	Evaluated bool
}

// evaluateMission checks m against the final stats. A nil mission is
// reported as not evaluated rather than failed.
func evaluateMission(m *Mission, stats RunStats) MissionResult {
	if m == nil || m.Check == nil {
		return MissionResult{Label: "-"}
	}
	return MissionResult{Label: m.Label, Passed: m.Check(stats), Evaluated: true}
}
