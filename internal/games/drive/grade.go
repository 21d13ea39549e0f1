package drive

import (
	"github.com/vovakirdan/neon-drive/internal/config"
)

// rank returns the name of the first tier matched by (finalTime, penalty).
// Validated ladders end with an unbounded tier, so the fallback is only
// reached with hand-built configs.
func rank(tiers []config.Tier, finalTime, penalty float64) string {
	for _, t := range tiers {
		if t.Matches(finalTime, penalty) {
			return t.Name
		}
	}
	if len(tiers) > 0 {
		return tiers[len(tiers)-1].Name
	}
	return ""
}

// Medal returns the medal tier for a result.
func Medal(sc config.ScoringConfig, finalTime, penalty float64) string {
	return rank(sc.Medals, finalTime, penalty)
}

// Grade returns the letter grade for a result.
func Grade(sc config.ScoringConfig, finalTime, penalty float64) string {
	return rank(sc.Grades, finalTime, penalty)
}

// Tips returns finish-time advice derived from the run.
func Tips(stats RunStats, mission *Mission, missionOK bool) []string {
	var tips []string
	if mission != nil && mission.ID == "fast" && !missionOK {
		tips = append(tips, "Slalom: small steering inputs, no jerks.")
	}
	if stats.FalseStarts > 0 {
		tips = append(tips, "Wait for green on stage 1.")
	}
	if stats.ConeHits > 0 {
		tips = append(tips, "Look far ahead, not at the cone.")
	}
	if stats.WallHits > 0 {
		tips = append(tips, "Brake before turning, then accelerate again.")
	}
	if stats.PrecisionPenalty > 0 {
		tips = append(tips, "When parking, stop the car fully before it validates.")
	}
	if len(tips) == 0 {
		tips = append(tips, "Great result. Play again to beat your time.")
	}
	return tips
}
