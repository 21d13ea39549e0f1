package tui

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/neon-drive/internal/core"
)

// ShareText formats a finished run as a few plain lines for pasting.
func ShareText(s core.RunSummary) string {
	var b strings.Builder

	fmt.Fprintf(&b, "NEON DRIVE | %s | %s (%s)\n", s.Player, s.Variant, s.Mode)
	fmt.Fprintf(&b, "Time %.2fs (+%.0fs penalty) | %s | grade %s\n", s.FinalTime, s.Penalty, s.Medal, s.Grade)

	mission := "-"
	if s.MissionEvaluated {
		mark := "failed"
		if s.MissionOK {
			mark = "done"
		}
		mission = fmt.Sprintf("%s [%s]", s.Mission, mark)
	}
	fmt.Fprintf(&b, "Mission: %s\n", mission)

	if s.Clean {
		b.WriteString("Clean run\n")
	}
	return b.String()
}
