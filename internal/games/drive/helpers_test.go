package drive

import (
	"math/rand"
	"testing"
	"time"

	"github.com/vovakirdan/neon-drive/internal/config"
	"github.com/vovakirdan/neon-drive/internal/core"
)

const frameDt = 1.0 / 60

var epoch = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

// newTestRun starts a run on a manual clock with a fixed seed.
func newTestRun(t *testing.T, seed int64, v Variant) (*Run, *core.ManualClock) {
	t.Helper()
	clock := core.NewManualClock(epoch)
	r := NewRun(Options{
		Config:  config.DefaultDriveConfig(),
		Variant: v,
		Clock:   clock,
		Rand:    rand.New(rand.NewSource(seed)),
	})
	if err := r.Start("Tester"); err != nil {
		t.Fatalf("Start: %v", err)
	}
	return r, clock
}

// newTestState builds a RunState directly and loads stage i.
func newTestState(seed int64, stage int) *RunState {
	cfg := config.DefaultDriveConfig()
	rs := NewRunState(&cfg, rand.New(rand.NewSource(seed)), epoch, true)
	rs.loadStage(stage)
	rs.events.drain()
	return rs
}

// tick advances the clock one frame and ticks the run n times.
func tick(r *Run, clock *core.ManualClock, c Controls, n int) {
	for i := 0; i < n; i++ {
		clock.AdvanceSeconds(frameDt)
		r.Tick(frameDt, c)
	}
}

// tickUntil ticks until cond holds or limit frames pass.
func tickUntil(r *Run, clock *core.ManualClock, c Controls, limit int, cond func() bool) bool {
	for i := 0; i < limit; i++ {
		if cond() {
			return true
		}
		clock.AdvanceSeconds(frameDt)
		r.Tick(frameDt, c)
	}
	return cond()
}

// parkInTarget puts the vehicle at rest, centred in the active target.
func parkInTarget(rs *RunState) {
	rs.Vehicle.Pos = rs.Stage.Target.Box.Center
	rs.Vehicle.Heading = 0
	rs.Vehicle.Speed = 0
	rs.Vehicle.Steer = 0
}

func hasEvent(events []Event, tag EventTag) bool {
	for _, e := range events {
		if e.Tag == tag {
			return true
		}
	}
	return false
}

func countEvents(events []Event, tag EventTag) int {
	n := 0
	for _, e := range events {
		if e.Tag == tag {
			n++
		}
	}
	return n
}
