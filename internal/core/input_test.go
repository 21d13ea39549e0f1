package core

import (
	"testing"
	"time"
)

func TestInputFrameSteerAxis(t *testing.T) {
	tests := []struct {
		name    string
		actions []Action
		want    float64
	}{
		{"none", nil, 0},
		{"left", []Action{ActionLeft}, -1},
		{"right", []Action{ActionRight}, 1},
		{"both cancel", []Action{ActionLeft, ActionRight}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := NewInputFrame()
			for _, a := range tt.actions {
				f.Set(a)
			}
			if got := f.SteerAxis(); got != tt.want {
				t.Errorf("SteerAxis() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestInputFrameZeroValue(t *testing.T) {
	var f InputFrame
	if f.Has(ActionGas) {
		t.Error("zero frame should have no actions")
	}
	f.Set(ActionGas)
	if !f.Has(ActionGas) {
		t.Error("Set on zero frame lost the action")
	}
	f.Clear()
	if f.Has(ActionGas) {
		t.Error("Clear did not reset")
	}
}

func TestManualClock(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	c := NewManualClock(start)
	c.AdvanceSeconds(1.5)
	if got := c.Now().Sub(start); got != 1500*time.Millisecond {
		t.Errorf("elapsed = %v, want 1.5s", got)
	}
}
