package core

// RuntimeConfig contains configuration passed to games at initialization.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic layouts

	PlayerName string // Shown on the result card and share text
	Mode       string // "contest" or "practice"
	Easy       bool   // Gentler slalom and reduced penalties
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:    80,
		ScreenH:    24,
		TickRate:   60,
		Seed:       0, // 0 means use current time in platform layer
		PlayerName: "Driver",
		Mode:       "contest",
	}
}

// GameState is what the platform needs to know between frames.
type GameState struct {
	Phase    string  // MENU, PLAY, TRANSITION or FINISHED
	Time     float64 // Displayed elapsed time in seconds
	Penalty  float64 // Accumulated penalty seconds
	Stage    int     // Zero-based stage index
	GameOver bool    // Run finished, summary available
}

// GameEvent is a cue raised by the game for sound, bell or toast.
type GameEvent struct {
	Tag  string
	Text string
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State  GameState
	Events []GameEvent // raised during the tick, in order
}

// RunSummary is the finish-time record handed to share and export.
type RunSummary struct {
	Player           string   `yaml:"player"`
	Variant          string   `yaml:"variant"`
	Mode             string   `yaml:"mode"`
	FinalTime        float64  `yaml:"final_time"`
	Penalty          float64  `yaml:"penalty"`
	Mission          string   `yaml:"mission"`
	MissionOK        bool     `yaml:"mission_ok"`
	MissionEvaluated bool     `yaml:"mission_evaluated"`
	Clean            bool     `yaml:"clean"`
	Medal            string   `yaml:"medal"`
	Grade            string   `yaml:"grade"`
	Tips             []string `yaml:"tips,omitempty"`
}
