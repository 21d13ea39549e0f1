package drive

import (
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/neon-drive/internal/config"
	"github.com/vovakirdan/neon-drive/internal/core"
	"github.com/vovakirdan/neon-drive/internal/registry"
)

func init() {
	registry.Register(registry.Info{
		ID:          VariantNeon.ID,
		Title:       VariantNeon.Title,
		Description: "Three stages with combo multiplier for clean gates",
	}, func() registry.Game { return New() })
	registry.Register(registry.Info{
		ID:          VariantClassic.ID,
		Title:       VariantClassic.Title,
		Description: "Three stages, clean run bonus only",
	}, func() registry.Game { return NewClassic() })
}

// configPath stores the custom config path set via CLI
var configPath string

// logger receives run lifecycle logs; nil discards them.
var logger *log.Logger

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetLogger sets the logger handed to new runs.
func SetLogger(l *log.Logger) {
	logger = l
}

// Minimum screen size for a readable world.
const (
	minScreenW = 40
	minScreenH = 14
)

// Game adapts a Run to the platform's frame-stepped game interface.
type Game struct {
	variant Variant
	clock   core.Clock
	runtime core.RuntimeConfig
	run     *Run
	frame   uint64
}

// New creates the combo variant.
func New() *Game {
	return &Game{variant: VariantNeon, clock: core.SystemClock{}}
}

// NewClassic creates the variant without combo.
func NewClassic() *Game {
	return &Game{variant: VariantClassic, clock: core.SystemClock{}}
}

// NewWithClock creates a game driven by the given clock, used for replays
// and tests.
func NewWithClock(v Variant, clock core.Clock) *Game {
	return &Game{variant: v, clock: clock}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string { return g.variant.ID }

// Title returns the display name for this game.
func (g *Game) Title() string { return g.variant.Title }

// Run exposes the controller.
func (g *Game) Run() *Run { return g.run }

// Reset loads the config, applies the runtime preset and starts a run.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.frame = 0

	cfg, err := config.LoadDrive(configPath)
	if err != nil {
		if logger != nil {
			logger.Warn("cannot load drive config, using defaults", "path", configPath, "error", err)
		}
		cfg = config.DefaultDriveConfig()
	}
	config.ApplyDrivePreset(&cfg, presetFor(runtime))

	seed := runtime.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	g.run = NewRun(Options{
		Config:  cfg,
		Variant: g.variant,
		Clock:   g.clock,
		Rand:    rand.New(rand.NewSource(seed)), //#nosec G404 -- deterministic gameplay RNG
		Logger:  logger,
	})
	if err := g.run.Start(g.playerName()); err != nil {
		_ = g.run.Start("Driver")
	}
}

func presetFor(rc core.RuntimeConfig) config.DifficultyPreset {
	if rc.Easy {
		return config.DifficultyEasy
	}
	p, err := config.ParsePreset(rc.Mode)
	if err != nil {
		return config.DifficultyContest
	}
	return p
}

func (g *Game) playerName() string {
	if g.runtime.PlayerName == "" {
		return "Driver"
	}
	return g.runtime.PlayerName
}

func (g *Game) dt() float64 {
	if g.runtime.TickRate <= 0 {
		return 1.0 / 60
	}
	return 1.0 / float64(g.runtime.TickRate)
}

// Step maps actions to controls and advances one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.frame++

	switch g.run.Phase() {
	case PhaseFinished:
		// Back belongs to the host; it leaves the game before Step runs.
		if in.Has(core.ActionRestart) || in.Has(core.ActionConfirm) {
			_ = g.run.Restart()
		}
	case PhaseMenu:
		if in.Has(core.ActionConfirm) {
			_ = g.run.Start(g.playerName())
		}
	case PhasePlay:
		if in.Has(core.ActionGearToggle) {
			g.run.ToggleGear()
		}
	}

	g.run.Tick(g.dt(), Controls{
		SteerTarget: in.SteerAxis(),
		Gas:         in.Has(core.ActionGas),
		Brake:       in.Has(core.ActionBrake),
	})

	var events []core.GameEvent
	for _, e := range g.run.DrainEvents() {
		events = append(events, core.GameEvent{Tag: string(e.Tag), Text: e.Text})
	}
	return core.StepResult{State: g.State(), Events: events}
}

// State returns the platform view of the run.
func (g *Game) State() core.GameState {
	if g.run == nil {
		return core.GameState{Phase: PhaseMenu.String()}
	}
	snap := g.run.Snapshot()
	st := core.GameState{
		Phase:    snap.Phase.String(),
		Time:     snap.Elapsed,
		Penalty:  snap.Penalty,
		Stage:    snap.StageIndex,
		GameOver: snap.Phase == PhaseFinished,
	}
	if sum, ok := g.run.Summary(); ok {
		st.Time = sum.FinalTime
	}
	return st
}

// Summary returns the finish record of the last run.
func (g *Game) Summary() (core.RunSummary, bool) {
	if g.run == nil {
		return core.RunSummary{}, false
	}
	return g.run.Summary()
}
