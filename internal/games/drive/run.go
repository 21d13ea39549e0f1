package drive

import (
	"errors"
	"fmt"
	"io"
	"math"
	"math/rand"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/neon-drive/internal/config"
	"github.com/vovakirdan/neon-drive/internal/core"
)

var (
	// ErrInvalidTransition is returned when a control is used in a phase
	// that does not accept it.
	ErrInvalidTransition = errors.New("invalid run transition")

	// ErrNoPlayer is returned by Start when the player name is blank.
	ErrNoPlayer = errors.New("player name required")
)

// Phase is the top-level state of a Run.
type Phase int

const (
	PhaseMenu Phase = iota
	PhasePlay
	PhaseTransition
	PhaseFinished
)

func (p Phase) String() string {
	switch p {
	case PhaseMenu:
		return "MENU"
	case PhasePlay:
		return "PLAY"
	case PhaseTransition:
		return "TRANSITION"
	case PhaseFinished:
		return "FINISHED"
	default:
		return "UNKNOWN"
	}
}

// Variant selects optional scoring extensions.
type Variant struct {
	ID    string
	Title string
	Combo bool
}

var (
	VariantNeon    = Variant{ID: "drive", Title: "Neon Drive", Combo: true}
	VariantClassic = Variant{ID: "drive_classic", Title: "Neon Drive (Classic)", Combo: false}
)

// Options configure a Run. Zero values get sensible defaults; a Config
// that fails validation is replaced by the built-in defaults.
type Options struct {
	Config  config.DriveConfig
	Variant Variant
	Clock   core.Clock
	Rand    *rand.Rand
	Logger  *log.Logger
}

// Run is the run controller: MENU -> PLAY -> TRANSITION -> FINISHED.
type Run struct {
	cfg     config.DriveConfig
	variant Variant
	clock   core.Clock
	rng     *rand.Rand
	logger  *log.Logger

	phase      Phase
	player     string
	generation uint64
	scheduler  transitionScheduler

	rs      *RunState
	summary core.RunSummary
}

// NewRun creates an idle controller in MENU.
func NewRun(opts Options) *Run {
	r := &Run{
		cfg:     opts.Config,
		variant: opts.Variant,
		clock:   opts.Clock,
		rng:     opts.Rand,
		logger:  opts.Logger,
	}
	if r.variant.ID == "" {
		r.variant = VariantNeon
	}
	if r.clock == nil {
		r.clock = core.SystemClock{}
	}
	if r.rng == nil {
		r.rng = rand.New(rand.NewSource(time.Now().UnixNano())) //#nosec G404 -- gameplay randomness
	}
	if r.logger == nil {
		r.logger = log.New(io.Discard)
	}
	if err := r.cfg.Validate(); err != nil {
		r.logger.Warn("invalid drive config, using defaults", "error", err)
		r.cfg = config.DefaultDriveConfig()
	}
	return r
}

// Phase returns the current phase.
func (r *Run) Phase() Phase { return r.phase }

// Player returns the name of the current or last driver.
func (r *Run) Player() string { return r.player }

// Variant returns the scoring variant.
func (r *Run) Variant() Variant { return r.variant }

// State exposes the live run state; nil before the first Start.
func (r *Run) State() *RunState { return r.rs }

func (r *Run) invalid(action string) error {
	return fmt.Errorf("%w: %s from %s", ErrInvalidTransition, action, r.phase)
}

// Start begins a fresh run for name. Valid from MENU and FINISHED.
func (r *Run) Start(name string) error {
	if r.phase != PhaseMenu && r.phase != PhaseFinished {
		return r.invalid("start")
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrNoPlayer
	}

	r.generation++
	r.scheduler.cancel()
	r.player = name
	r.summary = core.RunSummary{}

	r.rs = NewRunState(&r.cfg, r.rng, r.clock.Now(), r.variant.Combo)
	r.rs.Mission = pickMission(r.rng, r.cfg.Scoring)
	r.rs.loadStage(0)
	r.phase = PhasePlay

	r.logger.Info("run started",
		"player", name,
		"variant", r.variant.ID,
		"preset", r.rs.difficulty.Preset(),
		"mission", r.rs.Mission.ID)
	return nil
}

// Restart replays with the same driver. Valid from FINISHED only.
func (r *Run) Restart() error {
	if r.phase != PhaseFinished {
		return r.invalid("restart")
	}
	return r.Start(r.player)
}

// Quit returns to MENU. Quitting mid-run aborts it and cancels any
// pending stage handoff.
func (r *Run) Quit() error {
	if r.phase == PhaseMenu {
		return r.invalid("quit")
	}
	if r.phase == PhasePlay || r.phase == PhaseTransition {
		r.logger.Info("run aborted", "player", r.player, "stage", r.rs.StageIndex)
	}
	r.generation++
	r.scheduler.cancel()
	r.phase = PhaseMenu
	return nil
}

// ToggleGear flips the gear. Ignored outside PLAY.
func (r *Run) ToggleGear() {
	if r.phase != PhasePlay {
		return
	}
	r.rs.Vehicle.ToggleGear()
	r.rs.events.emit(EventGear, r.rs.Vehicle.Gear.String())
}

// Tick advances the run by dt seconds with the given controls. Only PLAY
// simulates; TRANSITION polls the pending handoff; other phases ignore it.
func (r *Run) Tick(dt float64, c Controls) {
	switch r.phase {
	case PhaseTransition:
		r.rs.Now = r.clock.Now()
		if r.scheduler.poll(r.rs.Now, r.generation) {
			r.advance()
		}
		return
	case PhasePlay:
	default:
		return
	}

	dt = core.ClampF(dt, 0, r.cfg.Transition.MaxDt)
	r.rs.Now = r.clock.Now()
	r.rs.Vehicle.Controls = c

	before := r.rs.Score.Penalty
	cleared := r.rs.step(dt)
	if r.rs.Score.Penalty > before {
		r.logger.Debug("penalty", "stage", r.rs.StageIndex, "total", r.rs.Score.Penalty)
	}

	if cleared {
		r.phase = PhaseTransition
		r.rs.events.emit(EventStageClear, r.rs.Stage.Title)
		delay := time.Duration(r.cfg.Transition.DelayMs * float64(time.Millisecond))
		r.scheduler.schedule(r.rs.Now.Add(delay), r.generation)
		r.logger.Info("stage cleared", "stage", r.rs.StageIndex, "elapsed", fmt.Sprintf("%.2f", r.rs.Elapsed()))
	}
}

// advance completes a handoff: next stage or finish.
func (r *Run) advance() {
	if r.rs.lastStage() {
		r.finish()
		return
	}
	r.rs.loadStage(r.rs.StageIndex + 1)
	r.phase = PhasePlay
}

func (r *Run) finish() {
	rs := r.rs
	r.phase = PhaseFinished

	final := rs.Score.FinalTime(rs.Elapsed())
	rs.Score.Stats.FinalTime = final

	mission := evaluateMission(rs.Mission, rs.Score.Stats)
	sc := r.cfg.Scoring
	r.summary = core.RunSummary{
		Player:           r.player,
		Variant:          r.variant.ID,
		Mode:             string(rs.difficulty.Preset()),
		FinalTime:        final,
		Penalty:          rs.Score.Penalty,
		Mission:          mission.Label,
		MissionOK:        mission.Passed,
		MissionEvaluated: mission.Evaluated,
		Clean:            rs.Score.Clean,
		Medal:            Medal(sc, final, rs.Score.Penalty),
		Grade:            Grade(sc, final, rs.Score.Penalty),
		Tips:             Tips(rs.Score.Stats, rs.Mission, mission.Passed),
	}
	rs.events.emit(EventRunFinished, r.summary.Medal)

	r.logger.Info("run finished",
		"player", r.player,
		"time", fmt.Sprintf("%.2f", final),
		"penalty", math.Round(rs.Score.Penalty),
		"medal", r.summary.Medal,
		"grade", r.summary.Grade)
}

// Summary returns the finish record. ok is false until a run finishes.
func (r *Run) Summary() (core.RunSummary, bool) {
	if r.phase != PhaseFinished {
		return core.RunSummary{}, false
	}
	return r.summary, true
}

// DrainEvents returns and clears the events raised since the last call.
func (r *Run) DrainEvents() []Event {
	if r.rs == nil {
		return nil
	}
	return r.rs.events.drain()
}

// HUD holds the formatted fields shown while driving.
type HUD struct {
	Time    string
	Penalty string
	Stage   string
	Intro   string
	Message string
	Mission string
	Combo   string // empty when the variant has no combo
	Gear    string
}

// HUD formats the live fields.
func (r *Run) HUD() HUD {
	if r.rs == nil {
		return HUD{Time: "0.00", Penalty: "0"}
	}
	rs := r.rs
	elapsed := rs.Elapsed()
	if r.phase == PhaseFinished {
		elapsed = rs.Score.Stats.FinalTime
	}
	h := HUD{
		Time:    fmt.Sprintf("%.2f", elapsed),
		Penalty: fmt.Sprintf("%d", int(math.Round(rs.Score.Penalty))),
		Stage:   rs.Stage.Title,
		Intro:   rs.Stage.Intro,
		Message: rs.Message,
		Gear:    rs.Vehicle.Gear.String(),
	}
	if rs.Mission != nil {
		h.Mission = rs.Mission.Label
	}
	if rs.Score.Combo != nil {
		h.Combo = fmt.Sprintf("%.1f", rs.Score.Combo.Value)
	}
	return h
}
