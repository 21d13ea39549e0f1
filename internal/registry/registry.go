// Package registry keeps the playable variants. Variants register in
// init() so the CLI and the TUI menu can list and create them without
// importing the game packages by name.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/neon-drive/internal/core"
)

// Game is what the platform drives frame by frame. Implementations hold
// pure logic; the platform owns input mapping, timing and rendering.
type Game interface {
	// ID is the CLI name of the variant, e.g. "drive".
	ID() string

	// Title is the display name.
	Title() string

	// Reset (re)starts the game with the runtime settings.
	Reset(cfg core.RuntimeConfig)

	// Step advances one fixed tick.
	Step(in core.InputFrame) core.StepResult

	// Render draws into a pre-cleared screen buffer.
	Render(dst *core.Screen)

	// State reports the current phase and timer.
	State() core.GameState

	// Summary returns the finish record once a run is over.
	Summary() (core.RunSummary, bool)
}

// Info describes a registered variant.
type Info struct {
	ID          string
	Title       string
	Description string
}

// Factory creates a fresh game instance.
type Factory func() Game

type entry struct {
	info    Info
	factory Factory
}

var (
	entries = make(map[string]entry)
	mu      sync.RWMutex
)

// Register adds a variant. Panics on a duplicate or empty ID.
func Register(info Info, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if info.ID == "" {
		panic("registry: empty game id")
	}
	if _, exists := entries[info.ID]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", info.ID))
	}
	entries[info.ID] = entry{info: info, factory: f}
}

// List returns all variants sorted by ID.
func List() []Info {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]Info, 0, len(entries))
	for _, e := range entries {
		result = append(result, e.info)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})
	return result
}

// Create instantiates a variant by ID.
func Create(id string) (Game, error) {
	mu.RLock()
	defer mu.RUnlock()

	e, ok := entries[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}
	return e.factory(), nil
}

// Exists reports whether id is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := entries[id]
	return ok
}
