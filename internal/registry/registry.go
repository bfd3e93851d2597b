// Package registry holds the global table of game factories. Games register
// themselves from init(), so the platform discovers them without hardcoded
// imports beyond the blank imports in the main package.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/ansokolov/blockcade/internal/core"
)

// Game is the contract every arcade game implements. Games hold pure logic
// with no platform dependencies; the platform owns timing, key mapping and
// terminal output.
type Game interface {
	// ID returns the unique identifier used for CLI commands and score
	// storage (e.g. "tetris").
	ID() string

	// Title returns the human-readable display name.
	Title() string

	// Reset initializes or restarts the game. It is the only reset path:
	// board, score and phase are reinitialized together, atomically from
	// the platform's point of view (it runs between ticks, never during
	// a render).
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by one fixed tick with the given
	// input snapshot.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current state into the screen buffer.
	Render(dst *core.Screen)

	// State reports score, game-over and pause flags.
	State() core.GameState
}

// Resizer is implemented by games that can take a new window size mid-run
// without restarting. The platform falls back to Reset for games that
// cannot.
type Resizer interface {
	Resize(width, height int)
}

// GameInfo is the metadata of a registered game.
type GameInfo struct {
	ID    string
	Title string
}

// Factory creates a new game instance.
type Factory func() Game

var (
	mu        sync.RWMutex
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
)

// Register adds a game factory. Called from a game package's init().
// Panics on duplicate IDs since that is a programming error.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}

	factories[id] = f
	titles[id] = f().Title()
}

// List returns all registered games, sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(factories))
	for id := range factories {
		result = append(result, GameInfo{ID: id, Title: titles[id]})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a game by ID.
func Create(id string) (Game, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}
	return f(), nil
}

// Exists reports whether a game with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
