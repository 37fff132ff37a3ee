// Package registry maps game IDs to factories. Games register themselves
// from init(), so hosts (CLI, SSH sessions, scoreboard) can discover them
// without importing each game directly.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/sacrifice-runner/internal/core"
)

// Game is the interface every host drives.
// Implementations contain pure logic with no terminal or network imports.
type Game interface {
	// ID returns a unique identifier, also used as the score-table key.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset starts a new session. Called once at start and again on restart.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by one fixed tick. The result carries the
	// state after the tick and any events (e.g. game over) it produced.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current state into the screen buffer.
	Render(dst *core.Screen)

	// State returns the current game state without advancing it.
	State() core.GameState
}

// GameInfo contains metadata about a registered game.
type GameInfo struct {
	ID    string
	Title string
}

// Factory creates a new instance of a game.
type Factory func() Game

type entry struct {
	factory Factory
	title   string
}

var (
	entries = make(map[string]entry)
	mu      sync.RWMutex
)

// Register adds a game factory to the registry.
// Panics if the ID is empty or already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if id == "" {
		panic("registry: empty game id")
	}
	if _, exists := entries[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}

	entries[id] = entry{factory: f, title: f().Title()}
}

// List returns information about all registered games, sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(entries))
	for id, e := range entries {
		result = append(result, GameInfo{ID: id, Title: e.title})
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})
	return result
}

// Create instantiates a new game by its ID.
func Create(id string) (Game, error) {
	mu.RLock()
	e, ok := entries[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}
	return e.factory(), nil
}

// Exists checks if a game with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := entries[id]
	return ok
}

// StatsReporter is implemented by games that keep per-session counters.
// Hosts use it to store a run summary next to the score.
type StatsReporter interface {
	RunStats() core.RunStats
}
