// Package registry provides a global catalog of game entries. Games register
// themselves in init() functions, allowing the platform to discover and run
// games without hardcoded dependencies.
package registry

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/pixeldeck/arcade/internal/core"
)

// RunOptions carries host-independent parameters into a game run.
type RunOptions struct {
	// Runtime holds the simulation cadence.
	Runtime core.RuntimeConfig

	// ConfigPath is an optional explicit tuning file; empty means the
	// game's normal config search order.
	ConfigPath string
}

// RunFunc drives one complete run of a game against the host's display,
// input device and clock. It blocks until the context is cancelled and
// returns the final score of the run.
type RunFunc func(ctx context.Context, d core.Display, keys core.KeySource, clk core.Clock, opts RunOptions) (int, error)

// Game is a registered arcade game.
type Game struct {
	// ID is the unique identifier (e.g. "bricks"), used for CLI commands
	// and score storage.
	ID string

	// Title is the human-readable name for display.
	Title string

	// Run executes the game loop.
	Run RunFunc
}

var (
	mu    sync.RWMutex
	games = make(map[string]Game)
)

// Register adds a game to the registry. Typically called from a game
// package's init() function. Panics if the ID is already taken.
func Register(g Game) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := games[g.ID]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", g.ID))
	}
	if g.Run == nil {
		panic(fmt.Sprintf("registry: game %q has no run function", g.ID))
	}
	games[g.ID] = g
}

// List returns all registered games, sorted by ID.
func List() []Game {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]Game, 0, len(games))
	for _, g := range games {
		result = append(result, g)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})
	return result
}

// Lookup returns the game with the given ID.
func Lookup(id string) (Game, bool) {
	mu.RLock()
	defer mu.RUnlock()

	g, ok := games[id]
	return g, ok
}

// Exists checks whether a game with the given ID is registered.
func Exists(id string) bool {
	_, ok := Lookup(id)
	return ok
}
