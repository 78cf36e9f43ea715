// Package registry provides a global registry of frontends.
// Frontends register themselves in init() functions, allowing the CLI to
// discover and launch them without hardcoded dependencies.
package registry

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/snake3d/internal/config"
	"github.com/vovakirdan/snake3d/internal/core"
	"github.com/vovakirdan/snake3d/internal/storage"
)

// Env carries everything a frontend needs to run a game session.
type Env struct {
	Config  config.Config
	Runtime core.RuntimeConfig
	Store   *storage.Store // May be nil; scores are then not recorded
	Logger  *log.Logger
	Player  string // Name recorded alongside scores
}

// Frontend presents the game and feeds it input.
// The simulation itself lives in package game; frontends only drive it.
type Frontend interface {
	// ID returns a unique identifier (e.g., "window", "terminal").
	// Also names the leaderboard scores are recorded on.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Run plays until the user quits or ctx is cancelled.
	Run(ctx context.Context, env Env) error
}

// Info contains metadata about a registered frontend.
type Info struct {
	ID    string
	Title string
}

var (
	frontends = make(map[string]Frontend)
	mu        sync.RWMutex
)

// Register adds a frontend to the registry.
// Panics if a frontend with the same ID is already registered.
func Register(f Frontend) {
	mu.Lock()
	defer mu.Unlock()

	id := f.ID()
	if _, exists := frontends[id]; exists {
		panic(fmt.Sprintf("registry: frontend %q already registered", id))
	}
	frontends[id] = f
}

// List returns information about all registered frontends, sorted by ID.
func List() []Info {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]Info, 0, len(frontends))
	for id, f := range frontends {
		result = append(result, Info{ID: id, Title: f.Title()})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Get returns the frontend registered under id.
func Get(id string) (Frontend, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := frontends[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown frontend %q", id)
	}
	return f, nil
}

// unregister removes a frontend. Used by tests.
func unregister(id string) {
	mu.Lock()
	defer mu.Unlock()
	delete(frontends, id)
}
