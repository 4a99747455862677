// Package registry provides a global registry for stage factories.
// Stages register themselves in init() functions, allowing the platform
// to discover and instantiate stages without hardcoded dependencies.
package registry

import (
	"fmt"
	"io"
	"sort"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-lander/internal/core"
)

// Stage is the interface every playable stage implements.
// Stages contain pure simulation logic with no Bubble Tea dependency.
// The platform handles input translation, timing and presentation.
type Stage interface {
	// ID returns a unique identifier for this stage (e.g., "stage1").
	// Used for CLI commands and the flight log.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Init enters the intro state with fresh terrain and craft.
	Init()

	// Update advances the simulation by dt seconds. A returned error means
	// the stage is faulted and must be restarted by the host.
	Update(dt float64) error

	// Render paints the current frame onto the stage's surface.
	Render()

	// HandleKeyDown and HandleKeyUp route key events. Unknown codes are ignored.
	HandleKeyDown(code core.KeyCode)
	HandleKeyUp(code core.KeyCode)

	// Restart fully reconstructs the stage, including the intro.
	Restart() error

	// State returns the stage summary the host polls each frame.
	State() core.StageState
}

// Env holds the capabilities injected into a stage at construction.
type Env struct {
	Surface core.VectorSurface
	Hud     core.Hud
	Runtime core.RuntimeConfig
	Logger  *log.Logger
}

// Log returns the environment logger, or a discarding one when unset.
func (e Env) Log() *log.Logger {
	if e.Logger == nil {
		return log.New(io.Discard)
	}
	return e.Logger
}

// StageInfo contains metadata about a registered stage.
type StageInfo struct {
	ID    string
	Title string
}

// Factory creates a new stage bound to env.
type Factory func(env Env) (Stage, error)

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a stage factory to the registry.
// Typically called from a stage package's init() function.
// Panics if a stage with the same ID is already registered.
func Register(id, title string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: stage %q already registered", id))
	}

	factories[id] = f
	titles[id] = title
}

// List returns information about all registered stages, sorted by ID.
func List() []StageInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]StageInfo, 0, len(factories))
	for id := range factories {
		result = append(result, StageInfo{
			ID:    id,
			Title: titles[id],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a new stage by its ID.
// Returns an error if the ID is not registered or the factory fails.
func Create(id string, env Env) (Stage, error) {
	mu.RLock()
	f, ok := factories[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: unknown stage %q", id)
	}

	s, err := f(env)
	if err != nil {
		return nil, fmt.Errorf("registry: create %q: %w", id, err)
	}
	return s, nil
}

// Exists checks if a stage with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
