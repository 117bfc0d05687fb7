// Package registry provides a global registry for game factories.
// Game modes register themselves in init() functions, so the platform can
// discover and instantiate them without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/tui-taxi/internal/core"
)

// Game is the interface every game mode implements.
// Games contain pure logic with no terminal or network dependencies.
// The platform handles input mapping, timing, rendering and persistence.
type Game interface {
	// ID returns a unique identifier for this mode (e.g., "taxi").
	// Used for CLI commands and score storage.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset initializes or resets the game state.
	// Called once at start and again when restarting after game over.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by one fixed tick.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current game state into the provided screen buffer.
	// The screen is pre-cleared before this call.
	Render(dst *core.Screen)

	// State returns the current game state.
	State() core.GameState
}

// PlayerAware is implemented by games that record the player's name.
type PlayerAware interface {
	SetPlayer(name string)
}

// ScoreAware is implemented by games that write their own score records.
// The platform must not save scores for these games a second time.
type ScoreAware interface {
	SetScoreRecorder(r core.ScoreRecorder)
}

// GameInfo contains metadata about a registered game.
type GameInfo struct {
	ID    string
	Title string
}

// Factory is a function that creates a new instance of a game.
type Factory func() Game

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a game factory to the registry.
// Panics if a game with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}

	factories[id] = f
	titles[id] = f().Title()
}

// List returns information about all registered games, sorted by ID.
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

// Create instantiates a new game by its ID.
func Create(id string) (Game, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}

	return f(), nil
}

// CreateFor instantiates a game and binds it to a player and score sink
// when the game supports them. A nil recorder leaves the game's default.
func CreateFor(id, player string, rec core.ScoreRecorder) (Game, error) {
	g, err := Create(id)
	if err != nil {
		return nil, err
	}
	if pa, ok := g.(PlayerAware); ok && player != "" {
		pa.SetPlayer(player)
	}
	if sa, ok := g.(ScoreAware); ok && rec != nil {
		sa.SetScoreRecorder(rec)
	}
	return g, nil
}

// Exists checks if a game with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
