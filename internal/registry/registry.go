// Package registry maps game ids to factories. Games register themselves from
// init, and the CLI and terminal runtime look them up by id.
package registry

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/vovakirdan/paddles/internal/config"
	"github.com/vovakirdan/paddles/internal/core"
)

// ErrUnknownGame is returned by Create for ids nobody registered.
var ErrUnknownGame = errors.New("registry: unknown game")

// Game is a fixed-step simulation the platform can drive. Implementations
// hold no terminal state; the platform maps keys to actions, runs the clock
// and draws the screen.
type Game interface {
	// ID is the stable short name used on the command line and in the
	// scores table.
	ID() string
	Title() string

	// Reset starts a fresh match for the given screen and seed.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by one tick.
	Step(in core.InputFrame) core.StepResult

	// Render draws into a cleared screen.
	Render(dst *core.Screen)

	State() core.GameState
}

// Helper is implemented by games that can describe their controls.
type Helper interface {
	Controls() string
}

// Configurable is implemented by games tuned from a YAML file. The settings
// apply from the next Reset. An empty path means the default search order.
type Configurable interface {
	Configure(path string, preset config.DifficultyPreset)
}

type GameInfo struct {
	ID       string
	Title    string
	Controls string
}

type Factory func() Game

var (
	mu        sync.RWMutex
	factories = make(map[string]Factory)
	infos     = make(map[string]GameInfo)
)

// Register adds a factory. It panics on duplicate ids.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}

	g := f()
	info := GameInfo{ID: id, Title: g.Title()}
	if h, ok := g.(Helper); ok {
		info.Controls = h.Controls()
	}
	factories[id] = f
	infos[id] = info
}

// List returns every registered game sorted by id.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	out := make([]GameInfo, 0, len(infos))
	for _, info := range infos {
		out = append(out, info)
	}
	slices.SortFunc(out, func(a, b GameInfo) int {
		return strings.Compare(a.ID, b.ID)
	})
	return out
}

// Create returns a new, un-reset instance of game id.
func Create(id string) (Game, error) {
	mu.RLock()
	f, ok := factories[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownGame, id)
	}
	return f(), nil
}

func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()
	_, ok := factories[id]
	return ok
}

// IDs returns the registered ids, sorted.
func IDs() []string {
	list := List()
	ids := make([]string, len(list))
	for i, info := range list {
		ids[i] = info.ID
	}
	return ids
}
