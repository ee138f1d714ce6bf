// Package registry provides a global registry of behavior strategy factories.
// Model kinds register themselves in init() functions, allowing level loaders
// to build rooms without hardcoding which rules drive which kind.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/tui-fillets/internal/games/fillets/core"
)

// KindInfo contains metadata about a registered model kind.
type KindInfo struct {
	Kind  core.Kind
	Title string
}

// Factory creates fresh rules for one model.
type Factory func() core.Rules

var (
	factories = make(map[core.Kind]Factory)
	titles    = make(map[core.Kind]string)
	mu        sync.RWMutex
)

// Register adds a rules factory for a model kind.
// Panics if the kind is already registered.
func Register(kind core.Kind, title string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[kind]; exists {
		panic(fmt.Sprintf("registry: kind %q already registered", kind))
	}

	factories[kind] = f
	titles[kind] = title
}

// List returns information about all registered kinds, sorted by kind.
func List() []KindInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]KindInfo, 0, len(factories))
	for kind := range factories {
		result = append(result, KindInfo{
			Kind:  kind,
			Title: titles[kind],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Kind < result[j].Kind
	})

	return result
}

// Create returns new rules for the given kind.
// Returns an error if the kind is not registered.
func Create(kind core.Kind) (core.Rules, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[kind]
	if !ok {
		return nil, fmt.Errorf("registry: unknown model kind %q", kind)
	}

	return f(), nil
}

// Exists checks if a kind is registered.
func Exists(kind core.Kind) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[kind]
	return ok
}
