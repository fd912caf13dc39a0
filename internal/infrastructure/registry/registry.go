// Package registry maps plugin identifiers to factories and resolves persisted fee
// records into evaluable fee definitions.
package registry

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"
)

var ErrUnknownIdentifier = errors.New("unknown plugin identifier")

type Factory[T any] func(config map[string]any) (T, error)

// Registry is safe for concurrent use.
type Registry[T any] struct {
	kind      string
	mu        sync.RWMutex
	factories map[string]Factory[T]
}

func New[T any](kind string) *Registry[T] {
	return &Registry[T]{kind: kind, factories: make(map[string]Factory[T])}
}

func (r *Registry[T]) Register(id string, factory Factory[T]) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.factories[id] = factory
}

func (r *Registry[T]) Create(id string, config map[string]any) (T, error) {
	r.mu.RLock()
	factory, ok := r.factories[id]
	r.mu.RUnlock()
	if !ok {
		var zero T
		return zero, fmt.Errorf("%w: %s %q (known: %s)", ErrUnknownIdentifier, r.kind, id, strings.Join(r.IDs(), ", "))
	}
	if config == nil {
		config = map[string]any{}
	}
	v, err := factory(config)
	if err != nil {
		var zero T
		return zero, fmt.Errorf("%s %q: %w", r.kind, id, err)
	}
	return v, nil
}

// IDs returns the registered identifiers in sorted order.
func (r *Registry[T]) IDs() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ids := make([]string, 0, len(r.factories))
	for id := range r.factories {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}
