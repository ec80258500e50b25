// Package registry holds named autocompleter factories so HTTP handlers and
// widget code can build per-request instances from an implementation name.
package registry

import (
	"fmt"
	"net/http"
	"sort"
	"sync"

	autocomplete "github.com/goliatone/go-autocomplete"
)

// Factory builds a fresh autocompleter for one request/render cycle. values
// follows the normalization contract of autocomplete.NormalizeValues.
type Factory func(r *http.Request, values any) (autocomplete.Autocompleter, error)

// Registry stores factories by implementation name, providing discovery and
// duplication safeguards. Callers can embed or wrap this for dependency
// injection.
type Registry struct {
	mu        sync.RWMutex
	factories map[string]Factory
}

// New creates an empty registry instance.
func New() *Registry {
	return &Registry{
		factories: make(map[string]Factory),
	}
}

// Register adds a factory under name. Duplicate names return an error.
func (r *Registry) Register(name string, factory Factory) error {
	if name == "" {
		return fmt.Errorf("registry: implementation name is required")
	}
	if factory == nil {
		return fmt.Errorf("registry: factory is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.factories[name]; exists {
		return fmt.Errorf("registry: autocomplete %q already registered", name)
	}

	r.factories[name] = factory
	return nil
}

// MustRegister panics on registration failure. Useful for init-time wiring.
func (r *Registry) MustRegister(name string, factory Factory) {
	if err := r.Register(name, factory); err != nil {
		panic(err)
	}
}

// Get retrieves a factory by name.
func (r *Registry) Get(name string) (Factory, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	factory, ok := r.factories[name]
	if !ok {
		return nil, fmt.Errorf("registry: autocomplete %q not found", name)
	}
	return factory, nil
}

// MustGet panics if the factory is missing.
func (r *Registry) MustGet(name string) Factory {
	factory, err := r.Get(name)
	if err != nil {
		panic(err)
	}
	return factory
}

// Build constructs a per-request instance of the named implementation.
func (r *Registry) Build(name string, req *http.Request, values any) (autocomplete.Autocompleter, error) {
	factory, err := r.Get(name)
	if err != nil {
		return nil, err
	}
	return factory(req, values)
}

// List returns a sorted list of registered implementation names.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Has reports whether an implementation is registered.
func (r *Registry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.factories[name]
	return ok
}
