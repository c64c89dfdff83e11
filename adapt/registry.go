// SPDX-License-Identifier: MIT

package adapt

import (
	"fmt"
	"sort"
	"sync"
)

// Canonical algorithm names.
const (
	NameNA = "NA"
	NameSA = "SA"
)

// Params carries the knobs a Factory may read. Zero values select defaults.
type Params struct {
	Dim    int
	Solver Solver
}

// Factory builds an Adapter from Params.
type Factory func(Params) (Adapter, error)

// Registry maps algorithm names (and aliases) to factories.
// The zero value is not usable; call NewRegistry.
type Registry struct {
	mu        sync.RWMutex
	factories map[string]Factory
	canonical map[string]string // alias or name -> canonical name
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		factories: make(map[string]Factory),
		canonical: make(map[string]string),
	}
}

// Register adds a factory under name and optional aliases.
func (r *Registry) Register(name string, f Factory, aliases ...string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, n := range append([]string{name}, aliases...) {
		if _, taken := r.canonical[n]; taken {
			return fmt.Errorf("%w: %q", ErrDuplicateAlgorithm, n)
		}
	}
	r.factories[name] = f
	r.canonical[name] = name
	for _, a := range aliases {
		r.canonical[a] = name
	}

	return nil
}

// Canonical resolves a name or alias to its canonical name.
func (r *Registry) Canonical(name string) (string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.canonical[name]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
	}
	return c, nil
}

// New builds the adapter registered under name or alias.
func (r *Registry) New(name string, p Params) (Adapter, error) {
	c, err := r.Canonical(name)
	if err != nil {
		return nil, err
	}
	r.mu.RLock()
	f := r.factories[c]
	r.mu.RUnlock()

	return f(p)
}

// Names returns canonical names in lexical order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]string, 0, len(r.factories))
	for n := range r.factories {
		out = append(out, n)
	}
	sort.Strings(out)

	return out
}

var defaultRegistry = newDefaultRegistry()

func newDefaultRegistry() *Registry {
	r := NewRegistry()
	_ = r.Register(NameNA, func(Params) (Adapter, error) { return NoAdaptation{}, nil }, "NoAdaptation")
	_ = r.Register(NameSA, func(p Params) (Adapter, error) {
		return NewSubspaceAlignment(p.Dim, p.Solver), nil
	}, "SubspaceAlignment")

	return r
}

// Default returns the process-wide registry holding NA and SA.
func Default() *Registry { return defaultRegistry }

// Register adds a factory to the default registry.
func Register(name string, f Factory, aliases ...string) error {
	return defaultRegistry.Register(name, f, aliases...)
}

// New builds an adapter from the default registry.
func New(name string, p Params) (Adapter, error) { return defaultRegistry.New(name, p) }
