package ecs

import "sort"

// Registry maps entity kind names to factories so data files and input
// handlers can create entities by name.
type Registry struct {
	factories map[string]Factory
}

func NewRegistry() *Registry {
	return &Registry{
		factories: make(map[string]Factory, 8),
	}
}

// Register adds a factory for kind. Entities it builds get Kind stamped.
func (r *Registry) Register(kind string, f Factory) {
	r.factories[kind] = func() (*Entity, error) {
		e, err := f()
		if err != nil || e == nil {
			return e, err
		}
		e.Kind = kind
		return e, nil
	}
}

// Factory returns the factory registered for kind.
func (r *Registry) Factory(kind string) (Factory, bool) {
	f, ok := r.factories[kind]
	return f, ok
}

// Kinds returns the registered kind names, sorted.
func (r *Registry) Kinds() []string {
	kinds := make([]string, 0, len(r.factories))
	for k := range r.factories {
		kinds = append(kinds, k)
	}
	sort.Strings(kinds)
	return kinds
}
