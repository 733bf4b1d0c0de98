package gotrans

import "sort"

// Factory constructs a backend. Registries call it once per Lookup.
type Factory func() Backend

// Registry maps case-sensitive engine names to backend factories.
type Registry struct {
	factories map[string]Factory
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{factories: make(map[string]Factory)}
}

// Register adds or replaces the factory for name.
func (r *Registry) Register(name string, factory Factory) {
	r.factories[name] = factory
}

// Lookup constructs the backend registered under name. An unregistered name
// yields *UnknownEngineError.
func (r *Registry) Lookup(name string) (Backend, error) {
	factory, ok := r.factories[name]
	if !ok {
		return nil, &UnknownEngineError{Engine: name, Available: r.Names()}
	}
	return factory(), nil
}

// Names returns the registered engine names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
