package provider

import "fmt"

// Registry holds all configured OAuth providers and allows
// lookup by provider name. It performs no auth logic itself.
type Registry struct {
	providers map[string]Adapter
	order     []string
}

// NewRegistry registers the given OAuth providers by name.
// Provider names must be unique.
func NewRegistry(list ...Adapter) *Registry {
	m := make(map[string]Adapter)
	order := make([]string, 0, len(list))
	for _, p := range list {
		m[p.Name()] = p
		order = append(order, p.Name())
	}
	return &Registry{providers: m, order: order}
}

// Get returns the OAuth provider by name or an error if not registered.
func (r *Registry) Get(name string) (Adapter, error) {
	p, ok := r.providers[name]
	if !ok {
		return nil, fmt.Errorf("unknown oauth provider: %s", name)
	}
	return p, nil
}

// Names returns provider names in registration order, for route setup.
func (r *Registry) Names() []string {
	return append([]string(nil), r.order...)
}
