// Package modules exposes the geometry value types of the library under
// stable names, so hosts (consoles, scripting layers, viewers) can discover
// and construct them without importing each type package directly.
package modules

import (
	"fmt"
	"sort"
	"strings"
)

// Module describes one registered value type.
type Module struct {
	Name    string
	Aliases []string
	Doc     string
	// Arity is the number of numeric components Make expects.
	Arity int
	Make  func(comps []float64) (any, error)
}

// Registry maps stable names and aliases to modules.
type Registry struct {
	primary map[string]Module
	lookup  map[string]string
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		primary: make(map[string]Module),
		lookup:  make(map[string]string),
	}
}

// Register adds m to the registry. Names and aliases share one namespace and
// must be unique.
func (r *Registry) Register(m Module) error {
	m.Name = strings.TrimSpace(m.Name)
	if m.Name == "" {
		return fmt.Errorf("modules: empty module name")
	}
	if m.Make == nil {
		return fmt.Errorf("modules: %q has no constructor", m.Name)
	}
	if _, ok := r.lookup[m.Name]; ok {
		return fmt.Errorf("modules: duplicate module %q", m.Name)
	}

	r.primary[m.Name] = m
	r.lookup[m.Name] = m.Name

	for _, alias := range m.Aliases {
		alias = strings.TrimSpace(alias)
		if alias == "" {
			continue
		}
		if _, ok := r.lookup[alias]; ok {
			return fmt.Errorf("modules: duplicate alias %q", alias)
		}
		r.lookup[alias] = m.Name
	}
	return nil
}

// Lookup resolves a name or alias.
func (r *Registry) Lookup(name string) (Module, bool) {
	primary, ok := r.lookup[name]
	if !ok {
		return Module{}, false
	}
	m, ok := r.primary[primary]
	return m, ok
}

// Names returns the registered primary names, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.primary))
	for name := range r.primary {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Make constructs a value of the named module from comps. The component
// count must match the module's arity exactly.
func (r *Registry) Make(name string, comps ...float64) (any, error) {
	m, ok := r.Lookup(name)
	if !ok {
		return nil, fmt.Errorf("modules: unknown module %q", name)
	}
	if len(comps) != m.Arity {
		return nil, fmt.Errorf("modules: %s expects %d components, got %d", m.Name, m.Arity, len(comps))
	}
	return m.Make(comps)
}
