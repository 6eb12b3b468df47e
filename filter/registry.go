package filter

import (
	"fmt"
	"maps"
	"slices"
	"strings"
)

// namedPrefix marks a reference to a configured filter, e.g. "@top"
const namedPrefix = "@"

// Registry holds the named filters of the configuration
type Registry struct {
	filters map[string]*Filter
}

// NewRegistry compiles every named expression. The first invalid one fails
// the whole registry.
func NewRegistry(named map[string]string) (*Registry, error) {
	r := &Registry{filters: make(map[string]*Filter, len(named))}

	for _, name := range slices.Sorted(maps.Keys(named)) {
		f, err := Compile(named[name])
		if err != nil {
			return nil, fmt.Errorf("failed to compile filter '%s': %w", name, err)
		}
		r.filters[name] = f
	}

	return r, nil
}

// Resolve returns the filter for ref: "@name" looks up a named filter, any
// other value is compiled as an expression.
func (r *Registry) Resolve(ref string) (*Filter, error) {
	name, ok := strings.CutPrefix(strings.TrimSpace(ref), namedPrefix)
	if !ok {
		return Compile(ref)
	}

	f, ok := r.filters[name]
	if !ok {
		return nil, &UnknownFilterError{Name: name}
	}
	return f, nil
}

// Names returns the configured filter names, sorted
func (r *Registry) Names() []string {
	return slices.Sorted(maps.Keys(r.filters))
}
