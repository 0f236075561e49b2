package sqlgen

import "fmt"

// Registry maps dialect names to constructed dialect values. Build one
// during process initialization and pass it to whatever owns compilation;
// nothing here mutates global state.
type Registry struct {
	dialects map[string]Dialect
}

// NewRegistry creates a registry holding the given dialects.
func NewRegistry(dialects ...Dialect) *Registry {
	r := &Registry{dialects: make(map[string]Dialect, len(dialects))}
	for _, d := range dialects {
		r.dialects[d.Name()] = d
	}
	return r
}

// Lookup returns the dialect registered under name.
func (r *Registry) Lookup(name string) (Dialect, error) {
	d, ok := r.dialects[name]
	if !ok {
		return nil, fmt.Errorf("unknown dialect: %s", name)
	}
	return d, nil
}

// Names returns the registered dialect names.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.dialects))
	for name := range r.dialects {
		names = append(names, name)
	}
	return names
}
