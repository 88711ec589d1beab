package translate

import (
	"fmt"
	"sort"
	"strings"
)

// PassthroughName disables translation: the source text is used as-is.
const PassthroughName = "none"

// Registry stores translation backends by name and resolves the configured
// default.
type Registry struct {
	backends    map[string]Backend
	defaultName string
}

// NewRegistry creates an empty registry with the given default backend name
func NewRegistry(defaultName string) *Registry {
	normalized := normalizeName(defaultName)
	if normalized == "" {
		normalized = PassthroughName
	}
	return &Registry{
		backends:    make(map[string]Backend),
		defaultName: normalized,
	}
}

// Register adds one backend
func (r *Registry) Register(backend Backend) error {
	if backend == nil {
		return fmt.Errorf("backend is nil")
	}
	name := normalizeName(backend.Name())
	if name == "" {
		return fmt.Errorf("backend name is required")
	}
	r.backends[name] = backend
	return nil
}

// Backend resolves a backend by name. An empty name uses the configured
// default; the passthrough name resolves to a nil backend, meaning no
// translation at all.
func (r *Registry) Backend(name string) (Backend, error) {
	resolved := normalizeName(name)
	if resolved == "" {
		resolved = r.defaultName
	}
	if resolved == PassthroughName {
		return nil, nil
	}

	backend, ok := r.backends[resolved]
	if !ok {
		return nil, fmt.Errorf("translation backend %q is not registered (available: %s)",
			resolved, strings.Join(r.Names(), ", "))
	}
	return backend, nil
}

// Names returns the registered backend names in sorted order
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.backends))
	for name := range r.backends {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func normalizeName(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}
