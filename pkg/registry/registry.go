// Package registry implements the node definition registry: the lookup
// authority that binds node type names to their schemas.
package registry

import (
	"sync"

	"github.com/arborlab/arbor/pkg/btschema"
)

// Registry manages the available node definitions.
// Lookup never fails; unknown names resolve to the btschema.Unknown sentinel.
type Registry struct {
	mu   sync.RWMutex
	defs map[string]*btschema.NodeDef
}

// New creates a new empty registry.
func New() *Registry {
	return &Registry{
		defs: make(map[string]*btschema.NodeDef),
	}
}

// Register adds a definition to the registry.
// If a definition with the same name exists, it is overwritten.
func (r *Registry) Register(def *btschema.NodeDef) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.defs[def.Name] = def
}

// Lookup returns the definition bound to name, or the unknown sentinel.
func (r *Registry) Lookup(name string) *btschema.NodeDef {
	r.mu.RLock()
	def, ok := r.defs[name]
	r.mu.RUnlock()

	if !ok {
		return btschema.Unknown(name)
	}
	return def
}

// Names returns all registered definition names.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.defs))
	for n := range r.defs {
		names = append(names, n)
	}
	return names
}

// Len returns the number of registered definitions.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.defs)
}
