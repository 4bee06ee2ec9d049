package agent

import (
	"fmt"
	"sync"
)

// DefaultName is used when a configuration does not imply a name.
const DefaultName = "Leela"

// Constructor builds an agent instance from an instance id, a name and a
// configuration.
type Constructor func(id, name string, cfg Config) (Agent, error)

// Registry maps configuration kinds to agent constructors. The zero value is
// not usable; create one with NewRegistry. All methods are goroutine-safe.
type Registry struct {
	mu    sync.RWMutex
	ctors map[string]Constructor
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{ctors: make(map[string]Constructor)}
}

// Register associates a kind with a constructor, replacing any previous one.
func (r *Registry) Register(kind string, ctor Constructor) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ctors[kind] = ctor
}

// Create instantiates an agent for cfg.Kind under the given instance id.
func (r *Registry) Create(id string, cfg Config) (Agent, error) {
	r.mu.RLock()
	ctor, ok := r.ctors[cfg.Kind]
	r.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("unknown agent kind %q", cfg.Kind)
	}
	return ctor(id, DefaultName, cfg)
}
