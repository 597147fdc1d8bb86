package modules

import (
	"fmt"
	"sort"
	"sync"
)

// Registry manages registered prompt modules.
type Registry struct {
	mu      sync.RWMutex
	modules map[string]Module
}

// NewRegistry creates an empty module registry.
func NewRegistry() *Registry {
	return &Registry{
		modules: make(map[string]Module),
	}
}

// Default returns a registry holding every built-in module.
func Default() *Registry {
	r := NewRegistry()
	r.MustRegister(PHP{})
	r.MustRegister(Directory{})
	r.MustRegister(Character{})
	return r
}

// Register adds a module to the registry.
// Returns an error if a module with the same name is already registered.
func (r *Registry) Register(module Module) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	name := module.Name()
	if _, exists := r.modules[name]; exists {
		return fmt.Errorf("module %q already registered", name)
	}

	r.modules[name] = module
	return nil
}

// MustRegister adds a module to the registry, panicking on error.
func (r *Registry) MustRegister(module Module) {
	if err := r.Register(module); err != nil {
		panic(err)
	}
}

// Get retrieves a module by name.
// Returns nil if the module is not found.
func (r *Registry) Get(name string) Module {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.modules[name]
}

// Names returns the sorted names of all registered modules.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.modules))
	for name := range r.modules {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
