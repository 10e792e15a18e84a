// Package registry provides a document-scoped service registry. One registry
// is constructed per host document and threaded explicitly through the
// components that need shared services; there is no hidden package-level
// instance.
package registry

import (
	"sync"
)

// Registry holds named services for a single document. Services are built
// lazily on first access and live until the registry is dropped with the
// document.
type Registry struct {
	mu       sync.RWMutex
	services map[string]any
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{
		services: make(map[string]any),
	}
}

// Get returns a registered service by name.
func (r *Registry) Get(name string) (any, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	svc, ok := r.services[name]
	return svc, ok
}

// GetOrCreate returns the named service, constructing and registering it
// with build on first access. Concurrent callers see a single instance.
func (r *Registry) GetOrCreate(name string, build func() any) any {
	r.mu.RLock()
	svc, ok := r.services[name]
	r.mu.RUnlock()
	if ok {
		return svc
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if svc, ok := r.services[name]; ok {
		return svc
	}
	svc = build()
	r.services[name] = svc
	return svc
}

// Register adds or replaces a named service.
func (r *Registry) Register(name string, svc any) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.services[name] = svc
}
