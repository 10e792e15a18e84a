package store

import (
	"github.com/storykit/core/registry"
)

// ServiceName is the name the store registers under in a document registry.
const ServiceName = "story-state-store"

// FromRegistry returns the document's store, constructing it with the given
// initial snapshot on first access. Later calls return the same instance and
// ignore the initial argument.
func FromRegistry(reg *registry.Registry, initial Snapshot) *Store {
	svc := reg.GetOrCreate(ServiceName, func() any {
		return New(initial)
	})
	return svc.(*Store)
}
