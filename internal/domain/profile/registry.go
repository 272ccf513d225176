// Package profile holds the registry of pluggable per-user profile types.
//
// A profile type is registered once at startup under a name; configuration
// then selects one of the registered names. Each record is keyed by the
// owning user's id, so a store can guarantee at most one record per user.
package profile

import (
	"sort"
	"sync"

	domainerrors "authcore/internal/domain/errors"
)

// Record is a profile row owned by exactly one user.
type Record interface {
	// OwnerID returns the id of the user the record belongs to.
	OwnerID() uint64
}

// Factory builds an unsaved record for userID. It is also used to obtain a
// zero value of the type for schema migration (userID 0).
type Factory func(userID uint64) Record

// Registry maps configuration names to profile factories.
type Registry struct {
	mu        sync.RWMutex
	factories map[string]Factory
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{factories: make(map[string]Factory)}
}

// Register adds factory under name. Registering the same name twice is an error.
func (r *Registry) Register(name string, factory Factory) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.factories[name]; ok {
		return domainerrors.ErrProfileTypeDuplicate.WrapMessage(name)
	}
	r.factories[name] = factory

	return nil
}

// Resolve returns the factory registered under name.
func (r *Registry) Resolve(name string) (Factory, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	factory, ok := r.factories[name]
	if !ok {
		return nil, domainerrors.ErrProfileTypeUnknown.WrapMessage(name)
	}

	return factory, nil
}

// Names returns the registered names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

// Prototypes returns one zero-owner record per registered type, in name order.
func (r *Registry) Prototypes() []Record {
	names := r.Names()

	r.mu.RLock()
	defer r.mu.RUnlock()

	records := make([]Record, 0, len(names))
	for _, name := range names {
		records = append(records, r.factories[name](0))
	}

	return records
}
