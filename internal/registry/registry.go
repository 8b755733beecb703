// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package registry holds the process's layered configuration: an ordered
// list of named property sources consulted from highest to lowest
// precedence. The first source that defines a key wins.
package registry

import (
	"slices"
	"sync"
)

// Registry is an ordered collection of PropertySources. It is safe for
// concurrent use.
type Registry struct {
	mu      sync.RWMutex
	sources []PropertySource
}

// New returns an empty Registry.
func New() *Registry {
	return &Registry{}
}

// AddFirst adds src with the highest precedence. A source already registered
// under the same name is replaced.
func (r *Registry) AddFirst(src PropertySource) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.remove(src.Name())
	r.sources = slices.Insert(r.sources, 0, src)
}

// AddLast adds src with the lowest precedence. A source already registered
// under the same name is replaced.
func (r *Registry) AddLast(src PropertySource) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.remove(src.Name())
	r.sources = append(r.sources, src)
}

// Remove drops the source called name and reports whether it was present.
func (r *Registry) Remove(name string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.remove(name)
}

func (r *Registry) remove(name string) bool {
	i := r.index(name)
	if i < 0 {
		return false
	}
	r.sources = slices.Delete(r.sources, i, i+1)
	return true
}

func (r *Registry) index(name string) int {
	return slices.IndexFunc(r.sources, func(s PropertySource) bool {
		return s.Name() == name
	})
}

// Contains reports whether a source called name is registered.
func (r *Registry) Contains(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.index(name) >= 0
}

// Get returns the source called name.
func (r *Registry) Get(name string) (PropertySource, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i := r.index(name)
	if i < 0 {
		return nil, false
	}
	return r.sources[i], true
}

// Sources returns the registered sources, highest precedence first.
func (r *Registry) Sources() []PropertySource {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return slices.Clone(r.sources)
}

// Property resolves key against the sources in precedence order.
func (r *Registry) Property(key string) (string, bool) {
	v, _, ok := r.Lookup(key)
	return v, ok
}

// Lookup resolves key and also returns the name of the source that supplied
// the value.
func (r *Registry) Lookup(key string) (value, sourceName string, ok bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, src := range r.sources {
		if v, found := src.Property(key); found {
			return v, src.Name(), true
		}
	}

	return "", "", false
}

// Snapshot resolves every key enumerated by any source and returns the
// winning values.
func (r *Registry) Snapshot() map[string]string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	snapshot := make(map[string]string)
	for _, owner := range r.sources {
		for _, key := range owner.Keys() {
			if _, done := snapshot[key]; done {
				continue
			}
			for _, src := range r.sources {
				if v, found := src.Property(key); found {
					snapshot[key] = v
					break
				}
			}
		}
	}

	return snapshot
}
