// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"maps"
	"slices"
)

// PropertySet is an immutable set of string properties loaded from a single
// configuration source, tagged with the provenance of that source.
//
// Provenance is a human-readable label: the file path the properties came
// from, optionally annotated with filtering state
// (e.g. "/etc/track.properties[filtered:dev]").
//
// An empty PropertySet is a valid value and is distinct from a source that
// could not be read at all. All methods are safe on a nil *PropertySet,
// which behaves as an empty set.
type PropertySet struct {
	props      map[string]string
	provenance string
}

// NewPropertySet returns a PropertySet holding a copy of props.
// A nil map yields an empty set.
func NewPropertySet(props map[string]string, provenance string) *PropertySet {
	cp := make(map[string]string, len(props))
	maps.Copy(cp, props)

	return &PropertySet{
		props:      cp,
		provenance: provenance,
	}
}

// EmptyPropertySet returns a PropertySet with no properties.
func EmptyPropertySet(provenance string) *PropertySet {
	return &PropertySet{
		props:      map[string]string{},
		provenance: provenance,
	}
}

// Provenance returns the label describing where the properties came from.
// A nil set has no provenance.
func (s *PropertySet) Provenance() string {
	if s == nil {
		return ""
	}
	return s.provenance
}

// Get returns the value stored under key.
func (s *PropertySet) Get(key string) (string, bool) {
	if s == nil {
		return "", false
	}
	v, ok := s.props[key]
	return v, ok
}

// Len returns the number of properties in the set.
func (s *PropertySet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.props)
}

// IsEmpty reports whether the set holds no properties. A nil set is empty.
func (s *PropertySet) IsEmpty() bool {
	return s.Len() == 0
}

// Keys returns the property keys in lexical order.
func (s *PropertySet) Keys() []string {
	if s == nil {
		return []string{}
	}
	return slices.Sorted(maps.Keys(s.props))
}

// Map returns a copy of the properties. Mutating the result does not affect
// the set. A nil set yields an empty map.
func (s *PropertySet) Map() map[string]string {
	if s == nil {
		return map[string]string{}
	}
	return maps.Clone(s.props)
}
