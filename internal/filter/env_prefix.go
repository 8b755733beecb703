package filter

import (
	"strings"

	"github.com/MKhiriev/go-track/models"
)

// EnvPrefixFilter keeps the keys prefixed with "<tag>." and strips the prefix.
type EnvPrefixFilter struct{}

// NewEnvPrefixFilter returns an EnvPrefixFilter as a PropertyFilter.
func NewEnvPrefixFilter() PropertyFilter {
	return &EnvPrefixFilter{}
}

// Filter returns set itself when tag is blank or set is empty. Otherwise it
// returns a new set whose provenance is annotated with "[filtered:<tag>]",
// followed by "(empty)" when no key matched.
//
// A key equal to tag never matches. A key equal to "<tag>." becomes the
// empty key.
func (f *EnvPrefixFilter) Filter(set *models.PropertySet, tag string) *models.PropertySet {
	if IsBlank(tag) || set.IsEmpty() {
		return set
	}

	prefix := tag + "."
	filtered := make(map[string]string)
	for _, key := range set.Keys() {
		rest, ok := strings.CutPrefix(key, prefix)
		if !ok {
			continue
		}
		filtered[rest], _ = set.Get(key)
	}

	provenance := set.Provenance() + "[filtered:" + tag + "]"
	if len(filtered) == 0 {
		return models.EmptyPropertySet(provenance + "(empty)")
	}

	return models.NewPropertySet(filtered, provenance)
}

// IsBlank reports whether tag is empty or whitespace only, meaning no
// environment is active.
func IsBlank(tag string) bool {
	return strings.TrimSpace(tag) == ""
}
