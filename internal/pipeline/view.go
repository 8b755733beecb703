package pipeline

import (
	"maps"
	"slices"
	"strings"

	"github.com/MKhiriev/go-track/models"
)

// View is the merged external configuration produced by one resolution run.
type View struct {
	props       map[string]string
	origins     map[string]string
	provenances []string
	outcomes    []Outcome
}

func newView() *View {
	return &View{
		props:   make(map[string]string),
		origins: make(map[string]string),
	}
}

// merge overlays set onto the view. Keys already present are overwritten.
func (v *View) merge(set *models.PropertySet) {
	for _, key := range set.Keys() {
		v.props[key], _ = set.Get(key)
		v.origins[key] = set.Provenance()
	}
	v.provenances = append(v.provenances, set.Provenance())
}

// Get returns the merged value for key.
func (v *View) Get(key string) (string, bool) {
	val, ok := v.props[key]
	return val, ok
}

// Origin returns the provenance of the property set that supplied key.
func (v *View) Origin(key string) (string, bool) {
	o, ok := v.origins[key]
	return o, ok
}

// Len returns the number of merged properties.
func (v *View) Len() int {
	return len(v.props)
}

// IsEmpty reports whether no source contributed any property.
func (v *View) IsEmpty() bool {
	return len(v.props) == 0
}

// Keys returns the merged keys in lexical order.
func (v *View) Keys() []string {
	return slices.Sorted(maps.Keys(v.props))
}

// Map returns a copy of the merged properties.
func (v *View) Map() map[string]string {
	return maps.Clone(v.props)
}

// Provenance joins the provenance of every merged set, in merge order.
func (v *View) Provenance() string {
	return strings.Join(v.provenances, ",")
}

// Outcomes returns the per-source results in processing order.
func (v *View) Outcomes() []Outcome {
	return slices.Clone(v.outcomes)
}
