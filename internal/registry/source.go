package registry

import (
	"maps"
	"slices"
	"strings"
)

// PropertySource is a named, read-only set of properties held by a Registry.
type PropertySource interface {
	// Name identifies the source inside the registry.
	Name() string
	// Property returns the value for key.
	Property(key string) (string, bool)
	// Keys lists every key the source can enumerate.
	Keys() []string
}

// MapSource is a PropertySource backed by a private copy of a map.
type MapSource struct {
	name  string
	props map[string]string
}

// NewMapSource returns a MapSource holding a copy of props.
func NewMapSource(name string, props map[string]string) *MapSource {
	cp := make(map[string]string, len(props))
	maps.Copy(cp, props)

	return &MapSource{name: name, props: cp}
}

func (s *MapSource) Name() string {
	return s.name
}

func (s *MapSource) Property(key string) (string, bool) {
	v, ok := s.props[key]
	return v, ok
}

func (s *MapSource) Keys() []string {
	return slices.Sorted(maps.Keys(s.props))
}

// Len returns the number of properties.
func (s *MapSource) Len() int {
	return len(s.props)
}

// EnvironmentSource exposes process environment variables.
//
// Lookups are relaxed: a property key such as "server.port" also matches the
// variable SERVER_PORT, so dotted property keys can be overridden from the
// environment.
type EnvironmentSource struct {
	name string
	vars map[string]string
}

// NewEnvironmentSource parses KEY=VALUE pairs as returned by os.Environ.
// Entries without '=' are ignored.
func NewEnvironmentSource(name string, environ []string) *EnvironmentSource {
	vars := make(map[string]string, len(environ))
	for _, kv := range environ {
		k, v, ok := strings.Cut(kv, "=")
		if !ok || k == "" {
			continue
		}
		vars[k] = v
	}

	return &EnvironmentSource{name: name, vars: vars}
}

func (s *EnvironmentSource) Name() string {
	return s.name
}

// Property looks key up verbatim, then in its environment-variable form.
func (s *EnvironmentSource) Property(key string) (string, bool) {
	if v, ok := s.vars[key]; ok {
		return v, true
	}

	v, ok := s.vars[EnvVarName(key)]
	return v, ok
}

func (s *EnvironmentSource) Keys() []string {
	return slices.Sorted(maps.Keys(s.vars))
}

var envNameReplacer = strings.NewReplacer(".", "_", "-", "_")

// EnvVarName converts a property key to its environment-variable form:
// "server.port" becomes "SERVER_PORT".
func EnvVarName(key string) string {
	return strings.ToUpper(envNameReplacer.Replace(key))
}
