package source

//go:generate mockgen -source=interfaces.go -destination=../mock/source_mock.go -package=mock

import "github.com/MKhiriev/go-track/models"

// ConfigurationSource is a single candidate origin of configuration
// properties.
type ConfigurationSource interface {
	// IsAvailable reports whether the source can currently be read.
	// It has no side effects and never fails.
	IsAvailable() bool

	// Load reads the source. An unavailable source yields an empty set and a
	// nil error; a source that fails while being read yields a *LoadError.
	Load() (*models.PropertySet, error)

	// Name returns a stable identifier used in logs.
	Name() string
}

// Provider supplies the configuration sources to resolve, lowest
// precedence first.
type Provider interface {
	Sources() []ConfigurationSource
}
