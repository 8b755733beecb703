package config

import (
	"context"
	"fmt"

	"github.com/caarlos0/env/v11"

	"github.com/MKhiriev/go-track/internal/validators"
)

// Settings are the typed application settings. Each field is keyed by the
// property name formed from its `envPrefix` and `env` tags, for example
// "server.port", and looked up through a [PropertyResolver].
type Settings struct {
	App        AppSettings        `envPrefix:"app." yaml:"app"`
	Server     ServerSettings     `envPrefix:"server." yaml:"server"`
	Datasource DatasourceSettings `envPrefix:"datasource." yaml:"datasource"`
	Logging    LoggingSettings    `envPrefix:"logging." yaml:"logging"`
}

type AppSettings struct {
	Name string `env:"name" envDefault:"track" validate:"required" yaml:"name"`
}

type ServerSettings struct {
	Port int `env:"port" envDefault:"8080" validate:"min=1,max=65535" yaml:"port"`
}

type DatasourceSettings struct {
	URL      string `env:"url" validate:"required" yaml:"url"`
	Username string `env:"username" yaml:"username,omitempty"`
	Password string `env:"password" yaml:"password,omitempty"`
}

type LoggingSettings struct {
	Level string `env:"level" envDefault:"info" validate:"oneof=debug info warn error" yaml:"level"`
}

// Redacted returns a copy of s with secrets masked.
func (s Settings) Redacted() Settings {
	if s.Datasource.Password != "" {
		s.Datasource.Password = "******"
	}
	return s
}

// PropertyResolver looks up a property by key.
type PropertyResolver interface {
	Property(key string) (string, bool)
}

// SettingsKeys returns every property key [Settings] binds.
func SettingsKeys() ([]string, error) {
	params, err := env.GetFieldParams(&Settings{})
	if err != nil {
		return nil, fmt.Errorf("error reading settings fields: %w", err)
	}

	keys := make([]string, 0, len(params))
	for _, p := range params {
		keys = append(keys, p.Key)
	}
	return keys, nil
}

// BindSettings resolves every settings key through resolver, applies
// defaults for keys it does not know, and validates the result.
func BindSettings(ctx context.Context, resolver PropertyResolver) (*Settings, error) {
	keys, err := SettingsKeys()
	if err != nil {
		return nil, err
	}

	values := make(map[string]string, len(keys))
	for _, key := range keys {
		if v, ok := resolver.Property(key); ok {
			values[key] = v
		}
	}

	settings := &Settings{}
	if err = env.ParseWithOptions(settings, env.Options{Environment: values}); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidSettings, err)
	}

	if err = validators.NewStructValidator().Validate(ctx, settings); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidSettings, err)
	}

	return settings, nil
}
