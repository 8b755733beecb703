package config

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mapResolver map[string]string

func (m mapResolver) Property(key string) (string, bool) {
	v, ok := m[key]
	return v, ok
}

func TestSettingsKeys(t *testing.T) {
	keys, err := SettingsKeys()
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{
		"app.name",
		"server.port",
		"datasource.url",
		"datasource.username",
		"datasource.password",
		"logging.level",
	}, keys)
}

func TestBindSettings_AllValues(t *testing.T) {
	settings, err := BindSettings(context.Background(), mapResolver{
		"app.name":            "billing",
		"server.port":         "9090",
		"datasource.url":      "postgres://localhost/track",
		"datasource.username": "track",
		"datasource.password": "secret",
		"logging.level":       "debug",
		"unrelated.key":       "ignored",
	})
	require.NoError(t, err)

	assert.Equal(t, &Settings{
		App:    AppSettings{Name: "billing"},
		Server: ServerSettings{Port: 9090},
		Datasource: DatasourceSettings{
			URL:      "postgres://localhost/track",
			Username: "track",
			Password: "secret",
		},
		Logging: LoggingSettings{Level: "debug"},
	}, settings)
}

func TestBindSettings_Defaults(t *testing.T) {
	settings, err := BindSettings(context.Background(), mapResolver{
		"datasource.url": "postgres://localhost/track",
	})
	require.NoError(t, err)

	assert.Equal(t, "track", settings.App.Name)
	assert.Equal(t, 8080, settings.Server.Port)
	assert.Equal(t, "info", settings.Logging.Level)
	assert.Empty(t, settings.Datasource.Username)
}

func TestBindSettings_Errors(t *testing.T) {
	tests := []struct {
		name    string
		props   mapResolver
		wantMsg string
	}{
		{
			name:    "missing datasource url",
			props:   mapResolver{},
			wantMsg: "datasource.url",
		},
		{
			name:    "port not a number",
			props:   mapResolver{"datasource.url": "x", "server.port": "http"},
			wantMsg: "Port",
		},
		{
			name:    "port out of range",
			props:   mapResolver{"datasource.url": "x", "server.port": "0"},
			wantMsg: "server.port",
		},
		{
			name:    "unknown log level",
			props:   mapResolver{"datasource.url": "x", "logging.level": "verbose"},
			wantMsg: "logging.level",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			settings, err := BindSettings(context.Background(), tt.props)
			assert.Nil(t, settings)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidSettings)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestSettings_Redacted(t *testing.T) {
	s := Settings{Datasource: DatasourceSettings{URL: "u", Password: "secret"}}

	r := s.Redacted()
	assert.Equal(t, "******", r.Datasource.Password)
	assert.Equal(t, "u", r.Datasource.URL)
	assert.Equal(t, "secret", s.Datasource.Password)

	assert.Empty(t, Settings{}.Redacted().Datasource.Password)
}
