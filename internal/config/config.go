// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"github.com/MKhiriev/go-track/internal/source"
)

// StructuredConfig is the bootstrap configuration of the go-track process:
// everything needed before external configuration can be resolved. It is
// populated by merging built-in defaults, environment variables and
// command-line flags.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Log holds logging settings for the bootstrap phase.
	Log Log `envPrefix:"TRACK_LOG_"`

	// Sources holds overrides for locating the user-home properties file.
	Sources Sources `envPrefix:"TRACK_"`

	// SystemProperties are the process properties: "config" names a
	// properties file and "env" selects the active environment.
	// Env: TRACK_OPTS in "key=value,key=value" form.
	// Flags: -D key=value, -config, -env.
	SystemProperties map[string]string `env:"TRACK_OPTS" envKeyValSeparator:"="`
}

// Log holds logging settings.
type Log struct {
	// Level is the minimum level emitted: debug, info, warn or error.
	// Env: TRACK_LOG_LEVEL
	Level string `env:"LEVEL"`
}

// Sources holds settings that locate the user-home properties file.
type Sources struct {
	// HomeDir is the directory the user configuration path is resolved
	// against. Defaults to the current user's home directory.
	// Env: TRACK_HOME_DIR
	HomeDir string `env:"HOME_DIR"`

	// UserConfigPath is the properties file path relative to HomeDir.
	// Env: TRACK_USER_CONFIG_PATH
	UserConfigPath string `env:"USER_CONFIG_PATH"`
}

// ActiveEnvironment returns the environment tag selected through the "env"
// process property, or "" when none is set.
func (cfg *StructuredConfig) ActiveEnvironment() string {
	return cfg.SystemProperties[source.EnvProperty]
}

// ConfigFile returns the properties file named by the "config" process
// property, or "" when none is set.
func (cfg *StructuredConfig) ConfigFile() string {
	return cfg.SystemProperties[source.ConfigProperty]
}

// GetStructuredConfig loads, merges, and validates the bootstrap
// configuration from all available sources in the following priority order
// (last source wins for non-empty fields; process properties are merged
// key by key):
//  1. Built-in defaults
//  2. Environment variables
//  3. Command-line flags (as registered by [RegisterFlags] and parsed by the
//     caller); nil skips this layer
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig(flags *StructuredConfig) (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags(flags).
		build()
}
