// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app wires the bootstrap configuration, the property registry and
// the external configuration pipeline into a resolved [Environment].
//
// Registry precedence after [App.Bootstrap], highest first:
//   - systemProperties: process properties (-D flags, TRACK_OPTS)
//   - systemEnvironment: OS environment variables, relaxed key lookup
//   - externalConfig:*: merged external properties files
package app

import (
	"context"
	"os"

	"github.com/MKhiriev/go-track/internal/config"
	"github.com/MKhiriev/go-track/internal/filter"
	"github.com/MKhiriev/go-track/internal/logger"
	"github.com/MKhiriev/go-track/internal/pipeline"
	"github.com/MKhiriev/go-track/internal/registry"
	"github.com/MKhiriev/go-track/internal/source"
)

// Names of the native registry sources.
const (
	SystemPropertiesSourceName  = "systemProperties"
	SystemEnvironmentSourceName = "systemEnvironment"
)

// App resolves the process environment from a bootstrap configuration.
type App struct {
	cfg     *config.StructuredConfig
	log     *logger.Logger
	environ []string
}

// Option customizes an [App].
type Option func(*App)

// WithEnviron replaces the OS environment ("KEY=value" pairs) seen by the
// app. Used by tests and embedding callers.
func WithEnviron(environ []string) Option {
	return func(a *App) {
		a.environ = environ
	}
}

// New returns an App for cfg. A nil log discards all output.
func New(cfg *config.StructuredConfig, log *logger.Logger, opts ...Option) *App {
	if log == nil {
		log = logger.Nop()
	}

	a := &App{
		cfg:     cfg,
		log:     log,
		environ: os.Environ(),
	}
	for _, opt := range opts {
		opt(a)
	}

	return a
}

// Environment is the result of one bootstrap: the populated registry, the
// external configuration view that was registered into it and the active
// environment tag used for filtering.
type Environment struct {
	Registry *registry.Registry
	View     *pipeline.View
	Tag      string
}

// Bootstrap builds the registry from the native sources, then resolves the
// external configuration files into it with the lowest precedence.
func (a *App) Bootstrap() *Environment {
	reg := registry.New()

	sysProps := registry.NewMapSource(SystemPropertiesSourceName, a.cfg.SystemProperties)
	sysEnv := registry.NewEnvironmentSource(SystemEnvironmentSourceName, a.environ)
	reg.AddLast(sysProps)
	reg.AddLast(sysEnv)

	provider := &source.DefaultProvider{
		HomeDir:          a.cfg.Sources.HomeDir,
		UserConfigPath:   a.cfg.Sources.UserConfigPath,
		LookupEnv:        sysEnv.Property,
		SystemProperties: a.cfg.SystemProperties,
	}

	tag := a.cfg.ActiveEnvironment()
	resolver := pipeline.NewResolver(provider, filter.NewEnvPrefixFilter(), a.log.WithComponent("pipeline"))
	view := resolver.PostProcess(reg, tag)

	a.log.Debug().
		Int("sources", len(reg.Sources())).
		Int("external_properties", view.Len()).
		Msg("environment bootstrapped")

	return &Environment{
		Registry: reg,
		View:     view,
		Tag:      tag,
	}
}

// Settings binds and validates the typed application settings from the
// registry.
func (e *Environment) Settings(ctx context.Context) (*config.Settings, error) {
	return config.BindSettings(ctx, e.Registry)
}
