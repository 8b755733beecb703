// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package pipeline resolves external configuration.
//
// A [Resolver] walks the sources of a [source.Provider] from lowest to
// highest precedence. Each source is checked, loaded, optionally narrowed to
// the active environment and merged into a [View]; later sources overwrite
// keys set by earlier ones. A source that is missing, empty or fails to load
// is skipped without affecting the others, so resolution itself never fails.
package pipeline

import (
	"github.com/MKhiriev/go-track/internal/filter"
	"github.com/MKhiriev/go-track/internal/logger"
	"github.com/MKhiriev/go-track/internal/registry"
	"github.com/MKhiriev/go-track/internal/source"
	"github.com/MKhiriev/go-track/models"
)

// RegistryPrefix is prepended to the provenance of the merged view to name
// it inside the registry.
const RegistryPrefix = "externalConfig:"

// Resolver merges the properties of several configuration sources.
type Resolver struct {
	provider source.Provider
	filter   filter.PropertyFilter
	log      *logger.Logger
}

// NewResolver builds a Resolver. A nil log discards output.
func NewResolver(provider source.Provider, propertyFilter filter.PropertyFilter, log *logger.Logger) *Resolver {
	if log == nil {
		log = logger.Nop()
	}

	return &Resolver{
		provider: provider,
		filter:   propertyFilter,
		log:      log,
	}
}

// Resolve merges all sources. When tag is not blank every source is first
// narrowed to the keys prefixed with "<tag>.".
func (r *Resolver) Resolve(tag string) *View {
	r.log.Info().Str("env", tag).Msg("processing external configuration")

	view := newView()
	for _, src := range r.provider.Sources() {
		outcome := r.process(src, tag)
		if outcome.Status == StatusLoaded {
			view.merge(outcome.Set)
		}
		view.outcomes = append(view.outcomes, outcome)
	}

	return view
}

// PostProcess resolves the sources and adds the merged view to reg with the
// lowest precedence, so that every source already in reg keeps priority.
// Nothing is registered when no source contributed properties.
func (r *Resolver) PostProcess(reg *registry.Registry, tag string) *View {
	view := r.Resolve(tag)
	if view.IsEmpty() {
		r.log.Info().Msg("no external configuration found")
		return view
	}

	name := RegistryPrefix + view.Provenance()
	reg.AddLast(registry.NewMapSource(name, view.Map()))
	r.log.Info().
		Str("source", name).
		Int("properties", view.Len()).
		Msg("registered external configuration")

	return view
}

func (r *Resolver) process(src source.ConfigurationSource, tag string) Outcome {
	name := src.Name()

	if !src.IsAvailable() {
		r.log.Debug().Str("source", name).Msg("skipping configuration source")
		return Outcome{Source: name, Status: StatusUnavailable}
	}

	set, err := src.Load()
	if err != nil {
		r.log.Warn().Err(err).Str("source", name).Msg("failed to process configuration")
		return Outcome{Source: name, Status: StatusFailed, Err: err}
	}

	if set.IsEmpty() {
		r.log.Debug().Str("source", name).Str("provenance", provenance(set)).
			Msg("no properties found in source, skipping")
		return Outcome{Source: name, Status: StatusEmpty, Set: set}
	}

	if !filter.IsBlank(tag) {
		set = r.filter.Filter(set, tag)
		if set.IsEmpty() {
			r.log.Debug().Str("source", name).Str("provenance", provenance(set)).
				Msg("no properties left after filtering, skipping")
			return Outcome{Source: name, Status: StatusEmpty, Set: set}
		}
	}

	r.log.Info().Str("source", name).Int("properties", set.Len()).
		Msgf("loaded %d properties from %s", set.Len(), set.Provenance())

	return Outcome{Source: name, Status: StatusLoaded, Set: set}
}

func provenance(set *models.PropertySet) string {
	if set == nil {
		return ""
	}
	return set.Provenance()
}
