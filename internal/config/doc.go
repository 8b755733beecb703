// Package config provides configuration loading, merging, and validation
// facilities for the application.
//
// Two kinds of configuration live here. The bootstrap [StructuredConfig]
// is assembled from multiple sources in the following priority order (later
// sources override earlier non-zero fields):
//  1. Built-in defaults
//  2. Environment variables
//  3. Command-line flags
//
// Application [Settings] are bound afterwards from the property registry,
// after external configuration files have been resolved into it.
//
// The main entry points are [GetStructuredConfig] for bootstrap
// configuration and [BindSettings] for typed application settings.
package config
