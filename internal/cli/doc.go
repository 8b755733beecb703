// Package cli wires together the Cobra command tree for the trackctl binary.
//
// It defines the root command and all subcommands (resolve, get, sources,
// check, version), binds the bootstrap flags, resolves the external
// configuration through [app.App] and returns deterministic exit codes.
package cli
