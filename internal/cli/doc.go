// Package cli defines the Cobra command tree for the monoref CLI. Each file
// in this package registers one top-level command (link, query, config,
// version) with the root command. Command implementations delegate to
// internal packages and only handle flags, settings and output.
package cli
