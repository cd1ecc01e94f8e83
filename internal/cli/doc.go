// Package cli defines the Cobra command tree for the scaffoldx CLI. Each file
// registers one top-level command (new, config, version) with the root
// command. Commands delegate to internal packages and only handle flags,
// output and the run context.
package cli
