// Package logging configures log/slog for the CLI and carries a logger
// through context.Context. Report emits the one-line activity records
// ("create", "move", "run", "replace") that make up a scaffolding log.
package logging
