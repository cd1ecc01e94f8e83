package logging

import (
	"context"
	"log/slog"
)

// Activities reported while a project is being scaffolded.
const (
	ActivityCreate  = "create"
	ActivityMove    = "move"
	ActivityRun     = "run"
	ActivityReplace = "replace"
	ActivityChmod   = "chmod"
	ActivitySkip    = "skip"
)

// Report logs one scaffolding activity at info level. Pretend runs report
// the same activities as real runs, so the log is the dry-run output.
func Report(ctx context.Context, activity, subject string, attrs ...any) {
	args := append([]any{slog.String("path", subject)}, attrs...)
	FromContext(ctx).InfoContext(ctx, activity, args...)
}

// Target is the attribute used for the destination of a move.
func Target(path string) slog.Attr {
	return slog.String("target", path)
}
