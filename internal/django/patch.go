package django

import (
	"context"
	"fmt"
	"os"
	"regexp"

	"github.com/scaffoldx/scaffoldx-django/internal/logging"
)

// DefaultDatabasePattern matches the sqlite path django-admin writes into
// settings.py since Django 3.1.
var DefaultDatabasePattern = regexp.MustCompile(`BASE_DIR\s*/\s*['"]db\.sqlite3['"]`)

// DefaultDatabaseReplacement moves the sqlite file next to the project root,
// one level above the installable package.
const DefaultDatabaseReplacement = `BASE_DIR.parent / "db.sqlite3"`

// ReplaceDefaultDatabase rewrites every match of pattern in the settings file
// at path with the literal replacement. Zero matches is an error and leaves
// the file untouched: it means the generator's output changed shape.
// In pretend mode only the report is emitted.
func ReplaceDefaultDatabase(ctx context.Context, path string, pattern *regexp.Regexp, replacement string, pretend bool) error {
	if !pretend {
		n, err := substitute(path, pattern, replacement)
		if err != nil {
			return wrapUnexpected(err, fmt.Sprintf(
				"failed attempt to replace the default sqlite3 database file with %s in %s", replacement, path))
		}
		logging.FromContext(ctx).DebugContext(ctx, "patched settings", "path", path, "matches", n)
	}

	logging.Report(ctx, logging.ActivityReplace, path, "what", "default database")
	return nil
}

// substitute rewrites path in place and returns the number of matches.
func substitute(path string, pattern *regexp.Regexp, replacement string) (int, error) {
	info, err := os.Stat(path)
	if err != nil {
		return 0, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, err
	}

	text := string(data)
	n := len(pattern.FindAllStringIndex(text, -1))
	if n < 1 {
		return 0, fmt.Errorf("no match for %s", pattern)
	}

	replaced := pattern.ReplaceAllLiteralString(text, replacement)
	if err := os.WriteFile(path, []byte(replaced), info.Mode().Perm()); err != nil {
		return 0, err
	}
	return n, nil
}
