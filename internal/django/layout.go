package django

import (
	"fmt"
	"io/fs"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// expectedLayout lists what `startproject <pkg> <dir>` must leave in <dir>.
// Each entry is a doublestar pattern; at least one file must match.
func expectedLayout(pkg string) []string {
	return []string{
		"manage.py",
		pkg + "/__init__.py",
		pkg + "/settings.py",
		pkg + "/{wsgi,asgi}.py",
	}
}

// verifyLayout checks the generator's output in fsys before anything moves.
func verifyLayout(fsys fs.FS, pkg string) error {
	var missing []string
	for _, pattern := range expectedLayout(pkg) {
		matches, err := doublestar.Glob(fsys, pattern)
		if err != nil {
			return fmt.Errorf("checking %s: %w", pattern, err)
		}
		if len(matches) == 0 {
			missing = append(missing, pattern)
		}
	}
	if len(missing) > 0 {
		return VersionMightBeUnsupported(
			"django-admin did not generate the expected files: missing "+strings.Join(missing, ", "), nil)
	}
	return nil
}
