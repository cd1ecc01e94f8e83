package django

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/scaffoldx/scaffoldx-django/internal/logging"
	"github.com/scaffoldx/scaffoldx-django/internal/shell"
	"github.com/stretchr/testify/require"
)

const generatedSettings = `from pathlib import Path

BASE_DIR = Path(__file__).resolve().parent.parent

DATABASES = {
    'default': {
        'ENGINE': 'django.db.backends.sqlite3',
        'NAME': BASE_DIR / 'db.sqlite3',
    }
}
`

const generatedManage = `#!/usr/bin/env python
def main():
    pass
`

// fakeGenerator stands in for django-admin. startproject writes the layout
// a real 4.x generator produces.
type fakeGenerator struct {
	version  string
	probeErr error
	settings string
	skip     []string
	calls    [][]string
}

func newFakeGenerator() *fakeGenerator {
	return &fakeGenerator{version: "4.2.7", settings: generatedSettings}
}

func (f *fakeGenerator) String() string { return "django-admin" }

func (f *fakeGenerator) Run(_ context.Context, args ...string) (*shell.Output, error) {
	f.calls = append(f.calls, args)
	if len(args) == 1 && args[0] == "--version" {
		if f.probeErr != nil {
			return nil, f.probeErr
		}
		return &shell.Output{Stdout: f.version + "\n"}, nil
	}
	if len(args) != 3 || args[0] != "startproject" {
		return nil, errors.New("unexpected arguments")
	}

	pkg, dir := args[1], args[2]
	files := map[string]string{
		"manage.py":          generatedManage,
		pkg + "/__init__.py": "",
		pkg + "/settings.py": f.settings,
		pkg + "/urls.py":     "urlpatterns = []\n",
		pkg + "/wsgi.py":     "application = None\n",
		pkg + "/asgi.py":     "application = None\n",
	}
	for _, s := range f.skip {
		delete(files, s)
	}
	for rel, content := range files {
		path := filepath.Join(dir, filepath.FromSlash(rel))
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, err
		}
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			return nil, err
		}
	}
	return &shell.Output{}, nil
}

// ─── Test Helpers ──────────────────────────────────────────────────

func testContext(t *testing.T) (context.Context, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	l := logging.New(logging.Config{Level: slog.LevelDebug, Format: "text", Output: &buf})
	return logging.WithLogger(context.Background(), l), &buf
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}
