package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/scaffoldx/scaffoldx-django/internal/django"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fakeDjangoAdmin = `#!/bin/sh
if [ "$1" = "--version" ]; then
  echo "4.2.7"
  exit 0
fi
if [ "$1" != "startproject" ]; then
  echo "unknown command: $1" >&2
  exit 2
fi
pkg="$2"
dir="$3"
mkdir -p "$dir/$pkg"
cat > "$dir/manage.py" <<'PY'
#!/usr/bin/env python
def main():
    pass
PY
: > "$dir/$pkg/__init__.py"
echo "application = None" > "$dir/$pkg/wsgi.py"
echo "application = None" > "$dir/$pkg/asgi.py"
cat > "$dir/$pkg/settings.py" <<'PY'
BASE_DIR = None
DATABASES = {
    'default': {
        'NAME': BASE_DIR / 'db.sqlite3',
    }
}
PY
`

func TestNew_Django(t *testing.T) {
	setup(t)
	dir := t.TempDir()
	project := filepath.Join(dir, "proj")

	_, _, err := execute(t, "new", project, "--django")
	require.NoError(t, err)

	assert.NoDirExists(t, filepath.Join(project, "proj"))
	assert.FileExists(t, filepath.Join(project, "src", "proj", "__main__.py"))

	settings, err := os.ReadFile(filepath.Join(project, "src", "proj", "settings.py"))
	require.NoError(t, err)
	assert.Contains(t, string(settings), `BASE_DIR.parent / "db.sqlite3"`)

	info, err := os.Stat(filepath.Join(project, "manage.py"))
	require.NoError(t, err)
	assert.NotZero(t, info.Mode().Perm()&0o100)

	ignore, err := os.ReadFile(filepath.Join(project, ".gitignore"))
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(string(ignore), "\n# Django\n/*.sqlite3\n"))
}

func TestNew_Pretend(t *testing.T) {
	setup(t)
	project := filepath.Join(t.TempDir(), "proj")

	_, logs, err := execute(t, "new", project, "--django", "--pretend")
	require.NoError(t, err)
	assert.NoDirExists(t, project)
	assert.Contains(t, logs, "startproject proj")
	assert.Contains(t, logs, "run=")
}

func TestNew_GeneratorMissing(t *testing.T) {
	setup(t)
	t.Setenv("SCAFFOLDX_GENERATOR_COMMAND", filepath.Join(t.TempDir(), "no-such-django-admin"))
	project := filepath.Join(t.TempDir(), "proj")

	_, _, err := execute(t, "new", project, "--django")
	require.Error(t, err)
	assert.ErrorIs(t, err, django.ErrGeneratorNotInstalled)
	assert.NoDirExists(t, project)
}

func TestNew_WithoutExtension(t *testing.T) {
	setup(t)
	project := filepath.Join(t.TempDir(), "plain")

	_, _, err := execute(t, "new", project, "-p", "plain_pkg")
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(project, "src", "plain_pkg", "__init__.py"))
	assert.NoFileExists(t, filepath.Join(project, "manage.py"))
}

func TestNew_ListActions(t *testing.T) {
	setup(t)

	out, _, err := execute(t, "new", "proj", "--django", "--list-actions")
	require.NoError(t, err)
	assert.Equal(t, []string{
		"get_default_options", "enforce_options", "verify_project_dir", "define_structure",
		"create_django", "apply_update_rules", "create_structure", "instruct_user", "report_done",
	}, strings.Fields(out))
}

func TestConfig_SetGetValidate(t *testing.T) {
	setup(t)

	_, _, err := execute(t, "config", "set", "log.format", "json")
	require.NoError(t, err)

	out, _, err := execute(t, "config", "get", "log.format")
	require.NoError(t, err)
	assert.Equal(t, "json\n", out)

	out, _, err = execute(t, "config", "validate")
	require.NoError(t, err)
	assert.Contains(t, out, "is valid")

	_, _, err = execute(t, "config", "set", "no.such.key", "x")
	assert.Error(t, err)
}

func TestConfig_ValidateInvalidFile(t *testing.T) {
	path := setup(t)
	require.NoError(t, os.WriteFile(path, []byte("log:\n  level: loud\n"), 0o644))

	_, _, err := execute(t, "config", "validate")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "/log/level")

	_, _, err = execute(t, "new", "proj", "--list-actions")
	assert.Error(t, err, "other commands refuse an invalid config")
}

func TestVersion(t *testing.T) {
	setup(t)
	buildVersion, buildCommit, buildDate = "1.2.3", "abc123", "2026-01-01"

	out, _, err := execute(t, "version", "--short")
	require.NoError(t, err)
	assert.Equal(t, "1.2.3\n", out)

	out, _, err = execute(t, "version", "--json")
	require.NoError(t, err)
	var info map[string]string
	require.NoError(t, json.Unmarshal([]byte(out), &info))
	assert.Equal(t, "abc123", info["commit"])
	assert.NotEmpty(t, info["host"])
}

// ─── Test Helpers ──────────────────────────────────────────────────

// setup isolates config, installs the fake generator and resets flag state.
// It returns the config file path.
func setup(t *testing.T) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("fake generator is a shell script")
	}

	viper.Reset()
	t.Cleanup(viper.Reset)

	dir := t.TempDir()
	configPath := filepath.Join(dir, "config.yaml")
	t.Setenv("SCAFFOLDX_CONFIG", configPath)

	bin := filepath.Join(dir, "django-admin")
	require.NoError(t, os.WriteFile(bin, []byte(fakeDjangoAdmin), 0o755))
	t.Setenv("SCAFFOLDX_GENERATOR_COMMAND", bin)

	t.Cleanup(resetFlags)
	resetFlags()
	return configPath
}

func resetFlags() {
	verbose = false
	newPackage = ""
	newPretend, newForce, newUpdate, newListActions = false, false, false, false
	versionShort, versionJSON = false, false
	for _, on := range enabled {
		*on = false
	}
}

func execute(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})

	err = rootCmd.ExecuteContext(context.Background())
	return out.String(), errOut.String(), err
}
