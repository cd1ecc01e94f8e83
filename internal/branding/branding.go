// Package branding provides compile-time identity values for the CLI.
//
// The values live in branding.yaml next to this file and are baked into
// the binary with //go:embed. Forks edit the YAML, not the Go code.
package branding

import (
	_ "embed"
	"strings"
	"sync"

	"go.yaml.in/yaml/v3"
)

//go:embed branding.yaml
var rawBranding []byte

var (
	once     sync.Once
	defaults brand
)

type brand struct {
	CLIName     string `yaml:"cli_name"`
	DisplayName string `yaml:"display_name"`
	Description string `yaml:"description"`
	HomeDir     string `yaml:"home_dir"`
	EnvPrefix   string `yaml:"env_prefix"`
	GoModule    string `yaml:"go_module"`
	DocsURL     string `yaml:"docs_url"`
}

func load() {
	once.Do(func() {
		// Hard defaults in case the embedded file is empty or malformed.
		defaults = brand{
			CLIName:     "scaffoldx",
			DisplayName: "ScaffoldX",
			Description: "Project scaffolder with a Django extension",
			HomeDir:     ".scaffoldx",
			EnvPrefix:   "SCAFFOLDX",
			GoModule:    "github.com/scaffoldx/scaffoldx-django",
			DocsURL:     "https://github.com/scaffoldx/scaffoldx-django#django-extension",
		}
		_ = yaml.Unmarshal(rawBranding, &defaults)
	})
}

// CLIName returns the root command name (e.g., "scaffoldx").
func CLIName() string { load(); return defaults.CLIName }

// DisplayName returns the human-readable product name (e.g., "ScaffoldX").
func DisplayName() string { load(); return defaults.DisplayName }

// Description returns the short product description.
func Description() string { load(); return defaults.Description }

// HomeDir returns the dot-directory name under $HOME (e.g., ".scaffoldx").
func HomeDir() string { load(); return defaults.HomeDir }

// EnvPrefix returns the environment variable prefix (e.g., "SCAFFOLDX").
func EnvPrefix() string { load(); return defaults.EnvPrefix }

// GoModule returns the Go module path.
func GoModule() string { load(); return defaults.GoModule }

// DocsURL points users at the extension's manual-integration docs.
func DocsURL() string { load(); return defaults.DocsURL }

// EnvVar returns a fully qualified env var name, e.g., EnvVar("HOME") → "SCAFFOLDX_HOME".
func EnvVar(suffix string) string {
	load()
	return defaults.EnvPrefix + "_" + strings.ToUpper(suffix)
}
