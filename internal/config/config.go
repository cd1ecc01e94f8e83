package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/scaffoldx/scaffoldx-django/internal/branding"
	"github.com/spf13/viper"
)

const (
	fileName = "config"
	fileType = "yaml"
)

// Recognized configuration keys.
const (
	KeyGeneratorCommand     = "generator.command"
	KeyGeneratorRequirement = "generator.requirement"
	KeyLogLevel             = "log.level"
	KeyLogFormat            = "log.format"
)

// Settings is the resolved view of the configuration.
type Settings struct {
	GeneratorCommand     string // external project generator, e.g. "django-admin"
	GeneratorRequirement string // runtime requirement added to generated projects
	LogLevel             string
	LogFormat            string
}

// Dir returns the path to the config directory (~/.scaffoldx/).
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", branding.HomeDir())
	}
	return filepath.Join(home, branding.HomeDir())
}

// FilePath returns the full path to the config file (~/.scaffoldx/config.yaml).
// SCAFFOLDX_CONFIG overrides the location.
func FilePath() string {
	if p := os.Getenv(branding.EnvVar("CONFIG")); p != "" {
		return p
	}
	return filepath.Join(Dir(), fileName+"."+fileType)
}

// EnsureDir creates the config directory if it does not exist.
func EnsureDir() error {
	dir := filepath.Dir(FilePath())
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory %s: %w", dir, err)
	}
	return nil
}

func setDefaults() {
	viper.SetDefault(KeyGeneratorCommand, "django-admin")
	viper.SetDefault(KeyGeneratorRequirement, "django")
	viper.SetDefault(KeyLogLevel, "info")
	viper.SetDefault(KeyLogFormat, "text")
}

// Load initializes viper to read from the config file and environment.
// A missing file is not an error; a file that fails schema validation is.
func Load() error {
	setDefaults()
	viper.SetConfigFile(FilePath())
	viper.SetConfigType(fileType)
	viper.SetEnvPrefix(branding.EnvPrefix())
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	path := FilePath()
	if _, err := os.Stat(path); err != nil {
		return nil
	}

	result, err := ValidateFile(path)
	if err != nil {
		return err
	}
	if !result.Valid {
		return &InvalidError{Path: path, Issues: result.Issues}
	}

	if err := viper.ReadInConfig(); err != nil {
		return fmt.Errorf("reading config file %s: %w", path, err)
	}
	return nil
}

// Current returns the resolved settings. Call Load first.
func Current() Settings {
	setDefaults()
	return Settings{
		GeneratorCommand:     viper.GetString(KeyGeneratorCommand),
		GeneratorRequirement: viper.GetString(KeyGeneratorRequirement),
		LogLevel:             viper.GetString(KeyLogLevel),
		LogFormat:            viper.GetString(KeyLogFormat),
	}
}

// Get returns a config value by key. Returns empty string if not set.
func Get(key string) string {
	return viper.GetString(key)
}

// Set writes a config key-value pair and saves the config file.
func Set(key, value string) error {
	if !IsKnownKey(key) {
		return fmt.Errorf("unknown config key %q", key)
	}
	if err := EnsureDir(); err != nil {
		return err
	}

	viper.Set(key, value)

	configFile := FilePath()

	// Create the file if it doesn't exist.
	if _, err := os.Stat(configFile); os.IsNotExist(err) {
		f, err := os.Create(configFile)
		if err != nil {
			return fmt.Errorf("creating config file %s: %w", configFile, err)
		}
		f.Close()
	}

	if err := viper.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

// IsKnownKey reports whether key is one of the recognized settings.
func IsKnownKey(key string) bool {
	switch key {
	case KeyGeneratorCommand, KeyGeneratorRequirement, KeyLogLevel, KeyLogFormat:
		return true
	}
	return false
}
