// Package config manages user-level settings stored at ~/.scaffoldx/config.yaml.
// It loads them through viper (file, SCAFFOLDX_* environment, defaults),
// validates the file against an embedded JSON Schema, and exposes the
// resolved values as a Settings struct.
package config
