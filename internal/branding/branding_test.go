package branding

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEmbeddedValues(t *testing.T) {
	assert.Equal(t, "scaffoldx", CLIName())
	assert.Equal(t, "SCAFFOLDX", EnvPrefix())
	assert.Equal(t, ".scaffoldx", HomeDir())
	assert.NotEmpty(t, DocsURL())
}

func TestEnvVar(t *testing.T) {
	assert.Equal(t, "SCAFFOLDX_HOME", EnvVar("home"))
	assert.Equal(t, "SCAFFOLDX_GENERATOR_COMMAND", EnvVar("generator_command"))
}
