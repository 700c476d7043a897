package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInstall_Flags(t *testing.T) {
	cmd := Install()

	require.NotNil(t, cmd)
	assert.Equal(t, "install", cmd.Use)

	for _, name := range []string{"dir", "port", "yes", "force", "no-launch"} {
		assert.NotNil(t, cmd.Flags().Lookup(name), "missing flag --%s", name)
	}
}

func TestInstall_FlagShorthands(t *testing.T) {
	cmd := Install()

	assert.Equal(t, "d", cmd.Flags().Lookup("dir").Shorthand)
	assert.Equal(t, "p", cmd.Flags().Lookup("port").Shorthand)
	assert.Equal(t, "y", cmd.Flags().Lookup("yes").Shorthand)
}

func TestInstall_FlagDefaults(t *testing.T) {
	cmd := Install()

	assert.Equal(t, "", cmd.Flags().Lookup("dir").DefValue)
	assert.Equal(t, "", cmd.Flags().Lookup("port").DefValue)
	assert.Equal(t, "false", cmd.Flags().Lookup("yes").DefValue)
	assert.Equal(t, "false", cmd.Flags().Lookup("force").DefValue)
	assert.Equal(t, "false", cmd.Flags().Lookup("no-launch").DefValue)
}
