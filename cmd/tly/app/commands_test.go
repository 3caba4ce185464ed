package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRootCmd(t *testing.T) { //nolint:paralleltest // mutates the package-level root command
	cmd := NewRootCmd()
	require.NotNil(t, cmd)
	assert.Equal(t, "tly", cmd.Use)

	for _, flag := range []string{"token", "token-file", "base-url", "timeout", "debug"} {
		assert.NotNil(t, cmd.PersistentFlags().Lookup(flag), "missing persistent flag %s", flag)
	}

	want := []string{
		"shorten", "expand", "call", "qr", "link",
		"tag", "pixel", "utm", "onelink", "config", "version",
	}
	names := make(map[string]bool)
	for _, sub := range cmd.Commands() {
		names[sub.Name()] = true
	}
	for _, name := range want {
		assert.True(t, names[name], "missing subcommand %s", name)
	}
}
