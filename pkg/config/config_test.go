package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// useTempConfigPath redirects the config path to a per-test file.
func useTempConfigPath(t *testing.T) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yaml")
	prev := getConfigPath
	getConfigPath = func() (string, error) { return path, nil }
	t.Cleanup(func() { getConfigPath = prev })
	return path
}

func TestLoadOrCreateConfig_CreatesDefaultFile(t *testing.T) { //nolint:paralleltest // replaces getConfigPath
	path := useTempConfigPath(t)

	config, err := LoadOrCreateConfig()
	require.NoError(t, err)
	assert.Empty(t, config.APIToken)
	assert.Empty(t, config.BaseURL)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
}

func TestLoadOrCreateConfig_ReadsExistingFile(t *testing.T) { //nolint:paralleltest // replaces getConfigPath
	path := useTempConfigPath(t)

	contents := "api_token: tok-123\nbase_url: https://api.example.com\n"
	require.NoError(t, os.WriteFile(path, []byte(contents), 0600))

	config, err := LoadOrCreateConfig()
	require.NoError(t, err)
	assert.Equal(t, "tok-123", config.APIToken)
	assert.Equal(t, "https://api.example.com", config.BaseURL)
}

func TestLoadOrCreateConfig_InvalidYAML(t *testing.T) { //nolint:paralleltest // replaces getConfigPath
	path := useTempConfigPath(t)

	require.NoError(t, os.WriteFile(path, []byte("{not yaml"), 0600))

	_, err := LoadOrCreateConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error parsing config file")
}

func TestUpdateConfig_RoundTrips(t *testing.T) { //nolint:paralleltest // replaces getConfigPath
	useTempConfigPath(t)

	err := UpdateConfig(func(c *Config) {
		c.APIToken = "tok-456"
	})
	require.NoError(t, err)

	config, err := LoadOrCreateConfig()
	require.NoError(t, err)
	assert.Equal(t, "tok-456", config.APIToken)

	// A second update must preserve unrelated fields.
	err = UpdateConfig(func(c *Config) {
		c.BaseURL = "https://api.example.com"
	})
	require.NoError(t, err)

	config, err = LoadOrCreateConfig()
	require.NoError(t, err)
	assert.Equal(t, "tok-456", config.APIToken)
	assert.Equal(t, "https://api.example.com", config.BaseURL)
}
