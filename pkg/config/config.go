// Package config contains the definition of the application config structure
// and logic required to load and update it.
package config

import (
	"fmt"
	"os"
	"sync"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"
)

// Config represents the configuration of the application.
type Config struct {
	// APIToken is the T.LY API token. Flag and environment values take
	// precedence over this.
	APIToken string `yaml:"api_token,omitempty"`

	// BaseURL overrides the default API base URL.
	BaseURL string `yaml:"base_url,omitempty"`

	// CACertificatePath points at a CA bundle for TLS verification.
	CACertificatePath string `yaml:"ca_certificate_path,omitempty"`
}

// defaultPathGenerator generates the default config path using xdg
var defaultPathGenerator = func() (string, error) {
	return xdg.ConfigFile("tly/config.yaml")
}

// getConfigPath is the current path generator, can be replaced in tests
var getConfigPath = defaultPathGenerator

var lock sync.Mutex

// LoadOrCreateConfig fetches the application configuration.
// If it does not already exist - it will create a new config file with default values.
func LoadOrCreateConfig() (*Config, error) {
	var config Config

	configPath, err := getConfigPath()
	if err != nil {
		return nil, fmt.Errorf("unable to fetch config path: %w", err)
	}

	// Check to see if the config file already exists.
	configBytes, err := os.ReadFile(configPath) // #nosec G304 - config path comes from xdg
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}

		// The config file does not exist, create a new one with defaults.
		config = Config{}
		if err := config.save(); err != nil {
			return nil, err
		}
		return &config, nil
	}

	if err := yaml.Unmarshal(configBytes, &config); err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}

	return &config, nil
}

// Save serializes the config struct and writes it to disk.
func (c *Config) save() error {
	configPath, err := getConfigPath()
	if err != nil {
		return fmt.Errorf("unable to fetch config path: %w", err)
	}

	configBytes, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("error serializing config file: %w", err)
	}

	// The file may hold an API token, keep it private to the user.
	if err := os.WriteFile(configPath, configBytes, 0600); err != nil {
		return fmt.Errorf("error writing config file: %w", err)
	}
	return nil
}

// UpdateConfig loads the config, applies changes, and saves it back.
func UpdateConfig(updateFn func(*Config)) error {
	// Serialize concurrent updates within the process.
	lock.Lock()
	defer lock.Unlock()

	config, err := LoadOrCreateConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	updateFn(config)

	if err := config.save(); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}

	return nil
}
