package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"

	"tpick/internal/ui/logic"
)

// Config represents the application configuration
type Config struct {
	Prefix      string `toml:"prefix"`        // prepended to the search text
	Suffix      string `toml:"suffix"`        // appended to the search text
	Prompt      string `toml:"prompt"`        // text in front of the search echo
	DoubleQQuit bool   `toml:"double_q_quit"` // two consecutive q's cancel
	AltScreen   bool   `toml:"alt_screen"`    // draw on the alternate screen
}

// ConfigService handles configuration management
type ConfigService interface {
	Load() (*Config, error)
	LoadFromPath(path string) (*Config, error)
	Path() string
}

// configService is the concrete implementation
type configService struct {
	filePath string
}

// NewConfigService creates a config service reading the default location
func NewConfigService() ConfigService {
	configDir, err := os.UserConfigDir()
	if err != nil {
		// Fallback to home directory
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}

	return &configService{
		filePath: filepath.Join(configDir, "tpick", "config.toml"),
	}
}

// NewConfigServiceForPath creates a config service reading an explicit file
func NewConfigServiceForPath(path string) ConfigService {
	return &configService{filePath: path}
}

// Path returns the file the service reads
func (cs *configService) Path() string {
	return cs.filePath
}

// Load loads the configuration, using defaults when the file does not exist
func (cs *configService) Load() (*Config, error) {
	cfg, err := cs.LoadFromPath(cs.filePath)
	if errors.Is(err, os.ErrNotExist) {
		return DefaultConfig(), nil
	}
	return cfg, err
}

// LoadFromPath loads configuration from a specific path. Keys missing from
// the file keep their default values.
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	return cfg, nil
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Prefix:      logic.DefaultAffix,
		Suffix:      logic.DefaultAffix,
		Prompt:      "pattern: ",
		DoubleQQuit: true,
		AltScreen:   true,
	}
}
