// ABOUTME: IronTrack configuration with storage backend selection.
// ABOUTME: Handles settings, paths, and the backend factory function.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/harperreed/irontrack/internal/kv"
)

// Config stores irontrack tool configuration.
type Config struct {
	// Backend selects the storage backend: "charm" (default, cloud-synced),
	// "badger" (local only), or "sqlite" (single file).
	Backend string `json:"backend,omitempty"`

	// DataDir is the root directory for local data storage. Badger puts its
	// database here; sqlite puts irontrack.db here. Supports ~ expansion.
	// Defaults to ~/.local/share/irontrack. The charm backend ignores this
	// and stores under the charm data directory.
	DataDir string `json:"data_dir,omitempty"`

	// GeminiAPIKey is the key for AI suggestions. The GEMINI_API_KEY
	// environment variable takes precedence.
	GeminiAPIKey string `json:"gemini_api_key,omitempty"`
}

// GetBackend returns the configured backend, defaulting to "charm".
func (c *Config) GetBackend() string {
	if c.Backend == "" {
		return "charm"
	}
	return c.Backend
}

// GetDataDir returns the configured data directory with ~ expanded,
// defaulting to the standard XDG data directory.
func (c *Config) GetDataDir() string {
	if c.DataDir == "" {
		return DataDir()
	}
	return ExpandPath(c.DataDir)
}

// GetGeminiAPIKey returns the AI key, preferring the environment.
func (c *Config) GetGeminiAPIKey() string {
	if key := os.Getenv("GEMINI_API_KEY"); key != "" {
		return key
	}
	return c.GeminiAPIKey
}

// DataDir returns the default data directory following XDG spec.
func DataDir() string {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, _ := os.UserHomeDir()
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "irontrack")
}

// ExpandPath expands a leading ~ to the user's home directory.
func ExpandPath(path string) string {
	if path == "" {
		return ""
	}
	if path == "~" {
		home, _ := os.UserHomeDir()
		return home
	}
	if strings.HasPrefix(path, "~/") {
		home, _ := os.UserHomeDir()
		return filepath.Join(home, path[2:])
	}
	return path
}

// OpenBackend creates a kv.Backend based on the configured backend.
func (c *Config) OpenBackend() (kv.Backend, error) {
	switch c.GetBackend() {
	case "charm":
		return kv.OpenCharm()
	case "badger":
		return kv.OpenBadger(filepath.Join(c.GetDataDir(), "badger"))
	case "sqlite":
		return kv.OpenSQLite(filepath.Join(c.GetDataDir(), "irontrack.db"))
	default:
		return nil, fmt.Errorf("unknown backend: %q", c.Backend)
	}
}

// GetConfigPath returns the config file path.
func GetConfigPath() string {
	configDir := os.Getenv("XDG_CONFIG_HOME")
	if configDir == "" {
		homeDir, _ := os.UserHomeDir()
		configDir = filepath.Join(homeDir, ".config")
	}
	return filepath.Join(configDir, "irontrack", "config.json")
}

// Load reads config from disk.
func Load() (*Config, error) {
	path := GetConfigPath()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, err
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Save writes config to disk.
func (c *Config) Save() error {
	path := GetConfigPath()
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0600)
}
