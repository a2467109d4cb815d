// Package config resolves runtime settings for the Memory Vault CLI.
//
// Sources are applied in order, later ones winning: built-in defaults,
// the MEMORYVAULT_HOME environment variable, a JSON config file (given
// via -c/-config), then command-line flags.
package config

import (
	"os"
	"path/filepath"
	"time"
)

// Backend names a storage implementation.
type Backend string

const (
	BackendFile   Backend = "file"
	BackendSQLite Backend = "sqlite"
	BackendMemory Backend = "memory"
)

// Config holds runtime settings for the Memory Vault CLI.
//
// Fields:
//   - DataDir: root directory for the vault's persisted state.
//   - Backend: storage backend, one of file, sqlite or memory.
//   - MediaDirName: subdirectory of DataDir holding attached media.
//   - WatchDebounce: quiet period before the watch command re-renders.
type Config struct {
	DataDir       string
	Backend       Backend
	MediaDirName  string
	WatchDebounce time.Duration
}

// LoadDefaults populates c with sensible defaults. The data directory
// honors MEMORYVAULT_HOME and falls back to ~/.memoryvault.
func (c *Config) LoadDefaults() {
	c.DataDir = defaultDataDir()
	c.Backend = BackendFile
	c.MediaDirName = "media"
	c.WatchDebounce = 300 * time.Millisecond
}

func defaultDataDir() string {
	if dir := os.Getenv("MEMORYVAULT_HOME"); dir != "" {
		return dir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		// Last resort: relative to the working directory.
		return ".memoryvault"
	}
	return filepath.Join(home, ".memoryvault")
}

// MediaDir returns the resolved media directory.
func (c *Config) MediaDir() string {
	return filepath.Join(c.DataDir, c.MediaDirName)
}

// Valid reports whether the backend name is known.
func (b Backend) Valid() bool {
	return b == BackendFile || b == BackendSQLite || b == BackendMemory
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from JSON (if present) and command-line flags (if present). Later
// sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
