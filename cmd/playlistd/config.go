package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/cerberussg/playlistcore/internal/playlist"
)

// fileConfig is the on-disk shape of playlistd's configuration.
type fileConfig struct {
	Preparse PreparseConfig `toml:"preparse"`
	Log      LogConfig      `toml:"log"`
}

// PreparseConfig controls the preparser pool swapped in at startup
// (internal/preparser.Pool), mapping directly onto the playlist's
// constructor parameters.
type PreparseConfig struct {
	Mode          string `toml:"mode"`
	Threads       int    `toml:"threads"`
	TimeoutMillis int    `toml:"timeout_millis"`
}

// LogConfig controls the daemon process logger.
type LogConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
}

func defaultFileConfig() *fileConfig {
	return &fileConfig{
		Preparse: PreparseConfig{
			Mode:          "enabled",
			Threads:       4,
			TimeoutMillis: 5000,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// loadConfig loads configPath if it exists, or writes a default file there
// and returns the defaults. An empty configPath skips the file entirely and
// returns the defaults in memory (used by tests and single-shot runs).
func loadConfig(configPath string) (*fileConfig, error) {
	cfg := defaultFileConfig()
	if configPath == "" {
		return cfg, nil
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		if err := cfg.saveToFile(configPath); err != nil {
			return nil, fmt.Errorf("write default config: %w", err)
		}
		return cfg, nil
	}

	if _, err := toml.DecodeFile(configPath, cfg); err != nil {
		return nil, fmt.Errorf("parse config file %s: %w", configPath, err)
	}
	return cfg, nil
}

func (c *fileConfig) saveToFile(path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create config directory: %w", err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create config file: %w", err)
	}
	defer f.Close()
	return toml.NewEncoder(f).Encode(c)
}

func (c *PreparseConfig) preparseMode() playlist.PreparseMode {
	switch c.Mode {
	case "disabled":
		return playlist.PreparseDisabled
	case "recursive":
		return playlist.PreparseRecursive
	default:
		return playlist.PreparseEnabled
	}
}

func defaultConfigPath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".config", "playlistcore", "playlistd.toml")
}
