// Package internal provides the application model, rendering, and
// configuration for the albumview TUI.
//
// Configuration lives in an INI file under the user's config directory:
//
//	[server]  url        base URL of the album server
//	          player     external player binary for video playback
//	[ui]      breakpoint column count below which the compact layout is used
//	[session] token      the persisted bearer token, present while logged in
//
// The [session] token key is the single piece of durable client state: it is
// read once at startup, written on successful login, and removed on logout.
package internal

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/ini.v1"

	"albumview/internal/layout"
)

// tokenKey is the fixed key under which the bearer token persists across
// runs.
const tokenKey = "token"

// Config is the loaded application configuration plus the path it came
// from, so token updates can be written back to the same file.
type Config struct {
	ServerURL    string
	Breakpoint   int
	PlayerBinary string
	Token        string

	path string
}

// DefaultConfigPath returns the config file location, creating the
// directory if needed. Uses the XDG layout: ~/.config/albumview/config.ini.
func DefaultConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolving home directory: %w", err)
	}
	configDir := filepath.Join(homeDir, ".config", "albumview")
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return "", fmt.Errorf("creating config directory: %w", err)
	}
	return filepath.Join(configDir, "config.ini"), nil
}

// LoadConfig loads the configuration from the default location, writing a
// starter file on first run.
func LoadConfig() (*Config, error) {
	path, err := DefaultConfigPath()
	if err != nil {
		return nil, err
	}
	return LoadConfigFrom(path)
}

// LoadConfigFrom loads the configuration from an explicit file path. A
// missing file is created with defaults so the user has something to edit.
func LoadConfigFrom(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := writeDefaultConfig(path); err != nil {
			return nil, err
		}
	}

	file, err := ini.Load(path)
	if err != nil {
		return nil, fmt.Errorf("loading config %s: %w", path, err)
	}

	cfg := &Config{
		ServerURL:    file.Section("server").Key("url").String(),
		PlayerBinary: file.Section("server").Key("player").String(),
		Breakpoint:   file.Section("ui").Key("breakpoint").MustInt(layout.DefaultBreakpoint),
		Token:        file.Section("session").Key(tokenKey).String(),
		path:         path,
	}
	return cfg, nil
}

// Path returns the file this configuration was loaded from.
func (c *Config) Path() string { return c.path }

// SaveToken persists the bearer token under the fixed session key. An empty
// token removes the key entirely.
func (c *Config) SaveToken(token string) error {
	file, err := ini.Load(c.path)
	if err != nil {
		// The file may have been deleted underneath us; start fresh.
		file = ini.Empty()
		file.Section("server").Key("url").SetValue(c.ServerURL)
	}
	if token == "" {
		file.Section("session").DeleteKey(tokenKey)
	} else {
		file.Section("session").Key(tokenKey).SetValue(token)
	}
	if err := file.SaveTo(c.path); err != nil {
		return fmt.Errorf("saving config %s: %w", c.path, err)
	}
	c.Token = token
	return nil
}

// ClearToken removes the persisted token. Called on logout.
func (c *Config) ClearToken() error {
	return c.SaveToken("")
}

func writeDefaultConfig(path string) error {
	file := ini.Empty()
	file.Section("server").Key("url").SetValue("http://localhost:8080")
	file.Section("server").Key("player").SetValue("")
	file.Section("ui").Key("breakpoint").SetValue(fmt.Sprintf("%d", layout.DefaultBreakpoint))
	if err := file.SaveTo(path); err != nil {
		return fmt.Errorf("writing default config %s: %w", path, err)
	}
	return nil
}
