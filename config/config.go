// ABOUTME: Configuration for rolodex: snapshot path, web port, theme, categories
// ABOUTME: Read from an XDG config.yaml, then .env and ROLODEX_* environment overrides
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/adrg/xdg"
	"github.com/harperreed/rolodex/models"
	"github.com/harperreed/rolodex/snapshot"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	AppName        = "rolodex"
	ConfigFileName = "config.yaml"
	DefaultPort    = 8080
	DefaultTheme   = "light"

	EnvFile  = "ROLODEX_FILE"
	EnvPort  = "ROLODEX_PORT"
	EnvTheme = "ROLODEX_THEME"
	EnvWatch = "ROLODEX_WATCH"
)

type Config struct {
	// File is the snapshot every surface imports on start and exports on change.
	File       string   `yaml:"file,omitempty"`
	Port       int      `yaml:"port,omitempty"`
	Theme      string   `yaml:"theme,omitempty"`
	Categories []string `yaml:"categories,omitempty"`
	// Watch reloads the snapshot when another process rewrites it.
	Watch bool `yaml:"watch,omitempty"`
}

func DefaultConfig() Config {
	return Config{
		File:       DefaultSnapshotPath(),
		Port:       DefaultPort,
		Theme:      DefaultTheme,
		Categories: models.DefaultCategories(),
	}
}

// DefaultPath returns $XDG_CONFIG_HOME/rolodex/config.yaml.
func DefaultPath() string {
	return filepath.Join(xdg.ConfigHome, AppName, ConfigFileName)
}

// DefaultSnapshotPath returns $XDG_DATA_HOME/rolodex/contacts.json.
func DefaultSnapshotPath() string {
	return filepath.Join(xdg.DataHome, AppName, snapshot.DefaultFileName)
}

// Load reads the config at path (DefaultPath when empty). A missing file
// yields defaults. Values from a .env in the working directory and then the
// process environment override the file.
func Load(path string) (Config, error) {
	cfg, err := ReadFile(path)
	if err != nil {
		return Config{}, err
	}

	dotenv, err := godotenv.Read()
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("failed to read .env: %w", err)
	}
	lookup := func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok {
			return v, true
		}
		v, ok := dotenv[key]
		return v, ok
	}

	if err := cfg.ApplyEnv(lookup); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// ReadFile reads only the YAML file, filling unset fields with defaults.
func ReadFile(path string) (Config, error) {
	if path == "" {
		path = DefaultPath()
	}

	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("failed to read config: %w", err)
	}

	var file Config
	if err := yaml.Unmarshal(data, &file); err != nil {
		return Config{}, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	if file.File != "" {
		cfg.File = expandHome(file.File)
	}
	if file.Port != 0 {
		cfg.Port = file.Port
	}
	if file.Theme != "" {
		cfg.Theme = file.Theme
	}
	if file.Categories != nil {
		cfg.Categories = file.Categories
	}
	cfg.Watch = file.Watch
	return cfg, nil
}

// ApplyEnv overrides fields from ROLODEX_* variables found by lookup.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvFile); ok && v != "" {
		c.File = expandHome(v)
	}
	if v, ok := lookup(EnvPort); ok && v != "" {
		port, err := strconv.Atoi(v)
		if err != nil || port <= 0 || port > 65535 {
			return fmt.Errorf("invalid %s %q", EnvPort, v)
		}
		c.Port = port
	}
	if v, ok := lookup(EnvTheme); ok && v != "" {
		c.Theme = strings.ToLower(v)
	}
	if v, ok := lookup(EnvWatch); ok && v != "" {
		watch, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid %s %q: %w", EnvWatch, v, err)
		}
		c.Watch = watch
	}
	return nil
}

// Save writes the config as YAML, creating the directory if needed.
func (c Config) Save(path string) error {
	if path == "" {
		path = DefaultPath()
	}
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// Addr returns the listen address for the web server.
func (c Config) Addr() string {
	return ":" + strconv.Itoa(c.Port)
}

func expandHome(path string) string {
	rest, ok := strings.CutPrefix(path, "~/")
	if !ok {
		return path
	}
	return filepath.Join(xdg.Home, rest)
}
