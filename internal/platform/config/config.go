package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	DefaultModel   = "gemini-2.5-flash"
	DefaultTimeout = 30 * time.Second
)

type Config struct {
	Path    string        `yaml:"-"`
	AI      AIConfig      `yaml:"ai"`
	Log     LogConfig     `yaml:"log"`
	Catalog CatalogConfig `yaml:"catalog"`
}

type AIConfig struct {
	APIKey  string        `yaml:"api_key"`
	Model   string        `yaml:"model"`
	Timeout time.Duration `yaml:"timeout"`
	Offline bool          `yaml:"offline"`
}

type LogConfig struct {
	File  string `yaml:"file"`
	Level string `yaml:"level"`
}

type CatalogConfig struct {
	SeedPath string `yaml:"seed_path"`
}

// UseOffline reports whether career details must come from the local
// generator instead of the Gemini API.
func (c Config) UseOffline() bool {
	return c.AI.Offline || strings.TrimSpace(c.AI.APIKey) == ""
}

// New loads configuration from path, falling back to the per-user config file
// when path is empty. Environment variables override file values.
func New(path string) (Config, error) {
	return load(path, os.LookupEnv)
}

func load(path string, lookup func(string) (string, bool)) (Config, error) {
	cfg := defaults()

	explicit := path != ""
	if !explicit {
		path = defaultPath()
	}
	if path != "" {
		if err := readFile(path, &cfg); err != nil {
			if !explicit && errors.Is(err, os.ErrNotExist) {
				path = ""
			} else {
				return Config{}, err
			}
		}
	}
	cfg.Path = path

	applyEnv(&cfg, lookup)

	if cfg.AI.Model == "" {
		cfg.AI.Model = DefaultModel
	}
	if cfg.AI.Timeout <= 0 {
		cfg.AI.Timeout = DefaultTimeout
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	return cfg, nil
}

func defaults() Config {
	return Config{
		AI:  AIConfig{Model: DefaultModel, Timeout: DefaultTimeout},
		Log: LogConfig{Level: "info"},
	}
}

func defaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "careernav", "config.yaml")
}

func readFile(path string, cfg *Config) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(raw, cfg); err != nil {
		return fmt.Errorf("decode config %s: %w", path, err)
	}
	return nil
}

// API key lookup order mirrors the names people already export for Gemini.
var apiKeyEnv = []string{"CAREERNAV_API_KEY", "GEMINI_API_KEY", "API_KEY"}

func applyEnv(cfg *Config, lookup func(string) (string, bool)) {
	for _, name := range apiKeyEnv {
		if v, ok := lookup(name); ok && v != "" {
			cfg.AI.APIKey = v
			break
		}
	}
	if v, ok := lookup("CAREERNAV_MODEL"); ok && v != "" {
		cfg.AI.Model = v
	}
	if v, ok := lookup("CAREERNAV_LOG_FILE"); ok && v != "" {
		cfg.Log.File = v
	}
	if v, ok := lookup("CAREERNAV_OFFLINE"); ok {
		switch strings.ToLower(v) {
		case "1", "true", "yes":
			cfg.AI.Offline = true
		}
	}
}
