package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config defines server configuration.
type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Dataset DatasetConfig `yaml:"dataset"`
	Log     LogConfig     `yaml:"log"`
}

type ServerConfig struct {
	Name string `yaml:"name"`
}

// DatasetConfig points at an external record file. Empty means the built-in sample set.
type DatasetConfig struct {
	Path string `yaml:"path"`
}

type LogConfig struct {
	Level string `yaml:"level"`
	Path  string `yaml:"path"`
}

// Load reads configuration from an optional .env file, an optional YAML file,
// and environment variables, in that order of increasing precedence.
func Load() (Config, error) {
	return load(".env")
}

func load(envFile string) (Config, error) {
	cfg := Config{
		Server: ServerConfig{
			Name: "candidates",
		},
		Log: LogConfig{
			Level: "info",
		},
	}

	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", envFile, err)
		}
	}

	if path := os.Getenv("CANDIDATES_CONFIG_PATH"); path != "" {
		if err := loadFromFile(path, &cfg); err != nil {
			return Config{}, err
		}
	}

	if name := os.Getenv("CANDIDATES_SERVER_NAME"); name != "" {
		cfg.Server.Name = name
	}
	if path := os.Getenv("CANDIDATES_DATASET_PATH"); path != "" {
		cfg.Dataset.Path = path
	}
	if level := os.Getenv("CANDIDATES_LOG_LEVEL"); level != "" {
		cfg.Log.Level = level
	}
	if path := os.Getenv("CANDIDATES_LOG_PATH"); path != "" {
		cfg.Log.Path = path
	}

	cfg.Log.Level = strings.ToLower(strings.TrimSpace(cfg.Log.Level))
	switch cfg.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return Config{}, fmt.Errorf("invalid log level %q", cfg.Log.Level)
	}

	return cfg, nil
}

func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	return nil
}
