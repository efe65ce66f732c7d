package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Prefix struct {
		Style string `yaml:"style"` // "line" or "context"
	} `yaml:"prefix"`

	Languages map[string]string `yaml:"languages"` // extension -> language id

	Embedded struct {
		Open       string   `yaml:"open"`
		Close      string   `yaml:"close"`
		Extensions []string `yaml:"extensions"` // files whose code lives in an embedded region
	} `yaml:"embedded"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	var cfg Config
	cfg.Prefix.Style = "line"
	cfg.Embedded.Open = "<script"
	cfg.Embedded.Close = "</script>"
	cfg.Embedded.Extensions = []string{".vue"}
	return &cfg
}

func LoadConfig(path string) (*Config, error) {
	// 1. Load .env if exists
	_ = godotenv.Load()

	// 2. Load YAML config over the defaults
	file, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg := Default()
	if err := yaml.Unmarshal(file, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	// 3. Override with Environment Variables if present
	cfg.ApplyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ApplyEnv overrides fields from DEBUGLOG_* environment variables.
func (c *Config) ApplyEnv() {
	if style := os.Getenv("DEBUGLOG_PREFIX_STYLE"); style != "" {
		c.Prefix.Style = style
	}
	if open := os.Getenv("DEBUGLOG_EMBEDDED_OPEN"); open != "" {
		c.Embedded.Open = open
	}
	if closeMarker := os.Getenv("DEBUGLOG_EMBEDDED_CLOSE"); closeMarker != "" {
		c.Embedded.Close = closeMarker
	}
}

func (c *Config) Validate() error {
	switch c.Prefix.Style {
	case "line", "context":
	default:
		return fmt.Errorf("unknown prefix style %q (want line or context)", c.Prefix.Style)
	}
	if c.Embedded.Open == "" || c.Embedded.Close == "" {
		return fmt.Errorf("embedded region markers must not be empty")
	}
	return nil
}
