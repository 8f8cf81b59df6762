package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"

	"newswatch/models"
)

const DefaultFetchTimeout = 10 * time.Second

// Config is the top-level configuration loaded once at process start and
// passed explicitly into the fetch/filter/snapshot calls.
type Config struct {
	Output       string          `toml:"output"`
	MaxItems     int             `toml:"max_items"`
	FetchTimeout Duration        `toml:"fetch_timeout"`
	Keywords     []string        `toml:"keywords"`
	Sources      []models.Source `toml:"sources"`
}

// Duration wraps time.Duration so TOML can decode "10s" style values.
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(text []byte) error {
	parsed, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = parsed
	return nil
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// Timeout returns the per-source fetch timeout, defaulting when unset.
func (c *Config) Timeout() time.Duration {
	if c.FetchTimeout.Duration <= 0 {
		return DefaultFetchTimeout
	}
	return c.FetchTimeout.Duration
}

func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	var config Config
	if err := toml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}

	if config.Output == "" {
		config.Output = "data/news.json"
	}
	for i, source := range config.Sources {
		if source.Type == "" {
			config.Sources[i].Type = models.SourceTypeRSS
		}
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

// Validate rejects configs that cannot produce a meaningful run.
func (c *Config) Validate() error {
	if c.MaxItems < 0 {
		return errors.New("max_items must not be negative")
	}
	for _, source := range c.Sources {
		if source.URL == "" {
			return errors.New("source with empty url in config")
		}
		switch source.Type {
		case models.SourceTypeRSS, models.SourceTypeHTML:
		default:
			return fmt.Errorf("source %s has unknown type %q", source.URL, source.Type)
		}
	}
	return nil
}

// WriteConfig encodes cfg as TOML at path. Used by the init command.
func WriteConfig(path string, cfg *Config) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		return fmt.Errorf("error creating config file: %w", err)
	}
	defer f.Close()

	if err := toml.NewEncoder(f).Encode(cfg); err != nil {
		return fmt.Errorf("error encoding config file: %w", err)
	}
	return nil
}
