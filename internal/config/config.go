package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/fr4nk3nst1ner/offersleuth/internal/models"
)

const (
	DefaultURL       = "https://justjoin.it/api/offers"
	DefaultCachePath = "offers.json"
	fileName         = "offersleuth.yaml"
)

// Config represents the application configuration
type Config struct {
	Source  SourceConfig  `yaml:"source"`
	Cache   CacheConfig   `yaml:"cache"`
	Export  ExportConfig  `yaml:"export"`
	Display DisplayConfig `yaml:"display"`
}

type SourceConfig struct {
	URL     string        `yaml:"url"`
	Proxy   string        `yaml:"proxy"` // Prefer OFFERSLEUTH_PROXY env var
	Timeout time.Duration `yaml:"timeout"`
}

type CacheConfig struct {
	Path   string        `yaml:"path"`
	MaxAge time.Duration `yaml:"max_age"` // 0 keeps the cache until --refresh
}

type ExportConfig struct {
	Shuffle bool  `yaml:"shuffle"`
	Seed    int64 `yaml:"seed"` // 0 seeds from the clock
}

type DisplayConfig struct {
	Metric string `yaml:"metric"`
	Width  int    `yaml:"width"`
}

// Default returns the configuration used when no file is found
func Default() Config {
	return Config{
		Source: SourceConfig{
			URL:     DefaultURL,
			Timeout: 30 * time.Second,
		},
		Cache: CacheConfig{
			Path: DefaultCachePath,
		},
		Export: ExportConfig{
			Shuffle: true,
		},
		Display: DisplayConfig{
			Metric: string(models.MetricAvg2),
			Width:  60,
		},
	}
}

// Load reads the configuration from configPath, or from the first file found
// in the default locations. A missing file yields the defaults. Environment
// variables override file values.
func Load(configPath string) (Config, error) {
	cfg := Default()

	path := configPath
	if path == "" {
		path = findConfigPath()
	}

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return cfg, errors.Wrapf(err, "failed to parse config file: %s", path)
			}
		case os.IsNotExist(err) && configPath == "":
			// defaults
		default:
			return cfg, errors.Wrapf(err, "failed to read config file: %s", path)
		}
	}

	if v := os.Getenv("OFFERSLEUTH_URL"); v != "" {
		cfg.Source.URL = v
	}
	if v := os.Getenv("OFFERSLEUTH_CACHE"); v != "" {
		cfg.Cache.Path = v
	}
	if v := os.Getenv("OFFERSLEUTH_PROXY"); v != "" {
		cfg.Source.Proxy = v
	}

	if err := cfg.Validate(); err != nil {
		return cfg, errors.Wrap(err, "config validation failed")
	}
	return cfg, nil
}

// Validate checks that all required configuration is present
func (c *Config) Validate() error {
	if c.Source.URL == "" {
		return errors.New("source.url is required")
	}
	if c.Cache.Path == "" {
		return errors.New("cache.path is required")
	}
	if c.Source.Timeout < 0 {
		return errors.New("source.timeout must not be negative")
	}
	if c.Cache.MaxAge < 0 {
		return errors.New("cache.max_age must not be negative")
	}
	if _, err := models.ParseMetric(c.Display.Metric); err != nil {
		return errors.Wrap(err, "display.metric")
	}
	if c.Display.Width < 20 {
		return errors.Errorf("display.width must be at least 20, got %d", c.Display.Width)
	}
	return nil
}

func findConfigPath() string {
	paths := []string{fileName}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".offersleuth", "config.yaml"))
	}

	for _, p := range paths {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}
