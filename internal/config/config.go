package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/strrl/socialgen/internal/ai"
	"gopkg.in/yaml.v3"
)

// DefaultFile is read when no --config path is given and it exists.
const DefaultFile = "socialgen.yaml"

const (
	CacheMemory = "memory"
	CacheDuckDB = "duckdb"
	CacheSQLite = "sqlite"
)

type Config struct {
	OpenRouter OpenRouter `yaml:"openrouter"`
	Models     ai.Models  `yaml:"models"`
	Cache      Cache      `yaml:"cache"`
	Server     Server     `yaml:"server"`
	Log        Log        `yaml:"log"`
}

type OpenRouter struct {
	APIKey   string        `yaml:"api_key"`
	BaseURL  string        `yaml:"base_url"`
	SiteURL  string        `yaml:"site_url"`
	SiteName string        `yaml:"site_name"`
	Timeout  time.Duration `yaml:"timeout"`
}

type Cache struct {
	Driver string `yaml:"driver"`
	Path   string `yaml:"path"`
}

type Server struct {
	Addr string `yaml:"addr"`
}

type Log struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

func Default() *Config {
	return &Config{
		OpenRouter: OpenRouter{
			BaseURL:  ai.DefaultBaseURL,
			SiteURL:  ai.DefaultSiteURL,
			SiteName: ai.DefaultSiteName,
			Timeout:  ai.DefaultTimeout,
		},
		Models: ai.DefaultModels(),
		Cache:  Cache{Driver: CacheMemory},
		Server: Server{Addr: ":8080"},
		Log:    Log{Level: "info", Format: "text"},
	}
}

// Load layers defaults, the YAML file at path, .env and the process
// environment, in that order. An empty path falls back to DefaultFile when it
// exists.
func Load(path string) (*Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = DefaultFile
	}
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	case explicit || !errors.Is(err, os.ErrNotExist):
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	// Existing environment variables win over .env entries.
	_ = godotenv.Load()

	cfg.applyEnv(os.LookupEnv)
	return cfg, cfg.Validate()
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) {
	set := func(key string, dst *string) {
		if v, ok := lookup(key); ok && v != "" {
			*dst = v
		}
	}
	set("OPENROUTER_API_KEY", &c.OpenRouter.APIKey)
	set("OPENROUTER_BASE_URL", &c.OpenRouter.BaseURL)
	set("SOCIALGEN_SITE_URL", &c.OpenRouter.SiteURL)
	set("SOCIALGEN_SITE_NAME", &c.OpenRouter.SiteName)
	set("SOCIALGEN_CACHE_DRIVER", &c.Cache.Driver)
	set("SOCIALGEN_CACHE_PATH", &c.Cache.Path)
	set("SOCIALGEN_ADDR", &c.Server.Addr)
	set("SOCIALGEN_LOG_LEVEL", &c.Log.Level)
	set("SOCIALGEN_LOG_FORMAT", &c.Log.Format)
}

func (c *Config) Validate() error {
	switch c.Cache.Driver {
	case CacheMemory, CacheDuckDB, CacheSQLite:
	default:
		return fmt.Errorf("unknown cache driver %q", c.Cache.Driver)
	}
	if _, err := logrus.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}
	switch strings.ToLower(c.Log.Format) {
	case "", "text", "json":
	default:
		return fmt.Errorf("unknown log format %q", c.Log.Format)
	}
	if c.OpenRouter.Timeout < 0 {
		return fmt.Errorf("openrouter timeout must not be negative")
	}
	return nil
}

// AI returns the completion client settings.
func (c *Config) AI() ai.Config {
	return ai.Config{
		APIKey:   c.OpenRouter.APIKey,
		BaseURL:  c.OpenRouter.BaseURL,
		SiteURL:  c.OpenRouter.SiteURL,
		SiteName: c.OpenRouter.SiteName,
		Timeout:  c.OpenRouter.Timeout,
	}
}
