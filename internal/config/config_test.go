package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/strrl/socialgen/internal/ai"
)

var envKeys = []string{
	"OPENROUTER_API_KEY", "OPENROUTER_BASE_URL", "SOCIALGEN_SITE_URL", "SOCIALGEN_SITE_NAME",
	"SOCIALGEN_CACHE_DRIVER", "SOCIALGEN_CACHE_PATH", "SOCIALGEN_ADDR",
	"SOCIALGEN_LOG_LEVEL", "SOCIALGEN_LOG_FORMAT",
}

// isolate runs the test in an empty directory with a clean environment.
func isolate(t *testing.T) string {
	t.Helper()
	for _, key := range envKeys {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
	return dir
}

func TestLoadDefaults(t *testing.T) {
	isolate(t)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.Equal(t, ai.DefaultModels(), cfg.Models)
	assert.Equal(t, CacheMemory, cfg.Cache.Driver)
	assert.Equal(t, 45*time.Second, cfg.AI().Timeout)
}

func TestLoadYAML(t *testing.T) {
	dir := isolate(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, DefaultFile), []byte(`
openrouter:
  api_key: from-file
  timeout: 10s
models:
  creative: some/creative-model
cache:
  driver: sqlite
  path: data/songs.db
log:
  level: debug
  format: json
`), 0o644))

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "from-file", cfg.OpenRouter.APIKey)
	assert.Equal(t, 10*time.Second, cfg.OpenRouter.Timeout)
	assert.Equal(t, "some/creative-model", cfg.Models.Creative)
	assert.Equal(t, ai.DefaultModels().Smart, cfg.Models.Smart)
	assert.Equal(t, CacheSQLite, cfg.Cache.Driver)
	assert.Equal(t, "data/songs.db", cfg.Cache.Path)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, ai.DefaultBaseURL, cfg.OpenRouter.BaseURL)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("openrouter:\n  api_key: from-file\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("SOCIALGEN_ADDR=:9999\nSOCIALGEN_CACHE_DRIVER=duckdb\n"), 0o644))
	t.Setenv("OPENROUTER_API_KEY", "from-env")
	t.Setenv("SOCIALGEN_CACHE_DRIVER", "memory")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.OpenRouter.APIKey)
	assert.Equal(t, ":9999", cfg.Server.Addr)
	assert.Equal(t, CacheMemory, cfg.Cache.Driver)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	isolate(t)

	_, err := Load("nope.yaml")
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	cases := map[string]func(*Config){
		"driver":  func(c *Config) { c.Cache.Driver = "redis" },
		"level":   func(c *Config) { c.Log.Level = "loud" },
		"format":  func(c *Config) { c.Log.Format = "xml" },
		"timeout": func(c *Config) { c.OpenRouter.Timeout = -time.Second },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			cfg := Default()
			mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
	assert.NoError(t, Default().Validate())
}
