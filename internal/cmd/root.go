package cmd

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/strrl/socialgen/internal/ai"
	"github.com/strrl/socialgen/internal/config"
	"github.com/strrl/socialgen/internal/db"
	"github.com/strrl/socialgen/internal/logging"
	"github.com/strrl/socialgen/internal/pipeline"
	"github.com/strrl/socialgen/internal/songs"
	"github.com/strrl/socialgen/internal/tools"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "socialgen",
	Short: "Generate social media content with LLMs",
	Long: `socialgen generates Instagram and X content (bios, captions, hashtags,
threads, roasts and more) through OpenRouter, and serves the same tools over
an HTTP API.`,
	SilenceUsage: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.HiddenDefaultCmd = false
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to config file (default: ./socialgen.yaml if present)")
}

// env holds what every command builds from the loaded configuration.
type env struct {
	cfg      *config.Config
	log      *logrus.Logger
	registry *tools.Registry
}

func loadEnv() (*env, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	return &env{
		cfg:      cfg,
		log:      logging.New(cfg.Log),
		registry: tools.Default(),
	}, nil
}

func (e *env) client() (*ai.Client, error) {
	client, err := ai.NewClient(e.cfg.AI(), e.log)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize OpenRouter client: %w", err)
	}
	return client, nil
}

func (e *env) pipeline() (*pipeline.Service, error) {
	client, err := e.client()
	if err != nil {
		return nil, err
	}
	return pipeline.New(client, pipeline.Options{
		Models:   e.cfg.Models,
		Registry: e.registry,
		Logger:   e.log,
	}), nil
}

// songCache builds the trending-songs cache over the configured store. The
// returned func releases the store.
func (e *env) songCache() (*songs.Cache, func(), error) {
	client, err := e.client()
	if err != nil {
		return nil, nil, err
	}

	store, closeStore, err := openStore(e.cfg.Cache)
	if err != nil {
		return nil, nil, err
	}

	cache := songs.NewCache(client, store, songs.Options{
		Model:  e.cfg.Models.Resolve(ai.RoleSearch),
		Logger: e.log,
	})
	return cache, closeStore, nil
}

func openStore(cfg config.Cache) (songs.Store, func(), error) {
	var driver string
	switch cfg.Driver {
	case config.CacheMemory:
		return songs.NewMemoryStore(), func() {}, nil
	case config.CacheDuckDB:
		driver = db.DriverDuckDB
	case config.CacheSQLite:
		driver = db.DriverSQLite
	default:
		return nil, nil, fmt.Errorf("unknown cache driver %q", cfg.Driver)
	}

	conn, err := db.Open(driver, cfg.Path)
	if err != nil {
		return nil, nil, err
	}
	store, err := songs.NewSQLStore(conn)
	if err != nil {
		conn.Close()
		return nil, nil, err
	}
	return store, func() { conn.Close() }, nil
}
