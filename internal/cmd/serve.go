package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/spf13/cobra"
	"github.com/strrl/socialgen/internal/server"
)

// Shortly after midnight so the first visitor of the day gets a warm cache.
const defaultWarmSchedule = "5 0 * * *"

var (
	serveAddr         string
	serveWarmSchedule string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the generation tools over HTTP",
	Long: `Start the HTTP API. Tools are listed under /api/tools and run with
POST /api/tools/{id}/run, trending songs are served at /api/songs and
Prometheus metrics at /metrics.`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVarP(&serveAddr, "addr", "a", "", "Listen address (default from config, :8080)")
	serveCmd.Flags().StringVar(&serveWarmSchedule, "warm-schedule", defaultWarmSchedule, "Cron schedule for refreshing the song cache, empty to disable")
}

func runServe(cmd *cobra.Command, args []string) error {
	e, err := loadEnv()
	if err != nil {
		return err
	}
	if serveAddr != "" {
		e.cfg.Server.Addr = serveAddr
	}

	svc, err := e.pipeline()
	if err != nil {
		return err
	}
	cache, closeStore, err := e.songCache()
	if err != nil {
		return err
	}
	defer closeStore()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if serveWarmSchedule != "" {
		scheduler := cron.New()
		if _, err := scheduler.AddFunc(serveWarmSchedule, func() { cache.Warm(ctx) }); err != nil {
			return fmt.Errorf("invalid warm schedule: %w", err)
		}
		scheduler.Start()
		defer scheduler.Stop()
	}

	srv := &http.Server{
		Addr: e.cfg.Server.Addr,
		Handler: server.New(server.Options{
			Registry:  e.registry,
			Generator: svc,
			Songs:     cache,
			Logger:    e.log,
		}).Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		e.log.WithField("addr", srv.Addr).Info("server listening")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	e.log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
