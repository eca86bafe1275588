package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/skydata/bazaar-data/internal/api"
	"github.com/skydata/bazaar-data/internal/archive"
	"github.com/skydata/bazaar-data/internal/config"
	"github.com/skydata/bazaar-data/internal/database"
	"github.com/skydata/bazaar-data/internal/export"
	"github.com/skydata/bazaar-data/internal/store"
	"github.com/skydata/bazaar-data/internal/version"
)

func main() {
	configPath := flag.String("config", "configs/gatherer.local.yaml", "path to config file")
	exportOnly := flag.Bool("export-only", false, "skip the fetch and derive the CSV from the newest stored snapshot")
	flag.Parse()

	// Set up structured logging
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
	slog.SetDefault(logger)

	logger.Info("starting gatherer",
		"version", version.Version,
		"commit", version.Commit,
		"config", *configPath,
	)

	// Load configuration
	cfg, err := config.LoadAndValidate(*configPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger.Info("configuration loaded",
		"instance_id", cfg.Instance.ID,
		"api_url", cfg.API.BaseURL,
		"store_dir", cfg.Store.Dir,
		"archive_enabled", cfg.Archive.Enabled,
	)

	// Create context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle shutdown signals
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logger.Info("received shutdown signal", "signal", sig)
		cancel()
	}()

	st := store.New(cfg.Store.Dir)

	// Stage one: fetch the catalog and persist a snapshot.
	if !*exportOnly {
		if err := fetchAndPersist(ctx, cfg, st, logger); err != nil {
			logger.Error("fetch stage failed", "error", err)
			os.Exit(1)
		}
	}

	// Stage two: derive the CSV from the newest snapshot on disk.
	snap, path, err := st.LoadNewest()
	if err != nil {
		logger.Error("failed to load newest snapshot", "error", err)
		os.Exit(1)
	}

	if err := export.Write(cfg.Export.Path, snap); err != nil {
		logger.Error("failed to write csv", "error", err)
		os.Exit(1)
	}

	logger.Info("csv written",
		"path", cfg.Export.Path,
		"snapshot", path,
		"products", len(snap.Products),
	)
}

// fetchAndPersist runs the fetch→snapshot→archive leg of the pipeline.
func fetchAndPersist(ctx context.Context, cfg *config.GathererConfig, st *store.Store, logger *slog.Logger) error {
	client := api.NewClient(cfg.API.BaseURL,
		api.WithLogger(logger),
		api.WithTimeout(cfg.API.Timeout),
		api.WithAPIKey(cfg.API.APIKey),
		api.WithUserAgent(cfg.API.UserAgent),
	)

	snap, err := client.GetBazaar(ctx)
	if err != nil {
		return err
	}

	logger.Info("catalog fetched",
		"success", snap.Success,
		"last_updated", snap.LastUpdated,
		"products", len(snap.Products),
	)

	path, err := st.Write(snap, time.Now())
	if err != nil {
		return err
	}
	logger.Info("snapshot saved", "path", path)

	if !cfg.Archive.Enabled {
		return nil
	}

	logger.Info("connecting to archive database",
		"host", cfg.Archive.Database.Host,
		"port", cfg.Archive.Database.Port,
		"database", cfg.Archive.Database.Name,
	)

	pool, err := database.Connect(ctx, cfg.Archive.Database)
	if err != nil {
		return fmt.Errorf("connect archive database: %w", err)
	}
	defer pool.Close()

	metrics, err := archive.NewWriter(pool, logger).WriteSnapshot(ctx, snap)
	if err != nil {
		return fmt.Errorf("archive quick status: %w", err)
	}

	logger.Info("quick status archived",
		"inserts", metrics.Inserts,
		"conflicts", metrics.Conflicts,
	)

	return nil
}
