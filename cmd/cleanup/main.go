package main

import (
	"context"
	"os"
	"time"

	"golang.org/x/exp/slog"

	"notekeeper/internal/app/server/config"
	"notekeeper/internal/infrastructure/storage/objectstore"
	"notekeeper/internal/infrastructure/storage/postgres"
	"notekeeper/internal/utils/logger"
)

const batchSize = 100

// Retries deletes of storage objects whose compensating removal failed during
// an upload. Meant to run periodically, e.g. from cron.
func main() {
	cfg := config.MustLoad()
	log := logger.New(cfg.Env).With("component", "cleanup")

	storage, err := postgres.New(cfg)
	if err != nil {
		log.Error("failed to init storage", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer storage.Close()

	objects, err := objectstore.New(cfg, log)
	if err != nil {
		log.Error("failed to init object storage", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	repo := postgres.NewMediaRepository(storage.Pool(), log)

	entries, err := repo.PendingCleanups(ctx, batchSize)
	if err != nil {
		log.Error("failed to list pending cleanups", slog.String("error", err.Error()))
		os.Exit(1)
	}

	removed := 0
	for _, entry := range entries {
		if err := objects.Remove(ctx, entry.ObjectPath); err != nil {
			log.Warn("object removal failed, will retry later",
				slog.String("path", entry.ObjectPath),
				slog.String("error", err.Error()),
			)
			continue
		}
		if err := repo.ResolveCleanup(ctx, entry.ID); err != nil {
			log.Error("failed to resolve cleanup entry",
				slog.Int64("id", entry.ID),
				slog.String("error", err.Error()),
			)
			continue
		}
		removed++
	}

	log.Info("cleanup finished", slog.Int("pending", len(entries)), slog.Int("removed", removed))
}
