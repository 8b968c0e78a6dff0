package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/exp/slog"

	"notekeeper/internal/app/server/api"
	"notekeeper/internal/app/server/config"
	"notekeeper/internal/infrastructure/cache"
	"notekeeper/internal/infrastructure/payments"
	"notekeeper/internal/infrastructure/storage/objectstore"
	"notekeeper/internal/infrastructure/storage/postgres"
	"notekeeper/internal/utils/logger"
)

func main() {
	cfg := config.MustLoad()
	log := logger.New(cfg.Env)

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

	sessionCache, err := cache.NewSessionCache(cfg)
	if err != nil {
		log.Error("failed to init session cache", slog.String("error", err.Error()))
		os.Exit(1)
	}

	provider := payments.NewClient(cfg.Dodo.APIKey, cfg.Dodo.Environment, log)

	mux := api.New(cfg, storage, objects, sessionCache, provider, log)

	server := &http.Server{
		Addr:    cfg.Server.RunAddress,
		Handler: mux,
	}

	go func() {
		log.Info("server started", slog.String("address", cfg.Server.RunAddress))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server stopped", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	log.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error("shutdown failed", slog.String("error", err.Error()))
	}
}
