package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"foodcart/config"
	httpapi "foodcart/demand-svc/internal/api/http"
	"foodcart/demand-svc/internal/service"
	"foodcart/demand-svc/internal/storage"
)

func main() {
	cfg := config.Load()
	config.InitLogger(cfg.LogLevel)

	rdb := config.MustInitRedis(cfg)
	defer rdb.Close()

	reader := config.NewKafkaReader(cfg, "demand-svc")
	defer reader.Close()

	store := storage.NewStore(rdb)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	consumerDone := make(chan struct{})
	go func() {
		service.NewConsumer(reader, store).Start(ctx)
		close(consumerDone)
	}()

	server := &http.Server{
		Addr:              cfg.DemandHTTPAddr,
		Handler:           httpapi.NewRouter(httpapi.NewHandler(service.NewLeaderboard(store))),
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		slog.Info("demand service starting", "addr", cfg.DemandHTTPAddr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server failed", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	slog.Info("shutting down demand service")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("server shutdown failed", "error", err)
	}
	<-consumerDone
}
