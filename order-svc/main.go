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
	httpapi "foodcart/order-svc/internal/api/http"
	"foodcart/order-svc/internal/service"
	"foodcart/order-svc/internal/storage"
)

func main() {
	cfg := config.Load()
	config.InitLogger(cfg.LogLevel)

	db := config.MustInitPostgres(cfg)
	defer db.Close()

	repo := storage.NewPostgresRepository(db)
	if err := repo.EnsureSchema(context.Background()); err != nil {
		slog.Error("failed to ensure schema", "error", err)
		os.Exit(1)
	}

	rdb := config.MustInitRedis(cfg)
	defer rdb.Close()

	writer := config.NewKafkaWriter(cfg)
	defer writer.Close()

	validator := service.NewValidator(repo, service.NewPhoneNormalizer(cfg.PhoneRegion))
	catalogSvc := service.NewCatalogService(
		repo,
		storage.NewRedisCatalogCache(rdb, cfg.CatalogCacheTTL),
		service.MediaURLResolver{BaseURL: cfg.MediaURL},
	)
	orderSvc := service.NewOrderService(validator, repo, storage.NewKafkaPublisher(writer), service.DefaultQRGenerator{})
	querySvc := service.NewQueryService(repo, service.NewMatcher(repo, repo))

	server := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           httpapi.NewRouter(httpapi.NewHandler(catalogSvc, orderSvc, querySvc)),
		ReadHeaderTimeout: 5 * time.Second,
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		slog.Info("order service starting", "addr", cfg.HTTPAddr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server failed", "error", err)
			os.Exit(1)
		}
	}()

	<-stop
	slog.Info("shutting down order service")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		slog.Error("server shutdown failed", "error", err)
	}
}
