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
	"foodcart/gateway/internal/gateway"

	"github.com/rs/cors"
)

func main() {
	cfg := config.Load()
	config.InitLogger(cfg.LogLevel)

	gw := gateway.NewGateway(gateway.Config{
		OrderSvcURL:  cfg.OrderSvcURL,
		DemandSvcURL: cfg.DemandSvcURL,
	}, &http.Client{Timeout: 30 * time.Second})

	c := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"*"},
	})

	server := &http.Server{
		Addr:              cfg.GatewayHTTPAddr,
		Handler:           c.Handler(gw.SetupRoutes()),
		ReadHeaderTimeout: 5 * time.Second,
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		slog.Info("gateway starting", "addr", cfg.GatewayHTTPAddr,
			"order_svc", cfg.OrderSvcURL, "demand_svc", cfg.DemandSvcURL)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server failed", "error", err)
			os.Exit(1)
		}
	}()

	<-stop
	slog.Info("shutting down gateway")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		slog.Error("server shutdown failed", "error", err)
	}
}
