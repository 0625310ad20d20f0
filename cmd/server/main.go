package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	httpadapter "github.com/addressforge/address-normalizer/internal/adapter/http"
	kafkaadapter "github.com/addressforge/address-normalizer/internal/adapter/kafka"
	"github.com/addressforge/address-normalizer/internal/adapter/mapbox"
	"github.com/addressforge/address-normalizer/internal/config"
	"github.com/addressforge/address-normalizer/internal/geodata"
	"github.com/addressforge/address-normalizer/internal/observability"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := observability.NewLogger(cfg)
	metrics := observability.NewMetrics()

	data := geodata.Load()
	geocoder := mapbox.NewClient(cfg.MapboxToken, cfg.MapboxBaseURL, cfg.MapboxTimeout, data, metrics, logger)
	logger.Info("mapbox geocoding configured", "timeout", cfg.MapboxTimeout)

	// Kafka publishing of normalized addresses is optional.
	var publisher httpadapter.AddressPublisher
	var writer *kafkaadapter.Writer
	if cfg.KafkaEnabled {
		writer = kafkaadapter.NewWriter(cfg, metrics, logger)
		publisher = writer
		logger.Info("kafka publishing enabled", "topic", cfg.KafkaSinkTopic, "brokers", cfg.KafkaBrokers)
	}

	ready := httpadapter.ReadinessFunc(func(_ context.Context) error { return nil })
	srv := httpadapter.NewServer(cfg.HTTPAddr, geocoder, publisher, ready, logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server error", "error", err)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown error", "error", err)
	}
	if writer != nil {
		if err := writer.Close(); err != nil {
			logger.Error("kafka writer close error", "error", err)
		}
	}

	logger.Info("shutdown complete")
}
