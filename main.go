package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"menu-svc/config"
	httpapi "menu-svc/internal/api/http"
	"menu-svc/internal/logging"
	"menu-svc/internal/metrics"
	"menu-svc/internal/service"
	"menu-svc/internal/storage"
)

func openStore(cfg *config.Config) (storage.DocumentStore, error) {
	switch cfg.StoreBackend {
	case config.BackendMemory:
		return storage.NewMemoryStore(), nil
	case config.BackendPostgres:
		store := storage.NewPostgresStore(config.MustInitPostgres(cfg))
		if err := store.Migrate(); err != nil {
			store.Close()
			return nil, fmt.Errorf("migrate documents table: %w", err)
		}
		return store, nil
	case config.BackendRedis:
		return storage.NewRedisStore(config.MustInitRedis(cfg), cfg.RedisPrefix), nil
	default:
		return nil, fmt.Errorf("%w: unknown store_backend %q", config.ErrInvalidConfig, cfg.StoreBackend)
	}
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}

	logger, closeLog, err := logging.New(cfg.LogLevel, cfg.LogFile)
	if err != nil {
		slog.Error("Failed to set up logging", "error", err)
		os.Exit(1)
	}
	defer closeLog()

	store, err := openStore(cfg)
	if err != nil {
		logger.Error("Failed to open store", "backend", cfg.StoreBackend, "error", err)
		os.Exit(1)
	}
	defer store.Close()
	logger.Info("document store ready", "backend", cfg.StoreBackend)

	var publisher service.EventPublisher
	if writer := config.NewKafkaWriter(cfg); writer != nil {
		defer writer.Close()
		publisher = storage.NewKafkaPublisher(writer)
		logger.Info("publishing menu events", "topic", cfg.KafkaTopic, "brokers", cfg.Brokers())
	}

	repo := storage.NewDocumentRepository(store)
	serviceLogger := logger.With("component", "service")
	restaurantService := service.NewRestaurantService(repo, publisher, serviceLogger)
	menuService := service.NewMenuService(repo, repo, publisher, service.DefaultQRGenerator{BaseURL: cfg.PublicBaseURL}, serviceLogger)

	handler := httpapi.NewHandler(restaurantService, menuService, store, logger.With("component", "http"))
	router := httpapi.NewRouter(handler, metrics.NewManager(), cfg.AllowedOrigins())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := httpapi.StartServer(ctx, cfg.Addr, router, cfg.ShutdownTimeout); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
	logger.Info("Menu Service stopped")
}
