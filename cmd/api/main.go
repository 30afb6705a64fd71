package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	deliveryHTTP "github.com/frontandrew/ferry/internal/delivery/http"
	"github.com/frontandrew/ferry/internal/infrastructure/events"
	"github.com/frontandrew/ferry/internal/pkg/config"
	"github.com/frontandrew/ferry/internal/pkg/logger"
	"github.com/frontandrew/ferry/internal/pkg/redis"
	"github.com/frontandrew/ferry/internal/usecase/simulation"
)

func main() {
	// =========================================================================
	// Загрузка конфигурации
	// =========================================================================

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// HTTP запрос не должен ждать реальные переправы
	cfg.Simulation.Clock = config.ClockLogical

	// =========================================================================
	// Инициализация logger
	// =========================================================================

	log := logger.New(cfg.Logger.Level, cfg.Logger.Format, cfg.Logger.Output)
	log.Info("Starting FERRY API server", map[string]interface{}{
		"version": "1.0.0",
	})

	ctx := context.Background()

	// =========================================================================
	// Публикация событий в Redis (опционально)
	// =========================================================================

	var publishers []events.Publisher

	if cfg.Redis.Enabled {
		client, err := redis.NewClient(ctx, redis.Config{
			Host:     cfg.Redis.Host,
			Port:     cfg.Redis.Port,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			log.Warn("Redis is not available", map[string]interface{}{
				"error":   err.Error(),
				"address": cfg.Redis.Address(),
			})
		} else {
			defer client.Close()
			publishers = append(publishers, events.NewRedisPublisher(client, cfg.Redis.Channel))
			log.Info("Connected to Redis", map[string]interface{}{
				"address": cfg.Redis.Address(),
				"channel": cfg.Redis.Channel,
			})
		}
	}

	// =========================================================================
	// Создание use case services и HTTP handlers
	// =========================================================================

	simulationService := simulation.NewService(cfg.Simulation, log, publishers...)
	simulationHandler := deliveryHTTP.NewSimulationHandler(simulationService, log)

	router := deliveryHTTP.NewRouter(simulationHandler, log)
	handler := router.Setup()

	log.Info("HTTP router configured")

	// =========================================================================
	// Создание HTTP сервера
	// =========================================================================

	srv := &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	serverErrors := make(chan error, 1)

	go func() {
		log.Info("API server listening", map[string]interface{}{
			"address": srv.Addr,
		})
		serverErrors <- srv.ListenAndServe()
	}()

	// =========================================================================
	// Graceful shutdown
	// =========================================================================

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		log.Fatal("Server error", map[string]interface{}{
			"error": err.Error(),
		})

	case sig := <-shutdown:
		log.Info("Shutdown signal received", map[string]interface{}{
			"signal": sig.String(),
		})

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			log.Error("Graceful shutdown failed", map[string]interface{}{
				"error": err.Error(),
			})

			if err := srv.Close(); err != nil {
				log.Fatal("Failed to close server", map[string]interface{}{
					"error": err.Error(),
				})
			}
		}

		log.Info("Server stopped gracefully")
	}
}
