package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/frontandrew/ferry/internal/domain"
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

	log := logger.New(cfg.Logger.Level, cfg.Logger.Format, cfg.Logger.Output)
	logger.SetGlobalLogger(log)

	// =========================================================================
	// Сигналы: первое прерывание отменяет ожидание переправ,
	// симуляция при этом доходит до конца
	// =========================================================================

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		<-ctx.Done()
		// Повторный сигнал завершает процесс обычным образом
		stop()
	}()

	// =========================================================================
	// Получатели событий
	// =========================================================================

	publishers := []events.Publisher{events.NewLogPublisher(log)}

	if cfg.Redis.Enabled {
		client, err := redis.NewClient(ctx, redis.Config{
			Host:     cfg.Redis.Host,
			Port:     cfg.Redis.Port,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			log.Warn("Redis is not available, events will not be published", map[string]interface{}{
				"error":   err.Error(),
				"address": cfg.Redis.Address(),
			})
		} else {
			defer client.Close()
			publishers = append(publishers, events.NewRedisPublisher(client, cfg.Redis.Channel))
			log.Info("Publishing events to Redis", map[string]interface{}{
				"address": cfg.Redis.Address(),
				"channel": cfg.Redis.Channel,
			})
		}
	}

	// =========================================================================
	// Запуск симуляции
	// =========================================================================

	service := simulation.NewService(cfg.Simulation, log, publishers...)

	log.Info("Starting ferry simulation", map[string]interface{}{
		"cars":           cfg.Simulation.Vehicles[domain.VehicleTypeCar],
		"minibuses":      cfg.Simulation.Vehicles[domain.VehicleTypeMinibus],
		"trucks":         cfg.Simulation.Vehicles[domain.VehicleTypeTruck],
		"capacity":       cfg.Simulation.FerryCapacity,
		"crossing":       cfg.Simulation.CrossingDuration.String(),
		"gates_per_side": cfg.Simulation.GatesPerSide,
		"clock":          cfg.Simulation.Clock,
	})

	report, err := service.Simulate(ctx, cfg.Simulation)
	if err != nil {
		log.Fatal("Simulation failed", map[string]interface{}{
			"error": err.Error(),
		})
	}

	log.Info("Total number of trips", map[string]interface{}{
		"trips":         report.Trips,
		"vehicles":      report.Vehicles,
		"interruptions": report.Interruptions,
		"simulated":     report.SimulatedDuration.String(),
	})
}
