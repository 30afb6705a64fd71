package events

import (
	"context"

	"github.com/frontandrew/ferry/internal/domain"
	"github.com/frontandrew/ferry/internal/pkg/logger"
)

// LogPublisher выводит события как строки лога - это и есть текстовый прогресс симуляции
type LogPublisher struct {
	logger logger.Logger
}

// NewLogPublisher создает Publisher поверх logger
func NewLogPublisher(log logger.Logger) *LogPublisher {
	return &LogPublisher{logger: log}
}

// Publish пишет одну строку на событие
func (p *LogPublisher) Publish(_ context.Context, e domain.Event) error {
	switch e.Type {
	case domain.EventSimulationStarted:
		p.logger.Info("Simulation started", map[string]interface{}{
			"run_id":     e.RunID.String(),
			"ferry_side": e.Side,
			"vehicles":   e.Pending,
			"capacity":   e.Capacity,
		})

	case domain.EventTripStarted:
		p.logger.Info("Trip started", map[string]interface{}{
			"trip": e.Trip,
			"side": e.Side,
		})

	case domain.EventGatePassed:
		p.logger.Info("Vehicle passed toll gate", map[string]interface{}{
			"trip":    e.Trip,
			"vehicle": e.Vehicle,
			"gate":    e.Gate,
			"side":    e.Side,
		})

	case domain.EventVehicleLoaded:
		p.logger.Info("Vehicle loaded", map[string]interface{}{
			"trip":    e.Trip,
			"vehicle": e.Vehicle,
			"load":    e.Load,
		})

	case domain.EventFerryDeparted:
		p.logger.Info("Ferry departing", map[string]interface{}{
			"trip": e.Trip,
			"from": e.Side,
			"load": e.Load,
		})

	case domain.EventCrossingInterrupted:
		p.logger.Warn("Ferry crossing interrupted", map[string]interface{}{
			"trip": e.Trip,
			"from": e.Side,
		})

	case domain.EventFerryArrived:
		p.logger.Info("Ferry arrived", map[string]interface{}{
			"trip": e.Trip,
			"side": e.Side,
		})

	case domain.EventVehicleUnloaded:
		p.logger.Info("Vehicle unloaded", map[string]interface{}{
			"trip":    e.Trip,
			"vehicle": e.Vehicle,
			"side":    e.Side,
		})

	case domain.EventVehicleRequeued:
		p.logger.Debug("Vehicle requeued", map[string]interface{}{
			"trip":    e.Trip,
			"vehicle": e.Vehicle,
			"side":    e.Side,
		})

	case domain.EventVehicleRetired:
		p.logger.Debug("Vehicle is home", map[string]interface{}{
			"trip":    e.Trip,
			"vehicle": e.Vehicle,
			"side":    e.Side,
		})

	case domain.EventSimulationFinished:
		p.logger.Info("All vehicles returned home", map[string]interface{}{
			"run_id": e.RunID.String(),
			"trips":  e.Trip,
		})

	default:
		p.logger.Debug("Simulation event", map[string]interface{}{
			"type": e.Type,
			"trip": e.Trip,
		})
	}

	return nil
}
