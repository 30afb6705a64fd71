package shuttle

import (
	"context"

	"github.com/frontandrew/ferry/internal/domain"
	"github.com/frontandrew/ferry/internal/infrastructure/events"
	"github.com/frontandrew/ferry/internal/pkg/clock"
	"github.com/frontandrew/ferry/internal/pkg/logger"
	"github.com/google/uuid"
)

// Journal проставляет в события идентификатор запуска, номер рейса и время часов
// и передает их в Publisher. Один Journal на одну симуляцию.
type Journal struct {
	runID     uuid.UUID
	clock     clock.Clock
	publisher events.Publisher
	logger    logger.Logger
	trip      int
}

// NewJournal создает журнал событий запуска
func NewJournal(runID uuid.UUID, clk clock.Clock, publisher events.Publisher, log logger.Logger) *Journal {
	if publisher == nil {
		publisher = events.Discard
	}
	return &Journal{
		runID:     runID,
		clock:     clk,
		publisher: publisher,
		logger:    log,
	}
}

// RunID возвращает идентификатор запуска
func (j *Journal) RunID() uuid.UUID {
	return j.runID
}

// Emit публикует событие. Ошибка публикации только логируется.
func (j *Journal) Emit(ctx context.Context, e domain.Event) {
	e.RunID = j.runID
	if e.Trip == 0 {
		e.Trip = j.trip
	}
	e.Timestamp = j.clock.Now()

	// Симуляция продолжается и после прерывания переправы,
	// поэтому отмена контекста не должна терять события
	if err := j.publisher.Publish(context.WithoutCancel(ctx), e); err != nil {
		j.logger.Error("Failed to publish event", map[string]interface{}{
			"type":  e.Type,
			"trip":  e.Trip,
			"error": err.Error(),
		})
	}
}

func (j *Journal) setTrip(trip int) {
	j.trip = trip
}
