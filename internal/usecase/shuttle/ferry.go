package shuttle

import (
	"context"
	"fmt"
	"time"

	"github.com/frontandrew/ferry/internal/domain"
	"github.com/frontandrew/ferry/internal/pkg/clock"
	"golang.org/x/sync/semaphore"
)

// FerryConfig - параметры парома
type FerryConfig struct {
	Capacity         int
	StartSide        domain.Side
	CrossingDuration time.Duration
}

// Ferry - паром с ограниченной вместимостью.
// Сумма единиц на борту никогда не превышает capacity:
// каждая единица занимает слот семафора до выгрузки.
type Ferry struct {
	capacity         int
	position         domain.Side
	manifest         []*domain.Vehicle
	used             int
	slots            *semaphore.Weighted
	crossingDuration time.Duration
	clock            clock.Clock
	journal          *Journal
}

// NewFerry создает паром у берега cfg.StartSide
func NewFerry(cfg FerryConfig, clk clock.Clock, journal *Journal) (*Ferry, error) {
	if cfg.Capacity <= 0 {
		return nil, domain.ErrInvalidCapacity
	}
	if !cfg.StartSide.IsValid() {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidSide, cfg.StartSide)
	}
	if cfg.CrossingDuration < 0 {
		return nil, domain.ErrInvalidDuration
	}

	return &Ferry{
		capacity:         cfg.Capacity,
		position:         cfg.StartSide,
		slots:            semaphore.NewWeighted(int64(cfg.Capacity)),
		crossingDuration: cfg.CrossingDuration,
		clock:            clk,
		journal:          journal,
	}, nil
}

// CanLoad проверяет, поместится ли транспорт. Не меняет состояние.
func (f *Ferry) CanLoad(v *domain.Vehicle) bool {
	return f.used+v.Units <= f.capacity
}

// Load ставит транспорт на борт.
// Вызывающий обязан проверить CanLoad: перегрузка - нарушение контракта, panic.
func (f *Ferry) Load(ctx context.Context, v *domain.Vehicle) {
	if !f.slots.TryAcquire(int64(v.Units)) {
		panic(fmt.Errorf("%w: %s needs %d units, %d/%d in use",
			domain.ErrCapacityExceeded, v, v.Units, f.used, f.capacity))
	}

	f.used += v.Units
	f.manifest = append(f.manifest, v)

	e := domain.VehicleEvent(domain.EventVehicleLoaded, v)
	e.Load = f.used
	f.journal.Emit(ctx, e)
}

// Cross переправляет паром на другой берег, ожидая crossingDuration.
// Переправа атомарна: при отмене ctx прерывание фиксируется,
// но паром все равно оказывается на другом берегу. Возвращает true при прерывании.
func (f *Ferry) Cross(ctx context.Context) bool {
	from := f.position
	f.journal.Emit(ctx, domain.Event{
		Type: domain.EventFerryDeparted,
		Side: from,
		Load: f.used,
	})

	interrupted := false
	if err := f.clock.Sleep(ctx, f.crossingDuration); err != nil {
		interrupted = true
		f.journal.Emit(ctx, domain.Event{
			Type: domain.EventCrossingInterrupted,
			Side: from,
			Load: f.used,
		})
	}

	f.position = from.Opposite()

	f.journal.Emit(ctx, domain.Event{
		Type: domain.EventFerryArrived,
		Side: f.position,
		Load: f.used,
	})

	return interrupted
}

// UnloadAll выгружает весь транспорт на текущий берег в порядке погрузки
func (f *Ferry) UnloadAll(ctx context.Context) []*domain.Vehicle {
	out := f.manifest
	f.manifest = nil

	for _, v := range out {
		v.CurrentSide = f.position
		f.used -= v.Units
		f.slots.Release(int64(v.Units))

		e := domain.VehicleEvent(domain.EventVehicleUnloaded, v)
		e.Load = f.used
		f.journal.Emit(ctx, e)
	}

	return out
}

// IsEmpty - на борту никого нет
func (f *Ferry) IsEmpty() bool {
	return len(f.manifest) == 0
}

// Position возвращает берег, у которого стоит паром
func (f *Ferry) Position() domain.Side {
	return f.position
}

// Used возвращает занятые единицы
func (f *Ferry) Used() int {
	return f.used
}

// Capacity возвращает вместимость в единицах
func (f *Ferry) Capacity() int {
	return f.capacity
}

// Manifest возвращает копию списка транспорта на борту
func (f *Ferry) Manifest() []*domain.Vehicle {
	out := make([]*domain.Vehicle, len(f.manifest))
	copy(out, f.manifest)
	return out
}
