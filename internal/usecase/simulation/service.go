package simulation

import (
	"context"
	"fmt"
	"time"

	"github.com/frontandrew/ferry/internal/domain"
	"github.com/frontandrew/ferry/internal/infrastructure/events"
	"github.com/frontandrew/ferry/internal/pkg/clock"
	"github.com/frontandrew/ferry/internal/pkg/config"
	"github.com/frontandrew/ferry/internal/pkg/logger"
	"github.com/frontandrew/ferry/internal/pkg/random"
	"github.com/frontandrew/ferry/internal/usecase/shuttle"
	"github.com/google/uuid"
)

// Ограничения сценария, запрошенного по HTTP
const (
	MaxRequestVehicles = 10000
	MaxRequestGates    = 64
)

// RunRequest - запрос на запуск симуляции. Пустые поля берутся из конфигурации.
type RunRequest struct {
	Cars          *int   `json:"cars,omitempty"`
	Minibuses     *int   `json:"minibuses,omitempty"`
	Trucks        *int   `json:"trucks,omitempty"`
	Seed          *int64 `json:"seed,omitempty"`
	FerryCapacity *int   `json:"ferry_capacity,omitempty"`
	GatesPerSide  *int   `json:"gates_per_side,omitempty"`
	IncludeEvents bool   `json:"include_events,omitempty"`
}

// RunResult - ответ на запуск симуляции
type RunResult struct {
	Report *domain.Report `json:"report"`
	Events []domain.Event `json:"events,omitempty"`
}

// Service собирает сценарий переправы и прогоняет его до конца
type Service struct {
	cfg        config.SimulationConfig
	publishers []events.Publisher
	logger     logger.Logger

	newClock   func(mode string) clock.Clock
	newChooser func(seed int64) random.Chooser
}

// NewService создает новый экземпляр SimulationService.
// publishers получают события каждого запуска (лог, Redis).
func NewService(cfg config.SimulationConfig, logger logger.Logger, publishers ...events.Publisher) *Service {
	return &Service{
		cfg:        cfg,
		publishers: publishers,
		logger:     logger,
		newClock:   defaultClock,
		newChooser: random.New,
	}
}

// Run применяет параметры запроса к конфигурации и запускает симуляцию
func (s *Service) Run(ctx context.Context, req *RunRequest) (*RunResult, error) {
	if req == nil {
		req = &RunRequest{}
	}

	cfg := cloneConfig(s.cfg)
	req.apply(&cfg)

	// Каждое количество проверяется до суммирования, иначе сумма может переполниться
	for _, t := range domain.VehicleTypes {
		if cfg.Vehicles[t] > MaxRequestVehicles {
			return nil, fmt.Errorf("%w: at most %d vehicles per run", domain.ErrBadRequest, MaxRequestVehicles)
		}
	}
	if cfg.GatesPerSide > MaxRequestGates {
		return nil, fmt.Errorf("%w: at most %d toll gates per side", domain.ErrBadRequest, MaxRequestGates)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrBadRequest, err)
	}
	if cfg.TotalVehicles() > MaxRequestVehicles {
		return nil, fmt.Errorf("%w: at most %d vehicles per run", domain.ErrBadRequest, MaxRequestVehicles)
	}

	var recorder *events.Recorder
	var extra []events.Publisher
	if req.IncludeEvents {
		recorder = events.NewRecorder()
		extra = append(extra, recorder)
	}

	report, err := s.Simulate(ctx, cfg, extra...)
	if err != nil {
		return nil, err
	}

	result := &RunResult{Report: report}
	if recorder != nil {
		result.Events = recorder.Events()
	}
	return result, nil
}

// Simulate строит транспорт, очереди, пункты оплаты и паром по cfg
// и выполняет рейсы, пока весь транспорт не вернется домой
func (s *Service) Simulate(ctx context.Context, cfg config.SimulationConfig, extra ...events.Publisher) (*domain.Report, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	clk := s.newClock(cfg.Clock)
	chooser := s.newChooser(cfg.Seed)
	runID := uuid.New()

	publisher := events.NewMulti(append(append([]events.Publisher{}, s.publishers...), extra...)...)
	journal := shuttle.NewJournal(runID, clk, publisher, s.logger)

	factory, err := domain.NewVehicleFactory(cfg.UnitSizes)
	if err != nil {
		return nil, fmt.Errorf("failed to create vehicle factory: %w", err)
	}

	// Транспорт создается по типам, затем перемешивается и расходится по очередям
	vehicles := make([]*domain.Vehicle, 0, cfg.TotalVehicles())
	byType := make(map[domain.VehicleType]int, len(domain.VehicleTypes))
	for _, t := range domain.VehicleTypes {
		for i := 0; i < cfg.Vehicles[t]; i++ {
			v, err := factory.New(t, randomSide(chooser))
			if err != nil {
				return nil, fmt.Errorf("failed to create vehicle: %w", err)
			}
			vehicles = append(vehicles, v)
		}
		byType[t] = factory.Issued(t)
	}
	chooser.Shuffle(len(vehicles), func(i, j int) {
		vehicles[i], vehicles[j] = vehicles[j], vehicles[i]
	})

	queues := shuttle.NewSideQueues(vehicles)
	initialLeft := queues.For(domain.SideLeft).Len()
	initialRight := queues.For(domain.SideRight).Len()

	ferry, err := shuttle.NewFerry(shuttle.FerryConfig{
		Capacity:         cfg.FerryCapacity,
		StartSide:        randomSide(chooser),
		CrossingDuration: cfg.CrossingDuration,
	}, clk, journal)
	if err != nil {
		return nil, fmt.Errorf("failed to create ferry: %w", err)
	}
	startSide := ferry.Position()

	gates := map[domain.Side][]*shuttle.TollGate{
		domain.SideLeft:  shuttle.NewTollGates(domain.SideLeft, cfg.GatesPerSide, journal),
		domain.SideRight: shuttle.NewTollGates(domain.SideRight, cfg.GatesPerSide, journal),
	}

	scheduler, err := shuttle.NewScheduler(ferry, queues, gates, chooser, journal)
	if err != nil {
		return nil, fmt.Errorf("failed to create scheduler: %w", err)
	}

	startedAt := clk.Now()
	journal.Emit(ctx, domain.Event{
		Type:     domain.EventSimulationStarted,
		Side:     startSide,
		Pending:  len(vehicles),
		Capacity: ferry.Capacity(),
	})

	trips := scheduler.Run(ctx)

	finishedAt := clk.Now()
	journal.Emit(ctx, domain.Event{
		Type: domain.EventSimulationFinished,
		Trip: trips,
		Side: ferry.Position(),
	})

	s.logger.Debug("Simulation completed", map[string]interface{}{
		"run_id":        runID.String(),
		"trips":         trips,
		"interruptions": scheduler.Interruptions(),
	})

	return &domain.Report{
		RunID:             runID,
		Trips:             trips,
		Vehicles:          len(vehicles),
		VehiclesByType:    byType,
		InitialLeft:       initialLeft,
		InitialRight:      initialRight,
		FerryStartSide:    startSide,
		FerryCapacity:     ferry.Capacity(),
		Interruptions:     scheduler.Interruptions(),
		GateCounts:        scheduler.GateCounts(),
		StartedAt:         startedAt,
		FinishedAt:        finishedAt,
		SimulatedDuration: finishedAt.Sub(startedAt),
	}, nil
}

// apply переносит заданные поля запроса в конфигурацию
func (r *RunRequest) apply(cfg *config.SimulationConfig) {
	if r.Cars != nil {
		cfg.Vehicles[domain.VehicleTypeCar] = *r.Cars
	}
	if r.Minibuses != nil {
		cfg.Vehicles[domain.VehicleTypeMinibus] = *r.Minibuses
	}
	if r.Trucks != nil {
		cfg.Vehicles[domain.VehicleTypeTruck] = *r.Trucks
	}
	if r.Seed != nil {
		cfg.Seed = *r.Seed
	}
	if r.FerryCapacity != nil {
		cfg.FerryCapacity = *r.FerryCapacity
	}
	if r.GatesPerSide != nil {
		cfg.GatesPerSide = *r.GatesPerSide
	}
}

// cloneConfig копирует конфигурацию вместе с картами
func cloneConfig(cfg config.SimulationConfig) config.SimulationConfig {
	out := cfg

	out.Vehicles = make(map[domain.VehicleType]int, len(cfg.Vehicles))
	for t, n := range cfg.Vehicles {
		out.Vehicles[t] = n
	}

	out.UnitSizes = make(domain.UnitSizes, len(cfg.UnitSizes))
	for t, n := range cfg.UnitSizes {
		out.UnitSizes[t] = n
	}

	return out
}

func randomSide(chooser random.Chooser) domain.Side {
	return domain.Sides[chooser.Intn(len(domain.Sides))]
}

func defaultClock(mode string) clock.Clock {
	if mode == config.ClockLogical {
		return clock.NewLogical(time.Now())
	}
	return clock.NewReal()
}
