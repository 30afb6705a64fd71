package shuttle

import (
	"context"
	"fmt"

	"github.com/frontandrew/ferry/internal/domain"
	"github.com/frontandrew/ferry/internal/pkg/random"
)

// TripResult - итог одного рейса
type TripResult struct {
	Trip        int
	From        domain.Side
	To          domain.Side
	Boarded     []*domain.Vehicle
	Units       int
	Requeued    []*domain.Vehicle
	Retired     []*domain.Vehicle
	Interrupted bool
}

// Scheduler - основной цикл переправы.
// Не потокобезопасен: вся симуляция идет в одном потоке управления,
// единственная точка ожидания - Ferry.Cross.
type Scheduler struct {
	ferry   *Ferry
	queues  *SideQueues
	gates   map[domain.Side][]*TollGate
	chooser random.Chooser
	journal *Journal

	trips         int
	interruptions int
	gateCounts    map[string]int
}

// NewScheduler создает планировщик. На каждом берегу нужен хотя бы один пункт оплаты.
func NewScheduler(
	ferry *Ferry,
	queues *SideQueues,
	gates map[domain.Side][]*TollGate,
	chooser random.Chooser,
	journal *Journal,
) (*Scheduler, error) {
	for _, side := range domain.Sides {
		if len(gates[side]) == 0 {
			return nil, fmt.Errorf("%w: %s", domain.ErrNoTollGates, side)
		}
	}

	return &Scheduler{
		ferry:      ferry,
		queues:     queues,
		gates:      gates,
		chooser:    chooser,
		journal:    journal,
		gateCounts: make(map[string]int),
	}, nil
}

// Done - обе очереди и паром пусты, весь транспорт дома
func (s *Scheduler) Done() bool {
	return s.queues.IsEmpty() && s.ferry.IsEmpty()
}

// Run выполняет рейсы, пока не выполнено условие Done, и возвращает их число.
// Прерывание переправы не останавливает цикл.
func (s *Scheduler) Run(ctx context.Context) int {
	for !s.Done() {
		s.Step(ctx)
	}
	return s.trips
}

// Step выполняет ровно один рейс, даже если грузить некого
func (s *Scheduler) Step(ctx context.Context) TripResult {
	s.trips++
	s.journal.setTrip(s.trips)

	from := s.ferry.Position()
	queue := s.queues.For(from)
	gates := s.gates[from]

	result := TripResult{Trip: s.trips, From: from}

	s.journal.Emit(ctx, domain.Event{
		Type:    domain.EventTripStarted,
		Side:    from,
		Pending: queue.Len(),
	})

	// Жадная погрузка строго по очереди: если первый не помещается,
	// следующие за ним не обгоняют его, даже если поместились бы
	for !queue.IsEmpty() && s.ferry.CanLoad(queue.Peek()) {
		v := queue.Pop()

		gate := gates[s.chooser.Intn(len(gates))]
		gate.ProcessVehicle(ctx, v)
		s.gateCounts[domain.GateKey(gate.Side(), gate.Name())]++

		s.ferry.Load(ctx, v)
	}
	result.Boarded = s.ferry.Manifest()
	result.Units = s.ferry.Used()

	if s.ferry.Cross(ctx) {
		s.interruptions++
		result.Interrupted = true
	}
	result.To = s.ferry.Position()

	// Выгрузка до постановки в очередь: не доехавшие домой ждут следующего рейса
	for _, v := range s.ferry.UnloadAll(ctx) {
		if v.IsHome() {
			result.Retired = append(result.Retired, v)
			s.journal.Emit(ctx, domain.VehicleEvent(domain.EventVehicleRetired, v))
			continue
		}

		s.queues.For(v.CurrentSide).Push(v)
		result.Requeued = append(result.Requeued, v)
		s.journal.Emit(ctx, domain.VehicleEvent(domain.EventVehicleRequeued, v))
	}

	return result
}

// Trips возвращает число выполненных рейсов
func (s *Scheduler) Trips() int {
	return s.trips
}

// Interruptions возвращает число прерванных переправ
func (s *Scheduler) Interruptions() int {
	return s.interruptions
}

// GateCounts возвращает копию счетчиков проезда по пунктам оплаты
func (s *Scheduler) GateCounts() map[string]int {
	out := make(map[string]int, len(s.gateCounts))
	for k, n := range s.gateCounts {
		out[k] = n
	}
	return out
}
