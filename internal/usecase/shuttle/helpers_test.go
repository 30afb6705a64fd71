package shuttle

import (
	"testing"
	"time"

	"github.com/frontandrew/ferry/internal/domain"
	"github.com/frontandrew/ferry/internal/infrastructure/events"
	"github.com/frontandrew/ferry/internal/pkg/clock"
	"github.com/frontandrew/ferry/internal/pkg/logger"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// sequenceChooser выдает заранее заданные выборы по кругу
type sequenceChooser struct {
	picks []int
	calls int
}

func (c *sequenceChooser) Intn(n int) int {
	if len(c.picks) == 0 {
		return 0
	}
	pick := c.picks[c.calls%len(c.picks)] % n
	c.calls++
	return pick
}

func (c *sequenceChooser) Shuffle(int, func(i, j int)) {}

var testEpoch = time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC)

func newTestJournal(rec *events.Recorder) (*Journal, *clock.Logical) {
	clk := clock.NewLogical(testEpoch)
	return NewJournal(uuid.New(), clk, rec, logger.NewNoop()), clk
}

func newTestFerry(t *testing.T, capacity int, side domain.Side, clk clock.Clock, journal *Journal) *Ferry {
	t.Helper()
	ferry, err := NewFerry(FerryConfig{
		Capacity:         capacity,
		StartSide:        side,
		CrossingDuration: 5 * time.Second,
	}, clk, journal)
	require.NoError(t, err)
	return ferry
}

func newTestScheduler(t *testing.T, ferry *Ferry, queues *SideQueues, chooser *sequenceChooser, journal *Journal) *Scheduler {
	t.Helper()
	gates := map[domain.Side][]*TollGate{
		domain.SideLeft:  NewTollGates(domain.SideLeft, 2, journal),
		domain.SideRight: NewTollGates(domain.SideRight, 2, journal),
	}
	s, err := NewScheduler(ferry, queues, gates, chooser, journal)
	require.NoError(t, err)
	return s
}

func newVehicles(t *testing.T, factory *domain.VehicleFactory, vt domain.VehicleType, side domain.Side, n int) []*domain.Vehicle {
	t.Helper()
	out := make([]*domain.Vehicle, 0, n)
	for i := 0; i < n; i++ {
		v, err := factory.New(vt, side)
		require.NoError(t, err)
		out = append(out, v)
	}
	return out
}

func newFactory(t *testing.T) *domain.VehicleFactory {
	t.Helper()
	factory, err := domain.NewVehicleFactory(domain.DefaultUnitSizes())
	require.NoError(t, err)
	return factory
}

func eventTypes(list []domain.Event) []domain.EventType {
	out := make([]domain.EventType, 0, len(list))
	for _, e := range list {
		out = append(out, e.Type)
	}
	return out
}
