package shuttle

import (
	"context"
	"fmt"

	"github.com/frontandrew/ferry/internal/domain"
)

// TollGate - пункт оплаты перед погрузкой. Состояния не хранит.
type TollGate struct {
	name    string
	side    domain.Side
	journal *Journal
}

// NewTollGate создает пункт оплаты на берегу side
func NewTollGate(name string, side domain.Side, journal *Journal) *TollGate {
	return &TollGate{
		name:    name,
		side:    side,
		journal: journal,
	}
}

// NewTollGates создает пункты "Gate 1".."Gate n" на берегу side
func NewTollGates(side domain.Side, n int, journal *Journal) []*TollGate {
	gates := make([]*TollGate, 0, n)
	for i := 1; i <= n; i++ {
		gates = append(gates, NewTollGate(fmt.Sprintf("Gate %d", i), side, journal))
	}
	return gates
}

func (g *TollGate) Name() string {
	return g.name
}

func (g *TollGate) Side() domain.Side {
	return g.side
}

// ProcessVehicle фиксирует проезд транспорта через пункт
func (g *TollGate) ProcessVehicle(ctx context.Context, v *domain.Vehicle) {
	e := domain.VehicleEvent(domain.EventGatePassed, v)
	e.Side = g.side
	e.Gate = g.name
	g.journal.Emit(ctx, e)
}
