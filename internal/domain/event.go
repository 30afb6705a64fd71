package domain

import (
	"time"

	"github.com/google/uuid"
)

// EventType - тип события симуляции
type EventType string

const (
	EventSimulationStarted   EventType = "simulation_started"
	EventTripStarted         EventType = "trip_started"
	EventGatePassed          EventType = "gate_passed"
	EventVehicleLoaded       EventType = "vehicle_loaded"
	EventFerryDeparted       EventType = "ferry_departed"
	EventCrossingInterrupted EventType = "crossing_interrupted"
	EventFerryArrived        EventType = "ferry_arrived"
	EventVehicleUnloaded     EventType = "vehicle_unloaded"
	EventVehicleRequeued     EventType = "vehicle_requeued"
	EventVehicleRetired      EventType = "vehicle_retired"
	EventSimulationFinished  EventType = "simulation_finished"
)

// Event - запись о ходе симуляции
// Поток событий заменяет текстовый вывод: порядок событий важен, текст - нет
type Event struct {
	RunID       uuid.UUID   `json:"run_id"`
	Type        EventType   `json:"type"`
	Trip        int         `json:"trip"`
	Side        Side        `json:"side,omitempty"`
	Vehicle     string      `json:"vehicle,omitempty"`
	VehicleType VehicleType `json:"vehicle_type,omitempty"`
	Units       int         `json:"units,omitempty"`
	Gate        string      `json:"gate,omitempty"`
	Load        int         `json:"load"`
	Pending     int         `json:"pending"`
	Capacity    int         `json:"capacity,omitempty"`
	Timestamp   time.Time   `json:"timestamp"`
}

// VehicleEvent заполняет поля транспорта
func VehicleEvent(t EventType, v *Vehicle) Event {
	return Event{
		Type:        t,
		Side:        v.CurrentSide,
		Vehicle:     v.String(),
		VehicleType: v.Type,
		Units:       v.Units,
	}
}
