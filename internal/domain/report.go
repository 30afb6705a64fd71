package domain

import (
	"time"

	"github.com/google/uuid"
)

// Report - итог симуляции
type Report struct {
	RunID             uuid.UUID           `json:"run_id"`
	Trips             int                 `json:"trips"`
	Vehicles          int                 `json:"vehicles"`
	VehiclesByType    map[VehicleType]int `json:"vehicles_by_type"`
	InitialLeft       int                 `json:"initial_left"`
	InitialRight      int                 `json:"initial_right"`
	FerryStartSide    Side                `json:"ferry_start_side"`
	FerryCapacity     int                 `json:"ferry_capacity"`
	Interruptions     int                 `json:"interruptions"`
	GateCounts        map[string]int      `json:"gate_counts"`
	StartedAt         time.Time           `json:"started_at"`
	FinishedAt        time.Time           `json:"finished_at"`
	SimulatedDuration time.Duration       `json:"simulated_duration_ns"`
}

// GateKey формирует ключ для GateCounts, например "LEFT/Gate 1"
func GateKey(side Side, gate string) string {
	return string(side) + "/" + gate
}
