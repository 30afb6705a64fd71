package domain

import "errors"

// Доменные ошибки - используются во всех слоях приложения

// Vehicle errors
var (
	ErrInvalidVehicleType = errors.New("invalid vehicle type")
	ErrInvalidUnitSize    = errors.New("invalid vehicle unit size")
	ErrInvalidSide        = errors.New("invalid side")
)

// Ferry errors
var (
	ErrInvalidCapacity  = errors.New("invalid ferry capacity")
	ErrVehicleTooLarge  = errors.New("vehicle does not fit on an empty ferry")
	ErrCapacityExceeded = errors.New("ferry capacity exceeded")
	ErrInvalidDuration  = errors.New("invalid crossing duration")
)

// Simulation errors
var (
	ErrNoTollGates         = errors.New("at least one toll gate per side is required")
	ErrInvalidVehicleCount = errors.New("invalid vehicle count")
	ErrInvalidClockMode    = errors.New("invalid clock mode")
)

// General errors
var (
	ErrBadRequest = errors.New("bad request")
)
