package domain

import (
	"fmt"
)

// VehicleType представляет тип транспортного средства
type VehicleType string

const (
	VehicleTypeCar     VehicleType = "car"
	VehicleTypeMinibus VehicleType = "minibus"
	VehicleTypeTruck   VehicleType = "truck"
)

// VehicleTypes - все типы в порядке генерации при старте симуляции
var VehicleTypes = []VehicleType{VehicleTypeCar, VehicleTypeMinibus, VehicleTypeTruck}

// IsValid проверяет, что тип входит в закрытый набор
func (t VehicleType) IsValid() bool {
	switch t {
	case VehicleTypeCar, VehicleTypeMinibus, VehicleTypeTruck:
		return true
	}
	return false
}

// DefaultUnits возвращает размер типа по умолчанию (место на пароме)
func (t VehicleType) DefaultUnits() int {
	switch t {
	case VehicleTypeCar:
		return 1
	case VehicleTypeMinibus:
		return 2
	case VehicleTypeTruck:
		return 3
	}
	return 0
}

// UnitSizes - таблица размеров по типам
type UnitSizes map[VehicleType]int

// DefaultUnitSizes возвращает размеры 1/2/3
func DefaultUnitSizes() UnitSizes {
	sizes := make(UnitSizes, len(VehicleTypes))
	for _, t := range VehicleTypes {
		sizes[t] = t.DefaultUnits()
	}
	return sizes
}

// Validate проверяет, что для каждого типа задан положительный размер
func (u UnitSizes) Validate() error {
	for _, t := range VehicleTypes {
		if u[t] <= 0 {
			return fmt.Errorf("%w: %s=%d", ErrInvalidUnitSize, t, u[t])
		}
	}
	return nil
}

// Max возвращает наибольший размер из таблицы
func (u UnitSizes) Max() int {
	max := 0
	for _, t := range VehicleTypes {
		if u[t] > max {
			max = u[t]
		}
	}
	return max
}

// Vehicle - транспортное средство, ожидающее переправы
// ВАЖНО: Type, Units и HomeSide не меняются после создания,
// CurrentSide меняет только паром при выгрузке
type Vehicle struct {
	ID          int         `json:"id"`
	Type        VehicleType `json:"type"`
	Units       int         `json:"units"`
	HomeSide    Side        `json:"home_side"`
	CurrentSide Side        `json:"current_side"`
}

// IsHome - транспорт находится на своем берегу
func (v *Vehicle) IsHome() bool {
	return v.CurrentSide == v.HomeSide
}

// String возвращает метку вида "truck #3"
func (v *Vehicle) String() string {
	return fmt.Sprintf("%s #%d", v.Type, v.ID)
}

// VehicleFactory создает транспорт и выдает идентификаторы.
// Счетчики ведутся отдельно для каждого типа и начинаются с 1.
// Не потокобезопасна: одна фабрика на одну симуляцию.
type VehicleFactory struct {
	sizes    UnitSizes
	counters map[VehicleType]int
}

// NewVehicleFactory создает фабрику с заданной таблицей размеров
func NewVehicleFactory(sizes UnitSizes) (*VehicleFactory, error) {
	if err := sizes.Validate(); err != nil {
		return nil, err
	}

	own := make(UnitSizes, len(sizes))
	for t, n := range sizes {
		own[t] = n
	}

	return &VehicleFactory{
		sizes:    own,
		counters: make(map[VehicleType]int, len(VehicleTypes)),
	}, nil
}

// New создает транспорт на стороне side, которая становится его домом
func (f *VehicleFactory) New(t VehicleType, side Side) (*Vehicle, error) {
	if !t.IsValid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidVehicleType, t)
	}
	if !side.IsValid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidSide, side)
	}

	f.counters[t]++

	return &Vehicle{
		ID:          f.counters[t],
		Type:        t,
		Units:       f.sizes[t],
		HomeSide:    side,
		CurrentSide: side,
	}, nil
}

// Issued возвращает количество выданных идентификаторов для типа
func (f *VehicleFactory) Issued(t VehicleType) int {
	return f.counters[t]
}
