package config

import (
	"testing"
	"time"

	"github.com/frontandrew/ferry/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 12, cfg.Simulation.Vehicles[domain.VehicleTypeCar])
	assert.Equal(t, 20, cfg.Simulation.FerryCapacity)
	assert.Equal(t, domain.DefaultUnitSizes(), cfg.Simulation.UnitSizes)
	assert.Equal(t, "ferry:events", cfg.Redis.Channel)
	assert.False(t, cfg.Redis.Enabled)
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("SIM_CARS", "3")
	t.Setenv("SIM_TRUCKS", "0")
	t.Setenv("SIM_FERRY_CAPACITY", "9")
	t.Setenv("SIM_CROSSING_DURATION", "250")
	t.Setenv("SIM_GATES_PER_SIDE", "4")
	t.Setenv("SIM_SEED", "42")
	t.Setenv("SIM_CLOCK", "Logical")
	t.Setenv("REDIS_ENABLED", "true")
	t.Setenv("REDIS_PORT", "6380")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 3, cfg.Simulation.Vehicles[domain.VehicleTypeCar])
	assert.Equal(t, 0, cfg.Simulation.Vehicles[domain.VehicleTypeTruck])
	assert.Equal(t, 13, cfg.Simulation.TotalVehicles())
	assert.Equal(t, 9, cfg.Simulation.FerryCapacity)
	assert.Equal(t, 250*time.Millisecond, cfg.Simulation.CrossingDuration)
	assert.Equal(t, 4, cfg.Simulation.GatesPerSide)
	assert.Equal(t, int64(42), cfg.Simulation.Seed)
	assert.Equal(t, ClockLogical, cfg.Simulation.Clock)
	assert.True(t, cfg.Redis.Enabled)
	assert.Equal(t, "localhost:6380", cfg.Redis.Address())
}

func TestLoad_InvalidClock(t *testing.T) {
	t.Setenv("SIM_CLOCK", "sundial")

	cfg, err := Load()

	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, domain.ErrInvalidClockMode)
	assert.ErrorContains(t, err, "invalid simulation config")
}

func TestSimulationConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*SimulationConfig)
		wantErr error
	}{
		{
			name:   "конфигурация по умолчанию",
			modify: func(*SimulationConfig) {},
		},
		{
			name:    "отрицательное количество",
			modify:  func(c *SimulationConfig) { c.Vehicles[domain.VehicleTypeMinibus] = -1 },
			wantErr: domain.ErrInvalidVehicleCount,
		},
		{
			name:    "нулевой размер",
			modify:  func(c *SimulationConfig) { c.UnitSizes[domain.VehicleTypeCar] = 0 },
			wantErr: domain.ErrInvalidUnitSize,
		},
		{
			name:    "нулевая вместимость",
			modify:  func(c *SimulationConfig) { c.FerryCapacity = 0 },
			wantErr: domain.ErrInvalidCapacity,
		},
		{
			name:    "грузовик не помещается",
			modify:  func(c *SimulationConfig) { c.UnitSizes[domain.VehicleTypeTruck] = 21 },
			wantErr: domain.ErrVehicleTooLarge,
		},
		{
			name:    "отрицательная длительность",
			modify:  func(c *SimulationConfig) { c.CrossingDuration = -time.Second },
			wantErr: domain.ErrInvalidDuration,
		},
		{
			name:    "нет пунктов оплаты",
			modify:  func(c *SimulationConfig) { c.GatesPerSide = 0 },
			wantErr: domain.ErrNoTollGates,
		},
		{
			name:    "неизвестные часы",
			modify:  func(c *SimulationConfig) { c.Clock = "" },
			wantErr: domain.ErrInvalidClockMode,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(&cfg)

			err := cfg.Validate()

			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}
