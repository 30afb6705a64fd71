package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/frontandrew/ferry/internal/domain"
	"github.com/joho/godotenv"
)

// Режимы часов симуляции
const (
	ClockReal    = "real"
	ClockLogical = "logical"
)

// Config содержит всю конфигурацию приложения
type Config struct {
	Simulation SimulationConfig
	Server     ServerConfig
	Redis      RedisConfig
	Logger     LoggerConfig
}

// SimulationConfig содержит параметры сценария переправы
type SimulationConfig struct {
	Vehicles         map[domain.VehicleType]int
	UnitSizes        domain.UnitSizes
	FerryCapacity    int
	CrossingDuration time.Duration
	GatesPerSide     int
	Seed             int64
	Clock            string // real или logical
}

// ServerConfig содержит настройки HTTP сервера
type ServerConfig struct {
	Host         string
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

// RedisConfig содержит настройки публикации событий в Redis
type RedisConfig struct {
	Enabled  bool
	Host     string
	Port     string
	Password string
	DB       int
	Channel  string
}

// LoggerConfig содержит настройки логирования
type LoggerConfig struct {
	Level  string
	Format string // json или console
	Output string // stdout, stderr или путь к файлу
}

// Load загружает конфигурацию из переменных окружения
func Load() (*Config, error) {
	// Загружаем .env файл (игнорируем ошибку, если файла нет)
	_ = godotenv.Load()

	cfg := &Config{
		Simulation: SimulationConfig{
			Vehicles: map[domain.VehicleType]int{
				domain.VehicleTypeCar:     getIntEnv("SIM_CARS", 12),
				domain.VehicleTypeMinibus: getIntEnv("SIM_MINIBUSES", 10),
				domain.VehicleTypeTruck:   getIntEnv("SIM_TRUCKS", 8),
			},
			UnitSizes: domain.UnitSizes{
				domain.VehicleTypeCar:     getIntEnv("SIM_CAR_UNITS", domain.VehicleTypeCar.DefaultUnits()),
				domain.VehicleTypeMinibus: getIntEnv("SIM_MINIBUS_UNITS", domain.VehicleTypeMinibus.DefaultUnits()),
				domain.VehicleTypeTruck:   getIntEnv("SIM_TRUCK_UNITS", domain.VehicleTypeTruck.DefaultUnits()),
			},
			FerryCapacity:    getIntEnv("SIM_FERRY_CAPACITY", 20),
			CrossingDuration: getDurationEnv("SIM_CROSSING_DURATION", 5*time.Second),
			GatesPerSide:     getIntEnv("SIM_GATES_PER_SIDE", 2),
			Seed:             getInt64Env("SIM_SEED", 0),
			Clock:            strings.ToLower(getEnv("SIM_CLOCK", ClockReal)),
		},
		Server: ServerConfig{
			Host:         getEnv("SERVER_HOST", "0.0.0.0"),
			Port:         getEnv("SERVER_PORT", "8080"),
			ReadTimeout:  getDurationEnv("SERVER_READ_TIMEOUT", 15*time.Second),
			WriteTimeout: getDurationEnv("SERVER_WRITE_TIMEOUT", 15*time.Second),
			IdleTimeout:  getDurationEnv("SERVER_IDLE_TIMEOUT", 60*time.Second),
		},
		Redis: RedisConfig{
			Enabled:  getBoolEnv("REDIS_ENABLED", false),
			Host:     getEnv("REDIS_HOST", "localhost"),
			Port:     getEnv("REDIS_PORT", "6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getIntEnv("REDIS_DB", 0),
			Channel:  getEnv("REDIS_CHANNEL", "ferry:events"),
		},
		Logger: LoggerConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "console"),
			Output: getEnv("LOG_OUTPUT", "stdout"),
		},
	}

	if err := cfg.Simulation.Validate(); err != nil {
		return nil, fmt.Errorf("invalid simulation config: %w", err)
	}

	return cfg, nil
}

// Default возвращает эталонный сценарий: 12/10/8 транспорта, паром на 20 единиц
func Default() SimulationConfig {
	return SimulationConfig{
		Vehicles: map[domain.VehicleType]int{
			domain.VehicleTypeCar:     12,
			domain.VehicleTypeMinibus: 10,
			domain.VehicleTypeTruck:   8,
		},
		UnitSizes:        domain.DefaultUnitSizes(),
		FerryCapacity:    20,
		CrossingDuration: 5 * time.Second,
		GatesPerSide:     2,
		Clock:            ClockReal,
	}
}

// Validate проверяет параметры сценария.
// Транспорт больше вместимости никогда не попадет на паром, и цикл не завершится.
func (c *SimulationConfig) Validate() error {
	for _, t := range domain.VehicleTypes {
		if c.Vehicles[t] < 0 {
			return fmt.Errorf("%w: %s=%d", domain.ErrInvalidVehicleCount, t, c.Vehicles[t])
		}
	}

	if err := c.UnitSizes.Validate(); err != nil {
		return err
	}

	if c.FerryCapacity <= 0 {
		return domain.ErrInvalidCapacity
	}

	if c.UnitSizes.Max() > c.FerryCapacity {
		return fmt.Errorf("%w: max unit size %d, capacity %d",
			domain.ErrVehicleTooLarge, c.UnitSizes.Max(), c.FerryCapacity)
	}

	if c.CrossingDuration < 0 {
		return domain.ErrInvalidDuration
	}

	if c.GatesPerSide <= 0 {
		return domain.ErrNoTollGates
	}

	if c.Clock != ClockReal && c.Clock != ClockLogical {
		return fmt.Errorf("%w: %q", domain.ErrInvalidClockMode, c.Clock)
	}

	return nil
}

// TotalVehicles возвращает общее количество транспорта
func (c *SimulationConfig) TotalVehicles() int {
	total := 0
	for _, t := range domain.VehicleTypes {
		total += c.Vehicles[t]
	}
	return total
}

// Address возвращает адрес сервера
func (c *ServerConfig) Address() string {
	return fmt.Sprintf("%s:%s", c.Host, c.Port)
}

// Address возвращает адрес Redis
func (c *RedisConfig) Address() string {
	return fmt.Sprintf("%s:%s", c.Host, c.Port)
}

// Вспомогательные функции для чтения переменных окружения

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getInt64Env(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.ParseInt(value, 10, 64); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
		// Допускаем миллисекунды без единиц: SIM_CROSSING_DURATION=5000
		if ms, err := strconv.Atoi(value); err == nil {
			return time.Duration(ms) * time.Millisecond
		}
	}
	return defaultValue
}
