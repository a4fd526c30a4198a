package config

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/m0rkovka/LS-BookingService/internal/domain"
)

// Config конфигурация сервиса, загружается из config.toml
type Config struct {
	Server    ServerConfig      `toml:"server"`
	Logs      LogsConfig        `toml:"logs"`
	Metrics   MetricsConfig     `toml:"metrics"`
	Studio    StudioConfig      `toml:"studio"`
	Halls     []HallConfig      `toml:"halls"`
	Equipment []EquipmentConfig `toml:"equipment"`
}

// ServerConfig настройки HTTP-сервера
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig настройки prometheus-метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// StudioConfig режим работы студии и границы длительности бронирования
type StudioConfig struct {
	OpenTime         string `toml:"open_time"`
	CloseTime        string `toml:"close_time"`
	MinDurationHours int    `toml:"min_duration_hours"`
	MaxDurationHours int    `toml:"max_duration_hours"`
}

// HallConfig стартовое описание зала каталога
type HallConfig struct {
	Number     int     `toml:"number"`
	HourlyRate float64 `toml:"hourly_rate"`
	Capacity   int     `toml:"capacity"`
}

// EquipmentConfig стартовое описание позиции оборудования каталога
type EquipmentConfig struct {
	Name       string  `toml:"name"`
	HourlyRate float64 `toml:"hourly_rate"`
}

// Load читает и валидирует конфигурацию из toml-файла
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("config: failed to decode %s: %w", path, err)
	}

	cfg.applyDefaults()

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// applyDefaults подставляет значения по умолчанию для незаполненных полей
func (c *Config) applyDefaults() {
	if c.Server.HTTPPort == 0 {
		c.Server.HTTPPort = 8080
	}
	if c.Server.ReadTimeout == 0 {
		c.Server.ReadTimeout = 10
	}
	if c.Server.WriteTimeout == 0 {
		c.Server.WriteTimeout = 10
	}
	if c.Server.IdleTimeout == 0 {
		c.Server.IdleTimeout = 60
	}
	if c.Server.ShutdownTimeout == 0 {
		c.Server.ShutdownTimeout = 10
	}

	if c.Logs.Level == "" {
		c.Logs.Level = "info"
	}

	if c.Metrics.Path == "" {
		c.Metrics.Path = "/metrics"
	}
	if c.Metrics.ServiceName == "" {
		c.Metrics.ServiceName = "ls-booking-service"
	}

	if c.Studio.OpenTime == "" {
		c.Studio.OpenTime = domain.DefaultOpenTime
	}
	if c.Studio.CloseTime == "" {
		c.Studio.CloseTime = domain.DefaultCloseTime
	}
	if c.Studio.MinDurationHours == 0 {
		c.Studio.MinDurationHours = domain.DefaultMinDurationHours
	}
	if c.Studio.MaxDurationHours == 0 {
		c.Studio.MaxDurationHours = domain.DefaultMaxDurationHours
	}
}

// validate проверяет согласованность конфигурации
func (c *Config) validate() error {
	if c.Studio.MinDurationHours < 1 {
		return fmt.Errorf("config: studio.min_duration_hours must be positive, got %d", c.Studio.MinDurationHours)
	}
	if c.Studio.MaxDurationHours < c.Studio.MinDurationHours {
		return fmt.Errorf("config: studio.max_duration_hours (%d) must be >= min_duration_hours (%d)",
			c.Studio.MaxDurationHours, c.Studio.MinDurationHours)
	}

	for _, hall := range c.Halls {
		if hall.Number <= 0 {
			return fmt.Errorf("config: hall number must be positive, got %d", hall.Number)
		}
		if hall.HourlyRate < 0 {
			return fmt.Errorf("config: hall %d hourly_rate must be non-negative, got %f", hall.Number, hall.HourlyRate)
		}
		if hall.Capacity <= 0 {
			return fmt.Errorf("config: hall %d capacity must be positive, got %d", hall.Number, hall.Capacity)
		}
	}

	for _, item := range c.Equipment {
		if item.Name == "" {
			return fmt.Errorf("config: equipment name must not be empty")
		}
		if item.HourlyRate < 0 {
			return fmt.Errorf("config: equipment %q hourly_rate must be non-negative, got %f", item.Name, item.HourlyRate)
		}
	}

	return nil
}
