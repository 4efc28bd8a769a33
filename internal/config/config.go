package config

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
)

// Config конфигурация сервиса
type Config struct {
	Server       ServerConfig       `toml:"server"`
	Logs         LogsConfig         `toml:"logs"`
	Metrics      MetricsConfig      `toml:"metrics"`
	CourtService CourtServiceConfig `toml:"courtservice"`
	Schedule     ScheduleConfig     `toml:"schedule"`
}

// ServerConfig настройки HTTP сервера
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

// MetricsConfig настройки метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// CourtServiceConfig настройки клиента внешней платформы бронирования
type CourtServiceConfig struct {
	URL     string `toml:"url"`
	Timeout int    `toml:"timeout"` // секунды
}

// ScheduleConfig геометрия сетки расписания
type ScheduleConfig struct {
	OpenHour            int `toml:"open_hour"`
	CloseHour           int `toml:"close_hour"`
	SlotDurationMinutes int `toml:"slot_duration_minutes"`
}

// Load читает конфигурацию из TOML файла и применяет дефолты
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config file %s: %w", path, err)
	}

	applyDefaults(&cfg)

	if err := validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Server.HTTPPort == 0 {
		cfg.Server.HTTPPort = 8084
	}
	if cfg.Server.ReadTimeout == 0 {
		cfg.Server.ReadTimeout = 15
	}
	if cfg.Server.WriteTimeout == 0 {
		cfg.Server.WriteTimeout = 15
	}
	if cfg.Server.IdleTimeout == 0 {
		cfg.Server.IdleTimeout = 60
	}
	if cfg.Server.ShutdownTimeout == 0 {
		cfg.Server.ShutdownTimeout = 10
	}
	if cfg.Logs.Level == "" {
		cfg.Logs.Level = "info"
	}
	if cfg.Metrics.Path == "" {
		cfg.Metrics.Path = "/metrics"
	}
	if cfg.Metrics.ServiceName == "" {
		cfg.Metrics.ServiceName = "smc-schedule-service"
	}
	if cfg.CourtService.Timeout == 0 {
		cfg.CourtService.Timeout = 10
	}
	if cfg.Schedule.OpenHour == 0 && cfg.Schedule.CloseHour == 0 {
		cfg.Schedule.OpenHour = domain.DefaultOpenHour
		cfg.Schedule.CloseHour = domain.DefaultCloseHour
	}
	if cfg.Schedule.SlotDurationMinutes == 0 {
		cfg.Schedule.SlotDurationMinutes = domain.DefaultSlotDurationMinutes
	}
}

func validate(cfg *Config) error {
	if cfg.CourtService.URL == "" {
		return fmt.Errorf("courtservice.url is required")
	}
	if cfg.Schedule.OpenHour < 0 || cfg.Schedule.CloseHour > 24 ||
		cfg.Schedule.OpenHour >= cfg.Schedule.CloseHour {
		return fmt.Errorf("invalid schedule hours: open=%d close=%d",
			cfg.Schedule.OpenHour, cfg.Schedule.CloseHour)
	}
	return nil
}
