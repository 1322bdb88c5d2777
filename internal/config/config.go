// Package config loads the service configuration from a TOML file.
package config

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/voyagecrest/charter-booking-service/internal/domain"
	"github.com/voyagecrest/charter-booking-service/pkg/types"
)

// Config is the root configuration of the service.
type Config struct {
	Server       ServerConfig       `toml:"server"`
	Database     DatabaseConfig     `toml:"database"`
	Logs         LogsConfig         `toml:"logs"`
	Metrics      MetricsConfig      `toml:"metrics"`
	FleetService FleetServiceConfig `toml:"fleet_service"`
	Booking      BookingConfig      `toml:"booking"`
}

// ServerConfig holds HTTP server settings. All timeouts are in seconds.
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"` // seconds
}

// DSN builds the lib/pq connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// LogsConfig holds logger settings.
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig holds Prometheus settings.
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// FleetServiceConfig holds settings for the fleet catalog client.
type FleetServiceConfig struct {
	URL     string `toml:"url"`
	Timeout int    `toml:"timeout"` // seconds
}

// BookingConfig holds booking engine settings, including the deployed
// time-slot catalog.
type BookingConfig struct {
	MaxLookaheadDays   int          `toml:"max_lookahead_days"`
	CompletionSchedule string       `toml:"completion_schedule"` // cron spec for the completion job
	Slots              []SlotConfig `toml:"slots"`
}

// SlotConfig describes one catalog slot. Start and End are "HH:MM" strings;
// leaving both empty defines an untimed (whole-day) slot.
type SlotConfig struct {
	Type  string `toml:"type"`
	Name  string `toml:"name"`
	Start string `toml:"start"`
	End   string `toml:"end"`
}

// Load reads and validates the configuration file at path.
func Load(path string) (*Config, error) {
	cfg := defaultConfig()

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("config: failed to decode %s: %w", path, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     10,
			WriteTimeout:    10,
			IdleTimeout:     60,
			ShutdownTimeout: 15,
		},
		Database: DatabaseConfig{
			Host:            "localhost",
			Port:            5432,
			SSLMode:         "disable",
			MaxOpenConns:    25,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
		},
		Logs: LogsConfig{
			Level: "info",
		},
		Metrics: MetricsConfig{
			Path:        "/metrics",
			ServiceName: "charter-booking-service",
		},
		FleetService: FleetServiceConfig{
			Timeout: 5,
		},
		Booking: BookingConfig{
			MaxLookaheadDays:   domain.DefaultMaxLookaheadDays,
			CompletionSchedule: "0 3 * * *",
		},
	}
}

func (c *Config) validate() error {
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("config: invalid http_port %d", c.Server.HTTPPort)
	}
	if c.Booking.MaxLookaheadDays < domain.MinLookaheadDays || c.Booking.MaxLookaheadDays > domain.MaxLookaheadDays {
		return fmt.Errorf("config: max_lookahead_days must be between %d and %d",
			domain.MinLookaheadDays, domain.MaxLookaheadDays)
	}
	if _, err := c.Catalog(); err != nil {
		return err
	}
	return nil
}

// Catalog converts the configured slots into a domain catalog.
// Without configured slots the default charter catalog applies.
func (c *Config) Catalog() (domain.Catalog, error) {
	if len(c.Booking.Slots) == 0 {
		return domain.DefaultCatalog(), nil
	}

	slots := make([]domain.TimeSlot, 0, len(c.Booking.Slots))
	seen := make(map[string]struct{}, len(c.Booking.Slots))

	for _, sc := range c.Booking.Slots {
		if sc.Type == "" {
			return domain.Catalog{}, fmt.Errorf("config: slot with empty type")
		}
		if _, dup := seen[sc.Type]; dup {
			return domain.Catalog{}, fmt.Errorf("config: duplicate slot type %q", sc.Type)
		}
		seen[sc.Type] = struct{}{}

		slot, err := buildSlot(sc)
		if err != nil {
			return domain.Catalog{}, err
		}
		slots = append(slots, slot)
	}

	return domain.NewCatalog(slots), nil
}

func buildSlot(sc SlotConfig) (domain.TimeSlot, error) {
	name := sc.Name
	if name == "" {
		name = sc.Type
	}

	if sc.Start == "" && sc.End == "" {
		return domain.NewUntimedSlot(sc.Type, name), nil
	}
	if sc.Start == "" || sc.End == "" {
		return domain.TimeSlot{}, fmt.Errorf("config: slot %q must set both start and end or neither", sc.Type)
	}

	start, err := types.NewTimeStringFromString(sc.Start)
	if err != nil {
		return domain.TimeSlot{}, fmt.Errorf("config: slot %q start: %w", sc.Type, err)
	}
	end, err := types.NewTimeStringFromString(sc.End)
	if err != nil {
		return domain.TimeSlot{}, fmt.Errorf("config: slot %q end: %w", sc.Type, err)
	}

	startHour, startMinute, _ := start.Parts()
	endHour, endMinute, _ := end.Parts()

	slot, err := domain.NewTimedSlot(sc.Type, name, startHour, startMinute, endHour, endMinute)
	if err != nil {
		return domain.TimeSlot{}, fmt.Errorf("config: slot %q: %w", sc.Type, err)
	}
	return slot, nil
}
