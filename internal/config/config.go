package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

var ErrInvalid = errors.New("invalid config")

// LifeSim holds all configuration for the batch simulator.
type LifeSim struct {
	LogLevel string `yaml:"log_level"`

	// MetricsAddr serves /metrics when set.
	MetricsAddr string `yaml:"metrics_addr"`

	// Database stores finished runs. Disabled keeps saves in memory.
	Database DatabaseConfig `yaml:"database"`

	Simulation Simulation `yaml:"simulation"`

	// ShutdownTimeout bounds the metrics server drain.
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

// Simulation configures the autoplayed runs.
type Simulation struct {
	Runs         int    `yaml:"runs"`
	Seed         int64  `yaml:"seed"`          // run i uses Seed+i
	MaxTurns     int    `yaml:"max_turns"`     // safety cap per run
	StartingPath string `yaml:"starting_path"` // empty rotates through every path
	PlayerName   string `yaml:"player_name"`
	Parallelism  int    `yaml:"parallelism"`
}

// DatabaseConfig holds PostgreSQL connection parameters.
type DatabaseConfig struct {
	Enabled  bool   `yaml:"enabled"`
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	DBName   string `yaml:"dbname"`
	SSLMode  string `yaml:"sslmode"`
}

// DSN returns the PostgreSQL connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.DBName, d.SSLMode,
	)
}

// DefaultLifeSim returns LifeSim config with sensible defaults.
func DefaultLifeSim() LifeSim {
	return LifeSim{
		LogLevel:    "info",
		MetricsAddr: "",
		Database: DatabaseConfig{
			Host:     "127.0.0.1",
			Port:     5432,
			User:     "lifesim",
			Password: "lifesim",
			DBName:   "lifesim",
			SSLMode:  "disable",
		},
		Simulation: Simulation{
			Runs:        100,
			Seed:        1,
			MaxTurns:    10000,
			PlayerName:  "Dev",
			Parallelism: 4,
		},
		ShutdownTimeout: 5 * time.Second,
	}
}

// Validate checks the values the simulator cannot run without.
func (c LifeSim) Validate() error {
	sim := c.Simulation
	switch {
	case sim.Runs < 1:
		return fmt.Errorf("%w: simulation.runs must be positive, got %d", ErrInvalid, sim.Runs)
	case sim.MaxTurns < 1:
		return fmt.Errorf("%w: simulation.max_turns must be positive, got %d", ErrInvalid, sim.MaxTurns)
	case sim.Parallelism < 1:
		return fmt.Errorf("%w: simulation.parallelism must be positive, got %d", ErrInvalid, sim.Parallelism)
	}
	return nil
}

// LoadLifeSim loads simulator config from a YAML file.
// If the file doesn't exist, returns defaults.
func LoadLifeSim(path string) (LifeSim, error) {
	cfg := DefaultLifeSim()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}

	return cfg, nil
}
