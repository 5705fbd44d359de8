package config

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "SQUADSIM_"

// Simulation holds all configuration for a simulator invocation.
type Simulation struct {
	LogLevel string `yaml:"log_level" env:"LOG_LEVEL"`

	// Fight
	DurationSeconds float64 `yaml:"duration_seconds" env:"DURATION_SECONDS"`
	CritMode        string  `yaml:"crit_mode" env:"CRIT_MODE"` // expected | rolled
	Seed            uint64  `yaml:"seed" env:"SEED"`
	ShareRatio      float64 `yaml:"share_ratio" env:"SHARE_RATIO"`

	// Loadouts run concurrently, at most Parallelism at a time.
	Parallelism int `yaml:"parallelism" env:"PARALLELISM"`

	// Result store (optional)
	Database DatabaseConfig `yaml:"database" envPrefix:"DB_"`

	Enemy    EnemyConfig    `yaml:"enemy" envPrefix:"ENEMY_"`
	Rotation RotationConfig `yaml:"rotation" envPrefix:"ROTATION_"`
	Loadouts []Loadout      `yaml:"loadouts"`
}

// DatabaseConfig selects the result store. An empty driver disables it.
type DatabaseConfig struct {
	Driver string `yaml:"driver" env:"DRIVER"` // postgres | sqlite | ""

	// PostgreSQL
	Host     string `yaml:"host" env:"HOST"`
	Port     int    `yaml:"port" env:"PORT"`
	User     string `yaml:"user" env:"USER"`
	Password string `yaml:"password" env:"PASSWORD"`
	DBName   string `yaml:"dbname" env:"NAME"`
	SSLMode  string `yaml:"sslmode" env:"SSLMODE"`

	// SQLite
	Path string `yaml:"path" env:"PATH"`
}

// Enabled reports whether results should be stored.
func (d DatabaseConfig) Enabled() bool { return d.Driver != "" }

// DSN returns the connection string for the configured driver.
func (d DatabaseConfig) DSN() string {
	switch d.Driver {
	case "postgres":
		return fmt.Sprintf(
			"postgres://%s:%s@%s:%d/%s?sslmode=%s",
			d.User, d.Password, d.Host, d.Port, d.DBName, d.SSLMode,
		)
	case "sqlite":
		return "sqlite://" + d.Path
	}
	return ""
}

// EnemyConfig names the catalog target and optional overrides.
type EnemyConfig struct {
	Name      string             `yaml:"name" env:"NAME"`
	Level     int                `yaml:"level" env:"LEVEL"`
	Resist    map[string]float64 `yaml:"resist"`
	Aura      string             `yaml:"aura" env:"AURA"`
	AuraUnits float64            `yaml:"aura_units" env:"AURA_UNITS"`
}

// RotationConfig selects an external policy. Lua wins over Priority when
// both are set.
type RotationConfig struct {
	Priority map[string][]string `yaml:"priority"`
	Lua      string              `yaml:"lua" env:"LUA"` // script path
}

// DefaultSimulation returns Simulation config with sensible defaults.
func DefaultSimulation() Simulation {
	return Simulation{
		LogLevel:        "info",
		DurationSeconds: 90,
		CritMode:        "expected",
		Seed:            1,
		ShareRatio:      0.6,
		Parallelism:     4,
		Database: DatabaseConfig{
			Host:    "127.0.0.1",
			Port:    5432,
			User:    "squadsim",
			DBName:  "squadsim",
			SSLMode: "disable",
			Path:    "squadsim.db",
		},
		Enemy: EnemyConfig{Name: "Training Dummy"},
	}
}

// LoadSimulation loads config from a YAML file and then applies
// SQUADSIM_* environment overrides. If the file doesn't exist, the
// overrides apply to the defaults.
func LoadSimulation(path string) (Simulation, error) {
	cfg := DefaultSimulation()

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parsing config %s: %w", path, err)
		}
	case !os.IsNotExist(err):
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := applyEnv(&cfg); err != nil {
		return cfg, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// applyEnv overrides scalar settings from the environment. Loadouts are
// file-only and stay out of the env walk.
func applyEnv(cfg *Simulation) error {
	loadouts := cfg.Loadouts
	cfg.Loadouts = nil
	defer func() { cfg.Loadouts = loadouts }()
	return env.ParseWithOptions(cfg, env.Options{Prefix: EnvPrefix})
}
