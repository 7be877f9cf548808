package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/lixenwraith/gatewarp/engine"
	"github.com/lixenwraith/gatewarp/galaxy"
	"github.com/lixenwraith/gatewarp/parameter"
)

type Config struct {
	Simulation SimulationConfig
	Warp       WarpConfig
	Galaxy     GalaxyConfig
	Logging    LoggingConfig
}

type SimulationConfig struct {
	TickInterval time.Duration
	Workers      int
	Seed         uint64
	Strict       bool
}

type WarpConfig struct {
	Speed          float64
	TriggerMeters  float64
	RampUnitMeters float64
}

type GalaxyConfig struct {
	// File is a YAML layout; empty selects the built-in demo galaxy
	File     string
	TieBreak galaxy.TieBreak
}

type LoggingConfig struct {
	Level  string
	Format string
}

// Load reads .env if present, then the environment, and validates the result
func Load() (*Config, error) {
	// A missing .env is normal outside development
	_ = godotenv.Load()

	cfg, err := load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func load() (*Config, error) {
	var errs []error
	collect := func(err error) {
		if err != nil {
			errs = append(errs, err)
		}
	}

	tickMs, err := envInt("GATEWARP_TICK_MS", int(parameter.GameUpdateInterval/time.Millisecond))
	collect(err)
	workers, err := envInt("GATEWARP_WORKERS", parameter.DefaultWorkers)
	collect(err)
	seed, err := envUint("GATEWARP_SEED", 1)
	collect(err)
	strict, err := envBool("GATEWARP_STRICT", false)
	collect(err)
	speed, err := envFloat("GATEWARP_WARP_SPEED", parameter.DefaultWarpSpeed)
	collect(err)
	trigger, err := envFloat("GATEWARP_WARP_TRIGGER_M", parameter.WarpTriggerMeters)
	collect(err)
	tieBreak, err := parseTieBreak(getEnv("GATEWARP_TIE_BREAK", "registration"))
	collect(err)

	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}

	return &Config{
		Simulation: SimulationConfig{
			TickInterval: time.Duration(tickMs) * time.Millisecond,
			Workers:      workers,
			Seed:         seed,
			Strict:       strict,
		},
		Warp: WarpConfig{
			Speed:          speed,
			TriggerMeters:  trigger,
			RampUnitMeters: parameter.WarpRampUnitMeters,
		},
		Galaxy: GalaxyConfig{
			File:     getEnv("GATEWARP_GALAXY_FILE", ""),
			TieBreak: tieBreak,
		},
		Logging: LoggingConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "text"),
		},
	}, nil
}

// Validate rejects settings the simulation cannot run with
func (c *Config) Validate() error {
	if c.Simulation.TickInterval <= 0 {
		return fmt.Errorf("GATEWARP_TICK_MS must be positive, got %v", c.Simulation.TickInterval)
	}
	if c.Simulation.Workers < 0 {
		return fmt.Errorf("GATEWARP_WORKERS must not be negative, got %d", c.Simulation.Workers)
	}
	if !(c.Warp.Speed > 0) {
		return fmt.Errorf("GATEWARP_WARP_SPEED must be positive, got %g", c.Warp.Speed)
	}
	if err := parameter.ValidateWarpTrigger(c.Warp.TriggerMeters, c.Warp.RampUnitMeters); err != nil {
		return fmt.Errorf("GATEWARP_WARP_TRIGGER_M: %w", err)
	}
	switch c.Logging.Format {
	case "text", "json":
	default:
		return fmt.Errorf("LOG_FORMAT must be text or json, got %q", c.Logging.Format)
	}
	return nil
}

// ToResource converts the loaded settings into the world's config resource
func (c *Config) ToResource() *engine.ConfigResource {
	return &engine.ConfigResource{
		Strict:             c.Simulation.Strict,
		Workers:            c.Simulation.Workers,
		WarpSpeed:          c.Warp.Speed,
		WarpTrigger:        galaxy.MetersToSystem(c.Warp.TriggerMeters),
		WarpRampUnitMeters: c.Warp.RampUnitMeters,
		TieBreak:           c.Galaxy.TieBreak,
	}
}

func parseTieBreak(s string) (galaxy.TieBreak, error) {
	switch strings.ToLower(s) {
	case "registration", "":
		return galaxy.TieBreakRegistration, nil
	case "lowest_handle", "lowest-handle":
		return galaxy.TieBreakLowestHandle, nil
	default:
		return 0, fmt.Errorf("GATEWARP_TIE_BREAK: unknown value %q", s)
	}
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) (int, error) {
	v := getEnv(key, "")
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return n, nil
}

func envUint(key string, fallback uint64) (uint64, error) {
	v := getEnv(key, "")
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.ParseUint(v, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return n, nil
}

func envFloat(key string, fallback float64) (float64, error) {
	v := getEnv(key, "")
	if v == "" {
		return fallback, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return f, nil
}

func envBool(key string, fallback bool) (bool, error) {
	v := getEnv(key, "")
	if v == "" {
		return fallback, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("%s: %w", key, err)
	}
	return b, nil
}
