package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/BurntSushi/toml"
)

// Config aggregates every tunable the server reads at startup.
type Config struct {
	Server      ServerConfig      `toml:"server"`
	Simulation  SimulationConfig  `toml:"simulation"`
	Replication ReplicationConfig `toml:"replication"`
	RateLimit   RateLimitConfig   `toml:"rate_limit"`
	Content     ContentConfig     `toml:"content"`
	Logging     LoggingConfig     `toml:"logging"`
}

type ServerConfig struct {
	Port           int           `toml:"port"`
	PlayersPerTeam int           `toml:"players_per_team"`
	IdleTimeout    time.Duration `toml:"idle_timeout"`
	WriteTimeout   time.Duration `toml:"write_timeout"`
	EgressQueue    int           `toml:"egress_queue"`
	// A connection exceeding this many malformed frames is closed.
	MalformedFrameLimit int `toml:"malformed_frame_limit"`
}

type SimulationConfig struct {
	TickRate    int `toml:"tick_rate"`
	IngressSize int `toml:"ingress_size"`
	// CatchupMaxTicks clamps dt when the loop falls behind.
	CatchupMaxTicks int `toml:"catchup_max_ticks"`
}

type ReplicationConfig struct {
	StaleTickThreshold    int     `toml:"stale_tick_threshold"`
	MaxTicksWithoutUpdate int     `toml:"max_ticks_without_update"`
	CriticalDistance      float64 `toml:"critical_distance"`
	HighDistance          float64 `toml:"high_distance"`
	MediumDistance        float64 `toml:"medium_distance"`
	RetryIntervalTicks    int     `toml:"retry_interval_ticks"`
	MaxRetries            int     `toml:"max_retries"`
	EventQueueCap         int     `toml:"event_queue_cap"`
}

type RateLimitConfig struct {
	// PerType overrides the per-second budget for individual input types.
	PerType map[string]int `toml:"per_type"`
	Default int            `toml:"default"`
}

type ContentConfig struct {
	// Dir points at a directory of YAML tables overlaying the built-in
	// content. Empty means built-ins only.
	Dir string `toml:"dir"`
	Map string `toml:"map"`
}

type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // "json" or "console"
}

// TickInterval returns the wall duration of one simulation tick.
func (c SimulationConfig) TickInterval() time.Duration {
	rate := c.TickRate
	if rate <= 0 {
		rate = 30
	}
	return time.Second / time.Duration(rate)
}

// Dt returns the fixed per-tick timestep in seconds.
func (c SimulationConfig) Dt() float64 {
	rate := c.TickRate
	if rate <= 0 {
		rate = 30
	}
	return 1.0 / float64(rate)
}

// Load reads the TOML file at path over the defaults and applies environment
// overrides. An empty path skips the file and returns defaults plus env.
func Load(path string) (*Config, error) {
	cfg := defaults()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			if !os.IsNotExist(err) {
				return nil, fmt.Errorf("read config %s: %w", path, err)
			}
		} else if err := toml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}
	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func defaults() *Config {
	return &Config{
		Server: ServerConfig{
			Port:                8080,
			PlayersPerTeam:      1,
			IdleTimeout:         2 * time.Minute,
			WriteTimeout:        10 * time.Second,
			EgressQueue:         64,
			MalformedFrameLimit: 10,
		},
		Simulation: SimulationConfig{
			TickRate:        30,
			IngressSize:     256,
			CatchupMaxTicks: 4,
		},
		Replication: ReplicationConfig{
			StaleTickThreshold:    72,
			MaxTicksWithoutUpdate: 30,
			CriticalDistance:      500,
			HighDistance:          1000,
			MediumDistance:        1500,
			RetryIntervalTicks:    10,
			MaxRetries:            10,
			EventQueueCap:         100,
		},
		RateLimit: RateLimitConfig{
			Default: 10,
		},
		Content: ContentConfig{
			Map: "summoners-rift",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

func (c *Config) applyEnv() error {
	if raw := os.Getenv("PORT"); raw != "" {
		port, err := strconv.Atoi(raw)
		if err != nil {
			return fmt.Errorf("invalid PORT=%q: %w", raw, err)
		}
		c.Server.Port = port
	}
	if raw := os.Getenv("PLAYERS_PER_TEAM"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return fmt.Errorf("invalid PLAYERS_PER_TEAM=%q: %w", raw, err)
		}
		c.Server.PlayersPerTeam = n
	}
	if raw := os.Getenv("LOG_LEVEL"); raw != "" {
		c.Logging.Level = raw
	}
	return nil
}

func (c *Config) validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("config: port %d out of range", c.Server.Port)
	}
	if c.Server.PlayersPerTeam < 1 || c.Server.PlayersPerTeam > 5 {
		return fmt.Errorf("config: players_per_team %d out of range [1,5]", c.Server.PlayersPerTeam)
	}
	if c.Simulation.TickRate < 1 || c.Simulation.TickRate > 128 {
		return fmt.Errorf("config: tick_rate %d out of range [1,128]", c.Simulation.TickRate)
	}
	switch c.Logging.Level {
	case "error", "warn", "info", "debug":
	default:
		return fmt.Errorf("config: unknown log level %q", c.Logging.Level)
	}
	return nil
}
