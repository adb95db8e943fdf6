package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadDefaultsWhenFileMissing(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Server.Port != 8080 {
		t.Fatalf("default port = %d, want 8080", cfg.Server.Port)
	}
	if cfg.Server.PlayersPerTeam != 1 {
		t.Fatalf("default players_per_team = %d, want 1", cfg.Server.PlayersPerTeam)
	}
	if cfg.Simulation.TickRate != 30 {
		t.Fatalf("default tick_rate = %d, want 30", cfg.Simulation.TickRate)
	}
	if cfg.Replication.StaleTickThreshold != 72 {
		t.Fatalf("default stale_tick_threshold = %d, want 72", cfg.Replication.StaleTickThreshold)
	}
}

func TestLoadFileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "server.toml")
	body := `
[server]
port = 9999
players_per_team = 3

[simulation]
tick_rate = 20

[logging]
level = "debug"
`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Server.Port != 9999 {
		t.Fatalf("port = %d, want 9999", cfg.Server.Port)
	}
	if cfg.Server.PlayersPerTeam != 3 {
		t.Fatalf("players_per_team = %d, want 3", cfg.Server.PlayersPerTeam)
	}
	if cfg.Simulation.TickRate != 20 {
		t.Fatalf("tick_rate = %d, want 20", cfg.Simulation.TickRate)
	}
	if cfg.Logging.Level != "debug" {
		t.Fatalf("log level = %q, want debug", cfg.Logging.Level)
	}
	if cfg.Replication.MaxRetries != 10 {
		t.Fatalf("untouched default max_retries = %d, want 10", cfg.Replication.MaxRetries)
	}
}

func TestEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "server.toml")
	if err := os.WriteFile(path, []byte("[server]\nport = 9000\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("PORT", "7777")
	t.Setenv("PLAYERS_PER_TEAM", "5")
	t.Setenv("LOG_LEVEL", "warn")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Server.Port != 7777 {
		t.Fatalf("port = %d, want env override 7777", cfg.Server.Port)
	}
	if cfg.Server.PlayersPerTeam != 5 {
		t.Fatalf("players_per_team = %d, want 5", cfg.Server.PlayersPerTeam)
	}
	if cfg.Logging.Level != "warn" {
		t.Fatalf("log level = %q, want warn", cfg.Logging.Level)
	}
}

func TestLoadRejectsBadValues(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{"port", "[server]\nport = 70000\n"},
		{"team size", "[server]\nplayers_per_team = 9\n"},
		{"tick rate", "[simulation]\ntick_rate = 0\n"},
		{"log level", "[logging]\nlevel = \"verbose\"\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "server.toml")
			if err := os.WriteFile(path, []byte(tc.body), 0o644); err != nil {
				t.Fatal(err)
			}
			if _, err := Load(path); err == nil {
				t.Fatal("Load accepted invalid config")
			}
		})
	}
}

func TestEnvRejectsNonNumericPort(t *testing.T) {
	t.Setenv("PORT", "not-a-port")
	if _, err := Load(""); err == nil {
		t.Fatal("Load accepted non-numeric PORT")
	}
}

func TestTickIntervalAndDt(t *testing.T) {
	sim := SimulationConfig{TickRate: 30}
	if got := sim.TickInterval(); got != time.Second/30 {
		t.Fatalf("TickInterval = %v, want %v", got, time.Second/30)
	}
	if got := sim.Dt(); got != 1.0/30.0 {
		t.Fatalf("Dt = %v, want %v", got, 1.0/30.0)
	}
}
