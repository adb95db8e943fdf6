package telemetry

import (
	"testing"

	"riftlane/server/internal/config"
)

func TestCountersAddAndStore(t *testing.T) {
	c := NewCounters()
	c.Add("inputs_dropped", 1)
	c.Add("inputs_dropped", 2)
	c.Store("rooms_active", 7)

	snap := c.Snapshot()
	if snap["inputs_dropped"] != 3 {
		t.Fatalf("inputs_dropped = %d, want 3", snap["inputs_dropped"])
	}
	if snap["rooms_active"] != 7 {
		t.Fatalf("rooms_active = %d, want 7", snap["rooms_active"])
	}
}

func TestCountersStoreOverwrites(t *testing.T) {
	c := NewCounters()
	c.Store("rooms_active", 3)
	c.Store("rooms_active", 1)
	if got := c.Snapshot()["rooms_active"]; got != 1 {
		t.Fatalf("rooms_active = %d, want 1", got)
	}
}

func TestNilCountersAreSafe(t *testing.T) {
	var c *Counters
	c.Add("x", 1)
	c.Store("y", 2)
	if len(c.Snapshot()) != 0 {
		t.Fatal("nil Counters snapshot should be empty")
	}
}

func TestNopMetricsDiscards(t *testing.T) {
	m := Nop()
	m.Add("anything", 5)
	m.Store("anything", 5)
}

func TestNewLoggerBuildsForEveryLevel(t *testing.T) {
	for _, level := range []string{"debug", "info", "warn", "error", "bogus"} {
		logger, err := NewLogger(config.LoggingConfig{Level: level, Format: "json"})
		if err != nil {
			t.Fatalf("NewLogger(%q) error: %v", level, err)
		}
		logger.Sync()
	}
}

func TestNewLoggerConsoleFormat(t *testing.T) {
	logger, err := NewLogger(config.LoggingConfig{Level: "info", Format: "console"})
	if err != nil {
		t.Fatalf("NewLogger console error: %v", err)
	}
	logger.Sync()
}
