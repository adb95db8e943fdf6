package telemetry

import (
	"sync"
	"sync/atomic"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"riftlane/server/internal/config"
)

// Metrics exposes the counter methods required by server components.
type Metrics interface {
	Add(key string, delta uint64)
	Store(key string, value uint64)
}

// Counters is the default Metrics implementation, an in-process registry of
// atomic counters keyed by name.
type Counters struct {
	values sync.Map // string -> *atomic.Uint64
}

// NewCounters returns an empty counter registry.
func NewCounters() *Counters {
	return &Counters{}
}

func (c *Counters) slot(key string) *atomic.Uint64 {
	if v, ok := c.values.Load(key); ok {
		return v.(*atomic.Uint64)
	}
	v, _ := c.values.LoadOrStore(key, new(atomic.Uint64))
	return v.(*atomic.Uint64)
}

// Add increments the named counter by delta.
func (c *Counters) Add(key string, delta uint64) {
	if c == nil {
		return
	}
	c.slot(key).Add(delta)
}

// Store overwrites the named counter, used for gauges such as queue depths.
func (c *Counters) Store(key string, value uint64) {
	if c == nil {
		return
	}
	c.slot(key).Store(value)
}

// Snapshot copies the current counter values.
func (c *Counters) Snapshot() map[string]uint64 {
	out := make(map[string]uint64)
	if c == nil {
		return out
	}
	c.values.Range(func(k, v any) bool {
		out[k.(string)] = v.(*atomic.Uint64).Load()
		return true
	})
	return out
}

type nopMetrics struct{}

func (nopMetrics) Add(string, uint64)   {}
func (nopMetrics) Store(string, uint64) {}

// Nop returns a Metrics that discards every update.
func Nop() Metrics {
	return nopMetrics{}
}

// NewLogger builds the process logger from the logging config. Unknown levels
// fall back to info rather than failing startup.
func NewLogger(cfg config.LoggingConfig) (*zap.Logger, error) {
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		level = zapcore.InfoLevel
	}

	var zapCfg zap.Config
	if cfg.Format == "json" {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
		zapCfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		zapCfg.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05")
		zapCfg.EncoderConfig.ConsoleSeparator = "  "
		zapCfg.DisableCaller = true
		zapCfg.DisableStacktrace = true
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)

	return zapCfg.Build()
}
