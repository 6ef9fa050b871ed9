package observe

import (
	"github.com/rs/zerolog"

	"github.com/lguimbarda/min-lazy/lazy/core"
)

type logConfig struct {
	level  zerolog.Level
	fields map[string]any
	values bool
}

// LogOption configures Log.
type LogOption func(*logConfig)

// WithLevel sets the level of the events. The default is debug.
func WithLevel(level zerolog.Level) LogOption {
	return func(cfg *logConfig) {
		cfg.level = level
	}
}

// WithField adds a field to every event.
func WithField(key string, value any) LogOption {
	return func(cfg *logConfig) {
		cfg.fields[key] = value
	}
}

// WithValues also logs an event with the value on every read.
func WithValues() LogOption {
	return func(cfg *logConfig) {
		cfg.values = true
	}
}

// Log wraps parent so that its advances and exhaustion are logged to logger.
// Each advance event carries the position moved to; the exhaustion event
// carries the total number of advances.
func Log[T any](parent core.Cursor[T], logger zerolog.Logger, opts ...LogOption) *WatchCursor[T] {
	cfg := &logConfig{level: zerolog.DebugLevel, fields: map[string]any{}}
	for _, opt := range opts {
		opt(cfg)
	}
	logger = logger.With().Fields(cfg.fields).Logger()

	position := 0
	hooks := Hooks[T]{
		OnAdvance: func() {
			position++
			logger.WithLevel(cfg.level).Int("position", position).Msg("cursor advanced")
		},
		OnExhausted: func() {
			logger.WithLevel(cfg.level).Int("advances", position).Msg("cursor exhausted")
		},
	}
	if cfg.values {
		hooks.OnRead = func(v T) {
			logger.WithLevel(cfg.level).Int("position", position).Interface("value", v).Msg("cursor read")
		}
	}
	return Watch(parent, hooks)
}
