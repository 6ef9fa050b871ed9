package observe

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/lguimbarda/min-lazy/lazy/core"
)

// Metric names recorded by Meter.
const (
	ReadsMetric     = "lazy.cursor.reads"
	AdvancesMetric  = "lazy.cursor.advances"
	ExhaustedMetric = "lazy.cursor.exhausted"
)

// NameKey is the attribute set by WithName.
const NameKey = attribute.Key("lazy.cursor.name")

type meterConfig struct {
	attrs []attribute.KeyValue
}

// MeterOption configures Meter.
type MeterOption func(*meterConfig)

// WithName labels every measurement with the cursor name.
func WithName(name string) MeterOption {
	return func(cfg *meterConfig) {
		cfg.attrs = append(cfg.attrs, NameKey.String(name))
	}
}

// WithAttributes adds attributes to every measurement.
func WithAttributes(attrs ...attribute.KeyValue) MeterOption {
	return func(cfg *meterConfig) {
		cfg.attrs = append(cfg.attrs, attrs...)
	}
}

// Meter wraps parent so that reads, advances and exhaustion are counted with
// OpenTelemetry Int64 counters created from meter. ctx is used for every
// measurement. An error is returned if an instrument cannot be created.
func Meter[T any](ctx context.Context, parent core.Cursor[T], meter metric.Meter, opts ...MeterOption) (*WatchCursor[T], error) {
	cfg := &meterConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	reads, err := meter.Int64Counter(ReadsMetric,
		metric.WithDescription("Number of elements read from the cursor"),
		metric.WithUnit("{read}"))
	if err != nil {
		return nil, fmt.Errorf("observe: creating %s counter: %w", ReadsMetric, err)
	}
	advances, err := meter.Int64Counter(AdvancesMetric,
		metric.WithDescription("Number of times the cursor was advanced"),
		metric.WithUnit("{advance}"))
	if err != nil {
		return nil, fmt.Errorf("observe: creating %s counter: %w", AdvancesMetric, err)
	}
	exhausted, err := meter.Int64Counter(ExhaustedMetric,
		metric.WithDescription("Number of cursors that ran out of elements"),
		metric.WithUnit("{cursor}"))
	if err != nil {
		return nil, fmt.Errorf("observe: creating %s counter: %w", ExhaustedMetric, err)
	}

	set := metric.WithAttributeSet(attribute.NewSet(cfg.attrs...))
	return Watch(parent, Hooks[T]{
		OnRead:      func(T) { reads.Add(ctx, 1, set) },
		OnAdvance:   func() { advances.Add(ctx, 1, set) },
		OnExhausted: func() { exhausted.Add(ctx, 1, set) },
	}), nil
}
