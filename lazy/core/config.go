package core

// SinkConfig holds configuration options for the materialization sinks.
type SinkConfig struct {
	// Capacity is the initial capacity of the slice built by Collect.
	Capacity int
}

// Option is a functional option for configuring sinks.
type Option func(*SinkConfig)

// WithCapacity preallocates room for n elements in the collected slice.
// Useful when the caller knows an upper bound, e.g. after a Take.
// Negative values are ignored.
func WithCapacity(n int) Option {
	return func(c *SinkConfig) {
		c.Capacity = max(n, 0)
	}
}

// applyOptions applies functional options to a zero config.
func applyOptions(opts ...Option) SinkConfig {
	var cfg SinkConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}
