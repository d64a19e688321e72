package pure

import "go.uber.org/zap"

const defaultName = "cacher"

type config struct {
	name     string
	capacity int
	logger   *zap.Logger
}

// Option customizes a cacher at construction time.
type Option func(*config)

// WithName labels the cacher in log entries.
func WithName(name string) Option {
	return func(c *config) {
		c.name = name
	}
}

// WithCapacity pre-sizes the memo for the expected number of distinct inputs.
// It is a hint only; the memo still grows without bound.
func WithCapacity(n int) Option {
	return func(c *config) {
		c.capacity = n
	}
}

// WithLogger routes the cacher's debug entries to logger.
func WithLogger(logger *zap.Logger) Option {
	return func(c *config) {
		c.logger = logger
	}
}

func newConfig(opts []Option) config {
	cfg := config{}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	if cfg.name == "" {
		cfg.name = defaultName
	}
	if cfg.capacity < 0 {
		cfg.capacity = 0
	}
	if cfg.logger == nil {
		cfg.logger = zap.NewNop()
	}
	return cfg
}
