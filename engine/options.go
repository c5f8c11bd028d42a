package engine

import (
	"fmt"
	"time"

	"go.uber.org/zap"
)

// ============================================================================
// ENGINE OPTIONS — Functional options for Generate()
// ============================================================================

// Option configures engine behavior via functional options.
type Option func(*config)

type config struct {
	preferredType string
	logger        *zap.Logger
	idSource      func() string
}

// WithPreferredChartType requests a chart type explicitly. Recognized values
// run through the alias table (column → bar, scatter/dots/bubble → point,
// stacked bar → stacked-bar, ...); unrecognized values and "auto" leave the
// inferred type untouched.
func WithPreferredChartType(chartType string) Option {
	return func(c *config) {
		c.preferredType = chartType
	}
}

// WithLogger attaches a logger for debug-level pipeline traces. The engine
// never logs above debug; the default is a nop logger.
func WithLogger(logger *zap.Logger) Option {
	return func(c *config) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithIDSource overrides the display-id generator embedded in the
// specification. The default derives an id from the current time and is not
// stable across calls; inject a fixed source for deterministic output.
func WithIDSource(source func() string) Option {
	return func(c *config) {
		if source != nil {
			c.idSource = source
		}
	}
}

func applyOptions(opts []Option) *config {
	cfg := &config{
		logger: zap.NewNop(),
		idSource: func() string {
			return fmt.Sprintf("chat-%d", time.Now().UnixMilli())
		},
	}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}
