// File: executor/options.go
// Package executor defines functional options for Collection and Resolver.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package executor

import (
	"github.com/rs/zerolog"

	"github.com/momentics/hioload-exec/control"
)

// Counter keys recorded when a registry is wired via WithMetrics.
const (
	MetricRebuilds       = "rebuilds"
	MetricIndexed        = "indexed"
	MetricAdmitted       = "admitted"
	MetricSkippedDead    = "skipped_dead"
	MetricSkippedGroup   = "skipped_group"
	MetricTimerClaimLost = "timer_claim_lost"
)

type config struct {
	log     zerolog.Logger
	metrics *control.MetricsRegistry
}

func newConfig(opts []Option) config {
	cfg := config{log: zerolog.Nop()}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// Option customizes Collection or Resolver construction.
type Option func(*config)

// WithLogger attaches a debug logger. Only per-pass summaries are logged;
// the per-handle path stays silent.
func WithLogger(l zerolog.Logger) Option {
	return func(c *config) {
		c.log = l
	}
}

// WithMetrics attaches a metrics registry for pass counters.
func WithMetrics(mr *control.MetricsRegistry) Option {
	return func(c *config) {
		c.metrics = mr
	}
}
