// SPDX-License-Identifier: MIT
// Package: bfs500/bfskernel
//
// config.go — functional options for the BFS kernels, resolved the same
// way as every other package in this module: a Config zero value seeded
// with defaults, then overridden one option at a time.

package bfskernel

import (
	"github.com/dgraphlabs/bfs500/aggregator"
	"github.com/dgraphlabs/bfs500/engcfg"
)

// Config holds a kernel call's tunables.
type Config struct {
	// Workers bounds the task-parallel pool each iteration's frontier
	// expansion runs on; one pool of this size is shared by all locales of
	// the call. Zero means "use engcfg.Default().Workers".
	Workers int

	// AggregatorOptions is forwarded verbatim to aggregator.New for the
	// aggregated kernels; ignored by the non-aggregated reference forms.
	AggregatorOptions []aggregator.Option
}

// Option configures a kernel call at call time.
type Option func(*Config)

// WithWorkers overrides the per-locale worker pool size.
func WithWorkers(n int) Option {
	return func(c *Config) { c.Workers = n }
}

// WithAggregatorOptions forwards options to the aggregated kernels'
// underlying aggregator.New calls (e.g. aggregator.WithBufferCapacity).
func WithAggregatorOptions(opts ...aggregator.Option) Option {
	return func(c *Config) { c.AggregatorOptions = append(c.AggregatorOptions, opts...) }
}

func resolveConfig(opts ...Option) Config {
	cfg := Config{Workers: engcfg.Default().Workers}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.Workers < 1 {
		cfg.Workers = engcfg.Default().Workers
	}
	return cfg
}
