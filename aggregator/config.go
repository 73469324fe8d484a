// SPDX-License-Identifier: MIT
// Package: bfs500/aggregator
//
// config.go — functional options resolving an Aggregator's tunables, the
// same pattern the teacher uses for bfs.Option/builder.BuilderOption:
// zero-value-safe defaults, overridden one option at a time.

package aggregator

import "github.com/dgraphlabs/bfs500/engcfg"

// Config holds one aggregator instance's tunables.
type Config struct {
	// BufferCapacity is B: the per-destination local buffer size that
	// triggers a flush when full.
	BufferCapacity int
	// YieldFrequency is Y: how many puts to one destination buffer that do
	// not fill it elapse before the producer cooperatively yields the
	// scheduler.
	YieldFrequency int
}

// Option configures an Aggregator at construction time.
type Option func(*Config)

// WithBufferCapacity overrides the per-destination buffer capacity B.
func WithBufferCapacity(n int) Option {
	return func(c *Config) { c.BufferCapacity = n }
}

// WithYieldFrequency overrides the yield counter period Y.
func WithYieldFrequency(n int) Option {
	return func(c *Config) { c.YieldFrequency = n }
}

// WithEngineConfig seeds BufferCapacity and YieldFrequency from a resolved
// engcfg.Config, the normal way an aggregator picks up
// CHPL_AGGREGATION_DST_BUFF_SIZE/CHPL_AGGREGATION_YIELD_FREQUENCY.
func WithEngineConfig(cfg engcfg.Config) Option {
	return func(c *Config) {
		c.BufferCapacity = cfg.DstBuffSize
		c.YieldFrequency = cfg.YieldFrequency
	}
}

func resolveConfig(opts ...Option) Config {
	cfg := Config{
		BufferCapacity: engcfg.DefaultDstBuffSize,
		YieldFrequency: engcfg.DefaultYieldFrequency,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}
