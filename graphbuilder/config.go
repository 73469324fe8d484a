// SPDX-License-Identifier: MIT
// Package: bfs500/graphbuilder
//
// config.go — functional options for Build, resolved the same way the
// teacher resolves builder.BuilderOption/bfs.Option: a Config zero value
// seeded with defaults, then overridden one option at a time.

package graphbuilder

// defaultDigitWidth is the radix sort digit width in bits, per spec §4.3:
// "Digit width defaults to 16 bits."
const defaultDigitWidth = 16

// Config holds Build's tunables.
type Config struct {
	// DigitWidth is the radix sort's digit width in bits. Must divide 64
	// evenly for the pass count to be exact; 16 (4 passes), 8 (8 passes),
	// and 4 (16 passes) are the widths named in spec §4.3.
	DigitWidth int

	// Workers bounds the concurrency of Build's embarrassingly-parallel
	// passes (the self-loop and dedupe mask computations). Zero means
	// "use engcfg.Default().Workers".
	Workers int
}

// Option configures Build at call time.
type Option func(*Config)

// WithDigitWidth overrides the radix sort's digit width.
func WithDigitWidth(bits int) Option {
	return func(c *Config) { c.DigitWidth = bits }
}

// WithWorkers overrides the mask-computation worker pool size.
func WithWorkers(n int) Option {
	return func(c *Config) { c.Workers = n }
}

func resolveConfig(opts ...Option) Config {
	cfg := Config{DigitWidth: defaultDigitWidth}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}
