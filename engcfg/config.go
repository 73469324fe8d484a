// SPDX-License-Identifier: MIT
// Package: bfs500/engcfg
//
// config.go — environment-driven tunables for the distributed BFS engine.
//
// engcfg.Load reads three knobs, all optional, all environment-only (no
// config file — there is no persistence layer in this system):
//
//	CHPL_AGGREGATION_DST_BUFF_SIZE    — per-destination aggregator buffer
//	                                     capacity, in elements. Default 4096.
//	CHPL_AGGREGATION_YIELD_FREQUENCY  — how many puts to one destination
//	                                     a producer makes before yielding
//	                                     the scheduler. Default 1024.
//	LVLATH_BFS_WORKERS                — size of each locale's task-parallel
//	                                     worker pool. Default runtime.NumCPU().
//
// Loaded once at process start and passed explicitly to the packages that
// need it (locale.Registry, aggregator.Aggregator); there is no package-level
// global holding the resolved Config, in keeping with the teacher's
// no-hidden-globals discipline.
package engcfg

import (
	"fmt"
	"runtime"

	"github.com/spf13/viper"
)

// Default tunable values, used when the corresponding environment variable
// is unset or empty.
const (
	DefaultDstBuffSize     = 4096
	DefaultYieldFrequency  = 1024
	envDstBuffSize         = "CHPL_AGGREGATION_DST_BUFF_SIZE"
	envYieldFrequency      = "CHPL_AGGREGATION_YIELD_FREQUENCY"
	envWorkers             = "LVLATH_BFS_WORKERS"
	minDstBuffSize         = 1
	minYieldFrequency      = 1
	minWorkers             = 1
)

// Config holds the resolved tunables for one engine run.
type Config struct {
	// DstBuffSize is the per-destination aggregator buffer capacity.
	DstBuffSize int
	// YieldFrequency is how many puts to one destination elapse between
	// scheduler yields.
	YieldFrequency int
	// Workers is the size of each locale's task-parallel worker pool.
	Workers int
}

// Load resolves a Config from the process environment via viper's
// AutomaticEnv, falling back to documented defaults for unset variables.
// Load never reads a config file.
//
// Returns ErrInvalidTunable if an environment variable is set but is not a
// positive integer.
func Load() (Config, error) {
	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault(envDstBuffSize, DefaultDstBuffSize)
	v.SetDefault(envYieldFrequency, DefaultYieldFrequency)
	v.SetDefault(envWorkers, runtime.NumCPU())

	dstBuff := v.GetInt(envDstBuffSize)
	if dstBuff < minDstBuffSize {
		return Config{}, fmt.Errorf("engcfg: %s=%d: %w", envDstBuffSize, dstBuff, ErrInvalidTunable)
	}

	yieldFreq := v.GetInt(envYieldFrequency)
	if yieldFreq < minYieldFrequency {
		return Config{}, fmt.Errorf("engcfg: %s=%d: %w", envYieldFrequency, yieldFreq, ErrInvalidTunable)
	}

	workers := v.GetInt(envWorkers)
	if workers < minWorkers {
		return Config{}, fmt.Errorf("engcfg: %s=%d: %w", envWorkers, workers, ErrInvalidTunable)
	}

	return Config{
		DstBuffSize:    dstBuff,
		YieldFrequency: yieldFreq,
		Workers:        workers,
	}, nil
}

// Default returns a Config populated entirely with documented defaults,
// ignoring the environment. Useful for tests that want deterministic
// tunables regardless of the test runner's environment.
func Default() Config {
	return Config{
		DstBuffSize:    DefaultDstBuffSize,
		YieldFrequency: DefaultYieldFrequency,
		Workers:        runtime.NumCPU(),
	}
}
