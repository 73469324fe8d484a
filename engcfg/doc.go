// Package engcfg resolves the environment-driven tunables that govern
// aggregation buffering and worker-pool sizing across the distributed BFS
// engine: destination buffer size, producer yield frequency, and
// per-locale worker count. There is no file-based configuration layer;
// engcfg.Load reads only the process environment via spf13/viper's
// AutomaticEnv, falling back to fixed defaults.
package engcfg
