// Package aggregator implements the destination-side buffered communicator
// that batches many small remote frontier updates into few large coalesced
// transfers: enqueue (dstLocale, value) pairs with Put; once a
// per-destination buffer fills, it ships as one bulk transfer to that
// locale's inbound channel, where a dedicated receiver goroutine applies it
// through a caller-supplied Sink.
//
// The receiver-goroutine-per-locale design replaces the source engine's
// cooperative-yield deadlock-avoidance heuristic: instead of a producer
// voluntarily yielding so some other task can drain a destination's inbox,
// every locale has its own always-running consumer, decoupled from
// producers, so no producer is ever required to act as a consumer. The
// yield frequency knob survives as how often a producer yields the
// scheduler (runtime.Gosched) between puts, not as the deadlock-avoidance
// mechanism (see the module's design notes on replacing the yield counter).
package aggregator
