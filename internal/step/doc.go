// Package step defines the visual event stream produced by sorting strategies
// and the primitives that pace it.
//
// A strategy yields [Event] values one at a time. A scheduler pulls them,
// hands each to an [Emitter] and, for paced kinds, waits [Delay] before
// pulling the next one:
//
//   - [Event], [Kind]: compare, swap, reset, highlight, render and sorted moments
//   - [Emitter]: the sink a renderer implements
//   - [Speed]: the operator's speed factor, readable while a run is delaying
//   - [Player]: the timer-driven scheduler
//
// # Ordering
//
// Events reach the emitter in exactly the order they were produced and never
// overlap: the next event is not produced until the previous delay elapsed.
package step
