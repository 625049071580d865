// Package viz provides the terminal visualizer for sorting runs.
//
// The package implements an interactive TUI using the Bubble Tea framework.
// Each element is drawn as a vertical bar whose height encodes its value,
// and bars are recolored as the running strategy compares, swaps and
// finishes. The app pulls one event per tick; paced events schedule the next
// tick after the current delay, so changing the speed mid-run takes effect
// on the following event.
//
// # Key Bindings
//
//	g       - Generate a new array
//	enter/s - Start the selected algorithm
//	tab/l   - Next algorithm
//	h       - Previous algorithm
//	+/-     - Faster/slower
//	r       - Cycle array shape
//	t       - Cycle color themes
//	?       - Toggle full help
//	q       - Quit
package viz
