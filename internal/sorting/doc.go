// Package sorting implements the five instrumented sorting strategies.
//
// Each [Strategy] turns an [array.Array] into a lazy sequence of
// [step.Event] values. Nothing moves until the consumer pulls the first
// event, and the strategy is suspended between pulls, so a scheduler fully
// controls pacing:
//
//	seq := sorting.Bubble(array.New(values))
//	for e := range seq {
//	    render(e)
//	}
//
// Comparisons are strict: equal values are never swapped. Strategies never
// emit [step.Sorted]; the session appends it once per run.
package sorting
