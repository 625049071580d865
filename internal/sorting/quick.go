package sorting

import (
	"iter"

	"github.com/san-kum/sortviz/internal/array"
	"github.com/san-kum/sortviz/internal/step"
)

type span struct{ low, high int }

// Quick sorts with the Lomuto scheme. Pending ranges live on an explicit
// stack; the left range is pushed last so it is drained first, which keeps
// the event timeline identical to the recursive depth-first order.
func Quick(a *array.Array) iter.Seq[step.Event] {
	return func(yield func(step.Event) bool) {
		stack := []span{{0, a.Len() - 1}}
		for len(stack) > 0 {
			s := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if s.low >= s.high {
				continue
			}

			p, ok := partition(a, s.low, s.high, yield)
			if !ok {
				return
			}
			stack = append(stack, span{p + 1, s.high}, span{s.low, p - 1})
		}
	}
}

// partition emits one Compare per scanned element, so every iteration is
// paced whether or not it swaps. Marks are reset before the next element.
func partition(a *array.Array, low, high int, yield func(step.Event) bool) (int, bool) {
	pivot := a.Get(high)
	i := low - 1
	for j := low; j < high; j++ {
		if !yield(step.CompareOf(j, high)) {
			return 0, false
		}
		if a.Get(j) < pivot {
			i++
			// i == j would swap an element with itself.
			if i != j {
				a.Swap(i, j)
				if !yield(step.SwapOf(i, j)) || !yield(step.ResetOf(i, i)) {
					return 0, false
				}
			}
		}
		if !yield(step.ResetOf(j, high)) {
			return 0, false
		}
	}

	p := i + 1
	// An equal value already sits in the pivot's final slot.
	if a.Get(p) > pivot {
		a.Swap(p, high)
		if !yield(step.SwapOf(p, high)) || !yield(step.ResetOf(p, high)) {
			return 0, false
		}
	}
	return p, true
}
