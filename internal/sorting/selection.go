package sorting

import (
	"iter"

	"github.com/san-kum/sortviz/internal/array"
	"github.com/san-kum/sortviz/internal/step"
)

func Selection(a *array.Array) iter.Seq[step.Event] {
	return func(yield func(step.Event) bool) {
		n := a.Len()
		for i := 0; i < n-1; i++ {
			minIndex := i
			if !yield(step.HighlightOf(i)) {
				return
			}
			for j := i + 1; j < n; j++ {
				compared := minIndex
				if !yield(step.CompareOf(compared, j)) {
					return
				}
				if a.Less(j, minIndex) {
					minIndex = j
				}
				// i stays marked for the whole pass.
				if compared == i {
					compared = j
				}
				if !yield(step.ResetOf(compared, j)) {
					return
				}
			}
			if minIndex != i {
				a.Swap(i, minIndex)
				if !yield(step.SwapOf(i, minIndex)) {
					return
				}
			}
			if !yield(step.ResetOf(i, minIndex)) {
				return
			}
		}
	}
}
