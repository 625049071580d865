package sorting

import (
	"iter"

	"github.com/san-kum/sortviz/internal/array"
	"github.com/san-kum/sortviz/internal/step"
)

func Bubble(a *array.Array) iter.Seq[step.Event] {
	return func(yield func(step.Event) bool) {
		n := a.Len()
		for i := 0; i < n-1; i++ {
			for j := 0; j < n-1-i; j++ {
				if !yield(step.CompareOf(j, j+1)) {
					return
				}
				if a.Less(j+1, j) {
					a.Swap(j, j+1)
					if !yield(step.SwapOf(j, j+1)) {
						return
					}
				}
				if !yield(step.ResetOf(j, j+1)) {
					return
				}
			}
		}
	}
}
