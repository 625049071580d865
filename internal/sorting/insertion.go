package sorting

import (
	"iter"

	"github.com/san-kum/sortviz/internal/array"
	"github.com/san-kum/sortviz/internal/step"
)

// Insertion shifts the key down with adjacent swaps, then writes the key
// into its slot directly. The final write is an assignment, not a swap, and
// emits nothing. After each shift only the key's new slot stays marked.
func Insertion(a *array.Array) iter.Seq[step.Event] {
	return func(yield func(step.Event) bool) {
		n := a.Len()
		for i := 1; i < n; i++ {
			key := a.Get(i)
			j := i - 1
			if !yield(step.HighlightOf(i)) {
				return
			}
			for j >= 0 && a.Get(j) > key {
				a.Swap(j+1, j)
				if !yield(step.SwapOf(j+1, j)) || !yield(step.ResetOf(j+1, j+1)) {
					return
				}
				j--
			}
			a.Set(j+1, key)
			if !yield(step.ResetOf(j+1, i)) {
				return
			}
		}
	}
}
