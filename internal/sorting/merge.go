package sorting

import (
	"iter"

	"github.com/san-kum/sortviz/internal/array"
	"github.com/san-kum/sortviz/internal/step"
)

// Merge sorts a snapshot and writes the result back in one step. It emits a
// single Render once the array holds the sorted values, and nothing while
// merging.
func Merge(a *array.Array) iter.Seq[step.Event] {
	return func(yield func(step.Event) bool) {
		n := a.Len()
		if n < 2 {
			return
		}

		values := a.Snapshot()
		buf := make([]int, n)
		mergeSort(values, buf, 0, n)
		a.Replace(values)

		yield(step.RenderAll())
	}
}

// mergeSort sorts values[low:high] using buf as scratch space.
func mergeSort(values, buf []int, low, high int) {
	if high-low < 2 {
		return
	}
	mid := low + (high-low)/2
	mergeSort(values, buf, low, mid)
	mergeSort(values, buf, mid, high)
	merge(values, buf, low, mid, high)
}

func merge(values, buf []int, low, mid, high int) {
	l, r, k := low, mid, low
	for l < mid && r < high {
		if values[l] < values[r] {
			buf[k] = values[l]
			l++
		} else {
			buf[k] = values[r]
			r++
		}
		k++
	}
	k += copy(buf[k:], values[l:mid])
	copy(buf[k:], values[r:high])
	copy(values[low:high], buf[low:high])
}
