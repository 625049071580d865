package array

import (
	"fmt"
	"sync"
)

// IndexError reports an access outside the sequence. It is raised through
// panic: an out-of-range index is a bug in the caller, not a runtime condition.
type IndexError struct {
	Op    string
	Index int
	Len   int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("array: %s index %d out of range [0,%d)", e.Op, e.Index, e.Len)
}

// Array is the sequence being sorted. Its length is fixed at construction;
// values only move through Swap, Set and Replace. A single strategy writes
// at a time; the lock lets a renderer take snapshots while it does.
type Array struct {
	mu     sync.RWMutex
	values []int
}

// New returns an Array holding a copy of values.
func New(values []int) *Array {
	v := make([]int, len(values))
	copy(v, values)
	return &Array{values: v}
}

func (a *Array) Len() int { return len(a.values) }

func (a *Array) Get(i int) int {
	a.check("get", i)
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.values[i]
}

func (a *Array) Set(i, v int) {
	a.check("set", i)
	a.mu.Lock()
	a.values[i] = v
	a.mu.Unlock()
}

func (a *Array) Swap(i, j int) {
	a.check("swap", i)
	a.check("swap", j)
	a.mu.Lock()
	a.values[i], a.values[j] = a.values[j], a.values[i]
	a.mu.Unlock()
}

// Less reports whether the value at i is strictly less than the value at j.
func (a *Array) Less(i, j int) bool {
	return a.Get(i) < a.Get(j)
}

// Snapshot returns an independent copy of the current values.
func (a *Array) Snapshot() []int {
	a.mu.RLock()
	defer a.mu.RUnlock()
	c := make([]int, len(a.values))
	copy(c, a.values)
	return c
}

// Replace overwrites every position with values. The length must match.
func (a *Array) Replace(values []int) {
	if len(values) != len(a.values) {
		panic(fmt.Sprintf("array: replace with %d values, have %d", len(values), len(a.values)))
	}
	a.mu.Lock()
	copy(a.values, values)
	a.mu.Unlock()
}

// IsSorted reports whether the values are in non-decreasing order.
func (a *Array) IsSorted() bool {
	a.mu.RLock()
	defer a.mu.RUnlock()
	for i := 1; i < len(a.values); i++ {
		if a.values[i] < a.values[i-1] {
			return false
		}
	}
	return true
}

func (a *Array) check(op string, i int) {
	if i < 0 || i >= len(a.values) {
		panic(&IndexError{Op: op, Index: i, Len: len(a.values)})
	}
}
