package sorting

import (
	"errors"
	"fmt"
	"iter"

	"github.com/san-kum/sortviz/internal/array"
	"github.com/san-kum/sortviz/internal/step"
)

var ErrUnknownAlgorithm = errors.New("sorting: unknown algorithm")

// Strategy produces the event sequence that sorts a in place.
type Strategy func(a *array.Array) iter.Seq[step.Event]

type entry struct {
	strategy    Strategy
	description string
}

// Registry maps algorithm names to strategies.
type Registry struct {
	entries map[string]entry
	order   []string
}

func NewRegistry() *Registry {
	r := &Registry{entries: make(map[string]entry)}

	r.Register("bubble", Bubble, "adjacent swaps, largest values bubble to the end")
	r.Register("insertion", Insertion, "grows a sorted prefix one key at a time")
	r.Register("selection", Selection, "selects the minimum of the unsorted suffix")
	r.Register("quick", Quick, "lomuto partition around the last element")
	r.Register("merge", Merge, "divide and conquer, rendered once at the end")

	return r
}

func (r *Registry) Register(name string, s Strategy, description string) {
	if _, ok := r.entries[name]; !ok {
		r.order = append(r.order, name)
	}
	r.entries[name] = entry{strategy: s, description: description}
}

func (r *Registry) Get(name string) (Strategy, error) {
	e, ok := r.entries[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
	}
	return e.strategy, nil
}

func (r *Registry) Describe(name string) string {
	return r.entries[name].description
}

// Names lists algorithms in registration order.
func (r *Registry) Names() []string {
	names := make([]string, len(r.order))
	copy(names, r.order)
	return names
}
