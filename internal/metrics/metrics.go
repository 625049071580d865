package metrics

import (
	"sync"
	"time"

	"github.com/san-kum/sortviz/internal/step"
)

// Metric observes a run's event stream.
type Metric interface {
	Name() string
	Observe(e step.Event)
	Value() float64
	Reset()
}

type Counter struct {
	name string
	kind step.Kind
	n    int
}

func NewCounter(name string, kind step.Kind) *Counter {
	return &Counter{name: name, kind: kind}
}

func NewComparisons() *Counter { return NewCounter("comparisons", step.Compare) }
func NewSwaps() *Counter       { return NewCounter("swaps", step.Swap) }
func NewHighlights() *Counter  { return NewCounter("highlights", step.Highlight) }

func (c *Counter) Name() string { return c.name }

func (c *Counter) Observe(e step.Event) {
	if e.Kind == c.kind {
		c.n++
	}
}

func (c *Counter) Value() float64 { return float64(c.n) }

func (c *Counter) Reset() { c.n = 0 }

// AnimationTime estimates how long a run takes on screen at a fixed speed:
// one delay per paced event.
type AnimationTime struct {
	delay time.Duration
	total time.Duration
}

func NewAnimationTime(base time.Duration, speed float64) *AnimationTime {
	return &AnimationTime{delay: step.DelayWithBase(base, speed)}
}

func (a *AnimationTime) Name() string { return "animation_seconds" }

func (a *AnimationTime) Observe(e step.Event) {
	if e.Kind.Paced() {
		a.total += a.delay
	}
}

func (a *AnimationTime) Value() float64 { return a.total.Seconds() }

func (a *AnimationTime) Reset() { a.total = 0 }

// Tally is an emitter feeding every event to a set of metrics.
type Tally struct {
	mu      sync.Mutex
	metrics []Metric
}

func NewTally(ms ...Metric) *Tally {
	return &Tally{metrics: ms}
}

// Default counts comparisons, swaps and highlights.
func Default() *Tally {
	return NewTally(NewComparisons(), NewSwaps(), NewHighlights())
}

func (t *Tally) Add(m Metric) {
	t.mu.Lock()
	t.metrics = append(t.metrics, m)
	t.mu.Unlock()
}

func (t *Tally) Emit(e step.Event) {
	t.mu.Lock()
	defer t.mu.Unlock()
	for _, m := range t.metrics {
		m.Observe(e)
	}
}

func (t *Tally) Values() map[string]float64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make(map[string]float64, len(t.metrics))
	for _, m := range t.metrics {
		out[m.Name()] = m.Value()
	}
	return out
}

// Names lists metric names in the order they were added.
func (t *Tally) Names() []string {
	t.mu.Lock()
	defer t.mu.Unlock()
	names := make([]string, len(t.metrics))
	for i, m := range t.metrics {
		names[i] = m.Name()
	}
	return names
}

func (t *Tally) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()
	for _, m := range t.metrics {
		m.Reset()
	}
}
