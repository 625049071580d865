package session

import (
	"iter"
	"time"

	"github.com/san-kum/sortviz/internal/step"
)

// Run is one sort in progress. It hands out the strategy's events and then
// exactly one Sorted. A Run has a single consumer.
type Run struct {
	session   *Session
	algorithm string
	src       *step.SeqSource
	started   time.Time
	events    int
	sorted    bool
	finished  bool
}

func newRun(s *Session, algorithm string, seq iter.Seq[step.Event]) *Run {
	return &Run{
		session:   s,
		algorithm: algorithm,
		src:       step.NewSeqSource(seq),
		started:   time.Now(),
	}
}

func (r *Run) Algorithm() string { return r.algorithm }

// Next returns the next event. Once the strategy is exhausted it returns
// Sorted; the following call returns the session to Idle and reports false.
func (r *Run) Next() (step.Event, bool) {
	if r.finished {
		return step.Event{}, false
	}
	if r.sorted {
		r.finish()
		return step.Event{}, false
	}
	if e, ok := r.src.Next(); ok {
		r.events++
		return e, true
	}

	r.src.Stop()
	r.sorted = true
	return step.SortedAll(), true
}

// Close returns the session to Idle. On a run that has not delivered Sorted
// yet it abandons the strategy where it stands.
func (r *Run) Close() {
	if r.finished {
		return
	}
	if !r.sorted {
		r.src.Stop()
	}
	r.finish()
}

func (r *Run) finish() {
	r.finished = true
	r.session.finish(r)
}
