package step

import (
	"sync"

	"github.com/charmbracelet/log"
)

// Emitter receives events in order. Implementations must not block for long:
// pacing is the scheduler's job.
type Emitter interface {
	Emit(e Event)
}

type EmitterFunc func(e Event)

func (f EmitterFunc) Emit(e Event) { f(e) }

// Discard drops every event.
var Discard Emitter = EmitterFunc(func(Event) {})

// Recorder keeps every emitted event. Events may be read while a run is
// still emitting.
type Recorder struct {
	mu     sync.Mutex
	events []Event
}

func NewRecorder() *Recorder {
	return &Recorder{events: make([]Event, 0, 64)}
}

func (r *Recorder) Emit(e Event) {
	r.mu.Lock()
	r.events = append(r.events, e)
	r.mu.Unlock()
}

func (r *Recorder) Events() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Event, len(r.events))
	copy(out, r.events)
	return out
}

// Count returns how many events of kind k were recorded.
func (r *Recorder) Count(k Kind) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, e := range r.events {
		if e.Kind == k {
			n++
		}
	}
	return n
}

// Multi fans every event out to each emitter in order.
func Multi(emitters ...Emitter) Emitter {
	return EmitterFunc(func(e Event) {
		for _, em := range emitters {
			em.Emit(e)
		}
	})
}

// LogEmitter writes each event at debug level.
type LogEmitter struct {
	logger *log.Logger
}

func NewLogEmitter(l *log.Logger) *LogEmitter {
	return &LogEmitter{logger: l}
}

func (l *LogEmitter) Emit(e Event) {
	switch e.Kind {
	case Sorted:
		l.logger.Info("sorted")
	case Render, Highlight:
		l.logger.Debug(e.Kind.String(), "i", e.I)
	default:
		l.logger.Debug(e.Kind.String(), "i", e.I, "j", e.J)
	}
}
