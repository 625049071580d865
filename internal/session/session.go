// Package session gates sorting runs: at most one strategy runs at a time,
// and generate or start requests made while it runs are rejected.
package session

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/san-kum/sortviz/internal/array"
	"github.com/san-kum/sortviz/internal/logging"
	"github.com/san-kum/sortviz/internal/sorting"
	"github.com/san-kum/sortviz/internal/step"
)

type State int

const (
	Idle State = iota
	Sorting
)

func (s State) String() string {
	if s == Sorting {
		return "sorting"
	}
	return "idle"
}

// Session owns the array, the Idle/Sorting flag and the active run.
type Session struct {
	mu       sync.Mutex
	id       string
	state    State
	arr      *array.Array
	spec     array.Spec
	gen      *array.Generator
	registry *sorting.Registry
	speed    *step.Speed
	emitter  step.Emitter
	logger   *log.Logger
	base     time.Duration
	sleep    step.SleepFunc
	run      *Run
	idle     chan struct{}
}

type Option func(*Session)

func WithEmitter(e step.Emitter) Option       { return func(s *Session) { s.emitter = e } }
func WithLogger(l *log.Logger) Option         { return func(s *Session) { s.logger = l } }
func WithRegistry(r *sorting.Registry) Option { return func(s *Session) { s.registry = r } }
func WithGenerator(g *array.Generator) Option { return func(s *Session) { s.gen = g } }
func WithSpec(spec array.Spec) Option         { return func(s *Session) { s.spec = spec } }
func WithSpeed(v float64) Option              { return func(s *Session) { s.speed.Set(v) } }
func WithBaseDelay(d time.Duration) Option    { return func(s *Session) { s.base = d } }
func WithSleep(fn step.SleepFunc) Option      { return func(s *Session) { s.sleep = fn } }

func New(opts ...Option) *Session {
	idle := make(chan struct{})
	close(idle)

	s := &Session{
		id:       uuid.New().String(),
		arr:      array.New(nil),
		spec:     array.DefaultSpec(),
		registry: sorting.NewRegistry(),
		speed:    step.NewSpeed(step.DefaultSpeed),
		emitter:  step.Discard,
		base:     step.BaseDelay,
		sleep:    step.Sleep,
		idle:     idle,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.gen == nil {
		s.gen = array.NewGenerator(time.Now().UnixNano())
	}
	if s.logger == nil {
		s.logger = logging.Discard()
	}
	s.logger = s.logger.With("session", s.id[:8])
	return s
}

func (s *Session) ID() string { return s.id }

func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Values returns a snapshot of the current sequence for rendering.
func (s *Session) Values() []int {
	s.mu.Lock()
	arr := s.arr
	s.mu.Unlock()
	return arr.Snapshot()
}

func (s *Session) Algorithms() []string { return s.registry.Names() }

func (s *Session) Describe(algorithm string) string { return s.registry.Describe(algorithm) }

func (s *Session) Speed() float64 { return s.speed.Get() }

// SetSpeed may be called at any time; a running sort picks it up at its
// next delay.
func (s *Session) SetSpeed(v float64) { s.speed.Set(v) }

func (s *Session) BaseDelay() time.Duration { return s.base }

func (s *Session) Spec() array.Spec {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.spec
}

func (s *Session) SetSpec(spec array.Spec) error {
	if err := spec.Validate(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.spec = spec
	return nil
}

// Generate replaces the sequence with a fresh one from the generator.
func (s *Session) Generate() ([]int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == Sorting {
		s.logger.Debug("generate rejected", "reason", "busy")
		return nil, ErrBusy
	}

	values, err := s.gen.Generate(s.spec)
	if err != nil {
		return nil, fmt.Errorf("generate array: %w", err)
	}
	s.arr = array.New(values)
	s.logger.Debug("array generated", "size", len(values), "shape", s.spec.Shape)
	return values, nil
}

// SetArray loads a caller-supplied sequence.
func (s *Session) SetArray(values []int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == Sorting {
		return ErrBusy
	}
	s.arr = array.New(values)
	return nil
}

// Begin moves the session to Sorting and returns the run to drive. The
// caller pulls events with Next until it returns false.
func (s *Session) Begin(algorithm string) (*Run, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == Sorting {
		s.logger.Debug("start rejected", "algorithm", algorithm, "reason", "busy")
		return nil, ErrBusy
	}
	strategy, err := s.registry.Get(algorithm)
	if err != nil {
		s.logger.Warn("start rejected", "algorithm", algorithm, "err", err)
		return nil, err
	}

	s.state = Sorting
	s.idle = make(chan struct{})
	s.run = newRun(s, algorithm, strategy(s.arr))
	s.logger.Info("sort started", "algorithm", algorithm, "size", s.arr.Len(), "speed", s.speed.Get())
	return s.run, nil
}

// Start begins a run and plays it on its own goroutine, pacing events into
// the session emitter. Use Wait to block until it completes.
func (s *Session) Start(ctx context.Context, algorithm string) error {
	run, err := s.Begin(algorithm)
	if err != nil {
		return err
	}

	player := step.NewPlayer(s.emitter, s.speed, step.WithSleep(s.sleep), step.WithBaseDelay(s.base))
	go func() {
		defer run.Close()
		if err := player.Play(ctx, run); err != nil {
			s.logger.Warn("run abandoned", "algorithm", algorithm, "err", err)
		}
	}()
	return nil
}

// Wait blocks until the session is Idle.
func (s *Session) Wait() {
	s.mu.Lock()
	idle := s.idle
	s.mu.Unlock()
	<-idle
}

// Play runs algorithm to completion on the calling goroutine.
func (s *Session) Play(ctx context.Context, algorithm string) error {
	run, err := s.Begin(algorithm)
	if err != nil {
		return err
	}
	defer run.Close()

	player := step.NewPlayer(s.emitter, s.speed, step.WithSleep(s.sleep), step.WithBaseDelay(s.base))
	return player.Play(ctx, run)
}

func (s *Session) finish(r *Run) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.run != r {
		return
	}
	s.run = nil
	s.state = Idle
	close(s.idle)
	s.logger.Info("sort finished",
		"algorithm", r.algorithm,
		"events", r.events,
		"sorted", r.sorted,
		"in_order", s.arr.IsSorted(),
		"elapsed", time.Since(r.started).Round(time.Millisecond))
}
