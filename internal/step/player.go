package step

import (
	"context"
	"iter"
	"time"
)

// Source hands out events one at a time.
type Source interface {
	Next() (Event, bool)
}

// SleepFunc waits d or until ctx is done.
type SleepFunc func(ctx context.Context, d time.Duration) error

// Sleep is the real-time SleepFunc.
func Sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// NoSleep skips every delay.
func NoSleep(ctx context.Context, _ time.Duration) error { return ctx.Err() }

// Player drives a Source on wall-clock time.
type Player struct {
	emitter Emitter
	speed   *Speed
	base    time.Duration
	sleep   SleepFunc
}

type PlayerOption func(*Player)

func WithSleep(fn SleepFunc) PlayerOption { return func(p *Player) { p.sleep = fn } }

func WithBaseDelay(d time.Duration) PlayerOption { return func(p *Player) { p.base = d } }

func NewPlayer(emitter Emitter, speed *Speed, opts ...PlayerOption) *Player {
	if emitter == nil {
		emitter = Discard
	}
	if speed == nil {
		speed = NewSpeed(DefaultSpeed)
	}
	p := &Player{emitter: emitter, speed: speed, base: BaseDelay, sleep: Sleep}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Play emits every event from src, waiting after each paced one. It returns
// when src is exhausted or ctx is done.
func (p *Player) Play(ctx context.Context, src Source) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		e, ok := src.Next()
		if !ok {
			return nil
		}
		p.emitter.Emit(e)

		if e.Kind.Paced() {
			if err := p.sleep(ctx, DelayWithBase(p.base, p.speed.Get())); err != nil {
				return err
			}
		}
	}
}

// SeqSource adapts a push iterator into a Source. Stop must be called if the
// sequence is abandoned before it is exhausted.
type SeqSource struct {
	next func() (Event, bool)
	stop func()
}

func NewSeqSource(seq iter.Seq[Event]) *SeqSource {
	next, stop := iter.Pull(seq)
	return &SeqSource{next: next, stop: stop}
}

func (s *SeqSource) Next() (Event, bool) { return s.next() }

func (s *SeqSource) Stop() { s.stop() }

// Collect drains seq into a slice.
func Collect(seq iter.Seq[Event]) []Event {
	var out []Event
	for e := range seq {
		out = append(out, e)
	}
	return out
}
