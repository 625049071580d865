package step

import (
	"math"
	"sync/atomic"
	"time"
)

const (
	BaseDelay    = 100 * time.Millisecond
	MinSpeed     = 0.1
	DefaultSpeed = 10.0
)

// Delay returns the pause after a paced event: BaseDelay / speed. Speeds at
// or below MinSpeed, and NaN, use MinSpeed. +Inf yields zero.
func Delay(speed float64) time.Duration {
	return DelayWithBase(BaseDelay, speed)
}

func DelayWithBase(base time.Duration, speed float64) time.Duration {
	if base <= 0 {
		return 0
	}
	speed = ClampSpeed(speed)
	if math.IsInf(speed, 1) {
		return 0
	}
	return time.Duration(float64(base) / speed)
}

func ClampSpeed(speed float64) float64 {
	if math.IsNaN(speed) || speed < MinSpeed {
		return MinSpeed
	}
	return speed
}

// Speed is the speed factor shared between the operator and a running
// scheduler. It is read at every delay, so a change takes effect on the
// next paced event.
type Speed struct {
	bits atomic.Uint64
}

func NewSpeed(v float64) *Speed {
	s := &Speed{}
	s.Set(v)
	return s
}

func (s *Speed) Set(v float64) { s.bits.Store(math.Float64bits(ClampSpeed(v))) }

func (s *Speed) Get() float64 {
	v := math.Float64frombits(s.bits.Load())
	if v == 0 {
		return DefaultSpeed
	}
	return v
}
