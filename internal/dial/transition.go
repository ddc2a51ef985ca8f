package dial

import (
	"math"
	"time"
)

// Transition is a timed rotation of the needle from one angle to another.
// The zero value is settled at 0 degrees.
type Transition struct {
	From     float64
	To       float64
	Start    time.Time
	Duration time.Duration
}

// Settled returns a transition resting at angle.
func Settled(angle float64) Transition {
	return Transition{From: angle, To: angle}
}

// At returns the rotation at time now.
func (t Transition) At(now time.Time) float64 {
	p := t.progress(now)
	return t.From + (t.To-t.From)*easeCubicInOut(p)
}

// Done reports whether the transition has reached its target.
func (t Transition) Done(now time.Time) bool {
	return t.progress(now) >= 1
}

// Retarget starts a new transition towards to from wherever t currently is.
// The start is folded to within 180 degrees of to, so the rotation takes the
// short way round and always settles exactly on to.
func (t Transition) Retarget(to float64, now time.Time, d time.Duration) Transition {
	from := to + math.Remainder(t.At(now)-to, 360)
	return Transition{From: from, To: to, Start: now, Duration: d}
}

func (t Transition) progress(now time.Time) float64 {
	if t.Duration <= 0 {
		return 1
	}
	p := float64(now.Sub(t.Start)) / float64(t.Duration)
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}

func easeCubicInOut(t float64) float64 {
	if t <= 0 {
		return 0
	}
	if t >= 1 {
		return 1
	}
	if t < 0.5 {
		return 4 * t * t * t
	}
	u := 1 - t
	return 1 - 4*u*u*u
}
