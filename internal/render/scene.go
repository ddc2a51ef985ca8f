// Package render records what a dial draws so pixel and vector backends can
// replay it.
package render

import (
	"time"

	"angle-selector.klederson.com/internal/dial"
)

// Scene is a dial.Surface that keeps every shape, the readout and the
// arrow rotation for later drawing.
type Scene struct {
	Width, Height float64
	Left, Top     float64

	Circles []dial.Circle
	Lines   []dial.Line
	Paths   []dial.Path
	Text    string

	Pivot    dial.Point
	Target   float64 // Last requested rotation
	Duration time.Duration
	Rotated  bool // Whether any rotation was requested

	turn dial.Transition
	now  func() time.Time
}

// NewScene creates an empty scene for a container of the given size.
func NewScene(width, height float64) *Scene {
	return &Scene{Width: width, Height: height, now: time.Now}
}

// SetClock replaces the time source used to start transitions.
func (s *Scene) SetClock(now func() time.Time) {
	s.now = now
}

// Rotation returns the animated arrow rotation at time now.
func (s *Scene) Rotation(now time.Time) float64 {
	return s.turn.At(now)
}

// Animating reports whether the arrow is still turning at time now.
func (s *Scene) Animating(now time.Time) bool {
	return !s.turn.Done(now)
}

func (s *Scene) Size() (float64, float64)   { return s.Width, s.Height }
func (s *Scene) Offset() (float64, float64) { return s.Left, s.Top }
func (s *Scene) Circle(c dial.Circle)       { s.Circles = append(s.Circles, c) }
func (s *Scene) Line(l dial.Line)           { s.Lines = append(s.Lines, l) }
func (s *Scene) Path(p dial.Path)           { s.Paths = append(s.Paths, p) }
func (s *Scene) SetText(text string)        { s.Text = text }

func (s *Scene) Rotate(deg float64, pivot dial.Point, d time.Duration) {
	s.Pivot = pivot
	s.Target = deg
	s.Duration = d
	s.Rotated = true
	s.turn = s.turn.Retarget(deg, s.now(), d)
}
