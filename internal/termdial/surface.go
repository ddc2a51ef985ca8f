package termdial

import (
	"time"

	"angle-selector.klederson.com/internal/config"
	"angle-selector.klederson.com/internal/dial"
)

// Surface is a dial.Surface backed by a block of terminal cells.
type Surface struct {
	cols, rows int
	left, top  int // Container position on screen, in cells

	circles []dial.Circle
	lines   []dial.Line
	paths   []dial.Path
	text    string

	pivot dial.Point
	turn  dial.Transition
	now   func() time.Time
}

// NewSurface creates a surface for a cols×rows cell container.
func NewSurface(cols, rows int) *Surface {
	return &Surface{
		cols: cols,
		rows: rows,
		now:  time.Now,
	}
}

// SetClock replaces the time source used to start transitions.
func (s *Surface) SetClock(now func() time.Time) {
	s.now = now
}

// SetOffset moves the container on screen. Layout calls this every frame.
func (s *Surface) SetOffset(col, row int) {
	s.left = col
	s.top = row
}

// Cols returns the container width in cells.
func (s *Surface) Cols() int { return s.cols }

// Rows returns the container height in cells.
func (s *Surface) Rows() int { return s.rows }

// Text returns the readout.
func (s *Surface) Text() string { return s.text }

// Rotation returns the arrow rotation in degrees at time now.
func (s *Surface) Rotation(now time.Time) float64 {
	return s.turn.At(now)
}

// Animating reports whether the needle is still moving at time now.
func (s *Surface) Animating(now time.Time) bool {
	return !s.turn.Done(now)
}

func (s *Surface) Size() (float64, float64) {
	return float64(s.cols), float64(s.rows) / config.AspectRatio
}

func (s *Surface) Offset() (float64, float64) {
	return float64(s.left), float64(s.top) / config.AspectRatio
}

func (s *Surface) Circle(c dial.Circle) { s.circles = append(s.circles, c) }
func (s *Surface) Line(l dial.Line)     { s.lines = append(s.lines, l) }
func (s *Surface) Path(p dial.Path)     { s.paths = append(s.paths, p) }
func (s *Surface) SetText(text string)  { s.text = text }

func (s *Surface) Rotate(deg float64, pivot dial.Point, d time.Duration) {
	s.pivot = pivot
	s.turn = s.turn.Retarget(deg, s.now(), d)
}
