package dial

import (
	"errors"
	"fmt"

	"angle-selector.klederson.com/internal/config"
)

var (
	// ErrNilSurface is returned by New when no surface is given.
	ErrNilSurface = errors.New("dial: nil surface")
	// ErrEmptyContainer is returned by New when the container has no area.
	ErrEmptyContainer = errors.New("dial: container has no area")
	// ErrOutsideDial is returned by Click for pointers off the dial circle.
	ErrOutsideDial = errors.New("dial: pointer outside dial")
)

// State is the pointer interaction state.
type State int

const (
	Idle State = iota
	Pressed
)

func (s State) String() string {
	if s == Pressed {
		return "PRESSED"
	}
	return "IDLE"
}

// Selector is a circular dial that turns pointer clicks into an angle.
type Selector struct {
	opts    config.Options
	surface Surface
	geom    Geometry

	state   State
	angle   int
	display string
	history *History
}

// New renders a dial into surface and returns it ready for pointer events.
func New(surface Surface, opts config.Options) (*Selector, error) {
	if surface == nil {
		return nil, ErrNilSurface
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	w, h := surface.Size()
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("%w: %gx%g", ErrEmptyContainer, w, h)
	}

	s := &Selector{
		opts:    opts,
		surface: surface,
		geom:    NewGeometry(w, h),
		history: NewHistory(config.HistorySize),
	}
	s.render()
	return s, nil
}

func (s *Selector) render() {
	g := s.geom
	center := g.Center()

	s.surface.Circle(Circle{Role: RoleCenter, Center: center, R: config.CenterMarkRadius})
	s.surface.Circle(Circle{Role: RoleDial, Center: center, R: g.Radius})

	for _, t := range g.Ticks() {
		s.surface.Circle(Circle{Role: RoleTick, Center: center.Add(t), R: config.TickRadius})
	}

	tip := g.NeedleTip()
	s.surface.Line(Line{Role: RoleNeedle, From: center, To: tip})
	s.surface.Path(Path{Role: RoleCap, Points: CapTriangle(config.CapSymbolArea), Translate: tip})

	s.surface.SetText(s.display)
}

// Geometry returns the dial geometry computed at construction.
func (s *Selector) Geometry() Geometry {
	return s.geom
}

// Options returns the options the selector was built with.
func (s *Selector) Options() config.Options {
	return s.opts
}

// Bounds returns the container's current client offset and size.
func (s *Selector) Bounds() Bounds {
	left, top := s.surface.Offset()
	return Bounds{Left: left, Top: top, Width: s.geom.Width, Height: s.geom.Height}
}

// OnDial reports whether a pointer lies on the dial circle.
func (s *Selector) OnDial(p Pointer) bool {
	left, top := s.surface.Offset()
	return s.geom.Contains(p.ClientX-left, p.ClientY-top)
}

// PointerDown enters the pressed state when the pointer is on the dial.
func (s *Selector) PointerDown(p Pointer) bool {
	if !s.OnDial(p) {
		return false
	}
	s.state = Pressed
	return true
}

// PointerUp returns to the idle state.
func (s *Selector) PointerUp() {
	s.state = Idle
}

// PointerMove is the drag path. Rotating while dragging is disabled, so
// moving the pointer never changes the angle.
func (s *Selector) PointerMove(Pointer) {}

// Click selects the angle under the pointer, updates the readout, and
// animates the needle there.
func (s *Selector) Click(p Pointer) (int, error) {
	if !s.OnDial(p) {
		return s.angle, ErrOutsideDial
	}

	angle, err := PointerToAngle(p, s.Bounds(), s.opts.Direction)
	if err != nil {
		return s.angle, err
	}

	s.angle = angle
	s.display = DisplayText(angle)
	s.history.Push(angle)

	s.surface.SetText(s.display)
	s.surface.Rotate(float64(angle), s.geom.Center(), config.TransitionDuration)
	return angle, nil
}

// State returns the interaction state.
func (s *Selector) State() State {
	return s.state
}

// Pressed reports whether the pointer is held down on the dial.
func (s *Selector) Pressed() bool {
	return s.state == Pressed
}

// Angle returns the last accepted angle, 0 before any click.
func (s *Selector) Angle() int {
	return s.angle
}

// Display returns the readout text, empty before any click.
func (s *Selector) Display() string {
	return s.display
}

// History returns accepted angles, oldest first.
func (s *Selector) History() []int {
	return s.history.Values()
}

// ClearHistory forgets accepted angles. The current angle is kept.
func (s *Selector) ClearHistory() {
	s.history.Reset()
}
