package dial

import "time"

// Role identifies what a drawn shape is, so backends can style it.
type Role int

const (
	RoleCenter Role = iota // Center marker
	RoleDial               // Dial outline, the interactive element
	RoleTick               // One of the tick marks
	RoleNeedle             // Needle line
	RoleCap                // Needle cap at the tip
)

func (r Role) String() string {
	switch r {
	case RoleDial:
		return "dial"
	case RoleTick:
		return "tick"
	case RoleNeedle:
		return "needle"
	case RoleCap:
		return "cap"
	default:
		return "center"
	}
}

// Circle is a circle in container coordinates.
type Circle struct {
	Role   Role
	Center Point
	R      float64
}

// Line is a straight segment in container coordinates.
type Line struct {
	Role     Role
	From, To Point
}

// Path is a closed polygon whose Points are relative to Translate.
type Path struct {
	Role      Role
	Points    []Point
	Translate Point
}

// Surface is the drawing backend a Selector renders into. Needle and Cap
// shapes form the rotating arrow; Rotate animates that group around pivot.
type Surface interface {
	// Size returns the container width and height.
	Size() (width, height float64)
	// Offset returns the container position in client coordinates.
	Offset() (left, top float64)

	Circle(c Circle)
	Line(l Line)
	Path(p Path)

	// SetText replaces the readout shown next to the dial.
	SetText(text string)
	// Rotate retargets the arrow rotation to deg over d.
	Rotate(deg float64, pivot Point, d time.Duration)
}
