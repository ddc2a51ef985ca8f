package dial

import (
	"errors"
	"fmt"
	"math"
)

// ErrAtCenter is returned when the pointer sits exactly on the dial center,
// where no direction can be derived.
var ErrAtCenter = errors.New("dial: pointer at dial center")

// Pointer is a pointer event position in client coordinates.
type Pointer struct {
	ClientX float64
	ClientY float64
}

// Bounds is the container's client offset and size, queried at event time.
type Bounds struct {
	Left   float64
	Top    float64
	Width  float64
	Height float64
}

// PointerToAngle computes the needle angle in whole degrees for a pointer
// position. 0 points up and angles grow clockwise; direction <= -1 mirrors
// the vertical sense. The result is not normalized and lies in [-90, 270):
// the upper-left quadrant maps to negative values.
func PointerToAngle(p Pointer, b Bounds, direction float64) (int, error) {
	up := b.Top + b.Height/2 - p.ClientY
	adjacent := p.ClientX - (b.Left + b.Width/2)

	opposite := -up
	if direction <= -1 {
		opposite = up
	}

	if opposite == 0 && adjacent == 0 {
		return 0, ErrAtCenter
	}

	rad := math.Atan2(opposite, adjacent)
	// Straight left belongs to the upper-left branch (-180), whatever the
	// sign of the zero.
	if opposite == 0 && adjacent < 0 {
		rad = -math.Pi
	}

	deg := rad*180/math.Pi + 90
	return roundAngle(deg), nil
}

// roundAngle rounds half up, so -0.5 becomes 0 rather than -1.
func roundAngle(deg float64) int {
	return int(math.Floor(deg + 0.5))
}

// DisplayText formats an angle for the readout element.
func DisplayText(angle int) string {
	return fmt.Sprintf("%d Degree", angle)
}

// NormalizeAngle folds any whole-degree angle into [-90, 270), the range
// PointerToAngle produces.
func NormalizeAngle(angle int) int {
	return int(WrapDegrees(float64(angle+90))) - 90
}

// PointerFor returns a pointer position that PointerToAngle maps to angle
// (after NormalizeAngle). The pointer lies reach units from the center.
func PointerFor(angle int, b Bounds, direction float64, reach float64) Pointer {
	rad := float64(NormalizeAngle(angle)) * math.Pi / 180
	adjacent := snap(reach * math.Sin(rad))
	up := snap(reach * math.Cos(rad))
	if direction <= -1 {
		up = -up
	}
	return Pointer{
		ClientX: b.Left + b.Width/2 + adjacent,
		ClientY: b.Top + b.Height/2 - up,
	}
}

// snap clears float noise so axis-aligned angles land exactly on an axis.
func snap(v float64) float64 {
	if math.Abs(v) < 1e-9 {
		return 0
	}
	return v
}
