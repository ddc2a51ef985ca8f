package dial

import (
	"math"

	"angle-selector.klederson.com/internal/config"
)

// Point is a position in container coordinates (origin top-left, y down).
type Point struct {
	X, Y float64
}

// Add returns p translated by q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Geometry describes where the dial sits inside its container.
type Geometry struct {
	Width   float64
	Height  float64
	CenterX float64
	CenterY float64
	Radius  float64 // Half the smaller container side
}

// NewGeometry computes the dial geometry for a container of the given size.
func NewGeometry(width, height float64) Geometry {
	return Geometry{
		Width:   width,
		Height:  height,
		CenterX: width / 2,
		CenterY: height / 2,
		Radius:  math.Min(width, height) / 2,
	}
}

// Center returns the dial center.
func (g Geometry) Center() Point {
	return Point{X: g.CenterX, Y: g.CenterY}
}

// Contains reports whether a container-local point lies on the dial.
func (g Geometry) Contains(x, y float64) bool {
	dx := x - g.CenterX
	dy := y - g.CenterY
	return dx*dx+dy*dy <= g.Radius*g.Radius
}

// TickAngle returns the angle of tick i in degrees, mathematical convention
// (0 = right, increasing towards +y).
func TickAngle(i int) float64 {
	return float64(i) * 360 / config.TickCount
}

// Ticks returns the tick positions relative to the dial center.
func (g Geometry) Ticks() []Point {
	ticks := make([]Point, config.TickCount)
	r := g.Radius - config.TickInset
	for i := range ticks {
		a := TickAngle(i) * math.Pi / 180
		ticks[i] = Point{X: r * math.Cos(a), Y: r * math.Sin(a)}
	}
	return ticks
}

// NeedleTip returns the needle end at rest (straight up).
func (g Geometry) NeedleTip() Point {
	return Point{X: g.CenterX, Y: g.CenterY - g.Radius}
}

// CapTriangle returns the vertices of an upward triangle of the given area,
// centered on the origin the way d3's "triangle-up" symbol is.
func CapTriangle(area float64) []Point {
	ry := math.Sqrt(area / math.Sqrt(3))
	rx := ry * math.Sqrt(3) / 2
	return []Point{
		{X: 0, Y: -ry},
		{X: rx, Y: ry},
		{X: -rx, Y: ry},
	}
}

// WrapDegrees wraps an angle to [0, 360).
func WrapDegrees(a float64) float64 {
	a = math.Mod(a, 360)
	if a < 0 {
		a += 360
	}
	return a
}

// Rotate turns p around pivot by deg degrees, clockwise on screen.
func Rotate(p, pivot Point, deg float64) Point {
	a := deg * math.Pi / 180
	sin, cos := math.Sincos(a)
	dx := p.X - pivot.X
	dy := p.Y - pivot.Y
	return Point{
		X: pivot.X + dx*cos - dy*sin,
		Y: pivot.Y + dx*sin + dy*cos,
	}
}
