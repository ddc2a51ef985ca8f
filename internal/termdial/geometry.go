package termdial

import (
	"math"

	"angle-selector.klederson.com/internal/config"
	"angle-selector.klederson.com/internal/dial"
)

// Dial space uses one unit per column horizontally and stretches rows by
// 1/AspectRatio, so circles come out round on a ~2:1 terminal cell.

// CellCenter returns the dial-space point at the middle of a cell.
func CellCenter(col, row int) dial.Point {
	return dial.Point{
		X: float64(col) + 0.5,
		Y: (float64(row) + 0.5) / config.AspectRatio,
	}
}

// CellAt returns the cell containing a dial-space point.
func CellAt(p dial.Point) (col, row int) {
	return int(math.Floor(p.X)), int(math.Floor(p.Y * config.AspectRatio))
}

// PointerAt converts a terminal mouse position into a client pointer.
func PointerAt(col, row int) dial.Pointer {
	c := CellCenter(col, row)
	return dial.Pointer{ClientX: c.X, ClientY: c.Y}
}

// sector maps an angle (degrees, 0=up, clockwise) to one of 8 compass sectors.
func sector(deg float64) int {
	return int(math.Round(dial.WrapDegrees(deg)/45)) % 8
}

// RingChar returns the outline character at a position on the ring.
func RingChar(deg float64) rune {
	switch sector(deg) {
	case 0, 4: // N, S
		return '-'
	case 1, 5: // NE, SW
		return '\\'
	case 2, 6: // E, W
		return '|'
	default: // SE, NW
		return '/'
	}
}

// ShaftChar returns the line character for a needle pointing at deg.
func ShaftChar(deg float64) rune {
	switch sector(deg) {
	case 0, 4:
		return '|'
	case 2, 6:
		return '-'
	case 1, 5:
		return '/'
	default:
		return '\\'
	}
}

// TipChar returns the arrowhead character for a needle pointing at deg.
func TipChar(deg float64) rune {
	switch sector(deg) {
	case 0:
		return '^'
	case 1:
		return '/'
	case 2:
		return '>'
	case 3:
		return '\\'
	case 4:
		return 'v'
	case 5:
		return '/'
	case 6:
		return '<'
	default:
		return '\\'
	}
}
