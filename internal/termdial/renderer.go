package termdial

import (
	"math"
	"strings"
	"time"

	"angle-selector.klederson.com/internal/dial"
	"github.com/charmbracelet/lipgloss"
)

var (
	colorCenter  = lipgloss.Color("#FF0000")
	colorOutline = lipgloss.Color("#EEEEEE")
	colorTick    = lipgloss.Color("#4682B4")
	colorNeedle  = lipgloss.Color("#CC0707")

	styleCenter  = lipgloss.NewStyle().Foreground(colorCenter).Bold(true)
	styleOutline = lipgloss.NewStyle().Foreground(colorOutline)
	styleTick    = lipgloss.NewStyle().Foreground(colorTick).Bold(true)
	styleNeedle  = lipgloss.NewStyle().Foreground(colorNeedle)
	styleCap     = lipgloss.NewStyle().Foreground(colorNeedle).Bold(true)
)

// Cell is one rasterised character of the dial.
type Cell struct {
	Ch   rune
	Role dial.Role
	Set  bool
}

// Grid is the dial rasterised into cells, indexed [row][col].
type Grid struct {
	Cols, Rows int
	Cells      [][]Cell
}

func newGrid(cols, rows int) Grid {
	cells := make([][]Cell, rows)
	for i := range cells {
		cells[i] = make([]Cell, cols)
	}
	return Grid{Cols: cols, Rows: rows, Cells: cells}
}

// At returns the cell at (col, row); out of range cells are unset.
func (g Grid) At(col, row int) Cell {
	if col < 0 || col >= g.Cols || row < 0 || row >= g.Rows {
		return Cell{}
	}
	return g.Cells[row][col]
}

func (g Grid) set(col, row int, ch rune, role dial.Role) {
	if col >= 0 && col < g.Cols && row >= 0 && row < g.Rows {
		g.Cells[row][col] = Cell{Ch: ch, Role: role, Set: true}
	}
}

// String returns the grid as plain text.
func (g Grid) String() string {
	var sb strings.Builder
	for row := 0; row < g.Rows; row++ {
		for col := 0; col < g.Cols; col++ {
			c := g.Cells[row][col]
			if c.Set {
				sb.WriteRune(c.Ch)
			} else {
				sb.WriteByte(' ')
			}
		}
		if row < g.Rows-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

// Raster draws every recorded shape at time now. Later layers win: outline,
// ticks, center, needle, cap.
func Raster(s *Surface, now time.Time) Grid {
	g := newGrid(s.cols, s.rows)
	rot := s.Rotation(now)

	for _, c := range s.circles {
		if c.Role == dial.RoleDial {
			drawRing(g, c)
		}
	}
	for _, c := range s.circles {
		if c.Role == dial.RoleTick {
			col, row := CellAt(c.Center)
			g.set(col, row, 'o', dial.RoleTick)
		}
	}
	for _, c := range s.circles {
		if c.Role == dial.RoleCenter {
			col, row := CellAt(c.Center)
			g.set(col, row, '+', dial.RoleCenter)
		}
	}
	for _, l := range s.lines {
		drawNeedle(g, l, s.pivot, rot)
	}
	for _, p := range s.paths {
		tip := dial.Rotate(p.Translate, s.pivot, rot)
		col, row := CellAt(tip)
		// Keep the arrowhead on screen when the tip sits on the far edge.
		col = clamp(col, 0, g.Cols-1)
		row = clamp(row, 0, g.Rows-1)
		g.set(col, row, TipChar(rot), p.Role)
	}
	return g
}

// drawRing traces the outline half a cell inside its radius so the right and
// bottom edges stay within the container.
func drawRing(g Grid, c dial.Circle) {
	r := c.R - 0.5
	if r <= 0 {
		col, row := CellAt(c.Center)
		g.set(col, row, 'o', dial.RoleDial)
		return
	}
	steps := int(math.Max(64, 8*r))
	for i := 0; i < steps; i++ {
		deg := float64(i) * 360 / float64(steps)
		a := deg * math.Pi / 180
		p := dial.Point{X: c.Center.X + r*math.Sin(a), Y: c.Center.Y - r*math.Cos(a)}
		col, row := CellAt(p)
		if g.At(col, row).Set {
			continue
		}
		g.set(col, row, RingChar(deg), dial.RoleDial)
	}
}

func drawNeedle(g Grid, l dial.Line, pivot dial.Point, rot float64) {
	from := dial.Rotate(l.From, pivot, rot)
	to := dial.Rotate(l.To, pivot, rot)
	length := math.Hypot(to.X-from.X, to.Y-from.Y)
	steps := int(math.Ceil(length * 2))
	ch := ShaftChar(rot)
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps)
		p := dial.Point{X: from.X + (to.X-from.X)*t, Y: from.Y + (to.Y-from.Y)*t}
		col, row := CellAt(p)
		if c := g.At(col, row); c.Set && c.Role == dial.RoleCenter {
			continue
		}
		g.set(col, row, ch, l.Role)
	}
}

// Render produces the dial as a styled string at time now.
func Render(s *Surface, now time.Time) string {
	g := Raster(s, now)

	var sb strings.Builder
	for row := 0; row < g.Rows; row++ {
		for col := 0; col < g.Cols; col++ {
			c := g.Cells[row][col]
			if !c.Set {
				sb.WriteByte(' ')
				continue
			}
			sb.WriteString(styleFor(c.Role).Render(string(c.Ch)))
		}
		if row < g.Rows-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

func styleFor(r dial.Role) lipgloss.Style {
	switch r {
	case dial.RoleCenter:
		return styleCenter
	case dial.RoleTick:
		return styleTick
	case dial.RoleNeedle:
		return styleNeedle
	case dial.RoleCap:
		return styleCap
	default:
		return styleOutline
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
