// Package svg writes a recorded dial as SVG, or as the HTML container the
// widget lives in.
package svg

import (
	"fmt"
	"html"
	"io"
	"strconv"
	"strings"

	"angle-selector.klederson.com/internal/dial"
	"angle-selector.klederson.com/internal/render"
)

// Class names carried by the container structure.
const (
	ClassContainer = "angleselector-dialcontainer"
	ClassDial      = "angleselector-dial"
	ClassArrow     = "angleselector-arrow"
	ClassNeedle    = "angleselector-needle"
	ClassCap       = "point"
	ClassDisplay   = "angleselector-display"
)

func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func pair(p dial.Point) string {
	return num(p.X) + "," + num(p.Y)
}

// WriteSVG writes the <svg> element for the scene, with the arrow at its
// final rotation.
func WriteSVG(w io.Writer, s *render.Scene) error {
	var sb strings.Builder
	writeSVG(&sb, s)
	_, err := io.WriteString(w, sb.String())
	return err
}

// WriteHTML writes the dial container holding the SVG followed by the
// readout element.
func WriteHTML(w io.Writer, s *render.Scene) error {
	var sb strings.Builder
	fmt.Fprintf(&sb, "<div class=%q>", ClassContainer)
	writeSVG(&sb, s)
	sb.WriteString("</div>\n")
	fmt.Fprintf(&sb, "<div class=%q>%s</div>\n", ClassDisplay, html.EscapeString(s.Text))
	_, err := io.WriteString(w, sb.String())
	return err
}

func writeSVG(sb *strings.Builder, s *render.Scene) {
	center := dial.Point{X: s.Width / 2, Y: s.Height / 2}

	fmt.Fprintf(sb, `<svg xmlns="http://www.w3.org/2000/svg" height="%s" width="%s">`, num(s.Height), num(s.Width))
	sb.WriteByte('\n')

	for _, c := range s.Circles {
		switch c.Role {
		case dial.RoleCenter:
			fmt.Fprintf(sb, `  <circle cx="%s" cy="%s" r="%s" style="fill: red;"></circle>`,
				num(c.Center.X), num(c.Center.Y), num(c.R))
			sb.WriteByte('\n')
		case dial.RoleDial:
			fmt.Fprintf(sb, `  <circle class=%q cx="%s" cy="%s" r="%s" style="fill: transparent; stroke: #eee;"></circle>`,
				ClassDial, num(c.Center.X), num(c.Center.Y), num(c.R))
			sb.WriteByte('\n')
		}
	}

	// Ticks are positioned relative to the center inside a translated group.
	fmt.Fprintf(sb, `  <g transform="translate(%s)">`, pair(center))
	sb.WriteByte('\n')
	for _, c := range s.Circles {
		if c.Role != dial.RoleTick {
			continue
		}
		rel := dial.Point{X: c.Center.X - center.X, Y: c.Center.Y - center.Y}
		fmt.Fprintf(sb, `    <circle fill="steelblue" r="%s" transform="translate(%s)"></circle>`, num(c.R), pair(rel))
		sb.WriteByte('\n')
	}
	sb.WriteString("  </g>\n")

	fmt.Fprintf(sb, `  <g class=%q`, ClassArrow)
	if s.Rotated {
		fmt.Fprintf(sb, ` transform="rotate(%s %s)" style="transition: transform %dms;"`,
			num(s.Target), pair(s.Pivot), s.Duration.Milliseconds())
	}
	sb.WriteString(">\n")
	for _, l := range s.Lines {
		fmt.Fprintf(sb, `    <line class=%q style="stroke: #cc0707;" x1="%s" y1="%s" x2="%s" y2="%s"></line>`,
			ClassNeedle, num(l.From.X), num(l.From.Y), num(l.To.X), num(l.To.Y))
		sb.WriteByte('\n')
	}
	for _, p := range s.Paths {
		fmt.Fprintf(sb, `    <path class=%q d=%q transform="translate(%s)" style="fill: #cc0707;"></path>`,
			ClassCap, pathData(p.Points), pair(p.Translate))
		sb.WriteByte('\n')
	}
	sb.WriteString("  </g>\n")
	sb.WriteString("</svg>")
}

// pathData formats a closed polygon the way d3 symbols are written.
func pathData(pts []dial.Point) string {
	if len(pts) == 0 {
		return ""
	}
	var sb strings.Builder
	sb.WriteString("M" + pair(pts[0]))
	for i, p := range pts[1:] {
		if i == 0 {
			sb.WriteString("L")
		} else {
			sb.WriteString(" ")
		}
		sb.WriteString(pair(p))
	}
	sb.WriteString("Z")
	return sb.String()
}
