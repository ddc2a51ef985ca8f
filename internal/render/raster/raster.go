// Package raster draws a recorded dial into an image and encodes it.
package raster

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"math"

	"angle-selector.klederson.com/internal/config"
	"angle-selector.klederson.com/internal/dial"
	"angle-selector.klederson.com/internal/render"
	"github.com/HugoSmits86/nativewebp"
	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
)

// ReadoutHeight is the band under the dial holding the readout text.
const ReadoutHeight = 20

const strokeWidth = 1.0

var (
	colorBackground = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	colorCenter     = color.RGBA{R: 255, A: 255}
	colorOutline    = color.RGBA{R: 0xEE, G: 0xEE, B: 0xEE, A: 255}
	colorTick       = color.RGBA{R: 70, G: 130, B: 180, A: 255}
	colorNeedle     = color.RGBA{R: 0xCC, G: 0x07, B: 0x07, A: 255}
	colorText       = color.RGBA{R: 0x33, G: 0x33, B: 0x33, A: 255}
)

// Draw rasterises the scene with the arrow at its final rotation. The image
// is the container size plus a ReadoutHeight band for the readout.
func Draw(s *render.Scene) *image.RGBA {
	w := int(math.Ceil(s.Width))
	h := int(math.Ceil(s.Height))
	ss := config.Supersample

	big := image.NewRGBA(image.Rect(0, 0, w*ss, h*ss))
	xdraw.Draw(big, big.Bounds(), image.NewUniform(colorBackground), image.Point{}, xdraw.Src)
	p := painter{dst: big, scale: float64(ss)}

	for _, c := range s.Circles {
		switch c.Role {
		case dial.RoleDial:
			p.ring(c.Center, c.R-strokeWidth/2, strokeWidth, colorOutline)
		case dial.RoleTick:
			p.disc(c.Center, c.R, colorTick)
		case dial.RoleCenter:
			p.disc(c.Center, c.R, colorCenter)
		}
	}

	rot := 0.0
	if s.Rotated {
		rot = s.Target
	}
	turn := func(pt dial.Point) dial.Point { return dial.Rotate(pt, s.Pivot, rot) }

	for _, l := range s.Lines {
		p.segment(turn(l.From), turn(l.To), strokeWidth, colorNeedle)
	}
	for _, path := range s.Paths {
		pts := make([]dial.Point, len(path.Points))
		for i, pt := range path.Points {
			pts[i] = turn(pt.Add(path.Translate))
		}
		p.fill(colorNeedle, pts)
	}

	out := image.NewRGBA(image.Rect(0, 0, w, h+ReadoutHeight))
	xdraw.Draw(out, out.Bounds(), image.NewUniform(colorBackground), image.Point{}, xdraw.Src)
	xdraw.CatmullRom.Scale(out, image.Rect(0, 0, w, h), big, big.Bounds(), xdraw.Over, nil)

	drawReadout(out, s.Text, w, h)
	return out
}

func drawReadout(dst *image.RGBA, text string, w, h int) {
	if text == "" {
		return
	}
	face := basicfont.Face7x13
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(colorText),
		Face: face,
	}
	width := d.MeasureString(text).Ceil()
	x := (w - width) / 2
	if x < 0 {
		x = 0
	}
	d.Dot = fixed.P(x, h+face.Ascent+(ReadoutHeight-face.Height)/2)
	d.DrawString(text)
}

// Encode writes img in the given snapshot format.
func Encode(w io.Writer, img image.Image, format string) error {
	switch format {
	case config.FormatPNG:
		return png.Encode(w, img)
	case config.FormatWebP:
		if err := nativewebp.Encode(w, img, nil); err != nil {
			return fmt.Errorf("raster: webp encode: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("raster: unsupported format %q", format)
	}
}

// painter fills polygons given in container coordinates on a supersampled
// destination.
type painter struct {
	dst   *image.RGBA
	scale float64
}

// fill draws the union of contours. Contours wound in opposite directions
// cancel, which is how rings get their hole.
func (p painter) fill(c color.Color, contours ...[]dial.Point) {
	b := p.dst.Bounds()
	r := vector.NewRasterizer(b.Dx(), b.Dy())
	for _, pts := range contours {
		if len(pts) < 3 {
			continue
		}
		r.MoveTo(p.px(pts[0]))
		for _, pt := range pts[1:] {
			r.LineTo(p.px(pt))
		}
		r.ClosePath()
	}
	r.Draw(p.dst, b, image.NewUniform(c), image.Point{})
}

func (p painter) px(pt dial.Point) (float32, float32) {
	return float32(pt.X * p.scale), float32(pt.Y * p.scale)
}

func (p painter) disc(center dial.Point, r float64, c color.Color) {
	p.fill(c, circlePoints(center, r, false))
}

func (p painter) ring(center dial.Point, r, width float64, c color.Color) {
	outer := circlePoints(center, r+width/2, false)
	inner := circlePoints(center, math.Max(0, r-width/2), true)
	p.fill(c, outer, inner)
}

func (p painter) segment(from, to dial.Point, width float64, c color.Color) {
	dx, dy := to.X-from.X, to.Y-from.Y
	length := math.Hypot(dx, dy)
	if length == 0 {
		return
	}
	nx, ny := -dy/length*width/2, dx/length*width/2
	p.fill(c, []dial.Point{
		{X: from.X + nx, Y: from.Y + ny},
		{X: to.X + nx, Y: to.Y + ny},
		{X: to.X - nx, Y: to.Y - ny},
		{X: from.X - nx, Y: from.Y - ny},
	})
}

func circlePoints(center dial.Point, r float64, reverse bool) []dial.Point {
	n := int(math.Max(32, math.Ceil(r*2)))
	pts := make([]dial.Point, n)
	for i := range pts {
		a := 2 * math.Pi * float64(i) / float64(n)
		if reverse {
			a = -a
		}
		pts[i] = dial.Point{X: center.X + r*math.Cos(a), Y: center.Y + r*math.Sin(a)}
	}
	return pts
}
