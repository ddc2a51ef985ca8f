// Package gui hosts the dial in a desktop window.
package gui

import (
	"errors"
	"fmt"
	"image/color"
	"log"
	"time"

	"angle-selector.klederson.com/internal/config"
	"angle-selector.klederson.com/internal/dial"
	"angle-selector.klederson.com/internal/render"
	"angle-selector.klederson.com/internal/render/raster"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/ncruces/zenity"
)

const (
	margin        = 20
	readoutHeight = 40
)

var (
	colorBackground = color.RGBA{R: 250, G: 250, B: 250, A: 255}
	colorCenter     = color.RGBA{R: 255, A: 255}
	colorOutline    = color.RGBA{R: 0xDD, G: 0xDD, B: 0xDD, A: 255}
	colorTick       = color.RGBA{R: 70, G: 130, B: 180, A: 255}
	colorNeedle     = color.RGBA{R: 0xCC, G: 0x07, B: 0x07, A: 255}
)

// Game is the Ebitengine game running one dial.
type Game struct {
	scene    *render.Scene
	selector *dial.Selector
	size     int

	fillImg *ebiten.Image
	fillVs  []ebiten.Vertex
	fillIs  []uint16

	status string
}

// New builds a window game with a opts.Size pixel dial.
func New(opts config.Options) (*Game, error) {
	scene := render.NewScene(float64(opts.Size), float64(opts.Size))
	scene.Left, scene.Top = margin, margin

	sel, err := dial.New(scene, opts)
	if err != nil {
		return nil, err
	}

	fillImg := ebiten.NewImage(1, 1)
	fillImg.Fill(color.White)

	return &Game{
		scene:    scene,
		selector: sel,
		size:     opts.Size,
		fillImg:  fillImg,
		fillVs:   make([]ebiten.Vertex, 0, 8),
		fillIs:   make([]uint16, 0, 8),
		status:   "Click the dial. S: save snapshot, Esc/Q: quit",
	}, nil
}

// WindowSize returns the window size that fits the dial and its readout.
func (g *Game) WindowSize() (int, int) {
	return g.size + 2*margin, g.size + 2*margin + readoutHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.WindowSize()
}

func (g *Game) Update() error {
	x, y := ebiten.CursorPosition()
	p := dial.Pointer{ClientX: float64(x), ClientY: float64(y)}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.selector.PointerDown(p)
	}
	if g.selector.Pressed() {
		g.selector.PointerMove(p)
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		wasPressed := g.selector.Pressed()
		g.selector.PointerUp()
		if wasPressed {
			if angle, err := g.selector.Click(p); err == nil {
				log.Printf("angle %d", angle)
			} else if !errors.Is(err, dial.ErrOutsideDial) {
				log.Printf("click at %d,%d ignored: %v", x, y, err)
			}
		}
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		if err := g.saveSnapshot(); err != nil {
			g.status = err.Error()
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(colorBackground)

	s := g.scene
	off := dial.Point{X: s.Left, Y: s.Top}
	rot := s.Rotation(time.Now())
	turn := func(p dial.Point) dial.Point { return dial.Rotate(p, s.Pivot, rot).Add(off) }

	for _, c := range s.Circles {
		at := c.Center.Add(off)
		switch c.Role {
		case dial.RoleDial:
			vector.StrokeCircle(screen, float32(at.X), float32(at.Y), float32(c.R), 1, colorOutline, true)
		case dial.RoleTick:
			vector.DrawFilledCircle(screen, float32(at.X), float32(at.Y), float32(c.R), colorTick, true)
		case dial.RoleCenter:
			vector.DrawFilledCircle(screen, float32(at.X), float32(at.Y), float32(c.R), colorCenter, true)
		}
	}

	for _, l := range s.Lines {
		from, to := turn(l.From), turn(l.To)
		vector.StrokeLine(screen, float32(from.X), float32(from.Y), float32(to.X), float32(to.Y), 1, colorNeedle, true)
	}
	for _, p := range s.Paths {
		g.fillPolygon(screen, p, turn)
	}

	readoutY := margin + g.size + 8
	ebitenutil.DebugPrintAt(screen, s.Text, margin, readoutY)
	ebitenutil.DebugPrintAt(screen, g.status, margin, readoutY+16)
}

func (g *Game) fillPolygon(screen *ebiten.Image, p dial.Path, turn func(dial.Point) dial.Point) {
	path := vector.Path{}
	for i, pt := range p.Points {
		at := turn(pt.Add(p.Translate))
		if i == 0 {
			path.MoveTo(float32(at.X), float32(at.Y))
		} else {
			path.LineTo(float32(at.X), float32(at.Y))
		}
	}
	path.Close()

	g.fillVs, g.fillIs = path.AppendVerticesAndIndicesForFilling(g.fillVs[:0], g.fillIs[:0])
	for i := range g.fillVs {
		g.fillVs[i].ColorR = float32(colorNeedle.R) / 255
		g.fillVs[i].ColorG = float32(colorNeedle.G) / 255
		g.fillVs[i].ColorB = float32(colorNeedle.B) / 255
		g.fillVs[i].ColorA = float32(colorNeedle.A) / 255
	}
	screen.DrawTriangles(g.fillVs, g.fillIs, g.fillImg, &ebiten.DrawTrianglesOptions{
		AntiAlias: true,
	})
}

func (g *Game) saveSnapshot() error {
	filename, err := zenity.SelectFileSave(
		zenity.Title("Save Dial Snapshot"),
		zenity.Filename("dial.png"),
		zenity.ConfirmOverwrite(),
		zenity.FileFilters{{
			Name:     "Images",
			Patterns: []string{"*.png", "*.webp"},
		}},
	)
	if err != nil {
		if errors.Is(err, zenity.ErrCanceled) {
			return nil
		}
		return err
	}

	if err := raster.Save(filename, g.scene, ""); err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}
	g.status = "Saved " + filename
	return nil
}

// Run opens the window and blocks until it is closed.
func Run(opts config.Options) error {
	g, err := New(opts)
	if err != nil {
		return err
	}

	w, h := g.WindowSize()
	ebiten.SetWindowSize(w*2, h*2)
	ebiten.SetWindowTitle(fmt.Sprintf("%s v%s", config.AppName, config.AppVersion))

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
