package app

import (
	"errors"
	"log"
	"time"

	"angle-selector.klederson.com/internal/config"
	"angle-selector.klederson.com/internal/dial"
	"angle-selector.klederson.com/internal/termdial"
	"angle-selector.klederson.com/internal/ui"
	tea "github.com/charmbracelet/bubbletea"
)

const historyWidth = 24

// shared holds state shared between the Bubble Tea model copies.
// Because Bubble Tea uses value receivers, pointer fields ensure all copies
// see the same underlying data.
type shared struct {
	surface  *termdial.Surface
	selector *dial.Selector
	ticking  bool
	now      func() time.Time
}

// AppModel is the root Bubble Tea model for the angle selector.
type AppModel struct {
	width  int
	height int

	opts   config.Options
	shared *shared
}

// New builds the dial for a container of opts.Width×opts.Height cells.
func New(opts config.Options) (AppModel, error) {
	surface := termdial.NewSurface(opts.Width, opts.Height)
	sel, err := dial.New(surface, opts)
	if err != nil {
		return AppModel{}, err
	}
	return AppModel{
		opts: opts,
		shared: &shared{
			surface:  surface,
			selector: sel,
			now:      time.Now,
		},
	}, nil
}

// Selector exposes the dial, mainly for tests.
func (m AppModel) Selector() *dial.Selector {
	return m.shared.selector
}

func (m AppModel) Init() tea.Cmd {
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		col, row := m.DialOrigin()
		m.shared.surface.SetOffset(col, row)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m, m.handleMouse(msg)

	case TickMsg:
		if m.shared.surface.Animating(m.shared.now()) {
			return m, tickCmd()
		}
		m.shared.ticking = false
		return m, nil
	}

	return m, nil
}

func (m AppModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "Q", "ctrl+c", "esc":
		return m, tea.Quit

	case "c", "C":
		m.shared.selector.ClearHistory()
	}

	return m, nil
}

// handleMouse maps terminal mouse events onto the dial: press → pointer
// down, release → pointer up followed by a click when the press began on
// the dial, motion → the inert drag path.
func (m AppModel) handleMouse(msg tea.MouseMsg) tea.Cmd {
	sel := m.shared.selector
	p := termdial.PointerAt(msg.X, msg.Y)

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonLeft {
			sel.PointerDown(p)
		}

	case tea.MouseActionRelease:
		wasPressed := sel.Pressed()
		sel.PointerUp()
		if !wasPressed {
			return nil
		}
		angle, err := sel.Click(p)
		if err != nil {
			if !errors.Is(err, dial.ErrOutsideDial) {
				log.Printf("click at %d,%d ignored: %v", msg.X, msg.Y, err)
			}
			return nil
		}
		log.Printf("angle %d", angle)
		return m.startTicking()

	case tea.MouseActionMotion:
		sel.PointerMove(p)
	}
	return nil
}

func (m AppModel) startTicking() tea.Cmd {
	if m.shared.ticking {
		return nil
	}
	m.shared.ticking = true
	return tickCmd()
}

// DialOrigin returns the screen cell of the dial's top-left corner.
func (m AppModel) DialOrigin() (col, row int) {
	return ui.DialOrigin(0, 1, m.dialPanelWidth(), m.opts.Width)
}

func (m AppModel) dialPanelWidth() int {
	w := m.width - historyWidth
	if floor := m.opts.Width + 4; w < floor {
		w = floor
	}
	return w
}

func (m AppModel) View() string {
	if m.width == 0 || m.height == 0 {
		return "Initializing angle selector..."
	}

	menuH := 1
	statusH := 1
	bodyH := m.height - menuH - statusH
	if need := m.opts.Height + 6; bodyH < need {
		bodyH = need
	}

	now := m.shared.now()
	sel := m.shared.selector
	surface := m.shared.surface

	menuBar := ui.RenderMenuBar(m.width, m.opts.Flipped())

	dialW := m.dialPanelWidth()
	dialContent := termdial.Render(surface, now)
	dialPanel := ui.RenderDialPanel(dialW, bodyH, dialContent, surface.Cols(), surface.Text())

	historyPanel := ui.RenderHistoryPanel(sel.History(), historyWidth, bodyH)

	statusBar := ui.RenderStatusBar(m.width, sel.Pressed(), sel.Angle(),
		surface.Rotation(now), m.opts.Flipped())

	return ui.ComposeLayout(menuBar, dialPanel, historyPanel, statusBar)
}

func tickCmd() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(config.TargetFPS), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
