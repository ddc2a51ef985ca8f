package app

import (
	"strings"
	"testing"
	"time"

	"angle-selector.klederson.com/internal/config"
	tea "github.com/charmbracelet/bubbletea"
)

func newSizedModel(t *testing.T, opts config.Options) AppModel {
	t.Helper()
	m, err := New(opts)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	start := time.Unix(50, 0)
	m.shared.now = func() time.Time { return start }
	m.shared.surface.SetClock(func() time.Time { return start })

	updated, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	return updated.(AppModel)
}

func mouse(m AppModel, x, y int, action tea.MouseAction) (AppModel, tea.Cmd) {
	updated, cmd := m.Update(tea.MouseMsg{X: x, Y: y, Action: action, Button: tea.MouseButtonLeft})
	return updated.(AppModel), cmd
}

func TestClickTopOfDial(t *testing.T) {
	m := newSizedModel(t, config.Default())
	col, row := m.DialOrigin()

	m, _ = mouse(m, col+20, row, tea.MouseActionPress)
	if !m.Selector().Pressed() {
		t.Fatal("press on the dial should enter the pressed state")
	}
	if m.Selector().Display() != "" {
		t.Error("press alone must not change the display")
	}

	m, cmd := mouse(m, col+20, row, tea.MouseActionRelease)
	if m.Selector().Pressed() {
		t.Error("release should return to idle")
	}
	if got := m.Selector().Display(); got != "0 Degree" {
		t.Errorf("Display = %q, want %q", got, "0 Degree")
	}
	if cmd == nil {
		t.Error("click should start the animation tick")
	}
}

func TestSecondClickWins(t *testing.T) {
	m := newSizedModel(t, config.Default())
	col, row := m.DialOrigin()

	m, _ = mouse(m, col+40, row+10, tea.MouseActionPress)
	m, _ = mouse(m, col+40, row+10, tea.MouseActionRelease)
	m, _ = mouse(m, col+20, row+20, tea.MouseActionPress)
	m, cmd := mouse(m, col+20, row+20, tea.MouseActionRelease)

	if got := m.Selector().Display(); got != "180 Degree" {
		t.Errorf("Display = %q, want %q", got, "180 Degree")
	}
	if cmd != nil {
		t.Error("tick already running, no second tick loop expected")
	}
	if h := m.Selector().History(); len(h) != 2 || h[0] != 90 || h[1] != 180 {
		t.Errorf("History = %v", h)
	}
	if !strings.Contains(m.View(), "180 Degree") {
		t.Error("view missing readout")
	}
}

func TestReleaseWithoutPress(t *testing.T) {
	m := newSizedModel(t, config.Default())
	col, row := m.DialOrigin()

	m, cmd := mouse(m, col+20, row, tea.MouseActionRelease)
	if cmd != nil || m.Selector().Display() != "" {
		t.Error("release without press must not click")
	}
}

func TestPressOffDial(t *testing.T) {
	m := newSizedModel(t, config.Default())

	m, _ = mouse(m, 0, 0, tea.MouseActionPress)
	if m.Selector().Pressed() {
		t.Error("press off the dial should be ignored")
	}
}

func TestDragIsInert(t *testing.T) {
	m := newSizedModel(t, config.Default())
	col, row := m.DialOrigin()

	m, _ = mouse(m, col+20, row, tea.MouseActionPress)
	m, _ = mouse(m, col+40, row+10, tea.MouseActionMotion)
	if m.Selector().Display() != "" || m.Selector().Angle() != 0 {
		t.Error("motion while pressed must not change the angle")
	}
}

func TestFlippedDirection(t *testing.T) {
	m := newSizedModel(t, config.Options{Direction: -1, Width: 41, Height: 21})
	col, row := m.DialOrigin()

	m, _ = mouse(m, col+20, row, tea.MouseActionPress)
	m, _ = mouse(m, col+20, row, tea.MouseActionRelease)
	if got := m.Selector().Angle(); got != 180 {
		t.Errorf("flipped top = %d, want 180", got)
	}
}

func TestTickStopsWhenSettled(t *testing.T) {
	m := newSizedModel(t, config.Default())
	col, row := m.DialOrigin()
	m, _ = mouse(m, col+40, row+10, tea.MouseActionPress)
	m, _ = mouse(m, col+40, row+10, tea.MouseActionRelease)

	updated, cmd := m.Update(TickMsg(time.Unix(50, 0)))
	if cmd == nil {
		t.Error("tick should continue while the needle moves")
	}
	m = updated.(AppModel)

	later := time.Unix(51, 0)
	m.shared.now = func() time.Time { return later }
	_, cmd = m.Update(TickMsg(later))
	if cmd != nil {
		t.Error("tick should stop once the needle settles")
	}
	if m.shared.ticking {
		t.Error("ticking flag not cleared")
	}
}

func TestKeys(t *testing.T) {
	m := newSizedModel(t, config.Default())
	col, row := m.DialOrigin()
	m, _ = mouse(m, col+20, row, tea.MouseActionPress)
	m, _ = mouse(m, col+20, row, tea.MouseActionRelease)

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'c'}})
	m = updated.(AppModel)
	if len(m.Selector().History()) != 0 {
		t.Error("c should clear history")
	}

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil {
		t.Fatal("q should quit")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q should return tea.Quit")
	}
}

func TestViewBeforeSize(t *testing.T) {
	m, err := New(config.Default())
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(m.View(), "Initializing") {
		t.Error("expected placeholder view")
	}
}

func TestNewRejectsEmptyContainer(t *testing.T) {
	if _, err := New(config.Options{Width: 0, Height: 21}); err == nil {
		t.Error("expected error for zero-width container")
	}
}
