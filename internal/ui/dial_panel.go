package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Rows above the dial inside the panel: top border and title.
const dialPanelHeader = 2

// DialOrigin returns the screen cell of the dial's top-left corner for a
// panel drawn at (panelCol, panelRow) with the given outer width.
func DialOrigin(panelCol, panelRow, panelWidth, dialCols int) (col, row int) {
	return panelCol + 1 + dialPad(panelWidth, dialCols), panelRow + dialPanelHeader
}

func dialPad(panelWidth, dialCols int) int {
	pad := (panelWidth - 2 - dialCols) / 2
	if pad < 0 {
		pad = 0
	}
	return pad
}

// RenderDialPanel wraps the dial and its readout with a styled border.
// The dial itself is rendered by termdial to keep this package free of
// dial geometry.
func RenderDialPanel(width, height int, dialContent string, dialCols int, display string) string {
	innerW := width - 2
	pad := strings.Repeat(" ", dialPad(width, dialCols))

	lines := []string{StylePanelTitle.Render("DIAL")}
	for _, l := range strings.Split(dialContent, "\n") {
		lines = append(lines, pad+l)
	}
	lines = append(lines, "")

	readout := StyleDisplay.Render(display)
	gap := (innerW - lipgloss.Width(readout)) / 2
	if gap < 0 {
		gap = 0
	}
	lines = append(lines, strings.Repeat(" ", gap)+readout)

	return StylePanelBorder.Width(innerW).Height(height - 2).Render(strings.Join(lines, "\n"))
}
