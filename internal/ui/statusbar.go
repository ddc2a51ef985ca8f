package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// RenderStatusBar renders the bottom status bar.
func RenderStatusBar(width int, pressed bool, angle int, needleDeg float64, flipped bool) string {
	status := StyleStatusIdle.Render("[IDLE]")
	if pressed {
		status = StyleStatusPressed.Render("[PRESSED]")
	}

	direction := "normal"
	if flipped {
		direction = "flipped"
	}

	info := fmt.Sprintf(" Angle: %d  Needle: %.0fdeg  Direction: %s", angle, needleDeg, direction)
	content := status + StyleStatusBar.Render(info)

	gap := width - lipgloss.Width(content) - 2
	if gap < 0 {
		gap = 0
	}
	return StyleStatusBar.Width(width).Render(content + strings.Repeat(" ", gap))
}
