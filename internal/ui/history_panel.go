package ui

import (
	"fmt"
	"strings"
)

// RenderHistoryPanel lists accepted angles newest first.
func RenderHistoryPanel(history []int, width, height int) string {
	innerW := width - 4
	if innerW < 10 {
		innerW = 10
	}

	title := StylePanelTitle.Render(fmt.Sprintf("HISTORY [%d]", len(history)))
	separator := StyleSeparator.Render(strings.Repeat("-", innerW))
	lines := []string{title, separator}

	innerH := height - 2
	space := innerH - len(lines) - 1
	if space < 1 {
		space = 1
	}

	if len(history) == 0 {
		lines = append(lines, StyleHelp.Render("  click the dial"))
	}
	for i := len(history) - 1; i >= 0 && len(history)-1-i < space; i-- {
		idx := StyleHistoryIndex.Render(fmt.Sprintf(" %3d ", i+1))
		entry := fmt.Sprintf("%5d Degree", history[i])
		if i == len(history)-1 {
			lines = append(lines, idx+StyleHistoryLatest.Render(entry))
			continue
		}
		lines = append(lines, idx+StyleHistoryAngle.Render(entry))
	}

	for len(lines) < innerH-1 {
		lines = append(lines, "")
	}
	lines = append(lines, StyleHelp.Render(" [C] clear"))

	return StylePanelBorder.Width(width - 2).Height(innerH).Render(strings.Join(lines, "\n"))
}
