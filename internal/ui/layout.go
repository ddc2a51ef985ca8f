package ui

import "github.com/charmbracelet/lipgloss"

// ComposeLayout joins the dial panel and history panel horizontally,
// with menu bar on top and status bar on bottom.
func ComposeLayout(menuBar, dialPanel, historyPanel, statusBar string) string {
	middle := lipgloss.JoinHorizontal(lipgloss.Top, dialPanel, historyPanel)
	return lipgloss.JoinVertical(lipgloss.Left, menuBar, middle, statusBar)
}
