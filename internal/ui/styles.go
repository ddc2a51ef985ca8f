package ui

import "github.com/charmbracelet/lipgloss"

// Chrome palette
var (
	ColorBright    = lipgloss.Color("#EEEEEE")
	ColorText      = lipgloss.Color("#C8C8C8")
	ColorDim       = lipgloss.Color("#6E6E6E")
	ColorSteel     = lipgloss.Color("#4682B4")
	ColorNeedle    = lipgloss.Color("#CC0707")
	ColorBarBg     = lipgloss.Color("#1C232B")
	ColorBorder    = lipgloss.Color("#4682B4")
	ColorWarning   = lipgloss.Color("#FFAA00")
	ColorCursorBar = lipgloss.Color("#26323D")
)

// Pre-built styles
var (
	StyleMenuBar = lipgloss.NewStyle().
			Background(ColorBarBg).
			Foreground(ColorBright).
			Bold(true).
			Padding(0, 1)

	StyleMenuKey = lipgloss.NewStyle().
			Foreground(ColorBright).
			Bold(true)

	StyleMenuLabel = lipgloss.NewStyle().
			Foreground(ColorText)

	StyleStatusBar = lipgloss.NewStyle().
			Background(ColorBarBg).
			Foreground(ColorText).
			Padding(0, 1)

	StyleStatusIdle = lipgloss.NewStyle().
			Foreground(ColorSteel).
			Bold(true)

	StyleStatusPressed = lipgloss.NewStyle().
				Foreground(ColorWarning).
				Bold(true)

	StylePanelBorder = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(ColorBorder)

	StylePanelTitle = lipgloss.NewStyle().
			Foreground(ColorBright).
			Bold(true).
			Padding(0, 1)

	StyleDisplay = lipgloss.NewStyle().
			Foreground(ColorNeedle).
			Bold(true)

	StyleSeparator = lipgloss.NewStyle().
			Foreground(ColorDim)

	StyleHistoryIndex = lipgloss.NewStyle().
				Foreground(ColorDim)

	StyleHistoryAngle = lipgloss.NewStyle().
				Foreground(ColorText)

	StyleHistoryLatest = lipgloss.NewStyle().
				Foreground(ColorBright).
				Background(ColorCursorBar).
				Bold(true)

	StyleHelp = lipgloss.NewStyle().
			Foreground(ColorDim)
)
