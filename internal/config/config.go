package config

import "time"

const (
	// Dial face
	TickCount        = 12  // Tick marks around the dial
	TickInset        = 5.0 // Ticks sit this far inside the outline
	TickRadius       = 5.0 // Tick mark circle radius
	CenterMarkRadius = 5.0 // Center marker circle radius
	CapSymbolArea    = 64  // Needle cap triangle area (square px)

	// Needle animation
	TransitionDuration = 300 * time.Millisecond
	TargetFPS          = 30 // Frames per second while a transition runs

	// Terminal host
	AspectRatio   = 0.5 // Terminal char aspect correction (chars are ~2:1 tall)
	DefaultWidth  = 41  // Dial container width in cells
	DefaultHeight = 21  // Dial container height in cells
	HistorySize   = 16  // Accepted angles kept for the history panel

	// Window / snapshot host
	DefaultSize = 240 // Dial container side in pixels
	Supersample = 2   // Raster supersampling factor

	// App
	AppName    = "ANGLE-SELECTOR"
	AppVersion = "1.0"
)
