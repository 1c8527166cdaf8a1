package ui

import "time"

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons
const (
	IconSettings = "⚙"
)

// Text fragments
const (
	ProgressLabelFormat = "%s %d%%"
	SizeLabelFormat     = "%s: %s (%dx%d)"
)

// Layout sizing
const (
	ScreenPadding   float32 = 16
	PreviewMinWidth float32 = 200
	PreviewMinH     float32 = 200
)

// Popup behavior
const (
	PopUpAutoHide = 2 * time.Second
)
