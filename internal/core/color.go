package core

// Color represents a foreground color for a screen cell.
// Theme slots are resolved by the platform from the configured theme;
// the remaining values are ANSI 256-color codes for terminal compatibility.
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault Color = iota
	ColorPrimary       // theme.primary
	ColorAccent        // theme.accent
	ColorBackground    // theme.background
	ColorHitbox        // debug overlay
	ColorDim           // decorative background stripes
	ColorRed
	ColorWhite
	ColorGray
)
