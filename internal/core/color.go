package core

// Color represents a foreground color for a screen cell.
// Values map onto ANSI 256-color codes in the platform renderer.
type Color uint8

// Palette used by the reef renderer.
const (
	ColorDefault Color = iota
	ColorDeepBlue
	ColorBlue
	ColorCyan
	ColorTeal
	ColorSand
	ColorSeaweed
	ColorCoral
	ColorFish
	ColorFishDead
	ColorGold
	ColorShark
	ColorOctopus
	ColorJelly
	ColorBubble
	ColorWhite
	ColorGray
)
