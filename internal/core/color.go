package core

// Color is an opaque RGB color.
type Color struct {
	R, G, B uint8
}

// Palette used by the arcade. Games pick from these rather than inventing
// their own so every host surface renders them consistently.
var (
	ColorBlack  = Color{0, 0, 0}
	ColorWhite  = Color{255, 255, 255}
	ColorGray   = Color{120, 120, 120}
	ColorRed    = Color{220, 60, 50}
	ColorOrange = Color{240, 150, 40}
	ColorYellow = Color{240, 220, 0}
	ColorGreen  = Color{80, 180, 80}
	ColorBlue   = Color{60, 90, 220}
	ColorCyan   = Color{60, 190, 210}
)
