package core

// Logical display dimensions shared by every game and host surface.
// The grid is fixed: hosts that cannot show 320x240 pixels scale, they do
// not renegotiate the coordinate space.
const (
	ScreenW = 320
	ScreenH = 240
)

// Logical glyph cell for DrawText. Hosts fit each character into this box,
// so callers can size erase rectangles for text they drew.
const (
	GlyphW = 8
	GlyphH = 14
)

// TextWidth returns the pixel width of a string drawn with DrawText.
func TextWidth(s string) int {
	return len(s) * GlyphW
}

// Flusher is optionally implemented by buffered displays. The frame loop
// flushes after each frame so a frame's draw calls land together.
type Flusher interface {
	Flush() error
}

// Display is the rendering surface contract. Implementations draw
// immediately; there is no frame buffer the caller can read back, which is
// why renderers keep their own record of what they last drew.
//
// Draw calls are assumed to succeed. A host whose surface fails has no
// recovery path beyond ending the run.
type Display interface {
	// FillRect fills a pixel rectangle with a solid color. Rectangles
	// partially or fully outside the screen are clipped by the host.
	FillRect(r Rect, c Color)

	// DrawText draws a text string with its top-left corner at (x, y),
	// foreground over background.
	DrawText(s string, x, y int, fg, bg Color)
}
