// Package term hosts the pixel display and key contracts on an ANSI
// terminal: pixels become colored cells, key auto-repeat approximates held
// buttons. It works over any read/write pair, so the same host drives both a
// local TTY and an SSH session.
package term

import (
	"bytes"
	"fmt"
	"io"

	"github.com/pixeldeck/arcade/internal/core"
)

// Cell scale: each terminal cell covers this many logical pixels. 4x8 turns
// the 320x240 grid into 80x30 cells, which fits a standard terminal.
const (
	cellPxW = 4
	cellPxH = 8
)

// Surface renders the logical pixel space as truecolor terminal cells. Draw
// calls mutate an in-memory cell grid and mark cells dirty; Flush emits ANSI
// sequences for the dirty cells only, so a frame's cost is proportional to
// what changed, not to the screen size.
type Surface struct {
	w    io.Writer
	cols int
	rows int

	bg    []core.Color
	fg    []core.Color
	glyph []rune // 0 means no glyph, paint a plain cell
	dirty []bool

	buf bytes.Buffer
}

// NewSurface creates a surface writing to w. The caller owns terminal modes;
// the surface only emits cursor moves and colors.
func NewSurface(w io.Writer) *Surface {
	cols := core.ScreenW / cellPxW
	rows := core.ScreenH / cellPxH
	n := cols * rows
	return &Surface{
		w:     w,
		cols:  cols,
		rows:  rows,
		bg:    make([]core.Color, n),
		fg:    make([]core.Color, n),
		glyph: make([]rune, n),
		dirty: make([]bool, n),
	}
}

// Size returns the cell grid dimensions.
func (s *Surface) Size() (cols, rows int) {
	return s.cols, s.rows
}

// FillRect fills a pixel rectangle. A cell is painted when the rectangle
// overlaps any of its pixels, so small sprites never vanish between cells.
func (s *Surface) FillRect(r core.Rect, c core.Color) {
	r = r.Clip(core.NewRect(0, 0, core.ScreenW, core.ScreenH))
	if r.W <= 0 || r.H <= 0 {
		return
	}

	cx0 := r.X / cellPxW
	cy0 := r.Y / cellPxH
	cx1 := (r.Right() - 1) / cellPxW
	cy1 := (r.Bottom() - 1) / cellPxH

	for cy := cy0; cy <= cy1; cy++ {
		for cx := cx0; cx <= cx1; cx++ {
			i := cy*s.cols + cx
			if s.bg[i] == c && s.glyph[i] == 0 {
				continue
			}
			s.bg[i] = c
			s.glyph[i] = 0
			s.dirty[i] = true
		}
	}
}

// DrawText draws a string with its top-left corner at pixel (x, y). Text
// lands at cell granularity: one rune per cell on the row containing y.
func (s *Surface) DrawText(text string, x, y int, fg, bg core.Color) {
	cy := y / cellPxH
	if cy < 0 || cy >= s.rows {
		return
	}

	cx := x / cellPxW
	for _, r := range text {
		if cx >= s.cols {
			break
		}
		if cx >= 0 {
			i := cy*s.cols + cx
			if s.glyph[i] != r || s.fg[i] != fg || s.bg[i] != bg {
				s.glyph[i] = r
				s.fg[i] = fg
				s.bg[i] = bg
				s.dirty[i] = true
			}
		}
		cx++
	}
}

// Flush writes the dirty cells to the terminal as runs of same-row cells,
// then clears the dirty set. A frame with no changes writes nothing.
func (s *Surface) Flush() error {
	s.buf.Reset()

	for cy := 0; cy < s.rows; cy++ {
		cx := 0
		for cx < s.cols {
			if !s.dirty[cy*s.cols+cx] {
				cx++
				continue
			}

			// Cursor rows and columns are 1-based.
			fmt.Fprintf(&s.buf, "\x1b[%d;%dH", cy+1, cx+1)
			for cx < s.cols && s.dirty[cy*s.cols+cx] {
				i := cy*s.cols + cx
				s.dirty[i] = false
				s.writeCell(i)
				cx++
			}
		}
	}

	if s.buf.Len() == 0 {
		return nil
	}
	s.buf.WriteString("\x1b[0m")
	if _, err := s.w.Write(s.buf.Bytes()); err != nil {
		return fmt.Errorf("term: flush: %w", err)
	}
	// Drain a buffered writer so the frame reaches the terminal now.
	if f, ok := s.w.(interface{ Flush() error }); ok {
		if err := f.Flush(); err != nil {
			return fmt.Errorf("term: flush: %w", err)
		}
	}
	return nil
}

func (s *Surface) writeCell(i int) {
	bg := s.bg[i]
	fmt.Fprintf(&s.buf, "\x1b[48;2;%d;%d;%dm", bg.R, bg.G, bg.B)
	if s.glyph[i] == 0 {
		s.buf.WriteByte(' ')
		return
	}
	fg := s.fg[i]
	fmt.Fprintf(&s.buf, "\x1b[38;2;%d;%d;%dm", fg.R, fg.G, fg.B)
	s.buf.WriteRune(s.glyph[i])
}
