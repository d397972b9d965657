package bricks

import (
	"fmt"

	"github.com/pixeldeck/arcade/internal/core"
)

// Sprite and field colors.
var (
	colorBackground = core.ColorBlack
	colorPaddle     = core.ColorWhite
	colorBall       = core.ColorWhite
	colorText       = core.ColorWhite
	colorCredits    = core.ColorGray
	colorRows       = [FieldRows]core.Color{core.ColorRed, core.ColorOrange}
)

// HUD layout. The HUD lives inside the playfield, so the ball can fly over
// it; hudBottom is the heuristic band that triggers a repaint when the ball
// newly enters it.
const (
	scoreTextX  = 4
	scoreTextY  = 4
	hudBottom   = 24
	creditsText = "pixeldeck arcade"
	creditsY    = 4
)

// Renderer keeps the screen in sync with the world using incremental draw
// calls only: a full-screen repaint happens once, at Reset. It owns the
// record of what it last drew; the simulation never reads any of this.
type Renderer struct {
	d core.Display
	g *Game

	prevBall     core.Rect
	prevPaddle   core.Rect
	lastScore    int
	creditsShown bool
	ballWasInHUD bool
}

// NewRenderer creates a renderer for the given game and surface.
func NewRenderer(d core.Display, g *Game) *Renderer {
	return &Renderer{d: d, g: g}
}

// Reset paints the full initial frame: background, brick field, HUD with
// the credits banner, and the sprites at their current positions.
func (r *Renderer) Reset() {
	r.d.FillRect(core.NewRect(0, 0, core.ScreenW, core.ScreenH), colorBackground)
	r.drawField()

	r.creditsShown = true
	r.lastScore = r.g.Score()
	r.drawHUD()

	r.prevPaddle = r.g.PaddleRect()
	r.prevBall = r.g.BallRect()
	r.d.FillRect(r.prevPaddle, colorPaddle)
	r.d.FillRect(r.prevBall, colorBall)
	r.ballWasInHUD = r.prevBall.Y < hudBottom
}

// Sync emits the draw calls for one frame: brick events first, then the
// unconditional erase/redraw of the two moving sprites, then the HUD when
// its triggers fire. Calling Sync twice with no state change in between
// issues nothing beyond the sprite erase/redraw — the sprite pass is not
// diffed against "no movement", an accepted inefficiency.
func (r *Renderer) Sync(events []Event) {
	for _, ev := range events {
		switch ev.Kind {
		case EventBrickDestroyed:
			// Bricks are static once drawn, so a destroyed brick is
			// erased directly instead of joining the per-frame diff.
			r.d.FillRect(r.g.BrickRect(ev.Row, ev.Col), colorBackground)
		case EventLevelCleared:
			r.drawField()
		}
	}

	r.d.FillRect(r.prevBall, colorBackground)
	r.d.FillRect(r.prevPaddle, colorBackground)

	paddle := r.g.PaddleRect()
	ball := r.g.BallRect()
	r.d.FillRect(paddle, colorPaddle)
	r.d.FillRect(ball, colorBall)
	r.prevPaddle = paddle
	r.prevBall = ball

	// The credits banner goes away for good the moment the first brick
	// scores, even though the rest of the HUD keeps repainting.
	score := r.g.Score()
	if r.creditsShown && r.lastScore == 0 && score > 0 {
		r.d.FillRect(r.creditsRect(), colorBackground)
		r.creditsShown = false
	}

	inHUD := ball.Y < hudBottom
	if score != r.lastScore || (inHUD && !r.ballWasInHUD) {
		r.drawHUD()
	}
	r.lastScore = score
	r.ballWasInHUD = inHUD
}

// drawField repaints the whole brick band and every alive brick. Used at
// level start and on level clear; individual destruction never comes here.
func (r *Renderer) drawField() {
	b := r.g.cfg.Bricks
	band := core.NewRect(0, b.Top, core.ScreenW, FieldRows*b.Height+(FieldRows-1)*b.RowGap)
	r.d.FillRect(band, colorBackground)

	for row := 0; row < FieldRows; row++ {
		for col := 0; col < FieldCols; col++ {
			if r.g.field.Alive(row, col) {
				r.d.FillRect(r.g.BrickRect(row, col), colorRows[row])
			}
		}
	}
}

// drawHUD repaints the score text, and the credits banner while it is still
// on screen.
func (r *Renderer) drawHUD() {
	r.d.DrawText(fmt.Sprintf("SCORE %d", r.g.Score()), scoreTextX, scoreTextY, colorText, colorBackground)
	if r.creditsShown {
		cr := r.creditsRect()
		r.d.DrawText(creditsText, cr.X, cr.Y, colorCredits, colorBackground)
	}
}

// creditsRect is the fixed screen rectangle of the centered credits banner.
func (r *Renderer) creditsRect() core.Rect {
	w := core.TextWidth(creditsText)
	return core.NewRect((core.ScreenW-w)/2, creditsY, w, core.GlyphH)
}
