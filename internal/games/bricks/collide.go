package bricks

import "github.com/pixeldeck/arcade/internal/core"

// resolveCollisions resolves the ball against walls, bricks and paddle, in
// that order. The order is load-bearing: a ball that overlaps two targets in
// the same frame is resolved only by the first match, and at most one brick
// dies per frame, row 0 taking precedence over row 1.
func (g *Game) resolveCollisions(in core.Buttons, events []Event) []Event {
	b := &g.ball
	size := float64(g.cfg.Ball.Size)

	// Side walls
	if b.X <= 0 {
		b.X = 0
		b.VX = -b.VX
	} else if b.X+size >= float64(core.ScreenW) {
		b.X = float64(core.ScreenW) - size
		b.VX = -b.VX
	}

	// Top of playfield
	if b.Y <= 0 {
		b.Y = 0
		b.VY = -b.VY
	}

	// Bricks: scan row 0 in column order, then row 1 only if row 0 missed.
	ballRect := g.BallRect()
	hit := false
	for row := 0; row < FieldRows && !hit; row++ {
		for col := 0; col < FieldCols; col++ {
			if !g.field.Alive(row, col) {
				continue
			}
			if !g.BrickRect(row, col).Intersects(ballRect) {
				continue
			}
			g.field.Kill(row, col)
			b.VY = -b.VY
			g.score++
			events = append(events, Event{Kind: EventBrickDestroyed, Row: row, Col: col})
			hit = true
			break
		}
	}

	// Paddle: only a falling ball can bounce off it.
	if b.VY > 0 && g.PaddleRect().Intersects(g.BallRect()) {
		b.Y = float64(g.cfg.Paddle.Y - g.cfg.Ball.Size)
		b.VY = -b.VY

		// English: steer the bounce if exactly one direction is held at
		// the moment of impact.
		if in.Left != in.Right {
			if in.Left {
				b.VX -= g.cfg.Ball.English
			} else {
				b.VX += g.cfg.Ball.English
			}
		}
		b.VX = core.ClampF(b.VX, -g.cfg.Ball.MaxSpeedX, g.cfg.Ball.MaxSpeedX)
	}

	return events
}
