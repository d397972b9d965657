package bricks

import "github.com/pixeldeck/arcade/internal/core"

// integratePaddle applies one frame of paddle kinematics. Holding exactly
// one direction accelerates toward it; otherwise velocity decays by the
// friction factor, which gives the paddle its coasting feel instead of an
// instant stop. The wall clamp moves position only — velocity survives, so
// the paddle leaves the wall at full speed.
func (g *Game) integratePaddle(in core.Buttons) {
	p := &g.paddle
	c := g.cfg.Paddle

	switch {
	case in.Left && !in.Right:
		p.V -= c.Accel
	case in.Right && !in.Left:
		p.V += c.Accel
	default:
		p.V *= c.Friction
	}

	p.V = core.ClampF(p.V, -c.MaxSpeed, c.MaxSpeed)
	p.X += p.V
	p.X = core.ClampF(p.X, 0, float64(core.ScreenW-c.Width))
}

// advance moves the ball by its full velocity vector, once per frame.
// There is no substepping: at the configured speeds the per-frame travel
// stays below the smallest collision target, and splitting the step would
// shift when level completion lands relative to the final brick.
func (b *Ball) advance() {
	b.X += b.VX
	b.Y += b.VY
}
