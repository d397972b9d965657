package bricks

import (
	"github.com/pixeldeck/arcade/internal/config"
	"github.com/pixeldeck/arcade/internal/core"
)

// Phase is the ball's lifecycle state. A miss is transient: it folds back
// into PhaseResting with the armed latch cleared within the same frame.
type Phase int

const (
	PhaseResting Phase = iota // Ball pinned above the paddle center
	PhaseInFlight             // Ball integrating and colliding every frame
)

// EventKind classifies the observable events a simulation step can produce.
type EventKind int

const (
	EventLaunched EventKind = iota
	EventBrickDestroyed
	EventBallMissed
	EventLevelCleared
)

// Event is one observable outcome of a step. Row/Col are set for
// EventBrickDestroyed only.
type Event struct {
	Kind EventKind
	Row  int
	Col  int
}

// StepResult is returned by Game.Step after each simulation frame.
type StepResult struct {
	Score  int
	Events []Event
}

// Paddle has a real-valued horizontal position (left edge) and velocity; its
// vertical position and size are fixed by config.
type Paddle struct {
	X float64
	V float64
}

// Ball has a real-valued position (top-left corner) and velocity. While
// resting its position is pinned above the paddle center; the horizontal
// velocity keeps the sign of the previous flight so serve direction carries
// over.
type Ball struct {
	X, Y   float64
	VX, VY float64
}

// Game owns the authoritative world state. There is exactly one instance
// per run, mutated in place by Step; nothing here touches the display.
type Game struct {
	cfg config.BricksConfig

	paddle Paddle
	ball   Ball
	field  Field
	score  int
	phase  Phase
	armed  bool
}

// New creates a game with the given tuning. Call Reset before stepping.
func New(cfg config.BricksConfig) *Game {
	return &Game{cfg: cfg}
}

// Reset puts the world in its initial state: resting unarmed, score zero,
// paddle centered, all bricks alive. The first serve goes rightward.
func (g *Game) Reset(_ core.RuntimeConfig) {
	g.score = 0
	g.phase = PhaseResting
	g.armed = false
	g.field.Repopulate()

	g.paddle = Paddle{
		X: float64(core.ScreenW-g.cfg.Paddle.Width) / 2,
	}
	g.ball = Ball{VX: g.cfg.Ball.ServeSpeedX}
	g.pinBall()
}

// Score returns the current score. It never decreases within a run.
func (g *Game) Score() int {
	return g.score
}

// Phase returns the current lifecycle phase.
func (g *Game) Phase() Phase {
	return g.phase
}

// Armed reports whether the launch latch is set. It latches the first frame
// a direction button is held and clears only on a miss or level change.
func (g *Game) Armed() bool {
	return g.armed
}

// Step advances the simulation by one frame: paddle kinematics, then the
// phase machine (serve handling or ball flight with collision resolution).
func (g *Game) Step(in core.Buttons) StepResult {
	var events []Event

	g.integratePaddle(in)

	switch g.phase {
	case PhaseResting:
		if in.Left || in.Right {
			g.armed = true
		}
		g.pinBall()
		if g.armed && in.Launch {
			g.launch()
			events = append(events, Event{Kind: EventLaunched})
		}

	case PhaseInFlight:
		g.ball.advance()
		events = g.resolveCollisions(in, events)

		switch {
		case g.ball.Y > float64(core.ScreenH):
			// Miss. Score is kept, the armed latch is not.
			g.phase = PhaseResting
			g.armed = false
			g.pinBall()
			events = append(events, Event{Kind: EventBallMissed})

		case g.field.Empty() && g.ball.Y > float64(core.ScreenH)/2:
			// Level clear fires only once the ball has passed the screen
			// midpoint, so the final brick's bounce is seen before the
			// field refills.
			g.field.Repopulate()
			g.phase = PhaseResting
			g.armed = false
			g.pinBall()
			events = append(events, Event{Kind: EventLevelCleared})
		}
	}

	return StepResult{Score: g.score, Events: events}
}

// launch serves the ball. The vertical speed ramps with score up to the
// configured cap; the horizontal direction keeps the sign the ball had on
// its previous flight.
func (g *Game) launch() {
	ramp := g.score
	if ramp > g.cfg.Ball.LaunchCap {
		ramp = g.cfg.Ball.LaunchCap
	}

	dir := 1.0
	if g.ball.VX < 0 {
		dir = -1.0
	}

	g.ball.VX = dir * g.cfg.Ball.ServeSpeedX
	g.ball.VY = -(g.cfg.Ball.LaunchBase + g.cfg.Ball.LaunchRamp*float64(ramp))
	g.phase = PhaseInFlight
}

// pinBall rests the ball above the paddle's center. Velocity is left alone:
// its horizontal sign is the serve-direction memory.
func (g *Game) pinBall() {
	g.ball.X = g.paddle.X + float64(g.cfg.Paddle.Width-g.cfg.Ball.Size)/2
	g.ball.Y = float64(g.cfg.Paddle.Y - g.cfg.Ball.Size)
}

// PaddleRect returns the paddle's screen rectangle, truncated to pixels.
func (g *Game) PaddleRect() core.Rect {
	return core.NewRect(int(g.paddle.X), g.cfg.Paddle.Y, g.cfg.Paddle.Width, g.cfg.Paddle.Height)
}

// BallRect returns the ball's screen rectangle, truncated to pixels.
func (g *Game) BallRect() core.Rect {
	return core.NewRect(int(g.ball.X), int(g.ball.Y), g.cfg.Ball.Size, g.cfg.Ball.Size)
}

// BrickRect maps a brick index to its fixed screen rectangle.
func (g *Game) BrickRect(row, col int) core.Rect {
	b := g.cfg.Bricks
	return core.NewRect(
		b.Left+col*(b.Width+b.Gap),
		b.Top+row*(b.Height+b.RowGap),
		b.Width,
		b.Height,
	)
}
