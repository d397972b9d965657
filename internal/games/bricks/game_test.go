package bricks

import (
	"testing"

	"github.com/pixeldeck/arcade/internal/config"
	"github.com/pixeldeck/arcade/internal/core"
)

func newTestGame() *Game {
	g := New(config.DefaultBricksConfig())
	g.Reset(core.DefaultRuntimeConfig())
	return g
}

func TestInitialState(t *testing.T) {
	g := newTestGame()

	if g.Phase() != PhaseResting {
		t.Errorf("phase = %v, want PhaseResting", g.Phase())
	}
	if g.Armed() {
		t.Error("game should start unarmed")
	}
	if g.Score() != 0 {
		t.Errorf("score = %d, want 0", g.Score())
	}
	if got := g.field.CountAlive(); got != FieldRows*FieldCols {
		t.Errorf("alive bricks = %d, want %d", got, FieldRows*FieldCols)
	}

	// Paddle centered, ball pinned above its center.
	wantX := float64(core.ScreenW-g.cfg.Paddle.Width) / 2
	if g.paddle.X != wantX {
		t.Errorf("paddle.X = %v, want %v", g.paddle.X, wantX)
	}
	wantBallX := g.paddle.X + float64(g.cfg.Paddle.Width-g.cfg.Ball.Size)/2
	if g.ball.X != wantBallX {
		t.Errorf("ball.X = %v, want %v", g.ball.X, wantBallX)
	}
	if g.ball.Y >= float64(g.cfg.Paddle.Y) {
		t.Errorf("ball.Y = %v, should rest above the paddle at y=%d", g.ball.Y, g.cfg.Paddle.Y)
	}
}

func TestArmedLatch(t *testing.T) {
	g := newTestGame()

	// Launch before any movement does nothing: the latch is not set.
	g.Step(core.Buttons{Launch: true})
	if g.Armed() || g.Phase() != PhaseResting {
		t.Fatal("launch must be gated behind the armed latch")
	}

	// One frame of holding a direction arms the game.
	g.Step(core.Buttons{Left: true})
	if !g.Armed() {
		t.Fatal("holding a direction should arm the game")
	}

	// Releasing everything does not disarm.
	g.Step(core.Buttons{})
	if !g.Armed() {
		t.Error("armed latch must not revert on release")
	}

	// Now launch works.
	g.Step(core.Buttons{Launch: true})
	if g.Phase() != PhaseInFlight {
		t.Errorf("phase = %v, want PhaseInFlight after armed launch", g.Phase())
	}
}

func TestLaunchVelocityRampsWithScore(t *testing.T) {
	tests := []struct {
		name   string
		score  int
		wantVY float64
	}{
		{"fresh game", 0, -2.8},
		{"mid game", 50, -(2.8 + 0.05*50)},
		{"at cap", 96, -(2.8 + 0.05*96)},
		{"beyond cap", 200, -(2.8 + 0.05*96)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := newTestGame()
			g.score = tc.score
			g.armed = true
			g.Step(core.Buttons{Launch: true})

			if diff := g.ball.VY - tc.wantVY; diff > 1e-9 || diff < -1e-9 {
				t.Errorf("VY = %v, want %v", g.ball.VY, tc.wantVY)
			}
			if g.ball.VX != g.cfg.Ball.ServeSpeedX {
				t.Errorf("VX = %v, want serve speed %v", g.ball.VX, g.cfg.Ball.ServeSpeedX)
			}
		})
	}
}

func TestServeDirectionContinuity(t *testing.T) {
	g := newTestGame()

	// Simulate a previous flight that ended moving leftward.
	g.armed = true
	g.Step(core.Buttons{Launch: true})
	g.ball.VX = -g.cfg.Ball.MaxSpeedX
	g.ball.Y = float64(core.ScreenH) + 10
	g.Step(core.Buttons{})
	if g.Phase() != PhaseResting {
		t.Fatal("ball past the bottom should fold back to resting")
	}

	// The next serve keeps the leftward sign at serve magnitude.
	g.Step(core.Buttons{Right: true}) // re-arm
	g.Step(core.Buttons{Launch: true})
	if g.ball.VX != -g.cfg.Ball.ServeSpeedX {
		t.Errorf("VX = %v, want %v (leftward serve)", g.ball.VX, -g.cfg.Ball.ServeSpeedX)
	}
}

func TestMissKeepsScoreAndDisarms(t *testing.T) {
	g := newTestGame()
	g.score = 7
	g.armed = true
	g.Step(core.Buttons{Launch: true})

	g.ball.Y = float64(core.ScreenH) + 10
	result := g.Step(core.Buttons{})

	if g.Phase() != PhaseResting {
		t.Errorf("phase = %v, want PhaseResting after miss", g.Phase())
	}
	if g.Armed() {
		t.Error("miss must clear the armed latch")
	}
	if g.Score() != 7 {
		t.Errorf("score = %d, want 7 (a miss never costs points)", g.Score())
	}
	if !hasEvent(result.Events, EventBallMissed) {
		t.Error("expected EventBallMissed")
	}
}

func TestLevelClearRepopulatesBelowMidpoint(t *testing.T) {
	g := newTestGame()
	g.score = 16
	g.armed = true
	g.Step(core.Buttons{Launch: true})

	for row := 0; row < FieldRows; row++ {
		for col := 0; col < FieldCols; col++ {
			g.field.Kill(row, col)
		}
	}

	// Ball below the screen midpoint: the clear fires.
	g.ball.X = 150
	g.ball.Y = 150
	g.ball.VX = 0
	g.ball.VY = 0
	result := g.Step(core.Buttons{})

	if got := g.field.CountAlive(); got != FieldRows*FieldCols {
		t.Errorf("alive bricks = %d, want full repopulation", got)
	}
	if g.Phase() != PhaseResting || g.Armed() {
		t.Error("level clear should return to resting, unarmed")
	}
	if g.Score() != 16 {
		t.Errorf("score = %d, want 16 (score persists across levels)", g.Score())
	}
	if !hasEvent(result.Events, EventLevelCleared) {
		t.Error("expected EventLevelCleared")
	}
}

func TestLevelClearWaitsForMidpoint(t *testing.T) {
	g := newTestGame()
	g.armed = true
	g.Step(core.Buttons{Launch: true})

	for row := 0; row < FieldRows; row++ {
		for col := 0; col < FieldCols; col++ {
			g.field.Kill(row, col)
		}
	}

	// Ball still in the upper half: no repopulation yet.
	g.ball.X = 150
	g.ball.Y = 100
	g.ball.VX = 0
	g.ball.VY = 0
	g.Step(core.Buttons{})

	if !g.field.Empty() {
		t.Error("field must stay empty until the ball passes the midpoint")
	}
	if g.Phase() != PhaseInFlight {
		t.Errorf("phase = %v, want PhaseInFlight", g.Phase())
	}
}

func TestPaddleStaysInBounds(t *testing.T) {
	g := newTestGame()
	maxX := float64(core.ScreenW - g.cfg.Paddle.Width)

	// Grind against each wall, then swing back and forth.
	frames := []core.Buttons{}
	for i := 0; i < 200; i++ {
		frames = append(frames, core.Buttons{Left: true})
	}
	for i := 0; i < 200; i++ {
		frames = append(frames, core.Buttons{Right: true})
	}
	for i := 0; i < 200; i++ {
		frames = append(frames, core.Buttons{Left: i%7 < 4, Right: i%7 >= 4})
	}

	for i, in := range frames {
		g.Step(in)
		if g.paddle.X < 0 || g.paddle.X > maxX {
			t.Fatalf("frame %d: paddle.X = %v outside [0, %v]", i, g.paddle.X, maxX)
		}
	}
}

func TestPaddleCoastsWithFriction(t *testing.T) {
	g := newTestGame()

	for i := 0; i < 10; i++ {
		g.Step(core.Buttons{Right: true})
	}
	v := g.paddle.V
	if v <= 0 {
		t.Fatalf("paddle should be moving right, V = %v", v)
	}

	// Release: velocity decays but does not stop dead.
	g.Step(core.Buttons{})
	if g.paddle.V <= 0 || g.paddle.V >= v {
		t.Errorf("after release V = %v, want decayed but still positive (was %v)", g.paddle.V, v)
	}

	// Holding both directions behaves like holding neither.
	v = g.paddle.V
	g.Step(core.Buttons{Left: true, Right: true})
	want := v * g.cfg.Paddle.Friction
	if diff := g.paddle.V - want; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("both held: V = %v, want friction decay to %v", g.paddle.V, want)
	}
}

func TestScoreMonotonicAndSpeedBounded(t *testing.T) {
	g := newTestGame()
	g.Step(core.Buttons{Right: true})
	g.Step(core.Buttons{Launch: true})

	prevScore := g.Score()
	for i := 0; i < 3000; i++ {
		in := core.Buttons{Left: i%11 < 5, Right: i%11 >= 5 && i%11 < 9}
		if g.Phase() == PhaseResting {
			in.Launch = true
			if !g.Armed() {
				in.Left = true
			}
		}
		g.Step(in)

		if g.Score() < prevScore {
			t.Fatalf("frame %d: score decreased %d -> %d", i, prevScore, g.Score())
		}
		prevScore = g.Score()

		if g.Phase() == PhaseInFlight {
			if vx := g.ball.VX; vx > g.cfg.Ball.MaxSpeedX || vx < -g.cfg.Ball.MaxSpeedX {
				t.Fatalf("frame %d: |VX| = %v exceeds clamp %v", i, vx, g.cfg.Ball.MaxSpeedX)
			}
		}
	}
}

func TestBrickRectGeometry(t *testing.T) {
	g := newTestGame()

	for row := 0; row < FieldRows; row++ {
		for col := 0; col < FieldCols; col++ {
			r := g.BrickRect(row, col)
			if r.X < 0 || r.Right() > core.ScreenW {
				t.Errorf("brick (%d,%d) horizontally off screen: %+v", row, col, r)
			}
			if r.Y < hudBottom {
				t.Errorf("brick (%d,%d) overlaps the HUD band: %+v", row, col, r)
			}
			// Neighbors must not overlap.
			if col+1 < FieldCols {
				if r.Intersects(g.BrickRect(row, col+1)) {
					t.Errorf("brick (%d,%d) overlaps its right neighbor", row, col)
				}
			}
		}
	}

	if g.BrickRect(0, 0).Intersects(g.BrickRect(1, 0)) {
		t.Error("row 0 and row 1 bricks overlap")
	}
}

func hasEvent(events []Event, kind EventKind) bool {
	for _, ev := range events {
		if ev.Kind == kind {
			return true
		}
	}
	return false
}
