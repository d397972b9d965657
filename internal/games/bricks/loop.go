package bricks

import (
	"context"

	"github.com/pixeldeck/arcade/internal/config"
	"github.com/pixeldeck/arcade/internal/core"
	"github.com/pixeldeck/arcade/internal/registry"
)

// Run drives the frame loop against the host's collaborators until the
// context is cancelled: pace, poll, step, redraw, flush. It returns the
// final score of the run.
//
// The pacer's elapsed time is measured and clamped for cadence but not fed
// into the integrator — the physics constants are per-frame, matching the
// fixed-step design of the simulation.
func Run(ctx context.Context, d core.Display, keys core.KeySource, clk core.Clock, opts registry.RunOptions) (int, error) {
	cfg, err := config.LoadBricks(opts.ConfigPath)
	if err != nil {
		return 0, err
	}

	tickRate := opts.Runtime.TickRate
	if tickRate <= 0 {
		tickRate = cfg.Frame.TickRate
	}

	g := New(cfg)
	g.Reset(opts.Runtime)

	r := NewRenderer(d, g)
	r.Reset()
	if f, ok := d.(core.Flusher); ok {
		if err := f.Flush(); err != nil {
			return g.Score(), err
		}
	}

	pacer := core.NewPacer(clk, tickRate)

	for {
		select {
		case <-ctx.Done():
			return g.Score(), nil
		default:
		}

		pacer.Tick()

		in := core.Poll(keys)
		result := g.Step(in)
		r.Sync(result.Events)

		if f, ok := d.(core.Flusher); ok {
			if err := f.Flush(); err != nil {
				return g.Score(), err
			}
		}
	}
}

func init() {
	registry.Register(registry.Game{
		ID:    "bricks",
		Title: "Brick Breaker",
		Run:   Run,
	})
}
