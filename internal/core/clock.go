package core

import "time"

// Clock abstracts the host's monotonic time source and sleep primitive so
// simulation cadence can be driven synthetically in tests.
type Clock interface {
	// Now returns monotonic seconds. Only differences are meaningful.
	Now() float64

	// Sleep suspends the calling goroutine for the given number of seconds.
	Sleep(seconds float64)
}

// SystemClock is the real Clock backed by the runtime's monotonic clock.
type SystemClock struct {
	epoch time.Time
}

// NewSystemClock creates a system clock. Now() counts from creation.
func NewSystemClock() *SystemClock {
	return &SystemClock{epoch: time.Now()}
}

// Now returns seconds elapsed since the clock was created.
func (c *SystemClock) Now() float64 {
	return time.Since(c.epoch).Seconds()
}

// Sleep suspends for the given number of seconds.
func (c *SystemClock) Sleep(seconds float64) {
	if seconds <= 0 {
		return
	}
	time.Sleep(time.Duration(seconds * float64(time.Second)))
}

// MaxFrameDelta caps the elapsed time a single frame may report, so a
// stalled clock or a paused process cannot inject a huge simulation step.
const MaxFrameDelta = 0.05

// Pacer gates the frame loop to a fixed cadence. Tick measures the time
// since the previous call, sleeps out the remainder of the frame period if
// the loop ran fast, and returns the actual elapsed time clamped to
// MaxFrameDelta. It never fails, it only delays.
type Pacer struct {
	clk    Clock
	period float64
	last   float64
}

// NewPacer creates a pacer targeting tickRate frames per second.
func NewPacer(clk Clock, tickRate int) *Pacer {
	if tickRate <= 0 {
		tickRate = 60
	}
	return &Pacer{
		clk:    clk,
		period: 1.0 / float64(tickRate),
		last:   clk.Now(),
	}
}

// Tick blocks until at least one frame period has passed since the previous
// Tick, then returns the measured elapsed seconds, clamped.
func (p *Pacer) Tick() float64 {
	now := p.clk.Now()
	elapsed := now - p.last

	if elapsed < p.period {
		p.clk.Sleep(p.period - elapsed)
		now = p.clk.Now()
		elapsed = now - p.last
	}

	p.last = now

	if elapsed > MaxFrameDelta {
		elapsed = MaxFrameDelta
	}
	return elapsed
}
