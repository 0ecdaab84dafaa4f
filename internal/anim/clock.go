package anim

import (
	"context"
	"time"
)

// Run calls Tick for every value received from clock until the animator is
// idle, the clock closes, or ctx is done.
func (a *Animator) Run(ctx context.Context, clock <-chan time.Time) error {
	for a.phase == Animating {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case _, ok := <-clock:
			if !ok {
				return nil
			}
			if _, err := a.Tick(); err != nil {
				return err
			}
		}
	}
	return nil
}

// Settle ticks without waiting until the animator is idle and returns the frames.
func (a *Animator) Settle() ([]Frame, error) {
	frames := make([]Frame, 0, a.state.StepsRemaining)
	for a.phase == Animating {
		f, err := a.Tick()
		if err != nil {
			return frames, err
		}
		frames = append(frames, f)
	}
	return frames, nil
}

// Ticker returns a clock channel firing every d and a stop function.
func Ticker(d time.Duration) (<-chan time.Time, func()) {
	t := time.NewTicker(d)
	return t.C, t.Stop
}
