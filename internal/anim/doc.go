// Package anim drives animated zoom and pan transitions over the Mandelbrot set.
//
// An [Animator] owns the authoritative viewport. A transition starts with
// [Animator.RequestZoom] (or the input policies [Animator.ZoomAt] and
// [Animator.RecenterAt]) and advances one step per [Animator.Tick]. Each
// tick moves the viewport by the remaining distance divided by the
// remaining steps, renders it, and hands the frame to every registered
// [Observer]. The last tick snaps exactly onto the target.
//
// # Example
//
//	a, _ := anim.New(anim.DefaultConfig(), fractal.DefaultViewport())
//	a.ZoomAt(400, 300, anim.ZoomIn)
//	clock, stop := anim.Ticker(a.Config().TickDuration)
//	defer stop()
//	err := a.Run(ctx, clock)
//
// # Thread Safety
//
// An Animator must be driven from a single goroutine. Overlapping calls to
// Tick or RequestZoom are a contract violation and panic. Rendering inside
// a tick may fan out across goroutines through the configured backend.
package anim
