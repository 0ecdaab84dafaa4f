package anim

import (
	"errors"
	"fmt"
)

var (
	// ErrIdle indicates Tick was called with no transition in progress.
	ErrIdle = errors.New("anim: no transition in progress")

	// ErrBadConfig indicates a zero step count or invalid raster.
	ErrBadConfig = errors.New("anim: invalid animator configuration")
)

// TickError wraps a render failure with the step it happened on.
type TickError struct {
	Step     uint32
	Viewport Viewport
	Wrapped  error
}

func (e *TickError) Error() string {
	return fmt.Sprintf("tick %d at %s: %v", e.Step, e.Viewport, e.Wrapped)
}

func (e *TickError) Unwrap() error {
	return e.Wrapped
}
