package anim

import (
	"time"

	"github.com/san-kum/fractalzoom/internal/fractal"
)

const (
	DefaultTotalSteps   = 30
	DefaultTickDuration = 33 * time.Millisecond

	// Wheel zoom factors.
	ZoomIn  = 1.1
	ZoomOut = 0.9
)

type Viewport = fractal.Viewport

type Phase int

const (
	Idle Phase = iota
	Animating
)

func (p Phase) String() string {
	if p == Animating {
		return "animating"
	}
	return "idle"
}

type Config struct {
	Dimensions    fractal.Dimensions
	MaxIterations uint32
	TotalSteps    uint32
	TickDuration  time.Duration
}

func DefaultConfig() Config {
	return Config{
		Dimensions:    fractal.DefaultDimensions(),
		MaxIterations: fractal.DefaultMaxIterations,
		TotalSteps:    DefaultTotalSteps,
		TickDuration:  DefaultTickDuration,
	}
}

type AnimationState struct {
	Current        Viewport
	Target         Viewport
	StepsRemaining uint32
	TotalSteps     uint32
}

// Frame is one rendered step. Pixels belongs to the receiver.
type Frame struct {
	Pixels         fractal.PixelBuffer
	Viewport       Viewport
	Dimensions     fractal.Dimensions
	Step           uint32
	StepsRemaining uint32
	Final          bool
	RenderTime     time.Duration
}

type Observer interface {
	OnFrame(f Frame)
}

// ObserverFunc adapts a plain function to Observer.
type ObserverFunc func(f Frame)

func (fn ObserverFunc) OnFrame(f Frame) { fn(f) }

type Cause int

const (
	CauseRequest Cause = iota
	CauseWheel
	CauseClick
)

func (c Cause) String() string {
	switch c {
	case CauseWheel:
		return "wheel"
	case CauseClick:
		return "click"
	default:
		return "request"
	}
}

// TargetEvent reports a new target that originated at a raster pixel.
type TargetEvent struct {
	X, Y   int32
	Target Viewport
	Cause  Cause
}

type TargetObserver interface {
	OnTargetChanged(ev TargetEvent)
}
