package anim

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/san-kum/fractalzoom/internal/compute"
	"github.com/san-kum/fractalzoom/internal/fractal"
)

type Animator struct {
	cfg             Config
	backend         compute.Backend
	state           AnimationState
	phase           Phase
	observers       []Observer
	targetObservers []TargetObserver
	busy            atomic.Bool
}

type Option func(*Animator)

func WithBackend(b compute.Backend) Option {
	return func(a *Animator) { a.backend = b }
}

func WithObserver(o Observer) Option {
	return func(a *Animator) { a.observers = append(a.observers, o) }
}

func WithTargetObserver(o TargetObserver) Option {
	return func(a *Animator) { a.targetObservers = append(a.targetObservers, o) }
}

// New creates an idle animator showing initial. Zero MaxIterations is
// kept as is; zero TotalSteps and TickDuration take their defaults.
func New(cfg Config, initial Viewport, opts ...Option) (*Animator, error) {
	if cfg.TotalSteps == 0 {
		cfg.TotalSteps = DefaultTotalSteps
	}
	if cfg.TickDuration <= 0 {
		cfg.TickDuration = DefaultTickDuration
	}
	if err := cfg.Dimensions.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBadConfig, err)
	}
	if err := initial.Validate(); err != nil {
		return nil, err
	}

	a := &Animator{
		cfg: cfg,
		state: AnimationState{
			Current:    initial,
			Target:     initial,
			TotalSteps: cfg.TotalSteps,
		},
		phase:           Idle,
		observers:       make([]Observer, 0),
		targetObservers: make([]TargetObserver, 0),
	}
	for _, opt := range opts {
		opt(a)
	}
	if a.backend == nil {
		a.backend = compute.Default()
	}
	return a, nil
}

func (a *Animator) AddObserver(o Observer) { a.observers = append(a.observers, o) }
func (a *Animator) AddTargetObserver(o TargetObserver) {
	a.targetObservers = append(a.targetObservers, o)
}

func (a *Animator) Config() Config                 { return a.cfg }
func (a *Animator) Dimensions() fractal.Dimensions { return a.cfg.Dimensions }
func (a *Animator) Backend() compute.Backend       { return a.backend }
func (a *Animator) Phase() Phase                   { return a.phase }
func (a *Animator) CurrentViewport() Viewport      { return a.state.Current }
func (a *Animator) Target() Viewport               { return a.state.Target }
func (a *Animator) State() AnimationState          { return a.state }

// Render rasterizes vp at the animator's dimensions and iteration budget.
func (a *Animator) Render(vp Viewport) (fractal.PixelBuffer, error) {
	return Render(a.backend, vp, a.cfg.Dimensions, a.cfg.MaxIterations)
}

// Render rasterizes vp through backend.
func Render(backend compute.Backend, vp Viewport, dims fractal.Dimensions, maxIterations uint32) (fractal.PixelBuffer, error) {
	if err := dims.Validate(); err != nil {
		return nil, err
	}
	return backend.Render(vp, dims, maxIterations)
}

// RequestZoom replaces the target and restarts the step count. An invalid
// target leaves the animator untouched.
func (a *Animator) RequestZoom(centerX, centerY, scale float64) error {
	target := Viewport{CenterX: centerX, CenterY: centerY, Scale: scale}
	if err := target.Validate(); err != nil {
		return err
	}

	a.enter()
	defer a.leave()

	a.state.Target = target
	a.state.StepsRemaining = a.state.TotalSteps
	a.phase = Animating
	return nil
}

// Tick advances one step toward the target, renders, and notifies observers.
func (a *Animator) Tick() (Frame, error) {
	frame, err := a.advance()
	if err != nil {
		return Frame{}, err
	}
	for _, o := range a.observers {
		o.OnFrame(frame)
	}
	return frame, nil
}

func (a *Animator) advance() (Frame, error) {
	a.enter()
	defer a.leave()

	if a.phase != Animating || a.state.StepsRemaining == 0 {
		return Frame{}, ErrIdle
	}

	// Nothing is committed until the frame has rendered.
	s := a.state
	n := float64(s.StepsRemaining)
	next := Viewport{
		CenterX: s.Current.CenterX + (s.Target.CenterX-s.Current.CenterX)/n,
		CenterY: s.Current.CenterY + (s.Target.CenterY-s.Current.CenterY)/n,
		Scale:   s.Current.Scale + (s.Target.Scale-s.Current.Scale)/n,
	}
	remaining := s.StepsRemaining - 1
	final := remaining == 0
	if final {
		next = s.Target
	}
	step := s.TotalSteps - remaining

	start := time.Now()
	buf, err := a.Render(next)
	if err != nil {
		return Frame{}, &TickError{Step: step, Viewport: next, Wrapped: err}
	}

	a.state.Current = next
	a.state.StepsRemaining = remaining
	if final {
		a.phase = Idle
	}

	return Frame{
		Pixels:         buf,
		Viewport:       next,
		Dimensions:     a.cfg.Dimensions,
		Step:           step,
		StepsRemaining: remaining,
		Final:          final,
		RenderTime:     time.Since(start),
	}, nil
}

func (a *Animator) enter() {
	if !a.busy.CompareAndSwap(false, true) {
		panic("anim: concurrent mutation of animation state")
	}
}

func (a *Animator) leave() { a.busy.Store(false) }

func (a *Animator) notifyTarget(ev TargetEvent) {
	for _, o := range a.targetObservers {
		o.OnTargetChanged(ev)
	}
}
