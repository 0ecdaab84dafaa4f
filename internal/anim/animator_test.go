package anim

import (
	"context"
	"errors"
	"math"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/fractalzoom/internal/compute"
	"github.com/san-kum/fractalzoom/internal/fractal"
)

type frameRecorder struct {
	frames []Frame
}

func (r *frameRecorder) OnFrame(f Frame) { r.frames = append(r.frames, f) }

// flakyBackend fails every render while failing is set.
type flakyBackend struct {
	compute.Backend
	failing bool
}

var errRenderFailed = errors.New("render failed")

func (b *flakyBackend) Render(vp fractal.Viewport, dims fractal.Dimensions, maxIterations uint32) (fractal.PixelBuffer, error) {
	if b.failing {
		return nil, errRenderFailed
	}
	return b.Backend.Render(vp, dims, maxIterations)
}

type targetRecorder struct {
	events []TargetEvent
}

func (r *targetRecorder) OnTargetChanged(ev TargetEvent) { r.events = append(r.events, ev) }

func smallConfig() Config {
	return Config{
		Dimensions:    fractal.Dimensions{Width: 16, Height: 12},
		MaxIterations: 50,
		TotalSteps:    30,
		TickDuration:  time.Millisecond,
	}
}

var _ = Describe("Animator", func() {
	var (
		a       *Animator
		frames  *frameRecorder
		targets *targetRecorder
	)

	BeforeEach(func() {
		frames = &frameRecorder{}
		targets = &targetRecorder{}
		var err error
		a, err = New(smallConfig(), fractal.DefaultViewport(),
			WithBackend(compute.NewSerialBackend()),
			WithObserver(frames),
			WithTargetObserver(targets),
		)
		Expect(err).NotTo(HaveOccurred())
	})

	Describe("construction", func() {
		It("starts idle on the initial viewport", func() {
			Expect(a.Phase()).To(Equal(Idle))
			Expect(a.CurrentViewport()).To(Equal(fractal.DefaultViewport()))
			Expect(a.State().StepsRemaining).To(BeZero())
			Expect(a.State().TotalSteps).To(Equal(uint32(30)))
		})

		It("fills in defaults for zero steps and tick duration", func() {
			cfg := smallConfig()
			cfg.TotalSteps = 0
			cfg.TickDuration = 0
			b, err := New(cfg, fractal.DefaultViewport())
			Expect(err).NotTo(HaveOccurred())
			Expect(b.Config().TotalSteps).To(Equal(uint32(DefaultTotalSteps)))
			Expect(b.Config().TickDuration).To(Equal(DefaultTickDuration))
			Expect(b.Backend().Name()).To(Equal("cpu"))
		})

		It("rejects empty rasters", func() {
			cfg := smallConfig()
			cfg.Dimensions.Height = 0
			_, err := New(cfg, fractal.DefaultViewport())
			Expect(err).To(MatchError(ErrBadConfig))
			Expect(errors.Is(err, fractal.ErrInvalidDimensions)).To(BeTrue())
		})

		It("rejects an invalid initial viewport", func() {
			_, err := New(smallConfig(), fractal.Viewport{Scale: -1})
			Expect(err).To(MatchError(fractal.ErrInvalidViewport))
		})
	})

	Describe("Render", func() {
		It("produces a full opaque buffer", func() {
			buf, err := a.Render(a.CurrentViewport())
			Expect(err).NotTo(HaveOccurred())
			Expect(buf).To(HaveLen(16 * 12 * 4))
			for i := 3; i < len(buf); i += 4 {
				Expect(buf[i]).To(Equal(uint8(255)))
			}
		})

		It("is deterministic", func() {
			first, _ := a.Render(a.CurrentViewport())
			second, _ := a.Render(a.CurrentViewport())
			Expect(first).To(Equal(second))
		})

		It("fails on zero dimensions without a buffer", func() {
			buf, err := Render(compute.NewSerialBackend(), fractal.DefaultViewport(), fractal.Dimensions{Width: 0, Height: 5}, 10)
			Expect(err).To(MatchError(fractal.ErrInvalidDimensions))
			Expect(buf).To(BeNil())
		})
	})

	Describe("RequestZoom", func() {
		It("moves to Animating with a full step budget", func() {
			Expect(a.RequestZoom(-0.5, 0.1, 400)).To(Succeed())
			Expect(a.Phase()).To(Equal(Animating))
			Expect(a.Target()).To(Equal(fractal.Viewport{CenterX: -0.5, CenterY: 0.1, Scale: 400}))
			Expect(a.State().StepsRemaining).To(Equal(uint32(30)))
			Expect(a.CurrentViewport()).To(Equal(fractal.DefaultViewport()))
		})

		DescribeTable("rejects invalid scales without changing state",
			func(scale float64) {
				before := a.State()
				err := a.RequestZoom(1, 1, scale)
				Expect(err).To(MatchError(fractal.ErrInvalidViewport))
				Expect(a.State()).To(Equal(before))
				Expect(a.Phase()).To(Equal(Idle))
			},
			Entry("zero", 0.0),
			Entry("negative", -10.0),
			Entry("NaN", math.NaN()),
			Entry("+Inf", math.Inf(1)),
		)

		It("keeps an in-flight transition intact when rejected", func() {
			Expect(a.RequestZoom(0.3, 0, 300)).To(Succeed())
			_, err := a.Tick()
			Expect(err).NotTo(HaveOccurred())
			before := a.State()

			Expect(a.RequestZoom(0, 0, 0)).NotTo(Succeed())
			Expect(a.State()).To(Equal(before))
			Expect(a.Phase()).To(Equal(Animating))
		})

		It("restarts the step count when a new target arrives mid-transition", func() {
			Expect(a.RequestZoom(1, 1, 1000)).To(Succeed())
			for i := 0; i < 15; i++ {
				_, err := a.Tick()
				Expect(err).NotTo(HaveOccurred())
			}
			Expect(a.State().StepsRemaining).To(Equal(uint32(15)))

			Expect(a.RequestZoom(-1, 0.5, 50)).To(Succeed())
			Expect(a.State().StepsRemaining).To(Equal(uint32(30)))
			Expect(a.Target()).To(Equal(fractal.Viewport{CenterX: -1, CenterY: 0.5, Scale: 50}))

			_, err := a.Settle()
			Expect(err).NotTo(HaveOccurred())
			Expect(a.CurrentViewport()).To(Equal(fractal.Viewport{CenterX: -1, CenterY: 0.5, Scale: 50}))
		})
	})

	Describe("Tick", func() {
		It("returns ErrIdle when nothing is animating", func() {
			_, err := a.Tick()
			Expect(err).To(MatchError(ErrIdle))
			Expect(frames.frames).To(BeEmpty())
		})

		It("lands exactly on the target after TotalSteps ticks", func() {
			target := fractal.Viewport{CenterX: -0.743643887037151, CenterY: 0.13182590420533, Scale: 1234.5678}
			Expect(a.RequestZoom(target.CenterX, target.CenterY, target.Scale)).To(Succeed())

			for i := 0; i < 30; i++ {
				_, err := a.Tick()
				Expect(err).NotTo(HaveOccurred())
			}

			cur := a.CurrentViewport()
			Expect(math.Float64bits(cur.CenterX)).To(Equal(math.Float64bits(target.CenterX)))
			Expect(math.Float64bits(cur.CenterY)).To(Equal(math.Float64bits(target.CenterY)))
			Expect(math.Float64bits(cur.Scale)).To(Equal(math.Float64bits(target.Scale)))
			Expect(a.Phase()).To(Equal(Idle))
		})

		It("emits one frame per tick and marks the last one final", func() {
			Expect(a.RequestZoom(0.1, 0.2, 250)).To(Succeed())
			_, err := a.Settle()
			Expect(err).NotTo(HaveOccurred())

			Expect(frames.frames).To(HaveLen(30))
			for i, f := range frames.frames {
				Expect(f.Step).To(Equal(uint32(i + 1)))
				Expect(f.StepsRemaining).To(Equal(uint32(29 - i)))
				Expect(f.Pixels).To(HaveLen(16 * 12 * 4))
				Expect(f.Final).To(Equal(i == 29))
			}
			Expect(frames.frames[29].Viewport).To(Equal(a.Target()))
		})

		It("moves monotonically toward the target", func() {
			Expect(a.RequestZoom(2, -1, 800)).To(Succeed())
			prev := a.CurrentViewport()
			for a.Phase() == Animating {
				f, err := a.Tick()
				Expect(err).NotTo(HaveOccurred())
				Expect(f.Viewport.CenterX).To(BeNumerically(">=", prev.CenterX))
				Expect(f.Viewport.CenterY).To(BeNumerically("<=", prev.CenterY))
				Expect(f.Viewport.Scale).To(BeNumerically(">=", prev.Scale))
				prev = f.Viewport
			}
		})

		It("renders frames that match a direct render of the same viewport", func() {
			Expect(a.RequestZoom(-0.5, 0, 300)).To(Succeed())
			f, err := a.Tick()
			Expect(err).NotTo(HaveOccurred())
			direct, err := a.Render(f.Viewport)
			Expect(err).NotTo(HaveOccurred())
			Expect(f.Pixels).To(Equal(direct))
		})
	})

	Describe("render failures", func() {
		var backend *flakyBackend

		BeforeEach(func() {
			backend = &flakyBackend{Backend: compute.NewSerialBackend(), failing: true}
			var err error
			a, err = New(smallConfig(), fractal.DefaultViewport(), WithBackend(backend), WithObserver(frames))
			Expect(err).NotTo(HaveOccurred())
		})

		It("leaves the state untouched when a tick cannot render", func() {
			Expect(a.RequestZoom(0.1, 0.2, 300)).To(Succeed())
			before := a.State()

			_, err := a.Tick()
			var tickErr *TickError
			Expect(errors.As(err, &tickErr)).To(BeTrue())
			Expect(tickErr.Step).To(Equal(uint32(1)))
			Expect(err).To(MatchError(errRenderFailed))

			Expect(a.State()).To(Equal(before))
			Expect(a.Phase()).To(Equal(Animating))
			Expect(frames.frames).To(BeEmpty())
		})

		It("retries the same step once rendering recovers", func() {
			Expect(a.RequestZoom(0.1, 0.2, 300)).To(Succeed())
			_, err := a.Tick()
			Expect(err).To(HaveOccurred())

			backend.failing = false
			_, err = a.Settle()
			Expect(err).NotTo(HaveOccurred())
			Expect(frames.frames).To(HaveLen(30))
			Expect(frames.frames[0].Step).To(Equal(uint32(1)))
			Expect(a.CurrentViewport()).To(Equal(fractal.Viewport{CenterX: 0.1, CenterY: 0.2, Scale: 300}))
		})

		It("stays animating when the final tick fails", func() {
			backend.failing = false
			Expect(a.RequestZoom(-1, 0, 100)).To(Succeed())
			for i := 0; i < 29; i++ {
				_, err := a.Tick()
				Expect(err).NotTo(HaveOccurred())
			}
			before := a.State()

			backend.failing = true
			_, err := a.Tick()
			Expect(err).To(MatchError(errRenderFailed))
			Expect(a.State()).To(Equal(before))
			Expect(a.State().StepsRemaining).To(Equal(uint32(1)))
			Expect(a.Phase()).To(Equal(Animating))

			backend.failing = false
			f, err := a.Tick()
			Expect(err).NotTo(HaveOccurred())
			Expect(f.Final).To(BeTrue())
			Expect(f.Viewport).To(Equal(a.Target()))
			Expect(a.Phase()).To(Equal(Idle))
		})
	})

	Describe("input policies", func() {
		It("keeps the canvas center fixed when zooming there", func() {
			b, err := New(DefaultConfig(), fractal.DefaultViewport())
			Expect(err).NotTo(HaveOccurred())

			target, err := b.ZoomAt(400, 300, ZoomIn)
			Expect(err).NotTo(HaveOccurred())
			Expect(target.CenterX).To(Equal(0.0))
			Expect(target.CenterY).To(Equal(0.0))
			Expect(target.Scale).To(BeNumerically("~", 220, 1e-9))
		})

		It("keeps the point under the cursor fixed", func() {
			dims := fractal.DefaultDimensions()
			cur := fractal.Viewport{CenterX: -0.5, CenterY: 0.25, Scale: 300}
			for _, f := range []float64{ZoomIn, ZoomOut} {
				target := WheelTarget(cur, dims, 123, 456, f)
				beforeX, beforeY := fractal.PixelToComplex(123, 456, cur, dims)
				afterX, afterY := fractal.PixelToComplex(123, 456, target, dims)
				Expect(afterX).To(BeNumerically("~", beforeX, 1e-12))
				Expect(afterY).To(BeNumerically("~", beforeY, 1e-12))
			}
		})

		It("notifies target observers with the cause", func() {
			_, err := a.ZoomAt(3, 4, ZoomOut)
			Expect(err).NotTo(HaveOccurred())
			_, err = a.RecenterAt(10, 2)
			Expect(err).NotTo(HaveOccurred())

			Expect(targets.events).To(HaveLen(2))
			Expect(targets.events[0].Cause).To(Equal(CauseWheel))
			Expect(targets.events[0].X).To(Equal(int32(3)))
			Expect(targets.events[1].Cause).To(Equal(CauseClick))
			Expect(targets.events[1].Y).To(Equal(int32(2)))
		})

		It("recenters on a click without changing the scale in flight", func() {
			zoomed, err := a.ZoomCenter(ZoomIn)
			Expect(err).NotTo(HaveOccurred())

			wantX, wantY := fractal.PixelToComplex(0, 0, a.CurrentViewport(), a.Dimensions())
			target, err := a.RecenterAt(0, 0)
			Expect(err).NotTo(HaveOccurred())
			Expect(target.CenterX).To(Equal(wantX))
			Expect(target.CenterY).To(Equal(wantY))
			Expect(target.Scale).To(Equal(zoomed.Scale))
		})

		It("does not notify when the wheel target is invalid", func() {
			_, err := a.ZoomAt(1, 1, 0)
			Expect(err).To(MatchError(fractal.ErrInvalidViewport))
			Expect(targets.events).To(BeEmpty())
			Expect(a.Phase()).To(Equal(Idle))
		})
	})

	Describe("Run", func() {
		It("ticks until idle", func() {
			Expect(a.RequestZoom(0, 0, 400)).To(Succeed())
			clock := make(chan time.Time, 64)
			for i := 0; i < 64; i++ {
				clock <- time.Now()
			}

			Expect(a.Run(context.Background(), clock)).To(Succeed())
			Expect(a.Phase()).To(Equal(Idle))
			Expect(frames.frames).To(HaveLen(30))
			Expect(clock).To(HaveLen(34))
		})

		It("stops on context cancellation", func() {
			Expect(a.RequestZoom(0, 0, 400)).To(Succeed())
			ctx, cancel := context.WithCancel(context.Background())
			cancel()

			err := a.Run(ctx, make(chan time.Time))
			Expect(err).To(MatchError(context.Canceled))
			Expect(a.Phase()).To(Equal(Animating))
		})

		It("returns when the clock closes", func() {
			Expect(a.RequestZoom(0, 0, 400)).To(Succeed())
			clock := make(chan time.Time, 2)
			clock <- time.Now()
			clock <- time.Now()
			close(clock)

			Expect(a.Run(context.Background(), clock)).To(Succeed())
			Expect(a.State().StepsRemaining).To(Equal(uint32(28)))
		})

		It("drives from a real ticker", func() {
			Expect(a.RequestZoom(0.2, 0, 210)).To(Succeed())
			clock, stop := Ticker(time.Millisecond)
			defer stop()

			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			Expect(a.Run(ctx, clock)).To(Succeed())
			Expect(a.CurrentViewport()).To(Equal(fractal.Viewport{CenterX: 0.2, CenterY: 0, Scale: 210}))
		})
	})

	Describe("state ownership", func() {
		It("panics on overlapping mutation", func() {
			a.enter()
			defer a.leave()
			Expect(func() { _ = a.RequestZoom(0, 0, 300) }).To(Panic())
		})

		It("lets observers request a new target from inside a tick", func() {
			requested := false
			a.AddObserver(ObserverFunc(func(f Frame) {
				if !requested {
					requested = true
					Expect(a.RequestZoom(1, 1, 100)).To(Succeed())
				}
			}))
			Expect(a.RequestZoom(0, 0, 300)).To(Succeed())
			_, err := a.Tick()
			Expect(err).NotTo(HaveOccurred())
			Expect(a.State().StepsRemaining).To(Equal(uint32(30)))
		})
	})
})

var _ = Describe("TickError", func() {
	It("unwraps to the render error", func() {
		err := &TickError{Step: 3, Viewport: fractal.DefaultViewport(), Wrapped: fractal.ErrInvalidViewport}
		Expect(errors.Is(err, fractal.ErrInvalidViewport)).To(BeTrue())
		Expect(err.Error()).To(ContainSubstring("tick 3"))
	})
})
