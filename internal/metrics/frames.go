package metrics

import (
	"math"

	"github.com/san-kum/fractalzoom/internal/anim"
	"github.com/san-kum/fractalzoom/internal/fractal"
)

type FrameCount struct {
	frames int
}

func NewFrameCount() *FrameCount { return &FrameCount{} }

func (f *FrameCount) Name() string          { return "frames" }
func (f *FrameCount) Observe(fr anim.Frame) { f.frames++ }
func (f *FrameCount) Value() float64        { return float64(f.frames) }
func (f *FrameCount) Reset()                { f.frames = 0 }

// InsideFraction averages, over frames, the share of pixels drawn black.
type InsideFraction struct {
	samples int
	total   float64
}

func NewInsideFraction() *InsideFraction { return &InsideFraction{} }

func (m *InsideFraction) Name() string { return "inside_fraction" }

func (m *InsideFraction) Observe(f anim.Frame) {
	if len(f.Pixels) == 0 {
		return
	}
	m.total += BlackFraction(f.Pixels)
	m.samples++
}

func (m *InsideFraction) Value() float64 {
	if m.samples == 0 {
		return 0
	}
	return m.total / float64(m.samples)
}

func (m *InsideFraction) Reset() {
	m.samples = 0
	m.total = 0
}

// BlackFraction returns the share of pixels in buf with zero RGB.
func BlackFraction(buf fractal.PixelBuffer) float64 {
	n := len(buf) / fractal.BytesPerPixel
	if n == 0 {
		return 0
	}
	black := 0
	for i := 0; i+2 < len(buf); i += fractal.BytesPerPixel {
		if buf[i] == 0 && buf[i+1] == 0 && buf[i+2] == 0 {
			black++
		}
	}
	return float64(black) / float64(n)
}

// ZoomDepth is log2 of the latest scale over the base scale.
type ZoomDepth struct {
	base   float64
	latest float64
}

func NewZoomDepth(baseScale float64) *ZoomDepth {
	return &ZoomDepth{base: baseScale, latest: baseScale}
}

func (z *ZoomDepth) Name() string { return "zoom_depth" }

func (z *ZoomDepth) Observe(f anim.Frame) { z.latest = f.Viewport.Scale }

func (z *ZoomDepth) Value() float64 {
	if z.base <= 0 || z.latest <= 0 {
		return 0
	}
	return math.Log2(z.latest / z.base)
}

func (z *ZoomDepth) Reset() { z.latest = z.base }

// RenderTime is the mean render time per frame in milliseconds.
type RenderTime struct {
	samples int
	totalMs float64
	maxMs   float64
}

func NewRenderTime() *RenderTime { return &RenderTime{} }

func (r *RenderTime) Name() string { return "render_ms" }

func (r *RenderTime) Observe(f anim.Frame) {
	ms := float64(f.RenderTime.Microseconds()) / 1000
	r.totalMs += ms
	r.maxMs = math.Max(r.maxMs, ms)
	r.samples++
}

func (r *RenderTime) Value() float64 {
	if r.samples == 0 {
		return 0
	}
	return r.totalMs / float64(r.samples)
}

func (r *RenderTime) Max() float64 { return r.maxMs }

func (r *RenderTime) Reset() {
	r.samples = 0
	r.totalMs = 0
	r.maxMs = 0
}
