package compute

import (
	"fmt"
	"sort"

	"github.com/san-kum/fractalzoom/internal/fractal"
)

type Backend interface {
	Name() string
	Render(vp fractal.Viewport, dims fractal.Dimensions, maxIterations uint32) (fractal.PixelBuffer, error)
}

var backends = map[string]func(workers int) Backend{
	"serial": func(int) Backend { return NewSerialBackend() },
	"cpu":    func(workers int) Backend { return NewCPUBackend(workers) },
}

// Lookup returns the named backend. workers <= 0 selects runtime.NumCPU().
func Lookup(name string, workers int) (Backend, error) {
	fn, ok := backends[name]
	if !ok {
		return nil, fmt.Errorf("unknown backend: %s (available: %v)", name, Names())
	}
	return fn(workers), nil
}

func Names() []string {
	names := make([]string, 0, len(backends))
	for name := range backends {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func Default() Backend {
	return NewCPUBackend(0)
}

// renderRows shades rows [start, end) into buf.
func renderRows(buf fractal.PixelBuffer, vp fractal.Viewport, dims fractal.Dimensions, maxIterations uint32, start, end int) {
	w := int(dims.Width)
	for y := start; y < end; y++ {
		i := fractal.Offset(0, y, dims)
		for x := 0; x < w; x++ {
			r, g, b := fractal.Shade(int32(x), int32(y), vp, dims, maxIterations)
			buf[i] = r
			buf[i+1] = g
			buf[i+2] = b
			buf[i+3] = 255
			i += fractal.BytesPerPixel
		}
	}
}

func validate(vp fractal.Viewport, dims fractal.Dimensions) error {
	if err := dims.Validate(); err != nil {
		return err
	}
	return vp.Validate()
}
