package compute

import "github.com/san-kum/fractalzoom/internal/fractal"

type SerialBackend struct{}

func NewSerialBackend() *SerialBackend { return &SerialBackend{} }

func (s *SerialBackend) Name() string { return "serial" }

func (s *SerialBackend) Render(vp fractal.Viewport, dims fractal.Dimensions, maxIterations uint32) (fractal.PixelBuffer, error) {
	if err := validate(vp, dims); err != nil {
		return nil, err
	}
	buf := fractal.NewPixelBuffer(dims)
	renderRows(buf, vp, dims, maxIterations, 0, int(dims.Height))
	return buf, nil
}
