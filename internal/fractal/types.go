package fractal

import (
	"fmt"
	"math"
)

const (
	DefaultMaxIterations = 1000
	DefaultScale         = 200.0
	DefaultWidth         = 800
	DefaultHeight        = 600
	BytesPerPixel        = 4
)

// Viewport is the region of the complex plane mapped onto the raster.
// Scale is in pixels per unit; the center is the point drawn at the
// middle of the canvas.
type Viewport struct {
	CenterX float64 `json:"center_x" yaml:"center_x"`
	CenterY float64 `json:"center_y" yaml:"center_y"`
	Scale   float64 `json:"scale" yaml:"scale"`
}

func DefaultViewport() Viewport {
	return Viewport{CenterX: 0, CenterY: 0, Scale: DefaultScale}
}

func (v Viewport) Validate() error {
	if math.IsNaN(v.Scale) || math.IsInf(v.Scale, 0) || v.Scale <= 0 {
		return fmt.Errorf("%w: scale must be positive and finite, got %v", ErrInvalidViewport, v.Scale)
	}
	if math.IsNaN(v.CenterX) || math.IsInf(v.CenterX, 0) || math.IsNaN(v.CenterY) || math.IsInf(v.CenterY, 0) {
		return fmt.Errorf("%w: center must be finite, got (%v, %v)", ErrInvalidViewport, v.CenterX, v.CenterY)
	}
	return nil
}

func (v Viewport) String() string {
	return fmt.Sprintf("(%.6g, %.6g) @ %.6g px/unit", v.CenterX, v.CenterY, v.Scale)
}

// Dimensions is the raster size in pixels.
type Dimensions struct {
	Width  uint32 `json:"width" yaml:"width"`
	Height uint32 `json:"height" yaml:"height"`
}

func DefaultDimensions() Dimensions {
	return Dimensions{Width: DefaultWidth, Height: DefaultHeight}
}

func (d Dimensions) Validate() error {
	if d.Width == 0 || d.Height == 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, d.Width, d.Height)
	}
	return nil
}

// Pixels returns the number of pixels in the raster.
func (d Dimensions) Pixels() int {
	return int(d.Width) * int(d.Height)
}

// BufferLen returns the byte length of an RGBA buffer for the raster.
func (d Dimensions) BufferLen() int {
	return d.Pixels() * BytesPerPixel
}

// PixelBuffer holds RGBA bytes, row-major, origin top-left.
type PixelBuffer []byte

func NewPixelBuffer(d Dimensions) PixelBuffer {
	return make(PixelBuffer, d.BufferLen())
}

// Offset returns the index of the red byte of pixel (x, y).
func Offset(x, y int, d Dimensions) int {
	return (y*int(d.Width) + x) * BytesPerPixel
}

// At returns the RGBA bytes of pixel (x, y).
func (p PixelBuffer) At(x, y int, d Dimensions) (r, g, b, a uint8) {
	i := Offset(x, y, d)
	return p[i], p[i+1], p[i+2], p[i+3]
}
