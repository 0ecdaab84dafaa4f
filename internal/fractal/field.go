package fractal

import "math"

const escapeRadiusSq = 4.0

// EscapeIterations runs z -> z² + c from z = 0 and returns how many steps
// were taken before |z|² exceeded 4, capped at maxIterations. A result
// equal to maxIterations means the point did not escape.
func EscapeIterations(cRe, cIm float64, maxIterations uint32) uint32 {
	var zRe, zIm float64
	var n uint32

	// Written as a positive <= test so that NaN fails it and ends the loop.
	for n < maxIterations && zRe*zRe+zIm*zIm <= escapeRadiusSq {
		zReNew := zRe*zRe - zIm*zIm + cRe
		zIm = 2*zRe*zIm + cIm
		zRe = zReNew
		n++
	}

	return n
}

// ColorFor maps an iteration count onto the smooth three-channel palette.
// Points inside the set are black.
func ColorFor(iterations, maxIterations uint32) (r, g, b uint8) {
	if iterations == maxIterations {
		return 0, 0, 0
	}

	t := float64(iterations) / float64(maxIterations)
	u := 1 - t

	r = channel(9 * u * t * t * t * 255)
	g = channel(15 * u * u * t * t * 255)
	b = channel(8.5 * u * u * u * t * 255)
	return r, g, b
}

func channel(v float64) uint8 {
	if math.IsNaN(v) || v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(math.Floor(v))
}

// PixelToComplex maps a pixel onto the complex plane. It is the only
// transform used for both rendering and input.
func PixelToComplex(px, py int32, vp Viewport, dims Dimensions) (cRe, cIm float64) {
	cRe = (float64(px)-float64(dims.Width)/2)/vp.Scale + vp.CenterX
	cIm = (float64(py)-float64(dims.Height)/2)/vp.Scale + vp.CenterY
	return cRe, cIm
}

// ComplexToPixel is the inverse of PixelToComplex. The result is fractional;
// callers round as needed.
func ComplexToPixel(cRe, cIm float64, vp Viewport, dims Dimensions) (px, py float64) {
	px = (cRe-vp.CenterX)*vp.Scale + float64(dims.Width)/2
	py = (cIm-vp.CenterY)*vp.Scale + float64(dims.Height)/2
	return px, py
}

// Shade evaluates one pixel: transform, iterate, color.
func Shade(px, py int32, vp Viewport, dims Dimensions, maxIterations uint32) (r, g, b uint8) {
	cRe, cIm := PixelToComplex(px, py, vp, dims)
	return ColorFor(EscapeIterations(cRe, cIm, maxIterations), maxIterations)
}
