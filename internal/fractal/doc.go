// Package fractal provides the escape-time primitives for the Mandelbrot set.
//
// The package is a set of pure functions over plain values:
//
//   - [EscapeIterations]: iteration count of z -> z² + c before |z| > 2
//   - [ColorFor]: iteration count to an RGB triple
//   - [PixelToComplex]: pixel coordinates to a point on the complex plane
//
// together with the [Viewport], [Dimensions] and [PixelBuffer] types shared
// by the render backends and the animator.
//
// # Thread Safety
//
// Nothing in this package holds state. Every function may be called from
// any number of goroutines.
package fractal
