package fractal

import "errors"

// Domain errors for viewport and raster validation.
var (
	// ErrInvalidViewport indicates a non-positive or non-finite scale, or a non-finite center.
	ErrInvalidViewport = errors.New("fractal: invalid viewport")

	// ErrInvalidDimensions indicates a raster with zero width or height.
	ErrInvalidDimensions = errors.New("fractal: invalid raster dimensions")
)
