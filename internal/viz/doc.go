// Package viz provides the interactive terminal viewer for the Mandelbrot set.
//
// The viewer is a Bubble Tea program wrapped around an [anim.Animator]:
//
//   - [Model]: input handling, tick scheduling and layout
//   - [Canvas]: half-block raster, two pixels per terminal cell
//   - [Burst]: spring-animated ring drawn where a zoom or pan was aimed
//   - Theme selection with 4 built-in color schemes
//
// # Key Bindings
//
//	Wheel  - Zoom in/out about the cursor
//	Click  - Recenter on the clicked point
//	+/-    - Zoom about the center
//	Arrows - Pan a quarter screen
//	R      - Reset to the initial viewport
//	T      - Cycle color themes
//	?      - Show help overlay
//	Q      - Quit
package viz
