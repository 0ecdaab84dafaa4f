// Package compute provides render backends that rasterize a viewport.
//
// Two backends are available:
//
//   - serial: a single loop over every row
//   - cpu: rows statically partitioned across worker goroutines
//
// Both produce byte-identical buffers for the same inputs, so the
// animator can switch between them without visual change:
//
//	backend, _ := compute.Lookup("cpu", 0)
//	buf, err := backend.Render(vp, dims, 1000)
//
// For small rasters the cpu backend falls back to the serial loop.
package compute
