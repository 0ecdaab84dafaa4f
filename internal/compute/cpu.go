package compute

import (
	"runtime"
	"sync"

	"github.com/san-kum/fractalzoom/internal/fractal"
)

// minParallelPixels is the raster size below which goroutine start-up
// costs more than it saves.
const minParallelPixels = 64 * 64

type CPUBackend struct {
	workers int
}

func NewCPUBackend(workers int) *CPUBackend {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	return &CPUBackend{workers: workers}
}

func (c *CPUBackend) Name() string { return "cpu" }
func (c *CPUBackend) Workers() int { return c.workers }

func (c *CPUBackend) Render(vp fractal.Viewport, dims fractal.Dimensions, maxIterations uint32) (fractal.PixelBuffer, error) {
	if err := validate(vp, dims); err != nil {
		return nil, err
	}

	buf := fractal.NewPixelBuffer(dims)
	rows := int(dims.Height)

	if c.workers <= 1 || dims.Pixels() < minParallelPixels {
		renderRows(buf, vp, dims, maxIterations, 0, rows)
		return buf, nil
	}

	workers := c.workers
	if rows < workers {
		workers = rows
	}
	chunkSize := (rows + workers - 1) / workers

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		start := w * chunkSize
		end := start + chunkSize
		if end > rows {
			end = rows
		}
		if start >= end {
			break
		}

		wg.Add(1)
		go func(s, e int) {
			defer wg.Done()
			renderRows(buf, vp, dims, maxIterations, s, e)
		}(start, end)
	}

	wg.Wait()
	return buf, nil
}
