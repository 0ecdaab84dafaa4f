package metrics

import (
	"sort"

	"github.com/san-kum/fractalzoom/internal/anim"
)

type Metric interface {
	Name() string
	Observe(f anim.Frame)
	Value() float64
	Reset()
}

// Collector fans frames out to a set of metrics. It satisfies anim.Observer.
type Collector struct {
	metrics []Metric
}

func NewCollector(ms ...Metric) *Collector {
	return &Collector{metrics: ms}
}

// Default returns the metric set recorded with every saved trace.
func Default(baseScale float64) *Collector {
	return NewCollector(
		NewFrameCount(),
		NewInsideFraction(),
		NewZoomDepth(baseScale),
		NewRenderTime(),
	)
}

func (c *Collector) Add(m Metric) { c.metrics = append(c.metrics, m) }

func (c *Collector) OnFrame(f anim.Frame) {
	for _, m := range c.metrics {
		m.Observe(f)
	}
}

func (c *Collector) Reset() {
	for _, m := range c.metrics {
		m.Reset()
	}
}

func (c *Collector) Values() map[string]float64 {
	out := make(map[string]float64, len(c.metrics))
	for _, m := range c.metrics {
		out[m.Name()] = m.Value()
	}
	return out
}

func (c *Collector) Names() []string {
	names := make([]string, 0, len(c.metrics))
	for _, m := range c.metrics {
		names = append(names, m.Name())
	}
	sort.Strings(names)
	return names
}
