package viz

import (
	"math"

	"github.com/charmbracelet/harmonica"
	"github.com/san-kum/fractalzoom/internal/anim"
)

const (
	burstFrequency = 6.0
	burstDamping   = 0.5
	burstRadius    = 6.0
	burstSettle    = 0.05
	burstThickness = 0.75
)

// Burst is a ring that springs outward from the point a zoom or pan was
// aimed at, then disappears once the spring settles. It subscribes to the
// animator's target notifications and never touches the viewport.
type Burst struct {
	spring    harmonica.Spring
	col, row  int
	radius    float64
	velocity  float64
	maxRadius float64
	active    bool
}

func NewBurst(fps int) *Burst {
	if fps <= 0 {
		fps = 30
	}
	return &Burst{
		spring:    harmonica.NewSpring(harmonica.FPS(fps), burstFrequency, burstDamping),
		maxRadius: burstRadius,
	}
}

// Start restarts the ring at a terminal cell.
func (b *Burst) Start(col, row int) {
	b.col, b.row = col, row
	b.radius, b.velocity = 0, 0
	b.active = true
}

func (b *Burst) OnTargetChanged(ev anim.TargetEvent) {
	b.Start(CellForPixel(ev.X, ev.Y))
}

// Update advances the spring by one frame.
func (b *Burst) Update() {
	if !b.active {
		return
	}
	b.radius, b.velocity = b.spring.Update(b.radius, b.velocity, b.maxRadius)
	if math.Abs(b.maxRadius-b.radius) < burstSettle && math.Abs(b.velocity) < burstSettle {
		b.active = false
	}
}

func (b *Burst) Active() bool           { return b.active }
func (b *Burst) Radius() float64        { return b.radius }
func (b *Burst) Center() (col, row int) { return b.col, b.row }

// OnRing reports whether a cell lies on the ring. Rows are scaled by two
// since a cell is two pixels tall.
func (b *Burst) OnRing(col, row int) bool {
	if !b.active {
		return false
	}
	dx := float64(col - b.col)
	dy := float64(row-b.row) * 2
	return math.Abs(math.Hypot(dx, dy)-b.radius) < burstThickness
}
