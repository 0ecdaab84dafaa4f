package viz

import (
	"fmt"
	"log"
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/fractalzoom/internal/anim"
)

const (
	panelWidth      = 40
	historyCapacity = 120

	// Terminal row where the canvas starts, below the title line.
	canvasTop = 1
)

type TickMsg time.Time

// Model is the Bubble Tea model of the viewer. The animator and burst are
// shared between copies of the model; everything else is per-copy state.
type Model struct {
	anim       *anim.Animator
	initial    anim.Viewport
	tick       time.Duration
	canvas     *Canvas
	burst      *Burst
	theme      Theme
	st         styles
	history    []float64
	lastRender time.Duration
	frames     int
	showHelp   bool
	err        error
}

// NewModel renders the animator's current viewport and subscribes a burst
// to its target notifications. The canvas is Width cells by Height/2 rows.
func NewModel(a *anim.Animator, themeName string) (Model, error) {
	dims := a.Dimensions()
	cols, rows := int(dims.Width), int(dims.Height+1)/2

	tick := a.Config().TickDuration
	if tick <= 0 {
		tick = anim.DefaultTickDuration
	}

	theme := GetTheme(themeName)
	m := Model{
		anim:    a,
		initial: a.CurrentViewport(),
		tick:    tick,
		canvas:  NewCanvas(cols, rows),
		burst:   NewBurst(int(time.Second / tick)),
		theme:   theme,
		st:      newStyles(theme),
		history: make([]float64, 0, historyCapacity),
	}

	start := time.Now()
	buf, err := a.Render(m.initial)
	if err != nil {
		return Model{}, err
	}
	m.lastRender = time.Since(start)
	m.canvas.Fill(buf, dims)
	m.record(m.initial.Scale)

	a.AddTargetObserver(m.burst)
	return m, nil
}

func tickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Init() tea.Cmd {
	return tickCmd(m.tick)
}

// Update handles input events and advances the animation.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "+", "=":
			m.check(m.anim.ZoomCenter(anim.ZoomIn))
		case "-", "_":
			m.check(m.anim.ZoomCenter(anim.ZoomOut))
		case "up", "k":
			m.pan(0, -1)
		case "down", "j":
			m.pan(0, 1)
		case "left", "h":
			m.pan(-1, 0)
		case "right", "l":
			m.pan(1, 0)
		case "r":
			m.reset()
		case "t":
			m.theme = NextTheme(m.theme.Name)
			m.st = newStyles(m.theme)
		case "?":
			m.showHelp = !m.showHelp
		}
	case tea.MouseMsg:
		m.mouse(msg)
	case TickMsg:
		m.step()
		m.burst.Update()
		return m, tickCmd(m.tick)
	}
	return m, nil
}

func (m *Model) mouse(msg tea.MouseMsg) {
	if msg.Action != tea.MouseActionPress {
		return
	}
	col, row := msg.X, msg.Y-canvasTop
	if col < 0 || row < 0 || col >= m.canvas.Cols || row >= m.canvas.Rows {
		return
	}
	px, py := PixelForCell(col, row)

	switch msg.Button {
	case tea.MouseButtonWheelUp:
		m.check(m.anim.ZoomAt(px, py, anim.ZoomIn))
	case tea.MouseButtonWheelDown:
		m.check(m.anim.ZoomAt(px, py, anim.ZoomOut))
	case tea.MouseButtonLeft:
		m.check(m.anim.RecenterAt(px, py))
	}
}

// pan recenters a quarter of the raster away from the middle.
func (m *Model) pan(dx, dy int) {
	d := m.anim.Dimensions()
	x := int32(d.Width/2) + int32(dx)*int32(d.Width/4)
	y := int32(d.Height/2) + int32(dy)*int32(d.Height/4)
	m.check(m.anim.RecenterAt(x, y))
}

func (m *Model) reset() {
	m.err = m.anim.RequestZoom(m.initial.CenterX, m.initial.CenterY, m.initial.Scale)
	if m.err != nil {
		log.Printf("reset: %v", m.err)
	}
}

func (m *Model) check(_ anim.Viewport, err error) {
	m.err = err
	if err != nil {
		log.Printf("input: %v", err)
	}
}

func (m *Model) step() {
	if m.anim.Phase() != anim.Animating {
		return
	}
	f, err := m.anim.Tick()
	if err != nil {
		m.err = err
		log.Printf("tick: %v", err)
		return
	}
	m.canvas.Fill(f.Pixels, f.Dimensions)
	m.lastRender = f.RenderTime
	m.frames++
	m.record(f.Viewport.Scale)
	if f.Final {
		log.Printf("landed on %s after %d frames", f.Viewport, m.frames)
	}
}

func (m *Model) record(scale float64) {
	if len(m.history) >= historyCapacity {
		m.history = m.history[1:]
	}
	m.history = append(m.history, math.Log2(scale))
}

// Depth is the number of doublings of scale relative to the initial viewport.
func (m Model) Depth() float64 {
	return math.Log2(m.anim.CurrentViewport().Scale / m.initial.Scale)
}

func (m Model) View() string {
	title := m.st.title.Render("fractalzoom") + "  " + m.st.label.Render(m.theme.Name)
	canvas := m.canvas.Render(m.burst.OnRing, m.st.burst)
	return lipgloss.JoinVertical(lipgloss.Left, title, lipgloss.JoinHorizontal(lipgloss.Top, canvas, m.panel()))
}

func (m Model) panel() string {
	vp := m.anim.CurrentViewport()
	st := m.anim.State()

	var s strings.Builder
	s.WriteString(m.st.header.Render("VIEWPORT") + "\n")
	row := func(label, value string) {
		s.WriteString(m.st.label.Render(label) + m.st.value.Render(value) + "\n")
	}
	row("center x", fmt.Sprintf("%.10f", vp.CenterX))
	row("center y", fmt.Sprintf("%.10f", vp.CenterY))
	row("scale", fmt.Sprintf("%.4g", vp.Scale))
	row("depth", fmt.Sprintf("%+.2f", m.Depth()))
	row("render", fmt.Sprintf("%.1fms", float64(m.lastRender.Microseconds())/1000))

	phase := m.anim.Phase()
	if phase == anim.Animating {
		s.WriteString(m.st.label.Render("phase") + m.st.active.Render(phase.String()) + "\n")
		row("steps", fmt.Sprintf("%d/%d", st.StepsRemaining, st.TotalSteps))
	} else {
		row("phase", phase.String())
	}

	if len(m.history) >= 2 {
		graph := asciigraph.Plot(m.history,
			asciigraph.Height(6),
			asciigraph.Width(panelWidth-12),
			asciigraph.Caption("log2 scale"))
		s.WriteString(m.st.graph.Render(graph) + "\n")
	}

	if m.err != nil {
		s.WriteString(m.st.err.Render(m.err.Error()) + "\n")
	}

	if m.showHelp {
		s.WriteString(m.st.help.Render("wheel zoom · click recenter\n+/- zoom · arrows pan\nr reset · t theme · q quit"))
	} else {
		s.WriteString(m.st.help.Render("? help · q quit"))
	}

	return m.st.panel.Render(s.String())
}
