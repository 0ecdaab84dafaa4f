package viz

import (
	"math"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/san-kum/fractalzoom/internal/anim"
	"github.com/san-kum/fractalzoom/internal/compute"
	"github.com/san-kum/fractalzoom/internal/fractal"
)

func newTestModel(t *testing.T) Model {
	t.Helper()
	cfg := anim.Config{
		Dimensions:    CanvasDimensions(16, 6),
		MaxIterations: 40,
		TotalSteps:    4,
		TickDuration:  10 * time.Millisecond,
	}
	a, err := anim.New(cfg, fractal.Viewport{CenterX: -0.5, CenterY: 0, Scale: 4}, anim.WithBackend(compute.NewSerialBackend()))
	if err != nil {
		t.Fatal(err)
	}
	m, err := NewModel(a, "minimal")
	if err != nil {
		t.Fatal(err)
	}
	return m
}

func update(m Model, msg tea.Msg) (Model, tea.Cmd) {
	next, cmd := m.Update(msg)
	return next.(Model), cmd
}

func press(button tea.MouseButton, x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Button: button, Action: tea.MouseActionPress}
}

func key(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestNewModel(t *testing.T) {
	m := newTestModel(t)
	if m.canvas.Cols != 16 || m.canvas.Rows != 6 {
		t.Errorf("unexpected canvas %dx%d", m.canvas.Cols, m.canvas.Rows)
	}
	if m.Init() == nil {
		t.Error("Init should schedule a tick")
	}
	if len(m.history) != 1 {
		t.Errorf("expected initial scale in history, got %d entries", len(m.history))
	}
}

func TestUpdate_WheelZoomsAtCursor(t *testing.T) {
	m := newTestModel(t)
	before := m.anim.CurrentViewport()

	m, _ = update(m, press(tea.MouseButtonWheelUp, 3, 2+canvasTop))

	target := m.anim.Target()
	if math.Abs(target.Scale-before.Scale*anim.ZoomIn) > 1e-12 {
		t.Errorf("expected scale %f, got %f", before.Scale*anim.ZoomIn, target.Scale)
	}
	want := anim.WheelTarget(before, m.anim.Dimensions(), 3, 4, anim.ZoomIn)
	if target != want {
		t.Errorf("expected target %v, got %v", want, target)
	}
	if !m.burst.Active() {
		t.Error("wheel should start a burst")
	}

	m, _ = update(m, press(tea.MouseButtonWheelDown, 3, 2+canvasTop))
	if m.anim.Target().Scale >= target.Scale {
		t.Error("wheel down should zoom out")
	}
}

func TestUpdate_ClickRecenters(t *testing.T) {
	m := newTestModel(t)
	before := m.anim.CurrentViewport()

	m, _ = update(m, press(tea.MouseButtonLeft, 0, canvasTop))

	cx, cy := fractal.PixelToComplex(0, 0, before, m.anim.Dimensions())
	target := m.anim.Target()
	if target.CenterX != cx || target.CenterY != cy || target.Scale != before.Scale {
		t.Errorf("expected (%f,%f)@%f, got %v", cx, cy, before.Scale, target)
	}
	if m.anim.Phase() != anim.Animating {
		t.Error("click should start animating")
	}
}

func TestUpdate_MouseOutsideCanvasIgnored(t *testing.T) {
	m := newTestModel(t)

	for _, msg := range []tea.MouseMsg{
		press(tea.MouseButtonLeft, 0, 0),           // title line
		press(tea.MouseButtonLeft, 16, canvasTop),  // panel
		press(tea.MouseButtonLeft, 2, 6+canvasTop), // below canvas
		{X: 2, Y: 2, Button: tea.MouseButtonLeft, Action: tea.MouseActionRelease},
	} {
		m, _ = update(m, msg)
	}
	if m.anim.Phase() != anim.Idle {
		t.Error("events outside the canvas should not start a transition")
	}
}

func TestUpdate_TickAdvancesToTarget(t *testing.T) {
	m := newTestModel(t)
	m, _ = update(m, key("+"))

	target := m.anim.Target()
	var cmd tea.Cmd
	for i := 0; i < 4; i++ {
		m, cmd = update(m, TickMsg(time.Now()))
		if cmd == nil {
			t.Fatal("tick should reschedule itself")
		}
	}

	if m.anim.Phase() != anim.Idle {
		t.Error("expected idle after TotalSteps ticks")
	}
	if m.anim.CurrentViewport() != target {
		t.Errorf("expected to land on %v, got %v", target, m.anim.CurrentViewport())
	}
	if m.frames != 4 {
		t.Errorf("expected 4 frames, got %d", m.frames)
	}
	if len(m.history) != 5 {
		t.Errorf("expected 5 history entries, got %d", len(m.history))
	}
	if math.Abs(m.Depth()-math.Log2(anim.ZoomIn)) > 1e-12 {
		t.Errorf("unexpected depth %f", m.Depth())
	}
}

func TestUpdate_Keys(t *testing.T) {
	m := newTestModel(t)
	initial := m.anim.CurrentViewport()

	m, _ = update(m, tea.KeyMsg{Type: tea.KeyRight})
	if m.anim.Target().CenterX <= initial.CenterX {
		t.Error("right arrow should pan right")
	}

	m, _ = update(m, key("r"))
	if m.anim.Target() != initial {
		t.Errorf("reset should target %v, got %v", initial, m.anim.Target())
	}

	m, _ = update(m, key("t"))
	if m.theme.Name != NextTheme("minimal").Name {
		t.Errorf("expected next theme, got %s", m.theme.Name)
	}

	m, _ = update(m, key("?"))
	if !m.showHelp {
		t.Error("expected help to toggle on")
	}

	_, cmd := update(m, key("q"))
	if cmd == nil {
		t.Fatal("q should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q should quit")
	}
}

func TestView(t *testing.T) {
	m := newTestModel(t)
	m, _ = update(m, key("?"))
	out := m.View()

	for _, want := range []string{"fractalzoom", "VIEWPORT", "scale", "idle", "wheel zoom"} {
		if !strings.Contains(out, want) {
			t.Errorf("view missing %q", want)
		}
	}
}
