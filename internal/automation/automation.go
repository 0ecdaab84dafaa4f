package automation

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"os"
	"time"

	"github.com/san-kum/fractalzoom/internal/anim"
	"gopkg.in/yaml.v3"
)

const (
	ActionWheel = "wheel"
	ActionClick = "click"
	ActionZoom  = "zoom"
	ActionWait  = "wait"
)

// Scenario defines a scripted sequence of input events
type Scenario struct {
	Name        string         `yaml:"name"`
	Description string         `yaml:"description"`
	Steps       []ScenarioStep `yaml:"steps"`
}

// ScenarioStep is a single input event. Ticks > 0 advances that many ticks
// after the event, which lets the next step arrive mid-transition; zero
// runs the transition to the end.
type ScenarioStep struct {
	Action    string  `yaml:"action"`
	X         int32   `yaml:"x"`
	Y         int32   `yaml:"y"`
	Direction string  `yaml:"direction"`
	CenterX   float64 `yaml:"center_x"`
	CenterY   float64 `yaml:"center_y"`
	Scale     float64 `yaml:"scale"`
	Repeat    int     `yaml:"repeat"`
	Ticks     int     `yaml:"ticks"`
}

// Result summarizes a scenario run
type Result struct {
	Events int
	Frames int
	Final  anim.Viewport
}

// LoadScenario loads a scenario from a YAML file
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseScenario(data)
}

func ParseScenario(data []byte) (*Scenario, error) {
	var scenario Scenario
	if err := yaml.Unmarshal(data, &scenario); err != nil {
		return nil, err
	}
	if err := scenario.Validate(); err != nil {
		return nil, err
	}
	return &scenario, nil
}

func (s *Scenario) Validate() error {
	if len(s.Steps) == 0 {
		return fmt.Errorf("scenario %q has no steps", s.Name)
	}
	for i, step := range s.Steps {
		switch step.Action {
		case ActionWheel:
			if _, err := factorFor(step.Direction); err != nil {
				return fmt.Errorf("step %d: %w", i+1, err)
			}
		case ActionClick:
		case ActionZoom:
			if !(step.Scale > 0) {
				return fmt.Errorf("step %d: zoom needs scale > 0", i+1)
			}
		case ActionWait:
			if step.Ticks <= 0 {
				return fmt.Errorf("step %d: wait needs ticks > 0", i+1)
			}
		default:
			return fmt.Errorf("step %d: unknown action %q", i+1, step.Action)
		}
		if step.Repeat < 0 || step.Ticks < 0 {
			return fmt.Errorf("step %d: repeat and ticks must not be negative", i+1)
		}
	}
	return nil
}

func factorFor(direction string) (float64, error) {
	switch direction {
	case "in", "":
		return anim.ZoomIn, nil
	case "out":
		return anim.ZoomOut, nil
	}
	return 0, fmt.Errorf("unknown wheel direction %q", direction)
}

// RunScenario executes all steps in a scenario against a.
// Progress lines go to out when it is not nil.
func RunScenario(ctx context.Context, scenario *Scenario, a *anim.Animator, out io.Writer) (*Result, error) {
	if out == nil {
		out = io.Discard
	}
	res := &Result{}

	for i, step := range scenario.Steps {
		fmt.Fprintf(out, "step %d/%d: %s\n", i+1, len(scenario.Steps), step.Action)

		repeat := step.Repeat
		if repeat == 0 {
			repeat = 1
		}

		for r := 0; r < repeat; r++ {
			if err := ctx.Err(); err != nil {
				return res, err
			}
			if step.Action != ActionWait {
				if err := apply(a, step); err != nil {
					return res, fmt.Errorf("step %d: %w", i+1, err)
				}
				res.Events++
			}

			n, err := advance(ctx, a, step.Ticks)
			res.Frames += n
			if err != nil {
				return res, fmt.Errorf("step %d: %w", i+1, err)
			}
		}
	}

	res.Final = a.CurrentViewport()
	return res, nil
}

func apply(a *anim.Animator, step ScenarioStep) error {
	switch step.Action {
	case ActionWheel:
		f, err := factorFor(step.Direction)
		if err != nil {
			return err
		}
		_, err = a.ZoomAt(step.X, step.Y, f)
		return err
	case ActionClick:
		_, err := a.RecenterAt(step.X, step.Y)
		return err
	case ActionZoom:
		return a.RequestZoom(step.CenterX, step.CenterY, step.Scale)
	}
	return nil
}

// advance ticks n times, or until idle when n is zero.
func advance(ctx context.Context, a *anim.Animator, n int) (int, error) {
	frames := 0
	for a.Phase() == anim.Animating && (n == 0 || frames < n) {
		if err := ctx.Err(); err != nil {
			return frames, err
		}
		if _, err := a.Tick(); err != nil {
			return frames, err
		}
		frames++
	}
	return frames, nil
}

// WanderConfig defines a randomized input session
type WanderConfig struct {
	Events    int
	ClickProb float64
	MaxTicks  int
	Seed      int64
}

// WanderResult holds one random event and where the animator ended up
type WanderResult struct {
	Event  anim.TargetEvent
	Ticks  int
	Landed anim.Viewport
	Valid  bool
}

// RunWander fires random wheel and click events at random pixels, each
// followed by up to MaxTicks ticks, and checks the viewport stays valid.
func RunWander(ctx context.Context, cfg WanderConfig, a *anim.Animator) ([]WanderResult, error) {
	rng := rand.New(rand.NewSource(cfg.Seed))
	if cfg.Seed == 0 {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	maxTicks := cfg.MaxTicks
	if maxTicks <= 0 {
		maxTicks = int(a.Config().TotalSteps)
	}

	dims := a.Dimensions()
	results := make([]WanderResult, 0, cfg.Events)

	for i := 0; i < cfg.Events; i++ {
		x := int32(rng.Intn(int(dims.Width)))
		y := int32(rng.Intn(int(dims.Height)))

		ev := anim.TargetEvent{X: x, Y: y}
		var err error
		if rng.Float64() < cfg.ClickProb {
			ev.Cause = anim.CauseClick
			ev.Target, err = a.RecenterAt(x, y)
		} else {
			ev.Cause = anim.CauseWheel
			f := anim.ZoomIn
			if rng.Intn(2) == 0 {
				f = anim.ZoomOut
			}
			ev.Target, err = a.ZoomAt(x, y, f)
		}
		if err != nil {
			return results, fmt.Errorf("event %d: %w", i+1, err)
		}

		ticks, err := advance(ctx, a, 1+rng.Intn(maxTicks))
		if err != nil {
			return results, fmt.Errorf("event %d: %w", i+1, err)
		}

		landed := a.CurrentViewport()
		results = append(results, WanderResult{
			Event:  ev,
			Ticks:  ticks,
			Landed: landed,
			Valid:  landed.Validate() == nil,
		})
	}

	return results, nil
}

// WanderStats counts results whose viewport stayed valid
func WanderStats(results []WanderResult) (valid int, invalid int) {
	for _, r := range results {
		if r.Valid {
			valid++
		} else {
			invalid++
		}
	}
	return
}
