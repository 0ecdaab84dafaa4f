package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"github.com/san-kum/fractalzoom/internal/anim"
	"github.com/san-kum/fractalzoom/internal/fractal"
)

const (
	metadataFile = "metadata.json"
	traceFile    = "trace.csv"
)

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type RunMetadata struct {
	ID            string             `json:"id"`
	Name          string             `json:"name"`
	Timestamp     time.Time          `json:"timestamp"`
	Width         uint32             `json:"width"`
	Height        uint32             `json:"height"`
	MaxIterations uint32             `json:"max_iterations"`
	TotalSteps    uint32             `json:"total_steps"`
	Backend       string             `json:"backend"`
	Start         fractal.Viewport   `json:"start"`
	End           fractal.Viewport   `json:"end"`
	Ticks         int                `json:"ticks"`
	Metrics       map[string]float64 `json:"metrics"`
}

// TracePoint is one tick of a recorded animation.
type TracePoint struct {
	Tick     int
	Viewport fractal.Viewport
	RenderMs float64
	Final    bool
}

// Trace records the viewport of every frame. It satisfies anim.Observer.
type Trace struct {
	Points []TracePoint
}

func NewTrace() *Trace {
	return &Trace{Points: make([]TracePoint, 0, anim.DefaultTotalSteps)}
}

func (t *Trace) OnFrame(f anim.Frame) {
	t.Points = append(t.Points, TracePoint{
		Tick:     len(t.Points) + 1,
		Viewport: f.Viewport,
		RenderMs: float64(f.RenderTime.Microseconds()) / 1000,
		Final:    f.Final,
	})
}

func (t *Trace) Scales() []float64 {
	out := make([]float64, len(t.Points))
	for i, p := range t.Points {
		out[i] = p.Viewport.Scale
	}
	return out
}

// Save writes metadata.json and trace.csv under a new run directory.
// meta.ID and meta.Timestamp are filled in.
func (s *Store) Save(meta RunMetadata, trace *Trace) (string, error) {
	now := time.Now()
	runID := fmt.Sprintf("%s_%d", meta.Name, now.UnixNano())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta.ID = runID
	meta.Timestamp = now
	meta.Ticks = len(trace.Points)
	if meta.Metrics == nil {
		meta.Metrics = map[string]float64{}
	}

	metaFile, err := os.Create(filepath.Join(runDir, metadataFile))
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	csvFile, err := os.Create(filepath.Join(runDir, traceFile))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	if err := WriteTraceCSV(w, trace); err != nil {
		return "", err
	}

	return runID, nil
}

// WriteTraceCSV writes the header and every point, then flushes.
func WriteTraceCSV(w *csv.Writer, trace *Trace) error {
	header := []string{"tick", "center_x", "center_y", "scale", "render_ms", "final"}
	if err := w.Write(header); err != nil {
		return err
	}
	for _, p := range trace.Points {
		row := []string{
			strconv.Itoa(p.Tick),
			strconv.FormatFloat(p.Viewport.CenterX, 'g', -1, 64),
			strconv.FormatFloat(p.Viewport.CenterY, 'g', -1, 64),
			strconv.FormatFloat(p.Viewport.Scale, 'g', -1, 64),
			strconv.FormatFloat(p.RenderMs, 'f', 3, 64),
			strconv.FormatBool(p.Final),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		meta, err := s.Load(entry.Name())
		if err != nil {
			continue
		}
		runs = append(runs, *meta)
	}

	sort.Slice(runs, func(i, j int) bool { return runs[i].Timestamp.Before(runs[j].Timestamp) })
	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, metadataFile))
	if err != nil {
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}

	return &meta, nil
}

func (s *Store) LoadTrace(runID string) (*Trace, error) {
	file, err := os.Open(filepath.Join(s.baseDir, runID, traceFile))
	if err != nil {
		return nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	r.FieldsPerRecord = -1

	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}

	trace := &Trace{Points: make([]TracePoint, 0, len(records))}
	for i := 1; i < len(records); i++ {
		p, err := parsePoint(records[i])
		if err != nil {
			return nil, fmt.Errorf("trace %s line %d: %w", runID, i+1, err)
		}
		trace.Points = append(trace.Points, p)
	}

	return trace, nil
}

func parsePoint(record []string) (TracePoint, error) {
	if len(record) < 6 {
		return TracePoint{}, fmt.Errorf("expected 6 fields, got %d", len(record))
	}

	var p TracePoint
	var err error
	if p.Tick, err = strconv.Atoi(record[0]); err != nil {
		return p, err
	}
	floats := []*float64{&p.Viewport.CenterX, &p.Viewport.CenterY, &p.Viewport.Scale, &p.RenderMs}
	for i, dst := range floats {
		if *dst, err = strconv.ParseFloat(record[i+1], 64); err != nil {
			return p, err
		}
	}
	if p.Final, err = strconv.ParseBool(record[5]); err != nil {
		return p, err
	}
	return p, nil
}
