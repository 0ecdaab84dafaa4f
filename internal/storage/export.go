package storage

import (
	"encoding/json"
	"io"
)

type ExportData struct {
	Meta   RunMetadata  `json:"meta"`
	Points []ExportTick `json:"ticks"`
}

type ExportTick struct {
	Tick     int     `json:"tick"`
	CenterX  float64 `json:"center_x"`
	CenterY  float64 `json:"center_y"`
	Scale    float64 `json:"scale"`
	RenderMs float64 `json:"render_ms"`
	Final    bool    `json:"final"`
}

func ExportJSON(w io.Writer, meta *RunMetadata, trace *Trace) error {
	data := ExportData{
		Meta:   *meta,
		Points: make([]ExportTick, len(trace.Points)),
	}
	for i, p := range trace.Points {
		data.Points[i] = ExportTick{
			Tick:     p.Tick,
			CenterX:  p.Viewport.CenterX,
			CenterY:  p.Viewport.CenterY,
			Scale:    p.Viewport.Scale,
			RenderMs: p.RenderMs,
			Final:    p.Final,
		}
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}
