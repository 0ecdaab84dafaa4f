package config

import (
	"sort"

	"github.com/san-kum/fractalzoom/internal/fractal"
)

type Preset struct {
	Description   string
	Viewport      fractal.Viewport
	MaxIterations uint32
}

var Presets = map[string]*Preset{
	"full": {
		Description: "whole set",
		Viewport:    fractal.Viewport{CenterX: 0, CenterY: 0, Scale: 200},
	},
	"classic": {
		Description: "set centered on its main cardioid",
		Viewport:    fractal.Viewport{CenterX: -0.5, CenterY: 0, Scale: 250},
	},
	"seahorse": {
		Description:   "seahorse valley",
		Viewport:      fractal.Viewport{CenterX: -0.743643887037151, CenterY: 0.13182590420533, Scale: 20000},
		MaxIterations: 1500,
	},
	"elephant": {
		Description: "elephant valley",
		Viewport:    fractal.Viewport{CenterX: 0.2925, CenterY: 0.0149, Scale: 8000},
	},
	"spiral": {
		Description:   "triple spiral",
		Viewport:      fractal.Viewport{CenterX: -0.088, CenterY: 0.654, Scale: 12000},
		MaxIterations: 1200,
	},
	"minibrot": {
		Description:   "mini set on the needle",
		Viewport:      fractal.Viewport{CenterX: -1.7687788, CenterY: 0.0017389, Scale: 150000},
		MaxIterations: 2000,
	},
}

func GetPreset(name string) *Preset {
	p, ok := Presets[name]
	if !ok {
		return nil
	}
	return p
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
