// Package settings persists user choices in the fyne preference store.
package settings

import (
	"image/color"
	"log"
	"math"

	"fyne.io/fyne/v2"
	"github.com/roffe/plotpad/pkg/colors"
	"github.com/roffe/plotpad/pkg/graph"
)

const (
	prefsRadius        = "radius"
	prefsPointColor    = "pointColor"
	prefsCurveColor    = "curveColor"
	prefsFunction      = "function"
	prefsClickSound    = "clickSound"
	prefsDebugLog      = "debugLog"
	prefsAntialias     = "antialias"
	prefsLineWidth     = "lineWidth"
	prefsLastExportDir = "lastExportDir"
)

const DefaultFunction = "half"

type Settings struct {
	p fyne.Preferences
}

func New(p fyne.Preferences) *Settings {
	return &Settings{p: p}
}

func (s *Settings) Radius() float64 {
	r := s.p.FloatWithFallback(prefsRadius, graph.DefaultRadius)
	if r <= 0 || math.IsNaN(r) || math.IsInf(r, 0) {
		return graph.DefaultRadius
	}
	return r
}

// SetRadius stores r if the model would accept it.
func (s *Settings) SetRadius(r float64) error {
	if r <= 0 || math.IsNaN(r) || math.IsInf(r, 0) {
		return graph.ErrInvalidRadius
	}
	s.p.SetFloat(prefsRadius, r)
	return nil
}

func (s *Settings) PointColor() color.Color {
	return s.color(prefsPointColor, graph.DefaultPointColor)
}

func (s *Settings) SetPointColor(c color.Color) {
	s.p.SetString(prefsPointColor, colors.Hex(c))
}

func (s *Settings) CurveColor() color.Color {
	return s.color(prefsCurveColor, graph.DefaultCurveColor)
}

func (s *Settings) SetCurveColor(c color.Color) {
	s.p.SetString(prefsCurveColor, colors.Hex(c))
}

func (s *Settings) color(key string, fallback color.Color) color.Color {
	str := s.p.StringWithFallback(key, "")
	if str == "" {
		return fallback
	}
	c, err := colors.Parse(str)
	if err != nil {
		log.Printf("settings: %s: %v", key, err)
		return fallback
	}
	return c
}

func (s *Settings) Function() string {
	return s.p.StringWithFallback(prefsFunction, DefaultFunction)
}

func (s *Settings) SetFunction(name string) {
	s.p.SetString(prefsFunction, name)
}

func (s *Settings) ClickSound() bool {
	return s.p.BoolWithFallback(prefsClickSound, false)
}

func (s *Settings) SetClickSound(b bool) {
	s.p.SetBool(prefsClickSound, b)
}

func (s *Settings) DebugLog() bool {
	return s.p.BoolWithFallback(prefsDebugLog, false)
}

func (s *Settings) SetDebugLog(b bool) {
	s.p.SetBool(prefsDebugLog, b)
}

func (s *Settings) Antialias() bool {
	return s.p.BoolWithFallback(prefsAntialias, true)
}

func (s *Settings) SetAntialias(b bool) {
	s.p.SetBool(prefsAntialias, b)
}

func (s *Settings) LineWidth() float64 {
	w := s.p.FloatWithFallback(prefsLineWidth, 1)
	if w <= 0 || math.IsNaN(w) || math.IsInf(w, 0) {
		return 1
	}
	return w
}

func (s *Settings) SetLineWidth(w float64) {
	s.p.SetFloat(prefsLineWidth, w)
}

func (s *Settings) LastExportDir() string {
	return s.p.String(prefsLastExportDir)
}

func (s *Settings) SetLastExportDir(dir string) {
	s.p.SetString(prefsLastExportDir, dir)
}

// Apply copies the stored radius and colors onto m.
func (s *Settings) Apply(m *graph.Model) {
	if err := m.SetRadius(s.Radius()); err != nil {
		log.Printf("settings: %v", err)
	}
	m.SetPointColor(s.PointColor())
	m.SetCurveColor(s.CurveColor())
}
