// Package graphwidget hosts a plotting surface in a fyne window.
package graphwidget

import (
	"image/color"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"
	"github.com/roffe/plotpad/pkg/controller"
	"github.com/roffe/plotpad/pkg/graph"
	"github.com/roffe/plotpad/pkg/render"
)

var _ fyne.Tappable = (*Graph)(nil)
var _ fyne.SecondaryTappable = (*Graph)(nil)
var _ desktop.Hoverable = (*Graph)(nil)
var _ fyne.Widget = (*Graph)(nil)

// Target selects which color a color change applies to.
type Target int

const (
	TargetPoints Target = iota
	TargetCurve
)

func (t Target) String() string {
	if t == TargetCurve {
		return "Curve"
	}
	return "Points"
}

type Graph struct {
	widget.BaseWidget

	ctrl     *controller.Controller
	renderer *render.Renderer

	mu         sync.Mutex
	minSize    fyne.Size
	lineWidth  float64
	background color.Color
	antialias  bool

	onColorChange func(Target, color.Color)
	onHover       func(p graph.Point, inside bool)
}

type Opt func(*Graph)

func WithMinSize(s fyne.Size) Opt {
	return func(g *Graph) {
		g.minSize = s
	}
}

func WithLineWidth(w float64) Opt {
	return func(g *Graph) {
		g.lineWidth = w
	}
}

func WithBackground(c color.Color) Opt {
	return func(g *Graph) {
		g.background = c
	}
}

func WithAntialias(enabled bool) Opt {
	return func(g *Graph) {
		g.antialias = enabled
	}
}

// WithOnColorChange is called after the color picker changed a model color.
func WithOnColorChange(f func(Target, color.Color)) Opt {
	return func(g *Graph) {
		g.onColorChange = f
	}
}

// OnHover reports the pointer position in surface coordinates, inside is
// false once the pointer leaves the widget.
func OnHover(f func(p graph.Point, inside bool)) Opt {
	return func(g *Graph) {
		g.onHover = f
	}
}

// New creates a widget drawing ctrl's model. The controller's scheduler is
// bound to the widget so every model change refreshes it.
func New(ctrl *controller.Controller, opts ...Opt) *Graph {
	g := &Graph{
		ctrl:       ctrl,
		minSize:    fyne.NewSize(400, 300),
		lineWidth:  1,
		background: color.White,
		antialias:  true,
	}
	g.ExtendBaseWidget(g)
	for _, opt := range opts {
		opt(g)
	}
	g.renderer = render.NewRenderer(render.WithLineWidth(g.lineWidth))
	ctrl.Scheduler().SetInvalidate(g.Refresh)
	return g
}

func (g *Graph) Controller() *controller.Controller {
	return g.ctrl
}

func (g *Graph) Model() *graph.Model {
	return g.ctrl.Model()
}

func (g *Graph) SetAntialias(enabled bool) {
	g.mu.Lock()
	g.antialias = enabled
	g.mu.Unlock()
	g.ctrl.Scheduler().Request()
}

func (g *Graph) SetLineWidth(w float64) {
	g.mu.Lock()
	g.lineWidth = w
	g.renderer = render.NewRenderer(render.WithLineWidth(w))
	g.mu.Unlock()
	g.ctrl.Scheduler().Request()
}

// SetColor changes the point or curve color and reports it to the
// WithOnColorChange hook.
func (g *Graph) SetColor(t Target, c color.Color) {
	m := g.ctrl.Model()
	switch t {
	case TargetCurve:
		m.SetCurveColor(c)
	default:
		m.SetPointColor(c)
	}
	if g.onColorChange != nil {
		g.onColorChange(t, c)
	}
}

func (g *Graph) CreateRenderer() fyne.WidgetRenderer {
	return newGraphRenderer(g)
}
