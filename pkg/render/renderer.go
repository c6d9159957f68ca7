package render

import (
	"github.com/roffe/plotpad/pkg/graph"
)

type Renderer struct {
	lineWidth float64
}

type RendererOpt func(*Renderer)

// WithLineWidth sets the stroke width for contexts implementing LineWidthSetter.
func WithLineWidth(w float64) RendererOpt {
	return func(r *Renderer) {
		if w > 0 {
			r.lineWidth = w
		}
	}
}

func NewRenderer(opts ...RendererOpt) *Renderer {
	r := &Renderer{}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Render emits the points and then the curve of m into ctx for a surface
// of w by h pixels. The model is read once through a snapshot so it may be
// mutated concurrently.
func (r *Renderer) Render(m *graph.Model, ctx Context, w, h int) {
	r.RenderSnapshot(m.Snapshot(), ctx, w, h)
}

// RenderSnapshot is Render for an already taken snapshot.
func (r *Renderer) RenderSnapshot(s graph.Snapshot, ctx Context, w, h int) {
	if r.lineWidth > 0 {
		if lw, ok := ctx.(LineWidthSetter); ok {
			lw.SetLineWidth(r.lineWidth)
		}
	}
	r.drawPoints(s, ctx)
	r.drawCurve(s, ctx, w, h)
}

// RenderSurface is Render with the size read from s.
func (r *Renderer) RenderSurface(m *graph.Model, ctx Context, s Surface) {
	w, h := s.Size()
	r.Render(m, ctx, w, h)
}

func (r *Renderer) drawPoints(s graph.Snapshot, ctx Context) {
	if len(s.Points) == 0 {
		return
	}
	for _, p := range s.Points {
		ctx.AddEllipse(graph.CircleBounds(p, s.Radius))
	}
	ctx.StrokeEllipses(s.PointColor)
}

func (r *Renderer) drawCurve(s graph.Snapshot, ctx Context, w, h int) {
	fn := s.Func
	if fn == nil || w <= 0 {
		return
	}
	H := float64(h)
	for x := 0; x < w; x++ {
		p := graph.Point{X: float64(x), Y: H - fn(float64(x))}
		if x == 0 {
			ctx.MoveTo(p)
		} else {
			ctx.LineTo(p)
		}
	}
	ctx.StrokePolyline(s.CurveColor)
}

// SampleCurve returns one vertex per integer column in [0, w), flipped so
// that larger function values are higher on screen. Values are not
// filtered, non-finite results are returned as is.
func SampleCurve(fn graph.Func, w, h int) []graph.Point {
	if fn == nil || w <= 0 {
		return nil
	}
	out := make([]graph.Point, w)
	H := float64(h)
	for x := range out {
		out[x] = graph.Point{X: float64(x), Y: H - fn(float64(x))}
	}
	return out
}
