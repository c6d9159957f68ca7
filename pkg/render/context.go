package render

import (
	"image/color"

	"github.com/roffe/plotpad/pkg/graph"
)

// Context is the drawing primitive a Renderer emits into.
//
// MoveTo/LineTo build a single polyline that StrokePolyline strokes and
// resets. AddEllipse batches ellipses that StrokeEllipses strokes with one
// call and resets. Implementations clip to their own bounds.
type Context interface {
	MoveTo(p graph.Point)
	LineTo(p graph.Point)
	StrokePolyline(c color.Color)
	AddEllipse(r graph.Rect)
	StrokeEllipses(c color.Color)
}

// LineWidthSetter is implemented by contexts that support a stroke width.
type LineWidthSetter interface {
	SetLineWidth(w float64)
}

// Surface reports the current size of the drawing area in pixels.
type Surface interface {
	Size() (w, h int)
}

type SurfaceFunc func() (w, h int)

func (f SurfaceFunc) Size() (int, int) {
	return f()
}

// FixedSurface is a Surface with a constant size.
type FixedSurface struct {
	W, H int
}

func (s FixedSurface) Size() (int, int) {
	return s.W, s.H
}
