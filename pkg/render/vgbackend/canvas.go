// Package vgbackend draws render commands onto a gonum vg canvas, used for
// the vector export formats (SVG, PDF).
//
// vg places the origin at the bottom left, surface coordinates are flipped
// on the way in.
package vgbackend

import (
	"image/color"
	"io"
	"math"

	"github.com/roffe/plotpad/pkg/graph"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/vgpdf"
	"gonum.org/v1/plot/vg/vgsvg"
)

// bezier circle approximation constant
const kappa = 0.5522847498307936

type Canvas struct {
	c        vg.CanvasWriterTo
	height   float64
	polyline vg.Path
	open     bool
	ellipses vg.Path
}

func NewSVG(w, h int) *Canvas {
	return Wrap(vgsvg.New(px(float64(w)), px(float64(h))), h)
}

func NewPDF(w, h int) *Canvas {
	return Wrap(vgpdf.New(px(float64(w)), px(float64(h))), h)
}

// Wrap draws onto c whose height is h surface pixels.
func Wrap(c vg.CanvasWriterTo, h int) *Canvas {
	c.SetLineWidth(px(1))
	return &Canvas{c: c, height: float64(h)}
}

func (c *Canvas) WriteTo(w io.Writer) (int64, error) {
	return c.c.WriteTo(w)
}

func (c *Canvas) SetLineWidth(w float64) {
	c.c.SetLineWidth(px(w))
}

func (c *Canvas) pt(x, y float64) vg.Point {
	return vg.Point{X: px(x), Y: px(c.height - y)}
}

func (c *Canvas) MoveTo(p graph.Point) {
	if !finite(p.X, p.Y) {
		c.open = false
		return
	}
	c.polyline.Move(c.pt(p.X, p.Y))
	c.open = true
}

func (c *Canvas) LineTo(p graph.Point) {
	if !finite(p.X, p.Y) {
		c.open = false
		return
	}
	if !c.open {
		c.MoveTo(p)
		return
	}
	c.polyline.Line(c.pt(p.X, p.Y))
}

func (c *Canvas) StrokePolyline(col color.Color) {
	if len(c.polyline) > 0 {
		c.c.SetColor(col)
		c.c.Stroke(c.polyline)
	}
	c.polyline = nil
	c.open = false
}

func (c *Canvas) AddEllipse(r graph.Rect) {
	if r.Empty() || !finite(r.X, r.Y) || !finite(r.W, r.H) {
		return
	}
	center := r.Center()
	rx, ry := r.W/2, r.H/2
	ox, oy := rx*kappa, ry*kappa
	x, y := center.X, center.Y

	p := &c.ellipses
	p.Move(c.pt(x+rx, y))
	p.CubeTo(c.pt(x+rx, y+oy), c.pt(x+ox, y+ry), c.pt(x, y+ry))
	p.CubeTo(c.pt(x-ox, y+ry), c.pt(x-rx, y+oy), c.pt(x-rx, y))
	p.CubeTo(c.pt(x-rx, y-oy), c.pt(x-ox, y-ry), c.pt(x, y-ry))
	p.CubeTo(c.pt(x+ox, y-ry), c.pt(x+rx, y-oy), c.pt(x+rx, y))
	p.Close()
}

func (c *Canvas) StrokeEllipses(col color.Color) {
	if len(c.ellipses) > 0 {
		c.c.SetColor(col)
		c.c.Stroke(c.ellipses)
	}
	c.ellipses = nil
}

// px maps one surface pixel to one point.
func px(v float64) vg.Length {
	return vg.Points(v)
}

func finite(a, b float64) bool {
	return !math.IsNaN(a) && !math.IsInf(a, 0) && !math.IsNaN(b) && !math.IsInf(b, 0)
}
