// Package ggbackend draws render commands with github.com/gogpu/gg.
package ggbackend

import (
	"errors"
	"image"
	"image/color"
	"io"
	"math"

	"github.com/gogpu/gg"
	"github.com/roffe/plotpad/pkg/graph"
)

type Canvas struct {
	dc        *gg.Context
	ownsDC    bool
	lineWidth float64
	open      bool
	err       error
}

// New creates a w by h canvas cleared to background. A nil background
// leaves the surface transparent.
func New(w, h int, background color.Color) *Canvas {
	dc := gg.NewContext(w, h)
	if background != nil {
		dc.ClearWithColor(gg.FromColor(background))
	}
	c := Wrap(dc)
	c.ownsDC = true
	return c
}

// Wrap draws into an existing gg context.
func Wrap(dc *gg.Context) *Canvas {
	dc.SetLineWidth(1)
	return &Canvas{dc: dc, lineWidth: 1}
}

func (c *Canvas) Context() *gg.Context {
	return c.dc
}

func (c *Canvas) SetLineWidth(w float64) {
	c.lineWidth = w
	c.dc.SetLineWidth(w)
}

// MoveTo and LineTo split the path at non-finite vertices.
func (c *Canvas) MoveTo(p graph.Point) {
	if !finite(p) {
		c.open = false
		return
	}
	c.dc.MoveTo(p.X, p.Y)
	c.open = true
}

func (c *Canvas) LineTo(p graph.Point) {
	if !finite(p) {
		c.open = false
		return
	}
	if !c.open {
		c.MoveTo(p)
		return
	}
	c.dc.LineTo(p.X, p.Y)
}

func (c *Canvas) StrokePolyline(col color.Color) {
	c.stroke(col)
	c.open = false
}

func (c *Canvas) AddEllipse(r graph.Rect) {
	if r.Empty() || !finite(graph.Pt(r.X, r.Y)) || !finite(graph.Pt(r.W, r.H)) {
		return
	}
	center := r.Center()
	c.dc.DrawEllipse(center.X, center.Y, r.W/2, r.H/2)
}

func (c *Canvas) StrokeEllipses(col color.Color) {
	c.stroke(col)
}

func (c *Canvas) stroke(col color.Color) {
	c.dc.SetColor(col)
	if err := c.dc.Stroke(); err != nil {
		c.err = errors.Join(c.err, err)
	}
}

// Err returns the accumulated stroke errors.
func (c *Canvas) Err() error {
	return c.err
}

func (c *Canvas) Image() image.Image {
	return c.dc.Image()
}

func (c *Canvas) EncodePNG(w io.Writer) error {
	if c.err != nil {
		return c.err
	}
	return c.dc.EncodePNG(w)
}

// Close releases the context if it was created by New.
func (c *Canvas) Close() error {
	if !c.ownsDC {
		return nil
	}
	return c.dc.Close()
}

func finite(p graph.Point) bool {
	return !math.IsNaN(p.X) && !math.IsInf(p.X, 0) && !math.IsNaN(p.Y) && !math.IsInf(p.Y, 0)
}
