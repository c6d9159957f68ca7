// Package ebitenbackend draws render commands onto an *ebiten.Image using
// vector paths triangulated by ebiten.
package ebitenbackend

import (
	"image"
	"image/color"
	"math"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/roffe/plotpad/pkg/graph"
)

const kappa = 0.5522847498307936

var (
	whiteOnce     sync.Once
	whiteSubImage *ebiten.Image
)

// white returns a 1x1 white source image for DrawTriangles.
func white() *ebiten.Image {
	whiteOnce.Do(func() {
		img := ebiten.NewImage(3, 3)
		img.Fill(color.White)
		whiteSubImage = img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	})
	return whiteSubImage
}

const (
	// maxVertices is the most vertices one DrawTriangles call can address
	// with uint16 indices.
	maxVertices = math.MaxUint16 + 1
	// runSegments caps the line segments of one polyline piece.
	runSegments = 512
	// batchUnits is the first guess of pieces per DrawTriangles call. It is
	// halved while a batch triangulates to more than maxVertices.
	batchUnits = 64
)

type Canvas struct {
	dst       *ebiten.Image
	lineWidth float32
	antialias bool

	runs     [][]graph.Point
	open     bool
	ellipses []graph.Rect

	vertices []ebiten.Vertex
	indices  []uint16

	// draw receives every triangle batch. nil draws onto dst.
	draw func(vs []ebiten.Vertex, is []uint16)
}

func New(dst *ebiten.Image) *Canvas {
	return &Canvas{dst: dst, lineWidth: 1, antialias: true}
}

func (c *Canvas) SetLineWidth(w float64) {
	c.lineWidth = float32(w)
}

func (c *Canvas) SetAntialias(enabled bool) {
	c.antialias = enabled
}

func (c *Canvas) MoveTo(p graph.Point) {
	if !finite(p.X, p.Y) {
		c.open = false
		return
	}
	c.runs = append(c.runs, []graph.Point{p})
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
	last := len(c.runs) - 1
	c.runs[last] = append(c.runs[last], p)
}

func (c *Canvas) StrokePolyline(col color.Color) {
	var units []func(*vector.Path)
	for _, run := range c.runs {
		for i := 1; i < len(run); i += runSegments {
			piece := run[i-1 : min(i+runSegments, len(run))]
			units = append(units, func(p *vector.Path) {
				p.MoveTo(float32(piece[0].X), float32(piece[0].Y))
				for _, pt := range piece[1:] {
					p.LineTo(float32(pt.X), float32(pt.Y))
				}
			})
		}
	}
	c.stroke(units, col)
	c.runs = nil
	c.open = false
}

func (c *Canvas) AddEllipse(r graph.Rect) {
	if r.Empty() || !finite(r.X, r.Y) || !finite(r.W, r.H) {
		return
	}
	c.ellipses = append(c.ellipses, r)
}

func (c *Canvas) StrokeEllipses(col color.Color) {
	units := make([]func(*vector.Path), 0, len(c.ellipses))
	for _, r := range c.ellipses {
		units = append(units, func(p *vector.Path) {
			appendEllipse(p, r)
		})
	}
	c.stroke(units, col)
	c.ellipses = c.ellipses[:0]
}

func appendEllipse(p *vector.Path, r graph.Rect) {
	ctr := r.Center()
	x, y := float32(ctr.X), float32(ctr.Y)
	rx, ry := float32(r.W/2), float32(r.H/2)
	ox, oy := rx*kappa, ry*kappa

	p.MoveTo(x+rx, y)
	p.CubicTo(x+rx, y+oy, x+ox, y+ry, x, y+ry)
	p.CubicTo(x-ox, y+ry, x-rx, y+oy, x-rx, y)
	p.CubicTo(x-rx, y-oy, x-ox, y-ry, x, y-ry)
	p.CubicTo(x+ox, y-ry, x+rx, y-oy, x+rx, y)
	p.Close()
}

// stroke triangulates units in batches that stay addressable by uint16
// indices and draws each batch.
func (c *Canvas) stroke(units []func(*vector.Path), col color.Color) {
	r, g, b, a := colorScale(col)
	n := batchUnits
	for len(units) > 0 {
		n = min(n, len(units))
		for !c.triangulate(units[:n]) && n > 1 {
			n /= 2
		}
		if len(c.vertices) <= maxVertices {
			c.drawBatch(r, g, b, a)
		}
		units = units[n:]
	}
}

func (c *Canvas) triangulate(units []func(*vector.Path)) bool {
	var path vector.Path
	for _, u := range units {
		u(&path)
	}
	c.vertices, c.indices = path.AppendVerticesAndIndicesForStroke(c.vertices[:0], c.indices[:0], &vector.StrokeOptions{
		Width:    c.lineWidth,
		LineJoin: vector.LineJoinRound,
	})
	return len(c.vertices) <= maxVertices
}

func (c *Canvas) drawBatch(r, g, b, a float32) {
	if len(c.indices) == 0 {
		return
	}
	for i := range c.vertices {
		c.vertices[i].SrcX = 1
		c.vertices[i].SrcY = 1
		c.vertices[i].ColorR = r
		c.vertices[i].ColorG = g
		c.vertices[i].ColorB = b
		c.vertices[i].ColorA = a
	}
	if c.draw != nil {
		c.draw(c.vertices, c.indices)
		return
	}
	op := &ebiten.DrawTrianglesOptions{}
	op.AntiAlias = c.antialias
	op.ColorScaleMode = ebiten.ColorScaleModePremultipliedAlpha
	c.dst.DrawTriangles(c.vertices, c.indices, white(), op)
}

// colorScale returns premultiplied vertex color components in [0,1].
func colorScale(col color.Color) (r, g, b, a float32) {
	cr, cg, cb, ca := col.RGBA()
	return float32(cr) / 0xffff, float32(cg) / 0xffff, float32(cb) / 0xffff, float32(ca) / 0xffff
}

func finite(a, b float64) bool {
	return !math.IsNaN(a) && !math.IsInf(a, 0) && !math.IsNaN(b) && !math.IsInf(b, 0)
}
