// Package raster implements render.Context on an *image.RGBA.
//
// Anti-aliased strokes are rasterized with golang.org/x/image/vector into
// a mask the size of the primitive's bounding box. The fast path draws
// one pixel wide Bresenham lines. Both paths clip to the image and skip
// segments with non-finite endpoints.
package raster

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"github.com/roffe/plotpad/pkg/graph"
	"golang.org/x/image/vector"
)

// masks larger than this many times the image area use the fast path
const maxMaskFactor = 4

type Canvas struct {
	img       *image.RGBA
	scale     float64
	lineWidth float64
	antialias bool

	paths    [][]graph.Point
	ellipses []graph.Rect
}

type Opt func(*Canvas)

// WithScale maps logical coordinates to pixels, used for HiDPI surfaces.
func WithScale(s float64) Opt {
	return func(c *Canvas) {
		if s > 0 && finite(s) {
			c.scale = s
		}
	}
}

func WithLineWidth(w float64) Opt {
	return func(c *Canvas) {
		c.SetLineWidth(w)
	}
}

func WithAntialias(enabled bool) Opt {
	return func(c *Canvas) {
		c.antialias = enabled
	}
}

func New(img *image.RGBA, opts ...Opt) *Canvas {
	c := &Canvas{
		img:       img,
		scale:     1,
		lineWidth: 1,
		antialias: true,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// NewImage allocates a w by h image and returns a canvas drawing on it.
func NewImage(w, h int, opts ...Opt) *Canvas {
	return New(image.NewRGBA(image.Rect(0, 0, max(w, 0), max(h, 0))), opts...)
}

func (c *Canvas) Image() *image.RGBA {
	return c.img
}

// Fill paints the whole image with col.
func (c *Canvas) Fill(col color.Color) {
	draw.Draw(c.img, c.img.Bounds(), image.NewUniform(col), image.Point{}, draw.Src)
}

// SetLineWidth sets the stroke width in logical units.
func (c *Canvas) SetLineWidth(w float64) {
	if w > 0 && finite(w) {
		c.lineWidth = w
	}
}

func (c *Canvas) MoveTo(p graph.Point) {
	c.paths = append(c.paths, []graph.Point{p})
}

func (c *Canvas) LineTo(p graph.Point) {
	if len(c.paths) == 0 {
		c.MoveTo(p)
		return
	}
	last := len(c.paths) - 1
	c.paths[last] = append(c.paths[last], p)
}

func (c *Canvas) StrokePolyline(col color.Color) {
	src := image.NewUniform(col)
	rgba := toRGBA(col)
	for _, path := range c.paths {
		for i := 1; i < len(path); i++ {
			c.strokeSegment(path[i-1], path[i], src, rgba)
		}
	}
	c.paths = c.paths[:0]
}

func (c *Canvas) AddEllipse(r graph.Rect) {
	c.ellipses = append(c.ellipses, r)
}

func (c *Canvas) StrokeEllipses(col color.Color) {
	src := image.NewUniform(col)
	rgba := toRGBA(col)
	for _, r := range c.ellipses {
		c.strokeEllipse(r, src, rgba)
	}
	c.ellipses = c.ellipses[:0]
}

func (c *Canvas) halfWidth() float64 {
	return math.Max(c.lineWidth*c.scale/2, 0.5)
}

func (c *Canvas) strokeSegment(a, b graph.Point, src *image.Uniform, rgba color.RGBA) {
	hw := c.halfWidth()
	bounds := c.img.Bounds()
	x0, y0, x1, y1, ok := clipSegment(
		a.X*c.scale, a.Y*c.scale, b.X*c.scale, b.Y*c.scale,
		float64(bounds.Min.X)-hw, float64(bounds.Min.Y)-hw,
		float64(bounds.Max.X)+hw, float64(bounds.Max.Y)+hw,
	)
	if !ok {
		return
	}
	if !c.antialias {
		Bresenham(c.img, int(math.Floor(x0)), int(math.Floor(y0)), int(math.Floor(x1)), int(math.Floor(y1)), rgba)
		return
	}
	dx, dy := x1-x0, y1-y0
	length := math.Hypot(dx, dy)
	if length == 0 {
		return
	}
	nx, ny := -dy/length*hw, dx/length*hw
	quad := []vec{
		{x0 + nx, y0 + ny},
		{x1 + nx, y1 + ny},
		{x1 - nx, y1 - ny},
		{x0 - nx, y0 - ny},
	}
	c.fillMask(src, quad)
}

func (c *Canvas) strokeEllipse(r graph.Rect, src *image.Uniform, rgba color.RGBA) {
	if r.Empty() || !finite(r.X) || !finite(r.Y) || !finite(r.W) || !finite(r.H) {
		return
	}
	cx, cy := (r.X+r.W/2)*c.scale, (r.Y+r.H/2)*c.scale
	rx, ry := r.W/2*c.scale, r.H/2*c.scale
	hw := c.halfWidth()

	outer := image.Rect(
		int(math.Floor(cx-rx-hw)), int(math.Floor(cy-ry-hw)),
		int(math.Ceil(cx+rx+hw)), int(math.Ceil(cy+ry+hw)),
	)
	if outer.Intersect(c.img.Bounds()).Empty() {
		return
	}

	n := segments(rx, ry)
	if !c.antialias || outer.Dx()*outer.Dy() > maxMaskFactor*c.area() {
		pts := ellipsePoints(cx, cy, rx, ry, n, false)
		for i := range pts {
			j := (i + 1) % len(pts)
			c.strokeSegment(
				graph.Point{X: pts[i].x / c.scale, Y: pts[i].y / c.scale},
				graph.Point{X: pts[j].x / c.scale, Y: pts[j].y / c.scale},
				src, rgba,
			)
		}
		return
	}

	ring := [][]vec{ellipsePoints(cx, cy, rx+hw, ry+hw, n, false)}
	if rx > hw && ry > hw {
		ring = append(ring, ellipsePoints(cx, cy, rx-hw, ry-hw, n, true))
	}
	c.fillMask(src, ring...)
}

func (c *Canvas) area() int {
	b := c.img.Bounds()
	return max(b.Dx()*b.Dy(), 1)
}

// fillMask rasterizes the closed polygons into a mask covering their
// bounding box and composites src through it. Opposite windings cancel.
func (c *Canvas) fillMask(src image.Image, polys ...[]vec) {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, poly := range polys {
		for _, p := range poly {
			minX, minY = math.Min(minX, p.x), math.Min(minY, p.y)
			maxX, maxY = math.Max(maxX, p.x), math.Max(maxY, p.y)
		}
	}
	box := image.Rect(int(math.Floor(minX)), int(math.Floor(minY)), int(math.Ceil(maxX)), int(math.Ceil(maxY)))
	clipped := box.Intersect(c.img.Bounds())
	if clipped.Empty() || box.Dx()*box.Dy() > maxMaskFactor*c.area() {
		return
	}

	z := vector.NewRasterizer(box.Dx(), box.Dy())
	ox, oy := float64(box.Min.X), float64(box.Min.Y)
	for _, poly := range polys {
		if len(poly) < 3 {
			continue
		}
		z.MoveTo(float32(poly[0].x-ox), float32(poly[0].y-oy))
		for _, p := range poly[1:] {
			z.LineTo(float32(p.x-ox), float32(p.y-oy))
		}
		z.ClosePath()
	}
	mask := image.NewAlpha(image.Rect(0, 0, box.Dx(), box.Dy()))
	z.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})
	draw.DrawMask(c.img, clipped, src, image.Point{}, mask, clipped.Min.Sub(box.Min), draw.Over)
}

type vec struct {
	x, y float64
}

func segments(rx, ry float64) int {
	n := int(math.Pi * (rx + ry))
	return min(max(n, 16), 1024)
}

func ellipsePoints(cx, cy, rx, ry float64, n int, reverse bool) []vec {
	pts := make([]vec, n)
	for i := range pts {
		a := 2 * math.Pi * float64(i) / float64(n)
		if reverse {
			a = -a
		}
		pts[i] = vec{cx + rx*math.Cos(a), cy + ry*math.Sin(a)}
	}
	return pts
}

func toRGBA(c color.Color) color.RGBA {
	return color.RGBAModel.Convert(c).(color.RGBA)
}
