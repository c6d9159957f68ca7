package raster_test

import (
	"image/color"
	"math"
	"testing"

	"github.com/roffe/plotpad/pkg/graph"
	"github.com/roffe/plotpad/pkg/render"
	"github.com/roffe/plotpad/pkg/render/raster"
	"github.com/stretchr/testify/assert"
)

var red = color.RGBA{255, 0, 0, 255}

func painted(c *raster.Canvas, x, y int) bool {
	return c.Image().RGBAAt(x, y).A > 0
}

func TestFastPolyline(t *testing.T) {
	c := raster.NewImage(20, 10, raster.WithAntialias(false))
	c.MoveTo(graph.Pt(2, 5))
	c.LineTo(graph.Pt(17, 5))
	c.StrokePolyline(red)

	for x := 2; x <= 17; x++ {
		assert.Equal(t, red, c.Image().RGBAAt(x, 5), "x=%d", x)
	}
	assert.False(t, painted(c, 1, 5))
	assert.False(t, painted(c, 5, 4))
}

func TestAntialiasedPolyline(t *testing.T) {
	c := raster.NewImage(20, 10, raster.WithLineWidth(2))
	c.MoveTo(graph.Pt(2, 5))
	c.LineTo(graph.Pt(17, 5))
	c.StrokePolyline(red)

	assert.True(t, painted(c, 10, 4))
	assert.True(t, painted(c, 10, 5))
	assert.False(t, painted(c, 10, 0))
	assert.False(t, painted(c, 10, 9))
}

func TestStrokeResetsPath(t *testing.T) {
	c := raster.NewImage(10, 10, raster.WithAntialias(false))
	c.MoveTo(graph.Pt(0, 0))
	c.LineTo(graph.Pt(9, 0))
	c.StrokePolyline(red)
	c.Fill(color.Transparent)
	c.StrokePolyline(red)
	assert.False(t, painted(c, 5, 0))
}

func TestEllipseRing(t *testing.T) {
	for _, aa := range []bool{true, false} {
		c := raster.NewImage(40, 40, raster.WithAntialias(aa))
		c.AddEllipse(graph.CircleBounds(graph.Pt(20, 20), 10))
		c.StrokeEllipses(red)

		assert.True(t, painted(c, 30, 20) || painted(c, 29, 20), "right edge aa=%v", aa)
		assert.True(t, painted(c, 20, 10) || painted(c, 20, 9), "top edge aa=%v", aa)
		assert.False(t, painted(c, 20, 20), "center aa=%v", aa)
		assert.False(t, painted(c, 0, 0), "corner aa=%v", aa)
	}
}

func TestNonFiniteAndFarAwaySkipped(t *testing.T) {
	c := raster.NewImage(10, 10)
	assert.NotPanics(t, func() {
		c.MoveTo(graph.Pt(0, math.NaN()))
		c.LineTo(graph.Pt(1, math.Inf(1)))
		c.LineTo(graph.Pt(2, -1e12))
		c.LineTo(graph.Pt(3, 1e12))
		c.StrokePolyline(red)
		c.AddEllipse(graph.Rect{X: math.NaN(), Y: 0, W: 2, H: 2})
		c.AddEllipse(graph.Rect{X: 1e9, Y: 1e9, W: 4, H: 4})
		c.AddEllipse(graph.Rect{X: -1e7, Y: -1e7, W: 2e7, H: 2e7})
		c.StrokeEllipses(red)
	})
}

func TestSteepSegmentIsClipped(t *testing.T) {
	c := raster.NewImage(10, 10, raster.WithAntialias(false))
	c.MoveTo(graph.Pt(5, -1e9))
	c.LineTo(graph.Pt(5, 1e9))
	c.StrokePolyline(red)
	assert.True(t, painted(c, 5, 0))
	assert.True(t, painted(c, 5, 9))
}

func TestScale(t *testing.T) {
	c := raster.NewImage(20, 20, raster.WithScale(2), raster.WithAntialias(false))
	c.MoveTo(graph.Pt(0, 5))
	c.LineTo(graph.Pt(9, 5))
	c.StrokePolyline(red)
	assert.True(t, painted(c, 18, 10))
	assert.False(t, painted(c, 18, 5))
}

func TestRenderModel(t *testing.T) {
	m := graph.New(
		graph.WithFunc(func(x float64) float64 { return 25 }),
		graph.WithPoints(graph.Pt(10, 10)),
	)
	c := raster.NewImage(50, 50, raster.WithAntialias(false))
	render.NewRenderer().Render(m, c, 50, 50)

	assert.Equal(t, graph.DefaultCurveColor, c.Image().RGBAAt(40, 25))
	assert.Equal(t, graph.DefaultPointColor, c.Image().RGBAAt(15, 10))
}
