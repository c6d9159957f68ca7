package vgbackend_test

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/roffe/plotpad/pkg/graph"
	"github.com/roffe/plotpad/pkg/render"
	"github.com/roffe/plotpad/pkg/render/vgbackend"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSVG(t *testing.T) {
	m := graph.New(
		graph.WithFunc(func(x float64) float64 { return x }),
		graph.WithPoints(graph.Pt(10, 10)),
	)
	c := vgbackend.NewSVG(30, 20)
	render.NewRenderer().Render(m, c, 30, 20)

	var buf bytes.Buffer
	_, err := c.WriteTo(&buf)
	require.NoError(t, err)
	out := buf.String()
	assert.True(t, strings.Contains(out, "<svg"))
	assert.True(t, strings.Contains(out, "<path"))
}

func TestPDF(t *testing.T) {
	c := vgbackend.NewPDF(30, 20)
	render.NewRenderer().Render(graph.New(graph.WithPoints(graph.Pt(5, 5))), c, 30, 20)
	var buf bytes.Buffer
	_, err := c.WriteTo(&buf)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF")))
}

func TestNonFinite(t *testing.T) {
	c := vgbackend.NewSVG(10, 10)
	assert.NotPanics(t, func() {
		c.MoveTo(graph.Pt(0, math.NaN()))
		c.LineTo(graph.Pt(1, 1))
		c.LineTo(graph.Pt(2, math.Inf(1)))
		c.StrokePolyline(graph.DefaultCurveColor)
		c.AddEllipse(graph.Rect{X: math.Inf(1), W: 1, H: 1})
		c.StrokeEllipses(graph.DefaultPointColor)
	})
}
