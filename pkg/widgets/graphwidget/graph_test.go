package graphwidget

import (
	"image/color"
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/test"
	"github.com/roffe/plotpad/pkg/controller"
	"github.com/roffe/plotpad/pkg/graph"
	"github.com/roffe/plotpad/pkg/redraw"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGraph(t *testing.T, opts ...Opt) (*Graph, *controller.Controller) {
	t.Helper()
	test.NewTempApp(t)
	m := graph.New()
	ctrl := controller.New(m, redraw.New(nil))
	g := New(ctrl, opts...)
	g.Resize(fyne.NewSize(200, 100))
	return g, ctrl
}

func TestTapAddsPoint(t *testing.T) {
	var seen []graph.Point
	test.NewTempApp(t)
	m := graph.New()
	ctrl := controller.New(m, nil, controller.WithOnPointAdded(func(_ *controller.Controller, p graph.Point) {
		seen = append(seen, p)
	}))
	g := New(ctrl)
	g.Resize(fyne.NewSize(200, 100))

	test.TapAt(g, fyne.NewPos(10, 20))
	test.TapAt(g, fyne.NewPos(30, 40))

	assert.Equal(t, []graph.Point{{10, 20}, {30, 40}}, m.Points())
	assert.Equal(t, m.Points(), seen)
}

func TestRequestRefreshesAndGeneratePaints(t *testing.T) {
	g, ctrl := newTestGraph(t)
	ctrl.Model().AddPoint(graph.Pt(50, 50))
	ctrl.Model().AddPoint(graph.Pt(60, 50))
	assert.True(t, ctrl.Scheduler().Pending())

	r := newGraphRenderer(g)
	img := r.generate(200, 100)
	require.NotNil(t, img)
	assert.Equal(t, 200, img.Bounds().Dx())
	assert.False(t, ctrl.Scheduler().Pending())
	assert.False(t, ctrl.Model().Dirty())
}

func TestGenerateDrawsCurveAtScale(t *testing.T) {
	g, ctrl := newTestGraph(t, WithAntialias(false))
	ctrl.Model().SetFunc(func(x float64) float64 { return 50 })

	r := newGraphRenderer(g)
	img := r.generate(400, 200)
	_, _, _, a := img.At(100, 100).RGBA()
	assert.NotZero(t, a, "curve at y=50 logical is y=100 in pixels")
	_, _, _, a = img.At(100, 20).RGBA()
	assert.Zero(t, a)
}

func TestSetColorNotifies(t *testing.T) {
	var gotTarget Target
	var gotColor color.Color
	g, ctrl := newTestGraph(t, WithOnColorChange(func(tg Target, c color.Color) {
		gotTarget, gotColor = tg, c
	}))
	red := color.NRGBA{R: 0xff, A: 0xff}
	g.SetColor(TargetCurve, red)
	assert.Equal(t, TargetCurve, gotTarget)
	assert.Equal(t, red, gotColor)
	assert.Equal(t, red, ctrl.Model().CurveColor())
	assert.True(t, ctrl.Scheduler().Pending())
}

func TestHover(t *testing.T) {
	var last graph.Point
	var inside bool
	g, _ := newTestGraph(t, OnHover(func(p graph.Point, in bool) {
		last, inside = p, in
	}))
	g.MouseMoved(&desktop.MouseEvent{PointEvent: fyne.PointEvent{Position: fyne.NewPos(12, 34)}})
	assert.Equal(t, graph.Pt(12, 34), last)
	assert.True(t, inside)
	g.MouseOut()
	assert.False(t, inside)
}

func TestLegendEntryFollowsModel(t *testing.T) {
	g, ctrl := newTestGraph(t)
	le := NewLegendEntry(g, TargetPoints)
	assert.Equal(t, graph.DefaultPointColor, le.text.Color)

	blue := color.NRGBA{B: 0xff, A: 0xff}
	ctrl.Model().SetPointColor(blue)
	le.Refresh()
	assert.Equal(t, blue, le.text.Color)
}

func TestTargetString(t *testing.T) {
	assert.Equal(t, "Points", TargetPoints.String())
	assert.Equal(t, "Curve", TargetCurve.String())
}

func TestBackgroundAndStyle(t *testing.T) {
	g, ctrl := newTestGraph(t, WithBackground(color.Black), WithMinSize(fyne.NewSize(50, 40)))
	r := newGraphRenderer(g)
	assert.Equal(t, color.Black, r.bg.FillColor)
	assert.Equal(t, fyne.NewSize(50, 40), r.MinSize())

	r.generate(200, 100)
	g.SetAntialias(false)
	assert.True(t, ctrl.Scheduler().Pending())
	r.generate(200, 100)
	g.SetLineWidth(3)
	assert.True(t, ctrl.Scheduler().Pending())
	assert.Len(t, r.Objects(), 2)
}

func TestGenerateWhileTapping(t *testing.T) {
	g, ctrl := newTestGraph(t)
	done := make(chan struct{})
	stopped := make(chan struct{})
	go func() {
		defer close(stopped)
		for i := 0; ; i++ {
			select {
			case <-done:
				return
			default:
			}
			g.Tapped(&fyne.PointEvent{Position: fyne.NewPos(5, 5)})
			if i%10 == 0 {
				ctrl.Model().ClearPoints()
			}
		}
	}()
	r := newGraphRenderer(g)
	for range 200 {
		img := r.generate(20, 20)
		require.NotNil(t, img)
	}
	close(done)
	<-stopped
}
