package main

import (
	"testing"

	"github.com/roffe/plotpad/pkg/controller"
	"github.com/roffe/plotpad/pkg/graph"
	"github.com/roffe/plotpad/pkg/redraw"
	"github.com/stretchr/testify/assert"
)

func TestLayoutTriggersPaintOnce(t *testing.T) {
	g := newGame(controller.New(graph.New(), redraw.New(nil)))
	assert.False(t, g.shouldPaint())

	w, h := g.Layout(320, 240)
	assert.Equal(t, 320, w)
	assert.Equal(t, 240, h)
	assert.True(t, g.shouldPaint())
	assert.False(t, g.shouldPaint())

	g.Layout(320, 240)
	assert.False(t, g.shouldPaint())

	sw, sh := g.Size()
	assert.Equal(t, 320, sw)
	assert.Equal(t, 240, sh)
}

func TestTapRequestsPaint(t *testing.T) {
	var got []graph.Point
	ctrl := controller.New(graph.New(), redraw.New(nil), controller.WithOnPointAdded(func(_ *controller.Controller, p graph.Point) {
		got = append(got, p)
	}))
	g := newGame(ctrl)
	g.tap(10, 20)
	g.tap(11, 21)

	assert.Equal(t, []graph.Point{{10, 20}, {11, 21}}, got)
	assert.True(t, g.shouldPaint())
	_, paints := ctrl.Scheduler().Stats()
	assert.Zero(t, paints)
}
