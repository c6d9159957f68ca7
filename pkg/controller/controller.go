// Package controller turns taps on a plotting surface into model updates.
//
// Only taps reach the OnPointAdded observer. Points added through the model
// directly (Model.AddPoint, Model.SetPoints) are drawn but not reported.
package controller

import (
	"github.com/roffe/plotpad/pkg/graph"
	"github.com/roffe/plotpad/pkg/redraw"
)

type Controller struct {
	model     *graph.Model
	scheduler *redraw.Scheduler

	// OnPointAdded is called once per tap after the point is in the model.
	OnPointAdded func(c *Controller, p graph.Point)
}

type Opt func(*Controller)

func WithOnPointAdded(f func(c *Controller, p graph.Point)) Opt {
	return func(c *Controller) {
		c.OnPointAdded = f
	}
}

// New wires every model mutation to a redraw request on s. A hook already
// installed on m keeps running before the request. A nil s gets a scheduler
// without a host; set one later with Scheduler().SetInvalidate.
func New(m *graph.Model, s *redraw.Scheduler, opts ...Opt) *Controller {
	if s == nil {
		s = redraw.New(nil)
	}
	c := &Controller{
		model:     m,
		scheduler: s,
	}
	for _, opt := range opts {
		opt(c)
	}
	if prev := m.OnChanged(); prev != nil {
		m.SetOnChanged(func() {
			prev()
			s.Request()
		})
	} else {
		m.SetOnChanged(s.Request)
	}
	return c
}

func (c *Controller) Model() *graph.Model {
	return c.model
}

func (c *Controller) Scheduler() *redraw.Scheduler {
	return c.scheduler
}

// Tap adds p to the model, notifies the observer and requests a redraw.
func (c *Controller) Tap(p graph.Point) {
	c.model.AddPoint(p)
	if c.OnPointAdded != nil {
		c.OnPointAdded(c, p)
	}
	c.scheduler.Request()
}
