package render

import (
	"image/color"

	"github.com/roffe/plotpad/pkg/graph"
)

type Op uint8

const (
	OpMoveTo Op = iota
	OpLineTo
	OpStrokePolyline
	OpAddEllipse
	OpStrokeEllipses
	OpSetLineWidth
)

var opNames = [...]string{
	OpMoveTo:         "MoveTo",
	OpLineTo:         "LineTo",
	OpStrokePolyline: "StrokePolyline",
	OpAddEllipse:     "AddEllipse",
	OpStrokeEllipses: "StrokeEllipses",
	OpSetLineWidth:   "SetLineWidth",
}

func (o Op) String() string {
	if int(o) < len(opNames) {
		return opNames[o]
	}
	return "Unknown"
}

// Command is one recorded draw call. Only the field matching Op is set.
type Command struct {
	Op    Op
	Point graph.Point
	Rect  graph.Rect
	Color color.Color
	Width float64
}

// Recorder is a Context that stores every call for later playback.
type Recorder struct {
	width, height int
	cmds          []Command
}

func NewRecorder(width, height int) *Recorder {
	return &Recorder{width: width, height: height}
}

func (r *Recorder) Size() (int, int) {
	return r.width, r.height
}

func (r *Recorder) MoveTo(p graph.Point) {
	r.cmds = append(r.cmds, Command{Op: OpMoveTo, Point: p})
}

func (r *Recorder) LineTo(p graph.Point) {
	r.cmds = append(r.cmds, Command{Op: OpLineTo, Point: p})
}

func (r *Recorder) StrokePolyline(c color.Color) {
	r.cmds = append(r.cmds, Command{Op: OpStrokePolyline, Color: c})
}

func (r *Recorder) AddEllipse(rect graph.Rect) {
	r.cmds = append(r.cmds, Command{Op: OpAddEllipse, Rect: rect})
}

func (r *Recorder) StrokeEllipses(c color.Color) {
	r.cmds = append(r.cmds, Command{Op: OpStrokeEllipses, Color: c})
}

func (r *Recorder) SetLineWidth(w float64) {
	r.cmds = append(r.cmds, Command{Op: OpSetLineWidth, Width: w})
}

// Finish returns the recording and resets the recorder.
func (r *Recorder) Finish() *Recording {
	rec := &Recording{width: r.width, height: r.height, cmds: r.cmds}
	r.cmds = nil
	return rec
}

// Record renders m with rd into a new Recording of the given size.
func Record(rd *Renderer, m *graph.Model, w, h int) *Recording {
	rec := NewRecorder(w, h)
	rd.Render(m, rec, w, h)
	return rec.Finish()
}

// Recording is an immutable list of draw commands.
type Recording struct {
	width, height int
	cmds          []Command
}

func (r *Recording) Width() int  { return r.width }
func (r *Recording) Height() int { return r.height }

func (r *Recording) Commands() []Command {
	return r.cmds
}

// Count returns how many commands of op were recorded.
func (r *Recording) Count(op Op) int {
	var n int
	for _, c := range r.cmds {
		if c.Op == op {
			n++
		}
	}
	return n
}

// Vertices returns the MoveTo/LineTo points in order.
func (r *Recording) Vertices() []graph.Point {
	var out []graph.Point
	for _, c := range r.cmds {
		if c.Op == OpMoveTo || c.Op == OpLineTo {
			out = append(out, c.Point)
		}
	}
	return out
}

// Ellipses returns the rects registered with AddEllipse in order.
func (r *Recording) Ellipses() []graph.Rect {
	var out []graph.Rect
	for _, c := range r.cmds {
		if c.Op == OpAddEllipse {
			out = append(out, c.Rect)
		}
	}
	return out
}

// Playback replays the commands into ctx. SetLineWidth is only forwarded
// when ctx implements LineWidthSetter.
func (r *Recording) Playback(ctx Context) {
	for _, c := range r.cmds {
		switch c.Op {
		case OpMoveTo:
			ctx.MoveTo(c.Point)
		case OpLineTo:
			ctx.LineTo(c.Point)
		case OpStrokePolyline:
			ctx.StrokePolyline(c.Color)
		case OpAddEllipse:
			ctx.AddEllipse(c.Rect)
		case OpStrokeEllipses:
			ctx.StrokeEllipses(c.Color)
		case OpSetLineWidth:
			if lw, ok := ctx.(LineWidthSetter); ok {
				lw.SetLineWidth(c.Width)
			}
		}
	}
}
