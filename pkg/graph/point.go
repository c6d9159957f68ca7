package graph

import "strconv"

// Point is a surface-local coordinate, origin top-left, +y down.
type Point struct {
	X, Y float64
}

func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

func (p Point) Sub(q Point) Point {
	return Point{p.X - q.X, p.Y - q.Y}
}

func (p Point) String() string {
	return "(" + strconv.FormatFloat(p.X, 'f', -1, 64) + "," + strconv.FormatFloat(p.Y, 'f', -1, 64) + ")"
}

type Rect struct {
	X, Y, W, H float64
}

// Empty reports whether the rect has no area.
func (r Rect) Empty() bool {
	return !(r.W > 0 && r.H > 0)
}

func (r Rect) Center() Point {
	return Point{r.X + r.W/2, r.Y + r.H/2}
}

// CircleBounds returns the bounding rect of a circle with radius r centered at p.
func CircleBounds(p Point, r float64) Rect {
	return Rect{X: p.X - r, Y: p.Y - r, W: 2 * r, H: 2 * r}
}
