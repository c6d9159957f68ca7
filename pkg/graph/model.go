package graph

import (
	"errors"
	"image/color"
	"math"
	"sync"
)

const DefaultRadius = 5.0

var (
	DefaultPointColor = color.RGBA{0x5d, 0x11, 0xf7, 0xff}
	DefaultCurveColor = color.RGBA{0x32, 0x57, 0x1a, 0xff}
)

var ErrInvalidRadius = errors.New("radius must be a positive finite number")

// Func maps a pixel column to a height above the bottom edge of the surface.
type Func func(x float64) float64

// Model holds the points, the optional continuous function and the
// presentation parameters of a graph. Every mutator marks the model dirty
// and calls the change hook once, after the model lock is released.
// A Model is safe for concurrent use.
type Model struct {
	mu sync.RWMutex

	points     []Point
	radius     float64
	pointColor color.Color
	curveColor color.Color
	fn         Func

	dirty     bool
	onChanged func()
}

type ModelOpt func(*Model)

func WithRadius(r float64) ModelOpt {
	return func(m *Model) {
		if validRadius(r) {
			m.radius = r
		}
	}
}

func WithPointColor(c color.Color) ModelOpt {
	return func(m *Model) {
		m.pointColor = c
	}
}

func WithCurveColor(c color.Color) ModelOpt {
	return func(m *Model) {
		m.curveColor = c
	}
}

func WithFunc(f Func) ModelOpt {
	return func(m *Model) {
		m.fn = f
	}
}

func WithPoints(points ...Point) ModelOpt {
	return func(m *Model) {
		m.points = append(m.points[:0], points...)
	}
}

func WithOnChanged(f func()) ModelOpt {
	return func(m *Model) {
		m.onChanged = f
	}
}

func New(opts ...ModelOpt) *Model {
	m := &Model{
		radius:     DefaultRadius,
		pointColor: DefaultPointColor,
		curveColor: DefaultCurveColor,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Snapshot is a consistent copy of the model taken under one lock.
type Snapshot struct {
	Points     []Point
	Radius     float64
	PointColor color.Color
	CurveColor color.Color
	Func       Func
}

// SetOnChanged installs the hook called at the end of every mutation.
func (m *Model) SetOnChanged(f func()) {
	m.mu.Lock()
	m.onChanged = f
	m.mu.Unlock()
}

// OnChanged returns the installed change hook, nil if there is none.
func (m *Model) OnChanged() func() {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.onChanged
}

// update applies fn under the write lock, then marks the model dirty and
// calls the hook outside of the lock.
func (m *Model) update(fn func()) {
	m.mu.Lock()
	fn()
	m.dirty = true
	f := m.onChanged
	m.mu.Unlock()
	if f != nil {
		f()
	}
}

// Dirty reports whether the model changed since the last ClearDirty.
func (m *Model) Dirty() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.dirty
}

func (m *Model) ClearDirty() {
	m.mu.Lock()
	m.dirty = false
	m.mu.Unlock()
}

func (m *Model) Snapshot() Snapshot {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return Snapshot{
		Points:     append([]Point(nil), m.points...),
		Radius:     m.radius,
		PointColor: m.pointColor,
		CurveColor: m.curveColor,
		Func:       m.fn,
	}
}

func (m *Model) AddPoint(p Point) {
	m.update(func() {
		m.points = append(m.points, p)
	})
}

// SetPoints replaces all points. The slice is copied.
func (m *Model) SetPoints(points []Point) {
	cp := append(make([]Point, 0, len(points)), points...)
	m.update(func() {
		m.points = cp
	})
}

func (m *Model) ClearPoints() {
	m.update(func() {
		m.points = m.points[:0]
	})
}

func (m *Model) Points() []Point {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]Point(nil), m.points...)
}

func (m *Model) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.points)
}

func (m *Model) At(i int) Point {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.points[i]
}

// SetRadius rejects non-positive and non-finite values, the previous radius
// stays in effect.
func (m *Model) SetRadius(r float64) error {
	if !validRadius(r) {
		return ErrInvalidRadius
	}
	m.update(func() {
		m.radius = r
	})
	return nil
}

func (m *Model) Radius() float64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.radius
}

func (m *Model) SetPointColor(c color.Color) {
	m.update(func() {
		m.pointColor = c
	})
}

func (m *Model) PointColor() color.Color {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.pointColor
}

func (m *Model) SetCurveColor(c color.Color) {
	m.update(func() {
		m.curveColor = c
	})
}

func (m *Model) CurveColor() color.Color {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.curveColor
}

// SetFunc sets the continuous function, nil removes it.
func (m *Model) SetFunc(f Func) {
	m.update(func() {
		m.fn = f
	})
}

func (m *Model) Func() Func {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.fn
}

func (m *Model) HasFunc() bool {
	return m.Func() != nil
}

func validRadius(r float64) bool {
	return r > 0 && !math.IsInf(r, 0)
}
