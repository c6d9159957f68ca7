package main

import (
	"image/color"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/roffe/plotpad/pkg/controller"
	"github.com/roffe/plotpad/pkg/graph"
	"github.com/roffe/plotpad/pkg/render"
	"github.com/roffe/plotpad/pkg/render/ebitenbackend"
)

// game keeps the previous frame on screen and only repaints when the
// scheduler has a pending request or the layout size changed.
type game struct {
	ctrl     *controller.Controller
	renderer *render.Renderer

	mu          sync.Mutex
	w, h        int
	sizeChanged bool

	touches []ebiten.TouchID
}

func newGame(ctrl *controller.Controller) *game {
	return &game{
		ctrl:     ctrl,
		renderer: render.NewRenderer(render.WithLineWidth(1.5)),
	}
}

// Size reports the current layout size, read by size dependent functions.
func (g *game) Size() (int, int) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.w, g.h
}

func (g *game) Update() error {
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		g.tap(x, y)
	}
	g.touches = inpututil.AppendJustPressedTouchIDs(g.touches[:0])
	// one finger only, multi touch gestures are not handled
	if len(g.touches) == 1 {
		x, y := ebiten.TouchPosition(g.touches[0])
		g.tap(x, y)
	}
	return nil
}

func (g *game) tap(x, y int) {
	g.ctrl.Tap(graph.Pt(float64(x), float64(y)))
}

func (g *game) shouldPaint() bool {
	g.mu.Lock()
	changed := g.sizeChanged
	g.sizeChanged = false
	g.mu.Unlock()
	return changed || g.ctrl.Scheduler().Pending()
}

func (g *game) Draw(screen *ebiten.Image) {
	if !g.shouldPaint() {
		return
	}
	w, h := g.Size()
	g.ctrl.Scheduler().ForcePaint(func() {
		screen.Fill(color.White)
		g.renderer.Render(g.ctrl.Model(), ebitenbackend.New(screen), w, h)
		g.ctrl.Model().ClearDirty()
	})
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if outsideWidth != g.w || outsideHeight != g.h {
		g.w, g.h = outsideWidth, outsideHeight
		g.sizeChanged = true
	}
	return outsideWidth, outsideHeight
}
