package graphwidget

import (
	"image"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"github.com/roffe/plotpad/pkg/render/raster"
)

type graphRenderer struct {
	g      *Graph
	bg     *canvas.Rectangle
	raster *canvas.Raster
}

func newGraphRenderer(g *Graph) *graphRenderer {
	r := &graphRenderer{
		g:  g,
		bg: canvas.NewRectangle(g.background),
	}
	r.raster = canvas.NewRaster(r.generate)
	return r
}

// generate renders the model at pixel resolution. The model lives in
// logical coordinates so the canvas scales by pixels per logical unit.
func (r *graphRenderer) generate(w, h int) image.Image {
	size := r.g.Size()
	lw, lh := int(size.Width), int(size.Height)

	r.g.mu.Lock()
	rd := r.g.renderer
	opts := []raster.Opt{raster.WithAntialias(r.g.antialias)}
	r.g.mu.Unlock()
	if lw > 0 {
		opts = append(opts, raster.WithScale(float64(w)/float64(lw)))
	}

	c := raster.NewImage(w, h, opts...)
	r.g.ctrl.Scheduler().ForcePaint(func() {
		rd.Render(r.g.ctrl.Model(), c, lw, lh)
		r.g.ctrl.Model().ClearDirty()
	})
	return c.Image()
}

func (r *graphRenderer) Layout(size fyne.Size) {
	r.bg.Resize(size)
	r.raster.Resize(size)
}

func (r *graphRenderer) MinSize() fyne.Size {
	return r.g.minSize
}

func (r *graphRenderer) Refresh() {
	r.bg.FillColor = r.g.background
	r.bg.Refresh()
	r.raster.Refresh()
}

func (r *graphRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.bg, r.raster}
}

func (r *graphRenderer) Destroy() {
}
