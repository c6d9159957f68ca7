package graphwidget

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"
)

var _ fyne.Tappable = (*LegendEntry)(nil)

// LegendEntry is a colored label for one of the graph's colors. Tapping it
// opens a color picker bound to that color.
type LegendEntry struct {
	widget.BaseWidget

	g      *Graph
	target Target

	swatch *canvas.Circle
	text   *canvas.Text
}

func NewLegendEntry(g *Graph, t Target) *LegendEntry {
	le := &LegendEntry{
		g:      g,
		target: t,
		swatch: canvas.NewCircle(color.Transparent),
		text:   canvas.NewText(t.String(), color.Black),
	}
	le.text.TextSize = 14
	le.swatch.StrokeWidth = 2
	le.syncColor()
	le.ExtendBaseWidget(le)
	return le
}

func (le *LegendEntry) color() color.Color {
	m := le.g.Model()
	if le.target == TargetCurve {
		return m.CurveColor()
	}
	return m.PointColor()
}

func (le *LegendEntry) syncColor() {
	c := le.color()
	le.swatch.StrokeColor = c
	le.text.Color = c
}

// SwatchColor returns the color currently shown by the entry.
func (le *LegendEntry) SwatchColor() color.Color {
	return le.swatch.StrokeColor
}

func (le *LegendEntry) Refresh() {
	le.syncColor()
	le.swatch.Refresh()
	le.text.Refresh()
}

func (le *LegendEntry) Tapped(*fyne.PointEvent) {
	showColorPicker(le, nil, func(c color.Color) {
		le.g.SetColor(le.target, c)
		le.Refresh()
	})
}

func (le *LegendEntry) MouseIn(*desktop.MouseEvent) {
	le.text.TextStyle.Bold = true
	le.text.Refresh()
}

func (le *LegendEntry) MouseMoved(*desktop.MouseEvent) {
}

func (le *LegendEntry) MouseOut() {
	le.text.TextStyle.Bold = false
	le.text.Refresh()
}

func (le *LegendEntry) CreateRenderer() fyne.WidgetRenderer {
	return &legendEntryRenderer{le}
}

type legendEntryRenderer struct {
	le *LegendEntry
}

func (r *legendEntryRenderer) Layout(size fyne.Size) {
	d := size.Height - 4
	r.le.swatch.Resize(fyne.NewSize(d, d))
	r.le.swatch.Move(fyne.NewPos(2, 2))
	r.le.text.Move(fyne.NewPos(size.Height+4, (size.Height-r.le.text.MinSize().Height)/2))
}

func (r *legendEntryRenderer) MinSize() fyne.Size {
	ts := r.le.text.MinSize()
	h := max(ts.Height, 18)
	return fyne.NewSize(h+4+ts.Width, h)
}

func (r *legendEntryRenderer) Refresh() {
	r.le.swatch.Refresh()
	r.le.text.Refresh()
}

func (r *legendEntryRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.le.swatch, r.le.text}
}

func (r *legendEntryRenderer) Destroy() {
}
