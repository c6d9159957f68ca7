package graphwidget

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"
	"github.com/lusingander/colorpicker"
	"github.com/roffe/plotpad/pkg/graph"
)

// Tapped adds a point at the tap position, fyne positions are already
// relative to the widget.
func (g *Graph) Tapped(ev *fyne.PointEvent) {
	g.ctrl.Tap(graph.Pt(float64(ev.Position.X), float64(ev.Position.Y)))
}

// TappedSecondary opens a color picker for the point or curve color.
func (g *Graph) TappedSecondary(*fyne.PointEvent) {
	target := TargetPoints
	choice := widget.NewRadioGroup([]string{TargetPoints.String(), TargetCurve.String()}, func(s string) {
		if s == TargetCurve.String() {
			target = TargetCurve
			return
		}
		target = TargetPoints
	})
	choice.Horizontal = true
	choice.Required = true
	choice.SetSelected(TargetPoints.String())

	showColorPicker(g, choice, func(c color.Color) {
		g.SetColor(target, c)
	})
}

func (g *Graph) MouseIn(ev *desktop.MouseEvent) {
	g.hover(ev.Position, true)
}

func (g *Graph) MouseMoved(ev *desktop.MouseEvent) {
	g.hover(ev.Position, true)
}

func (g *Graph) MouseOut() {
	g.hover(fyne.Position{}, false)
}

func (g *Graph) hover(pos fyne.Position, inside bool) {
	if g.onHover != nil {
		g.onHover(graph.Pt(float64(pos.X), float64(pos.Y)), inside)
	}
}

// showColorPicker shows a modal hue circle picker over obj's canvas. header
// is placed above the picker when not nil.
func showColorPicker(obj fyne.CanvasObject, header fyne.CanvasObject, onChanged func(color.Color)) {
	c := fyne.CurrentApp().Driver().CanvasForObject(obj)
	if c == nil {
		return
	}
	picker := colorpicker.New(250, colorpicker.StyleHueCircle)
	picker.SetOnChanged(onChanged)

	content := container.NewVBox()
	if header != nil {
		content.Add(header)
	}
	content.Add(picker)

	var modal *widget.PopUp
	content.Add(widget.NewButton("Close", func() {
		modal.Hide()
	}))
	modal = widget.NewModalPopUp(content, c)
	modal.Show()
}
