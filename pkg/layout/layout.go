package layout

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
)

// NewFixedWidth wraps obj in a container that is always width wide.
func NewFixedWidth(width float32, obj fyne.CanvasObject) *fyne.Container {
	return container.New(&FixedWidth{Width: width}, obj)
}

// FixedWidth gives every object the same width and its own min height,
// objects are stacked on top of each other.
type FixedWidth struct {
	Width float32
}

func (d *FixedWidth) MinSize(objects []fyne.CanvasObject) fyne.Size {
	var h float32
	for _, o := range objects {
		h = max(h, o.MinSize().Height)
	}
	return fyne.NewSize(d.Width, h)
}

func (d *FixedWidth) Layout(objects []fyne.CanvasObject, size fyne.Size) {
	for _, o := range objects {
		o.Move(fyne.NewPos(0, (size.Height-o.MinSize().Height)/2))
		o.Resize(fyne.NewSize(d.Width, o.MinSize().Height))
	}
}
