package layout

import (
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/widget"
	"github.com/stretchr/testify/assert"
)

func TestFixedWidth(t *testing.T) {
	test.NewTempApp(t)
	e := widget.NewEntry()
	c := NewFixedWidth(120, e)

	assert.Equal(t, float32(120), c.MinSize().Width)
	assert.Equal(t, e.MinSize().Height, c.MinSize().Height)

	c.Resize(fyne.NewSize(300, e.MinSize().Height+20))
	assert.Equal(t, float32(120), e.Size().Width)
	assert.Equal(t, float32(10), e.Position().Y)
}
