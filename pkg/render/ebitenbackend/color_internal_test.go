package ebitenbackend

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestColorScale(t *testing.T) {
	r, g, b, a := colorScale(color.RGBA{255, 0, 0, 255})
	assert.Equal(t, [4]float32{1, 0, 0, 1}, [4]float32{r, g, b, a})

	r, _, _, a = colorScale(color.NRGBA{255, 0, 0, 0x80})
	assert.InDelta(t, 0.5, a, 0.01)
	assert.InDelta(t, a, r, 0.001, "components are premultiplied")
}
