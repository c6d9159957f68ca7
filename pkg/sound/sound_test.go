package sound

import (
	"encoding/binary"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTickLength(t *testing.T) {
	pcm := Tick(1000, 10*time.Millisecond, 1)
	assert.Len(t, pcm, 441*ChannelCount*2)
	assert.Empty(t, Tick(1000, 0, 1))
}

func TestTickStereoAndBounded(t *testing.T) {
	pcm := Tick(1800, 25*time.Millisecond, 0.3)
	limit := int16(0.3*math.MaxInt16) + 1
	for i := 0; i < len(pcm); i += 4 {
		l := int16(binary.LittleEndian.Uint16(pcm[i:]))
		r := int16(binary.LittleEndian.Uint16(pcm[i+2:]))
		assert.Equal(t, l, r)
		assert.LessOrEqual(t, l, limit)
		assert.GreaterOrEqual(t, l, -limit)
	}
}

func TestTickDecays(t *testing.T) {
	pcm := Tick(1000, 20*time.Millisecond, 1)
	peak := func(from, to int) int16 {
		var m int16
		for i := from; i < to; i += 4 {
			v := int16(binary.LittleEndian.Uint16(pcm[i:]))
			if v < 0 {
				v = -v
			}
			m = max(m, v)
		}
		return m
	}
	q := len(pcm) / 4 &^ 3
	assert.Greater(t, peak(0, q), peak(3*q, 4*q))
}
