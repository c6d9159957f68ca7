package settings

import (
	"testing"

	"fyne.io/fyne/v2/test"
	"github.com/roffe/plotpad/pkg/settings"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadsPreferences(t *testing.T) {
	a := test.NewTempApp(t)
	s := settings.New(a.Preferences())
	s.SetClickSound(true)
	s.SetAntialias(false)
	s.SetLineWidth(2)
	s.SetLastExportDir("/tmp/plots")

	sw := New(&Config{Settings: s})
	assert.True(t, sw.clickSound.Checked)
	assert.False(t, sw.antialias.Checked)
	assert.Equal(t, 2.0, sw.lineWidth.Value)
	assert.Equal(t, "2.0", sw.lineWidthValue.Text)
	assert.Equal(t, "/tmp/plots", sw.exportDir.Text)
}

func TestChecksStoreAndNotify(t *testing.T) {
	a := test.NewTempApp(t)
	s := settings.New(a.Preferences())

	var aa, dbg []bool
	sw := New(&Config{
		Settings:    s,
		OnAntialias: func(b bool) { aa = append(aa, b) },
		OnDebugLog:  func(b bool) { dbg = append(dbg, b) },
	})
	aa, dbg = nil, nil

	test.Tap(sw.antialias)
	test.Tap(sw.debugLog)
	test.Tap(sw.clickSound)

	assert.False(t, s.Antialias())
	assert.True(t, s.DebugLog())
	assert.True(t, s.ClickSound())
	assert.Equal(t, []bool{false}, aa)
	assert.Equal(t, []bool{true}, dbg)
}

func TestPositiveFloatValidator(t *testing.T) {
	v, err := PositiveFloatValidator(" 2,5 ")
	require.NoError(t, err)
	assert.Equal(t, 2.5, v)

	v, err = PositiveFloatValidator("7.")
	require.NoError(t, err)
	assert.Equal(t, 7.0, v)

	for _, bad := range []string{"", "abc", "0", "-1"} {
		_, err := PositiveFloatValidator(bad)
		assert.Error(t, err, bad)
	}
}
