package debug_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/roffe/plotpad/pkg/debug"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogToFile(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "trace.log")
	debug.Log("dropped while disabled")
	require.NoError(t, debug.Enable(fn))
	assert.True(t, debug.Enabled())
	debug.Log("tap (1,2)")
	debug.Close()
	assert.False(t, debug.Enabled())

	b, err := os.ReadFile(fn)
	require.NoError(t, err)
	out := string(b)
	assert.True(t, strings.Contains(out, "debug_test.go"))
	assert.True(t, strings.Contains(out, "tap (1,2)"))
	assert.False(t, strings.Contains(out, "dropped"))
}

func TestDoRecovers(t *testing.T) {
	assert.NotPanics(t, func() {
		debug.Do(func() { panic("boom") })
	})
	ran := false
	debug.Do(func() { ran = true })
	assert.True(t, ran)
}
