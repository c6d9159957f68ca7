package export_test

import (
	"bytes"
	"context"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/roffe/plotpad/pkg/export"
	"github.com/roffe/plotpad/pkg/graph"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testModel() *graph.Model {
	return graph.New(
		graph.WithFunc(func(x float64) float64 { return x / 2 }),
		graph.WithPoints(graph.Pt(10, 10), graph.Pt(20, 30)),
	)
}

func TestFormatFromPath(t *testing.T) {
	tests := []struct {
		path    string
		want    string
		wantErr bool
	}{
		{path: "out.png", want: "png"},
		{path: "/tmp/OUT.SVG", want: "svg"},
		{path: "graph.pdf", want: "pdf"},
		{path: "graph.jpg", wantErr: true},
		{path: "graph", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, err := export.FormatFromPath(tt.path)
			if tt.wantErr {
				assert.ErrorIs(t, err, export.ErrUnknownFormat)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestWritePNG(t *testing.T) {
	rec := export.Render(testModel(), 60, 40, export.DefaultOptions)
	var buf bytes.Buffer
	require.NoError(t, export.Write(rec, "png", &buf, export.DefaultOptions))
	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, 60, img.Bounds().Dx())
	assert.Equal(t, 40, img.Bounds().Dy())
}

func TestWriteUnknown(t *testing.T) {
	rec := export.Render(testModel(), 10, 10, export.DefaultOptions)
	assert.ErrorIs(t, export.Write(rec, "gif", &bytes.Buffer{}, export.DefaultOptions), export.ErrUnknownFormat)
}

func TestFiles(t *testing.T) {
	dir := t.TempDir()
	paths := []string{
		filepath.Join(dir, "a.png"),
		filepath.Join(dir, "a.svg"),
		filepath.Join(dir, "a.pdf"),
	}
	rec := export.Render(testModel(), 50, 50, export.DefaultOptions)
	require.NoError(t, export.Files(context.Background(), rec, export.DefaultOptions, paths...))
	for _, p := range paths {
		st, err := os.Stat(p)
		require.NoError(t, err)
		assert.Positive(t, st.Size(), p)
	}
}

func TestFilesRejectsBeforeWriting(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "ok.png")
	rec := export.Render(testModel(), 10, 10, export.DefaultOptions)
	err := export.Files(context.Background(), rec, export.DefaultOptions, good, filepath.Join(dir, "bad.bmp"))
	assert.ErrorIs(t, err, export.ErrUnknownFormat)
	_, statErr := os.Stat(good)
	assert.True(t, os.IsNotExist(statErr))
}

func TestCSVAndParsePoint(t *testing.T) {
	pts := []graph.Point{{10, 20}, {1.5, -3}}
	assert.Equal(t, "10,20\n1.5,-3\n", export.CSV(pts))

	p, err := export.ParsePoint(" 1.5 , -3 ")
	require.NoError(t, err)
	assert.Equal(t, graph.Pt(1.5, -3), p)

	for _, bad := range []string{"1", "a,2", "1,b"} {
		_, err := export.ParsePoint(bad)
		assert.Error(t, err, bad)
	}
}
