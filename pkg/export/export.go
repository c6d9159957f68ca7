// Package export writes a rendered graph to image and vector files.
package export

import (
	"context"
	"errors"
	"fmt"
	"image/color"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/roffe/plotpad/pkg/graph"
	"github.com/roffe/plotpad/pkg/render"
	"github.com/roffe/plotpad/pkg/render/ggbackend"
	"github.com/roffe/plotpad/pkg/render/vgbackend"
	"golang.org/x/sync/errgroup"
)

var ErrUnknownFormat = errors.New("unknown export format")

var Formats = []string{"png", "svg", "pdf"}

type Options struct {
	// Background fills raster output, nil keeps it transparent.
	Background color.Color
	LineWidth  float64
}

var DefaultOptions = Options{
	Background: color.White,
	LineWidth:  1,
}

// Render records m on a w by h surface.
func Render(m *graph.Model, w, h int, opts Options) *render.Recording {
	return render.Record(render.NewRenderer(render.WithLineWidth(opts.LineWidth)), m, w, h)
}

// FormatFromPath returns the format for the file extension of path.
func FormatFromPath(path string) (string, error) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	for _, f := range Formats {
		if f == ext {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, filepath.Ext(path))
}

// Write plays rec back into format and writes the result to out.
func Write(rec *render.Recording, format string, out io.Writer, opts Options) error {
	w, h := rec.Width(), rec.Height()
	switch format {
	case "png":
		c := ggbackend.New(w, h, opts.Background)
		defer c.Close()
		rec.Playback(c)
		return c.EncodePNG(out)
	case "svg", "pdf":
		var c *vgbackend.Canvas
		if format == "svg" {
			c = vgbackend.NewSVG(w, h)
		} else {
			c = vgbackend.NewPDF(w, h)
		}
		rec.Playback(c)
		_, err := c.WriteTo(out)
		return err
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

// Files writes rec to every path concurrently, the format is taken from
// the extension. All formats are checked before anything is written.
func Files(ctx context.Context, rec *render.Recording, opts Options, paths ...string) error {
	formats := make([]string, len(paths))
	for i, p := range paths {
		f, err := FormatFromPath(p)
		if err != nil {
			return err
		}
		formats[i] = f
	}
	g, ctx := errgroup.WithContext(ctx)
	for i, p := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			return writeFile(rec, formats[i], p, opts)
		})
	}
	return g.Wait()
}

func writeFile(rec *render.Recording, format, path string, opts Options) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("export: %w", err)
	}
	if err := Write(rec, format, f, opts); err != nil {
		f.Close()
		return fmt.Errorf("export %s: %w", path, err)
	}
	return f.Close()
}

// CSV formats points as "x,y" lines.
func CSV(points []graph.Point) string {
	var sb strings.Builder
	for _, p := range points {
		sb.WriteString(strconv.FormatFloat(p.X, 'f', -1, 64))
		sb.WriteByte(',')
		sb.WriteString(strconv.FormatFloat(p.Y, 'f', -1, 64))
		sb.WriteByte('\n')
	}
	return sb.String()
}

// ParsePoint parses "x,y".
func ParsePoint(s string) (graph.Point, error) {
	xs, ys, ok := strings.Cut(strings.TrimSpace(s), ",")
	if !ok {
		return graph.Point{}, fmt.Errorf("invalid point %q: want x,y", s)
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(xs), 64)
	if err != nil {
		return graph.Point{}, fmt.Errorf("invalid point %q: %w", s, err)
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(ys), 64)
	if err != nil {
		return graph.Point{}, fmt.Errorf("invalid point %q: %w", s, err)
	}
	return graph.Pt(x, y), nil
}
