package main

import (
	"errors"
	"fmt"
	"image/color"
	"strings"

	"github.com/roffe/plotpad/pkg/colors"
	"github.com/roffe/plotpad/pkg/debug"
	"github.com/roffe/plotpad/pkg/export"
	"github.com/roffe/plotpad/pkg/functions"
	"github.com/roffe/plotpad/pkg/graph"
	"github.com/spf13/cobra"
)

type exportFlags struct {
	function   string
	width      int
	height     int
	points     []string
	radius     float64
	pointColor string
	curveColor string
	background string
	lineWidth  float64
	outputs    []string
}

func newExportCmd() *cobra.Command {
	f := &exportFlags{}
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the graph to png, svg or pdf files",
		Example: `  plotpad export --func sine --width 400 --height 300 --point 10,20 -o out.png -o out.svg`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(f.outputs) == 0 {
				return errors.New("at least one -o output is required")
			}
			m, err := f.model()
			if err != nil {
				return err
			}
			opts := export.DefaultOptions
			opts.LineWidth = f.lineWidth
			if opts.Background, err = parseBackground(f.background); err != nil {
				return err
			}
			rec := export.Render(m, f.width, f.height, opts)
			if err := export.Files(cmd.Context(), rec, opts, f.outputs...); err != nil {
				return err
			}
			for _, o := range f.outputs {
				fmt.Fprintln(cmd.OutOrStdout(), o)
			}
			debug.Log(fmt.Sprintf("export %d points to %v", m.Len(), f.outputs))
			return nil
		},
	}
	fl := cmd.Flags()
	fl.StringVar(&f.function, "func", functions.None, "function to draw, see plotpad functions")
	fl.IntVar(&f.width, "width", 400, "surface width")
	fl.IntVar(&f.height, "height", 300, "surface height")
	fl.StringArrayVar(&f.points, "point", nil, "point as x,y (repeatable)")
	fl.Float64Var(&f.radius, "radius", graph.DefaultRadius, "point radius")
	fl.StringVar(&f.pointColor, "point-color", colors.Hex(graph.DefaultPointColor), "point color as hex or a name")
	fl.StringVar(&f.curveColor, "curve-color", colors.Hex(graph.DefaultCurveColor), "curve color as hex or a name")
	fl.StringVar(&f.background, "background", "white", "png background color, none for transparent")
	fl.Float64Var(&f.lineWidth, "line-width", 1, "stroke width")
	fl.StringArrayVarP(&f.outputs, "output", "o", nil, "output file, format from extension (repeatable)")
	return cmd
}

func (f *exportFlags) model() (*graph.Model, error) {
	if f.width <= 0 || f.height <= 0 {
		return nil, fmt.Errorf("invalid size %dx%d", f.width, f.height)
	}
	fn, err := functions.Lookup(f.function, functions.Fixed(f.width, f.height))
	if err != nil {
		return nil, err
	}
	m := graph.New(graph.WithFunc(fn))
	if err := m.SetRadius(f.radius); err != nil {
		return nil, fmt.Errorf("--radius %v: %w", f.radius, err)
	}
	pc, err := colors.Parse(f.pointColor)
	if err != nil {
		return nil, fmt.Errorf("--point-color: %w", err)
	}
	cc, err := colors.Parse(f.curveColor)
	if err != nil {
		return nil, fmt.Errorf("--curve-color: %w", err)
	}
	m.SetPointColor(pc)
	m.SetCurveColor(cc)
	for _, s := range f.points {
		p, err := export.ParsePoint(s)
		if err != nil {
			return nil, err
		}
		m.AddPoint(p)
	}
	return m, nil
}

func parseBackground(s string) (color.Color, error) {
	if strings.EqualFold(s, "none") || s == "" {
		return nil, nil
	}
	c, err := colors.Parse(s)
	if err != nil {
		return nil, fmt.Errorf("--background: %w", err)
	}
	return c, nil
}
