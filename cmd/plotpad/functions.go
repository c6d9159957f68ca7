package main

import (
	"fmt"

	"github.com/roffe/plotpad/pkg/export"
	"github.com/roffe/plotpad/pkg/functions"
	"github.com/roffe/plotpad/pkg/render"
	"github.com/spf13/cobra"
)

func newFunctionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "functions",
		Short: "List the function names accepted by --func",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range functions.Names() {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
		},
	}
}

// newSampleCmd prints the curve vertices the renderer would draw.
func newSampleCmd() *cobra.Command {
	var width, height int
	cmd := &cobra.Command{
		Use:   "sample <function>",
		Short: "Print the sampled curve as x,y lines",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fn, err := functions.Lookup(args[0], functions.Fixed(width, height))
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), export.CSV(render.SampleCurve(fn, width, height)))
			return err
		},
	}
	cmd.Flags().IntVar(&width, "width", 400, "surface width")
	cmd.Flags().IntVar(&height, "height", 300, "surface height")
	return cmd
}
