package main

import (
	"log"

	"github.com/roffe/plotpad/pkg/debug"
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	var debugLog bool
	rootCmd := &cobra.Command{
		Use:           "plotpad",
		Short:         "Render point and curve plots without a window",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if debugLog {
				if err := debug.Enable(debug.DefaultFile); err != nil {
					log.Printf("debug log: %v", err)
				}
			}
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			debug.Close()
		},
	}
	rootCmd.PersistentFlags().BoolVar(&debugLog, "debug", false, "write "+debug.DefaultFile)
	rootCmd.AddCommand(newExportCmd(), newFunctionsCmd(), newSampleCmd())
	return rootCmd
}
