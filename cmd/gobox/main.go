package main

import (
	"fmt"
	"os"

	"github.com/philipparndt/gobox3d/version"
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "gobox",
		Short: "Inspect and combine 3D bounding boxes",
		Long: `gobox computes axis-aligned bounding boxes of STL and OpenSCAD models
and evaluates box predicates (containment, intersection, union) on files or
on literal bounds.`,
		Version:       version.GetFullVersion(),
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	rootCmd.AddCommand(
		newExtentCmd(),
		newCompareCmd(),
		newBoxCmd(),
		newWatchCmd(),
		newCompletionCmd(),
	)
	return rootCmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
