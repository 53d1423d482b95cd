package main

import (
	"fmt"

	"github.com/philipparndt/gobox3d/internal/loader"
	"github.com/philipparndt/gobox3d/pkg/analysis"
	"github.com/spf13/cobra"
)

func newCompareCmd() *cobra.Command {
	var precision int

	cmd := &cobra.Command{
		Use:   "compare [file-a] [file-b]",
		Short: "Relate the bounding boxes of two models",
		Long:  "Report whether the extents of two models intersect or contain each other, with their intersection and union.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loader.Load(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			b, err := loader.Load(cmd.Context(), args[1])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			boxA, boxB := a.Extent(), b.Extent()

			fmt.Fprintln(out, "Extent Comparison")
			fmt.Fprintln(out, "====================")
			fmt.Fprintf(out, "A: %s\n   %s\n", args[0], boxA.Format(precision))
			fmt.Fprintf(out, "B: %s\n   %s\n\n", args[1], boxB.Format(precision))
			printComparison(out, analysis.Compare(boxA, boxB), precision)
			return nil
		},
	}

	cmd.Flags().IntVarP(&precision, "precision", "p", defaultPrecision, "Fraction digits (negative picks automatically)")
	return cmd
}
