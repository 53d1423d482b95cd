package main

import (
	"fmt"
	"strconv"

	"github.com/philipparndt/gobox3d/pkg/analysis"
	"github.com/philipparndt/gobox3d/pkg/geometry"
	"github.com/spf13/cobra"
)

type boxOptions struct {
	noNormalize bool
	precision   int
	contains    []string
	intersect   string
	combine     string
	scale       float64
}

func newBoxCmd() *cobra.Command {
	var opts boxOptions

	cmd := &cobra.Command{
		Use:   "box [xmin] [ymin] [zmin] [xmax] [ymax] [zmax]",
		Short: "Evaluate a box given by its six bounds",
		Long: `Print the properties of a literal box and evaluate predicates against it.
Put "--" before the bounds when any of them is negative.`,
		Example: `  gobox box 5 6 7 11 13 15 --contains 6,7,8 --intersect 1,2,3,6,7,8
  gobox box --no-normalize -- 7 12 11 5 10 4`,
		Args: cobra.ExactArgs(6),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBox(cmd, args, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.noNormalize, "no-normalize", false, "Keep inverted bounds as given")
	cmd.Flags().IntVarP(&opts.precision, "precision", "p", defaultPrecision, "Fraction digits (negative picks automatically)")
	cmd.Flags().StringArrayVar(&opts.contains, "contains", nil, "Test containment of a point x,y[,z] (repeatable)")
	cmd.Flags().StringVar(&opts.intersect, "intersect", "", "Intersect with another box xmin,ymin,zmin,xmax,ymax,zmax")
	cmd.Flags().StringVar(&opts.combine, "combine", "", "Combine with another box xmin,ymin,zmin,xmax,ymax,zmax")
	cmd.Flags().Float64Var(&opts.scale, "scale", 1.0, "Scale the box around its center before evaluating")

	return cmd
}

func runBox(cmd *cobra.Command, args []string, opts boxOptions) error {
	var bounds [6]float64
	for i, arg := range args {
		v, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			return fmt.Errorf("invalid bound %q: %w", arg, err)
		}
		bounds[i] = v
	}

	var boxOpts []geometry.BoxOption
	if opts.noNormalize {
		boxOpts = append(boxOpts, geometry.Unnormalized())
	}
	box := geometry.NewBox3DFromBounds(bounds[0], bounds[1], bounds[2], bounds[3], bounds[4], bounds[5], boxOpts...)
	if opts.scale != 1 {
		box.Scale(opts.scale)
	}

	out := cmd.OutOrStdout()
	printBox(out, box, opts.precision)

	for _, c := range opts.contains {
		p, err := parsePoint(c)
		if err != nil {
			return fmt.Errorf("invalid --contains point: %w", err)
		}
		fmt.Fprintf(out, "Contains %s: %s\n", analysis.FormatPoint(p), yesNo(box.ContainsPoint(p)))
	}

	if opts.intersect != "" {
		other, err := parseBounds(opts.intersect, boxOpts...)
		if err != nil {
			return fmt.Errorf("invalid --intersect box: %w", err)
		}
		fmt.Fprintln(out)
		printComparison(out, analysis.Compare(box, other), opts.precision)
	}

	if opts.combine != "" {
		other, err := parseBounds(opts.combine, boxOpts...)
		if err != nil {
			return fmt.Errorf("invalid --combine box: %w", err)
		}
		combined := box
		combined.CombineWith(other)
		fmt.Fprintf(out, "Combined: %s\n", combined.Format(opts.precision))
	}

	return nil
}
