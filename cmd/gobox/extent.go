package main

import (
	"encoding/json"
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/paulmach/orb/geojson"
	"github.com/philipparndt/gobox3d/internal/loader"
	"github.com/philipparndt/gobox3d/pkg/analysis"
	"github.com/philipparndt/gobox3d/pkg/geometry"
	"github.com/spf13/cobra"
)

// extentOptions are the box adjustments applied before reporting
type extentOptions struct {
	precision int
	scale     float64
	grow      float64
	rotateZ   float64
	geoJSON   bool
}

func (o extentOptions) apply(box geometry.Box3D) geometry.Box3D {
	if box.IsNull() {
		return box
	}
	if o.rotateZ != 0 {
		c := box.Center().Vec3()
		m := mgl64.Translate3D(c.X(), c.Y(), c.Z()).
			Mul4(mgl64.HomogRotate3DZ(mgl64.DegToRad(o.rotateZ))).
			Mul4(mgl64.Translate3D(-c.X(), -c.Y(), -c.Z()))
		box = box.Transform(m)
	}
	if o.scale != 1 {
		box.Scale(o.scale)
	}
	if o.grow != 0 {
		box.Grow(o.grow)
	}
	return box
}

func newExtentCmd() *cobra.Command {
	var opts extentOptions

	cmd := &cobra.Command{
		Use:   "extent [file...]",
		Short: "Display the bounding box of STL or OpenSCAD models",
		Long: `Compute the axis-aligned bounding box of each model and print its bounds,
dimensions and volume. With several files the combined extent is printed last.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExtent(cmd, args, opts)
		},
	}

	cmd.Flags().IntVarP(&opts.precision, "precision", "p", defaultPrecision, "Fraction digits (negative picks automatically)")
	cmd.Flags().Float64Var(&opts.scale, "scale", 1.0, "Scale each box around its center")
	cmd.Flags().Float64Var(&opts.grow, "grow", 0.0, "Grow each box by this distance on every side")
	cmd.Flags().Float64Var(&opts.rotateZ, "rotate-z", 0.0, "Rotate each model about its center's Z axis (degrees) before boxing")
	cmd.Flags().BoolVar(&opts.geoJSON, "geojson", false, "Print the X/Y footprints as a GeoJSON FeatureCollection")

	return cmd
}

func runExtent(cmd *cobra.Command, args []string, opts extentOptions) error {
	out := cmd.OutOrStdout()

	reports := make([]*analysis.ExtentReport, 0, len(args))
	for _, file := range args {
		model, err := loader.Load(cmd.Context(), file)
		if err != nil {
			return err
		}
		report := analysis.AnalyzeModel(model)
		if box := opts.apply(report.Box); box != report.Box {
			report = analysis.NewExtentReport(report.Name, box, report.TriangleCount, report.SurfaceArea)
		}
		if report.Name == "" {
			report.Name = file
		}
		reports = append(reports, report)
	}

	if opts.geoJSON {
		return printFootprints(cmd, reports)
	}

	boxes := make([]geometry.Box3D, 0, len(reports))
	for i, report := range reports {
		printReport(out, args[i], report, opts.precision)
		boxes = append(boxes, report.Box)
	}
	if len(boxes) > 1 {
		fmt.Fprintln(out, "Combined")
		fmt.Fprintln(out, "====================")
		printBox(out, analysis.Union(boxes...), opts.precision)
	}
	return nil
}

func printFootprints(cmd *cobra.Command, reports []*analysis.ExtentReport) error {
	fc := geojson.NewFeatureCollection()
	for _, report := range reports {
		feature, err := analysis.Footprint(report.Box)
		if err != nil {
			return fmt.Errorf("%s: %w", report.Name, err)
		}
		feature.Properties["name"] = report.Name
		fc.Append(feature)
	}

	data, err := json.MarshalIndent(fc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode GeoJSON: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return nil
}
