package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/philipparndt/gobox3d/pkg/analysis"
	"github.com/philipparndt/gobox3d/pkg/geometry"
)

// defaultPrecision matches Box3D.String so every command prints boxes alike
const defaultPrecision = 16

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

func printBox(w io.Writer, box geometry.Box3D, precision int) {
	fmt.Fprintf(w, "Box: %s\n", box.Format(precision))
	fmt.Fprintf(w, "  Null: %s\n", yesNo(box.IsNull()))
	fmt.Fprintf(w, "  Empty: %s\n", yesNo(box.IsEmpty()))
	fmt.Fprintf(w, "  2D: %s\n", yesNo(box.Is2D()))
	if box.IsNull() {
		return
	}
	fmt.Fprintf(w, "  Center: %s\n", analysis.FormatPoint(box.Center()))
	fmt.Fprintf(w, "  Width (X): %s\n", analysis.FormatMeasurement(box.Width(), ""))
	fmt.Fprintf(w, "  Height (Y): %s\n", analysis.FormatMeasurement(box.Height(), ""))
	fmt.Fprintf(w, "  Depth (Z): %s\n", analysis.FormatMeasurement(box.Depth(), ""))
	fmt.Fprintf(w, "  Volume: %s\n", analysis.FormatMeasurement(box.Volume(), "cubic units"))
}

func printReport(w io.Writer, file string, report *analysis.ExtentReport, precision int) {
	fmt.Fprintln(w, "Extent")
	fmt.Fprintln(w, "====================")
	if report.Name != "" {
		fmt.Fprintf(w, "Name: %s\n", report.Name)
	}
	fmt.Fprintf(w, "File: %s\n", file)
	fmt.Fprintf(w, "Triangles: %d\n", report.TriangleCount)
	fmt.Fprintf(w, "Surface Area: %s\n\n", analysis.FormatMeasurement(report.SurfaceArea, "square units"))
	printBox(w, report.Box, precision)
	fmt.Fprintln(w)
}

func printComparison(w io.Writer, c analysis.Comparison, precision int) {
	fmt.Fprintf(w, "Intersects: %s\n", yesNo(c.Intersects))
	fmt.Fprintf(w, "A contains B: %s\n", yesNo(c.AContainsB))
	fmt.Fprintf(w, "B contains A: %s\n", yesNo(c.BContainsA))
	if c.Intersects {
		fmt.Fprintf(w, "Intersection: %s\n", c.Intersection.Format(precision))
	}
	fmt.Fprintf(w, "Union: %s\n", c.Union.Format(precision))
}

func parseFloats(s string, want ...int) ([]float64, error) {
	parts := strings.Split(s, ",")
	ok := false
	for _, n := range want {
		if len(parts) == n {
			ok = true
		}
	}
	if !ok {
		return nil, fmt.Errorf("%q: expected %v comma-separated values, got %d", s, want, len(parts))
	}

	values := make([]float64, len(parts))
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, fmt.Errorf("%q: %w", s, err)
		}
		values[i] = v
	}
	return values, nil
}

// parsePoint reads "x,y" or "x,y,z"
func parsePoint(s string) (geometry.Point, error) {
	v, err := parseFloats(s, 2, 3)
	if err != nil {
		return geometry.Point{}, err
	}
	if len(v) == 2 {
		return geometry.NewPoint(v[0], v[1]), nil
	}
	return geometry.NewPointZ(v[0], v[1], v[2]), nil
}

// parseBounds reads "xmin,ymin,zmin,xmax,ymax,zmax"
func parseBounds(s string, opts ...geometry.BoxOption) (geometry.Box3D, error) {
	v, err := parseFloats(s, 6)
	if err != nil {
		return geometry.Box3D{}, err
	}
	return geometry.NewBox3DFromBounds(v[0], v[1], v[2], v[3], v[4], v[5], opts...), nil
}
