package analysis

import (
	"errors"
	"fmt"

	"github.com/philipparndt/gobox3d/pkg/geometry"
	"github.com/philipparndt/gobox3d/pkg/stl"
)

// ErrNullExtent is returned when a box with no assigned extent is exported
var ErrNullExtent = errors.New("extent is null")

// ExtentReport summarizes the spatial extent of a model
type ExtentReport struct {
	Name          string
	Box           geometry.Box3D
	Footprint     geometry.Rectangle
	Center        geometry.Point
	Width         float64
	Height        float64
	Depth         float64
	Volume        float64
	Flat          bool
	TriangleCount int
	SurfaceArea   float64
}

// AnalyzeModel computes the extent report of a model
func AnalyzeModel(model *stl.Model) *ExtentReport {
	return NewExtentReport(model.Name, model.Extent(), model.TriangleCount(), model.SurfaceArea())
}

// NewExtentReport builds a report around an existing box
func NewExtentReport(name string, box geometry.Box3D, triangles int, area float64) *ExtentReport {
	return &ExtentReport{
		Name:          name,
		Box:           box,
		Footprint:     box.ToRectangle(),
		Center:        box.Center(),
		Width:         box.Width(),
		Height:        box.Height(),
		Depth:         box.Depth(),
		Volume:        box.Volume(),
		Flat:          box.Is2D(),
		TriangleCount: triangles,
		SurfaceArea:   area,
	}
}

// Comparison describes the spatial relation between two boxes
type Comparison struct {
	Intersects bool
	AContainsB bool
	BContainsA bool
	// Intersection is only meaningful when Intersects is true
	Intersection geometry.Box3D
	Union        geometry.Box3D
}

// Compare relates two boxes
func Compare(a, b geometry.Box3D) Comparison {
	c := Comparison{
		Intersects: a.Intersects(b),
		AContainsB: a.Contains(b),
		BContainsA: b.Contains(a),
		Union:      Union(a, b),
	}
	if c.Intersects {
		c.Intersection = a.Intersect(b)
	} else {
		c.Intersection = geometry.NewBox3D()
	}
	return c
}

// Union returns the smallest box containing all boxes, or a null box
func Union(boxes ...geometry.Box3D) geometry.Box3D {
	union := geometry.NewBox3D()
	for _, b := range boxes {
		union.CombineWith(b)
	}
	return union
}

// FormatMeasurement formats a measurement with appropriate units
func FormatMeasurement(value float64, unit string) string {
	if unit == "" {
		unit = "units"
	}
	return fmt.Sprintf("%.6f %s", value, unit)
}

// FormatPoint formats a point, omitting z when it has none
func FormatPoint(p geometry.Point) string {
	if !p.HasZ() {
		return fmt.Sprintf("(%.6f, %.6f)", p.X, p.Y)
	}
	return fmt.Sprintf("(%.6f, %.6f, %.6f)", p.X, p.Y, p.Z)
}
