package analysis

import (
	"math"

	"github.com/paulmach/orb/geojson"
	"github.com/philipparndt/gobox3d/pkg/geometry"
)

// Footprint exports the x/y extent of a box as a GeoJSON polygon feature.
// The z range is attached as zmin/zmax properties when the box has one.
func Footprint(box geometry.Box3D) (*geojson.Feature, error) {
	if box.IsNull() {
		return nil, ErrNullExtent
	}

	bound := box.ToRectangle().Bound()
	feature := geojson.NewFeature(bound.ToPolygon())
	feature.BBox = geojson.NewBBox(bound)

	if !math.IsNaN(box.ZMinimum()) && !math.IsNaN(box.ZMaximum()) {
		feature.Properties["zmin"] = box.ZMinimum()
		feature.Properties["zmax"] = box.ZMaximum()
	}
	return feature, nil
}
