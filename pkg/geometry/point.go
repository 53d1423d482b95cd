package geometry

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Point represents a 2D or 3D position. A point without z carries NaN in Z.
type Point struct {
	X, Y, Z float64
}

// NewPoint creates a 2D point
func NewPoint(x, y float64) Point {
	return Point{X: x, Y: y, Z: math.NaN()}
}

// NewPointZ creates a 3D point
func NewPointZ(x, y, z float64) Point {
	return Point{X: x, Y: y, Z: z}
}

// PointFromVec3 creates a 3D point from a mathgl vector
func PointFromVec3(v mgl64.Vec3) Point {
	return Point{X: v.X(), Y: v.Y(), Z: v.Z()}
}

// HasZ reports whether the point carries a z value
func (p Point) HasZ() bool {
	return !math.IsNaN(p.Z)
}

// Vec3 returns the point as a mathgl vector. A missing z becomes 0.
func (p Point) Vec3() mgl64.Vec3 {
	z := p.Z
	if !p.HasZ() {
		z = 0
	}
	return mgl64.Vec3{p.X, p.Y, z}
}
