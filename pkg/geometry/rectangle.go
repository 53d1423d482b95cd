package geometry

import (
	"math"

	"github.com/paulmach/orb"
)

// Rectangle is a 2D axis-aligned extent
type Rectangle struct {
	XMin, YMin, XMax, YMax float64
}

// NewRectangle creates a rectangle, swapping bounds so that min <= max
func NewRectangle(xmin, ymin, xmax, ymax float64) Rectangle {
	r := Rectangle{XMin: xmin, YMin: ymin, XMax: xmax, YMax: ymax}
	r.XMin, r.XMax = ordered(r.XMin, r.XMax)
	r.YMin, r.YMax = ordered(r.YMin, r.YMax)
	return r
}

// NullRectangle returns a rectangle with no extent assigned
func NullRectangle() Rectangle {
	return Rectangle{
		XMin: math.MaxFloat64,
		YMin: math.MaxFloat64,
		XMax: -math.MaxFloat64,
		YMax: -math.MaxFloat64,
	}
}

// RectangleFromBound converts an orb bound
func RectangleFromBound(b orb.Bound) Rectangle {
	return Rectangle{XMin: b.Min[0], YMin: b.Min[1], XMax: b.Max[0], YMax: b.Max[1]}
}

// IsNull reports whether the rectangle is the null sentinel or entirely NaN
func (r Rectangle) IsNull() bool {
	allNaN := math.IsNaN(r.XMin) && math.IsNaN(r.YMin) && math.IsNaN(r.XMax) && math.IsNaN(r.YMax)
	return allNaN || r == NullRectangle()
}

// IsEmpty reports whether the rectangle is null or has no area
func (r Rectangle) IsEmpty() bool {
	return r.IsNull() || r.XMax <= r.XMin || r.YMax <= r.YMin
}

// Width returns the x extent
func (r Rectangle) Width() float64 {
	return r.XMax - r.XMin
}

// Height returns the y extent
func (r Rectangle) Height() float64 {
	return r.YMax - r.YMin
}

// Bound converts the rectangle to an orb bound
func (r Rectangle) Bound() orb.Bound {
	return orb.Bound{
		Min: orb.Point{r.XMin, r.YMin},
		Max: orb.Point{r.XMax, r.YMax},
	}
}

// ordered returns a and b so that the first is not greater than the second.
// NaN never compares greater, so a pair with NaN comes back as given.
func ordered(a, b float64) (float64, float64) {
	if a > b {
		return b, a
	}
	return a, b
}
