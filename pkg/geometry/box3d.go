package geometry

import (
	"math"
	"strconv"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
)

// defaultPrecision is the number of fraction digits String uses
const defaultPrecision = 16

// Box3D represents an axis-aligned bounding box over six scalar bounds.
//
// No ordering between minimum and maximum is enforced. A box with min > max
// on some axis is a legal value; Normalize reorders the bounds on request.
// The zero value is the degenerate box at the origin, NewBox3D returns the
// null box.
type Box3D struct {
	xMin, yMin, zMin float64
	xMax, yMax, zMax float64
}

// BoxOption customizes box construction
type BoxOption func(*boxConfig)

type boxConfig struct {
	normalize  bool
	zMin, zMax float64
}

func newBoxConfig(opts []BoxOption) boxConfig {
	cfg := boxConfig{normalize: true, zMin: math.NaN(), zMax: math.NaN()}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// Unnormalized keeps the bounds exactly as given, even when inverted
func Unnormalized() BoxOption {
	return func(c *boxConfig) {
		c.normalize = false
	}
}

// WithZRange sets the z bounds of a box built from a rectangle
func WithZRange(zmin, zmax float64) BoxOption {
	return func(c *boxConfig) {
		c.zMin = zmin
		c.zMax = zmax
	}
}

// NewBox3D creates a null box, ready to be grown with CombineWith
func NewBox3D() Box3D {
	var b Box3D
	b.SetMinimal()
	return b
}

// NewBox3DFromBounds creates a box from its six bounds
func NewBox3DFromBounds(xmin, ymin, zmin, xmax, ymax, zmax float64, opts ...BoxOption) Box3D {
	var b Box3D
	b.Set(xmin, ymin, zmin, xmax, ymax, zmax, opts...)
	return b
}

// NewBox3DFromPoints creates a box spanning two corner points.
// A point without z contributes 0.
func NewBox3DFromPoints(p1, p2 Point, opts ...BoxOption) Box3D {
	return NewBox3DFromBounds(p1.X, p1.Y, zOrZero(p1), p2.X, p2.Y, zOrZero(p2), opts...)
}

// NewBox3DFromRectangle creates a box from a 2D rectangle.
// The z bounds are NaN unless WithZRange is given.
func NewBox3DFromRectangle(r Rectangle, opts ...BoxOption) Box3D {
	cfg := newBoxConfig(opts)
	return NewBox3DFromBounds(r.XMin, r.YMin, cfg.zMin, r.XMax, r.YMax, cfg.zMax, opts...)
}

func zOrZero(p Point) float64 {
	if p.HasZ() {
		return p.Z
	}
	return 0
}

// Set replaces all six bounds, normalizing unless Unnormalized is given
func (b *Box3D) Set(xmin, ymin, zmin, xmax, ymax, zmax float64, opts ...BoxOption) {
	b.xMin, b.yMin, b.zMin = xmin, ymin, zmin
	b.xMax, b.yMax, b.zMax = xmax, ymax, zmax
	if newBoxConfig(opts).normalize {
		b.Normalize()
	}
}

func (b Box3D) XMinimum() float64 { return b.xMin }
func (b Box3D) YMinimum() float64 { return b.yMin }
func (b Box3D) ZMinimum() float64 { return b.zMin }
func (b Box3D) XMaximum() float64 { return b.xMax }
func (b Box3D) YMaximum() float64 { return b.yMax }
func (b Box3D) ZMaximum() float64 { return b.zMax }

func (b *Box3D) SetXMinimum(v float64) { b.xMin = v }
func (b *Box3D) SetYMinimum(v float64) { b.yMin = v }
func (b *Box3D) SetZMinimum(v float64) { b.zMin = v }
func (b *Box3D) SetXMaximum(v float64) { b.xMax = v }
func (b *Box3D) SetYMaximum(v float64) { b.yMax = v }
func (b *Box3D) SetZMaximum(v float64) { b.zMax = v }

// SetMinimal resets the box to the null sentinel: every minimum at the
// largest finite float64 and every maximum at its negation
func (b *Box3D) SetMinimal() {
	b.xMin, b.yMin, b.zMin = math.MaxFloat64, math.MaxFloat64, math.MaxFloat64
	b.xMax, b.yMax, b.zMax = -math.MaxFloat64, -math.MaxFloat64, -math.MaxFloat64
}

// Normalize swaps min and max on every axis where min > max
func (b *Box3D) Normalize() {
	b.xMin, b.xMax = ordered(b.xMin, b.xMax)
	b.yMin, b.yMax = ordered(b.yMin, b.yMax)
	b.zMin, b.zMax = ordered(b.zMin, b.zMax)
}

// IsNull reports whether no extent has been assigned: all six bounds are
// NaN or the box still holds the SetMinimal sentinel
func (b Box3D) IsNull() bool {
	allNaN := math.IsNaN(b.xMin) && math.IsNaN(b.yMin) && math.IsNaN(b.zMin) &&
		math.IsNaN(b.xMax) && math.IsNaN(b.yMax) && math.IsNaN(b.zMax)
	return allNaN || b == NewBox3D()
}

// IsEmpty reports whether the box is null or has no positive extent on some axis
func (b Box3D) IsEmpty() bool {
	return b.IsNull() || b.xMax <= b.xMin || b.yMax <= b.yMin || b.zMax <= b.zMin
}

// Width returns the x extent. It is negative for an inverted box.
func (b Box3D) Width() float64 {
	return b.xMax - b.xMin
}

// Height returns the y extent
func (b Box3D) Height() float64 {
	return b.yMax - b.yMin
}

// Depth returns the z extent
func (b Box3D) Depth() float64 {
	return b.zMax - b.zMin
}

// Volume returns width * height * depth
func (b Box3D) Volume() float64 {
	return b.Width() * b.Height() * b.Depth()
}

// Is2D reports whether the box has no positive z extent: flat, inverted,
// or without z bounds
func (b Box3D) Is2D() bool {
	return b.zMin == b.zMax || b.zMin > b.zMax || math.IsNaN(b.zMin) || math.IsNaN(b.zMax)
}

// Is3D is the negation of Is2D
func (b Box3D) Is3D() bool {
	return !b.Is2D()
}

// Center returns the geometric center of the box
func (b Box3D) Center() Point {
	return NewPointZ(
		(b.xMin+b.xMax)/2.0,
		(b.yMin+b.yMax)/2.0,
		(b.zMin+b.zMax)/2.0,
	)
}

// Intersects reports whether the boxes overlap on all three axes.
// Touching boundaries count as overlapping.
func (b Box3D) Intersects(other Box3D) bool {
	return b.xMin <= other.xMax && b.xMax >= other.xMin &&
		b.yMin <= other.yMax && b.yMax >= other.yMin &&
		b.zMin <= other.zMax && b.zMax >= other.zMin
}

// Intersect returns the per-axis overlap of the two boxes. Where the boxes
// are disjoint the result is inverted on that axis.
func (b Box3D) Intersect(other Box3D) Box3D {
	return Box3D{
		xMin: maxOf(b.xMin, other.xMin),
		yMin: maxOf(b.yMin, other.yMin),
		zMin: maxOf(b.zMin, other.zMin),
		xMax: minOf(b.xMax, other.xMax),
		yMax: minOf(b.yMax, other.yMax),
		zMax: minOf(b.zMax, other.zMax),
	}
}

// Contains reports whether other lies fully inside the box on all three axes
func (b Box3D) Contains(other Box3D) bool {
	return b.xMin <= other.xMin && b.xMax >= other.xMax &&
		b.yMin <= other.yMin && b.yMax >= other.yMax &&
		b.zMin <= other.zMin && b.zMax >= other.zMax
}

// ContainsPoint checks x and y, and z only when the point has one.
// A NaN z bound on the box never contains a 3D point.
func (b Box3D) ContainsPoint(p Point) bool {
	if p.X < b.xMin || p.X > b.xMax || p.Y < b.yMin || p.Y > b.yMax {
		return false
	}
	if !p.HasZ() {
		return true
	}
	return b.zMin <= p.Z && p.Z <= b.zMax
}

// CombineWith grows the box to the union of both boxes
func (b *Box3D) CombineWith(other Box3D) {
	b.xMin = minOf(b.xMin, other.xMin)
	b.yMin = minOf(b.yMin, other.yMin)
	b.zMin = minOf(b.zMin, other.zMin)
	b.xMax = maxOf(b.xMax, other.xMax)
	b.yMax = maxOf(b.yMax, other.yMax)
	b.zMax = maxOf(b.zMax, other.zMax)
}

// CombineWithPoint grows the box to include a point
func (b *Box3D) CombineWithPoint(x, y, z float64) {
	b.CombineWith(Box3D{xMin: x, yMin: y, zMin: z, xMax: x, yMax: y, zMax: z})
}

// Scale scales the box by factor around its own center
func (b *Box3D) Scale(factor float64) {
	b.ScaleAround(factor, b.Center())
}

// ScaleAround scales the box by factor around center. A center without z
// scales z around the box's own z center.
func (b *Box3D) ScaleAround(factor float64, center Point) {
	cz := center.Z
	if !center.HasZ() {
		cz = (b.zMin + b.zMax) / 2.0
	}
	b.xMin = center.X + (b.xMin-center.X)*factor
	b.xMax = center.X + (b.xMax-center.X)*factor
	b.yMin = center.Y + (b.yMin-center.Y)*factor
	b.yMax = center.Y + (b.yMax-center.Y)*factor
	b.zMin = cz + (b.zMin-cz)*factor
	b.zMax = cz + (b.zMax-cz)*factor
}

// Grow moves every minimum down and every maximum up by delta
func (b *Box3D) Grow(delta float64) {
	b.xMin -= delta
	b.yMin -= delta
	b.zMin -= delta
	b.xMax += delta
	b.yMax += delta
	b.zMax += delta
}

// DistanceTo returns the Euclidean distance from p to the box, 0 inside it.
// z is ignored for a 2D point or a box without z bounds.
func (b Box3D) DistanceTo(p Point) float64 {
	dx := maxOf(b.xMin-p.X, maxOf(0, p.X-b.xMax))
	dy := maxOf(b.yMin-p.Y, maxOf(0, p.Y-b.yMax))
	dz := 0.0
	if p.HasZ() && !math.IsNaN(b.zMin) && !math.IsNaN(b.zMax) {
		dz = maxOf(b.zMin-p.Z, maxOf(0, p.Z-b.zMax))
	}
	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}

// Transform returns the bounding box of the eight corners after applying m.
// NaN z bounds are transformed as 0. A null box stays null.
func (b Box3D) Transform(m mgl64.Mat4) Box3D {
	if b.IsNull() {
		return b
	}
	zLo, zHi := b.zMin, b.zMax
	if math.IsNaN(zLo) {
		zLo = 0
	}
	if math.IsNaN(zHi) {
		zHi = 0
	}

	out := NewBox3D()
	for _, x := range [2]float64{b.xMin, b.xMax} {
		for _, y := range [2]float64{b.yMin, b.yMax} {
			for _, z := range [2]float64{zLo, zHi} {
				v := mgl64.TransformCoordinate(mgl64.Vec3{x, y, z}, m)
				out.CombineWithPoint(v.X(), v.Y(), v.Z())
			}
		}
	}
	return out
}

// ToRectangle projects the box onto the x/y plane
func (b Box3D) ToRectangle() Rectangle {
	if b.IsNull() {
		return NullRectangle()
	}
	return Rectangle{XMin: b.xMin, YMin: b.yMin, XMax: b.xMax, YMax: b.yMax}
}

// Equals compares all six bounds exactly. NaN bounds never compare equal.
func (b Box3D) Equals(other Box3D) bool {
	return b == other
}

// String formats the box with 16 fraction digits
func (b Box3D) String() string {
	return b.Format(defaultPrecision)
}

// Format renders the box as "xmin,ymin,zmin : xmax,ymax,zmax" with a fixed
// number of fraction digits, or "Null" / "Empty". A negative precision picks
// enough digits to resolve the smaller of width and height.
func (b Box3D) Format(precision int) string {
	if b.IsNull() {
		return "Null"
	}
	if b.IsEmpty() {
		return "Empty"
	}
	if precision < 0 {
		precision = b.autoPrecision()
	}

	f := func(v float64) string {
		return strconv.FormatFloat(v, 'f', precision, 64)
	}
	var sb strings.Builder
	sb.WriteString(f(b.xMin) + "," + f(b.yMin) + "," + f(b.zMin))
	sb.WriteString(" : ")
	sb.WriteString(f(b.xMax) + "," + f(b.yMax) + "," + f(b.zMax))
	return sb.String()
}

func (b Box3D) autoPrecision() int {
	w, h := b.Width(), b.Height()
	if (w < 10 || h < 10) && w > 0 && h > 0 {
		p := int(math.Ceil(-math.Log10(math.Min(w, h)))) + 1
		if p > 20 {
			p = 20
		}
		return p
	}
	return 0
}

// minOf and maxOf return a when the comparison with b is false, so a NaN in
// b is skipped while a NaN in a is kept
func minOf(a, b float64) float64 {
	if b < a {
		return b
	}
	return a
}

func maxOf(a, b float64) float64 {
	if a < b {
		return b
	}
	return a
}
