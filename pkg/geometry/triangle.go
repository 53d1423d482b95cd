package geometry

import "github.com/go-gl/mathgl/mgl64"

// Triangle represents an STL facet
type Triangle struct {
	Normal     mgl64.Vec3
	V1, V2, V3 mgl64.Vec3
}

// NewTriangle creates a new triangle
func NewTriangle(normal, v1, v2, v3 mgl64.Vec3) Triangle {
	return Triangle{Normal: normal, V1: v1, V2: v2, V3: v3}
}

// Area returns the surface area of the triangle
func (t Triangle) Area() float64 {
	return t.V2.Sub(t.V1).Cross(t.V3.Sub(t.V1)).Len() / 2.0
}

// EdgeLengths returns the lengths of V1-V2, V2-V3 and V3-V1
func (t Triangle) EdgeLengths() [3]float64 {
	return [3]float64{
		t.V1.Sub(t.V2).Len(),
		t.V2.Sub(t.V3).Len(),
		t.V3.Sub(t.V1).Len(),
	}
}

// Perimeter returns the sum of the edge lengths
func (t Triangle) Perimeter() float64 {
	l := t.EdgeLengths()
	return l[0] + l[1] + l[2]
}

// Center returns the centroid
func (t Triangle) Center() mgl64.Vec3 {
	return t.V1.Add(t.V2).Add(t.V3).Mul(1.0 / 3.0)
}

// Bounds returns the box spanned by the three vertices
func (t Triangle) Bounds() Box3D {
	b := NewBox3D()
	for _, v := range [3]mgl64.Vec3{t.V1, t.V2, t.V3} {
		b.CombineWithPoint(v.X(), v.Y(), v.Z())
	}
	return b
}
