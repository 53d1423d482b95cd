package geometry

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertBounds(t *testing.T, b Box3D, xmin, ymin, zmin, xmax, ymax, zmax float64) {
	t.Helper()
	assert.Equal(t, xmin, b.XMinimum(), "xMin")
	assert.Equal(t, ymin, b.YMinimum(), "yMin")
	assert.Equal(t, zmin, b.ZMinimum(), "zMin")
	assert.Equal(t, xmax, b.XMaximum(), "xMax")
	assert.Equal(t, ymax, b.YMaximum(), "yMax")
	assert.Equal(t, zmax, b.ZMaximum(), "zMax")
}

func TestBox3DFromBounds(t *testing.T) {
	t.Run("ordered", func(t *testing.T) {
		assertBounds(t, NewBox3DFromBounds(5, 6, 7, 10, 11, 12), 5, 6, 7, 10, 11, 12)
	})

	t.Run("normalized by default", func(t *testing.T) {
		assertBounds(t, NewBox3DFromBounds(7, 12, 11, 5, 10, 4), 5, 10, 4, 7, 12, 11)
	})

	t.Run("unnormalized", func(t *testing.T) {
		assertBounds(t, NewBox3DFromBounds(7, 12, 11, 5, 10, 4, Unnormalized()), 7, 12, 11, 5, 10, 4)
	})

	t.Run("NaN passes through normalization", func(t *testing.T) {
		b := NewBox3DFromBounds(7, 12, math.NaN(), 5, 10, 4)
		assert.Equal(t, 5.0, b.XMinimum())
		assert.Equal(t, 7.0, b.XMaximum())
		assert.True(t, math.IsNaN(b.ZMinimum()))
		assert.Equal(t, 4.0, b.ZMaximum())
	})
}

func TestBox3DFromPoints(t *testing.T) {
	assertBounds(t, NewBox3DFromPoints(NewPointZ(5, 6, 7), NewPointZ(10, 11, 12)), 5, 6, 7, 10, 11, 12)
	assertBounds(t, NewBox3DFromPoints(NewPointZ(10, 11, 12), NewPointZ(5, 6, 7)), 5, 6, 7, 10, 11, 12)
	assertBounds(t,
		NewBox3DFromPoints(NewPointZ(10, 11, 12), NewPointZ(5, 6, 7), Unnormalized()),
		10, 11, 12, 5, 6, 7)

	// points without z contribute 0
	assertBounds(t, NewBox3DFromPoints(NewPoint(1, 2), NewPointZ(3, 4, -5)), 1, 2, -5, 3, 4, 0)
}

func TestBox3DFromRectangle(t *testing.T) {
	rect := NewRectangle(5, 6, 11, 13)

	b := NewBox3DFromRectangle(rect)
	assert.Equal(t, 5.0, b.XMinimum())
	assert.Equal(t, 6.0, b.YMinimum())
	assert.Equal(t, 11.0, b.XMaximum())
	assert.Equal(t, 13.0, b.YMaximum())
	assert.True(t, math.IsNaN(b.ZMinimum()))
	assert.True(t, math.IsNaN(b.ZMaximum()))

	assertBounds(t, NewBox3DFromRectangle(rect, WithZRange(-7, 9)), 5, 6, -7, 11, 13, 9)
	assertBounds(t, NewBox3DFromRectangle(rect, WithZRange(12, 5)), 5, 6, 5, 11, 13, 12)
	assertBounds(t, NewBox3DFromRectangle(rect, WithZRange(12, 5), Unnormalized()), 5, 6, 12, 11, 13, 5)
}

func TestBox3DSetters(t *testing.T) {
	b := NewBox3DFromBounds(5, 6, 7, 10, 11, 12)

	b.SetXMinimum(35)
	b.SetYMinimum(36)
	b.SetZMinimum(37)
	b.SetXMaximum(40)
	b.SetYMaximum(41)
	b.SetZMaximum(42)
	assertBounds(t, b, 35, 36, 37, 40, 41, 42)

	// no re-normalization
	b.SetXMinimum(50)
	assert.Equal(t, 50.0, b.XMinimum())
	assert.Equal(t, 40.0, b.XMaximum())
}

func TestBox3DSetMinimal(t *testing.T) {
	b := NewBox3DFromBounds(5, 6, 7, 10, 11, 12)
	b.SetMinimal()
	assertBounds(t, b,
		math.MaxFloat64, math.MaxFloat64, math.MaxFloat64,
		-math.MaxFloat64, -math.MaxFloat64, -math.MaxFloat64)
	assert.Equal(t, NewBox3D(), b)
}

func TestBox3DNormalize(t *testing.T) {
	b := NewBox3D()
	b.SetXMinimum(10)
	b.SetYMinimum(11)
	b.SetZMinimum(12)
	b.SetXMaximum(5)
	b.SetYMaximum(6)
	b.SetZMaximum(7)

	b.Normalize()
	assertBounds(t, b, 5, 6, 7, 10, 11, 12)

	once := b
	b.Normalize()
	assert.Equal(t, once, b)
}

func TestBox3DDimensions(t *testing.T) {
	b := NewBox3DFromBounds(5, 6, 7, 11, 13, 15)
	assert.Equal(t, 6.0, b.Width())
	assert.Equal(t, 7.0, b.Height())
	assert.Equal(t, 8.0, b.Depth())
	assert.Equal(t, 336.0, b.Volume())

	inverted := NewBox3DFromBounds(11, 6, 7, 5, 13, 15, Unnormalized())
	assert.Equal(t, -6.0, inverted.Width())
}

func TestBox3DIntersect(t *testing.T) {
	b := NewBox3DFromBounds(5, 6, 7, 11, 13, 15)

	assertBounds(t, b.Intersect(NewBox3DFromBounds(7, 8, 9, 10, 11, 12)), 7, 8, 9, 10, 11, 12)
	assertBounds(t, b.Intersect(NewBox3DFromBounds(0, 1, 2, 100, 111, 112)), 5, 6, 7, 11, 13, 15)
	assertBounds(t, b.Intersect(NewBox3DFromBounds(1, 2, 3, 6, 7, 8)), 5, 6, 7, 6, 7, 8)

	// disjoint on x: inverted result, no sentinel
	disjoint := b.Intersect(NewBox3DFromBounds(20, 6, 7, 30, 13, 15))
	assertBounds(t, disjoint, 20, 6, 7, 11, 13, 15)
	assert.Less(t, disjoint.Width(), 0.0)
}

func TestBox3DIntersects(t *testing.T) {
	b := NewBox3DFromBounds(5, 6, 7, 11, 13, 15)

	tests := []struct {
		name     string
		other    Box3D
		expected bool
	}{
		{"inside", NewBox3DFromBounds(7, 8, 9, 10, 11, 12), true},
		{"enclosing", NewBox3DFromBounds(0, 1, 2, 100, 111, 112), true},
		{"partial", NewBox3DFromBounds(1, 2, 3, 6, 7, 8), true},
		{"touching corner", NewBox3DFromBounds(11, 13, 15, 20, 20, 20), true},
		{"beyond all axes", NewBox3DFromBounds(15, 16, 17, 110, 112, 113), false},
		{"beyond z", NewBox3DFromBounds(5, 6, 17, 11, 13, 113), false},
		{"beyond y", NewBox3DFromBounds(5, 16, 7, 11, 23, 15), false},
		{"beyond x", NewBox3DFromBounds(15, 6, 7, 21, 13, 15), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, b.Intersects(tt.other))
			assert.Equal(t, tt.expected, tt.other.Intersects(b), "symmetry")
		})
	}
}

func TestBox3DContains(t *testing.T) {
	b := NewBox3DFromBounds(5, 6, 7, 11, 13, 15)

	assert.True(t, b.Contains(NewBox3DFromBounds(7, 8, 9, 10, 11, 12)))
	assert.True(t, b.Contains(b))
	assert.False(t, b.Contains(NewBox3DFromBounds(0, 1, 2, 100, 111, 112)))
	assert.False(t, b.Contains(NewBox3DFromBounds(1, 2, 3, 6, 7, 8)))
	assert.False(t, b.Contains(NewBox3DFromBounds(15, 16, 17, 110, 112, 113)))
	assert.False(t, b.Contains(NewBox3DFromBounds(5, 6, 17, 11, 13, 113)))
	assert.False(t, b.Contains(NewBox3DFromBounds(5, 16, 7, 11, 23, 15)))
	assert.False(t, b.Contains(NewBox3DFromBounds(15, 6, 7, 21, 13, 15)))
}

func TestBox3DContainsPoint(t *testing.T) {
	b := NewBox3DFromBounds(5, 6, 7, 11, 13, 15)

	tests := []struct {
		name     string
		point    Point
		expected bool
	}{
		{"inside", NewPointZ(6, 7, 8), true},
		{"max corner", NewPointZ(11, 13, 15), true},
		{"outside x", NewPointZ(16, 7, 8), false},
		{"outside y", NewPointZ(6, 17, 8), false},
		{"outside z", NewPointZ(6, 7, 18), false},
		{"2d inside", NewPoint(6, 7), true},
		{"2d outside x", NewPoint(16, 7), false},
		{"2d outside y", NewPoint(6, 17), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, b.ContainsPoint(tt.point))
		})
	}

	t.Run("box without z", func(t *testing.T) {
		flat := NewBox3DFromRectangle(NewRectangle(5, 6, 11, 13))
		assert.True(t, flat.ContainsPoint(NewPoint(6, 7)))
		assert.False(t, flat.ContainsPoint(NewPointZ(6, 7, 0)))
	})
}

func TestBox3DCombineWith(t *testing.T) {
	t.Run("other contains receiver", func(t *testing.T) {
		b1 := NewBox3DFromBounds(5, 6, 7, 11, 13, 15)
		b2 := NewBox3DFromBounds(2, 3, 4, 12, 15, 17)
		b1.CombineWith(b2)
		assert.Equal(t, b2, b1)
	})

	t.Run("disjoint", func(t *testing.T) {
		b3 := NewBox3DFromBounds(5, 6, 7, 11, 13, 15)
		b4 := NewBox3DFromBounds(26, 23, 24, 32, 35, 37)
		b3.CombineWith(b4)
		assertBounds(t, b3, 5, 6, 7, 32, 35, 37)
	})

	t.Run("point inside", func(t *testing.T) {
		b := NewBox3DFromBounds(5, 6, 7, 11, 13, 15)
		b.CombineWithPoint(7, 9, 9)
		assertBounds(t, b, 5, 6, 7, 11, 13, 15)
	})

	t.Run("point outside", func(t *testing.T) {
		b := NewBox3DFromBounds(5, 6, 7, 11, 13, 15)
		b.CombineWithPoint(15, -2, 14)
		assertBounds(t, b, 5, -2, 7, 15, 13, 15)
	})

	t.Run("null receiver absorbs", func(t *testing.T) {
		other := NewBox3DFromBounds(1, 2, 3, 4, 5, 6)
		b := NewBox3D()
		b.CombineWith(other)
		assert.Equal(t, other, b)
	})
}

func TestBox3DCombineNullWithFlatBox(t *testing.T) {
	box := NewBox3D()
	box.CombineWith(NewBox3DFromRectangle(NewRectangle(1, 2, 3, 4)))

	// NaN z never compares smaller, so the sentinel z range survives
	assert.Equal(t, 1.0, box.XMinimum())
	assert.Equal(t, 2.0, box.YMinimum())
	assert.Equal(t, 3.0, box.XMaximum())
	assert.Equal(t, 4.0, box.YMaximum())
	assert.Equal(t, math.MaxFloat64, box.ZMinimum())
	assert.Equal(t, -math.MaxFloat64, box.ZMaximum())
	assert.False(t, box.IsNull())
	assert.True(t, box.IsEmpty())
	assert.Equal(t, "Empty", box.String())
}

func TestBox3DVolume(t *testing.T) {
	assert.Equal(t, 336.0, NewBox3DFromBounds(5, 6, 7, 11, 13, 15).Volume())
}

func TestBox3DToRectangle(t *testing.T) {
	b := NewBox3DFromBounds(5, 6, 7, 11, 13, 15)
	assert.Equal(t, NewRectangle(5, 6, 11, 13), b.ToRectangle())

	assert.True(t, NewBox3D().ToRectangle().IsNull())
}

func TestBox3DIs2D(t *testing.T) {
	tests := []struct {
		name     string
		box      Box3D
		expected bool
	}{
		{"3d", NewBox3DFromBounds(5, 6, 7, 11, 13, 15), false},
		{"flat at 7", NewBox3DFromBounds(5, 6, 7, 11, 13, 7), true},
		{"flat at 0", NewBox3DFromBounds(5, 6, 0, 11, 13, 0), true},
		{"normalized z", NewBox3DFromBounds(5, 6, 7, 11, 13, -7), false},
		{"inverted z", NewBox3DFromBounds(5, 6, 7, 11, 13, -7, Unnormalized()), true},
		{"NaN z", NewBox3DFromBounds(5, 6, math.NaN(), 11, 13, math.NaN()), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.box.Is2D())
			assert.Equal(t, !tt.expected, tt.box.Is3D())
		})
	}
}

func TestBox3DIs3D(t *testing.T) {
	assert.True(t, NewBox3DFromBounds(5, 6, 7, 11, 13, 15).Is3D())
	assert.False(t, NewBox3DFromBounds(5, 6, 0, 11, 13, 0).Is3D())
	assert.False(t, NewBox3DFromBounds(5, 6, 10, 11, 13, -10, Unnormalized()).Is3D())
}

func TestBox3DEquality(t *testing.T) {
	b1 := NewBox3DFromBounds(5, 6, 7, 11, 13, 15)
	b2 := NewBox3DFromBounds(5, 6, 7, 11, 13, 15)
	assert.True(t, b1.Equals(b2))
	assert.True(t, b1 == b2)

	others := []Box3D{
		NewBox3DFromBounds(5, 6, 7, 11, 13, 14),
		NewBox3DFromBounds(5, 6, 7, 11, 41, 15),
		NewBox3DFromBounds(5, 6, 7, 12, 13, 15),
		NewBox3DFromBounds(5, 6, 17, 11, 13, 15),
		NewBox3DFromBounds(5, 16, 7, 11, 13, 15),
		NewBox3DFromBounds(52, 6, 7, 11, 13, 15),
	}
	for _, other := range others {
		assert.False(t, b1.Equals(other), "%v", other)
	}

	flat := NewBox3DFromRectangle(NewRectangle(5, 6, 11, 13))
	assert.False(t, flat.Equals(flat), "NaN bounds never compare equal")
}

func TestBox3DScale(t *testing.T) {
	t.Run("own center", func(t *testing.T) {
		b := NewBox3DFromBounds(-1, -1, -1, 1, 1, 1)
		b.Scale(3)
		assertBounds(t, b, -3, -3, -3, 3, 3, 3)
	})

	t.Run("corner", func(t *testing.T) {
		b := NewBox3DFromBounds(-1, -1, -1, 1, 1, 1)
		b.ScaleAround(3, NewPointZ(-1, -1, -1))
		assertBounds(t, b, -1, -1, -1, 5, 5, 5)
	})

	t.Run("outside point", func(t *testing.T) {
		b := NewBox3DFromBounds(-1, -1, -1, 1, 1, 1)
		b.ScaleAround(3, NewPointZ(-2, 2, 0))
		assert.Equal(t, 6.0, b.Width())
		assert.Equal(t, 6.0, b.Height())
		assert.Equal(t, 6.0, b.Depth())
		assertBounds(t, b, 1, -7, -3, 7, -1, 3)
	})

	t.Run("2d center keeps own z center", func(t *testing.T) {
		b := NewBox3DFromBounds(0, 0, 2, 2, 2, 4)
		b.ScaleAround(2, NewPoint(0, 0))
		assertBounds(t, b, 0, 0, 1, 4, 4, 5)
	})
}

func TestBox3DIsNull(t *testing.T) {
	tests := []struct {
		name     string
		box      Box3D
		expected bool
	}{
		{"default", NewBox3D(), true},
		{"origin point", NewBox3DFromBounds(0, 0, 0, 0, 0, 0), false},
		{"unit point", NewBox3DFromBounds(1, 1, 1, 1, 1, 1), false},
		{"regular", NewBox3DFromBounds(5, 6, 7, 12, 13, 14), false},
		{"NaN z", NewBox3DFromBounds(5, 6, math.NaN(), 12, 13, math.NaN()), false},
		{"degenerate NaN z", NewBox3DFromBounds(0, 0, math.NaN(), 0, 0, math.NaN()), false},
		{"flat x", NewBox3DFromBounds(0, 6, 8, 0, 13, 14), false},
		{"flat y", NewBox3DFromBounds(5, 0, 7, 12, 0, 14), false},
		{"flat z", NewBox3DFromBounds(5, 6, 0, 12, 13, 0), false},
		{"explicit sentinel", NewBox3DFromBounds(
			math.MaxFloat64, math.MaxFloat64, math.MaxFloat64,
			-math.MaxFloat64, -math.MaxFloat64, -math.MaxFloat64, Unnormalized()), true},
		{"all NaN", NewBox3DFromBounds(
			math.NaN(), math.NaN(), math.NaN(), math.NaN(), math.NaN(), math.NaN()), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.box.IsNull())
		})
	}
}

func TestBox3DIsEmpty(t *testing.T) {
	tests := []struct {
		name     string
		box      Box3D
		expected bool
	}{
		{"default", NewBox3D(), true},
		{"origin point", NewBox3DFromBounds(0, 0, 0, 0, 0, 0), true},
		{"unit point", NewBox3DFromBounds(1, 1, 1, 1, 1, 1), true},
		{"regular", NewBox3DFromBounds(5, 6, 7, 12, 13, 14, Unnormalized()), false},
		{"zMin > zMax", NewBox3DFromBounds(5, 6, 7, 12, 13, 2, Unnormalized()), true},
		{"zMin == zMax", NewBox3DFromBounds(5, 6, 7, 12, 13, 7, Unnormalized()), true},
		{"xMin > xMax", NewBox3DFromBounds(5, 6, 7, -20, 13, 14, Unnormalized()), true},
		{"yMin > yMax", NewBox3DFromBounds(5, 6, 7, 12, 2, 14, Unnormalized()), true},
		{"NaN z", NewBox3DFromBounds(5, 6, math.NaN(), 12, 13, math.NaN()), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.box.IsEmpty())
		})
	}
}

func TestBox3DString(t *testing.T) {
	assert.Equal(t, "Null", NewBox3D().String())
	assert.Equal(t, "Empty", NewBox3DFromBounds(0, 0, 0, 0, 0, 0).String())
	assert.Equal(t, "Empty", NewBox3DFromBounds(1, 1, 1, 1, 1, 1).String())
	assert.Equal(t,
		"1.0000000000000000,2.0000000000000000,3.0000000000000000 : "+
			"4.0000000000000000,5.0000000000000000,6.0000000000000000",
		NewBox3DFromBounds(1, 2, 3, 4, 5, 6).String())

	b := NewBox3DFromBounds(1.451845, 2.8543302, 3.3490346, 4.654983, 5.5484343, 6.4567982)
	assert.Equal(t, "1.452,2.854,3.349 : 4.655,5.548,6.457", b.Format(3))
}

func TestBox3DFormatAutoPrecision(t *testing.T) {
	small := NewBox3DFromBounds(1, 2, 3, 1.5, 2.25, 4)
	assert.Equal(t, "1.00,2.00,3.00 : 1.50,2.25,4.00", small.Format(-1))

	large := NewBox3DFromBounds(0, 0, 0, 100, 200, 1)
	assert.Equal(t, "0,0,0 : 100,200,1", large.Format(-1))
}

func TestBox3DCenter(t *testing.T) {
	c := NewBox3DFromBounds(0, 2, 4, 10, 6, 8).Center()
	assert.Equal(t, NewPointZ(5, 4, 6), c)
}

func TestBox3DGrow(t *testing.T) {
	b := NewBox3DFromBounds(0, 0, 0, 1, 1, 1)
	b.Grow(1)
	assertBounds(t, b, -1, -1, -1, 2, 2, 2)
}

func TestBox3DDistanceTo(t *testing.T) {
	b := NewBox3DFromBounds(0, 0, 0, 1, 1, 1)

	assert.Equal(t, 0.0, b.DistanceTo(NewPointZ(0.5, 0.5, 0.5)))
	assert.InDelta(t, 5.0, b.DistanceTo(NewPointZ(4, 5, 1)), 1e-12)
	assert.InDelta(t, 2.0, b.DistanceTo(NewPoint(0.5, 3)), 1e-12)
	assert.InDelta(t, 3.0, b.DistanceTo(NewPointZ(0.5, 0.5, -3)), 1e-12)
}

func TestBox3DTransform(t *testing.T) {
	b := NewBox3DFromBounds(0, 0, 0, 2, 1, 1)

	t.Run("translate", func(t *testing.T) {
		moved := b.Transform(mgl64.Translate3D(1, 2, 3))
		assertBounds(t, moved, 1, 2, 3, 3, 3, 4)
	})

	t.Run("rotate 90 about z", func(t *testing.T) {
		rotated := b.Transform(mgl64.HomogRotate3DZ(math.Pi / 2))
		assert.InDelta(t, -1.0, rotated.XMinimum(), 1e-12)
		assert.InDelta(t, 0.0, rotated.XMaximum(), 1e-12)
		assert.InDelta(t, 0.0, rotated.YMinimum(), 1e-12)
		assert.InDelta(t, 2.0, rotated.YMaximum(), 1e-12)
		assert.InDelta(t, 0.0, rotated.ZMinimum(), 1e-12)
		assert.InDelta(t, 1.0, rotated.ZMaximum(), 1e-12)
	})

	t.Run("null stays null", func(t *testing.T) {
		assert.True(t, NewBox3D().Transform(mgl64.Translate3D(1, 1, 1)).IsNull())
	})
}

// sampleBoxes covers overlapping, nested, touching and disjoint boxes
var sampleBoxes = []Box3D{
	NewBox3DFromBounds(0, 0, 0, 10, 10, 10),
	NewBox3DFromBounds(5, 5, 5, 15, 15, 15),
	NewBox3DFromBounds(2, 3, 4, 6, 7, 8),
	NewBox3DFromBounds(10, 10, 10, 20, 20, 20),
	NewBox3DFromBounds(-5, -5, -5, -1, -1, -1),
	NewBox3DFromBounds(-3, 4, 1, 12, 6, 2),
}

func TestBox3DIntersectsIsSymmetric(t *testing.T) {
	for _, a := range sampleBoxes {
		for _, b := range sampleBoxes {
			assert.Equal(t, a.Intersects(b), b.Intersects(a), "%v / %v", a, b)
		}
	}
}

func TestBox3DIntersectionIsContainedInBoth(t *testing.T) {
	for _, a := range sampleBoxes {
		for _, b := range sampleBoxes {
			if !a.Intersects(b) {
				continue
			}
			ab := a.Intersect(b)
			require.Equal(t, ab, b.Intersect(a))
			assert.True(t, a.Contains(ab), "%v in %v", ab, a)
			assert.True(t, b.Contains(ab), "%v in %v", ab, b)
		}
	}
}

func TestBox3DCombineWithIsMonotonic(t *testing.T) {
	for _, a := range sampleBoxes {
		for _, b := range sampleBoxes {
			union := a
			union.CombineWith(b)
			assert.True(t, union.Contains(a))
			assert.True(t, union.Contains(b))
		}
	}
}
