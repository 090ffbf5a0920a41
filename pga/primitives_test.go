package pga

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

const eps = 1e-9

func epsEq(x, y, eps float64) bool {
	return math.Abs(x-y) <= eps
}

func point2Eq(a, b Point2[float64], eps float64) bool {
	a, b = a.Normalized(), b.Normalized()
	return epsEq(a.E01, b.E01, eps) && epsEq(a.E20, b.E20, eps) && epsEq(a.E12, b.E12, eps)
}

func point3Eq(a, b Point3[float64], eps float64) bool {
	a, b = a.Normalized(), b.Normalized()
	return epsEq(a.E021, b.E021, eps) && epsEq(a.E013, b.E013, eps) &&
		epsEq(a.E032, b.E032, eps) && epsEq(a.E123, b.E123, eps)
}

// line2Eq compares lines as sets of points: the same up to a non-zero scale.
func line2Eq(a, b Line2[float64], eps float64) bool {
	a, b = a.Normalized(), b.Normalized()
	if a.E1*b.E1+a.E2*b.E2 < 0 {
		b = Line2[float64]{b.Neg()}
	}
	return epsEq(a.E0, b.E0, eps) && epsEq(a.E1, b.E1, eps) && epsEq(a.E2, b.E2, eps)
}

func plane3Eq(a, b Plane3[float64], eps float64) bool {
	a, b = a.Normalized(), b.Normalized()
	if a.E1*b.E1+a.E2*b.E2+a.E3*b.E3 < 0 {
		b = Plane3[float64]{b.Neg()}
	}
	return epsEq(a.E0, b.E0, eps) && epsEq(a.E1, b.E1, eps) &&
		epsEq(a.E2, b.E2, eps) && epsEq(a.E3, b.E3, eps)
}

// onPlane reports whether p lies on pl.
func onPlane(pl Plane3[float64], p Point3[float64]) bool {
	return epsEq(pl.Vector3.OuterTriVector(p.Normalized().TriVector3).E0123, 0, eps)
}

// onLine reports whether p lies on l.
func onLine(l Line3[float64], p Point3[float64]) bool {
	pl := p.Normalized().TriVector3.RegressiveBiVector(l.Normalized().BiVector3)
	return epsEq(pl.E0, 0, eps) && epsEq(pl.E1, 0, eps) && epsEq(pl.E2, 0, eps) && epsEq(pl.E3, 0, eps)
}

func randPoint2(r *rand.Rand) Point2[float64] {
	return Point2At(4*r.Float64()-2, 4*r.Float64()-2)
}

func randLine2(r *rand.Rand) Line2[float64] {
	return randPoint2(r).Join(randPoint2(r))
}

func randPoint3(r *rand.Rand) Point3[float64] {
	return Point3At(4*r.Float64()-2, 4*r.Float64()-2, 4*r.Float64()-2)
}

func TestPoint2Constructors(t *testing.T) {
	p := Point2At(3.0, 4.0)
	assert.Equal(t, NewPoint2(4.0, 3.0, 1.0), p)
	x, y := p.Coords()
	assert.Equal(t, 3.0, x)
	assert.Equal(t, 4.0, y)
	assert.False(t, p.IsIdeal())
	assert.True(t, IdealPoint2(1.0, 0.0).IsIdeal())
	assert.Equal(t, BiVector2[float64]{E12: 1}, Origin2[float64]().BiVector())

	// Coordinates are only meaningful after normalization.
	x, y = NewPoint2(8.0, 6.0, 2.0).Normalized().Coords()
	assert.Equal(t, 3.0, x)
	assert.Equal(t, 4.0, y)
	x, y = NewPoint2(8.0, 6.0, -2.0).Normalized().Coords()
	assert.Equal(t, -3.0, x)
	assert.Equal(t, -4.0, y)
}

func TestIdealPointStability(t *testing.T) {
	ideal := IdealPoint2(1.0, 0.0)
	assert.Equal(t, ideal, ideal.Normalized())
	assert.False(t, math.IsNaN(ideal.Normalized().E20))

	ideal3 := IdealPoint3(0.0, 2.0, 1.0)
	assert.Equal(t, ideal3, ideal3.Normalized())

	unit := Point2At(2.0, 3.0)
	assert.Equal(t, unit, unit.Normalized())
}

func TestLine2ABC(t *testing.T) {
	l := Line2FromABC(1.0, 2.0, 3.0)
	assert.Equal(t, NewLine2(3.0, 1.0, 2.0), l)
	a, b, c := l.ABC()
	assert.Equal(t, []float64{1, 2, 3}, []float64{a, b, c})
	assert.Equal(t, Vector2[float64]{E0: 3, E1: 1, E2: 2}, l.Vector())

	// y = 2x + 1
	l = Line2FromABC(2.0, -1.0, 1.0)
	assert.Equal(t, 2.0, l.Tangent())
	assert.Equal(t, 1.0, l.Y0())
	assert.Equal(t, -0.5, l.X0())
	assert.False(t, l.IsIdeal())

	vertical := Line2FromABC(1.0, 0.0, -1.0)
	assert.True(t, math.IsInf(vertical.Tangent(), -1))
	assert.True(t, LineAtInfinity2[float64]().IsIdeal())
}

func TestLine2Meet(t *testing.T) {
	// x = 0 meets y = 0 at the origin.
	p := Line2FromABC(1.0, 0.0, 0.0).Meet(Line2FromABC(0.0, 1.0, 0.0))
	x, y := p.Normalized().Coords()
	assert.InDelta(t, 0, x, eps)
	assert.InDelta(t, 0, y, eps)
	assert.False(t, p.IsIdeal())

	table := []struct {
		l1, l2 Line2[float64]
		x, y   float64
	}{
		{Line2FromABC(1.0, 0.0, -2.0), Line2FromABC(0.0, 1.0, -3.0), 2, 3},
		{Line2FromABC(1.0, -1.0, 0.0), Line2FromABC(1.0, 1.0, -2.0), 1, 1},
		{Line2FromABC(2.0, -1.0, 1.0), Line2FromABC(0.0, 1.0, -5.0), 2, 5},
	}

	for i, test := range table {
		x, y := test.l1.Meet(test.l2).Normalized().Coords()
		if !epsEq(x, test.x, eps) || !epsEq(y, test.y, eps) {
			t.Errorf("%d) expected (%g, %g), got (%g, %g)", i, test.x, test.y, x, y)
		}
	}

	// Parallel lines meet at infinity.
	assert.True(t, Line2FromABC(1.0, 0.0, 0.0).Meet(Line2FromABC(1.0, 0.0, -4.0)).IsIdeal())
}

func TestPoint2Join(t *testing.T) {
	l := Origin2[float64]().Join(Point2At(1.0, 1.0))
	assert.True(t, line2Eq(l, Line2FromABC(-1.0, 1.0, 0.0), eps))

	r := rand.New(rand.NewSource(1))
	for i := 0; i < 20; i++ {
		p, q := randPoint2(r), randPoint2(r)
		l := p.Join(q)
		if !epsEq(l.Vector2.OuterBiVector(p.BiVector2).E012, 0, eps) {
			t.Errorf("%d) %v does not lie on %v", i, p, l)
		}
		if m := l.Meet(p.Join(Point2At(0.0, 5.0))); !point2Eq(m, p, 1e-8) {
			t.Errorf("%d) expected lines to meet at %v, got %v", i, p, m)
		}
	}
}

func TestProject2(t *testing.T) {
	// x = 1
	l := Line2FromABC(1.0, 0.0, -1.0)
	p := Point2At(3.0, 5.0)

	assert.True(t, point2Eq(p.ProjectTo(l), Point2At(1.0, 5.0), eps))
	assert.True(t, line2Eq(l.ProjectTo(p), Line2FromABC(1.0, 0.0, -3.0), eps))

	diag := Line2FromABC(1.0, -1.0, 0.0)
	assert.True(t, point2Eq(Point2At(2.0, 0.0).ProjectTo(diag), Point2At(1.0, 1.0), eps))
}

func TestReflect2(t *testing.T) {
	l := Line2FromABC(1.0, 0.0, -1.0)
	p := Point2At(3.0, 5.0)
	assert.True(t, point2Eq(l.ReflectPoint(p), Point2At(-1.0, 5.0), eps))
	assert.True(t, point2Eq(Point2At(1.0, 2.0).ReflectPoint(p), Point2At(-1.0, -1.0), eps))
	assert.True(t, line2Eq(l.ReflectLine(Line2FromABC(1.0, 0.0, 0.0)), Line2FromABC(1.0, 0.0, -2.0), eps))
	assert.True(t, line2Eq(Origin2[float64]().ReflectLine(l), Line2FromABC(1.0, 0.0, 1.0), eps))

	r := rand.New(rand.NewSource(2))
	for i := 0; i < 50; i++ {
		l, m := randLine2(r), randLine2(r)
		p, q := randPoint2(r), randPoint2(r)
		if res := l.ReflectPoint(l.ReflectPoint(p)); !point2Eq(res, p, 1e-8) {
			t.Errorf("%d) line reflection of %v twice gave %v", i, p, res)
		}
		if res := l.ReflectLine(l.ReflectLine(m)); !line2Eq(res, m, 1e-8) {
			t.Errorf("%d) line reflection of %v twice gave %v", i, m, res)
		}
		if res := q.ReflectPoint(q.ReflectPoint(p)); !point2Eq(res, p, 1e-8) {
			t.Errorf("%d) point reflection of %v twice gave %v", i, p, res)
		}
		if res := q.ReflectLine(q.ReflectLine(m)); !line2Eq(res, m, 1e-8) {
			t.Errorf("%d) point reflection of %v twice gave %v", i, m, res)
		}
	}
}

func TestPoint3(t *testing.T) {
	p := Point3At(1.0, 2.0, 3.0)
	assert.Equal(t, NewPoint3(1.0, 1.0, 2.0, 3.0), p)
	x, y, z := NewPoint3(2.0, 2.0, 4.0, 6.0).Normalized().Coords()
	assert.Equal(t, []float64{1, 2, 3}, []float64{x, y, z})
	assert.True(t, IdealPoint3(1.0, 0.0, 0.0).IsIdeal())
	assert.Equal(t, TriVector3[float64]{E123: 1}, Origin3[float64]().TriVector())
}

func TestMeet3(t *testing.T) {
	x, y, z := PlaneYZ[float64]().Meet3(PlaneXZ[float64](), PlaneXY[float64]()).Normalized().Coords()
	assert.Equal(t, []float64{0, 0, 0}, []float64{x, y, z})

	p := NewPlane3(-1.0, 1.0, 0.0, 0.0).Meet3(NewPlane3(-2.0, 0.0, 1.0, 0.0), NewPlane3(-3.0, 0.0, 0.0, 1.0))
	assert.True(t, point3Eq(p, Point3At(1.0, 2.0, 3.0), eps))

	// The z axis is the meet of x = 0 and y = 0.
	axis := PlaneYZ[float64]().Meet(PlaneXZ[float64]())
	assert.True(t, onLine(axis, Point3At(0.0, 0.0, 5.0)))
	assert.False(t, onLine(axis, Point3At(1.0, 0.0, 5.0)))
	assert.False(t, axis.IsIdeal())
	assert.True(t, PlaneAtInfinity3[float64]().Meet(PlaneXY[float64]()).IsIdeal())

	xAxis := Origin3[float64]().Join(Point3At(1.0, 0.0, 0.0))
	assert.True(t, point3Eq(xAxis.MeetPlane(NewPlane3(-2.0, 1.0, 0.0, 0.0)), Point3At(2.0, 0.0, 0.0), eps))
	assert.True(t, point3Eq(NewPlane3(-2.0, 1.0, 0.0, 0.0).MeetLine(xAxis), Point3At(2.0, 0.0, 0.0), eps))
}

func TestJoin3(t *testing.T) {
	r := rand.New(rand.NewSource(3))
	for i := 0; i < 20; i++ {
		a, b, c := randPoint3(r), randPoint3(r), randPoint3(r)
		l := a.Join(b)
		if !onLine(l, a) || !onLine(l, b) {
			t.Errorf("%d) %v does not pass through %v and %v", i, l, a, b)
		}
		pl := a.Join3(b, c)
		if !onPlane(pl, a) || !onPlane(pl, b) || !onPlane(pl, c) {
			t.Errorf("%d) %v does not pass through %v, %v and %v", i, pl, a, b, c)
		}
		pl = l.JoinPoint(c)
		if !onPlane(pl, a) || !onPlane(pl, b) || !onPlane(pl, c) {
			t.Errorf("%d) %v does not contain %v and %v", i, pl, l, c)
		}
	}

	xAxis := Origin3[float64]().Join(Point3At(1.0, 0.0, 0.0))
	pl := xAxis.JoinPoint(Point3At(0.0, 1.0, 0.0))
	assert.True(t, onPlane(pl, Point3At(5.0, 7.0, 0.0)))
	assert.False(t, onPlane(pl, Point3At(5.0, 7.0, 1.0)))
}

func TestProject3(t *testing.T) {
	p := Point3At(1.0, 2.0, 3.0)
	assert.True(t, point3Eq(p.ProjectToPlane(PlaneXY[float64]()), Point3At(1.0, 2.0, 0.0), eps))

	xAxis := Origin3[float64]().Join(Point3At(1.0, 0.0, 0.0))
	assert.True(t, point3Eq(p.ProjectToLine(xAxis), Point3At(1.0, 0.0, 0.0), eps))

	parallel := xAxis.ProjectTo(p)
	assert.True(t, onLine(parallel, p))
	assert.True(t, onLine(parallel, Point3At(-4.0, 2.0, 3.0)))

	pl := PlaneXY[float64]().ProjectTo(p)
	assert.True(t, onPlane(pl, Point3At(-7.0, 9.0, 3.0)))
	assert.False(t, onPlane(pl, Point3At(-7.0, 9.0, 2.0)))
}

func TestReflect3(t *testing.T) {
	pl := NewPlane3(-1.0, 1.0, 0.0, 0.0)
	assert.True(t, point3Eq(pl.ReflectPoint(Point3At(3.0, 5.0, 7.0)), Point3At(-1.0, 5.0, 7.0), eps))

	r := rand.New(rand.NewSource(4))
	for i := 0; i < 50; i++ {
		a, b, c := randPoint3(r), randPoint3(r), randPoint3(r)
		pl := a.Join3(b, c).Normalized()
		p := randPoint3(r)
		if res := pl.ReflectPoint(pl.ReflectPoint(p)); !point3Eq(res, p, 1e-8) {
			t.Errorf("%d) reflecting %v twice gave %v", i, p, res)
		}

		q := randPoint3(r).Join3(randPoint3(r), randPoint3(r))
		if res := pl.ReflectPlane(pl.ReflectPlane(q)); !plane3Eq(res, q, 1e-8) {
			t.Errorf("%d) reflecting %v twice gave %v", i, q, res)
		}
	}
}

func TestPlaneNorm(t *testing.T) {
	pl := NewPlane3(10.0, 0.0, 3.0, 4.0)
	assert.Equal(t, 5.0, pl.Norm())
	assert.Equal(t, NewPlane3(2.0, 0.0, 0.6, 0.8), pl.Normalized())
	assert.Equal(t, Vector3[float64]{E0: 10, E2: 3, E3: 4}, pl.Vector())

	l := NewLine3(1.0, 2.0, 3.0, 0.0, 3.0, 4.0)
	assert.Equal(t, 5.0, l.Norm())
	assert.True(t, NewLine3(1.0, 2.0, 3.0, 0.0, 0.0, 0.0).IsIdeal())
	assert.Equal(t, NewBiVector3(0.0, 0.0, 0.0, 0.0, 1.0, 0.0), Horizon3[float64]().BiVector())
}

func BenchmarkPoint2Join(b *testing.B) {
	p, q := Point2At(1.0, 2.0), Point2At(3.0, -1.0)
	for i := 0; i < b.N; i++ {
		p.Join(q)
	}
}

func BenchmarkPlane3Meet3(b *testing.B) {
	p, q, r := PlaneXY[float64](), PlaneYZ[float64](), NewPlane3(1.0, 1.0, 1.0, 1.0)
	for i := 0; i < b.N; i++ {
		p.Meet3(q, r)
	}
}
