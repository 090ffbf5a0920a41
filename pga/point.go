package pga

import (
	"github.com/phil-mansfield/athena/num"
)

// Point2 is a point in the plane, stored as a bivector. The weight e12 is one
// for finite points and zero for ideal points (directions).
type Point2[T num.Float] struct {
	BiVector2[T]
}

// NewPoint2 returns the point with the given raw coefficients.
func NewPoint2[T num.Float](e01, e20, e12 T) Point2[T] {
	return Point2[T]{BiVector2[T]{E01: e01, E20: e20, E12: e12}}
}

// Point2At returns the finite point (x, y).
func Point2At[T num.Float](x, y T) Point2[T] {
	return NewPoint2(y, x, num.One[T]())
}

// IdealPoint2 returns the point at infinity in the direction (x, y).
func IdealPoint2[T num.Float](x, y T) Point2[T] {
	return NewPoint2(y, x, num.Zero[T]())
}

func Origin2[T num.Float]() Point2[T] { return Point2At(num.Zero[T](), num.Zero[T]()) }

// BiVector returns the bivector a wraps.
func (a Point2[T]) BiVector() BiVector2[T] { return a.BiVector2 }

func (a Point2[T]) IsIdeal() bool { return a.E12 == 0 }

// Normalize divides a by its weight. Ideal points and points which already
// have unit weight are unchanged.
func (a *Point2[T]) Normalize() {
	if a.E12 != 0 && a.E12 != 1 {
		a.BiVector2 = a.BiVector2.Div(a.E12)
	}
}

// Normalized returns a copy of a with unit weight.
func (a Point2[T]) Normalized() Point2[T] {
	a.Normalize()
	return a
}

// Coords returns the x and y coordinates of a. a must be normalized first
// for the result to be meaningful.
func (a Point2[T]) Coords() (x, y T) { return a.E20, a.E01 }

// Join returns the line through a and b.
func (a Point2[T]) Join(b Point2[T]) Line2[T] {
	return Line2[T]{a.BiVector2.Regressive(b.BiVector2)}
}

// ProjectTo returns the point on l closest to a.
func (a Point2[T]) ProjectTo(l Line2[T]) Point2[T] {
	_, p := l.Vector2.MulVector(a.BiVector2.InnerVector(l.Vector2))
	return Point2[T]{p}
}

// ReflectPoint reflects b through a.
func (a Point2[T]) ReflectPoint(b Point2[T]) Point2[T] {
	rev := a.BiVector2.Reverse()
	s, p := a.BiVector2.MulBiVector(b.BiVector2)
	_, out := p.MulBiVector(rev)
	return Point2[T]{out.Add(s.MulBiVector(rev))}
}

// ReflectLine reflects l through a.
func (a Point2[T]) ReflectLine(l Line2[T]) Line2[T] {
	rev := a.BiVector2.Reverse()
	v, ps := a.BiVector2.MulVector(l.Vector2)
	out, _ := v.MulBiVector(rev)
	return Line2[T]{out.Add(ps.MulBiVector(rev))}
}

// Point3 is a point in space, stored as a trivector. The weight e123 is one
// for finite points and zero for ideal points.
type Point3[T num.Float] struct {
	TriVector3[T]
}

// NewPoint3 returns the point with the given raw coefficients.
func NewPoint3[T num.Float](e123, e032, e013, e021 T) Point3[T] {
	return Point3[T]{TriVector3[T]{E021: e021, E013: e013, E032: e032, E123: e123}}
}

// Point3At returns the finite point (x, y, z).
func Point3At[T num.Float](x, y, z T) Point3[T] {
	return NewPoint3(num.One[T](), x, y, z)
}

// IdealPoint3 returns the point at infinity in the direction (x, y, z).
func IdealPoint3[T num.Float](x, y, z T) Point3[T] {
	return NewPoint3(num.Zero[T](), x, y, z)
}

func Origin3[T num.Float]() Point3[T] {
	return Point3At(num.Zero[T](), num.Zero[T](), num.Zero[T]())
}

// TriVector returns the trivector a wraps.
func (a Point3[T]) TriVector() TriVector3[T] { return a.TriVector3 }

func (a Point3[T]) IsIdeal() bool { return a.E123 == 0 }

// Normalize divides a by its weight. Ideal points and points which already
// have unit weight are unchanged.
func (a *Point3[T]) Normalize() {
	if a.E123 != 0 && a.E123 != 1 {
		a.TriVector3 = a.TriVector3.Div(a.E123)
	}
}

// Normalized returns a copy of a with unit weight.
func (a Point3[T]) Normalized() Point3[T] {
	a.Normalize()
	return a
}

// Coords returns the x, y and z coordinates of a. a must be normalized first
// for the result to be meaningful.
func (a Point3[T]) Coords() (x, y, z T) { return a.E032, a.E013, a.E021 }

// Join returns the line through a and b.
func (a Point3[T]) Join(b Point3[T]) Line3[T] {
	return Line3[T]{a.TriVector3.Regressive(b.TriVector3)}
}

// Join3 returns the plane through a, b and c.
func (a Point3[T]) Join3(b, c Point3[T]) Plane3[T] {
	return Plane3[T]{Regressive3(a.TriVector3, b.TriVector3, c.TriVector3)}
}

// ProjectToPlane returns the point on p closest to a.
func (a Point3[T]) ProjectToPlane(p Plane3[T]) Point3[T] {
	_, out := p.Vector3.InnerTriVector(a.TriVector3).MulVector(p.Vector3)
	return Point3[T]{out}
}

// ProjectToLine returns the point on l closest to a.
func (a Point3[T]) ProjectToLine(l Line3[T]) Point3[T] {
	_, out := a.TriVector3.InnerBiVector(l.BiVector3).MulBiVector(l.BiVector3)
	return Point3[T]{out}
}
