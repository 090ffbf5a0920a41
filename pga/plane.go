package pga

import (
	"github.com/phil-mansfield/athena/num"
)

// Plane3 is a plane in space, stored as a vector. The plane
// e0 + e1 x + e2 y + e3 z = 0 has coefficients (e0, e1, e2, e3).
type Plane3[T num.Float] struct {
	Vector3[T]
}

// NewPlane3 returns the plane with the given raw coefficients.
func NewPlane3[T num.Float](e0, e1, e2, e3 T) Plane3[T] {
	return Plane3[T]{Vector3[T]{E0: e0, E1: e1, E2: e2, E3: e3}}
}

// PlaneAtInfinity3 returns e0, the plane containing every ideal point.
func PlaneAtInfinity3[T num.Float]() Plane3[T] {
	zero := num.Zero[T]()
	return NewPlane3(num.One[T](), zero, zero, zero)
}

// PlaneXY returns the plane z = 0.
func PlaneXY[T num.Float]() Plane3[T] {
	zero := num.Zero[T]()
	return NewPlane3(zero, zero, zero, num.One[T]())
}

// PlaneYZ returns the plane x = 0.
func PlaneYZ[T num.Float]() Plane3[T] {
	zero := num.Zero[T]()
	return NewPlane3(zero, num.One[T](), zero, zero)
}

// PlaneXZ returns the plane y = 0.
func PlaneXZ[T num.Float]() Plane3[T] {
	zero := num.Zero[T]()
	return NewPlane3(zero, zero, num.One[T](), zero)
}

// Vector returns the vector p wraps.
func (p Plane3[T]) Vector() Vector3[T] { return p.Vector3 }

func (p *Plane3[T]) Normalize() { p.Vector3.Normalize() }

func (p Plane3[T]) Normalized() Plane3[T] {
	p.Normalize()
	return p
}

// Meet returns the line where p and q intersect.
func (p Plane3[T]) Meet(q Plane3[T]) Line3[T] {
	return Line3[T]{p.Vector3.OuterVector(q.Vector3)}
}

// Meet3 returns the point shared by p, q and r.
func (p Plane3[T]) Meet3(q, r Plane3[T]) Point3[T] {
	return Point3[T]{p.Vector3.OuterVector(q.Vector3).OuterVector(r.Vector3)}
}

// MeetLine returns the point where l crosses p.
func (p Plane3[T]) MeetLine(l Line3[T]) Point3[T] {
	return Point3[T]{p.Vector3.OuterBiVector(l.BiVector3)}
}

// ProjectTo returns the plane through pt parallel to p.
func (p Plane3[T]) ProjectTo(pt Point3[T]) Plane3[T] {
	out, _ := p.Vector3.InnerTriVector(pt.TriVector3).MulTriVector(pt.TriVector3)
	return Plane3[T]{out}
}

// ReflectPoint mirrors pt across p.
func (p Plane3[T]) ReflectPoint(pt Point3[T]) Point3[T] {
	b, ps := p.Vector3.MulTriVector(pt.TriVector3)
	_, out := b.MulVector(p.Vector3)
	return Point3[T]{out.Add(ps.MulVector(p.Vector3))}
}

// ReflectPlane mirrors q across p.
func (p Plane3[T]) ReflectPlane(q Plane3[T]) Plane3[T] {
	s, b := p.Vector3.MulVector(q.Vector3)
	out, _ := b.MulVector(p.Vector3)
	return Plane3[T]{out.Add(s.MulVector(p.Vector3))}
}
