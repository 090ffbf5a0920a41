package pga

import (
	"github.com/phil-mansfield/athena/num"
)

// Line2 is a line in the plane, stored as a vector. The line
// e0 + e1 x + e2 y = 0 has coefficients (e0, e1, e2).
type Line2[T num.Float] struct {
	Vector2[T]
}

// NewLine2 returns the line with the given raw coefficients.
func NewLine2[T num.Float](e0, e1, e2 T) Line2[T] {
	return Line2[T]{Vector2[T]{E0: e0, E1: e1, E2: e2}}
}

// Line2FromABC returns the line a x + b y + c = 0.
func Line2FromABC[T num.Float](a, b, c T) Line2[T] {
	return NewLine2(c, a, b)
}

// LineAtInfinity2 returns e0, the line containing every ideal point.
func LineAtInfinity2[T num.Float]() Line2[T] {
	return NewLine2(num.One[T](), num.Zero[T](), num.Zero[T]())
}

// Vector returns the vector l wraps.
func (l Line2[T]) Vector() Vector2[T] { return l.Vector2 }

// ABC returns the coefficients of l in the form a x + b y + c = 0.
func (l Line2[T]) ABC() (a, b, c T) { return l.E1, l.E2, l.E0 }

func (l Line2[T]) IsIdeal() bool { return l.E1 == 0 && l.E2 == 0 }

// Tangent returns the slope of l. Vertical lines give inf or NaN.
func (l Line2[T]) Tangent() T { return -l.E1 / l.E2 }

// Y0 returns the y intercept of l. Vertical lines give inf or NaN.
func (l Line2[T]) Y0() T { return -l.E0 / l.E2 }

// X0 returns the x intercept of l. Horizontal lines give inf or NaN.
func (l Line2[T]) X0() T { return -l.E0 / l.E1 }

func (l *Line2[T]) Normalize() { l.Vector2.Normalize() }

func (l Line2[T]) Normalized() Line2[T] {
	l.Normalize()
	return l
}

// Meet returns the intersection of l and m. Parallel lines meet at an ideal
// point.
func (l Line2[T]) Meet(m Line2[T]) Point2[T] {
	return Point2[T]{l.Vector2.OuterVector(m.Vector2)}
}

// ProjectTo returns the line through p parallel to l.
func (l Line2[T]) ProjectTo(p Point2[T]) Line2[T] {
	return Line2[T]{l.Vector2.InnerBiVector(p.BiVector2).InnerBiVector(p.BiVector2.Reverse())}
}

// ReflectPoint mirrors p across l.
func (l Line2[T]) ReflectPoint(p Point2[T]) Point2[T] {
	v, ps := l.Vector2.MulBiVector(p.BiVector2)
	_, out := v.MulVector(l.Vector2)
	return Point2[T]{out.Add(ps.MulVector(l.Vector2))}
}

// ReflectLine mirrors m across l.
func (l Line2[T]) ReflectLine(m Line2[T]) Line2[T] {
	s, b := l.Vector2.MulVector(m.Vector2)
	out, _ := b.MulVector(l.Vector2)
	return Line2[T]{out.Add(s.MulVector(l.Vector2))}
}

// Line3 is a line in space, stored as a bivector. The Euclidean half
// (e12, e31, e23) is the direction and the ideal half (e01, e02, e03) the
// moment.
type Line3[T num.Float] struct {
	BiVector3[T]
}

// NewLine3 returns the line with the given raw coefficients.
func NewLine3[T num.Float](e01, e02, e03, e12, e31, e23 T) Line3[T] {
	return Line3[T]{NewBiVector3(e01, e02, e03, e12, e31, e23)}
}

// Horizon3 returns the line e31.
func Horizon3[T num.Float]() Line3[T] {
	zero := num.Zero[T]()
	return NewLine3(zero, zero, zero, zero, num.One[T](), zero)
}

// BiVector returns the bivector l wraps.
func (l Line3[T]) BiVector() BiVector3[T] { return l.BiVector3 }

// IsIdeal reports whether l lies entirely at infinity.
func (l Line3[T]) IsIdeal() bool { return l.E12 == 0 && l.E31 == 0 && l.E23 == 0 }

func (l *Line3[T]) Normalize() { l.BiVector3.Normalize() }

func (l Line3[T]) Normalized() Line3[T] {
	l.Normalize()
	return l
}

// JoinPoint returns the plane containing l and p.
func (l Line3[T]) JoinPoint(p Point3[T]) Plane3[T] {
	return Plane3[T]{p.TriVector3.RegressiveBiVector(l.BiVector3)}
}

// MeetPlane returns the point where l crosses p.
func (l Line3[T]) MeetPlane(p Plane3[T]) Point3[T] {
	return Point3[T]{l.BiVector3.OuterVector(p.Vector3)}
}

// ProjectTo returns the line through p parallel to l.
func (l Line3[T]) ProjectTo(p Point3[T]) Line3[T] {
	out, _ := l.BiVector3.InnerTriVector(p.TriVector3).MulTriVector(p.TriVector3)
	return Line3[T]{out}
}
