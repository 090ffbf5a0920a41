package pga

import (
	"github.com/phil-mansfield/athena/num"
)

// Motor2 is a rigid motion of the plane: the even subalgebra element
// s + e01 + e20 + e12. Motors returned by this package have unit norm.
type Motor2[T num.Float] struct {
	Scalar   Scalar2[T]   `json:"scalar"`
	BiVector BiVector2[T] `json:"bivector"`
}

// NewMotor2 returns the motor with the given raw coefficients. It is not
// normalized.
func NewMotor2[T num.Float](s, e01, e20, e12 T) Motor2[T] {
	return Motor2[T]{Scalar2[T]{s}, BiVector2[T]{E01: e01, E20: e20, E12: e12}}
}

// IdentityMotor2 returns the motor which leaves everything in place.
func IdentityMotor2[T num.Float]() Motor2[T] {
	return Motor2[T]{Scalar: Scalar2[T]{num.One[T]()}}
}

// Motor2PointPoint returns the translation which moves a onto b.
func Motor2PointPoint[T num.Float](a, b Point2[T]) Motor2[T] {
	s, bv := b.BiVector2.MulBiVector(a.BiVector2.Reverse())
	return Motor2[T]{s, bv}.Normalized().Sqrt()
}

// Motor2LineLine returns the motor which moves a onto b: a rotation about
// their intersection, or a translation if they are parallel.
func Motor2LineLine[T num.Float](a, b Line2[T]) Motor2[T] {
	s, bv := b.Vector2.MulVector(a.Vector2)
	return Motor2[T]{s, bv}.Normalized().Sqrt()
}

// Motor2Reconstruct returns the rigid motion which takes the frame a onto the
// frame b. The first points are matched exactly and the second points are
// matched in direction.
func Motor2Reconstruct[T num.Float](a, b [2]Point2[T]) Motor2[T] {
	v1 := Motor2PointPoint(a[0], b[0])
	a1 := v1.MovePoint(a[1])
	v2 := Motor2LineLine(b[0].Join(a1), b[0].Join(b[1])).Normalized()
	return v2.Mul(v1)
}

// Motor2Translation returns the motor which translates by (dx, dy).
func Motor2Translation[T num.Float](dx, dy T) Motor2[T] {
	h := num.Half[T]()
	return NewMotor2(num.One[T](), -dx*h, dy*h, num.Zero[T]())
}

// Motor2Rotation returns the motor which rotates counter-clockwise by angle
// radians about the origin.
func Motor2Rotation[T num.Float](angle T) Motor2[T] {
	sin, cos := num.SinCos(angle * num.Half[T]())
	return Motor2[T]{Scalar2[T]{cos}, BiVector2[T]{E12: -sin}}
}

// Motor2RotationAround returns the motor which rotates counter-clockwise by
// angle radians about center.
func Motor2RotationAround[T num.Float](center Point2[T], angle T) Motor2[T] {
	sin, cos := num.SinCos(angle * num.Half[T]())
	return Motor2[T]{Scalar2[T]{cos}, center.Normalized().BiVector2.Scale(-sin)}
}

// product is the unnormalized geometric product of two even elements.
func (m Motor2[T]) product(n Motor2[T]) Motor2[T] {
	s, b := m.BiVector.MulBiVector(n.BiVector)
	return Motor2[T]{
		Scalar:   m.Scalar.MulScalar(n.Scalar).Add(s),
		BiVector: m.Scalar.MulBiVector(n.BiVector).Add(m.BiVector.MulScalar(n.Scalar)).Add(b),
	}
}

// Mul composes two motors: n is applied first, then m. The result is
// renormalized.
func (m Motor2[T]) Mul(n Motor2[T]) Motor2[T] {
	return m.product(n).Normalized()
}

// Norm2 returns s² + e12².
func (m Motor2[T]) Norm2() T {
	return m.Scalar.S*m.Scalar.S + m.BiVector.E12*m.BiVector.E12
}

func (m Motor2[T]) Norm() T { return num.Sqrt(m.Norm2()) }

// Normalize scales m to unit norm. Zero motors are left alone.
func (m *Motor2[T]) Normalize() {
	norm := m.Norm()
	if norm != 0 {
		m.Scalar = m.Scalar.Div(norm)
		m.BiVector = m.BiVector.Div(norm)
	}
}

func (m Motor2[T]) Normalized() Motor2[T] {
	m.Normalize()
	return m
}

// Reverse returns the inverse motion of a unit motor.
func (m Motor2[T]) Reverse() Motor2[T] {
	return Motor2[T]{m.Scalar, m.BiVector.Reverse()}
}

// Pow returns m raised to the power t, so that Pow(0.5) is half the motion and
// Pow(2) twice it. Motors with e12 exactly zero are treated as translations.
func (m Motor2[T]) Pow(t T) Motor2[T] {
	if m.BiVector.E12 != 0 {
		norm := num.Abs(m.BiVector.E12)
		angle := num.Atan2(norm, m.Scalar.S)
		sin, cos := num.SinCos(t * angle)
		return Motor2[T]{Scalar2[T]{cos}, m.BiVector.Scale(sin / norm)}
	}
	return Motor2[T]{Scalar2[T]{num.One[T]()}, m.BiVector.Scale(t / m.Scalar.S)}.Normalized()
}

// Sqrt returns the motor which applied twice gives m.
func (m Motor2[T]) Sqrt() Motor2[T] { return m.Pow(num.Half[T]()) }

// MovePoint applies m to p.
func (m Motor2[T]) MovePoint(p Point2[T]) Point2[T] {
	out := m.product(Motor2[T]{BiVector: p.BiVector2}).product(m.Reverse())
	return Point2[T]{out.BiVector}.Normalized()
}

// MoveLine applies m to l.
func (m Motor2[T]) MoveLine(l Line2[T]) Line2[T] {
	rev := m.Reverse()
	v, ps := m.BiVector.MulVector(l.Vector2)
	v = v.Add(m.Scalar.MulVector(l.Vector2))

	out, _ := v.MulBiVector(rev.BiVector)
	out = out.Add(v.MulScalar(rev.Scalar)).Add(ps.MulBiVector(rev.BiVector))
	return Line2[T]{out}.Normalized()
}

// Multivector returns m as a full 2D multivector.
func (m Motor2[T]) Multivector() Multivector2[T] {
	return m.Scalar.Multivector().Add(m.BiVector.Multivector())
}
