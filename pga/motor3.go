package pga

import (
	"github.com/phil-mansfield/athena/mat"
	"github.com/phil-mansfield/athena/num"
)

// Motor3 is a rigid motion of space, the even subalgebra element
// s + B + p e0123. Rotations live in the Euclidean half of B, translations in
// the ideal half, and screw motions need the pseudoscalar part as well.
type Motor3[T num.Float] struct {
	Scalar   Scalar3[T]   `json:"scalar"`
	BiVector BiVector3[T] `json:"bivector"`
	Pseudo   Pseudo3[T]   `json:"pseudo"`
}

// NewMotor3 returns the motor with the given raw coefficients. It is not
// normalized.
func NewMotor3[T num.Float](s T, b BiVector3[T], e0123 T) Motor3[T] {
	return Motor3[T]{Scalar3[T]{s}, b, Pseudo3[T]{e0123}}
}

// IdentityMotor3 returns the motor which leaves everything in place.
func IdentityMotor3[T num.Float]() Motor3[T] {
	return Motor3[T]{Scalar: Scalar3[T]{num.One[T]()}}
}

// Motor3PointPoint returns the translation which moves a onto b.
func Motor3PointPoint[T num.Float](a, b Point3[T]) Motor3[T] {
	s, x := b.TriVector3.MulTriVector(a.TriVector3.Reverse())
	return Motor3[T]{Scalar: s, BiVector: x.BiVector()}.Normalized().Sqrt()
}

// Motor3LineLine returns the screw motion which moves a onto b.
func Motor3LineLine[T num.Float](a, b Line3[T]) Motor3[T] {
	s, bv, p := b.BiVector3.MulBiVector(a.BiVector3.Reverse())
	return Motor3[T]{s, bv, p}.Normalized().Sqrt()
}

// Motor3PlanePlane returns the motor which moves a onto b: a rotation about
// their line of intersection, or a translation if they are parallel.
func Motor3PlanePlane[T num.Float](a, b Plane3[T]) Motor3[T] {
	s, bv := b.Vector3.MulVector(a.Vector3)
	return Motor3[T]{Scalar: s, BiVector: bv}.Normalized().Sqrt()
}

// Motor3Reconstruct returns the rigid motion which takes the frame a onto the
// frame b. The first points are matched exactly, the lines through the first
// two points are matched next, and finally the planes through all three.
func Motor3Reconstruct[T num.Float](a, b [3]Point3[T]) Motor3[T] {
	v1 := Motor3PointPoint(a[0], b[0])

	a1 := v1.MovePoint(a[1])
	v2 := Motor3LineLine(b[0].Join(a1), b[0].Join(b[1])).Normalized()
	v21 := v2.Mul(v1)

	a1, a2 := v21.MovePoint(a[1]), v21.MovePoint(a[2])
	v3 := Motor3PlanePlane(b[0].Join3(a1, a2), b[0].Join3(b[1], b[2])).Normalized()
	return v3.Mul(v21)
}

// Motor3Translation returns the motor which translates by (dx, dy, dz).
func Motor3Translation[T num.Float](dx, dy, dz T) Motor3[T] {
	h := num.Half[T]()
	return Motor3[T]{
		Scalar:   Scalar3[T]{num.One[T]()},
		BiVector: BiVector3[T]{E01: -dx * h, E02: -dy * h, E03: -dz * h},
	}
}

// Motor3Rotation returns the motor which rotates by angle radians about the
// axis through the origin in the direction axis, following the right hand
// rule. A zero axis gives the identity.
func Motor3Rotation[T num.Float](axis [3]T, angle T) Motor3[T] {
	dir := Vector3[T]{E1: axis[0], E2: axis[1], E3: axis[2]}.Normalized()
	if dir.Norm2() == 0 {
		return IdentityMotor3[T]()
	}
	sin, cos := num.SinCos(angle * num.Half[T]())
	return Motor3[T]{
		Scalar:   Scalar3[T]{cos},
		BiVector: BiVector3[T]{E12: -dir.E3 * sin, E31: -dir.E2 * sin, E23: -dir.E1 * sin},
	}
}

// ExpMotor3 returns the motor exp(b).
func ExpMotor3[T num.Float](b BiVector3[T]) Motor3[T] {
	l := b.E12*b.E12 + b.E31*b.E31 + b.E23*b.E23
	if l == 0 {
		return Motor3[T]{Scalar: Scalar3[T]{num.One[T]()}, BiVector: b}
	}

	m := b.E01*b.E23 + b.E02*b.E31 + b.E03*b.E12
	a := num.Sqrt(l)
	sin, cos := num.SinCos(a)
	s := sin / a
	t := m / l * (cos - s)

	return Motor3[T]{
		Scalar: Scalar3[T]{cos},
		BiVector: BiVector3[T]{
			E01: s*b.E01 + t*b.E23,
			E02: s*b.E02 + t*b.E31,
			E03: s*b.E03 + t*b.E12,
			E12: s * b.E12,
			E31: s * b.E31,
			E23: s * b.E23,
		},
		Pseudo: Pseudo3[T]{m * s},
	}
}

// Log returns the bivector whose exponential is m. m must have unit norm.
// Motors with |s| >= 1 are pure translations.
func (m Motor3[T]) Log() BiVector3[T] {
	s, b, p := m.Scalar.S, m.BiVector, m.Pseudo.E0123
	if s*s >= 1 {
		return b.X().BiVector().Div(s)
	}

	a := 1 / (1 - s*s)
	bb := num.Acos(s) * num.Sqrt(a)
	c := a * p * (1 - s*bb)
	return BiVector3[T]{
		E01: c*b.E23 + bb*b.E01,
		E02: c*b.E31 + bb*b.E02,
		E03: c*b.E12 + bb*b.E03,
		E12: bb * b.E12,
		E31: bb * b.E31,
		E23: bb * b.E23,
	}
}

// product is the unnormalized geometric product of two even elements.
func (m Motor3[T]) product(n Motor3[T]) Motor3[T] {
	bs, bb, bp := m.BiVector.MulBiVector(n.BiVector)

	out := Motor3[T]{}
	out.Scalar = m.Scalar.MulScalar(n.Scalar).Add(bs).Add(m.Pseudo.MulPseudo(n.Pseudo))
	out.BiVector = m.Scalar.MulBiVector(n.BiVector).
		Add(m.BiVector.MulScalar(n.Scalar)).
		Add(bb).
		Add(m.BiVector.MulPseudo(n.Pseudo).BiVector()).
		Add(m.Pseudo.MulBiVector(n.BiVector).BiVector())
	out.Pseudo = m.Scalar.MulPseudo(n.Pseudo).Add(m.Pseudo.MulScalar(n.Scalar)).Add(bp)
	return out
}

// mulOdd returns m (v + t) for an odd element v + t.
func (m Motor3[T]) mulOdd(v Vector3[T], t TriVector3[T]) (Vector3[T], TriVector3[T]) {
	bv1, bt1 := m.BiVector.MulVector(v)
	bv2, bt2 := m.BiVector.MulTriVector(t)
	outV := m.Scalar.MulVector(v).Add(bv1).Add(bv2).Add(m.Pseudo.MulTriVector(t))
	outT := m.Scalar.MulTriVector(t).Add(bt1).Add(bt2).Add(m.Pseudo.MulVector(v))
	return outV, outT
}

// oddMul returns (v + t) m for an odd element v + t.
func (m Motor3[T]) oddMul(v Vector3[T], t TriVector3[T]) (Vector3[T], TriVector3[T]) {
	vv, vt := v.MulBiVector(m.BiVector)
	tv, tt := t.MulBiVector(m.BiVector)
	outV := v.MulScalar(m.Scalar).Add(vv).Add(tv).Add(t.MulPseudo(m.Pseudo))
	outT := t.MulScalar(m.Scalar).Add(vt).Add(tt).Add(v.MulPseudo(m.Pseudo))
	return outV, outT
}

// Mul composes two motors: n is applied first, then m. The result is
// renormalized.
func (m Motor3[T]) Mul(n Motor3[T]) Motor3[T] {
	return m.product(n).Normalized()
}

// Norm2 returns the scalar part of m m~, s² + e12² + e31² + e23².
func (m Motor3[T]) Norm2() T {
	b := m.BiVector
	return m.Scalar.S*m.Scalar.S + b.E12*b.E12 + b.E31*b.E31 + b.E23*b.E23
}

func (m Motor3[T]) Norm() T { return num.Sqrt(m.Norm2()) }

// Normalize scales m so that m m~ = 1. This removes the pseudoscalar part of
// m m~ as well as its scale. Zero motors are left alone.
func (m *Motor3[T]) Normalize() {
	mm := m.product(m.Reverse())
	s, p := mm.Scalar.S, mm.Pseudo.E0123
	if s == 0 {
		return
	}
	inv := 1 / num.Sqrt(s)
	*m = m.product(Motor3[T]{
		Scalar: Scalar3[T]{inv},
		Pseudo: Pseudo3[T]{-p / (2 * s) * inv},
	})
}

func (m Motor3[T]) Normalized() Motor3[T] {
	m.Normalize()
	return m
}

// Reverse returns the inverse motion of a unit motor.
func (m Motor3[T]) Reverse() Motor3[T] {
	return Motor3[T]{m.Scalar, m.BiVector.Reverse(), m.Pseudo}
}

// Pow returns m raised to the power t by scaling its logarithm.
func (m Motor3[T]) Pow(t T) Motor3[T] {
	return ExpMotor3(m.Log().Scale(t))
}

// Sqrt returns the motor which applied twice gives m.
func (m Motor3[T]) Sqrt() Motor3[T] { return m.Pow(num.Half[T]()) }

// MovePoint applies m to p.
func (m Motor3[T]) MovePoint(p Point3[T]) Point3[T] {
	v, t := m.mulOdd(Vector3[T]{}, p.TriVector3)
	_, t = m.Reverse().oddMul(v, t)
	return Point3[T]{t}.Normalized()
}

// MovePlane applies m to p.
func (m Motor3[T]) MovePlane(p Plane3[T]) Plane3[T] {
	v, t := m.mulOdd(p.Vector3, TriVector3[T]{})
	v, _ = m.Reverse().oddMul(v, t)
	return Plane3[T]{v}.Normalized()
}

// MoveLine applies m to l.
func (m Motor3[T]) MoveLine(l Line3[T]) Line3[T] {
	out := m.product(Motor3[T]{BiVector: l.BiVector3}).product(m.Reverse())
	return Line3[T]{out.BiVector}.Normalized()
}

// Matrix returns the 4x4 homogeneous transformation matrix of m, column-major,
// acting on column vectors (x, y, z, 1).
func (m Motor3[T]) Matrix() *mat.Matrix[T] {
	zero, one := num.Zero[T](), num.One[T]()
	cols := [4]Point3[T]{
		m.MovePoint(IdealPoint3(one, zero, zero)),
		m.MovePoint(IdealPoint3(zero, one, zero)),
		m.MovePoint(IdealPoint3(zero, zero, one)),
		m.MovePoint(Origin3[T]()),
	}

	vals := make([]T, 0, 16)
	for _, c := range cols {
		x, y, z := c.Coords()
		vals = append(vals, x, y, z, c.E123)
	}
	return mat.NewMatrix(vals, 4, 4)
}

// Multivector returns m as a full 3D multivector.
func (m Motor3[T]) Multivector() Multivector3[T] {
	return m.Scalar.Multivector().
		Add(m.BiVector.Multivector()).
		Add(m.Pseudo.Multivector())
}
