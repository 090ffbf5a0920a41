package pga

import (
	"github.com/phil-mansfield/athena/num"
)

// XBiVector3 is the ideal half of the 3D bivector space, spanned by e01, e02
// and e03. On its own it represents a line at infinity, or the translational
// part of a motor.
type XBiVector3[T num.Float] struct {
	E01 T `json:"e01"`
	E02 T `json:"e02"`
	E03 T `json:"e03"`
}

// BiVector widens a to a full bivector.
func (a XBiVector3[T]) BiVector() BiVector3[T] {
	return BiVector3[T]{E01: a.E01, E02: a.E02, E03: a.E03}
}

// Norm returns the norm of the ideal coefficients. Ideal lines have no
// Euclidean weight, so this is the only useful magnitude they have.
func (a XBiVector3[T]) Norm() T {
	return num.Sqrt(a.E01*a.E01 + a.E02*a.E02 + a.E03*a.E03)
}

// Neg returns -a.
func (a XBiVector3[T]) Neg() XBiVector3[T] {
	return XBiVector3[T]{
		E01: -a.E01,
		E02: -a.E02,
		E03: -a.E03,
	}
}

// Add returns a + b.
func (a XBiVector3[T]) Add(b XBiVector3[T]) XBiVector3[T] {
	return XBiVector3[T]{
		E01: a.E01 + b.E01,
		E02: a.E02 + b.E02,
		E03: a.E03 + b.E03,
	}
}

// Sub returns a - b.
func (a XBiVector3[T]) Sub(b XBiVector3[T]) XBiVector3[T] {
	return XBiVector3[T]{
		E01: a.E01 - b.E01,
		E02: a.E02 - b.E02,
		E03: a.E03 - b.E03,
	}
}

// Scale multiplies every coefficient by k.
func (a XBiVector3[T]) Scale(k T) XBiVector3[T] {
	return XBiVector3[T]{
		E01: a.E01 * k,
		E02: a.E02 * k,
		E03: a.E03 * k,
	}
}

// Div divides every coefficient by k.
func (a XBiVector3[T]) Div(k T) XBiVector3[T] {
	return XBiVector3[T]{
		E01: a.E01 / k,
		E02: a.E02 / k,
		E03: a.E03 / k,
	}
}

// Reverse returns the reversion of a, which negates this grade.
func (a XBiVector3[T]) Reverse() XBiVector3[T] {
	return a.Neg()
}

// Dual returns the dual of a, a ebivector of grade 2.
func (a XBiVector3[T]) Dual() EBiVector3[T] {
	return EBiVector3[T]{
		E12: a.E03,
		E31: a.E02,
		E23: a.E01,
	}
}

// InnerScalar returns the inner product a | b.
func (a XBiVector3[T]) InnerScalar(b Scalar3[T]) XBiVector3[T] {
	return XBiVector3[T]{
		E01: a.E01 * b.S,
		E02: a.E02 * b.S,
		E03: a.E03 * b.S,
	}
}

// OuterScalar returns the outer product a ^ b.
func (a XBiVector3[T]) OuterScalar(b Scalar3[T]) XBiVector3[T] {
	return XBiVector3[T]{
		E01: a.E01 * b.S,
		E02: a.E02 * b.S,
		E03: a.E03 * b.S,
	}
}

// MulScalar returns the geometric product ab.
func (a XBiVector3[T]) MulScalar(b Scalar3[T]) XBiVector3[T] {
	return XBiVector3[T]{
		E01: a.E01 * b.S,
		E02: a.E02 * b.S,
		E03: a.E03 * b.S,
	}
}

// InnerVector returns the inner product a | b.
func (a XBiVector3[T]) InnerVector(b Vector3[T]) Vector3[T] {
	return Vector3[T]{
		E0: a.E01*b.E1 + a.E02*b.E2 + a.E03*b.E3,
	}
}

// OuterVector returns the outer product a ^ b.
func (a XBiVector3[T]) OuterVector(b Vector3[T]) TriVector3[T] {
	return TriVector3[T]{
		E021: a.E02*b.E1 - a.E01*b.E2,
		E013: a.E01*b.E3 - a.E03*b.E1,
		E032: a.E03*b.E2 - a.E02*b.E3,
	}
}

// MulVector returns the geometric product ab split by grade.
func (a XBiVector3[T]) MulVector(b Vector3[T]) (Vector3[T], TriVector3[T]) {
	return Vector3[T]{
		E0: a.E01*b.E1 + a.E02*b.E2 + a.E03*b.E3,
	}, TriVector3[T]{
		E021: a.E02*b.E1 - a.E01*b.E2,
		E013: a.E01*b.E3 - a.E03*b.E1,
		E032: a.E03*b.E2 - a.E02*b.E3,
	}
}

// InnerXBiVector returns the inner product a | b.
func (a XBiVector3[T]) InnerXBiVector(b XBiVector3[T]) Scalar3[T] {
	return Scalar3[T]{}
}

// OuterXBiVector returns the outer product a ^ b.
func (a XBiVector3[T]) OuterXBiVector(b XBiVector3[T]) Pseudo3[T] {
	return Pseudo3[T]{}
}

// MulXBiVector returns the geometric product ab.
func (a XBiVector3[T]) MulXBiVector(b XBiVector3[T]) Scalar3[T] {
	return Scalar3[T]{}
}

// InnerEBiVector returns the inner product a | b.
func (a XBiVector3[T]) InnerEBiVector(b EBiVector3[T]) Scalar3[T] {
	return Scalar3[T]{}
}

// OuterEBiVector returns the outer product a ^ b.
func (a XBiVector3[T]) OuterEBiVector(b EBiVector3[T]) Pseudo3[T] {
	return Pseudo3[T]{E0123: a.E01*b.E23 + a.E02*b.E31 + a.E03*b.E12}
}

// MulEBiVector returns the geometric product ab split by grade.
func (a XBiVector3[T]) MulEBiVector(b EBiVector3[T]) (XBiVector3[T], Pseudo3[T]) {
	return XBiVector3[T]{
		E01: a.E03*b.E31 - a.E02*b.E12,
		E02: a.E01*b.E12 - a.E03*b.E23,
		E03: a.E02*b.E23 - a.E01*b.E31,
	}, Pseudo3[T]{E0123: a.E01*b.E23 + a.E02*b.E31 + a.E03*b.E12}
}

// InnerBiVector returns the inner product a | b.
func (a XBiVector3[T]) InnerBiVector(b BiVector3[T]) Scalar3[T] {
	return Scalar3[T]{}
}

// OuterBiVector returns the outer product a ^ b.
func (a XBiVector3[T]) OuterBiVector(b BiVector3[T]) Pseudo3[T] {
	return Pseudo3[T]{E0123: a.E01*b.E23 + a.E02*b.E31 + a.E03*b.E12}
}

// MulBiVector returns the geometric product ab split by grade.
func (a XBiVector3[T]) MulBiVector(b BiVector3[T]) (XBiVector3[T], Pseudo3[T]) {
	return XBiVector3[T]{
		E01: a.E03*b.E31 - a.E02*b.E12,
		E02: a.E01*b.E12 - a.E03*b.E23,
		E03: a.E02*b.E23 - a.E01*b.E31,
	}, Pseudo3[T]{E0123: a.E01*b.E23 + a.E02*b.E31 + a.E03*b.E12}
}

// InnerTriVector returns the inner product a | b.
func (a XBiVector3[T]) InnerTriVector(b TriVector3[T]) Vector3[T] {
	return Vector3[T]{}
}

// MulTriVector returns the geometric product ab.
func (a XBiVector3[T]) MulTriVector(b TriVector3[T]) TriVector3[T] {
	return TriVector3[T]{
		E021: -a.E03 * b.E123,
		E013: -a.E02 * b.E123,
		E032: -a.E01 * b.E123,
	}
}

// InnerPseudo returns the inner product a | b.
func (a XBiVector3[T]) InnerPseudo(b Pseudo3[T]) BiVector3[T] {
	return BiVector3[T]{}
}

// MulPseudo returns the geometric product ab.
func (a XBiVector3[T]) MulPseudo(b Pseudo3[T]) BiVector3[T] {
	return BiVector3[T]{}
}

// EBiVector3 is the Euclidean half of the 3D bivector space, spanned by e12,
// e31 and e23: the rotational part of a motor, or a line through the origin.
type EBiVector3[T num.Float] struct {
	E12 T `json:"e12"`
	E31 T `json:"e31"`
	E23 T `json:"e23"`
}

// BiVector widens a to a full bivector.
func (a EBiVector3[T]) BiVector() BiVector3[T] {
	return BiVector3[T]{E12: a.E12, E31: a.E31, E23: a.E23}
}

func (a EBiVector3[T]) Norm2() T {
	return a.E12*a.E12 + a.E31*a.E31 + a.E23*a.E23
}

func (a EBiVector3[T]) Norm() T {
	return num.Sqrt(a.Norm2())
}

// Neg returns -a.
func (a EBiVector3[T]) Neg() EBiVector3[T] {
	return EBiVector3[T]{
		E12: -a.E12,
		E31: -a.E31,
		E23: -a.E23,
	}
}

// Add returns a + b.
func (a EBiVector3[T]) Add(b EBiVector3[T]) EBiVector3[T] {
	return EBiVector3[T]{
		E12: a.E12 + b.E12,
		E31: a.E31 + b.E31,
		E23: a.E23 + b.E23,
	}
}

// Sub returns a - b.
func (a EBiVector3[T]) Sub(b EBiVector3[T]) EBiVector3[T] {
	return EBiVector3[T]{
		E12: a.E12 - b.E12,
		E31: a.E31 - b.E31,
		E23: a.E23 - b.E23,
	}
}

// Scale multiplies every coefficient by k.
func (a EBiVector3[T]) Scale(k T) EBiVector3[T] {
	return EBiVector3[T]{
		E12: a.E12 * k,
		E31: a.E31 * k,
		E23: a.E23 * k,
	}
}

// Div divides every coefficient by k.
func (a EBiVector3[T]) Div(k T) EBiVector3[T] {
	return EBiVector3[T]{
		E12: a.E12 / k,
		E31: a.E31 / k,
		E23: a.E23 / k,
	}
}

// Reverse returns the reversion of a, which negates this grade.
func (a EBiVector3[T]) Reverse() EBiVector3[T] {
	return a.Neg()
}

// Dual returns the dual of a, a xbivector of grade 2.
func (a EBiVector3[T]) Dual() XBiVector3[T] {
	return XBiVector3[T]{
		E01: a.E23,
		E02: a.E31,
		E03: a.E12,
	}
}

// InnerScalar returns the inner product a | b.
func (a EBiVector3[T]) InnerScalar(b Scalar3[T]) EBiVector3[T] {
	return EBiVector3[T]{
		E12: a.E12 * b.S,
		E31: a.E31 * b.S,
		E23: a.E23 * b.S,
	}
}

// OuterScalar returns the outer product a ^ b.
func (a EBiVector3[T]) OuterScalar(b Scalar3[T]) EBiVector3[T] {
	return EBiVector3[T]{
		E12: a.E12 * b.S,
		E31: a.E31 * b.S,
		E23: a.E23 * b.S,
	}
}

// MulScalar returns the geometric product ab.
func (a EBiVector3[T]) MulScalar(b Scalar3[T]) EBiVector3[T] {
	return EBiVector3[T]{
		E12: a.E12 * b.S,
		E31: a.E31 * b.S,
		E23: a.E23 * b.S,
	}
}

// InnerVector returns the inner product a | b.
func (a EBiVector3[T]) InnerVector(b Vector3[T]) Vector3[T] {
	return Vector3[T]{
		E1: a.E12*b.E2 - a.E31*b.E3,
		E2: a.E23*b.E3 - a.E12*b.E1,
		E3: a.E31*b.E1 - a.E23*b.E2,
	}
}

// OuterVector returns the outer product a ^ b.
func (a EBiVector3[T]) OuterVector(b Vector3[T]) TriVector3[T] {
	return TriVector3[T]{
		E021: -a.E12 * b.E0,
		E013: -a.E31 * b.E0,
		E032: -a.E23 * b.E0,
		E123: a.E12*b.E3 + a.E31*b.E2 + a.E23*b.E1,
	}
}

// MulVector returns the geometric product ab split by grade.
func (a EBiVector3[T]) MulVector(b Vector3[T]) (Vector3[T], TriVector3[T]) {
	return Vector3[T]{
		E1: a.E12*b.E2 - a.E31*b.E3,
		E2: a.E23*b.E3 - a.E12*b.E1,
		E3: a.E31*b.E1 - a.E23*b.E2,
	}, TriVector3[T]{
		E021: -a.E12 * b.E0,
		E013: -a.E31 * b.E0,
		E032: -a.E23 * b.E0,
		E123: a.E12*b.E3 + a.E31*b.E2 + a.E23*b.E1,
	}
}

// InnerXBiVector returns the inner product a | b.
func (a EBiVector3[T]) InnerXBiVector(b XBiVector3[T]) Scalar3[T] {
	return Scalar3[T]{}
}

// OuterXBiVector returns the outer product a ^ b.
func (a EBiVector3[T]) OuterXBiVector(b XBiVector3[T]) Pseudo3[T] {
	return Pseudo3[T]{E0123: a.E12*b.E03 + a.E31*b.E02 + a.E23*b.E01}
}

// MulXBiVector returns the geometric product ab split by grade.
func (a EBiVector3[T]) MulXBiVector(b XBiVector3[T]) (XBiVector3[T], Pseudo3[T]) {
	return XBiVector3[T]{
		E01: a.E12*b.E02 - a.E31*b.E03,
		E02: a.E23*b.E03 - a.E12*b.E01,
		E03: a.E31*b.E01 - a.E23*b.E02,
	}, Pseudo3[T]{E0123: a.E12*b.E03 + a.E31*b.E02 + a.E23*b.E01}
}

// InnerEBiVector returns the inner product a | b.
func (a EBiVector3[T]) InnerEBiVector(b EBiVector3[T]) Scalar3[T] {
	return Scalar3[T]{S: -a.E12*b.E12 - a.E31*b.E31 - a.E23*b.E23}
}

// OuterEBiVector returns the outer product a ^ b.
func (a EBiVector3[T]) OuterEBiVector(b EBiVector3[T]) Pseudo3[T] {
	return Pseudo3[T]{}
}

// MulEBiVector returns the geometric product ab split by grade.
func (a EBiVector3[T]) MulEBiVector(b EBiVector3[T]) (Scalar3[T], EBiVector3[T]) {
	return Scalar3[T]{S: -a.E12*b.E12 - a.E31*b.E31 - a.E23*b.E23}, EBiVector3[T]{
		E12: a.E31*b.E23 - a.E23*b.E31,
		E31: a.E23*b.E12 - a.E12*b.E23,
		E23: a.E12*b.E31 - a.E31*b.E12,
	}
}

// InnerBiVector returns the inner product a | b.
func (a EBiVector3[T]) InnerBiVector(b BiVector3[T]) Scalar3[T] {
	return Scalar3[T]{S: -a.E12*b.E12 - a.E31*b.E31 - a.E23*b.E23}
}

// OuterBiVector returns the outer product a ^ b.
func (a EBiVector3[T]) OuterBiVector(b BiVector3[T]) Pseudo3[T] {
	return Pseudo3[T]{E0123: a.E12*b.E03 + a.E31*b.E02 + a.E23*b.E01}
}

// MulBiVector returns the geometric product ab split by grade.
func (a EBiVector3[T]) MulBiVector(b BiVector3[T]) (Scalar3[T], BiVector3[T], Pseudo3[T]) {
	return Scalar3[T]{S: -a.E12*b.E12 - a.E31*b.E31 - a.E23*b.E23}, BiVector3[T]{
		E01: a.E12*b.E02 - a.E31*b.E03,
		E02: a.E23*b.E03 - a.E12*b.E01,
		E03: a.E31*b.E01 - a.E23*b.E02,
		E12: a.E31*b.E23 - a.E23*b.E31,
		E31: a.E23*b.E12 - a.E12*b.E23,
		E23: a.E12*b.E31 - a.E31*b.E12,
	}, Pseudo3[T]{E0123: a.E12*b.E03 + a.E31*b.E02 + a.E23*b.E01}
}

// InnerTriVector returns the inner product a | b.
func (a EBiVector3[T]) InnerTriVector(b TriVector3[T]) Vector3[T] {
	return Vector3[T]{
		E0: a.E12*b.E021 + a.E31*b.E013 + a.E23*b.E032,
		E1: -a.E23 * b.E123,
		E2: -a.E31 * b.E123,
		E3: -a.E12 * b.E123,
	}
}

// MulTriVector returns the geometric product ab split by grade.
func (a EBiVector3[T]) MulTriVector(b TriVector3[T]) (Vector3[T], TriVector3[T]) {
	return Vector3[T]{
		E0: a.E12*b.E021 + a.E31*b.E013 + a.E23*b.E032,
		E1: -a.E23 * b.E123,
		E2: -a.E31 * b.E123,
		E3: -a.E12 * b.E123,
	}, TriVector3[T]{
		E021: a.E31*b.E032 - a.E23*b.E013,
		E013: a.E23*b.E021 - a.E12*b.E032,
		E032: a.E12*b.E013 - a.E31*b.E021,
	}
}

// InnerPseudo returns the inner product a | b.
func (a EBiVector3[T]) InnerPseudo(b Pseudo3[T]) XBiVector3[T] {
	return XBiVector3[T]{
		E01: -a.E23 * b.E0123,
		E02: -a.E31 * b.E0123,
		E03: -a.E12 * b.E0123,
	}
}

// MulPseudo returns the geometric product ab.
func (a EBiVector3[T]) MulPseudo(b Pseudo3[T]) XBiVector3[T] {
	return XBiVector3[T]{
		E01: -a.E23 * b.E0123,
		E02: -a.E31 * b.E0123,
		E03: -a.E12 * b.E0123,
	}
}

// BiVector3 is a full grade 2 element of the 3D algebra, the direct sum of
// XBiVector3 and EBiVector3. Bivectors represent lines.
type BiVector3[T num.Float] struct {
	E01 T `json:"e01"`
	E02 T `json:"e02"`
	E03 T `json:"e03"`
	E12 T `json:"e12"`
	E31 T `json:"e31"`
	E23 T `json:"e23"`
}

// NewBiVector3 creates a bivector from its coefficients.
func NewBiVector3[T num.Float](e01, e02, e03, e12, e31, e23 T) BiVector3[T] {
	return BiVector3[T]{E01: e01, E02: e02, E03: e03, E12: e12, E31: e31, E23: e23}
}

// X returns the ideal half of a.
func (a BiVector3[T]) X() XBiVector3[T] {
	return XBiVector3[T]{E01: a.E01, E02: a.E02, E03: a.E03}
}

// E returns the Euclidean half of a.
func (a BiVector3[T]) E() EBiVector3[T] {
	return EBiVector3[T]{E12: a.E12, E31: a.E31, E23: a.E23}
}

// Norm2 returns the squared norm of the Euclidean half of a.
func (a BiVector3[T]) Norm2() T {
	return a.E12*a.E12 + a.E31*a.E31 + a.E23*a.E23
}

func (a BiVector3[T]) Norm() T {
	return num.Sqrt(a.Norm2())
}

// Normalize divides a by its Euclidean norm. Ideal lines are left alone.
func (a *BiVector3[T]) Normalize() {
	norm2 := a.Norm2()
	if norm2 != 0 {
		*a = a.Div(num.Sqrt(norm2))
	}
}

// Normalized returns a normalized copy of a.
func (a BiVector3[T]) Normalized() BiVector3[T] {
	a.Normalize()
	return a
}

// Neg returns -a.
func (a BiVector3[T]) Neg() BiVector3[T] {
	return BiVector3[T]{
		E01: -a.E01,
		E02: -a.E02,
		E03: -a.E03,
		E12: -a.E12,
		E31: -a.E31,
		E23: -a.E23,
	}
}

// Add returns a + b.
func (a BiVector3[T]) Add(b BiVector3[T]) BiVector3[T] {
	return BiVector3[T]{
		E01: a.E01 + b.E01,
		E02: a.E02 + b.E02,
		E03: a.E03 + b.E03,
		E12: a.E12 + b.E12,
		E31: a.E31 + b.E31,
		E23: a.E23 + b.E23,
	}
}

// Sub returns a - b.
func (a BiVector3[T]) Sub(b BiVector3[T]) BiVector3[T] {
	return BiVector3[T]{
		E01: a.E01 - b.E01,
		E02: a.E02 - b.E02,
		E03: a.E03 - b.E03,
		E12: a.E12 - b.E12,
		E31: a.E31 - b.E31,
		E23: a.E23 - b.E23,
	}
}

// Scale multiplies every coefficient by k.
func (a BiVector3[T]) Scale(k T) BiVector3[T] {
	return BiVector3[T]{
		E01: a.E01 * k,
		E02: a.E02 * k,
		E03: a.E03 * k,
		E12: a.E12 * k,
		E31: a.E31 * k,
		E23: a.E23 * k,
	}
}

// Div divides every coefficient by k.
func (a BiVector3[T]) Div(k T) BiVector3[T] {
	return BiVector3[T]{
		E01: a.E01 / k,
		E02: a.E02 / k,
		E03: a.E03 / k,
		E12: a.E12 / k,
		E31: a.E31 / k,
		E23: a.E23 / k,
	}
}

// Reverse returns the reversion of a, which negates this grade.
func (a BiVector3[T]) Reverse() BiVector3[T] {
	return a.Neg()
}

// Dual returns the dual of a, a bivector of grade 2.
func (a BiVector3[T]) Dual() BiVector3[T] {
	return BiVector3[T]{
		E01: a.E23,
		E02: a.E31,
		E03: a.E12,
		E12: a.E03,
		E31: a.E02,
		E23: a.E01,
	}
}

// InnerScalar returns the inner product a | b.
func (a BiVector3[T]) InnerScalar(b Scalar3[T]) BiVector3[T] {
	return BiVector3[T]{
		E01: a.E01 * b.S,
		E02: a.E02 * b.S,
		E03: a.E03 * b.S,
		E12: a.E12 * b.S,
		E31: a.E31 * b.S,
		E23: a.E23 * b.S,
	}
}

// OuterScalar returns the outer product a ^ b.
func (a BiVector3[T]) OuterScalar(b Scalar3[T]) BiVector3[T] {
	return BiVector3[T]{
		E01: a.E01 * b.S,
		E02: a.E02 * b.S,
		E03: a.E03 * b.S,
		E12: a.E12 * b.S,
		E31: a.E31 * b.S,
		E23: a.E23 * b.S,
	}
}

// MulScalar returns the geometric product ab.
func (a BiVector3[T]) MulScalar(b Scalar3[T]) BiVector3[T] {
	return BiVector3[T]{
		E01: a.E01 * b.S,
		E02: a.E02 * b.S,
		E03: a.E03 * b.S,
		E12: a.E12 * b.S,
		E31: a.E31 * b.S,
		E23: a.E23 * b.S,
	}
}

// InnerVector returns the inner product a | b.
func (a BiVector3[T]) InnerVector(b Vector3[T]) Vector3[T] {
	return Vector3[T]{
		E0: a.E01*b.E1 + a.E02*b.E2 + a.E03*b.E3,
		E1: a.E12*b.E2 - a.E31*b.E3,
		E2: a.E23*b.E3 - a.E12*b.E1,
		E3: a.E31*b.E1 - a.E23*b.E2,
	}
}

// OuterVector returns the outer product a ^ b.
func (a BiVector3[T]) OuterVector(b Vector3[T]) TriVector3[T] {
	return TriVector3[T]{
		E021: a.E02*b.E1 - a.E01*b.E2 - a.E12*b.E0,
		E013: a.E01*b.E3 - a.E03*b.E1 - a.E31*b.E0,
		E032: a.E03*b.E2 - a.E02*b.E3 - a.E23*b.E0,
		E123: a.E12*b.E3 + a.E31*b.E2 + a.E23*b.E1,
	}
}

// MulVector returns the geometric product ab split by grade.
func (a BiVector3[T]) MulVector(b Vector3[T]) (Vector3[T], TriVector3[T]) {
	return Vector3[T]{
		E0: a.E01*b.E1 + a.E02*b.E2 + a.E03*b.E3,
		E1: a.E12*b.E2 - a.E31*b.E3,
		E2: a.E23*b.E3 - a.E12*b.E1,
		E3: a.E31*b.E1 - a.E23*b.E2,
	}, TriVector3[T]{
		E021: a.E02*b.E1 - a.E01*b.E2 - a.E12*b.E0,
		E013: a.E01*b.E3 - a.E03*b.E1 - a.E31*b.E0,
		E032: a.E03*b.E2 - a.E02*b.E3 - a.E23*b.E0,
		E123: a.E12*b.E3 + a.E31*b.E2 + a.E23*b.E1,
	}
}

// InnerXBiVector returns the inner product a | b.
func (a BiVector3[T]) InnerXBiVector(b XBiVector3[T]) Scalar3[T] {
	return Scalar3[T]{}
}

// OuterXBiVector returns the outer product a ^ b.
func (a BiVector3[T]) OuterXBiVector(b XBiVector3[T]) Pseudo3[T] {
	return Pseudo3[T]{E0123: a.E12*b.E03 + a.E31*b.E02 + a.E23*b.E01}
}

// MulXBiVector returns the geometric product ab split by grade.
func (a BiVector3[T]) MulXBiVector(b XBiVector3[T]) (XBiVector3[T], Pseudo3[T]) {
	return XBiVector3[T]{
		E01: a.E12*b.E02 - a.E31*b.E03,
		E02: a.E23*b.E03 - a.E12*b.E01,
		E03: a.E31*b.E01 - a.E23*b.E02,
	}, Pseudo3[T]{E0123: a.E12*b.E03 + a.E31*b.E02 + a.E23*b.E01}
}

// InnerEBiVector returns the inner product a | b.
func (a BiVector3[T]) InnerEBiVector(b EBiVector3[T]) Scalar3[T] {
	return Scalar3[T]{S: -a.E12*b.E12 - a.E31*b.E31 - a.E23*b.E23}
}

// OuterEBiVector returns the outer product a ^ b.
func (a BiVector3[T]) OuterEBiVector(b EBiVector3[T]) Pseudo3[T] {
	return Pseudo3[T]{E0123: a.E01*b.E23 + a.E02*b.E31 + a.E03*b.E12}
}

// MulEBiVector returns the geometric product ab split by grade.
func (a BiVector3[T]) MulEBiVector(b EBiVector3[T]) (Scalar3[T], BiVector3[T], Pseudo3[T]) {
	return Scalar3[T]{S: -a.E12*b.E12 - a.E31*b.E31 - a.E23*b.E23}, BiVector3[T]{
		E01: a.E03*b.E31 - a.E02*b.E12,
		E02: a.E01*b.E12 - a.E03*b.E23,
		E03: a.E02*b.E23 - a.E01*b.E31,
		E12: a.E31*b.E23 - a.E23*b.E31,
		E31: a.E23*b.E12 - a.E12*b.E23,
		E23: a.E12*b.E31 - a.E31*b.E12,
	}, Pseudo3[T]{E0123: a.E01*b.E23 + a.E02*b.E31 + a.E03*b.E12}
}

// InnerBiVector returns the inner product a | b.
func (a BiVector3[T]) InnerBiVector(b BiVector3[T]) Scalar3[T] {
	return Scalar3[T]{S: -a.E12*b.E12 - a.E31*b.E31 - a.E23*b.E23}
}

// OuterBiVector returns the outer product a ^ b.
func (a BiVector3[T]) OuterBiVector(b BiVector3[T]) Pseudo3[T] {
	return Pseudo3[T]{E0123: a.E01*b.E23 + a.E02*b.E31 + a.E03*b.E12 + a.E12*b.E03 + a.E31*b.E02 + a.E23*b.E01}
}

// MulBiVector returns the geometric product ab split by grade.
func (a BiVector3[T]) MulBiVector(b BiVector3[T]) (Scalar3[T], BiVector3[T], Pseudo3[T]) {
	return Scalar3[T]{S: -a.E12*b.E12 - a.E31*b.E31 - a.E23*b.E23}, BiVector3[T]{
		E01: a.E03*b.E31 + a.E12*b.E02 - a.E02*b.E12 - a.E31*b.E03,
		E02: a.E01*b.E12 + a.E23*b.E03 - a.E03*b.E23 - a.E12*b.E01,
		E03: a.E02*b.E23 + a.E31*b.E01 - a.E01*b.E31 - a.E23*b.E02,
		E12: a.E31*b.E23 - a.E23*b.E31,
		E31: a.E23*b.E12 - a.E12*b.E23,
		E23: a.E12*b.E31 - a.E31*b.E12,
	}, Pseudo3[T]{E0123: a.E01*b.E23 + a.E02*b.E31 + a.E03*b.E12 + a.E12*b.E03 + a.E31*b.E02 + a.E23*b.E01}
}

// InnerTriVector returns the inner product a | b.
func (a BiVector3[T]) InnerTriVector(b TriVector3[T]) Vector3[T] {
	return Vector3[T]{
		E0: a.E12*b.E021 + a.E31*b.E013 + a.E23*b.E032,
		E1: -a.E23 * b.E123,
		E2: -a.E31 * b.E123,
		E3: -a.E12 * b.E123,
	}
}

// MulTriVector returns the geometric product ab split by grade.
func (a BiVector3[T]) MulTriVector(b TriVector3[T]) (Vector3[T], TriVector3[T]) {
	return Vector3[T]{
		E0: a.E12*b.E021 + a.E31*b.E013 + a.E23*b.E032,
		E1: -a.E23 * b.E123,
		E2: -a.E31 * b.E123,
		E3: -a.E12 * b.E123,
	}, TriVector3[T]{
		E021: a.E31*b.E032 - a.E03*b.E123 - a.E23*b.E013,
		E013: a.E23*b.E021 - a.E02*b.E123 - a.E12*b.E032,
		E032: a.E12*b.E013 - a.E01*b.E123 - a.E31*b.E021,
	}
}

// InnerPseudo returns the inner product a | b.
func (a BiVector3[T]) InnerPseudo(b Pseudo3[T]) XBiVector3[T] {
	return XBiVector3[T]{
		E01: -a.E23 * b.E0123,
		E02: -a.E31 * b.E0123,
		E03: -a.E12 * b.E0123,
	}
}

// MulPseudo returns the geometric product ab.
func (a BiVector3[T]) MulPseudo(b Pseudo3[T]) XBiVector3[T] {
	return XBiVector3[T]{
		E01: -a.E23 * b.E0123,
		E02: -a.E31 * b.E0123,
		E03: -a.E12 * b.E0123,
	}
}
