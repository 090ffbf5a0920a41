package pga

import (
	"github.com/phil-mansfield/athena/num"
)

// BiVector2 is a grade 2 element of the 2D algebra. Bivectors represent
// points: e12 is the homogeneous weight, e20 and e01 the x and y coordinates.
type BiVector2[T num.Float] struct {
	E01 T `json:"e01"`
	E20 T `json:"e20"`
	E12 T `json:"e12"`
}

// Norm2 returns e12², the squared weight of the point a represents.
func (a BiVector2[T]) Norm2() T {
	return a.E12 * a.E12
}

// Norm returns |e12|.
func (a BiVector2[T]) Norm() T {
	return num.Abs(a.E12)
}

// Normalize divides a by its norm. Ideal bivectors are left alone.
func (a *BiVector2[T]) Normalize() {
	norm := a.Norm()
	if norm != 0 {
		a.E01 /= norm
		a.E20 /= norm
		a.E12 /= norm
	}
}

// Normalized returns a normalized copy of a.
func (a BiVector2[T]) Normalized() BiVector2[T] {
	a.Normalize()
	return a
}

// Regressive returns the regressive product of a and b, dual(dual(a) ^
// dual(b)). For two points this is the line through them.
func (a BiVector2[T]) Regressive(b BiVector2[T]) Vector2[T] {
	return a.Dual().OuterVector(b.Dual()).Dual()
}

// Neg returns -a.
func (a BiVector2[T]) Neg() BiVector2[T] {
	return BiVector2[T]{
		E01: -a.E01,
		E20: -a.E20,
		E12: -a.E12,
	}
}

// Add returns a + b.
func (a BiVector2[T]) Add(b BiVector2[T]) BiVector2[T] {
	return BiVector2[T]{
		E01: a.E01 + b.E01,
		E20: a.E20 + b.E20,
		E12: a.E12 + b.E12,
	}
}

// Sub returns a - b.
func (a BiVector2[T]) Sub(b BiVector2[T]) BiVector2[T] {
	return BiVector2[T]{
		E01: a.E01 - b.E01,
		E20: a.E20 - b.E20,
		E12: a.E12 - b.E12,
	}
}

// Scale multiplies every coefficient by k.
func (a BiVector2[T]) Scale(k T) BiVector2[T] {
	return BiVector2[T]{
		E01: a.E01 * k,
		E20: a.E20 * k,
		E12: a.E12 * k,
	}
}

// Div divides every coefficient by k.
func (a BiVector2[T]) Div(k T) BiVector2[T] {
	return BiVector2[T]{
		E01: a.E01 / k,
		E20: a.E20 / k,
		E12: a.E12 / k,
	}
}

// Reverse returns the reversion of a, which negates this grade.
func (a BiVector2[T]) Reverse() BiVector2[T] {
	return a.Neg()
}

// Dual returns the dual of a, a vector of grade 1.
func (a BiVector2[T]) Dual() Vector2[T] {
	return Vector2[T]{
		E0: a.E12,
		E1: a.E20,
		E2: a.E01,
	}
}

// InnerScalar returns the inner product a | b.
func (a BiVector2[T]) InnerScalar(b Scalar2[T]) BiVector2[T] {
	return BiVector2[T]{
		E01: a.E01 * b.S,
		E20: a.E20 * b.S,
		E12: a.E12 * b.S,
	}
}

// OuterScalar returns the outer product a ^ b.
func (a BiVector2[T]) OuterScalar(b Scalar2[T]) BiVector2[T] {
	return BiVector2[T]{
		E01: a.E01 * b.S,
		E20: a.E20 * b.S,
		E12: a.E12 * b.S,
	}
}

// MulScalar returns the geometric product ab.
func (a BiVector2[T]) MulScalar(b Scalar2[T]) BiVector2[T] {
	return BiVector2[T]{
		E01: a.E01 * b.S,
		E20: a.E20 * b.S,
		E12: a.E12 * b.S,
	}
}

// InnerVector returns the inner product a | b.
func (a BiVector2[T]) InnerVector(b Vector2[T]) Vector2[T] {
	return Vector2[T]{
		E0: a.E01*b.E1 - a.E20*b.E2,
		E1: a.E12 * b.E2,
		E2: -a.E12 * b.E1,
	}
}

// OuterVector returns the outer product a ^ b.
func (a BiVector2[T]) OuterVector(b Vector2[T]) Pseudo2[T] {
	return Pseudo2[T]{E012: a.E01*b.E2 + a.E20*b.E1 + a.E12*b.E0}
}

// MulVector returns the geometric product ab split by grade.
func (a BiVector2[T]) MulVector(b Vector2[T]) (Vector2[T], Pseudo2[T]) {
	return Vector2[T]{
		E0: a.E01*b.E1 - a.E20*b.E2,
		E1: a.E12 * b.E2,
		E2: -a.E12 * b.E1,
	}, Pseudo2[T]{E012: a.E01*b.E2 + a.E20*b.E1 + a.E12*b.E0}
}

// InnerBiVector returns the inner product a | b.
func (a BiVector2[T]) InnerBiVector(b BiVector2[T]) Scalar2[T] {
	return Scalar2[T]{S: -a.E12 * b.E12}
}

// MulBiVector returns the geometric product ab split by grade.
func (a BiVector2[T]) MulBiVector(b BiVector2[T]) (Scalar2[T], BiVector2[T]) {
	return Scalar2[T]{S: -a.E12 * b.E12}, BiVector2[T]{
		E01: a.E20*b.E12 - a.E12*b.E20,
		E20: a.E12*b.E01 - a.E01*b.E12,
	}
}

// InnerPseudo returns the inner product a | b.
func (a BiVector2[T]) InnerPseudo(b Pseudo2[T]) Vector2[T] {
	return Vector2[T]{
		E0: -a.E12 * b.E012,
	}
}

// MulPseudo returns the geometric product ab.
func (a BiVector2[T]) MulPseudo(b Pseudo2[T]) Vector2[T] {
	return Vector2[T]{
		E0: -a.E12 * b.E012,
	}
}
