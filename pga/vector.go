package pga

import (
	"github.com/phil-mansfield/athena/num"
)

// Vector2 is a grade 1 element of the 2D algebra. Vectors represent lines: e0
// is the distance term and e1, e2 are the normal.
type Vector2[T num.Float] struct {
	E0 T `json:"e0"`
	E1 T `json:"e1"`
	E2 T `json:"e2"`
}

// Norm2 returns the squared Euclidean norm, e1² + e2².
func (a Vector2[T]) Norm2() T {
	return a.E1*a.E1 + a.E2*a.E2
}

// Norm returns the Euclidean norm of a.
func (a Vector2[T]) Norm() T {
	return num.Sqrt(a.Norm2())
}

// Normalize scales a to unit norm. Vectors with a zero norm are left alone.
func (a *Vector2[T]) Normalize() {
	norm2 := a.Norm2()
	if norm2 != 0 {
		norm := num.Sqrt(norm2)
		a.E0 /= norm
		a.E1 /= norm
		a.E2 /= norm
	}
}

// Normalized returns a copy of a with unit norm.
func (a Vector2[T]) Normalized() Vector2[T] {
	a.Normalize()
	return a
}

// Neg returns -a.
func (a Vector2[T]) Neg() Vector2[T] {
	return Vector2[T]{
		E0: -a.E0,
		E1: -a.E1,
		E2: -a.E2,
	}
}

// Add returns a + b.
func (a Vector2[T]) Add(b Vector2[T]) Vector2[T] {
	return Vector2[T]{
		E0: a.E0 + b.E0,
		E1: a.E1 + b.E1,
		E2: a.E2 + b.E2,
	}
}

// Sub returns a - b.
func (a Vector2[T]) Sub(b Vector2[T]) Vector2[T] {
	return Vector2[T]{
		E0: a.E0 - b.E0,
		E1: a.E1 - b.E1,
		E2: a.E2 - b.E2,
	}
}

// Scale multiplies every coefficient by k.
func (a Vector2[T]) Scale(k T) Vector2[T] {
	return Vector2[T]{
		E0: a.E0 * k,
		E1: a.E1 * k,
		E2: a.E2 * k,
	}
}

// Div divides every coefficient by k.
func (a Vector2[T]) Div(k T) Vector2[T] {
	return Vector2[T]{
		E0: a.E0 / k,
		E1: a.E1 / k,
		E2: a.E2 / k,
	}
}

// Reverse returns the reversion of a, which leaves this grade unchanged.
func (a Vector2[T]) Reverse() Vector2[T] {
	return a
}

// Dual returns the dual of a, a bivector of grade 2.
func (a Vector2[T]) Dual() BiVector2[T] {
	return BiVector2[T]{
		E01: a.E2,
		E20: a.E1,
		E12: a.E0,
	}
}

// InnerScalar returns the inner product a | b.
func (a Vector2[T]) InnerScalar(b Scalar2[T]) Vector2[T] {
	return Vector2[T]{
		E0: a.E0 * b.S,
		E1: a.E1 * b.S,
		E2: a.E2 * b.S,
	}
}

// OuterScalar returns the outer product a ^ b.
func (a Vector2[T]) OuterScalar(b Scalar2[T]) Vector2[T] {
	return Vector2[T]{
		E0: a.E0 * b.S,
		E1: a.E1 * b.S,
		E2: a.E2 * b.S,
	}
}

// MulScalar returns the geometric product ab.
func (a Vector2[T]) MulScalar(b Scalar2[T]) Vector2[T] {
	return Vector2[T]{
		E0: a.E0 * b.S,
		E1: a.E1 * b.S,
		E2: a.E2 * b.S,
	}
}

// InnerVector returns the inner product a | b.
func (a Vector2[T]) InnerVector(b Vector2[T]) Scalar2[T] {
	return Scalar2[T]{S: a.E1*b.E1 + a.E2*b.E2}
}

// OuterVector returns the outer product a ^ b.
func (a Vector2[T]) OuterVector(b Vector2[T]) BiVector2[T] {
	return BiVector2[T]{
		E01: a.E0*b.E1 - a.E1*b.E0,
		E20: a.E2*b.E0 - a.E0*b.E2,
		E12: a.E1*b.E2 - a.E2*b.E1,
	}
}

// MulVector returns the geometric product ab split by grade.
func (a Vector2[T]) MulVector(b Vector2[T]) (Scalar2[T], BiVector2[T]) {
	return Scalar2[T]{S: a.E1*b.E1 + a.E2*b.E2}, BiVector2[T]{
		E01: a.E0*b.E1 - a.E1*b.E0,
		E20: a.E2*b.E0 - a.E0*b.E2,
		E12: a.E1*b.E2 - a.E2*b.E1,
	}
}

// InnerBiVector returns the inner product a | b.
func (a Vector2[T]) InnerBiVector(b BiVector2[T]) Vector2[T] {
	return Vector2[T]{
		E0: a.E2*b.E20 - a.E1*b.E01,
		E1: -a.E2 * b.E12,
		E2: a.E1 * b.E12,
	}
}

// OuterBiVector returns the outer product a ^ b.
func (a Vector2[T]) OuterBiVector(b BiVector2[T]) Pseudo2[T] {
	return Pseudo2[T]{E012: a.E0*b.E12 + a.E1*b.E20 + a.E2*b.E01}
}

// MulBiVector returns the geometric product ab split by grade.
func (a Vector2[T]) MulBiVector(b BiVector2[T]) (Vector2[T], Pseudo2[T]) {
	return Vector2[T]{
		E0: a.E2*b.E20 - a.E1*b.E01,
		E1: -a.E2 * b.E12,
		E2: a.E1 * b.E12,
	}, Pseudo2[T]{E012: a.E0*b.E12 + a.E1*b.E20 + a.E2*b.E01}
}

// InnerPseudo returns the inner product a | b.
func (a Vector2[T]) InnerPseudo(b Pseudo2[T]) BiVector2[T] {
	return BiVector2[T]{
		E01: a.E2 * b.E012,
		E20: a.E1 * b.E012,
	}
}

// MulPseudo returns the geometric product ab.
func (a Vector2[T]) MulPseudo(b Pseudo2[T]) BiVector2[T] {
	return BiVector2[T]{
		E01: a.E2 * b.E012,
		E20: a.E1 * b.E012,
	}
}

// Vector3 is a grade 1 element of the 3D algebra. Vectors represent planes: e0
// is the distance term and e1, e2, e3 are the normal.
type Vector3[T num.Float] struct {
	E0 T `json:"e0"`
	E1 T `json:"e1"`
	E2 T `json:"e2"`
	E3 T `json:"e3"`
}

func (a Vector3[T]) Norm2() T {
	return a.E1*a.E1 + a.E2*a.E2 + a.E3*a.E3
}

func (a Vector3[T]) Norm() T {
	return num.Sqrt(a.Norm2())
}

// Normalize scales a so that its Euclidean part has unit norm. Vectors with
// a zero norm are left alone.
func (a *Vector3[T]) Normalize() {
	norm2 := a.Norm2()
	if norm2 != 0 {
		norm := num.Sqrt(norm2)
		a.E0 /= norm
		a.E1 /= norm
		a.E2 /= norm
		a.E3 /= norm
	}
}

func (a Vector3[T]) Normalized() Vector3[T] {
	a.Normalize()
	return a
}

// Neg returns -a.
func (a Vector3[T]) Neg() Vector3[T] {
	return Vector3[T]{
		E0: -a.E0,
		E1: -a.E1,
		E2: -a.E2,
		E3: -a.E3,
	}
}

// Add returns a + b.
func (a Vector3[T]) Add(b Vector3[T]) Vector3[T] {
	return Vector3[T]{
		E0: a.E0 + b.E0,
		E1: a.E1 + b.E1,
		E2: a.E2 + b.E2,
		E3: a.E3 + b.E3,
	}
}

// Sub returns a - b.
func (a Vector3[T]) Sub(b Vector3[T]) Vector3[T] {
	return Vector3[T]{
		E0: a.E0 - b.E0,
		E1: a.E1 - b.E1,
		E2: a.E2 - b.E2,
		E3: a.E3 - b.E3,
	}
}

// Scale multiplies every coefficient by k.
func (a Vector3[T]) Scale(k T) Vector3[T] {
	return Vector3[T]{
		E0: a.E0 * k,
		E1: a.E1 * k,
		E2: a.E2 * k,
		E3: a.E3 * k,
	}
}

// Div divides every coefficient by k.
func (a Vector3[T]) Div(k T) Vector3[T] {
	return Vector3[T]{
		E0: a.E0 / k,
		E1: a.E1 / k,
		E2: a.E2 / k,
		E3: a.E3 / k,
	}
}

// Reverse returns the reversion of a, which leaves this grade unchanged.
func (a Vector3[T]) Reverse() Vector3[T] {
	return a
}

// Dual returns the dual of a, a trivector of grade 3.
func (a Vector3[T]) Dual() TriVector3[T] {
	return TriVector3[T]{
		E021: a.E3,
		E013: a.E2,
		E032: a.E1,
		E123: a.E0,
	}
}

// InnerScalar returns the inner product a | b.
func (a Vector3[T]) InnerScalar(b Scalar3[T]) Vector3[T] {
	return Vector3[T]{
		E0: a.E0 * b.S,
		E1: a.E1 * b.S,
		E2: a.E2 * b.S,
		E3: a.E3 * b.S,
	}
}

// OuterScalar returns the outer product a ^ b.
func (a Vector3[T]) OuterScalar(b Scalar3[T]) Vector3[T] {
	return Vector3[T]{
		E0: a.E0 * b.S,
		E1: a.E1 * b.S,
		E2: a.E2 * b.S,
		E3: a.E3 * b.S,
	}
}

// MulScalar returns the geometric product ab.
func (a Vector3[T]) MulScalar(b Scalar3[T]) Vector3[T] {
	return Vector3[T]{
		E0: a.E0 * b.S,
		E1: a.E1 * b.S,
		E2: a.E2 * b.S,
		E3: a.E3 * b.S,
	}
}

// InnerVector returns the inner product a | b.
func (a Vector3[T]) InnerVector(b Vector3[T]) Scalar3[T] {
	return Scalar3[T]{S: a.E1*b.E1 + a.E2*b.E2 + a.E3*b.E3}
}

// OuterVector returns the outer product a ^ b.
func (a Vector3[T]) OuterVector(b Vector3[T]) BiVector3[T] {
	return BiVector3[T]{
		E01: a.E0*b.E1 - a.E1*b.E0,
		E02: a.E0*b.E2 - a.E2*b.E0,
		E03: a.E0*b.E3 - a.E3*b.E0,
		E12: a.E1*b.E2 - a.E2*b.E1,
		E31: a.E3*b.E1 - a.E1*b.E3,
		E23: a.E2*b.E3 - a.E3*b.E2,
	}
}

// MulVector returns the geometric product ab split by grade.
func (a Vector3[T]) MulVector(b Vector3[T]) (Scalar3[T], BiVector3[T]) {
	return Scalar3[T]{S: a.E1*b.E1 + a.E2*b.E2 + a.E3*b.E3}, BiVector3[T]{
		E01: a.E0*b.E1 - a.E1*b.E0,
		E02: a.E0*b.E2 - a.E2*b.E0,
		E03: a.E0*b.E3 - a.E3*b.E0,
		E12: a.E1*b.E2 - a.E2*b.E1,
		E31: a.E3*b.E1 - a.E1*b.E3,
		E23: a.E2*b.E3 - a.E3*b.E2,
	}
}

// InnerXBiVector returns the inner product a | b.
func (a Vector3[T]) InnerXBiVector(b XBiVector3[T]) Vector3[T] {
	return Vector3[T]{
		E0: -a.E1*b.E01 - a.E2*b.E02 - a.E3*b.E03,
	}
}

// OuterXBiVector returns the outer product a ^ b.
func (a Vector3[T]) OuterXBiVector(b XBiVector3[T]) TriVector3[T] {
	return TriVector3[T]{
		E021: a.E1*b.E02 - a.E2*b.E01,
		E013: a.E3*b.E01 - a.E1*b.E03,
		E032: a.E2*b.E03 - a.E3*b.E02,
	}
}

// MulXBiVector returns the geometric product ab split by grade.
func (a Vector3[T]) MulXBiVector(b XBiVector3[T]) (Vector3[T], TriVector3[T]) {
	return Vector3[T]{
		E0: -a.E1*b.E01 - a.E2*b.E02 - a.E3*b.E03,
	}, TriVector3[T]{
		E021: a.E1*b.E02 - a.E2*b.E01,
		E013: a.E3*b.E01 - a.E1*b.E03,
		E032: a.E2*b.E03 - a.E3*b.E02,
	}
}

// InnerEBiVector returns the inner product a | b.
func (a Vector3[T]) InnerEBiVector(b EBiVector3[T]) Vector3[T] {
	return Vector3[T]{
		E1: a.E3*b.E31 - a.E2*b.E12,
		E2: a.E1*b.E12 - a.E3*b.E23,
		E3: a.E2*b.E23 - a.E1*b.E31,
	}
}

// OuterEBiVector returns the outer product a ^ b.
func (a Vector3[T]) OuterEBiVector(b EBiVector3[T]) TriVector3[T] {
	return TriVector3[T]{
		E021: -a.E0 * b.E12,
		E013: -a.E0 * b.E31,
		E032: -a.E0 * b.E23,
		E123: a.E1*b.E23 + a.E2*b.E31 + a.E3*b.E12,
	}
}

// MulEBiVector returns the geometric product ab split by grade.
func (a Vector3[T]) MulEBiVector(b EBiVector3[T]) (Vector3[T], TriVector3[T]) {
	return Vector3[T]{
		E1: a.E3*b.E31 - a.E2*b.E12,
		E2: a.E1*b.E12 - a.E3*b.E23,
		E3: a.E2*b.E23 - a.E1*b.E31,
	}, TriVector3[T]{
		E021: -a.E0 * b.E12,
		E013: -a.E0 * b.E31,
		E032: -a.E0 * b.E23,
		E123: a.E1*b.E23 + a.E2*b.E31 + a.E3*b.E12,
	}
}

// InnerBiVector returns the inner product a | b.
func (a Vector3[T]) InnerBiVector(b BiVector3[T]) Vector3[T] {
	return Vector3[T]{
		E0: -a.E1*b.E01 - a.E2*b.E02 - a.E3*b.E03,
		E1: a.E3*b.E31 - a.E2*b.E12,
		E2: a.E1*b.E12 - a.E3*b.E23,
		E3: a.E2*b.E23 - a.E1*b.E31,
	}
}

// OuterBiVector returns the outer product a ^ b.
func (a Vector3[T]) OuterBiVector(b BiVector3[T]) TriVector3[T] {
	return TriVector3[T]{
		E021: a.E1*b.E02 - a.E0*b.E12 - a.E2*b.E01,
		E013: a.E3*b.E01 - a.E0*b.E31 - a.E1*b.E03,
		E032: a.E2*b.E03 - a.E0*b.E23 - a.E3*b.E02,
		E123: a.E1*b.E23 + a.E2*b.E31 + a.E3*b.E12,
	}
}

// MulBiVector returns the geometric product ab split by grade.
func (a Vector3[T]) MulBiVector(b BiVector3[T]) (Vector3[T], TriVector3[T]) {
	return Vector3[T]{
		E0: -a.E1*b.E01 - a.E2*b.E02 - a.E3*b.E03,
		E1: a.E3*b.E31 - a.E2*b.E12,
		E2: a.E1*b.E12 - a.E3*b.E23,
		E3: a.E2*b.E23 - a.E1*b.E31,
	}, TriVector3[T]{
		E021: a.E1*b.E02 - a.E0*b.E12 - a.E2*b.E01,
		E013: a.E3*b.E01 - a.E0*b.E31 - a.E1*b.E03,
		E032: a.E2*b.E03 - a.E0*b.E23 - a.E3*b.E02,
		E123: a.E1*b.E23 + a.E2*b.E31 + a.E3*b.E12,
	}
}

// InnerTriVector returns the inner product a | b.
func (a Vector3[T]) InnerTriVector(b TriVector3[T]) BiVector3[T] {
	return BiVector3[T]{
		E01: a.E3*b.E013 - a.E2*b.E021,
		E02: a.E1*b.E021 - a.E3*b.E032,
		E03: a.E2*b.E032 - a.E1*b.E013,
		E12: a.E3 * b.E123,
		E31: a.E2 * b.E123,
		E23: a.E1 * b.E123,
	}
}

// OuterTriVector returns the outer product a ^ b.
func (a Vector3[T]) OuterTriVector(b TriVector3[T]) Pseudo3[T] {
	return Pseudo3[T]{E0123: a.E0*b.E123 + a.E1*b.E032 + a.E2*b.E013 + a.E3*b.E021}
}

// MulTriVector returns the geometric product ab split by grade.
func (a Vector3[T]) MulTriVector(b TriVector3[T]) (BiVector3[T], Pseudo3[T]) {
	return BiVector3[T]{
		E01: a.E3*b.E013 - a.E2*b.E021,
		E02: a.E1*b.E021 - a.E3*b.E032,
		E03: a.E2*b.E032 - a.E1*b.E013,
		E12: a.E3 * b.E123,
		E31: a.E2 * b.E123,
		E23: a.E1 * b.E123,
	}, Pseudo3[T]{E0123: a.E0*b.E123 + a.E1*b.E032 + a.E2*b.E013 + a.E3*b.E021}
}

// InnerPseudo returns the inner product a | b.
func (a Vector3[T]) InnerPseudo(b Pseudo3[T]) TriVector3[T] {
	return TriVector3[T]{
		E021: a.E3 * b.E0123,
		E013: a.E2 * b.E0123,
		E032: a.E1 * b.E0123,
	}
}

// MulPseudo returns the geometric product ab.
func (a Vector3[T]) MulPseudo(b Pseudo3[T]) TriVector3[T] {
	return TriVector3[T]{
		E021: a.E3 * b.E0123,
		E013: a.E2 * b.E0123,
		E032: a.E1 * b.E0123,
	}
}
