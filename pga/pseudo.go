package pga

import (
	"github.com/phil-mansfield/athena/num"
)

// Pseudo2 is the pseudoscalar e012 of the 2D algebra. It squares to zero.
type Pseudo2[T num.Float] struct {
	E012 T `json:"e012"`
}

// Neg returns -a.
func (a Pseudo2[T]) Neg() Pseudo2[T] {
	return Pseudo2[T]{E012: -a.E012}
}

// Add returns a + b.
func (a Pseudo2[T]) Add(b Pseudo2[T]) Pseudo2[T] {
	return Pseudo2[T]{E012: a.E012 + b.E012}
}

// Sub returns a - b.
func (a Pseudo2[T]) Sub(b Pseudo2[T]) Pseudo2[T] {
	return Pseudo2[T]{E012: a.E012 - b.E012}
}

// Scale multiplies every coefficient by k.
func (a Pseudo2[T]) Scale(k T) Pseudo2[T] {
	return Pseudo2[T]{E012: a.E012 * k}
}

// Div divides every coefficient by k.
func (a Pseudo2[T]) Div(k T) Pseudo2[T] {
	return Pseudo2[T]{E012: a.E012 / k}
}

// Reverse returns the reversion of a, which negates this grade.
func (a Pseudo2[T]) Reverse() Pseudo2[T] {
	return a.Neg()
}

// Dual returns the dual of a, a scalar of grade 0.
func (a Pseudo2[T]) Dual() Scalar2[T] {
	return Scalar2[T]{S: a.E012}
}

// InnerScalar returns the inner product a | b.
func (a Pseudo2[T]) InnerScalar(b Scalar2[T]) Pseudo2[T] {
	return Pseudo2[T]{E012: a.E012 * b.S}
}

// OuterScalar returns the outer product a ^ b.
func (a Pseudo2[T]) OuterScalar(b Scalar2[T]) Pseudo2[T] {
	return Pseudo2[T]{E012: a.E012 * b.S}
}

// MulScalar returns the geometric product ab.
func (a Pseudo2[T]) MulScalar(b Scalar2[T]) Pseudo2[T] {
	return Pseudo2[T]{E012: a.E012 * b.S}
}

// InnerVector returns the inner product a | b.
func (a Pseudo2[T]) InnerVector(b Vector2[T]) BiVector2[T] {
	return BiVector2[T]{
		E01: a.E012 * b.E2,
		E20: a.E012 * b.E1,
	}
}

// MulVector returns the geometric product ab.
func (a Pseudo2[T]) MulVector(b Vector2[T]) BiVector2[T] {
	return BiVector2[T]{
		E01: a.E012 * b.E2,
		E20: a.E012 * b.E1,
	}
}

// InnerBiVector returns the inner product a | b.
func (a Pseudo2[T]) InnerBiVector(b BiVector2[T]) Vector2[T] {
	return Vector2[T]{
		E0: -a.E012 * b.E12,
	}
}

// MulBiVector returns the geometric product ab.
func (a Pseudo2[T]) MulBiVector(b BiVector2[T]) Vector2[T] {
	return Vector2[T]{
		E0: -a.E012 * b.E12,
	}
}

// InnerPseudo returns the inner product a | b.
func (a Pseudo2[T]) InnerPseudo(b Pseudo2[T]) Scalar2[T] {
	return Scalar2[T]{}
}

// MulPseudo returns the geometric product ab.
func (a Pseudo2[T]) MulPseudo(b Pseudo2[T]) Scalar2[T] {
	return Scalar2[T]{}
}

// Pseudo3 is the pseudoscalar e0123 of the 3D algebra.
type Pseudo3[T num.Float] struct {
	E0123 T `json:"e0123"`
}

// Neg returns -a.
func (a Pseudo3[T]) Neg() Pseudo3[T] {
	return Pseudo3[T]{E0123: -a.E0123}
}

// Add returns a + b.
func (a Pseudo3[T]) Add(b Pseudo3[T]) Pseudo3[T] {
	return Pseudo3[T]{E0123: a.E0123 + b.E0123}
}

// Sub returns a - b.
func (a Pseudo3[T]) Sub(b Pseudo3[T]) Pseudo3[T] {
	return Pseudo3[T]{E0123: a.E0123 - b.E0123}
}

// Scale multiplies every coefficient by k.
func (a Pseudo3[T]) Scale(k T) Pseudo3[T] {
	return Pseudo3[T]{E0123: a.E0123 * k}
}

// Div divides every coefficient by k.
func (a Pseudo3[T]) Div(k T) Pseudo3[T] {
	return Pseudo3[T]{E0123: a.E0123 / k}
}

// Reverse returns the reversion of a, which leaves this grade unchanged.
func (a Pseudo3[T]) Reverse() Pseudo3[T] {
	return a
}

// Dual returns the dual of a, a scalar of grade 0.
func (a Pseudo3[T]) Dual() Scalar3[T] {
	return Scalar3[T]{S: a.E0123}
}

// InnerScalar returns the inner product a | b.
func (a Pseudo3[T]) InnerScalar(b Scalar3[T]) Pseudo3[T] {
	return Pseudo3[T]{E0123: a.E0123 * b.S}
}

// OuterScalar returns the outer product a ^ b.
func (a Pseudo3[T]) OuterScalar(b Scalar3[T]) Pseudo3[T] {
	return Pseudo3[T]{E0123: a.E0123 * b.S}
}

// MulScalar returns the geometric product ab.
func (a Pseudo3[T]) MulScalar(b Scalar3[T]) Pseudo3[T] {
	return Pseudo3[T]{E0123: a.E0123 * b.S}
}

// InnerVector returns the inner product a | b.
func (a Pseudo3[T]) InnerVector(b Vector3[T]) TriVector3[T] {
	return TriVector3[T]{
		E021: -a.E0123 * b.E3,
		E013: -a.E0123 * b.E2,
		E032: -a.E0123 * b.E1,
	}
}

// MulVector returns the geometric product ab.
func (a Pseudo3[T]) MulVector(b Vector3[T]) TriVector3[T] {
	return TriVector3[T]{
		E021: -a.E0123 * b.E3,
		E013: -a.E0123 * b.E2,
		E032: -a.E0123 * b.E1,
	}
}

// InnerXBiVector returns the inner product a | b.
func (a Pseudo3[T]) InnerXBiVector(b XBiVector3[T]) BiVector3[T] {
	return BiVector3[T]{}
}

// MulXBiVector returns the geometric product ab.
func (a Pseudo3[T]) MulXBiVector(b XBiVector3[T]) BiVector3[T] {
	return BiVector3[T]{}
}

// InnerEBiVector returns the inner product a | b.
func (a Pseudo3[T]) InnerEBiVector(b EBiVector3[T]) XBiVector3[T] {
	return XBiVector3[T]{
		E01: -a.E0123 * b.E23,
		E02: -a.E0123 * b.E31,
		E03: -a.E0123 * b.E12,
	}
}

// MulEBiVector returns the geometric product ab.
func (a Pseudo3[T]) MulEBiVector(b EBiVector3[T]) XBiVector3[T] {
	return XBiVector3[T]{
		E01: -a.E0123 * b.E23,
		E02: -a.E0123 * b.E31,
		E03: -a.E0123 * b.E12,
	}
}

// InnerBiVector returns the inner product a | b.
func (a Pseudo3[T]) InnerBiVector(b BiVector3[T]) XBiVector3[T] {
	return XBiVector3[T]{
		E01: -a.E0123 * b.E23,
		E02: -a.E0123 * b.E31,
		E03: -a.E0123 * b.E12,
	}
}

// MulBiVector returns the geometric product ab.
func (a Pseudo3[T]) MulBiVector(b BiVector3[T]) XBiVector3[T] {
	return XBiVector3[T]{
		E01: -a.E0123 * b.E23,
		E02: -a.E0123 * b.E31,
		E03: -a.E0123 * b.E12,
	}
}

// InnerTriVector returns the inner product a | b.
func (a Pseudo3[T]) InnerTriVector(b TriVector3[T]) Vector3[T] {
	return Vector3[T]{
		E0: -a.E0123 * b.E123,
	}
}

// MulTriVector returns the geometric product ab.
func (a Pseudo3[T]) MulTriVector(b TriVector3[T]) Vector3[T] {
	return Vector3[T]{
		E0: -a.E0123 * b.E123,
	}
}

// InnerPseudo returns the inner product a | b.
func (a Pseudo3[T]) InnerPseudo(b Pseudo3[T]) Scalar3[T] {
	return Scalar3[T]{}
}

// MulPseudo returns the geometric product ab.
func (a Pseudo3[T]) MulPseudo(b Pseudo3[T]) Scalar3[T] {
	return Scalar3[T]{}
}
