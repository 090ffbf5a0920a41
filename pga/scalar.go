package pga

import (
	"github.com/phil-mansfield/athena/num"
)

// Scalar2 is a grade 0 element of the 2D algebra.
type Scalar2[T num.Float] struct {
	S T `json:"s"`
}

// Neg returns -a.
func (a Scalar2[T]) Neg() Scalar2[T] {
	return Scalar2[T]{S: -a.S}
}

// Add returns a + b.
func (a Scalar2[T]) Add(b Scalar2[T]) Scalar2[T] {
	return Scalar2[T]{S: a.S + b.S}
}

// Sub returns a - b.
func (a Scalar2[T]) Sub(b Scalar2[T]) Scalar2[T] {
	return Scalar2[T]{S: a.S - b.S}
}

// Scale multiplies every coefficient by k.
func (a Scalar2[T]) Scale(k T) Scalar2[T] {
	return Scalar2[T]{S: a.S * k}
}

// Div divides every coefficient by k.
func (a Scalar2[T]) Div(k T) Scalar2[T] {
	return Scalar2[T]{S: a.S / k}
}

// Reverse returns the reversion of a, which leaves this grade unchanged.
func (a Scalar2[T]) Reverse() Scalar2[T] {
	return a
}

// Dual returns the dual of a, a pseudo of grade 3.
func (a Scalar2[T]) Dual() Pseudo2[T] {
	return Pseudo2[T]{E012: a.S}
}

// InnerScalar returns the inner product a | b.
func (a Scalar2[T]) InnerScalar(b Scalar2[T]) Scalar2[T] {
	return Scalar2[T]{S: a.S * b.S}
}

// OuterScalar returns the outer product a ^ b.
func (a Scalar2[T]) OuterScalar(b Scalar2[T]) Scalar2[T] {
	return Scalar2[T]{S: a.S * b.S}
}

// MulScalar returns the geometric product ab.
func (a Scalar2[T]) MulScalar(b Scalar2[T]) Scalar2[T] {
	return Scalar2[T]{S: a.S * b.S}
}

// InnerVector returns the inner product a | b.
func (a Scalar2[T]) InnerVector(b Vector2[T]) Vector2[T] {
	return Vector2[T]{
		E0: a.S * b.E0,
		E1: a.S * b.E1,
		E2: a.S * b.E2,
	}
}

// OuterVector returns the outer product a ^ b.
func (a Scalar2[T]) OuterVector(b Vector2[T]) Vector2[T] {
	return Vector2[T]{
		E0: a.S * b.E0,
		E1: a.S * b.E1,
		E2: a.S * b.E2,
	}
}

// MulVector returns the geometric product ab.
func (a Scalar2[T]) MulVector(b Vector2[T]) Vector2[T] {
	return Vector2[T]{
		E0: a.S * b.E0,
		E1: a.S * b.E1,
		E2: a.S * b.E2,
	}
}

// InnerBiVector returns the inner product a | b.
func (a Scalar2[T]) InnerBiVector(b BiVector2[T]) BiVector2[T] {
	return BiVector2[T]{
		E01: a.S * b.E01,
		E20: a.S * b.E20,
		E12: a.S * b.E12,
	}
}

// OuterBiVector returns the outer product a ^ b.
func (a Scalar2[T]) OuterBiVector(b BiVector2[T]) BiVector2[T] {
	return BiVector2[T]{
		E01: a.S * b.E01,
		E20: a.S * b.E20,
		E12: a.S * b.E12,
	}
}

// MulBiVector returns the geometric product ab.
func (a Scalar2[T]) MulBiVector(b BiVector2[T]) BiVector2[T] {
	return BiVector2[T]{
		E01: a.S * b.E01,
		E20: a.S * b.E20,
		E12: a.S * b.E12,
	}
}

// InnerPseudo returns the inner product a | b.
func (a Scalar2[T]) InnerPseudo(b Pseudo2[T]) Pseudo2[T] {
	return Pseudo2[T]{E012: a.S * b.E012}
}

// OuterPseudo returns the outer product a ^ b.
func (a Scalar2[T]) OuterPseudo(b Pseudo2[T]) Pseudo2[T] {
	return Pseudo2[T]{E012: a.S * b.E012}
}

// MulPseudo returns the geometric product ab.
func (a Scalar2[T]) MulPseudo(b Pseudo2[T]) Pseudo2[T] {
	return Pseudo2[T]{E012: a.S * b.E012}
}

// Scalar3 is a grade 0 element of the 3D algebra.
type Scalar3[T num.Float] struct {
	S T `json:"s"`
}

// Neg returns -a.
func (a Scalar3[T]) Neg() Scalar3[T] {
	return Scalar3[T]{S: -a.S}
}

// Add returns a + b.
func (a Scalar3[T]) Add(b Scalar3[T]) Scalar3[T] {
	return Scalar3[T]{S: a.S + b.S}
}

// Sub returns a - b.
func (a Scalar3[T]) Sub(b Scalar3[T]) Scalar3[T] {
	return Scalar3[T]{S: a.S - b.S}
}

// Scale multiplies every coefficient by k.
func (a Scalar3[T]) Scale(k T) Scalar3[T] {
	return Scalar3[T]{S: a.S * k}
}

// Div divides every coefficient by k.
func (a Scalar3[T]) Div(k T) Scalar3[T] {
	return Scalar3[T]{S: a.S / k}
}

// Reverse returns the reversion of a, which leaves this grade unchanged.
func (a Scalar3[T]) Reverse() Scalar3[T] {
	return a
}

// Dual returns the dual of a, a pseudo of grade 4.
func (a Scalar3[T]) Dual() Pseudo3[T] {
	return Pseudo3[T]{E0123: a.S}
}

// InnerScalar returns the inner product a | b.
func (a Scalar3[T]) InnerScalar(b Scalar3[T]) Scalar3[T] {
	return Scalar3[T]{S: a.S * b.S}
}

// OuterScalar returns the outer product a ^ b.
func (a Scalar3[T]) OuterScalar(b Scalar3[T]) Scalar3[T] {
	return Scalar3[T]{S: a.S * b.S}
}

// MulScalar returns the geometric product ab.
func (a Scalar3[T]) MulScalar(b Scalar3[T]) Scalar3[T] {
	return Scalar3[T]{S: a.S * b.S}
}

// InnerVector returns the inner product a | b.
func (a Scalar3[T]) InnerVector(b Vector3[T]) Vector3[T] {
	return Vector3[T]{
		E0: a.S * b.E0,
		E1: a.S * b.E1,
		E2: a.S * b.E2,
		E3: a.S * b.E3,
	}
}

// OuterVector returns the outer product a ^ b.
func (a Scalar3[T]) OuterVector(b Vector3[T]) Vector3[T] {
	return Vector3[T]{
		E0: a.S * b.E0,
		E1: a.S * b.E1,
		E2: a.S * b.E2,
		E3: a.S * b.E3,
	}
}

// MulVector returns the geometric product ab.
func (a Scalar3[T]) MulVector(b Vector3[T]) Vector3[T] {
	return Vector3[T]{
		E0: a.S * b.E0,
		E1: a.S * b.E1,
		E2: a.S * b.E2,
		E3: a.S * b.E3,
	}
}

// InnerXBiVector returns the inner product a | b.
func (a Scalar3[T]) InnerXBiVector(b XBiVector3[T]) XBiVector3[T] {
	return XBiVector3[T]{
		E01: a.S * b.E01,
		E02: a.S * b.E02,
		E03: a.S * b.E03,
	}
}

// OuterXBiVector returns the outer product a ^ b.
func (a Scalar3[T]) OuterXBiVector(b XBiVector3[T]) XBiVector3[T] {
	return XBiVector3[T]{
		E01: a.S * b.E01,
		E02: a.S * b.E02,
		E03: a.S * b.E03,
	}
}

// MulXBiVector returns the geometric product ab.
func (a Scalar3[T]) MulXBiVector(b XBiVector3[T]) XBiVector3[T] {
	return XBiVector3[T]{
		E01: a.S * b.E01,
		E02: a.S * b.E02,
		E03: a.S * b.E03,
	}
}

// InnerEBiVector returns the inner product a | b.
func (a Scalar3[T]) InnerEBiVector(b EBiVector3[T]) EBiVector3[T] {
	return EBiVector3[T]{
		E12: a.S * b.E12,
		E31: a.S * b.E31,
		E23: a.S * b.E23,
	}
}

// OuterEBiVector returns the outer product a ^ b.
func (a Scalar3[T]) OuterEBiVector(b EBiVector3[T]) EBiVector3[T] {
	return EBiVector3[T]{
		E12: a.S * b.E12,
		E31: a.S * b.E31,
		E23: a.S * b.E23,
	}
}

// MulEBiVector returns the geometric product ab.
func (a Scalar3[T]) MulEBiVector(b EBiVector3[T]) EBiVector3[T] {
	return EBiVector3[T]{
		E12: a.S * b.E12,
		E31: a.S * b.E31,
		E23: a.S * b.E23,
	}
}

// InnerBiVector returns the inner product a | b.
func (a Scalar3[T]) InnerBiVector(b BiVector3[T]) BiVector3[T] {
	return BiVector3[T]{
		E01: a.S * b.E01,
		E02: a.S * b.E02,
		E03: a.S * b.E03,
		E12: a.S * b.E12,
		E31: a.S * b.E31,
		E23: a.S * b.E23,
	}
}

// OuterBiVector returns the outer product a ^ b.
func (a Scalar3[T]) OuterBiVector(b BiVector3[T]) BiVector3[T] {
	return BiVector3[T]{
		E01: a.S * b.E01,
		E02: a.S * b.E02,
		E03: a.S * b.E03,
		E12: a.S * b.E12,
		E31: a.S * b.E31,
		E23: a.S * b.E23,
	}
}

// MulBiVector returns the geometric product ab.
func (a Scalar3[T]) MulBiVector(b BiVector3[T]) BiVector3[T] {
	return BiVector3[T]{
		E01: a.S * b.E01,
		E02: a.S * b.E02,
		E03: a.S * b.E03,
		E12: a.S * b.E12,
		E31: a.S * b.E31,
		E23: a.S * b.E23,
	}
}

// InnerTriVector returns the inner product a | b.
func (a Scalar3[T]) InnerTriVector(b TriVector3[T]) TriVector3[T] {
	return TriVector3[T]{
		E021: a.S * b.E021,
		E013: a.S * b.E013,
		E032: a.S * b.E032,
		E123: a.S * b.E123,
	}
}

// OuterTriVector returns the outer product a ^ b.
func (a Scalar3[T]) OuterTriVector(b TriVector3[T]) TriVector3[T] {
	return TriVector3[T]{
		E021: a.S * b.E021,
		E013: a.S * b.E013,
		E032: a.S * b.E032,
		E123: a.S * b.E123,
	}
}

// MulTriVector returns the geometric product ab.
func (a Scalar3[T]) MulTriVector(b TriVector3[T]) TriVector3[T] {
	return TriVector3[T]{
		E021: a.S * b.E021,
		E013: a.S * b.E013,
		E032: a.S * b.E032,
		E123: a.S * b.E123,
	}
}

// InnerPseudo returns the inner product a | b.
func (a Scalar3[T]) InnerPseudo(b Pseudo3[T]) Pseudo3[T] {
	return Pseudo3[T]{E0123: a.S * b.E0123}
}

// OuterPseudo returns the outer product a ^ b.
func (a Scalar3[T]) OuterPseudo(b Pseudo3[T]) Pseudo3[T] {
	return Pseudo3[T]{E0123: a.S * b.E0123}
}

// MulPseudo returns the geometric product ab.
func (a Scalar3[T]) MulPseudo(b Pseudo3[T]) Pseudo3[T] {
	return Pseudo3[T]{E0123: a.S * b.E0123}
}
