package pga

import (
	"github.com/phil-mansfield/athena/num"
)

// TriVector3 is a grade 3 element of the 3D algebra. Trivectors represent
// points: e123 is the homogeneous weight, e032, e013 and e021 the x, y and z
// coordinates.
type TriVector3[T num.Float] struct {
	E021 T `json:"e021"`
	E013 T `json:"e013"`
	E032 T `json:"e032"`
	E123 T `json:"e123"`
}

// Norm returns |e123|, the weight of the point a represents.
func (a TriVector3[T]) Norm() T {
	return num.Abs(a.E123)
}

// Normalize divides a by its norm. Ideal trivectors are left alone.
func (a *TriVector3[T]) Normalize() {
	norm := a.Norm()
	if norm != 0 {
		*a = a.Div(norm)
	}
}

func (a TriVector3[T]) Normalized() TriVector3[T] {
	a.Normalize()
	return a
}

// Regressive returns dual(dual(a) ^ dual(b)), the line through two points.
func (a TriVector3[T]) Regressive(b TriVector3[T]) BiVector3[T] {
	return a.Dual().OuterVector(b.Dual()).Dual()
}

// RegressiveBiVector returns dual(dual(a) ^ dual(l)), the plane through a
// point and a line.
func (a TriVector3[T]) RegressiveBiVector(l BiVector3[T]) Vector3[T] {
	return a.Dual().OuterBiVector(l.Dual()).Dual()
}

// Regressive3 returns dual(dual(a) ^ dual(b) ^ dual(c)), the plane through
// three points.
func Regressive3[T num.Float](a, b, c TriVector3[T]) Vector3[T] {
	return a.Dual().OuterVector(b.Dual()).OuterVector(c.Dual()).Dual()
}

// Neg returns -a.
func (a TriVector3[T]) Neg() TriVector3[T] {
	return TriVector3[T]{
		E021: -a.E021,
		E013: -a.E013,
		E032: -a.E032,
		E123: -a.E123,
	}
}

// Add returns a + b.
func (a TriVector3[T]) Add(b TriVector3[T]) TriVector3[T] {
	return TriVector3[T]{
		E021: a.E021 + b.E021,
		E013: a.E013 + b.E013,
		E032: a.E032 + b.E032,
		E123: a.E123 + b.E123,
	}
}

// Sub returns a - b.
func (a TriVector3[T]) Sub(b TriVector3[T]) TriVector3[T] {
	return TriVector3[T]{
		E021: a.E021 - b.E021,
		E013: a.E013 - b.E013,
		E032: a.E032 - b.E032,
		E123: a.E123 - b.E123,
	}
}

// Scale multiplies every coefficient by k.
func (a TriVector3[T]) Scale(k T) TriVector3[T] {
	return TriVector3[T]{
		E021: a.E021 * k,
		E013: a.E013 * k,
		E032: a.E032 * k,
		E123: a.E123 * k,
	}
}

// Div divides every coefficient by k.
func (a TriVector3[T]) Div(k T) TriVector3[T] {
	return TriVector3[T]{
		E021: a.E021 / k,
		E013: a.E013 / k,
		E032: a.E032 / k,
		E123: a.E123 / k,
	}
}

// Reverse returns the reversion of a, which negates this grade.
func (a TriVector3[T]) Reverse() TriVector3[T] {
	return a.Neg()
}

// Dual returns the dual of a, a vector of grade 1.
func (a TriVector3[T]) Dual() Vector3[T] {
	return Vector3[T]{
		E0: a.E123,
		E1: a.E032,
		E2: a.E013,
		E3: a.E021,
	}
}

// InnerScalar returns the inner product a | b.
func (a TriVector3[T]) InnerScalar(b Scalar3[T]) TriVector3[T] {
	return TriVector3[T]{
		E021: a.E021 * b.S,
		E013: a.E013 * b.S,
		E032: a.E032 * b.S,
		E123: a.E123 * b.S,
	}
}

// OuterScalar returns the outer product a ^ b.
func (a TriVector3[T]) OuterScalar(b Scalar3[T]) TriVector3[T] {
	return TriVector3[T]{
		E021: a.E021 * b.S,
		E013: a.E013 * b.S,
		E032: a.E032 * b.S,
		E123: a.E123 * b.S,
	}
}

// MulScalar returns the geometric product ab.
func (a TriVector3[T]) MulScalar(b Scalar3[T]) TriVector3[T] {
	return TriVector3[T]{
		E021: a.E021 * b.S,
		E013: a.E013 * b.S,
		E032: a.E032 * b.S,
		E123: a.E123 * b.S,
	}
}

// InnerVector returns the inner product a | b.
func (a TriVector3[T]) InnerVector(b Vector3[T]) BiVector3[T] {
	return BiVector3[T]{
		E01: a.E013*b.E3 - a.E021*b.E2,
		E02: a.E021*b.E1 - a.E032*b.E3,
		E03: a.E032*b.E2 - a.E013*b.E1,
		E12: a.E123 * b.E3,
		E31: a.E123 * b.E2,
		E23: a.E123 * b.E1,
	}
}

// OuterVector returns the outer product a ^ b.
func (a TriVector3[T]) OuterVector(b Vector3[T]) Pseudo3[T] {
	return Pseudo3[T]{E0123: -a.E021*b.E3 - a.E013*b.E2 - a.E032*b.E1 - a.E123*b.E0}
}

// MulVector returns the geometric product ab split by grade.
func (a TriVector3[T]) MulVector(b Vector3[T]) (BiVector3[T], Pseudo3[T]) {
	return BiVector3[T]{
		E01: a.E013*b.E3 - a.E021*b.E2,
		E02: a.E021*b.E1 - a.E032*b.E3,
		E03: a.E032*b.E2 - a.E013*b.E1,
		E12: a.E123 * b.E3,
		E31: a.E123 * b.E2,
		E23: a.E123 * b.E1,
	}, Pseudo3[T]{E0123: -a.E021*b.E3 - a.E013*b.E2 - a.E032*b.E1 - a.E123*b.E0}
}

// InnerXBiVector returns the inner product a | b.
func (a TriVector3[T]) InnerXBiVector(b XBiVector3[T]) Vector3[T] {
	return Vector3[T]{}
}

// MulXBiVector returns the geometric product ab.
func (a TriVector3[T]) MulXBiVector(b XBiVector3[T]) TriVector3[T] {
	return TriVector3[T]{
		E021: a.E123 * b.E03,
		E013: a.E123 * b.E02,
		E032: a.E123 * b.E01,
	}
}

// InnerEBiVector returns the inner product a | b.
func (a TriVector3[T]) InnerEBiVector(b EBiVector3[T]) Vector3[T] {
	return Vector3[T]{
		E0: a.E021*b.E12 + a.E013*b.E31 + a.E032*b.E23,
		E1: -a.E123 * b.E23,
		E2: -a.E123 * b.E31,
		E3: -a.E123 * b.E12,
	}
}

// MulEBiVector returns the geometric product ab split by grade.
func (a TriVector3[T]) MulEBiVector(b EBiVector3[T]) (Vector3[T], TriVector3[T]) {
	return Vector3[T]{
		E0: a.E021*b.E12 + a.E013*b.E31 + a.E032*b.E23,
		E1: -a.E123 * b.E23,
		E2: -a.E123 * b.E31,
		E3: -a.E123 * b.E12,
	}, TriVector3[T]{
		E021: a.E013*b.E23 - a.E032*b.E31,
		E013: a.E032*b.E12 - a.E021*b.E23,
		E032: a.E021*b.E31 - a.E013*b.E12,
	}
}

// InnerBiVector returns the inner product a | b.
func (a TriVector3[T]) InnerBiVector(b BiVector3[T]) Vector3[T] {
	return Vector3[T]{
		E0: a.E021*b.E12 + a.E013*b.E31 + a.E032*b.E23,
		E1: -a.E123 * b.E23,
		E2: -a.E123 * b.E31,
		E3: -a.E123 * b.E12,
	}
}

// MulBiVector returns the geometric product ab split by grade.
func (a TriVector3[T]) MulBiVector(b BiVector3[T]) (Vector3[T], TriVector3[T]) {
	return Vector3[T]{
		E0: a.E021*b.E12 + a.E013*b.E31 + a.E032*b.E23,
		E1: -a.E123 * b.E23,
		E2: -a.E123 * b.E31,
		E3: -a.E123 * b.E12,
	}, TriVector3[T]{
		E021: a.E013*b.E23 + a.E123*b.E03 - a.E032*b.E31,
		E013: a.E032*b.E12 + a.E123*b.E02 - a.E021*b.E23,
		E032: a.E021*b.E31 + a.E123*b.E01 - a.E013*b.E12,
	}
}

// InnerTriVector returns the inner product a | b.
func (a TriVector3[T]) InnerTriVector(b TriVector3[T]) Scalar3[T] {
	return Scalar3[T]{S: -a.E123 * b.E123}
}

// MulTriVector returns the geometric product ab split by grade.
func (a TriVector3[T]) MulTriVector(b TriVector3[T]) (Scalar3[T], XBiVector3[T]) {
	return Scalar3[T]{S: -a.E123 * b.E123}, XBiVector3[T]{
		E01: a.E032*b.E123 - a.E123*b.E032,
		E02: a.E013*b.E123 - a.E123*b.E013,
		E03: a.E021*b.E123 - a.E123*b.E021,
	}
}

// InnerPseudo returns the inner product a | b.
func (a TriVector3[T]) InnerPseudo(b Pseudo3[T]) Vector3[T] {
	return Vector3[T]{
		E0: a.E123 * b.E0123,
	}
}

// MulPseudo returns the geometric product ab.
func (a TriVector3[T]) MulPseudo(b Pseudo3[T]) Vector3[T] {
	return Vector3[T]{
		E0: a.E123 * b.E0123,
	}
}
