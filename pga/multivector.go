package pga

import (
	"fmt"
	"math/bits"
	"strings"

	"github.com/phil-mansfield/athena/num"
)

// Multivector2 is a general element of the 2D algebra, indexed by blade
// bitmask: bit i set means e_i is a factor, in ascending order, so index 0b101
// is e02 (= -e20). It is slow and only used where the grade of a value is not
// known statically, and as a reference for the specialized products.
type Multivector2[T num.Float] [8]T

// Multivector3 is the 3D counterpart of Multivector2, with blades e0..e3.
type Multivector3[T num.Float] [16]T

// bladeProduct returns the sign and blade of the product of two canonical
// blades. The sign is zero when both contain the degenerate e0.
func bladeProduct(a, b uint8) (sign int, blade uint8) {
	if a&b&1 != 0 {
		return 0, 0
	}
	n := 0
	for x := a >> 1; x != 0; x >>= 1 {
		n += bits.OnesCount8(x & b)
	}
	if n&1 == 0 {
		return 1, a ^ b
	}
	return -1, a ^ b
}

func mulBlades[T num.Float](a, b, out []T) {
	for i := range out {
		out[i] = 0
	}
	for i, x := range a {
		if x == 0 {
			continue
		}
		for j, y := range b {
			if y == 0 {
				continue
			}
			sign, k := bladeProduct(uint8(i), uint8(j))
			switch sign {
			case 1:
				out[k] += x * y
			case -1:
				out[k] -= x * y
			}
		}
	}
}

func reverseBlades[T num.Float](a, out []T) {
	for i, x := range a {
		if g := bits.OnesCount8(uint8(i)) % 4; g == 2 || g == 3 {
			x = -x
		}
		out[i] = x
	}
}

func bladeName(i int) string {
	sb := strings.Builder{}
	sb.WriteByte('e')
	for k := 0; k < 4; k++ {
		if i&(1<<k) != 0 {
			sb.WriteByte(byte('0' + k))
		}
	}
	return sb.String()
}

func formatBlades[T num.Float](a []T) string {
	terms := []string{}
	for i, x := range a {
		switch {
		case x == 0:
		case i == 0:
			terms = append(terms, fmt.Sprintf("%g", float64(x)))
		default:
			terms = append(terms, fmt.Sprintf("%g %s", float64(x), bladeName(i)))
		}
	}
	if len(terms) == 0 {
		return "0"
	}
	return strings.Join(terms, " + ")
}

// Mul returns the geometric product ab.
func (a Multivector2[T]) Mul(b Multivector2[T]) Multivector2[T] {
	var out Multivector2[T]
	mulBlades(a[:], b[:], out[:])
	return out
}

func (a Multivector2[T]) Add(b Multivector2[T]) Multivector2[T] {
	for i := range a {
		a[i] += b[i]
	}
	return a
}

func (a Multivector2[T]) Scale(k T) Multivector2[T] {
	for i := range a {
		a[i] *= k
	}
	return a
}

// Grade returns the grade k part of a.
func (a Multivector2[T]) Grade(k int) Multivector2[T] {
	for i := range a {
		if bits.OnesCount8(uint8(i)) != k {
			a[i] = 0
		}
	}
	return a
}

func (a Multivector2[T]) Reverse() Multivector2[T] {
	var out Multivector2[T]
	reverseBlades(a[:], out[:])
	return out
}

// EpsEq returns true if every coefficient of a is within eps of b's.
func (a Multivector2[T]) EpsEq(b Multivector2[T], eps T) bool {
	for i := range a {
		if !num.EpsEq(a[i], b[i], eps) {
			return false
		}
	}
	return true
}

func (a Multivector2[T]) String() string { return formatBlades(a[:]) }

// Mul returns the geometric product ab.
func (a Multivector3[T]) Mul(b Multivector3[T]) Multivector3[T] {
	var out Multivector3[T]
	mulBlades(a[:], b[:], out[:])
	return out
}

func (a Multivector3[T]) Add(b Multivector3[T]) Multivector3[T] {
	for i := range a {
		a[i] += b[i]
	}
	return a
}

func (a Multivector3[T]) Scale(k T) Multivector3[T] {
	for i := range a {
		a[i] *= k
	}
	return a
}

// Grade returns the grade k part of a.
func (a Multivector3[T]) Grade(k int) Multivector3[T] {
	for i := range a {
		if bits.OnesCount8(uint8(i)) != k {
			a[i] = 0
		}
	}
	return a
}

func (a Multivector3[T]) Reverse() Multivector3[T] {
	var out Multivector3[T]
	reverseBlades(a[:], out[:])
	return out
}

// EpsEq returns true if every coefficient of a is within eps of b's.
func (a Multivector3[T]) EpsEq(b Multivector3[T], eps T) bool {
	for i := range a {
		if !num.EpsEq(a[i], b[i], eps) {
			return false
		}
	}
	return true
}

func (a Multivector3[T]) String() string { return formatBlades(a[:]) }

func (a Scalar2[T]) Multivector() Multivector2[T] {
	var m Multivector2[T]
	m[0b000] = a.S
	return m
}

func (a Vector2[T]) Multivector() Multivector2[T] {
	var m Multivector2[T]
	m[0b001] = a.E0
	m[0b010] = a.E1
	m[0b100] = a.E2
	return m
}

func (a BiVector2[T]) Multivector() Multivector2[T] {
	var m Multivector2[T]
	m[0b011] = a.E01
	m[0b101] = -a.E20
	m[0b110] = a.E12
	return m
}

func (a Pseudo2[T]) Multivector() Multivector2[T] {
	var m Multivector2[T]
	m[0b111] = a.E012
	return m
}

func (a Scalar3[T]) Multivector() Multivector3[T] {
	var m Multivector3[T]
	m[0b0000] = a.S
	return m
}

func (a Vector3[T]) Multivector() Multivector3[T] {
	var m Multivector3[T]
	m[0b0001] = a.E0
	m[0b0010] = a.E1
	m[0b0100] = a.E2
	m[0b1000] = a.E3
	return m
}

func (a XBiVector3[T]) Multivector() Multivector3[T] {
	var m Multivector3[T]
	m[0b0011] = a.E01
	m[0b0101] = a.E02
	m[0b1001] = a.E03
	return m
}

func (a EBiVector3[T]) Multivector() Multivector3[T] {
	var m Multivector3[T]
	m[0b0110] = a.E12
	m[0b1010] = -a.E31
	m[0b1100] = a.E23
	return m
}

func (a BiVector3[T]) Multivector() Multivector3[T] {
	var m Multivector3[T]
	m[0b0011] = a.E01
	m[0b0101] = a.E02
	m[0b1001] = a.E03
	m[0b0110] = a.E12
	m[0b1010] = -a.E31
	m[0b1100] = a.E23
	return m
}

func (a TriVector3[T]) Multivector() Multivector3[T] {
	var m Multivector3[T]
	m[0b0111] = -a.E021
	m[0b1011] = a.E013
	m[0b1101] = -a.E032
	m[0b1110] = a.E123
	return m
}

func (a Pseudo3[T]) Multivector() Multivector3[T] {
	var m Multivector3[T]
	m[0b1111] = a.E0123
	return m
}
