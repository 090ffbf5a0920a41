/*package num contains the scalar field contract used by every algebra type in
athena, along with the constants and transcendental functions the geometric
operations need.

The functions here are thin generic wrappers around package math. They go
through float64, which is exact for float32 inputs.
*/
package num

import (
	"math"
	"unsafe"

	"golang.org/x/exp/constraints"
)

// Float is the set of scalar fields the algebra can be instantiated over.
type Float interface {
	constraints.Float
}

// Zero returns the additive identity.
func Zero[T Float]() T { return 0 }

// One returns the multiplicative identity.
func One[T Float]() T { return 1 }

// Two returns 2.
func Two[T Float]() T { return 2 }

// Half returns 1/2.
func Half[T Float]() T { return 0.5 }

// Epsilon returns the tolerance used for approximate comparisons in T. It is
// looser for 32-bit types.
func Epsilon[T Float]() T {
	var x T
	if unsafe.Sizeof(x) == 4 {
		return 1e-6
	}
	return 1e-12
}

// Sqrt returns the square root of x.
func Sqrt[T Float](x T) T { return T(math.Sqrt(float64(x))) }

// Abs returns the absolute value of x.
func Abs[T Float](x T) T { return T(math.Abs(float64(x))) }

// Sin returns the sine of the radian argument x.
func Sin[T Float](x T) T { return T(math.Sin(float64(x))) }

// Cos returns the cosine of the radian argument x.
func Cos[T Float](x T) T { return T(math.Cos(float64(x))) }

// Asin returns the arcsine of x in radians.
func Asin[T Float](x T) T { return T(math.Asin(float64(x))) }

// Acos returns the arccosine of x in radians.
func Acos[T Float](x T) T { return T(math.Acos(float64(x))) }

// Tan returns the tangent of the radian argument x.
func Tan[T Float](x T) T { return T(math.Tan(float64(x))) }

// Atan returns the arctangent of x in radians.
func Atan[T Float](x T) T { return T(math.Atan(float64(x))) }

// Recip returns 1/x.
func Recip[T Float](x T) T { return 1 / x }

// SinCos returns sin(x) and cos(x).
func SinCos[T Float](x T) (sin, cos T) {
	s, c := math.Sincos(float64(x))
	return T(s), T(c)
}

// Atan2 returns the arc tangent of y/x, using the signs of the two to
// determine the quadrant.
func Atan2[T Float](y, x T) T {
	return T(math.Atan2(float64(y), float64(x)))
}

// IsNaN reports whether x is an IEEE 754 "not-a-number" value.
func IsNaN[T Float](x T) bool { return x != x }

// EpsEq returns true if x and y are within eps of one another.
func EpsEq[T Float](x, y, eps T) bool {
	return x+eps > y && x-eps < y
}
