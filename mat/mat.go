/*package mat contains small dense vectors and matrices over any float type.
Matrices are stored column-major, so a 4x4 transform can be handed directly to
graphics code. Operations are split into easy to use methods which allocate
their results and At methods which write into caller managed memory.

Inversion and determinants go through an LU decomposition. Callers that solve
many systems with the same matrix should keep the LUFactors around.
*/
package mat

import (
	"fmt"

	"github.com/phil-mansfield/athena/num"
)

// Vector is a dense column vector.
type Vector[T num.Float] []T

// At returns the i-th component of v.
func (v Vector[T]) At(i int) T {
	if i < 0 || i >= len(v) {
		panic(fmt.Sprintf("index %d out of range for vector of length %d.", i, len(v)))
	}
	return v[i]
}

func (v Vector[T]) X() T { return v.At(0) }
func (v Vector[T]) Y() T { return v.At(1) }
func (v Vector[T]) Z() T { return v.At(2) }
func (v Vector[T]) W() T { return v.At(3) }

// Dot returns the dot product of v and u.
func (v Vector[T]) Dot(u Vector[T]) T {
	if len(v) != len(u) {
		panic("Dot product of vectors with different lengths.")
	}
	sum := num.Zero[T]()
	for i := range v {
		sum += v[i] * u[i]
	}
	return sum
}

// Matrix is a dense Height x Width matrix. Vals holds the columns one after
// another.
type Matrix[T num.Float] struct {
	Vals          []T
	Width, Height int
}

// LUFactors contains data fields neccessary for a number of matrix operations.
// Exporting this type allows calling routines to better manage their memory
// consumption and to prevent recomputing the same decomposition many times.
type LUFactors[T num.Float] struct {
	lu    Matrix[T]
	pivot []int
	d     T
}

// NewMatrix creates a matrix with the specified column-major values and
// dimensions.
func NewMatrix[T num.Float](vals []T, width, height int) *Matrix[T] {
	if width <= 0 {
		panic("width must be positive.")
	} else if height <= 0 {
		panic("height must be positive.")
	} else if width*height != len(vals) {
		panic("height * width must equal len(vals).")
	}

	return &Matrix[T]{Vals: vals, Width: width, Height: height}
}

// Zeros returns a width x height matrix of zeros.
func Zeros[T num.Float](width, height int) *Matrix[T] {
	return NewMatrix(make([]T, width*height), width, height)
}

// Identity returns the n x n identity matrix.
func Identity[T num.Float](n int) *Matrix[T] {
	m := Zeros[T](n, n)
	for i := 0; i < n; i++ {
		m.Vals[i*n+i] = 1
	}
	return m
}

func (m *Matrix[T]) index(row, col int) int {
	if row < 0 || row >= m.Height {
		panic(fmt.Sprintf("row %d out of range for matrix of height %d.", row, m.Height))
	} else if col < 0 || col >= m.Width {
		panic(fmt.Sprintf("column %d out of range for matrix of width %d.", col, m.Width))
	}
	return col*m.Height + row
}

// At returns the element in the given row and column.
func (m *Matrix[T]) At(row, col int) T { return m.Vals[m.index(row, col)] }

// Set sets the element in the given row and column.
func (m *Matrix[T]) Set(row, col int, x T) { m.Vals[m.index(row, col)] = x }

// Col returns a copy of the given column.
func (m *Matrix[T]) Col(col int) Vector[T] {
	start := m.index(0, col)
	out := make(Vector[T], m.Height)
	copy(out, m.Vals[start:start+m.Height])
	return out
}

// Row returns a copy of the given row.
func (m *Matrix[T]) Row(row int) Vector[T] {
	out := make(Vector[T], m.Width)
	for j := range out {
		out[j] = m.At(row, j)
	}
	return out
}

// Transpose returns the transpose of m.
func (m *Matrix[T]) Transpose() *Matrix[T] {
	out := Zeros[T](m.Height, m.Width)
	for i := 0; i < m.Height; i++ {
		for j := 0; j < m.Width; j++ {
			out.Vals[i*m.Width+j] = m.Vals[j*m.Height+i]
		}
	}
	return out
}

// Mult multiplies two matrices together.
func (m1 *Matrix[T]) Mult(m2 *Matrix[T]) *Matrix[T] {
	return m1.MultAt(m2, Zeros[T](m2.Width, m1.Height))
}

// MultAt multiplies two matrices together and writes the result to the
// specified matrix.
func (m1 *Matrix[T]) MultAt(m2, out *Matrix[T]) *Matrix[T] {
	if m1.Width != m2.Height {
		panic("Multiplication of incompatible matrix sizes.")
	} else if out.Width != m2.Width || out.Height != m1.Height {
		panic("out matrix has the wrong dimensions.")
	}

	for i := range out.Vals {
		out.Vals[i] = 0
	}
	for j := 0; j < m2.Width; j++ {
		outCol := out.Vals[j*out.Height : (j+1)*out.Height]
		for k := 0; k < m1.Width; k++ {
			x := m2.Vals[j*m2.Height+k]
			m1Col := m1.Vals[k*m1.Height : (k+1)*m1.Height]
			for i := range outCol {
				outCol[i] += m1Col[i] * x
			}
		}
	}

	return out
}

// MultVec returns m * v.
func (m *Matrix[T]) MultVec(v Vector[T]) Vector[T] {
	if len(v) != m.Width {
		panic(fmt.Sprintf("vector of length %d cannot multiply matrix of width %d.", len(v), m.Width))
	}
	out := make(Vector[T], m.Height)
	for j, x := range v {
		col := m.Vals[j*m.Height : (j+1)*m.Height]
		for i := range out {
			out[i] += col[i] * x
		}
	}
	return out
}

// Invert computes the inverse of a matrix.
func (m *Matrix[T]) Invert() *Matrix[T] {
	return m.LU().InvertAt(Zeros[T](m.Width, m.Height))
}

// Determinant computes the determinant of a matrix.
func (m *Matrix[T]) Determinant() T {
	return m.LU().Determinant()
}

// SolveVector solves the equation m * xs = bs for xs.
func (m *Matrix[T]) SolveVector(bs Vector[T]) Vector[T] {
	xs := make(Vector[T], len(bs))
	return m.LU().SolveVector(bs, xs)
}

// NewLUFactors creates an LUFactors instance of the requested dimensions.
func NewLUFactors[T num.Float](n int) *LUFactors[T] {
	luf := new(LUFactors[T])

	luf.lu.Vals, luf.lu.Width, luf.lu.Height = make([]T, n*n), n, n
	luf.pivot = make([]int, n)
	luf.d = 1

	return luf
}

// LU returns the LU decomposition of a matrix.
func (m *Matrix[T]) LU() *LUFactors[T] {
	if m.Width != m.Height {
		panic("m is non-square.")
	}

	lu := NewLUFactors[T](m.Width)
	m.LUFactorsAt(lu)
	return lu
}

// LUFactorsAt stores the LU decomposition of a matrix at the specified
// location. Rows are pivoted implicitly: each row is scaled by its largest
// element when choosing the pivot.
func (m *Matrix[T]) LUFactorsAt(luf *LUFactors[T]) {
	if luf.lu.Width != m.Width || luf.lu.Height != m.Height {
		panic("luf has different dimenstions than m.")
	}

	n := m.Width
	scale := make([]T, n)
	lu := luf.lu.Vals
	luf.d = 1
	copy(lu, m.Vals)

	// Element (i, j) lives at lu[j*n + i].
	for i := 0; i < n; i++ {
		max := num.Zero[T]()
		for j := 0; j < n; j++ {
			if tmp := num.Abs(lu[j*n+i]); tmp > max {
				max = tmp
			}
		}
		if max == 0 {
			panic("m is singular")
		}
		scale[i] = 1 / max
	}

	for k := 0; k < n; k++ {
		max, maxi := num.Zero[T](), k
		for i := k; i < n; i++ {
			if tmp := scale[i] * num.Abs(lu[k*n+i]); tmp > max {
				max, maxi = tmp, i
			}
		}

		if k != maxi {
			for j := 0; j < n; j++ {
				lu[j*n+k], lu[j*n+maxi] = lu[j*n+maxi], lu[j*n+k]
			}
			luf.d = -luf.d
			scale[maxi] = scale[k]
		}
		luf.pivot[k] = maxi

		if lu[k*n+k] == 0 {
			lu[k*n+k] = tiny[T]()
		}

		for i := k + 1; i < n; i++ {
			lu[k*n+i] /= lu[k*n+k]
			tmp := lu[k*n+i]
			for j := k + 1; j < n; j++ {
				lu[j*n+i] -= tmp * lu[j*n+k]
			}
		}
	}
}

func tiny[T num.Float]() T {
	eps := num.Epsilon[T]()
	return eps * eps * eps
}

// SolveVector solves M * xs = bs for xs.
//
// bs and xs may point to the same physical memory.
func (luf *LUFactors[T]) SolveVector(bs, xs Vector[T]) Vector[T] {
	n := luf.lu.Width
	if n != len(bs) {
		panic("len(b) != luf.Width")
	} else if n != len(xs) {
		panic("len(x) != luf.Width")
	}

	copy(xs, bs)
	lu := luf.lu.Vals

	// Solve L * y = b for y, undoing the row swaps as we go.
	first := -1
	for i := 0; i < n; i++ {
		piv := luf.pivot[i]
		sum := xs[piv]
		xs[piv] = xs[i]
		if first >= 0 {
			for j := first; j < i; j++ {
				sum -= lu[j*n+i] * xs[j]
			}
		} else if sum != 0 {
			first = i
		}
		xs[i] = sum
	}

	// Solve U * x = y for x.
	for i := n - 1; i >= 0; i-- {
		sum := xs[i]
		for j := i + 1; j < n; j++ {
			sum -= lu[j*n+i] * xs[j]
		}
		xs[i] = sum / lu[i*n+i]
	}

	return xs
}

// SolveMatrix solves the equation m * x = b.
//
// x and b may point to the same physical memory.
func (luf *LUFactors[T]) SolveMatrix(b, x *Matrix[T]) *Matrix[T] {
	n := luf.lu.Width

	if b.Height != n {
		panic("b matrix different height than m matrix.")
	} else if x.Height != n || x.Width != b.Width {
		panic("x matrix different size than b matrix.")
	}

	for j := 0; j < b.Width; j++ {
		luf.SolveVector(b.Vals[j*n:(j+1)*n], x.Vals[j*n:(j+1)*n])
	}

	return x
}

// InvertAt inverts the matrix represented by the given LU decomposition
// and writes the results into the specified out matrix.
func (luf *LUFactors[T]) InvertAt(out *Matrix[T]) *Matrix[T] {
	n := luf.lu.Width
	if out.Width != out.Height {
		panic("out matrix is non-square.")
	} else if n != out.Width {
		panic("out matrix different size than m matrix.")
	}

	for i := range out.Vals {
		out.Vals[i] = 0
	}
	for i := 0; i < n; i++ {
		out.Vals[i*n+i] = 1
	}

	return luf.SolveMatrix(out, out)
}

// Determinant computes the determinant of the matrix represented by the
// given LU decomposition.
func (luf *LUFactors[T]) Determinant() T {
	d := luf.d
	lu := luf.lu.Vals
	n := luf.lu.Width

	for i := 0; i < n; i++ {
		d *= lu[i*n+i]
	}
	return d
}
