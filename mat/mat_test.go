package mat

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomat "gonum.org/v1/gonum/mat"
)

func epsEq(x, y, eps float64) bool {
	return math.Abs(x-y) <= eps
}

// fromRows builds a matrix from row-major values so that test tables read
// naturally.
func fromRows(rows [][]float64) *Matrix[float64] {
	m := Zeros[float64](len(rows[0]), len(rows))
	for i, row := range rows {
		for j, x := range row {
			m.Set(i, j, x)
		}
	}
	return m
}

func dense(m *Matrix[float64]) *gomat.Dense {
	d := gomat.NewDense(m.Height, m.Width, nil)
	for i := 0; i < m.Height; i++ {
		for j := 0; j < m.Width; j++ {
			d.Set(i, j, m.At(i, j))
		}
	}
	return d
}

func denseEq(m *Matrix[float64], d gomat.Matrix, eps float64) bool {
	r, c := d.Dims()
	if r != m.Height || c != m.Width {
		return false
	}
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if !epsEq(m.At(i, j), d.At(i, j), eps) {
				return false
			}
		}
	}
	return true
}

var squares = [][][]float64{
	{{2, 1}, {-1, 0}},
	{{1, 3, 5}, {2, 4, 7}, {1, 1, 0}},
	{{0, 2, 0}, {3, 0, 0}, {0, 0, 4}},
	{{4, -2, 1, 3}, {3, 6, -4, 2}, {2, 1, 8, -5}, {1, 0, 2, 9}},
}

func TestColumnMajor(t *testing.T) {
	m := NewMatrix([]float64{1, 2, 3, 4, 5, 6}, 2, 3)
	assert.Equal(t, 4.0, m.At(0, 1))
	assert.Equal(t, 3.0, m.At(2, 0))
	assert.Equal(t, Vector[float64]{4, 5, 6}, m.Col(1))
	assert.Equal(t, Vector[float64]{2, 5}, m.Row(1))

	m.Set(1, 1, 10)
	assert.Equal(t, 10.0, m.Vals[4])
}

func TestBoundsPanics(t *testing.T) {
	m := Identity[float64](3)
	assert.PanicsWithValue(t, "row 3 out of range for matrix of height 3.", func() { m.At(3, 0) })
	assert.PanicsWithValue(t, "column -1 out of range for matrix of width 3.", func() { m.Set(0, -1, 1) })
	assert.Panics(t, func() { m.Col(5) })
	assert.PanicsWithValue(t, "index 4 out of range for vector of length 3.", func() {
		Vector[float64]{1, 2, 3}.At(4)
	})
	assert.Panics(t, func() { Vector[float64]{1, 2}.Z() })
	assert.PanicsWithValue(t, "width must be positive.", func() { NewMatrix([]float64{}, 0, 1) })
	assert.Panics(t, func() { NewMatrix([]float64{1, 2, 3}, 2, 2) })
}

func TestNamedAccessors(t *testing.T) {
	v := Vector[float32]{1, 2, 3, 4}
	assert.Equal(t, float32(1), v.X())
	assert.Equal(t, float32(2), v.Y())
	assert.Equal(t, float32(3), v.Z())
	assert.Equal(t, float32(4), v.W())
	assert.Equal(t, float32(30), v.Dot(v))
}

func TestTranspose(t *testing.T) {
	m := fromRows([][]float64{{1, 2, 3}, {4, 5, 6}})
	tr := m.Transpose()
	if tr.Width != 2 || tr.Height != 3 {
		t.Fatalf("expected 3x2 transpose, got %dx%d", tr.Height, tr.Width)
	}
	for i := 0; i < 2; i++ {
		for j := 0; j < 3; j++ {
			if tr.At(j, i) != m.At(i, j) {
				t.Errorf("(%d, %d) expected %g, got %g", j, i, m.At(i, j), tr.At(j, i))
			}
		}
	}
}

func TestMult(t *testing.T) {
	table := []struct {
		a, b [][]float64
	}{
		{[][]float64{{1, 2}, {3, 4}}, [][]float64{{5, 6}, {7, 8}}},
		{[][]float64{{1, 2, 3}}, [][]float64{{1}, {2}, {3}}},
		{[][]float64{{1}, {2}, {3}}, [][]float64{{4, 5}}},
		{squares[3], squares[3]},
	}

	for i, test := range table {
		a, b := fromRows(test.a), fromRows(test.b)
		var exp gomat.Dense
		exp.Mul(dense(a), dense(b))
		if res := a.Mult(b); !denseEq(res, &exp, 1e-12) {
			t.Errorf("%d) expected %v, got %v", i, gomat.Formatted(&exp), res.Vals)
		}
	}
}

func TestMultVec(t *testing.T) {
	m := fromRows([][]float64{{1, 2, 3}, {4, 5, 6}})
	assert.Equal(t, Vector[float64]{14, 32}, m.MultVec(Vector[float64]{1, 2, 3}))
	assert.Panics(t, func() { m.MultVec(Vector[float64]{1, 2}) })
}

func TestInvert(t *testing.T) {
	for i, rows := range squares {
		m := fromRows(rows)

		var exp gomat.Dense
		require.NoError(t, exp.Inverse(dense(m)))
		if inv := m.Invert(); !denseEq(inv, &exp, 1e-10) {
			t.Errorf("%d) expected inverse %v, got %v", i, gomat.Formatted(&exp), inv.Vals)
		}

		if prod := m.Mult(m.Invert()); !denseEq(prod, dense(Identity[float64](m.Width)), 1e-10) {
			t.Errorf("%d) m m^-1 = %v", i, prod.Vals)
		}
	}
}

func TestDeterminant(t *testing.T) {
	for i, rows := range squares {
		m := fromRows(rows)
		exp := gomat.Det(dense(m))
		if det := m.Determinant(); !epsEq(det, exp, 1e-9) {
			t.Errorf("%d) expected determinant %g, got %g", i, exp, det)
		}
	}
}

func TestSolveVector(t *testing.T) {
	m := fromRows(squares[1])
	bs := Vector[float64]{1, 0, 2}
	xs := m.SolveVector(bs)
	res := m.MultVec(xs)
	for i := range bs {
		if !epsEq(res[i], bs[i], 1e-12) {
			t.Errorf("%d) expected %g, got %g", i, bs[i], res[i])
		}
	}

	lu := m.LU()
	in := Vector[float64]{1, 0, 2}
	lu.SolveVector(in, in)
	for i := range in {
		if !epsEq(in[i], xs[i], 1e-12) {
			t.Errorf("%d) in-place solve gave %g, expected %g", i, in[i], xs[i])
		}
	}
}

func TestSingularPanics(t *testing.T) {
	m := fromRows([][]float64{{1, 2}, {0, 0}})
	assert.PanicsWithValue(t, "m is singular", func() { m.LU() })
	assert.PanicsWithValue(t, "m is non-square.", func() { Zeros[float64](2, 3).LU() })
}

func TestFloat32Invert(t *testing.T) {
	m := NewMatrix([]float32{4, 2, 7, 6}, 2, 2)
	prod := m.Mult(m.Invert())
	for i, x := range Identity[float32](2).Vals {
		if math.Abs(float64(prod.Vals[i]-x)) > 1e-5 {
			t.Errorf("%d) expected %g, got %g", i, x, prod.Vals[i])
		}
	}
}

func TestJSON(t *testing.T) {
	m := fromRows([][]float64{{1, 2, 3}, {4, 5, 6}})
	data, err := json.Marshal(m)
	require.NoError(t, err)
	assert.JSONEq(t, `[[1,4],[2,5],[3,6]]`, string(data))

	out := &Matrix[float64]{}
	require.NoError(t, json.Unmarshal(data, out))
	assert.Equal(t, m, out)

	assert.Error(t, json.Unmarshal([]byte(`[[1,2],[3]]`), out))
	assert.Error(t, json.Unmarshal([]byte(`[]`), out))

	v := Vector[float64]{1, 2, 3}
	data, err = json.Marshal(v)
	require.NoError(t, err)
	assert.Equal(t, "[1,2,3]", string(data))
}

func vecEpsEq(v Vector[float64], exp []float64, eps float64) bool {
	for i := range exp {
		if !epsEq(v[i], exp[i], eps) {
			return false
		}
	}
	return true
}

func TestCamera(t *testing.T) {
	fovy, aspect, near, far := math.Pi/3, 1.5, 0.1, 100.0
	persp := Perspective(fovy, aspect, near, far)
	h := math.Tan(fovy / 2)

	table := []struct {
		x, y, z float64
		exp     [3]float64
	}{
		{0, 0, -near, [3]float64{0, 0, -1}},
		{0, 0, -far, [3]float64{0, 0, 1}},
		{0, 2 * h, -2, [3]float64{0, 1, 0}},
		{-3 * aspect * h, 0, -3, [3]float64{-1, 0, 0}},
	}
	for i, test := range table {
		x, y, z := Project(persp, test.x, test.y, test.z)
		if !epsEq(x, test.exp[0], 1e-9) || !epsEq(y, test.exp[1], 1e-9) ||
			(i < 2 && !epsEq(z, test.exp[2], 1e-9)) {
			t.Errorf("%d) expected %v, got [%g %g %g]", i, test.exp, x, y, z)
		}
	}

	eye, center, up := [3]float64{3, 4, 5}, [3]float64{0, 1, -1}, [3]float64{0, 1, 0}
	look := LookAt(eye, center, up)
	if v := look.MultVec(Vector[float64]{3, 4, 5, 1}); !vecEpsEq(v, []float64{0, 0, 0, 1}, 1e-12) {
		t.Errorf("LookAt: expected eye at the origin, got %v", v)
	}
	if v := look.MultVec(Vector[float64]{0, 1, -1, 1}); !vecEpsEq(v, []float64{0, 0, -math.Sqrt(54), 1}, 1e-12) {
		t.Errorf("LookAt: expected center on the -z axis, got %v", v)
	}
	v := look.MultVec(Vector[float64]{3, 5, 5, 1})
	assert.Greater(t, v.Y(), 0.0)

	if v := Translate(1.0, -2.0, 3.0).MultVec(Vector[float64]{1, 2, 3, 1}); !vecEpsEq(v, []float64{2, 0, 6, 1}, 0) {
		t.Errorf("Translate: got %v", v)
	}
	if v := Scale(2.0, 3.0, 4.0).MultVec(Vector[float64]{1, 2, 3, 1}); !vecEpsEq(v, []float64{2, 6, 12, 1}, 0) {
		t.Errorf("Scale: got %v", v)
	}

	x, y, z := Project(look, center[0], center[1], center[2])
	assert.InDelta(t, 0, x, 1e-12)
	assert.InDelta(t, 0, y, 1e-12)
	assert.Less(t, z, 0.0)

	persp32 := Perspective[float32](float32(fovy), float32(aspect), float32(near), float32(far))
	for i := range persp.Vals {
		assert.InDelta(t, persp.Vals[i], float64(persp32.Vals[i]), 1e-4, "%d)", i)
	}
}

func TestFromMat4(t *testing.T) {
	g := mgl64.HomogRotate3DZ(math.Pi / 2).Mul4(mgl64.Translate3D(1, 0, 0))
	m := FromMat4[float64](g)
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			if m.At(row, col) != g.At(row, col) {
				t.Errorf("(%d, %d) expected %g, got %g", row, col, g.At(row, col), m.At(row, col))
			}
		}
	}
	v := m.MultVec(Vector[float64]{0, 0, 0, 1})
	assert.True(t, vecEpsEq(v, []float64{0, 1, 0, 1}, 1e-12), "%v", v)
}

func BenchmarkInvert4(b *testing.B) {
	m := fromRows(squares[3])
	for i := 0; i < b.N; i++ {
		m.Invert()
	}
}

func BenchmarkMult4(b *testing.B) {
	m := fromRows(squares[3])
	out := Zeros[float64](4, 4)
	for i := 0; i < b.N; i++ {
		m.MultAt(m, out)
	}
}
