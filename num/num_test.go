package num

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

type myFloat float32

func TestConstants(t *testing.T) {
	assert.Equal(t, 0.0, Zero[float64]())
	assert.Equal(t, float32(1), One[float32]())
	assert.Equal(t, 2.0, Two[float64]())
	assert.Equal(t, 0.5, Half[float64]())
	assert.Equal(t, float32(1e-6), Epsilon[float32]())
	assert.Equal(t, 1e-12, Epsilon[float64]())
	assert.Equal(t, myFloat(1e-6), Epsilon[myFloat]())
}

func TestFunctions(t *testing.T) {
	table := []struct {
		name     string
		got, exp float64
	}{
		{"sqrt", Sqrt(16.0), 4},
		{"abs", Abs(-3.5), 3.5},
		{"sin", Sin(math.Pi / 2), 1},
		{"cos", Cos(0.0), 1},
		{"asin", Asin(1.0), math.Pi / 2},
		{"acos", Acos(1.0), 0},
		{"tan", Tan(math.Pi / 4), 1},
		{"atan", Atan(1.0), math.Pi / 4},
		{"atan2", Atan2(1.0, -1.0), 3 * math.Pi / 4},
		{"recip", Recip(4.0), 0.25},
	}

	for i, test := range table {
		if !EpsEq(test.got, test.exp, 1e-12) {
			t.Errorf("%d) %s: expected %g, got %g", i, test.name, test.exp, test.got)
		}
	}
}

func TestSinCos(t *testing.T) {
	s, c := SinCos(float32(math.Pi / 6))
	assert.InDelta(t, 0.5, float64(s), 1e-6)
	assert.InDelta(t, math.Sqrt(3)/2, float64(c), 1e-6)
}

func TestIsNaN(t *testing.T) {
	assert.True(t, IsNaN(math.NaN()))
	assert.False(t, IsNaN(1.0))
	assert.True(t, IsNaN(float32(0)/Zero[float32]()))
}
