package mat

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/phil-mansfield/athena/num"
)

// FromMat4 copies a mathgl transform into a 4x4 Matrix. Both are stored
// column by column.
func FromMat4[T num.Float](g mgl64.Mat4) *Matrix[T] {
	m := Zeros[T](4, 4)
	for i, x := range g {
		m.Vals[i] = T(x)
	}
	return m
}

func vec3[T num.Float](v [3]T) mgl64.Vec3 {
	return mgl64.Vec3{float64(v[0]), float64(v[1]), float64(v[2])}
}

// Translate returns the 4x4 transform which translates by (x, y, z).
func Translate[T num.Float](x, y, z T) *Matrix[T] {
	return FromMat4[T](mgl64.Translate3D(float64(x), float64(y), float64(z)))
}

// Scale returns the 4x4 transform which scales each axis independently.
func Scale[T num.Float](x, y, z T) *Matrix[T] {
	return FromMat4[T](mgl64.Scale3D(float64(x), float64(y), float64(z)))
}

// Perspective returns an OpenGL style projection matrix. fovy is the vertical
// field of view in radians.
func Perspective[T num.Float](fovy, aspect, near, far T) *Matrix[T] {
	return FromMat4[T](mgl64.Perspective(
		float64(fovy), float64(aspect), float64(near), float64(far),
	))
}

// LookAt returns the view matrix of a camera at eye looking towards center.
func LookAt[T num.Float](eye, center, up [3]T) *Matrix[T] {
	return FromMat4[T](mgl64.LookAtV(vec3(eye), vec3(center), vec3(up)))
}

// Project applies the 4x4 transform m to the point (x, y, z) and performs the
// perspective divide.
func Project[T num.Float](m *Matrix[T], x, y, z T) (px, py, pz T) {
	v := m.MultVec(Vector[T]{x, y, z, 1})
	return v.X() / v.W(), v.Y() / v.W(), v.Z() / v.W()
}
