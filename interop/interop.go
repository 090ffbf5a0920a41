/*package interop converts motors and primitives into the transform types of
other geometry libraries: sdfx for solid modelling, mathgl for OpenGL style
matrices and gonum's r3 for plain vectors.

The conversions are built from Motor3.Matrix and the motor's rotor, so the
results agree with Motor3.MovePoint up to rounding.
*/
package interop

import (
	"math"

	"github.com/deadsy/sdfx/sdf"
	v3 "github.com/deadsy/sdfx/vec/v3"
	"github.com/go-gl/mathgl/mgl64"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/phil-mansfield/athena/pga"
)

// Rigid is a motor split into a rotation about an axis through the origin
// followed by a translation.
type Rigid struct {
	Axis        [3]float64
	Angle       float64
	Translation [3]float64
}

// Decompose splits m into a rotation and a translation. The axis of an
// identity rotation is the zero vector.
func Decompose(m pga.Motor3[float64]) Rigid {
	M := m.Matrix()
	w := M.At(3, 3)
	rig := Rigid{Translation: [3]float64{M.At(0, 3) / w, M.At(1, 3) / w, M.At(2, 3) / w}}

	// The Euclidean part of a normalized motor is its rotor.
	n := m.Normalized()
	s, b := n.Scalar.S, n.BiVector
	axis := [3]float64{-b.E23, -b.E31, -b.E12}
	if s < 0 {
		s, axis = -s, [3]float64{-axis[0], -axis[1], -axis[2]}
	}

	sin := math.Sqrt(axis[0]*axis[0] + axis[1]*axis[1] + axis[2]*axis[2])
	if angle := 2 * math.Atan2(sin, s); angle >= 1e-9 {
		rig.Angle = angle
		rig.Axis = [3]float64{axis[0] / sin, axis[1] / sin, axis[2] / sin}
	}
	return rig
}

// Motor returns the motor which performs r.
func (r Rigid) Motor() pga.Motor3[float64] {
	t := r.Translation
	if r.Angle == 0 {
		return pga.Motor3Translation(t[0], t[1], t[2])
	}
	return pga.Motor3Translation(t[0], t[1], t[2]).
		Mul(pga.Motor3Rotation(r.Axis, r.Angle))
}

//////////
// sdfx //
//////////

// SDFMatrix converts m into an sdfx transform.
func SDFMatrix(m pga.Motor3[float64]) sdf.M44 {
	r := Decompose(m)
	t := sdf.Translate3d(v3.Vec{X: r.Translation[0], Y: r.Translation[1], Z: r.Translation[2]})
	if r.Angle == 0 {
		return t
	}
	axis := v3.Vec{X: r.Axis[0], Y: r.Axis[1], Z: r.Axis[2]}
	return t.Mul(sdf.Rotate3d(axis, r.Angle))
}

// TransformSDF moves the solid s by m.
func TransformSDF(s sdf.SDF3, m pga.Motor3[float64]) sdf.SDF3 {
	return sdf.Transform3D(s, SDFMatrix(m))
}

// Point3ToV3 returns the Euclidean coordinates of p.
func Point3ToV3(p pga.Point3[float64]) v3.Vec {
	x, y, z := p.Normalized().Coords()
	return v3.Vec{X: x, Y: y, Z: z}
}

////////////
// mathgl //
////////////

// Mat4 returns the homogeneous matrix of m. Both types are column-major.
func Mat4(m pga.Motor3[float64]) mgl64.Mat4 {
	var out mgl64.Mat4
	copy(out[:], m.Matrix().Vals)
	return out
}

// Quat returns the rotation part of m.
func Quat(m pga.Motor3[float64]) mgl64.Quat {
	r := Decompose(m)
	if r.Angle == 0 {
		return mgl64.QuatIdent()
	}
	return mgl64.QuatRotate(r.Angle, mgl64.Vec3(r.Axis))
}

// MotorFromMat4 returns the motor which moves points the same way as the
// rigid transform mat. Scaling and shearing in mat are not representable.
func MotorFromMat4(mat mgl64.Mat4) pga.Motor3[float64] {
	frame := [3]mgl64.Vec3{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}}
	var a, b [3]pga.Point3[float64]
	for i, v := range frame {
		w := mgl64.TransformCoordinate(v, mat)
		a[i] = pga.Point3At(v[0], v[1], v[2])
		b[i] = pga.Point3At(w[0], w[1], w[2])
	}
	return pga.Motor3Reconstruct(a, b)
}

// Point3ToVec3 returns the Euclidean coordinates of p.
func Point3ToVec3(p pga.Point3[float64]) mgl64.Vec3 {
	x, y, z := p.Normalized().Coords()
	return mgl64.Vec3{x, y, z}
}

////////
// r3 //
////////

// R3Transform is a rigid motion acting on gonum vectors.
type R3Transform struct {
	Rotation    r3.Rotation
	Translation r3.Vec
}

// NewR3Transform converts m.
func NewR3Transform(m pga.Motor3[float64]) R3Transform {
	r := Decompose(m)
	t := r3.Vec{X: r.Translation[0], Y: r.Translation[1], Z: r.Translation[2]}
	if r.Angle == 0 {
		return R3Transform{Rotation: r3.NewRotation(0, r3.Vec{Z: 1}), Translation: t}
	}
	axis := r3.Vec{X: r.Axis[0], Y: r.Axis[1], Z: r.Axis[2]}
	return R3Transform{Rotation: r3.NewRotation(r.Angle, axis), Translation: t}
}

// Apply moves v.
func (t R3Transform) Apply(v r3.Vec) r3.Vec {
	return r3.Add(t.Rotation.Rotate(v), t.Translation)
}

// Point3ToR3 returns the Euclidean coordinates of p.
func Point3ToR3(p pga.Point3[float64]) r3.Vec {
	x, y, z := p.Normalized().Coords()
	return r3.Vec{X: x, Y: y, Z: z}
}

// R3ToPoint3 returns the finite point at v.
func R3ToPoint3(v r3.Vec) pga.Point3[float64] {
	return pga.Point3At(v.X, v.Y, v.Z)
}

// PlaneNormal returns the unit normal n of p and its offset d, such that the
// plane is the set of points x with n.x + d = 0.
func PlaneNormal(p pga.Plane3[float64]) (n r3.Vec, d float64) {
	p = p.Normalized()
	return r3.Vec{X: p.E1, Y: p.E2, Z: p.E3}, p.E0
}
