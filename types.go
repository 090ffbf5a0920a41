/*package athena is a projective geometric algebra library for 2D and 3D
geometry. The algebra lives in the pga package and is generic over the float
type; this package names the float64 versions used by the scene graph and
the command line tool.
*/
package athena

import (
	"github.com/phil-mansfield/athena/mat"
	"github.com/phil-mansfield/athena/pga"
)

type (
	Point2 = pga.Point2[float64]
	Line2  = pga.Line2[float64]
	Motor2 = pga.Motor2[float64]

	Point3 = pga.Point3[float64]
	Line3  = pga.Line3[float64]
	Plane3 = pga.Plane3[float64]
	Motor3 = pga.Motor3[float64]

	Vector = mat.Vector[float64]
	Matrix = mat.Matrix[float64]
)

var (
	Point2At     = pga.Point2At[float64]
	IdealPoint2  = pga.IdealPoint2[float64]
	Line2FromABC = pga.Line2FromABC[float64]

	Point3At    = pga.Point3At[float64]
	IdealPoint3 = pga.IdealPoint3[float64]
	NewPlane3   = pga.NewPlane3[float64]

	Motor2PointPoint  = pga.Motor2PointPoint[float64]
	Motor2LineLine    = pga.Motor2LineLine[float64]
	Motor2Reconstruct = pga.Motor2Reconstruct[float64]

	Motor3PointPoint  = pga.Motor3PointPoint[float64]
	Motor3LineLine    = pga.Motor3LineLine[float64]
	Motor3PlanePlane  = pga.Motor3PlanePlane[float64]
	Motor3Reconstruct = pga.Motor3Reconstruct[float64]
)
