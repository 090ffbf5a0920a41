package graph

// Apply uses transform to act on geom. Motors move points, lines and planes;
// points, lines and planes reflect whatever they can reflect. Unsupported
// pairs give Nil.
func Apply(transform, geom Value) Value {
	switch transform.Kind {
	case KindLine2:
		switch geom.Kind {
		case KindPoint2:
			return Point2Value(transform.Line2.ReflectPoint(geom.Point2))
		case KindLine2:
			return Line2Value(transform.Line2.ReflectLine(geom.Line2))
		}
	case KindPoint2:
		switch geom.Kind {
		case KindPoint2:
			return Point2Value(transform.Point2.ReflectPoint(geom.Point2))
		case KindLine2:
			return Line2Value(transform.Point2.ReflectLine(geom.Line2))
		}
	case KindMotor2:
		switch geom.Kind {
		case KindPoint2:
			return Point2Value(transform.Motor2.MovePoint(geom.Point2))
		case KindLine2:
			return Line2Value(transform.Motor2.MoveLine(geom.Line2))
		}
	case KindPlane3:
		switch geom.Kind {
		case KindPoint3:
			return Point3Value(transform.Plane3.ReflectPoint(geom.Point3))
		case KindPlane3:
			return Plane3Value(transform.Plane3.ReflectPlane(geom.Plane3))
		}
	case KindMotor3:
		switch geom.Kind {
		case KindPoint3:
			return Point3Value(transform.Motor3.MovePoint(geom.Point3))
		case KindLine3:
			return Line3Value(transform.Motor3.MoveLine(geom.Line3))
		case KindPlane3:
			return Plane3Value(transform.Motor3.MovePlane(geom.Plane3))
		}
	}
	return Value{}
}

// Meet intersects a and b.
func Meet(a, b Value) Value {
	switch {
	case a.Kind == KindLine2 && b.Kind == KindLine2:
		return Point2Value(a.Line2.Meet(b.Line2))
	case a.Kind == KindPlane3 && b.Kind == KindPlane3:
		return Line3Value(a.Plane3.Meet(b.Plane3))
	case a.Kind == KindPlane3 && b.Kind == KindLine3:
		return Point3Value(a.Plane3.MeetLine(b.Line3))
	case a.Kind == KindLine3 && b.Kind == KindPlane3:
		return Point3Value(a.Line3.MeetPlane(b.Plane3))
	}
	return Value{}
}

// Join returns the smallest object containing both a and b.
func Join(a, b Value) Value {
	switch {
	case a.Kind == KindPoint2 && b.Kind == KindPoint2:
		return Line2Value(a.Point2.Join(b.Point2))
	case a.Kind == KindPoint3 && b.Kind == KindPoint3:
		return Line3Value(a.Point3.Join(b.Point3))
	case a.Kind == KindLine3 && b.Kind == KindPoint3:
		return Plane3Value(a.Line3.JoinPoint(b.Point3))
	case a.Kind == KindPoint3 && b.Kind == KindLine3:
		return Plane3Value(b.Line3.JoinPoint(a.Point3))
	}
	return Value{}
}

// Project projects a onto b. Points land on the closest point of b; lines and
// planes become the parallel copy passing through the point b.
func Project(a, b Value) Value {
	switch {
	case a.Kind == KindPoint2 && b.Kind == KindLine2:
		return Point2Value(a.Point2.ProjectTo(b.Line2))
	case a.Kind == KindLine2 && b.Kind == KindPoint2:
		return Line2Value(a.Line2.ProjectTo(b.Point2))
	case a.Kind == KindPoint3 && b.Kind == KindPlane3:
		return Point3Value(a.Point3.ProjectToPlane(b.Plane3))
	case a.Kind == KindPoint3 && b.Kind == KindLine3:
		return Point3Value(a.Point3.ProjectToLine(b.Line3))
	case a.Kind == KindLine3 && b.Kind == KindPoint3:
		return Line3Value(a.Line3.ProjectTo(b.Point3))
	case a.Kind == KindPlane3 && b.Kind == KindPoint3:
		return Plane3Value(a.Plane3.ProjectTo(b.Point3))
	}
	return Value{}
}
