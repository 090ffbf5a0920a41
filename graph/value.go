package graph

import (
	"encoding/json"
	"fmt"

	"github.com/pkg/errors"

	"github.com/phil-mansfield/athena/pga"
)

// Kind identifies which member of a Value is set.
type Kind int

const (
	KindNil Kind = iota
	KindScalar
	KindPoint2
	KindLine2
	KindMotor2
	KindPoint3
	KindLine3
	KindPlane3
	KindMotor3
)

var kindNames = []string{
	"nil", "scalar", "point2", "line2", "motor2",
	"point3", "line3", "plane3", "motor3",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// ParseKind is the inverse of Kind.String.
func ParseKind(s string) (Kind, error) {
	for i, name := range kindNames {
		if name == s {
			return Kind(i), nil
		}
	}
	return KindNil, errors.Errorf("unknown value kind %q", s)
}

func (k Kind) MarshalText() ([]byte, error) { return []byte(k.String()), nil }

func (k *Kind) UnmarshalText(text []byte) error {
	var err error
	*k, err = ParseKind(string(text))
	return err
}

// Value is the geometric object flowing along the edges of a scene. Only the
// member named by Kind is meaningful. The zero Value is Nil.
type Value struct {
	Kind   Kind
	Scalar float64
	Point2 pga.Point2[float64]
	Line2  pga.Line2[float64]
	Motor2 pga.Motor2[float64]
	Point3 pga.Point3[float64]
	Line3  pga.Line3[float64]
	Plane3 pga.Plane3[float64]
	Motor3 pga.Motor3[float64]
}

func ScalarValue(x float64) Value { return Value{Kind: KindScalar, Scalar: x} }

func Point2Value(p pga.Point2[float64]) Value { return Value{Kind: KindPoint2, Point2: p} }

func Line2Value(l pga.Line2[float64]) Value { return Value{Kind: KindLine2, Line2: l} }

func Motor2Value(m pga.Motor2[float64]) Value { return Value{Kind: KindMotor2, Motor2: m} }

func Point3Value(p pga.Point3[float64]) Value { return Value{Kind: KindPoint3, Point3: p} }

func Line3Value(l pga.Line3[float64]) Value { return Value{Kind: KindLine3, Line3: l} }

func Plane3Value(p pga.Plane3[float64]) Value { return Value{Kind: KindPlane3, Plane3: p} }

func Motor3Value(m pga.Motor3[float64]) Value { return Value{Kind: KindMotor3, Motor3: m} }

func (v Value) IsNil() bool { return v.Kind == KindNil }

// String formats v the way the debug views label it: coordinates for finite
// points, slope and intercept for lines.
func (v Value) String() string {
	switch v.Kind {
	case KindScalar:
		return fmt.Sprintf("Scalar: %g", v.Scalar)
	case KindPoint2:
		if v.Point2.IsIdeal() {
			x, y := v.Point2.Coords()
			return fmt.Sprintf("Ideal Point2: (%g, %g)", x, y)
		}
		x, y := v.Point2.Normalized().Coords()
		return fmt.Sprintf("Point2: (%g, %g)", x, y)
	case KindLine2:
		a, b, c := v.Line2.ABC()
		return fmt.Sprintf("Line2: %gx + %gy + %g = 0", a, b, c)
	case KindMotor2:
		return fmt.Sprintf("Motor2: %v", v.Motor2.Multivector())
	case KindPoint3:
		if v.Point3.IsIdeal() {
			x, y, z := v.Point3.Coords()
			return fmt.Sprintf("Ideal Point3: (%g, %g, %g)", x, y, z)
		}
		x, y, z := v.Point3.Normalized().Coords()
		return fmt.Sprintf("Point3: (%g, %g, %g)", x, y, z)
	case KindLine3:
		return fmt.Sprintf("Line3: %v", v.Line3.Multivector())
	case KindPlane3:
		p := v.Plane3
		return fmt.Sprintf("Plane3: %gx + %gy + %gz + %g = 0", p.E1, p.E2, p.E3, p.E0)
	case KindMotor3:
		return fmt.Sprintf("Motor3: %v", v.Motor3.Multivector())
	}
	return "Nil"
}

// valueJSON is the on-disk shape of a Value: its kind plus the one member
// that kind selects.
type valueJSON struct {
	Kind   Kind                 `json:"kind"`
	Scalar *float64             `json:"scalar,omitempty"`
	Point2 *pga.Point2[float64] `json:"point2,omitempty"`
	Line2  *pga.Line2[float64]  `json:"line2,omitempty"`
	Motor2 *pga.Motor2[float64] `json:"motor2,omitempty"`
	Point3 *pga.Point3[float64] `json:"point3,omitempty"`
	Line3  *pga.Line3[float64]  `json:"line3,omitempty"`
	Plane3 *pga.Plane3[float64] `json:"plane3,omitempty"`
	Motor3 *pga.Motor3[float64] `json:"motor3,omitempty"`
}

func (v Value) MarshalJSON() ([]byte, error) {
	out := valueJSON{Kind: v.Kind}
	switch v.Kind {
	case KindScalar:
		out.Scalar = &v.Scalar
	case KindPoint2:
		out.Point2 = &v.Point2
	case KindLine2:
		out.Line2 = &v.Line2
	case KindMotor2:
		out.Motor2 = &v.Motor2
	case KindPoint3:
		out.Point3 = &v.Point3
	case KindLine3:
		out.Line3 = &v.Line3
	case KindPlane3:
		out.Plane3 = &v.Plane3
	case KindMotor3:
		out.Motor3 = &v.Motor3
	}
	return json.Marshal(out)
}

func (v *Value) UnmarshalJSON(data []byte) error {
	var in valueJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return errors.Wrap(err, "decoding value")
	}

	*v = Value{Kind: in.Kind}
	missing := false
	switch in.Kind {
	case KindNil:
	case KindScalar:
		missing = in.Scalar == nil
		if !missing {
			v.Scalar = *in.Scalar
		}
	case KindPoint2:
		missing = in.Point2 == nil
		if !missing {
			v.Point2 = *in.Point2
		}
	case KindLine2:
		missing = in.Line2 == nil
		if !missing {
			v.Line2 = *in.Line2
		}
	case KindMotor2:
		missing = in.Motor2 == nil
		if !missing {
			v.Motor2 = *in.Motor2
		}
	case KindPoint3:
		missing = in.Point3 == nil
		if !missing {
			v.Point3 = *in.Point3
		}
	case KindLine3:
		missing = in.Line3 == nil
		if !missing {
			v.Line3 = *in.Line3
		}
	case KindPlane3:
		missing = in.Plane3 == nil
		if !missing {
			v.Plane3 = *in.Plane3
		}
	case KindMotor3:
		missing = in.Motor3 == nil
		if !missing {
			v.Motor3 = *in.Motor3
		}
	}
	if missing {
		return errors.Errorf("%s value has no %q member", in.Kind, in.Kind.String())
	}
	return nil
}
