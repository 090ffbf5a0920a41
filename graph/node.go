package graph

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/phil-mansfield/athena/pga"
)

// NodeKind names the operation a node performs.
type NodeKind string

const (
	NodeTime   NodeKind = "time"
	NodeModulo NodeKind = "modulo"

	NodeScalar NodeKind = "scalar"
	NodePoint2 NodeKind = "point2"
	NodeLine2  NodeKind = "line2"
	NodePoint3 NodeKind = "point3"
	NodePlane3 NodeKind = "plane3"

	NodeMotor2PointPoint  NodeKind = "motor2-point-point"
	NodeMotor2LineLine    NodeKind = "motor2-line-line"
	NodeMotor2Reconstruct NodeKind = "motor2-reconstruct"
	NodeMotor3PointPoint  NodeKind = "motor3-point-point"
	NodeMotor3LineLine    NodeKind = "motor3-line-line"
	NodeMotor3PlanePlane  NodeKind = "motor3-plane-plane"
	NodeMotor3Reconstruct NodeKind = "motor3-reconstruct"

	NodeApply   NodeKind = "apply"
	NodeMeet    NodeKind = "meet"
	NodeJoin    NodeKind = "join"
	NodeProject NodeKind = "project"
	NodeShow    NodeKind = "show"
)

// inputKinds lists the value kinds each typed node accepts. Nodes missing
// from the table take any value.
var inputKinds = map[NodeKind][]Kind{
	NodeTime:   {},
	NodeModulo: {KindScalar, KindScalar},
	NodeScalar: {KindScalar},
	NodePoint2: {KindScalar, KindScalar},
	NodeLine2:  {KindScalar, KindScalar, KindScalar},
	NodePoint3: {KindScalar, KindScalar, KindScalar},
	NodePlane3: {KindScalar, KindScalar, KindScalar, KindScalar},

	NodeMotor2PointPoint: {KindScalar, KindPoint2, KindPoint2},
	NodeMotor2LineLine:   {KindScalar, KindLine2, KindLine2},
	NodeMotor2Reconstruct: {
		KindScalar, KindPoint2, KindPoint2, KindPoint2, KindPoint2,
	},
	NodeMotor3PointPoint: {KindScalar, KindPoint3, KindPoint3},
	NodeMotor3LineLine:   {KindScalar, KindLine3, KindLine3},
	NodeMotor3PlanePlane: {KindScalar, KindPlane3, KindPlane3},
	NodeMotor3Reconstruct: {
		KindScalar, KindPoint3, KindPoint3, KindPoint3,
		KindPoint3, KindPoint3, KindPoint3,
	},
}

// untypedArity is the number of inputs of the nodes which accept any value.
// Apply takes a transform followed by one or more objects.
var untypedArity = map[NodeKind]int{
	NodeApply:   -2,
	NodeMeet:    2,
	NodeJoin:    2,
	NodeProject: 2,
	NodeShow:    1,
}

// Valid reports whether k is a known node kind.
func (k NodeKind) Valid() bool {
	_, typed := inputKinds[k]
	_, untyped := untypedArity[k]
	return typed || untyped
}

// Input is one input slot of a node: either a reference to an output of
// another node or a literal scalar. Scene files write references as "name"
// or "name:port" and literals as plain numbers.
type Input struct {
	Ref     string
	Port    int
	Literal float64
}

func Ref(name string) Input { return Input{Ref: name} }

func RefPort(name string, port int) Input { return Input{Ref: name, Port: port} }

func Lit(x float64) Input { return Input{Literal: x} }

func (in Input) IsLiteral() bool { return in.Ref == "" }

func (in Input) String() string {
	switch {
	case in.IsLiteral():
		return strconv.FormatFloat(in.Literal, 'g', -1, 64)
	case in.Port == 0:
		return in.Ref
	default:
		return in.Ref + ":" + strconv.Itoa(in.Port)
	}
}

func (in Input) MarshalJSON() ([]byte, error) {
	if in.IsLiteral() {
		return json.Marshal(in.Literal)
	}
	return json.Marshal(in.String())
}

func (in *Input) UnmarshalJSON(data []byte) error {
	var x float64
	if err := json.Unmarshal(data, &x); err == nil {
		*in = Lit(x)
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return errors.Errorf("input %s is neither a number nor a node reference", data)
	}
	if s == "" {
		return errors.New("empty node reference")
	}

	*in = Ref(s)
	if i := strings.LastIndexByte(s, ':'); i >= 0 {
		port, err := strconv.Atoi(s[i+1:])
		if err != nil || port < 0 || i == 0 {
			return errors.Errorf("malformed node reference %q", s)
		}
		*in = RefPort(s[:i], port)
	}
	return nil
}

// Node is a single operation in a Scene. Color and Scale only matter to Show
// nodes.
type Node struct {
	Name   string   `json:"name"`
	Kind   NodeKind `json:"kind"`
	Inputs []Input  `json:"inputs,omitempty"`
	Color  string   `json:"color,omitempty"`
	Scale  float64  `json:"scale,omitempty"`
}

// Outputs returns the number of values n produces.
func (n *Node) Outputs() int {
	switch n.Kind {
	case NodeShow:
		return 0
	case NodeApply:
		return max(len(n.Inputs)-1, 0)
	}
	return 1
}

// CheckArity returns an error if n has an unknown kind or the wrong number
// of inputs.
func (n *Node) CheckArity() error {
	if kinds, ok := inputKinds[n.Kind]; ok {
		if len(n.Inputs) != len(kinds) {
			return errors.Errorf("node %q (%s) takes %d inputs, got %d",
				n.Name, n.Kind, len(kinds), len(n.Inputs))
		}
		return nil
	}

	arity, ok := untypedArity[n.Kind]
	switch {
	case !ok:
		return errors.Errorf("node %q has unknown kind %q", n.Name, n.Kind)
	case arity < 0 && len(n.Inputs) < -arity:
		return errors.Errorf("node %q (%s) takes at least %d inputs, got %d",
			n.Name, n.Kind, -arity, len(n.Inputs))
	case arity >= 0 && len(n.Inputs) != arity:
		return errors.Errorf("node %q (%s) takes %d inputs, got %d",
			n.Name, n.Kind, arity, len(n.Inputs))
	}
	return nil
}

// evaluate computes the outputs of n from its resolved inputs at time t.
func (n *Node) evaluate(args []Value, t float64) ([]Value, error) {
	if kinds, ok := inputKinds[n.Kind]; ok {
		for i, k := range kinds {
			if args[i].Kind != k {
				return nil, errors.Errorf("node %q: input %d (%s) must be %s, got %s",
					n.Name, i, n.Inputs[i], k, args[i].Kind)
			}
		}
	}

	one := func(v Value) ([]Value, error) { return []Value{v}, nil }
	s := func(i int) float64 { return args[i].Scalar }

	switch n.Kind {
	case NodeTime:
		return one(ScalarValue(t))
	case NodeModulo:
		return one(ScalarValue(math.Mod(s(0), s(1))))
	case NodeScalar:
		return one(args[0])
	case NodePoint2:
		return one(Point2Value(pga.Point2At(s(0), s(1))))
	case NodeLine2:
		return one(Line2Value(pga.Line2FromABC(s(0), s(1), s(2)).Normalized()))
	case NodePoint3:
		return one(Point3Value(pga.Point3At(s(0), s(1), s(2))))
	case NodePlane3:
		return one(Plane3Value(pga.NewPlane3(s(3), s(0), s(1), s(2)).Normalized()))

	case NodeMotor2PointPoint:
		m := pga.Motor2PointPoint(args[1].Point2, args[2].Point2)
		return one(Motor2Value(m.Pow(s(0))))
	case NodeMotor2LineLine:
		m := pga.Motor2LineLine(args[1].Line2, args[2].Line2)
		return one(Motor2Value(m.Pow(s(0))))
	case NodeMotor2Reconstruct:
		a := [2]pga.Point2[float64]{args[1].Point2, args[2].Point2}
		b := [2]pga.Point2[float64]{args[3].Point2, args[4].Point2}
		return one(Motor2Value(pga.Motor2Reconstruct(a, b).Pow(s(0))))
	case NodeMotor3PointPoint:
		m := pga.Motor3PointPoint(args[1].Point3, args[2].Point3)
		return one(Motor3Value(m.Pow(s(0))))
	case NodeMotor3LineLine:
		m := pga.Motor3LineLine(args[1].Line3, args[2].Line3)
		return one(Motor3Value(m.Pow(s(0))))
	case NodeMotor3PlanePlane:
		m := pga.Motor3PlanePlane(args[1].Plane3, args[2].Plane3)
		return one(Motor3Value(m.Pow(s(0))))
	case NodeMotor3Reconstruct:
		a := [3]pga.Point3[float64]{args[1].Point3, args[2].Point3, args[3].Point3}
		b := [3]pga.Point3[float64]{args[4].Point3, args[5].Point3, args[6].Point3}
		return one(Motor3Value(pga.Motor3Reconstruct(a, b).Pow(s(0))))

	case NodeApply:
		out := make([]Value, len(args)-1)
		for i := range out {
			out[i] = Apply(args[0], args[i+1])
		}
		return out, nil
	case NodeMeet:
		return one(Meet(args[0], args[1]))
	case NodeJoin:
		return one(Join(args[0], args[1]))
	case NodeProject:
		return one(Project(args[0], args[1]))
	case NodeShow:
		return nil, nil
	}
	return nil, errors.Errorf("node %q has unknown kind %q", n.Name, n.Kind)
}
