package script

import (
	"fmt"
	"strings"

	zygo "github.com/glycerine/zygomys/zygo"
	"github.com/pkg/errors"

	"github.com/phil-mansfield/athena/graph"
)

const kwPrefix = "__kw_"

// sexpNode is a reference to one output of a scene node.
type sexpNode struct {
	name string
	port int
}

func (n *sexpNode) SexpString(ps *zygo.PrintState) string {
	if n.port == 0 {
		return fmt.Sprintf("(node %q)", n.name)
	}
	return fmt.Sprintf("(node %q %d)", n.name, n.port)
}

func (n *sexpNode) Type() *zygo.RegisteredType { return nil }

func (n *sexpNode) input() graph.Input { return graph.RefPort(n.name, n.port) }

func keyword(s zygo.Sexp) (string, bool) {
	str, ok := s.(*zygo.SexpStr)
	if !ok || !strings.HasPrefix(str.S, kwPrefix) {
		return "", false
	}
	return str.S[len(kwPrefix):], true
}

// splitArgs separates keyword arguments from positional ones.
func splitArgs(args []zygo.Sexp) (pos []zygo.Sexp, kw map[string]zygo.Sexp, err error) {
	kw = map[string]zygo.Sexp{}
	for i := 0; i < len(args); i++ {
		name, ok := keyword(args[i])
		if !ok {
			pos = append(pos, args[i])
			continue
		}
		if i+1 == len(args) {
			return nil, nil, errors.Errorf("keyword :%s has no value", name)
		}
		kw[name] = args[i+1]
		i++
	}
	return pos, kw, nil
}

func toFloat(s zygo.Sexp) (float64, error) {
	switch v := s.(type) {
	case *zygo.SexpInt:
		return float64(v.Val), nil
	case *zygo.SexpFloat:
		return v.Val, nil
	}
	return 0, errors.Errorf("expected number, got %T (%s)", s, s.SexpString(nil))
}

func toString(s zygo.Sexp) (string, error) {
	if str, ok := s.(*zygo.SexpStr); ok {
		return str.S, nil
	}
	return "", errors.Errorf("expected string, got %T (%s)", s, s.SexpString(nil))
}

// toInput accepts a number or a node reference.
func toInput(s zygo.Sexp) (graph.Input, error) {
	if n, ok := s.(*sexpNode); ok {
		return n.input(), nil
	}
	x, err := toFloat(s)
	if err != nil {
		return graph.Input{}, errors.Errorf("expected number or node, got %T (%s)", s, s.SexpString(nil))
	}
	return graph.Lit(x), nil
}

// builder accumulates the nodes created by one evaluation.
type builder struct {
	scene  *graph.Scene
	counts map[graph.NodeKind]int
	done   <-chan struct{}
}

func newBuilder(done <-chan struct{}) *builder {
	return &builder{scene: graph.New(), counts: map[graph.NodeKind]int{}, done: done}
}

// errAbandoned is returned by every builtin once the evaluation has timed out
// or been superseded.
var errAbandoned = errors.New("evaluation abandoned")

func (b *builder) abandoned() bool {
	select {
	case <-b.done:
		return true
	default:
		return false
	}
}

// add creates a node of the given kind. Keywords shared by every builtin
// (:name, and :color and :scale for show) are read from kw.
func (b *builder) add(kind graph.NodeKind, inputs []graph.Input, kw map[string]zygo.Sexp) (*sexpNode, error) {
	n := &graph.Node{Kind: kind, Inputs: inputs}

	for key, val := range kw {
		var err error
		switch key {
		case "name":
			n.Name, err = toString(val)
		case "color":
			n.Color, err = toString(val)
		case "scale":
			n.Scale, err = toFloat(val)
		case "mul":
		default:
			err = errors.Errorf("unknown keyword :%s", key)
		}
		if err != nil {
			return nil, errors.Wrapf(err, "%s", kind)
		}
	}

	if n.Name == "" {
		b.counts[kind]++
		n.Name = fmt.Sprintf("%s-%d", kind, b.counts[kind])
	}
	if err := n.CheckArity(); err != nil {
		return nil, err
	}
	if err := b.scene.Add(n); err != nil {
		return nil, err
	}
	return &sexpNode{name: n.Name}, nil
}

// motorKinds are the node kinds whose first input is the :mul exponent.
var motorKinds = map[graph.NodeKind]bool{
	graph.NodeMotor2PointPoint:  true,
	graph.NodeMotor2LineLine:    true,
	graph.NodeMotor2Reconstruct: true,
	graph.NodeMotor3PointPoint:  true,
	graph.NodeMotor3LineLine:    true,
	graph.NodeMotor3PlanePlane:  true,
	graph.NodeMotor3Reconstruct: true,
}

// nodeBuiltins maps Lisp function names to the node kinds they create.
// Kebab-case in the source is rewritten to snake_case before evaluation.
var nodeBuiltins = map[string]graph.NodeKind{
	"clock":  graph.NodeTime,
	"modulo": graph.NodeModulo,
	"scalar": graph.NodeScalar,
	"point2": graph.NodePoint2,
	"line2":  graph.NodeLine2,
	"point3": graph.NodePoint3,
	"plane3": graph.NodePlane3,

	"motor2_point_point": graph.NodeMotor2PointPoint,
	"motor2_line_line":   graph.NodeMotor2LineLine,
	"motor2_reconstruct": graph.NodeMotor2Reconstruct,
	"motor3_point_point": graph.NodeMotor3PointPoint,
	"motor3_line_line":   graph.NodeMotor3LineLine,
	"motor3_plane_plane": graph.NodeMotor3PlanePlane,
	"motor3_reconstruct": graph.NodeMotor3Reconstruct,

	"transform": graph.NodeApply,
	"meet":      graph.NodeMeet,
	"join":      graph.NodeJoin,
	"project":   graph.NodeProject,
	"show":      graph.NodeShow,
}

func (b *builder) register(env *zygo.Zlisp) {
	for fname, kind := range nodeBuiltins {
		kind := kind
		env.AddFunction(fname, func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
			if b.abandoned() {
				return zygo.SexpNull, errAbandoned
			}
			pos, kw, err := splitArgs(args)
			if err != nil {
				return zygo.SexpNull, errors.Wrap(err, name)
			}

			var inputs []graph.Input
			if motorKinds[kind] {
				mul := graph.Lit(1)
				if s, ok := kw["mul"]; ok {
					if mul, err = toInput(s); err != nil {
						return zygo.SexpNull, errors.Wrapf(err, "%s: mul", name)
					}
				}
				inputs = append(inputs, mul)
			} else if _, ok := kw["mul"]; ok {
				return zygo.SexpNull, errors.Errorf("%s does not take :mul", name)
			}

			for i, arg := range pos {
				in, err := toInput(arg)
				if err != nil {
					return zygo.SexpNull, errors.Wrapf(err, "%s: argument %d", name, i)
				}
				inputs = append(inputs, in)
			}

			n, err := b.add(kind, inputs, kw)
			if err != nil {
				return zygo.SexpNull, err
			}
			return n, nil
		})
	}

	// (output node i) selects the i-th output of a transform with several
	// objects.
	env.AddFunction("output", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if b.abandoned() {
			return zygo.SexpNull, errAbandoned
		}
		if len(args) != 2 {
			return zygo.SexpNull, errors.Errorf("output takes a node and an index, got %d arguments", len(args))
		}
		n, ok := args[0].(*sexpNode)
		if !ok {
			return zygo.SexpNull, errors.Errorf("output: expected node, got %T", args[0])
		}
		i, err := toFloat(args[1])
		if err != nil {
			return zygo.SexpNull, errors.Wrap(err, "output")
		}
		port := int(i)
		if float64(port) != i || port < 0 || port >= b.scene.Lookup(n.name).Outputs() {
			return zygo.SexpNull, errors.Errorf("output: %q has no output %g", n.name, i)
		}
		return &sexpNode{name: n.name, port: port}, nil
	})
}
