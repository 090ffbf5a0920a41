package graph

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	gonumgraph "gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"
	"sigs.k8s.io/yaml"
)

// Scene is a directed acyclic graph of nodes. Nodes refer to each other by
// name; the order of Nodes only breaks ties between independent nodes.
type Scene struct {
	Nodes []*Node `json:"nodes"`

	index map[string]int
}

// New returns an empty Scene.
func New() *Scene {
	return &Scene{index: map[string]int{}}
}

// CycleError is returned when the references between nodes form a cycle.
type CycleError struct {
	Cycles [][]string
}

func (e *CycleError) Error() string {
	parts := make([]string, len(e.Cycles))
	for i, c := range e.Cycles {
		parts[i] = "[" + strings.Join(c, ", ") + "]"
	}
	return "scene contains cycles: " + strings.Join(parts, "; ")
}

// UnknownNodeError is returned when an input refers to a node which does not
// exist.
type UnknownNodeError struct {
	Node, Ref string
}

func (e *UnknownNodeError) Error() string {
	return fmt.Sprintf("node %q refers to unknown node %q", e.Node, e.Ref)
}

// Add appends n to the scene. Names must be unique and non-empty.
func (s *Scene) Add(n *Node) error {
	if n.Name == "" {
		return errors.New("node has no name")
	}
	if s.index == nil {
		s.reindex()
	}
	if _, ok := s.index[n.Name]; ok {
		return errors.Errorf("duplicate node name %q", n.Name)
	}
	s.index[n.Name] = len(s.Nodes)
	s.Nodes = append(s.Nodes, n)
	return nil
}

func (s *Scene) reindex() {
	s.index = make(map[string]int, len(s.Nodes))
	for i, n := range s.Nodes {
		s.index[n.Name] = i
	}
}

// Lookup returns the node with the given name, or nil.
func (s *Scene) Lookup(name string) *Node {
	if s.index == nil {
		s.reindex()
	}
	i, ok := s.index[name]
	if !ok {
		return nil
	}
	return s.Nodes[i]
}

func (s *Scene) NodeCount() int { return len(s.Nodes) }

// Validate checks node kinds, arities and references, and returns the
// evaluation order of the nodes.
func (s *Scene) Validate() ([]*Node, error) {
	s.reindex()
	if len(s.index) != len(s.Nodes) {
		return nil, errors.New("scene contains duplicate node names")
	}

	g := simple.NewDirectedGraph()
	for i := range s.Nodes {
		g.AddNode(simple.Node(i))
	}

	for i, n := range s.Nodes {
		if n.Name == "" {
			return nil, errors.Errorf("node %d has no name", i)
		}
		if err := n.CheckArity(); err != nil {
			return nil, err
		}

		for _, in := range n.Inputs {
			if in.IsLiteral() {
				continue
			}
			j, ok := s.index[in.Ref]
			if !ok {
				return nil, &UnknownNodeError{n.Name, in.Ref}
			}
			if j == i {
				return nil, &CycleError{[][]string{{n.Name}}}
			}
			if out := s.Nodes[j].Outputs(); in.Port >= out {
				return nil, errors.Errorf("node %q reads output %d of %q, which has %d outputs",
					n.Name, in.Port, in.Ref, out)
			}
			g.SetEdge(g.NewEdge(simple.Node(j), simple.Node(i)))
		}
	}

	sorted, err := topo.SortStabilized(g, byID)
	if err != nil {
		if cycles, ok := err.(topo.Unorderable); ok {
			return nil, s.cycleError(cycles)
		}
		return nil, errors.Wrap(err, "ordering scene")
	}

	order := make([]*Node, len(sorted))
	for i, id := range sorted {
		order[i] = s.Nodes[id.ID()]
	}
	return order, nil
}

func byID(nodes []gonumgraph.Node) {
	sort.Slice(nodes, func(i, j int) bool { return nodes[i].ID() < nodes[j].ID() })
}

func (s *Scene) cycleError(cycles topo.Unorderable) error {
	out := &CycleError{}
	for _, c := range cycles {
		byID(c)
		names := make([]string, len(c))
		for i, id := range c {
			names[i] = s.Nodes[id.ID()].Name
		}
		out.Cycles = append(out.Cycles, names)
	}
	return out
}

// Shown is a value routed into a Show node.
type Shown struct {
	Name  string  `json:"name"`
	Value Value   `json:"value"`
	Color string  `json:"color,omitempty"`
	Scale float64 `json:"scale,omitempty"`
}

// Result holds every output of an evaluated scene.
type Result struct {
	Time   float64            `json:"time"`
	Values map[string][]Value `json:"values"`
	Shown  []Shown            `json:"shown"`
}

// Get returns the first output of the named node, or Nil.
func (r *Result) Get(name string) Value {
	if vals := r.Values[name]; len(vals) > 0 {
		return vals[0]
	}
	return Value{}
}

// Evaluate runs every node of s at time t, in dependency order. Shown values
// are listed in the order their Show nodes appear in the scene.
func (s *Scene) Evaluate(t float64) (*Result, error) {
	order, err := s.Validate()
	if err != nil {
		return nil, err
	}

	res := &Result{Time: t, Values: make(map[string][]Value, len(order))}
	for _, n := range order {
		args := make([]Value, len(n.Inputs))
		for i, in := range n.Inputs {
			if in.IsLiteral() {
				args[i] = ScalarValue(in.Literal)
			} else {
				args[i] = res.Values[in.Ref][in.Port]
			}
		}

		out, err := n.evaluate(args, t)
		if err != nil {
			return nil, err
		}
		res.Values[n.Name] = out

		if n.Kind == NodeShow {
			res.Shown = append(res.Shown, Shown{n.Name, args[0], n.Color, n.Scale})
		}
		logrus.WithField("node", n.Name).Debugf("%s = %v", n.Kind, out)
	}

	sort.SliceStable(res.Shown, func(i, j int) bool {
		return s.index[res.Shown[i].Name] < s.index[res.Shown[j].Name]
	})
	return res, nil
}

// Parse decodes a YAML (or JSON) scene and validates it.
func Parse(data []byte) (*Scene, error) {
	s := New()
	if err := yaml.UnmarshalStrict(data, s); err != nil {
		return nil, errors.Wrap(err, "decoding scene")
	}
	if _, err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// Load reads the scene stored at path.
func Load(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading scene %s", path)
	}
	s, err := Parse(data)
	return s, errors.Wrapf(err, "loading scene %s", path)
}

// Marshal encodes s as YAML.
func (s *Scene) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(s)
	return data, errors.Wrap(err, "encoding scene")
}

// Save writes s to path as YAML.
func (s *Scene) Save(path string) error {
	data, err := s.Marshal()
	if err != nil {
		return err
	}
	return errors.Wrapf(os.WriteFile(path, data, 0644), "writing scene %s", path)
}
