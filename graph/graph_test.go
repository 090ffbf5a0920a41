package graph

import (
	"math"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"sigs.k8s.io/yaml"

	"github.com/phil-mansfield/athena/pga"
)

const eps = 1e-9

func point2Near(t *testing.T, v Value, x, y float64) {
	t.Helper()
	require.Equal(t, KindPoint2, v.Kind, "value %v", v)
	px, py := v.Point2.Normalized().Coords()
	assert.InDelta(t, x, px, eps)
	assert.InDelta(t, y, py, eps)
}

func point3Near(t *testing.T, v Value, x, y, z float64) {
	t.Helper()
	require.Equal(t, KindPoint3, v.Kind, "value %v", v)
	px, py, pz := v.Point3.Normalized().Coords()
	assert.InDelta(t, x, px, eps)
	assert.InDelta(t, y, py, eps)
	assert.InDelta(t, z, pz, eps)
}

func TestKind(t *testing.T) {
	for k := KindNil; k <= KindMotor3; k++ {
		res, err := ParseKind(k.String())
		require.NoError(t, err)
		assert.Equal(t, k, res)
	}
	_, err := ParseKind("quaternion")
	assert.Error(t, err)
	assert.Equal(t, "Kind(42)", Kind(42).String())
}

func TestDispatch2(t *testing.T) {
	yAxis := Line2Value(pga.Line2FromABC(1.0, 0.0, 0.0))
	xAxis := Line2Value(pga.Line2FromABC(0.0, 1.0, 0.0))
	p := Point2Value(pga.Point2At(2.0, 3.0))
	origin := Point2Value(pga.Origin2[float64]())

	point2Near(t, Apply(yAxis, p), -2, 3)
	point2Near(t, Apply(origin, p), -2, -3)
	point2Near(t, Apply(Motor2Value(pga.Motor2Translation(1.0, -1.0)), p), 3, 2)
	point2Near(t, Meet(yAxis, xAxis), 0, 0)
	point2Near(t, Project(p, xAxis), 2, 0)

	moved := Apply(Motor2Value(pga.Motor2Rotation(math.Pi/2)), xAxis)
	require.Equal(t, KindLine2, moved.Kind)
	a, b, c := moved.Line2.ABC()
	assert.InDelta(t, 1, math.Abs(a), eps)
	assert.InDelta(t, 0, b, eps)
	assert.InDelta(t, 0, c, eps)

	line := Join(origin, p)
	require.Equal(t, KindLine2, line.Kind)
	assert.InDelta(t, 1.5, line.Line2.Tangent(), eps)

	parallel := Project(xAxis, p)
	require.Equal(t, KindLine2, parallel.Kind)
	assert.InDelta(t, 3, parallel.Line2.Y0(), eps)
}

func TestDispatch3(t *testing.T) {
	xy := Plane3Value(pga.PlaneXY[float64]())
	yz := Plane3Value(pga.PlaneYZ[float64]())
	p := Point3Value(pga.Point3At(1.0, 2.0, 3.0))
	q := Point3Value(pga.Point3At(1.0, 2.0, -1.0))

	point3Near(t, Apply(xy, p), 1, 2, -3)
	point3Near(t, Apply(Motor3Value(pga.Motor3Translation(1.0, 1.0, 1.0)), p), 2, 3, 4)
	point3Near(t, Project(p, xy), 1, 2, 0)

	line := Join(p, q)
	require.Equal(t, KindLine3, line.Kind)
	point3Near(t, Meet(xy, line), 1, 2, 0)
	point3Near(t, Meet(line, xy), 1, 2, 0)

	axis := Meet(xy, yz)
	require.Equal(t, KindLine3, axis.Kind)
	point3Near(t, Project(p, axis), 0, 2, 0)

	plane := Join(axis, p)
	require.Equal(t, KindPlane3, plane.Kind)
	assert.Equal(t, plane, Join(p, axis))

	moved := Apply(Motor3Value(pga.Motor3Translation(0.0, 0.0, 2.0)), xy)
	require.Equal(t, KindPlane3, moved.Kind)
	assert.InDelta(t, -2, moved.Plane3.E0/moved.Plane3.E3, eps)
}

func TestDispatchNil(t *testing.T) {
	p2 := Point2Value(pga.Point2At(1.0, 1.0))
	p3 := Point3Value(pga.Point3At(1.0, 1.0, 1.0))
	table := []Value{
		Apply(Value{}, p2),
		Apply(ScalarValue(2), p2),
		Apply(Motor2Value(pga.IdentityMotor2[float64]()), p3),
		Meet(p2, p2),
		Join(p2, p3),
		Project(p3, p2),
		Meet(Value{}, Value{}),
	}
	for i, v := range table {
		if !v.IsNil() {
			t.Errorf("%d) expected Nil, got %v", i, v)
		}
	}
}

func TestValueJSON(t *testing.T) {
	table := []Value{
		{},
		ScalarValue(-1.5),
		Point2Value(pga.Point2At(1.0, 2.0)),
		Motor2Value(pga.Motor2Translation(1.0, 2.0)),
		Line3Value(pga.NewLine3(1.0, 2.0, 3.0, 4.0, 5.0, 6.0)),
		Motor3Value(pga.Motor3Rotation([3]float64{0, 0, 1}, 0.5)),
	}
	for i, v := range table {
		data, err := yaml.Marshal(v)
		require.NoError(t, err)
		var res Value
		require.NoError(t, yaml.Unmarshal(data, &res))
		if res != v {
			t.Errorf("%d) %v was decoded as %v from\n%s", i, v, res, data)
		}
	}

	var v Value
	assert.Error(t, yaml.Unmarshal([]byte("kind: point2\n"), &v))
	assert.Error(t, yaml.Unmarshal([]byte("kind: spinor\n"), &v))
	require.NoError(t, yaml.Unmarshal([]byte("kind: point2\npoint2: {e01: 2, e20: 1, e12: 1}\n"), &v))
	assert.Equal(t, Point2Value(pga.Point2At(1.0, 2.0)), v)
}

func TestInputJSON(t *testing.T) {
	table := []struct {
		text string
		exp  Input
	}{
		{"1.5", Lit(1.5)},
		{"-2", Lit(-2)},
		{"t", Ref("t")},
		{"apply:1", RefPort("apply", 1)},
		{"'7'", Ref("7")},
	}
	for i, test := range table {
		var in Input
		if err := yaml.Unmarshal([]byte(test.text), &in); err != nil {
			t.Errorf("%d) %q: %v", i, test.text, err)
			continue
		}
		if in != test.exp {
			t.Errorf("%d) %q: expected %+v, got %+v", i, test.text, test.exp, in)
		}
	}

	for _, text := range []string{`""`, `":1"`, `"a:b"`, `"a:-1"`, `true`, `[1]`} {
		var in Input
		assert.Error(t, yaml.Unmarshal([]byte(text), &in), text)
	}

	ins := []Input{Lit(2), Ref("a"), RefPort("b", 3)}
	data, err := yaml.Marshal(ins)
	require.NoError(t, err)
	var res []Input
	require.NoError(t, yaml.Unmarshal(data, &res))
	assert.Equal(t, ins, res)
	assert.Equal(t, "b:3", ins[2].String())
}

func testScene(t *testing.T) *Scene {
	s := New()
	nodes := []*Node{
		{Name: "t", Kind: NodeTime},
		{Name: "mod", Kind: NodeModulo, Inputs: []Input{Ref("t"), Lit(2)}},
		{Name: "p", Kind: NodePoint2, Inputs: []Input{Ref("mod"), Lit(0)}},
		{Name: "a", Kind: NodePoint2, Inputs: []Input{Lit(1), Lit(0)}},
		{Name: "b", Kind: NodePoint2, Inputs: []Input{Lit(0), Lit(1)}},
		{Name: "m", Kind: NodeMotor2PointPoint, Inputs: []Input{Lit(0.5), Ref("a"), Ref("b")}},
		{Name: "moved", Kind: NodeApply, Inputs: []Input{Ref("m"), Ref("p"), Ref("a")}},
		{Name: "show", Kind: NodeShow, Inputs: []Input{RefPort("moved", 1)}, Color: "red", Scale: 2},
	}
	for _, n := range nodes {
		require.NoError(t, s.Add(n))
	}
	return s
}

func TestEvaluate(t *testing.T) {
	s := testScene(t)
	res, err := s.Evaluate(2.5)
	require.NoError(t, err)

	assert.Equal(t, ScalarValue(2.5), res.Get("t"))
	assert.Equal(t, ScalarValue(0.5), res.Get("mod"))
	point2Near(t, res.Get("p"), 0.5, 0)
	require.Len(t, res.Values["moved"], 2)
	point2Near(t, res.Values["moved"][0], 0, 0.5)
	point2Near(t, res.Values["moved"][1], 0.5, 0.5)
	assert.True(t, res.Get("show").IsNil())

	require.Len(t, res.Shown, 1)
	assert.Equal(t, "show", res.Shown[0].Name)
	assert.Equal(t, "red", res.Shown[0].Color)
	assert.Equal(t, 2.0, res.Shown[0].Scale)
	point2Near(t, res.Shown[0].Value, 0.5, 0.5)

	// Evaluation is repeatable and only time dependent nodes change.
	res2, err := s.Evaluate(1)
	require.NoError(t, err)
	point2Near(t, res2.Get("p"), 1, 0)
	assert.Equal(t, res.Get("m"), res2.Get("m"))
}

func TestEvaluate3(t *testing.T) {
	s := New()
	nodes := []*Node{
		{Name: "a0", Kind: NodePoint3, Inputs: []Input{Lit(0), Lit(0), Lit(0)}},
		{Name: "a1", Kind: NodePoint3, Inputs: []Input{Lit(1), Lit(0), Lit(0)}},
		{Name: "a2", Kind: NodePoint3, Inputs: []Input{Lit(0), Lit(1), Lit(0)}},
		{Name: "b0", Kind: NodePoint3, Inputs: []Input{Lit(1), Lit(1), Lit(1)}},
		{Name: "b1", Kind: NodePoint3, Inputs: []Input{Lit(1), Lit(2), Lit(1)}},
		{Name: "b2", Kind: NodePoint3, Inputs: []Input{Lit(0), Lit(1), Lit(1)}},
		{Name: "m", Kind: NodeMotor3Reconstruct, Inputs: []Input{
			Lit(1), Ref("a0"), Ref("a1"), Ref("a2"), Ref("b0"), Ref("b1"), Ref("b2"),
		}},
		{Name: "floor", Kind: NodePlane3, Inputs: []Input{Lit(0), Lit(0), Lit(1), Lit(0)}},
		{Name: "out", Kind: NodeApply, Inputs: []Input{Ref("m"), Ref("a1"), Ref("floor")}},
	}
	for _, n := range nodes {
		require.NoError(t, s.Add(n))
	}

	res, err := s.Evaluate(0)
	require.NoError(t, err)
	point3Near(t, res.Values["out"][0], 1, 2, 1)

	floor := res.Values["out"][1]
	require.Equal(t, KindPlane3, floor.Kind)
	assert.InDelta(t, -1, floor.Plane3.E0/floor.Plane3.E3, eps)
}

func TestValidateErrors(t *testing.T) {
	table := []struct {
		name  string
		nodes []*Node
	}{
		{"unknown kind", []*Node{{Name: "x", Kind: "spline"}}},
		{"arity", []*Node{{Name: "x", Kind: NodePoint2, Inputs: []Input{Lit(1)}}}},
		{"apply arity", []*Node{{Name: "x", Kind: NodeApply, Inputs: []Input{Lit(1)}}}},
		{"show port", []*Node{
			{Name: "a", Kind: NodeScalar, Inputs: []Input{Lit(1)}},
			{Name: "s", Kind: NodeShow, Inputs: []Input{Ref("a")}},
			{Name: "b", Kind: NodeShow, Inputs: []Input{Ref("s")}},
		}},
		{"port", []*Node{
			{Name: "a", Kind: NodeScalar, Inputs: []Input{Lit(1)}},
			{Name: "b", Kind: NodeShow, Inputs: []Input{RefPort("a", 1)}},
		}},
	}
	for i, test := range table {
		s := &Scene{Nodes: test.nodes}
		if _, err := s.Validate(); err == nil {
			t.Errorf("%d) %s: expected an error", i, test.name)
		}
	}

	s := &Scene{Nodes: []*Node{{Name: "a", Kind: NodeShow, Inputs: []Input{Ref("b")}}}}
	_, err := s.Validate()
	var unknown *UnknownNodeError
	require.True(t, errors.As(err, &unknown))
	assert.Equal(t, "b", unknown.Ref)

	assert.Error(t, New().Add(&Node{Kind: NodeTime}))
	s = New()
	require.NoError(t, s.Add(&Node{Name: "t", Kind: NodeTime}))
	assert.Error(t, s.Add(&Node{Name: "t", Kind: NodeTime}))
}

func TestCycles(t *testing.T) {
	s := &Scene{Nodes: []*Node{
		{Name: "t", Kind: NodeTime},
		{Name: "a", Kind: NodeModulo, Inputs: []Input{Ref("t"), Ref("b")}},
		{Name: "b", Kind: NodeModulo, Inputs: []Input{Ref("a"), Lit(1)}},
	}}
	_, err := s.Validate()
	cycle, ok := err.(*CycleError)
	require.True(t, ok, "expected a CycleError, got %v", err)
	assert.Equal(t, [][]string{{"a", "b"}}, cycle.Cycles)

	s = &Scene{Nodes: []*Node{{Name: "a", Kind: NodeModulo, Inputs: []Input{Ref("a"), Lit(1)}}}}
	_, err = s.Evaluate(0)
	assert.IsType(t, &CycleError{}, err)
}

func TestTypeErrors(t *testing.T) {
	s := &Scene{Nodes: []*Node{
		{Name: "a", Kind: NodePoint2, Inputs: []Input{Lit(1), Lit(2)}},
		{Name: "m", Kind: NodeMotor2LineLine, Inputs: []Input{Lit(1), Ref("a"), Ref("a")}},
	}}
	_, err := s.Evaluate(0)
	assert.Error(t, err)
}

const sceneYAML = `
nodes:
- name: t
  kind: time
- name: a
  kind: point2
  inputs: [t, 0]
- name: l
  kind: line2
  inputs: [1, -1, 0]
- name: reflected
  kind: apply
  inputs: [l, a]
- name: show
  kind: show
  inputs: [reflected]
  color: blue
`

func TestSceneYAML(t *testing.T) {
	s, err := Parse([]byte(sceneYAML))
	require.NoError(t, err)
	assert.Equal(t, 5, s.NodeCount())
	assert.Equal(t, []Input{Ref("t"), Lit(0)}, s.Lookup("a").Inputs)

	res, err := s.Evaluate(3)
	require.NoError(t, err)
	point2Near(t, res.Shown[0].Value, 0, 3)

	data, err := s.Marshal()
	require.NoError(t, err)
	s2, err := Parse(data)
	require.NoError(t, err)
	assert.Equal(t, s.Nodes, s2.Nodes)

	_, err = Parse([]byte("nodes:\n- name: a\n  kind: time\n  extra: 1\n"))
	assert.Error(t, err)
	_, err = Parse([]byte("nodes:\n- name: a\n  kind: show\n  inputs: [b]\n"))
	assert.Error(t, err)
}

func BenchmarkEvaluate(b *testing.B) {
	s := &Scene{}
	s.Nodes = []*Node{
		{Name: "t", Kind: NodeTime},
		{Name: "a", Kind: NodePoint2, Inputs: []Input{Lit(1), Lit(0)}},
		{Name: "b", Kind: NodePoint2, Inputs: []Input{Lit(0), Lit(1)}},
		{Name: "m", Kind: NodeMotor2PointPoint, Inputs: []Input{Ref("t"), Ref("a"), Ref("b")}},
		{Name: "out", Kind: NodeApply, Inputs: []Input{Ref("m"), Ref("a")}},
	}
	for i := 0; i < b.N; i++ {
		s.Evaluate(float64(i%100) / 100)
	}
}
