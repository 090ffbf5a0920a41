package script

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phil-mansfield/athena/graph"
)

func TestPreprocess(t *testing.T) {
	table := []struct {
		in, exp string
	}{
		{`(show p :color "red")`, `(show p "__kw_color" "red")`},
		{`(motor2-point-point a b :mul 0.5)`, `(motor2_point_point a b "__kw_mul" 0.5)`},
		{`"a :keyword-in a-string"`, `"a :keyword-in a-string"`},
		{`(- 10 5)`, `(- 10 5)`},
		{`(+ x -1)`, `(+ x -1)`},
		{`(def x := 10)`, `(def x := 10)`},
		{`;; comment :kw "quote`, `// comment :kw "quote`},
		{"; a\n(clock)", "// a\n(clock)"},
		{`"unterminated`, `"unterminated`},
	}

	for i, test := range table {
		if res := preprocess(test.in); res != test.exp {
			t.Errorf("%d) preprocess(%q) = %q, expected %q", i, test.in, res, test.exp)
		}
	}
}

func TestParseError(t *testing.T) {
	table := []struct {
		msg string
		exp EvalError
	}{
		{"Error on line 3: unexpected ')'", EvalError{3, "unexpected ')'"}},
		{"line 12: bad thing", EvalError{12, "bad thing"}},
		{"  something else  ", EvalError{0, "something else"}},
	}
	for i, test := range table {
		res := parseError(errorString(test.msg))
		if len(res) != 1 || res[0] != test.exp {
			t.Errorf("%d) expected %+v, got %+v", i, test.exp, res)
		}
	}

	assert.Equal(t, "line 2: oops", EvalError{2, "oops"}.Error())
	assert.Equal(t, "oops", EvalError{0, "oops"}.Error())
}

type errorString string

func (e errorString) Error() string { return string(e) }

func TestEvaluateEmpty(t *testing.T) {
	for _, src := range []string{"", "  \n\t "} {
		s, evalErrs, err := NewEngine().Evaluate(src)
		require.NoError(t, err)
		assert.Empty(t, evalErrs)
		require.NotNil(t, s)
		assert.Equal(t, 0, s.NodeCount())
	}
}

func TestEvaluatePlainLisp(t *testing.T) {
	s, evalErrs, err := NewEngine().Evaluate("(def x 10)\n(+ x 20)")
	require.NoError(t, err)
	assert.Empty(t, evalErrs)
	require.NotNil(t, s)
	assert.Equal(t, 0, s.NodeCount())
}

const motorScript = `
;; Move a point half way from a to b.
(def tm (clock :name "t"))
(def a (point2 1 0))
(def b (point2 0 1))
(def m (motor2-point-point a b :mul 0.5))
(def p (point2 (modulo tm 2) 0))
(def moved (transform m p a))
(show (output moved 1) :color "red" :scale 2)
`

func TestEvaluateScript(t *testing.T) {
	s, evalErrs, err := NewEngine().Evaluate(motorScript)
	require.NoError(t, err)
	require.Empty(t, evalErrs)
	require.NotNil(t, s)
	assert.Equal(t, 8, s.NodeCount())

	require.NotNil(t, s.Lookup("t"))
	require.NotNil(t, s.Lookup("point2-3"))
	m := s.Lookup("motor2-point-point-1")
	require.NotNil(t, m)
	assert.Equal(t, []graph.Input{graph.Lit(0.5), graph.Ref("point2-1"), graph.Ref("point2-2")}, m.Inputs)

	show := s.Lookup("show-1")
	require.NotNil(t, show)
	assert.Equal(t, []graph.Input{graph.RefPort("transform-1", 1)}, show.Inputs)
	assert.Equal(t, "red", show.Color)
	assert.Equal(t, 2.0, show.Scale)

	res, err := s.Evaluate(2.5)
	require.NoError(t, err)
	require.Len(t, res.Shown, 1)
	v := res.Shown[0].Value
	require.Equal(t, graph.KindPoint2, v.Kind)
	x, y := v.Point2.Normalized().Coords()
	assert.InDelta(t, 0.5, x, 1e-9)
	assert.InDelta(t, 0.5, y, 1e-9)

	moved := res.Values["transform-1"]
	require.Len(t, moved, 2)
	x, y = moved[0].Point2.Normalized().Coords()
	assert.InDelta(t, 0, x, 1e-9)
	assert.InDelta(t, 0.5, y, 1e-9)
}

func TestEvaluate3D(t *testing.T) {
	src := `
(def floor (plane3 0 0 1 0))
(def wall (plane3 1 0 0 -2))
(def corner (meet floor wall :name "corner"))
(def p (point3 5 1 4))
(def q (project p corner))
(def m (motor3-plane-plane floor wall))
(show (transform m p))
(show q)
`
	s, evalErrs, err := NewEngine().Evaluate(src)
	require.NoError(t, err)
	require.Empty(t, evalErrs)

	res, err := s.Evaluate(0)
	require.NoError(t, err)
	require.Len(t, res.Shown, 2)
	assert.Equal(t, graph.KindLine3, res.Get("corner").Kind)

	q := res.Shown[1].Value
	require.Equal(t, graph.KindPoint3, q.Kind)
	x, y, z := q.Point3.Normalized().Coords()
	assert.InDelta(t, 2, x, 1e-9)
	assert.InDelta(t, 1, y, 1e-9)
	assert.InDelta(t, 0, z, 1e-9)
	assert.Equal(t, graph.KindPoint3, res.Shown[0].Value.Kind)
}

func TestEvaluateErrors(t *testing.T) {
	table := []string{
		"(point2 1 2",
		"(+ 1 undefined_symbol)",
		"(point2 1)",
		`(point2 "a" 1)`,
		"(modulo 1 2 :mul 3)",
		"(point2 1 2 :weight 3)",
		"(point2 1 2 :name)",
		"(output (point2 1 2) 1)",
		"(output 1 0)",
		`(point2 1 2 :name "a") (point2 3 4 :name "a")`,
		"(motor2-line-line (point2 0 0))",
	}

	for i, src := range table {
		s, evalErrs, err := NewEngine().Evaluate(src)
		if err != nil {
			t.Errorf("%d) %q: unexpected fatal error %v", i, src, err)
			continue
		}
		if s != nil || len(evalErrs) == 0 {
			t.Errorf("%d) %q: expected eval errors, got scene %v", i, src, s)
			continue
		}
		if evalErrs[0].Message == "" {
			t.Errorf("%d) %q: empty error message", i, src)
		}
	}
}

func TestTypeErrorAtEvaluation(t *testing.T) {
	s, evalErrs, err := NewEngine().Evaluate("(motor2-line-line (point2 0 0) (point2 1 1))")
	require.NoError(t, err)
	require.Empty(t, evalErrs)
	_, err = s.Evaluate(0)
	assert.Error(t, err)
}

func TestTimeout(t *testing.T) {
	e := &Engine{Timeout: 10 * time.Millisecond}
	_, _, err := e.wait(make(chan evalResult), 0)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "timed out")

	ch := make(chan evalResult, 1)
	ch <- evalResult{scene: graph.New()}
	e.generation = 2
	_, _, err = e.wait(ch, 1)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "superseded")

	ch <- evalResult{scene: graph.New()}
	s, _, err := e.wait(ch, 2)
	require.NoError(t, err)
	assert.NotNil(t, s)
}

func TestAbandonedEvaluation(t *testing.T) {
	src := "(def a (point2 1 0))\n(show a)"

	s, evalErrs, err := evaluate(src, make(chan struct{}))
	require.NoError(t, err)
	require.Empty(t, evalErrs)
	assert.Equal(t, 2, s.NodeCount())

	done := make(chan struct{})
	close(done)
	s, evalErrs, err = evaluate(src, done)
	require.NoError(t, err)
	assert.Nil(t, s)
	require.Len(t, evalErrs, 1)
	assert.Contains(t, evalErrs[0].Message, "abandoned")
}
