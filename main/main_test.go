package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phil-mansfield/athena/io"
)

func run(args ...string) (string, string, error) {
	cmd := newRootCommand()
	out, errOut := &bytes.Buffer{}, &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestConfigCommand(t *testing.T) {
	out, _, err := run("config", "transform")
	require.NoError(t, err)
	assert.Contains(t, out, "[Transform]")
	assert.Contains(t, out, "[Motor]")

	out, _, err = run("config", "Plot")
	require.NoError(t, err)
	assert.Contains(t, out, "[Plot]")

	_, _, err = run("config", "render")
	assert.Error(t, err)
	_, _, err = run("config")
	assert.Error(t, err)
}

const testScript = `
(def a (point2 1 0))
(def b (point2 0 1))
(def m (motor2-point-point a b :mul (modulo (clock) 1)))
(show (transform m a) :name "moved" :color "r")
`

func TestEvalAndDump(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "scene.lisp")
	require.NoError(t, os.WriteFile(src, []byte(testScript), 0644))
	scene := filepath.Join(dir, "scene.yaml")

	out, _, err := run("eval", src, "--time", "0.5", "--out", scene)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "moved\tPoint2: ("), out)

	_, err = os.Stat(scene)
	require.NoError(t, err)

	out, _, err = run("dump", scene, "-t", "0.5")
	require.NoError(t, err)
	assert.Contains(t, out, "motor2-point-point")
	assert.Contains(t, out, "moved")

	_, _, err = run("dump", filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}

func TestEvalErrors(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "bad.lisp")
	require.NoError(t, os.WriteFile(src, []byte("(point2 1)"), 0644))

	_, errOut, err := run("eval", src)
	assert.Error(t, err)
	assert.Contains(t, errOut, "bad.lisp")

	_, _, err = run("eval", filepath.Join(dir, "missing.lisp"))
	assert.Error(t, err)
}

func TestTransformCommand(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "in.txt")
	require.NoError(t, io.WritePointsFile(input, [][3]float64{{1, 0, 0}, {0, 0, 5}}))

	for _, format := range []string{"Table", "Binary"} {
		output := filepath.Join(dir, "out."+format)
		config := filepath.Join(dir, "transform.cfg")
		cfg := "[Transform]\nInput = " + input + "\nOutput = " + output +
			"\nOutputFormat = " + format +
			"\n[Motor]\nType = Translation\nDx = 1\nDy = 2\n"
		require.NoError(t, os.WriteFile(config, []byte(cfg), 0644))

		_, _, err := run("transform", "--config", config)
		require.NoError(t, err, format)

		var xs [][3]float64
		if format == "Binary" {
			_, xs, err = io.ReadBinaryPoints(output)
		} else {
			xs, err = io.ReadPoints(output, [3]int{0, 1, 2})
		}
		require.NoError(t, err, format)
		require.Len(t, xs, 2)
		assert.InDeltaSlice(t, []float64{2, 2, 0}, xs[0][:], 1e-12)
		assert.InDeltaSlice(t, []float64{1, 2, 5}, xs[1][:], 1e-12)
	}

	_, _, err := run("transform")
	assert.Error(t, err)
}
