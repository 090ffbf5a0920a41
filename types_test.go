package athena

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAliases(t *testing.T) {
	a, b := Point2At(1, 0), Point2At(0, 1)
	var m Motor2 = Motor2PointPoint(a, b)
	x, y := m.MovePoint(a).Coords()
	assert.InDelta(t, 0, x, 1e-9)
	assert.InDelta(t, 1, y, 1e-9)

	p, q := Point3At(1, 2, 3), Point3At(-1, 0, 2)
	var l Line3 = p.Join(q)
	var floor Plane3 = NewPlane3(0, 0, 0, 1)
	hit := floor.MeetLine(l).Normalized()
	_, _, z := hit.Coords()
	assert.InDelta(t, 0, z, 1e-12)

	var m4 *Matrix = Motor3PointPoint(p, q).Matrix()
	var v Vector = m4.MultVec(Vector{1, 2, 3, 1})
	assert.InDeltaSlice(t, []float64{-1, 0, 2, 1}, []float64(v), 1e-9)
}
