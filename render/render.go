/*package render draws the shown values of an evaluated scene with pyplot.

2D points and lines are drawn directly. 3D points and lines are first sent
through a Camera and drawn in normalized device coordinates. Planes, motors
and scalars have no picture and are skipped.
*/
package render

import (
	"math"

	plt "github.com/phil-mansfield/pyplot"
	"github.com/sirupsen/logrus"

	"github.com/phil-mansfield/athena/graph"
	"github.com/phil-mansfield/athena/mat"
	"github.com/phil-mansfield/athena/pga"
)

// DefaultColor is used for shown values without a color.
const DefaultColor = "k"

// lineLength is how far 3D lines are drawn on either side of the point
// closest to the origin.
const lineLength = 1e3

// Camera describes the view used for 3D values.
type Camera struct {
	Eye, Center, Up         [3]float64
	FovY, Aspect, Near, Far float64
}

// DefaultCamera looks down at the origin from the -y side.
func DefaultCamera() Camera {
	return Camera{
		Eye:    [3]float64{0, -10, 5},
		Center: [3]float64{0, 0, 0},
		Up:     [3]float64{0, 0, 1},
		FovY:   math.Pi / 3,
		Aspect: 1,
		Near:   0.1,
		Far:    100,
	}
}

// Matrix returns the combined projection and view matrix of c.
func (c Camera) Matrix() *mat.Matrix[float64] {
	proj := mat.Perspective(c.FovY, c.Aspect, c.Near, c.Far)
	return proj.Mult(mat.LookAt(c.Eye, c.Center, c.Up))
}

// Bounds is the visible region of the plot. A zero Bounds is computed from
// the points being drawn.
type Bounds struct {
	XMin, XMax, YMin, YMax float64
}

func (b Bounds) IsZero() bool { return b == Bounds{} }

// Series is one call to plt.Plot: a marker or a line segment. Width is only
// used by segments.
type Series struct {
	Name   string
	Color  string
	Width  float64
	Marker bool
	Xs, Ys []float64
}

// Figure is everything needed to draw a Result.
type Figure struct {
	Title  string
	Bounds Bounds
	Series []Series
}

// NewFigure converts the shown values of res into plot series. If bounds is
// zero, the bounds are fitted to the points with a margin.
func NewFigure(res *graph.Result, cam Camera, bounds Bounds) *Figure {
	fig := &Figure{Bounds: bounds}
	view := cam.Matrix()

	var lines []graph.Shown
	for _, s := range res.Shown {
		v := s.Value
		switch v.Kind {
		case graph.KindPoint2:
			if v.Point2.IsIdeal() {
				logrus.WithField("node", s.Name).Debug("skipping ideal point")
				continue
			}
			x, y := v.Point2.Normalized().Coords()
			fig.Series = append(fig.Series, marker(s, x, y))
		case graph.KindPoint3:
			if v.Point3.IsIdeal() {
				logrus.WithField("node", s.Name).Debug("skipping ideal point")
				continue
			}
			x, y, z := v.Point3.Normalized().Coords()
			px, py, _ := mat.Project(view, x, y, z)
			fig.Series = append(fig.Series, marker(s, px, py))
		case graph.KindLine2:
			lines = append(lines, s)
		case graph.KindLine3:
			if xs, ys, ok := projectLine3(view, v.Line3); ok {
				fig.Series = append(fig.Series, segment(s, xs, ys))
			}
		default:
			logrus.WithField("node", s.Name).Debugf("cannot draw %s", v.Kind)
		}
	}

	if fig.Bounds.IsZero() {
		fig.Bounds = fitBounds(fig.Series)
	}

	for _, s := range lines {
		if xs, ys, ok := clipLine2(s.Value.Line2, fig.Bounds); ok {
			fig.Series = append(fig.Series, segment(s, xs, ys))
		}
	}
	return fig
}

func color(s graph.Shown) string {
	if s.Color == "" {
		return DefaultColor
	}
	return s.Color
}

func scale(s graph.Shown) float64 {
	if s.Scale <= 0 {
		return 1
	}
	return s.Scale
}

func marker(s graph.Shown, x, y float64) Series {
	return Series{
		Name: s.Name, Color: color(s), Marker: true,
		Xs: []float64{x}, Ys: []float64{y},
	}
}

func segment(s graph.Shown, xs, ys []float64) Series {
	return Series{Name: s.Name, Color: color(s), Width: 2 * scale(s), Xs: xs, Ys: ys}
}

// clipLine2 returns the end points of the part of l inside b.
func clipLine2(l pga.Line2[float64], b Bounds) (xs, ys []float64, ok bool) {
	if l.IsIdeal() {
		return nil, nil, false
	}
	a, bb, c := l.ABC()

	var pts [][2]float64
	add := func(x, y float64) {
		if x >= b.XMin-1e-9 && x <= b.XMax+1e-9 &&
			y >= b.YMin-1e-9 && y <= b.YMax+1e-9 {
			pts = append(pts, [2]float64{x, y})
		}
	}
	if bb != 0 {
		add(b.XMin, -(a*b.XMin+c)/bb)
		add(b.XMax, -(a*b.XMax+c)/bb)
	}
	if a != 0 {
		add(-(bb*b.YMin+c)/a, b.YMin)
		add(-(bb*b.YMax+c)/a, b.YMax)
	}
	if len(pts) < 2 {
		return nil, nil, false
	}

	// Corners can be added twice, so use the two points furthest apart.
	i0, i1, best := 0, 1, -1.0
	for i := range pts {
		for j := i + 1; j < len(pts); j++ {
			dx, dy := pts[i][0]-pts[j][0], pts[i][1]-pts[j][1]
			if d := dx*dx + dy*dy; d > best {
				i0, i1, best = i, j, d
			}
		}
	}
	return []float64{pts[i0][0], pts[i1][0]}, []float64{pts[i0][1], pts[i1][1]}, true
}

// projectLine3 projects a long segment of l through view.
func projectLine3(view *mat.Matrix[float64], l pga.Line3[float64]) (xs, ys []float64, ok bool) {
	if l.IsIdeal() {
		return nil, nil, false
	}
	c := pga.Origin3[float64]().ProjectToLine(l)
	dir := l.MeetPlane(pga.PlaneAtInfinity3[float64]())
	cx, cy, cz := c.Coords()
	dx, dy, dz := dir.Coords()
	n := math.Sqrt(dx*dx + dy*dy + dz*dz)
	if n == 0 {
		return nil, nil, false
	}
	dx, dy, dz = dx/n*lineLength, dy/n*lineLength, dz/n*lineLength

	x0, y0, _ := mat.Project(view, cx-dx, cy-dy, cz-dz)
	x1, y1, _ := mat.Project(view, cx+dx, cy+dy, cz+dz)
	return []float64{x0, x1}, []float64{y0, y1}, true
}

// fitBounds returns a square region around every marker.
func fitBounds(series []Series) Bounds {
	b := Bounds{math.Inf(+1), math.Inf(-1), math.Inf(+1), math.Inf(-1)}
	for _, s := range series {
		if !s.Marker {
			continue
		}
		for i := range s.Xs {
			b.XMin, b.XMax = math.Min(b.XMin, s.Xs[i]), math.Max(b.XMax, s.Xs[i])
			b.YMin, b.YMax = math.Min(b.YMin, s.Ys[i]), math.Max(b.YMax, s.Ys[i])
		}
	}
	if math.IsInf(b.XMin, 0) {
		return Bounds{-5, 5, -5, 5}
	}

	cx, cy := (b.XMin+b.XMax)/2, (b.YMin+b.YMax)/2
	r := math.Max(b.XMax-b.XMin, b.YMax-b.YMin)/2*1.2 + 1
	return Bounds{cx - r, cx + r, cy - r, cy + r}
}

// Draw adds fig to the current pyplot script and saves it to fname. The
// script only runs once plt.Execute is called.
func (fig *Figure) Draw(fname string) {
	plt.Figure()
	for _, s := range fig.Series {
		if s.Marker {
			plt.Plot(s.Xs, s.Ys, "o", plt.C(s.Color))
		} else {
			plt.Plot(s.Xs, s.Ys, plt.C(s.Color), plt.LW(s.Width))
		}
	}
	if fig.Title != "" {
		plt.Title(fig.Title)
	}
	plt.XLim(fig.Bounds.XMin, fig.Bounds.XMax)
	plt.YLim(fig.Bounds.YMin, fig.Bounds.YMax)
	plt.Grid(plt.Axis("both"))
	plt.SaveFig(fname)
}
