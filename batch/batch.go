// Package batch applies motors to large slices of primitives in parallel.
//
// Work is split into chunks which are handed to a bounded errgroup. Each
// worker checks the context between chunks, so cancellation is noticed
// within one chunk of work.
package batch

import (
	"context"
	"runtime"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/phil-mansfield/athena/pga"
)

// DefaultChunkSize is the number of elements handled by one task.
const DefaultChunkSize = 4096

// Options controls how work is split up. Zero values select the defaults.
type Options struct {
	Workers   int
	ChunkSize int
}

// DefaultOptions uses one worker per logical core.
func DefaultOptions() Options {
	return Options{Workers: runtime.NumCPU(), ChunkSize: DefaultChunkSize}
}

func (opt Options) withDefaults() Options {
	if opt.Workers <= 0 {
		opt.Workers = runtime.NumCPU()
	}
	if opt.ChunkSize <= 0 {
		opt.ChunkSize = DefaultChunkSize
	}
	return opt
}

// Map writes f(in[i]) to out[i] for every i. in and out must have the same
// length and may be the same slice.
func Map[In, Out any](ctx context.Context, in []In, out []Out, f func(In) Out, opt Options) error {
	if len(in) != len(out) {
		panic("len(in) must equal len(out).")
	}
	opt = opt.withDefaults()

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(opt.Workers)

	chunks := 0
	for start := 0; start < len(in); start += opt.ChunkSize {
		if gctx.Err() != nil {
			break
		}
		start, end := start, min(start+opt.ChunkSize, len(in))
		chunks++
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			for i := start; i < end; i++ {
				out[i] = f(in[i])
			}
			return nil
		})
	}

	err := g.Wait()
	logrus.WithFields(logrus.Fields{
		"n": len(in), "chunks": chunks, "workers": opt.Workers,
	}).Debug("batch finished")

	if err == nil {
		err = ctx.Err()
	}
	if err != nil {
		return errors.Wrap(err, "batch transform")
	}
	return nil
}

// MovePoints2 returns every point of ps moved by m.
func MovePoints2(ctx context.Context, m pga.Motor2[float64], ps []pga.Point2[float64], opt Options) ([]pga.Point2[float64], error) {
	out := make([]pga.Point2[float64], len(ps))
	err := Map(ctx, ps, out, m.MovePoint, opt)
	return out, err
}

// MoveLines2 returns every line of ls moved by m.
func MoveLines2(ctx context.Context, m pga.Motor2[float64], ls []pga.Line2[float64], opt Options) ([]pga.Line2[float64], error) {
	out := make([]pga.Line2[float64], len(ls))
	err := Map(ctx, ls, out, m.MoveLine, opt)
	return out, err
}

// MovePoints3 returns every point of ps moved by m.
func MovePoints3(ctx context.Context, m pga.Motor3[float64], ps []pga.Point3[float64], opt Options) ([]pga.Point3[float64], error) {
	out := make([]pga.Point3[float64], len(ps))
	err := Map(ctx, ps, out, m.MovePoint, opt)
	return out, err
}

// MoveLines3 returns every line of ls moved by m.
func MoveLines3(ctx context.Context, m pga.Motor3[float64], ls []pga.Line3[float64], opt Options) ([]pga.Line3[float64], error) {
	out := make([]pga.Line3[float64], len(ls))
	err := Map(ctx, ls, out, m.MoveLine, opt)
	return out, err
}

// MovePlanes3 returns every plane of ps moved by m.
func MovePlanes3(ctx context.Context, m pga.Motor3[float64], ps []pga.Plane3[float64], opt Options) ([]pga.Plane3[float64], error) {
	out := make([]pga.Plane3[float64], len(ps))
	err := Map(ctx, ps, out, m.MovePlane, opt)
	return out, err
}

// MoveCoords3 moves the Euclidean coordinates xs in place.
func MoveCoords3(ctx context.Context, m pga.Motor3[float64], xs [][3]float64, opt Options) error {
	return Map(ctx, xs, xs, func(x [3]float64) [3]float64 {
		x0, x1, x2 := m.MovePoint(pga.Point3At(x[0], x[1], x[2])).Normalized().Coords()
		return [3]float64{x0, x1, x2}
	}, opt)
}

// Path3 moves ps by m.Pow(t) for each t in ts. out[i][j] is ps[j] at ts[i],
// so ts of 0 and 1 give the start and end of the motion.
func Path3(ctx context.Context, m pga.Motor3[float64], ps []pga.Point3[float64], ts []float64, opt Options) ([][]pga.Point3[float64], error) {
	out := make([][]pga.Point3[float64], len(ts))
	for i, t := range ts {
		var err error
		if out[i], err = MovePoints3(ctx, m.Pow(t), ps, opt); err != nil {
			return nil, errors.Wrapf(err, "t = %g", t)
		}
	}
	return out, nil
}
