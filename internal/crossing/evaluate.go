package crossing

import (
	"context"
	"errors"

	"github.com/specialistvlad/crossedwires/internal/ctxlog"
	"github.com/specialistvlad/crossedwires/internal/wire"
	"golang.org/x/sync/errgroup"
)

type options struct {
	workers int
}

// Option configures Find and Evaluate.
type Option func(*options)

// WithWorkers bounds how many segment rows are evaluated concurrently.
// Values below 2 evaluate sequentially.
func WithWorkers(n int) Option {
	return func(o *options) { o.workers = n }
}

// Evaluate finds every crossing between the paths and selects the minima.
func Evaluate(ctx context.Context, paths []wire.Path, opts ...Option) (Result, error) {
	found, err := Find(ctx, paths, opts...)
	if err != nil {
		return Result{}, err
	}

	res, err := Select(found)
	if err != nil {
		var nce *NoCrossingError
		if errors.As(err, &nce) {
			nce.Wires = len(paths)
			nce.Pairs = pairCount(len(paths))
		}
		return Result{}, err
	}
	return res, nil
}

// Find returns every crossing between every pair of paths, excluding the
// origin. Crossings are ordered by wire pair, then by segment of the first
// wire, then by segment of the second, whatever the worker count.
func Find(ctx context.Context, paths []wire.Path, opts ...Option) ([]Crossing, error) {
	o := options{workers: 1}
	for _, opt := range opts {
		opt(&o)
	}
	logger := ctxlog.FromContext(ctx)

	var crossings []Crossing
	for a := 0; a < len(paths); a++ {
		for b := a + 1; b < len(paths); b++ {
			rows, err := findPair(ctx, a, b, paths[a], paths[b], o.workers)
			if err != nil {
				return nil, err
			}
			before := len(crossings)
			for _, row := range rows {
				crossings = append(crossings, row...)
			}
			logger.Debug("Wire pair evaluated.", "wire_a", a+1, "wire_b", b+1, "segments_a", paths[a].Len(), "segments_b", paths[b].Len(), "crossings", len(crossings)-before)
		}
	}
	return crossings, nil
}

// findPair evaluates one wire pair. rows[i] holds the crossings of segment i
// of pa against every segment of pb.
func findPair(ctx context.Context, a, b int, pa, pb wire.Path, workers int) ([][]Crossing, error) {
	rows := make([][]Crossing, pa.Len())

	if workers < 2 {
		for i := range rows {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			rows[i] = scanRow(a, b, i, pa, pb)
		}
		return rows, nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i := range rows {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			rows[i] = scanRow(a, b, i, pa, pb)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return rows, nil
}

func scanRow(a, b, i int, pa, pb wire.Path) []Crossing {
	var row []Crossing
	segA := pa.Segment(i)
	for j := 0; j < pb.Len(); j++ {
		p, ok := segA.Intersect(pb.Segment(j))
		if !ok || p.IsOrigin() {
			continue
		}
		row = append(row, Crossing{
			Point:        p,
			Central:      p.Manhattan(),
			WireDistance: pa.StepsTo(i, p) + pb.StepsTo(j, p),
			WireA:        a,
			WireB:        b,
			SegmentA:     i,
			SegmentB:     j,
		})
	}
	return row
}

func pairCount(n int) int {
	return n * (n - 1) / 2
}
