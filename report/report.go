package report

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/viant/featsim/config"
	"github.com/viant/featsim/pairwise"
)

// Row is the rounded result for one labelled pair.
type Row struct {
	Label  string
	Result pairwise.Result
}

type options struct {
	logger   *slog.Logger
	parallel int
}

// Option configures Build.
type Option func(*options)

// WithLogger sets the logger used for per-pair diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithParallelism bounds the number of pairs evaluated at once. Values below
// 1 select GOMAXPROCS.
func WithParallelism(n int) Option {
	return func(o *options) { o.parallel = n }
}

// Build evaluates every pair and returns one rounded row per pair, in input
// order. Pairs are independent and are evaluated concurrently.
func Build(ctx context.Context, ev *pairwise.Evaluator, pairs []config.Pair, opts ...Option) ([]Row, error) {
	o := options{logger: slog.New(slog.NewTextHandler(io.Discard, nil))}
	for _, opt := range opts {
		opt(&o)
	}
	if o.parallel < 1 {
		o.parallel = runtime.GOMAXPROCS(0)
	}

	schema := ev.Schema()
	warned := make(map[string]bool)
	for _, p := range pairs {
		for _, r := range []config.RecordDef{p.A, p.B} {
			if warned[r.Label] {
				continue
			}
			warned[r.Label] = true
			if unknown := schema.Unknown(r.Weights); len(unknown) > 0 {
				o.logger.WarnContext(ctx, "record has features outside the schema",
					"record", r.Label,
					"features", unknown,
				)
			}
		}
	}

	rows := make([]Row, len(pairs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.parallel)
	for i, p := range pairs {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			res, err := ev.Evaluate(p.A.Weights, p.B.Weights)
			if err != nil {
				return fmt.Errorf("report: %s: %w", p.Label(), err)
			}
			rows[i] = Row{Label: p.Label(), Result: res.Rounded()}
			o.logger.DebugContext(gctx, "pair evaluated",
				"pair", p.Label(),
				"result", res,
			)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	o.logger.InfoContext(ctx, "report built", "pairs", len(rows), "features", schema.Len())
	return rows, nil
}
