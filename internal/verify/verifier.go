package verify

import (
	"context"
	"errors"
	"log/slog"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/typescript-eslint/tsequiv/internal/equiv"
	"github.com/typescript-eslint/tsequiv/internal/estree"
)

var (
	ErrJSParse = errors.New("js file did not parse")
	ErrTSParse = errors.New("ts file did not parse")
)

type FileParser interface {
	Parse(ctx context.Context, path string) estree.RawNode
}

type Result struct {
	Pair  Pair
	Equal bool
	// Err records parse and comparison failures. A pair can fail and still be
	// equal when neither side parsed.
	Err      error
	Mismatch *equiv.Mismatch
}

type Verifier struct {
	JS      FileParser
	TS      FileParser
	Workers int
	// Explain attaches a Mismatch to every unequal result.
	Explain bool
}

type job struct {
	index int
	pair  Pair
}

// Run verifies pairs concurrently. Results are in input order. The error is
// non-nil only when ctx ends before every pair is done.
func (v *Verifier) Run(ctx context.Context, pairs []Pair) ([]Result, error) {
	queue := make(chan job, len(pairs))
	for i, pair := range pairs {
		queue <- job{index: i, pair: pair}
	}
	close(queue)

	workers := v.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	workers = min(workers, max(len(pairs), 1))

	results := make([]Result, len(pairs))
	g, ctx := errgroup.WithContext(ctx)
	for range workers {
		g.Go(func() error {
			for j := range queue {
				if err := ctx.Err(); err != nil {
					return err
				}
				results[j.index] = v.verify(ctx, j.pair)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func (v *Verifier) verify(ctx context.Context, pair Pair) Result {
	result := Result{Pair: pair}

	js := v.JS.Parse(ctx, pair.JS)
	ts := v.TS.Parse(ctx, pair.TS)
	var errs []error
	if estree.IsEmpty(js) {
		errs = append(errs, ErrJSParse)
	}
	if estree.IsEmpty(ts) {
		errs = append(errs, ErrTSParse)
	}

	equal, err := equiv.Compare(js, ts)
	if err != nil {
		errs = append(errs, err)
	}
	result.Equal = equal
	result.Err = errors.Join(errs...)

	if !equal && v.Explain && result.Err == nil {
		mismatch, err := equiv.Explain(js, ts)
		if err != nil {
			slog.Warn("explaining mismatch", slog.String("pair", pair.Name), slog.Any("error", err))
		}
		result.Mismatch = mismatch
	}
	slog.Debug("verified pair",
		slog.String("pair", pair.Name),
		slog.Bool("equal", result.Equal),
		slog.Any("error", result.Err))
	return result
}
