// Package textdiff wires the default diff pipeline: the Myers line
// matcher and the prefix/suffix intra-line differ. Callers wanting a
// different combination compose diffkit.NewEngine directly.
package textdiff

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/fwojciec/diffkit"
	"github.com/fwojciec/diffkit/intraline"
	"github.com/fwojciec/diffkit/myers"
)

// New creates an Engine with the default matcher and span differ.
func New(opts ...diffkit.Option) *diffkit.Engine {
	return diffkit.NewEngine(myers.NewMatcher(), intraline.NewDiffer(), opts...)
}

// Diff compares two documents using the default pipeline.
func Diff(oldText, newText string, opts ...diffkit.Option) (*diffkit.DiffResult, error) {
	return New(opts...).Diff(oldText, newText)
}

// Lines returns the full annotated line view using the default pipeline.
func Lines(oldText, newText string, opts ...diffkit.Option) ([]diffkit.DiffLine, error) {
	return New(opts...).Lines(oldText, newText)
}

// Unified returns unified-diff text using the default pipeline.
func Unified(oldText, newText, oldLabel, newLabel string, opts ...diffkit.Option) (string, error) {
	return New(opts...).Unified(oldText, newText, oldLabel, newLabel)
}

// Pair is one document comparison in a batch.
type Pair struct {
	Old string
	New string
}

// DiffAll diffs every pair, running at most parallelism comparisons at a
// time (unlimited if parallelism <= 0). Results are returned in input
// order. The first error stops the batch and is returned; remaining
// work is skipped once ctx is done.
func DiffAll(ctx context.Context, pairs []Pair, parallelism int, opts ...diffkit.Option) ([]*diffkit.DiffResult, error) {
	engine := New(opts...)
	results := make([]*diffkit.DiffResult, len(pairs))

	g, ctx := errgroup.WithContext(ctx)
	if parallelism > 0 {
		g.SetLimit(parallelism)
	}
	for i, pair := range pairs {
		i, pair := i, pair
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			result, err := engine.Diff(pair.Old, pair.New)
			if err != nil {
				return err
			}
			results[i] = result
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
