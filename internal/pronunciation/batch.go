package pronunciation

import (
	"context"

	"github.com/jusunglee/kanafy/internal/metrics"
	"golang.org/x/sync/errgroup"
)

// Batch converts words concurrently with at most workers goroutines.
// Results are in input order. The first failure cancels the remaining work
// and is returned.
func (p *Pronouncer) Batch(ctx context.Context, words []string, workers int) ([]Result, error) {
	metrics.BatchSize.Observe(float64(len(words)))
	if workers < 1 {
		workers = 1
	}

	results := make([]Result, len(words))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, word := range words {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			r, err := p.Lookup(ctx, word)
			if err != nil {
				return err
			}
			results[i] = r
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
