package increment

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// DefaultWorkers is the StepAll concurrency when none is configured.
const DefaultWorkers = 4

// Request is one literal to step, typically one selection of a
// multi-cursor edit.
type Request struct {
	Text   string
	Amount int64
}

// Result is the outcome of a Request. On rejection Text holds the original
// token and Err the reason.
type Result struct {
	Text string
	Err  error
}

// Changed reports whether the request produced a replacement.
func (r Result) Changed() bool {
	return r.Err == nil
}

// BatchOptions configures StepAll.
type BatchOptions struct {
	Options

	// Workers bounds the number of requests stepped at once.
	Workers int
}

// StepAll steps every request concurrently. Results are in request order.
// A rejected request is reported in its Result and does not stop the batch;
// only cancellation of ctx does.
func StepAll(ctx context.Context, reqs []Request, opts BatchOptions) ([]Result, error) {
	workers := opts.Workers
	if workers <= 0 {
		workers = DefaultWorkers
	}

	results := make([]Result, len(reqs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, req := range reqs {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			text, err := Step(req.Text, req.Amount, opts.Options)
			if err != nil {
				results[i] = Result{Text: req.Text, Err: err}
				return nil
			}
			results[i] = Result{Text: text}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return results, nil
}
