package calldata

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// DefaultBatchConcurrency is used by DecodeBatch when no positive limit is given.
const DefaultBatchConcurrency = 4

// BatchItem is the outcome of decoding one input of a batch.
type BatchItem struct {
	Index  int
	Input  string
	Result *Result
	Err    error
}

// DecodeBatch decodes every input concurrently, at most concurrency at a time, and returns
// the outcomes in input order. A failing input is reported on its item and does not stop
// the others. The only error returned is the context's.
func (d *Decoder) DecodeBatch(ctx context.Context, inputs []string, concurrency int) ([]BatchItem, error) {
	if concurrency <= 0 {
		concurrency = DefaultBatchConcurrency
	}

	items := make([]BatchItem, len(inputs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	for i, input := range inputs {
		if gctx.Err() != nil {
			break
		}

		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			res, err := d.Decode(input)
			if err != nil {
				d.lggr.Debugw("Failed to decode batch item", "index", i, "err", err)
			}
			items[i] = BatchItem{Index: i, Input: input, Result: res, Err: err}

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return items, nil
}
