package query

import (
	"context"
	"time"
)

// Poll fetches immediately and then on every tick of interval, handing each
// result to consume. Errors go to onError (which may be nil) and do not
// stop the loop. Poll returns when ctx is canceled; a fetch resolving after
// cancellation is discarded, so consumers never observe results for a view
// they have left.
func Poll[T any](ctx context.Context, interval time.Duration, fetch func(context.Context) (T, error), consume func(T), onError func(error)) {
	run := func() {
		v, err := fetch(ctx)
		if ctx.Err() != nil {
			return
		}
		if err != nil {
			if onError != nil {
				onError(err)
			}
			return
		}
		consume(v)
	}

	run()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			run()
		case <-ctx.Done():
			return
		}
	}
}
