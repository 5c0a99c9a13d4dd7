package async

import (
	"context"
	"errors"
	"fmt"
	"runtime"
)

// Map calls fn for every item with at most limit calls in flight and returns
// the results in the order of items. A limit below one means GOMAXPROCS.
//
// Every item is attempted even when some fail; the returned error joins the
// failures, each prefixed with its item index. Results of failed items are
// the zero value.
func Map[T, U any](ctx context.Context, items []T, limit int, fn func(context.Context, T) (U, error)) ([]U, error) {
	if limit < 1 {
		limit = runtime.GOMAXPROCS(0)
	}

	sem := make(chan struct{}, limit)
	futures := make([]*Future[U], len(items))
	for i, item := range items {
		select {
		case sem <- struct{}{}:
		case <-ctx.Done():
		}
		futures[i] = Go(ctx, item, func(ctx context.Context, item T) (U, error) {
			defer func() { <-sem }()
			return fn(ctx, item)
		})
	}

	return WaitAll(futures...)
}

// WaitAll waits for every future and returns their results in order together
// with the joined errors of those that failed.
func WaitAll[U any](futures ...*Future[U]) ([]U, error) {
	results := make([]U, len(futures))
	var errs []error
	for i, f := range futures {
		res, err := f.Await()
		if err != nil {
			errs = append(errs, fmt.Errorf("item %d: %w", i, err))
			continue
		}
		results[i] = res
	}
	return results, errors.Join(errs...)
}
