// Package async runs independent computations concurrently and collects their
// results.
//
// A Future is the eventual result of one computation started with Go. Map fans
// a function out over a slice with bounded concurrency and returns the results
// in input order, which keeps output deterministic when the work itself is not.
//
//	reports, err := async.Map(ctx, paths, 4, func(ctx context.Context, path string) (report, error) {
//	    return check(ctx, path)
//	})
//
// Cancelling the context stops Map from starting new work; computations already
// running observe the context themselves.
package async
