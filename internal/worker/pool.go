// Package worker runs bounded fan-out over independent tasks, used when a
// multi-period view needs several source files loaded at once.
package worker

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Result carries one task's outcome. Failures stay attached to their input
// so one bad file never aborts its siblings.
type Result[T, R any] struct {
	Input T
	Value R
	Err   error
}

// Map runs fn over every item with at most min(limit, len(items)) tasks in
// flight and joins on completion of all of them. Results are returned in
// input order; nothing downstream depends on completion order because each
// result carries its input.
func Map[T, R any](ctx context.Context, items []T, limit int, fn func(context.Context, T) (R, error)) []Result[T, R] {
	if limit > len(items) {
		limit = len(items)
	}
	if limit < 1 {
		limit = 1
	}

	var g errgroup.Group
	g.SetLimit(limit)

	results := make([]Result[T, R], len(items))
	for i := range items {
		i := i
		g.Go(func() error {
			v, err := fn(ctx, items[i])
			results[i] = Result[T, R]{Input: items[i], Value: v, Err: err}
			return nil
		})
	}
	// Join barrier: every submitted task either succeeded or recorded its
	// error; Wait never returns one because tasks always return nil.
	_ = g.Wait()
	return results
}
