// SPDX-License-Identifier: MIT

package geometry

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// forEachRow runs fn(i) for i in [0, n). With workers > 1 rows are spread
// over an errgroup limited to that many goroutines; fn must only write to
// slot i of pre-sized outputs. The first error stops scheduling new rows.
func forEachRow(n, workers int, fn func(i int) error) error {
	if workers <= 1 || n < 2 {
		for i := 0; i < n; i++ {
			if err := fn(i); err != nil {
				return err
			}
		}

		return nil
	}

	g, ctx := errgroup.WithContext(context.Background())
	g.SetLimit(workers)
	for i := 0; i < n; i++ {
		if ctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if ctx.Err() != nil {
				return nil
			}

			return fn(i)
		})
	}

	return g.Wait()
}
