package core

import (
	"github.com/remeh/sizedwaitgroup"
	"golang.org/x/sync/errgroup"
)

// chunks splits [0, n) into at most workers contiguous ranges.
func chunks(n, workers int) [][2]int {
	if workers > n {
		workers = n
	}
	size := (n + workers - 1) / workers

	out := make([][2]int, 0, workers)
	for start := 0; start < n; start += size {
		end := start + size
		if end > n {
			end = n
		}
		out = append(out, [2]int{start, end})
	}
	return out
}

// ParallelFor runs fn over contiguous ranges covering [0, n) using at most
// workers goroutines and returns the first error. With workers <= 1 fn is
// called once on the calling goroutine.
func ParallelFor(workers, n int, fn func(start, end int) error) error {
	if n <= 0 {
		return nil
	}
	if workers <= 1 || n == 1 {
		return fn(0, n)
	}

	var g errgroup.Group
	g.SetLimit(workers)
	for _, r := range chunks(n, workers) {
		start, end := r[0], r[1]
		g.Go(func() error {
			return fn(start, end)
		})
	}
	return g.Wait()
}

// ParallelRange is ParallelFor for loops that cannot fail.
func ParallelRange(workers, n int, fn func(start, end int)) {
	if n <= 0 {
		return
	}
	if workers <= 1 || n == 1 {
		fn(0, n)
		return
	}

	swg := sizedwaitgroup.New(workers)
	for _, r := range chunks(n, workers) {
		start, end := r[0], r[1]
		swg.Add()
		go func() {
			defer swg.Done()
			fn(start, end)
		}()
	}
	swg.Wait()
}
