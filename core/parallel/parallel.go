// Package parallel provides the worker helpers used by the estimators:
// chunked loops over independent items and bounded fork-join for
// recursive work.
package parallel

import (
	"context"
	"runtime"
	"sync"

	"github.com/YuminosukeSato/mdlp/pkg/errors"
)

// Parallelize splits items into contiguous chunks, one per worker, and runs
// fn(start, end) for each chunk concurrently. workers <= 0 uses the number
// of CPU cores.
func Parallelize(items, workers int, fn func(start, end int)) {
	if items == 0 {
		return
	}

	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > items {
		workers = items
	}

	// ceiling division
	chunkSize := (items + workers - 1) / workers

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		start := i * chunkSize
		end := start + chunkSize
		if end > items {
			end = items
		}
		if start >= end {
			continue
		}

		wg.Add(1)
		go func(s, e int) {
			defer wg.Done()
			fn(s, e)
		}(start, end)
	}
	wg.Wait()
}

// ParallelizeWithThreshold runs fn(0, items) on the calling goroutine when
// items does not exceed threshold, and Parallelize otherwise.
func ParallelizeWithThreshold(items, threshold, workers int, fn func(start, end int)) {
	if items <= threshold || workers == 1 {
		fn(0, items)
		return
	}
	Parallelize(items, workers, fn)
}

// Slots bounds the number of extra goroutines Join may start. A nil Slots
// never forks.
type Slots chan struct{}

// NewSlots returns room for workers-1 concurrent forks, the caller's own
// goroutine being the remaining worker. It returns nil for workers <= 1.
func NewSlots(workers int) Slots {
	if workers <= 1 {
		return nil
	}
	return make(Slots, workers-1)
}

// Join runs left and right and returns the first error in that order.
// When a slot is free, left runs on a new goroutine while right runs on
// the caller's; otherwise both run sequentially. Acquiring a slot never
// blocks, so nested Joins cannot deadlock. A panic in either function is
// returned as *errors.PanicError.
//
// Join checks ctx before starting and, on the sequential path, again
// between left and right.
func Join(ctx context.Context, slots Slots, left, right func() error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	select {
	case slots <- struct{}{}:
	default:
		if err := errors.SafeExecute("parallel.Join", left); err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		return errors.SafeExecute("parallel.Join", right)
	}

	var (
		wg      sync.WaitGroup
		leftErr error
	)
	wg.Add(1)
	go func() {
		defer wg.Done()
		defer func() { <-slots }()
		leftErr = errors.SafeExecute("parallel.Join", left)
	}()

	rightErr := errors.SafeExecute("parallel.Join", right)
	wg.Wait()

	if leftErr != nil {
		return leftErr
	}
	return rightErr
}
