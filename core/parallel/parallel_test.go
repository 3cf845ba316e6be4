package parallel

import (
	"context"
	"sync/atomic"
	"testing"

	"github.com/YuminosukeSato/mdlp/pkg/errors"
)

func TestParallelize(t *testing.T) {
	tests := []struct {
		name    string
		items   int
		workers int
	}{
		{"empty", 0, 4},
		{"fewer items than workers", 3, 8},
		{"uneven chunks", 10, 3},
		{"default workers", 100, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seen := make([]int32, tt.items)
			Parallelize(tt.items, tt.workers, func(start, end int) {
				for i := start; i < end; i++ {
					atomic.AddInt32(&seen[i], 1)
				}
			})
			for i, n := range seen {
				if n != 1 {
					t.Errorf("item %d visited %d times", i, n)
				}
			}
		})
	}
}

func TestParallelizeWithThreshold(t *testing.T) {
	var calls int32
	ParallelizeWithThreshold(5, 10, 4, func(start, end int) {
		atomic.AddInt32(&calls, 1)
		if start != 0 || end != 5 {
			t.Errorf("sequential call got (%d, %d), want (0, 5)", start, end)
		}
	})
	if calls != 1 {
		t.Errorf("below threshold fn called %d times, want 1", calls)
	}
}

func TestNewSlots(t *testing.T) {
	if NewSlots(1) != nil || NewSlots(0) != nil {
		t.Error("a single worker should not get slots")
	}
	if got := cap(NewSlots(4)); got != 3 {
		t.Errorf("cap(NewSlots(4)) = %d, want 3", got)
	}
}

// sum adds the integers in [lo, hi) by recursive halving.
func sum(ctx context.Context, slots Slots, lo, hi int, out *int64) error {
	if hi-lo <= 4 {
		var s int64
		for i := lo; i < hi; i++ {
			s += int64(i)
		}
		atomic.AddInt64(out, s)
		return nil
	}
	mid := (lo + hi) / 2
	return Join(ctx, slots,
		func() error { return sum(ctx, slots, lo, mid, out) },
		func() error { return sum(ctx, slots, mid, hi, out) },
	)
}

func TestJoin(t *testing.T) {
	for _, workers := range []int{1, 2, 8} {
		var total int64
		if err := sum(context.Background(), NewSlots(workers), 0, 1000, &total); err != nil {
			t.Fatalf("workers=%d: unexpected error: %v", workers, err)
		}
		if total != 999*1000/2 {
			t.Errorf("workers=%d: total = %d, want %d", workers, total, 999*1000/2)
		}
	}
}

func TestJoinErrors(t *testing.T) {
	errLeft := errors.New("left")
	errRight := errors.New("right")

	tests := []struct {
		name  string
		slots Slots
		left  func() error
		right func() error
		want  error
	}{
		{"left wins sequential", nil, func() error { return errLeft }, func() error { return errRight }, errLeft},
		{"left wins forked", NewSlots(2), func() error { return errLeft }, func() error { return errRight }, errLeft},
		{"right only", NewSlots(2), func() error { return nil }, func() error { return errRight }, errRight},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Join(context.Background(), tt.slots, tt.left, tt.right)
			if !errors.Is(err, tt.want) {
				t.Errorf("Join() = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestJoinRecoversPanic(t *testing.T) {
	for _, slots := range []Slots{nil, NewSlots(2)} {
		err := Join(context.Background(), slots,
			func() error { panic("boom") },
			func() error { return nil },
		)
		var pe *errors.PanicError
		if !errors.As(err, &pe) {
			t.Fatalf("expected PanicError, got %v", err)
		}
		if pe.PanicValue != "boom" {
			t.Errorf("PanicValue = %v, want boom", pe.PanicValue)
		}
	}
}

func TestJoinCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	called := false
	err := Join(ctx, nil, func() error { called = true; return nil }, func() error { return nil })
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Join() = %v, want context.Canceled", err)
	}
	if called {
		t.Error("no branch should run after cancellation")
	}

	// cancellation between the branches skips right
	ctx, cancel = context.WithCancel(context.Background())
	rightCalled := false
	err = Join(ctx, nil, func() error { cancel(); return nil }, func() error { rightCalled = true; return nil })
	if !errors.Is(err, context.Canceled) || rightCalled {
		t.Errorf("Join() = %v, rightCalled = %v", err, rightCalled)
	}
}
