package bench

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"runtime"
	"time"
)

// Throughput counts how many times Act completes on one container
// within Duration
type Throughput[M any] struct {
	Duration time.Duration
	Create   func() M
	Act      func(m M)
}

// Run warms up with one call, collects garbage and then calls Act until
// Duration has passed
func (t Throughput[M]) Run(ctx context.Context) (int, error) {
	m := t.Create()
	t.Act(m)
	runtime.GC()
	var count int
	start := time.Now()
	for time.Since(start) < t.Duration {
		if count%1024 == 0 {
			if err := ctx.Err(); err != nil {
				return count, err
			}
		}
		t.Act(m)
		count++
	}
	slog.Debug("throughput sample", "count", count, "duration", t.Duration)
	return count, nil
}

// Compare checks that got is no more than tolerance (a fraction of ref)
// below ref. Being faster than the reference never fails.
func Compare(got, ref int, tolerance float64) error {
	if ref <= 0 {
		return fmt.Errorf("bench: reference count %d: %w", ref, ErrToleranceExceeded)
	}
	if float64(ref-got) > float64(ref)*tolerance {
		return fmt.Errorf("%w: %d vs reference %d (%.1f%% slower, tolerance %.1f%%)",
			ErrToleranceExceeded, got, ref, Deviation(got, ref)*100, tolerance*100)
	}
	return nil
}

// Deviation returns how much slower got is than ref, as a fraction of
// ref; negative when got is faster
func Deviation(got, ref int) float64 {
	if ref == 0 {
		return math.Inf(1)
	}
	return float64(ref-got) / float64(ref)
}
