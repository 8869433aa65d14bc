// Package bench measures how map operations scale. Growth runs an
// operation over containers of doubling size and checks that its cost
// does not grow with the container; Throughput counts how many times an
// operation completes in a fixed time so two maps can be compared.
package bench

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"runtime"
	"time"
)

var (
	ErrRatioExceeded     = errors.New("bench: time ratio between doublings exceeded")
	ErrToleranceExceeded = errors.New("bench: throughput outside tolerance")
)

// Sample is one measurement of a Growth run
type Sample struct {
	Capacity int
	Count    int
	Elapsed  time.Duration
	Ratio    float64 // Elapsed over the previous sample's Elapsed, 0 for the first
}

// Growth times Act on containers of capacity Start, 2*Start, ... while
// the capacity stays below Limit. Act receives the container's length
// after Arrange and is expected to do work proportional to it, so for a
// constant time operation the elapsed time roughly doubles with each
// step. A step whose time grows by MaxRatio or more fails the run.
type Growth[M any] struct {
	Start    int
	Limit    int
	MaxRatio float64
	Rounds   int // each step keeps the fastest of Rounds runs, default 1

	Create  func(capacity int) M
	Arrange func(m M)
	Len     func(m M) int
	Act     func(m M, count int)
}

// Run performs the measurements. It stops early when ctx is done or a
// ratio is exceeded, returning the samples taken so far.
func (g Growth[M]) Run(ctx context.Context) ([]Sample, error) {
	if g.Start < 1 || g.Limit <= g.Start {
		return nil, fmt.Errorf("bench: invalid range [%d, %d)", g.Start, g.Limit)
	}
	rounds := max(g.Rounds, 1)
	var samples []Sample
	prev := time.Duration(math.MaxInt64)
	for capacity := g.Start; capacity < g.Limit; capacity *= 2 {
		if err := ctx.Err(); err != nil {
			return samples, err
		}
		s := Sample{Capacity: capacity, Elapsed: time.Duration(math.MaxInt64)}
		for r := 0; r < rounds; r++ {
			count, elapsed := g.measure(capacity)
			s.Count = count
			s.Elapsed = min(s.Elapsed, elapsed)
		}
		if prev != time.Duration(math.MaxInt64) {
			s.Ratio = s.Elapsed.Seconds() / max(prev.Seconds(), 1e-9)
		}
		samples = append(samples, s)
		slog.Debug("growth sample", "capacity", s.Capacity, "count", s.Count,
			"elapsed", s.Elapsed, "ratio", s.Ratio)
		if g.MaxRatio > 0 && s.Ratio >= g.MaxRatio {
			return samples, fmt.Errorf("%w: %.2f for capacity %d->%d (%v/%v), count %d",
				ErrRatioExceeded, s.Ratio, capacity/2, capacity, s.Elapsed, prev, s.Count)
		}
		prev = s.Elapsed
	}
	return samples, nil
}

func (g Growth[M]) measure(capacity int) (int, time.Duration) {
	m := g.Create(capacity)
	if g.Arrange != nil {
		g.Arrange(m)
	}
	count := g.Len(m)
	runtime.GC()
	start := time.Now()
	g.Act(m, count)
	return count, time.Since(start)
}
