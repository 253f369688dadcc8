// Package carousel does the paging arithmetic behind the testimonial and
// gallery sliders.
package carousel

import (
	"context"
	"time"
)

// Groups is the number of pages needed to show n entries perView at a time.
func Groups(n, perView int) int {
	if n <= 0 || perView <= 0 {
		return 0
	}
	return (n + perView - 1) / perView
}

// Chunk splits list into pages of at most perView entries.
func Chunk[T any](list []T, perView int) [][]T {
	pages := make([][]T, 0, Groups(len(list), perView))
	for start := 0; start < len(list) && perView > 0; start += perView {
		end := min(start+perView, len(list))
		pages = append(pages, list[start:end])
	}
	return pages
}

// Next advances i with wraparound. It returns 0 when count is 0.
func Next(i, count int) int {
	if count <= 0 {
		return 0
	}
	return (i + 1) % count
}

// Prev steps i back with wraparound.
func Prev(i, count int) int {
	if count <= 0 {
		return 0
	}
	return (i - 1 + count) % count
}

// TickFunc starts a periodic tick source and returns its channel and a stop
// function.
type TickFunc func(d time.Duration) (<-chan time.Time, func())

// RealTicker is the TickFunc backed by time.NewTicker.
func RealTicker(d time.Duration) (<-chan time.Time, func()) {
	t := time.NewTicker(d)
	return t.C, t.Stop
}

// Rotator advances a page index every Interval.
type Rotator struct {
	Count    int
	Interval time.Duration
	Tick     TickFunc
}

// Run calls onAdvance with each new index until ctx is done. It returns
// immediately when there is at most one page.
func (r Rotator) Run(ctx context.Context, onAdvance func(int)) {
	if r.Count <= 1 || r.Interval <= 0 {
		return
	}
	tick := r.Tick
	if tick == nil {
		tick = RealTicker
	}
	c, stop := tick(r.Interval)
	defer stop()

	i := 0
	for {
		select {
		case <-ctx.Done():
			return
		case <-c:
			i = Next(i, r.Count)
			onAdvance(i)
		}
	}
}
