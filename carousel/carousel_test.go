package carousel

import (
	"context"
	"testing"
	"time"
)

func TestGroups(t *testing.T) {
	tests := []struct{ n, per, want int }{
		{0, 3, 0},
		{1, 3, 1},
		{3, 3, 1},
		{4, 3, 2},
		{7, 3, 3},
		{5, 0, 0},
	}
	for _, tt := range tests {
		if got := Groups(tt.n, tt.per); got != tt.want {
			t.Fatalf("Groups(%d, %d) = %d, want %d", tt.n, tt.per, got, tt.want)
		}
	}
}

func TestChunk(t *testing.T) {
	pages := Chunk([]int{1, 2, 3, 4, 5, 6, 7}, 3)
	if len(pages) != 3 || len(pages[2]) != 1 || pages[2][0] != 7 {
		t.Fatalf("Chunk = %v", pages)
	}
	if got := Chunk([]int{}, 3); len(got) != 0 {
		t.Fatalf("Chunk(empty) = %v", got)
	}
}

func TestNextPrevWrap(t *testing.T) {
	if Next(2, 3) != 0 || Next(0, 3) != 1 {
		t.Fatal("Next does not wrap")
	}
	if Prev(0, 3) != 2 || Prev(2, 3) != 1 {
		t.Fatal("Prev does not wrap")
	}
	if Next(0, 0) != 0 || Prev(0, 0) != 0 {
		t.Fatal("zero count should stay at 0")
	}
}

func TestRotatorAdvancesOnTick(t *testing.T) {
	ticks := make(chan time.Time)
	stopped := make(chan struct{})
	r := Rotator{
		Count:    3,
		Interval: 6 * time.Second,
		Tick: func(d time.Duration) (<-chan time.Time, func()) {
			if d != 6*time.Second {
				t.Errorf("interval = %v", d)
			}
			return ticks, func() { close(stopped) }
		},
	}

	ctx, cancel := context.WithCancel(context.Background())
	seen := make(chan int, 8)
	done := make(chan struct{})
	go func() {
		r.Run(ctx, func(i int) { seen <- i })
		close(done)
	}()

	var got []int
	for i := 0; i < 4; i++ {
		ticks <- time.Time{}
		got = append(got, <-seen)
	}
	cancel()
	<-done
	<-stopped

	want := []int{1, 2, 0, 1}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("indexes = %v, want %v", got, want)
		}
	}
}

func TestRotatorSinglePageDoesNotTick(t *testing.T) {
	called := false
	r := Rotator{Count: 1, Interval: time.Second, Tick: func(time.Duration) (<-chan time.Time, func()) {
		called = true
		return nil, func() {}
	}}
	r.Run(context.Background(), func(int) {})
	if called {
		t.Fatal("rotator started a ticker for a single page")
	}
}
