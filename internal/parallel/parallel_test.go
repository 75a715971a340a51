package parallel

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
)

func TestRun(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Enabled = true

	var counter int64
	n := 1000

	err := Run(context.Background(), n, func(_ context.Context, _ int) error {
		atomic.AddInt64(&counter, 1)
		return nil
	}, cfg)
	if err != nil {
		t.Fatalf("Run returned %v", err)
	}

	if counter != int64(n) {
		t.Errorf("Expected %d, got %d", n, counter)
	}
}

func TestRun_EveryIndexOnce(t *testing.T) {
	cfg := Config{Enabled: true, NumWorkers: 3}

	seen := make([]int32, 64)
	err := Run(context.Background(), len(seen), func(_ context.Context, i int) error {
		atomic.AddInt32(&seen[i], 1)
		return nil
	}, cfg)
	if err != nil {
		t.Fatalf("Run returned %v", err)
	}

	for i, c := range seen {
		if c != 1 {
			t.Errorf("index %d ran %d times, want 1", i, c)
		}
	}
}

func TestRun_Sequential(t *testing.T) {
	cfg := Config{Enabled: false}

	var order []int
	err := Run(context.Background(), 5, func(_ context.Context, i int) error {
		order = append(order, i)
		return nil
	}, cfg)
	if err != nil {
		t.Fatalf("Run returned %v", err)
	}

	for i, v := range order {
		if v != i {
			t.Errorf("order[%d] = %d, want %d", i, v, i)
		}
	}
}

func TestRun_SequentialStopsAtError(t *testing.T) {
	boom := errors.New("boom")
	var ran int

	err := Run(context.Background(), 10, func(_ context.Context, i int) error {
		ran++
		if i == 2 {
			return boom
		}
		return nil
	}, Config{Enabled: false})

	if !errors.Is(err, boom) {
		t.Errorf("Expected boom, got %v", err)
	}
	if ran != 3 {
		t.Errorf("Expected 3 jobs to run, got %d", ran)
	}
}

func TestRun_ParallelError(t *testing.T) {
	boom := errors.New("boom")

	err := Run(context.Background(), 100, func(_ context.Context, i int) error {
		if i == 50 {
			return boom
		}
		return nil
	}, Config{Enabled: true, NumWorkers: 4})

	if !errors.Is(err, boom) {
		t.Errorf("Expected boom, got %v", err)
	}
}

func TestRun_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var ran int64
	err := Run(ctx, 10, func(_ context.Context, _ int) error {
		atomic.AddInt64(&ran, 1)
		return nil
	}, Config{Enabled: false})

	if !errors.Is(err, context.Canceled) {
		t.Errorf("Expected context.Canceled, got %v", err)
	}
	if ran != 0 {
		t.Errorf("Expected no jobs, got %d", ran)
	}
}

func BenchmarkRun(b *testing.B) {
	cfg := DefaultConfig()
	n := 10000

	b.Run("parallel", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			var sum int64
			_ = Run(context.Background(), n, func(_ context.Context, i int) error {
				atomic.AddInt64(&sum, int64(i))
				return nil
			}, cfg)
		}
	})

	b.Run("sequential", func(b *testing.B) {
		cfgSeq := cfg
		cfgSeq.Enabled = false
		for i := 0; i < b.N; i++ {
			var sum int64
			_ = Run(context.Background(), n, func(_ context.Context, i int) error {
				atomic.AddInt64(&sum, int64(i))
				return nil
			}, cfgSeq)
		}
	})
}
