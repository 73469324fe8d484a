package locale_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/dgraphlabs/bfs500/locale"
)

func TestDistributedArrayAtSetRoundTrip(t *testing.T) {
	reg := locale.NewRegistry(4, 2)
	arr := locale.NewDistributedArray[int](reg, 23)

	for i := 0; i < 23; i++ {
		if err := arr.Set(i, i*10); err != nil {
			t.Fatalf("Set(%d): %v", i, err)
		}
	}
	for i := 0; i < 23; i++ {
		got, err := arr.At(i)
		if err != nil {
			t.Fatalf("At(%d): %v", i, err)
		}
		if got != i*10 {
			t.Errorf("At(%d) = %d, want %d", i, got, i*10)
		}
	}
}

func TestDistributedArrayOutOfRange(t *testing.T) {
	reg := locale.NewRegistry(3, 1)
	arr := locale.NewDistributedArray[int](reg, 5)

	if _, err := arr.At(5); !errors.Is(err, locale.ErrInvariant) {
		t.Errorf("At(5): want ErrInvariant, got %v", err)
	}
	if err := arr.Set(-1, 0); !errors.Is(err, locale.ErrInvariant) {
		t.Errorf("Set(-1): want ErrInvariant, got %v", err)
	}
}

func TestDistributedArrayZeroLength(t *testing.T) {
	reg := locale.NewRegistry(3, 1)
	arr := locale.NewDistributedArray[int](reg, 0)
	if _, ok := arr.OwnerOf(0); ok {
		t.Errorf("zero-length array: OwnerOf(0) should report no owner")
	}
}

func TestDistributedArrayFill(t *testing.T) {
	reg := locale.NewRegistry(3, 1)
	arr := locale.NewDistributedArray[int](reg, 10)
	arr.Fill(7)
	for i := 0; i < 10; i++ {
		got, _ := arr.At(i)
		if got != 7 {
			t.Errorf("At(%d) = %d, want 7", i, got)
		}
	}
}

func TestDistributedArrayAssignConformant(t *testing.T) {
	reg := locale.NewRegistry(3, 1)
	src := locale.NewDistributedArray[int](reg, 9)
	dst := locale.NewDistributedArray[int](reg, 9)
	for i := 0; i < 9; i++ {
		_ = src.Set(i, i)
	}
	if err := dst.Assign(src); err != nil {
		t.Fatalf("Assign: %v", err)
	}
	for i := 0; i < 9; i++ {
		got, _ := dst.At(i)
		if got != i {
			t.Errorf("dst.At(%d) = %d, want %d", i, got, i)
		}
	}
}

func TestDistributedArrayAssignMismatchedLength(t *testing.T) {
	reg := locale.NewRegistry(3, 1)
	src := locale.NewDistributedArray[int](reg, 9)
	dst := locale.NewDistributedArray[int](reg, 10)
	if err := dst.Assign(src); !errors.Is(err, locale.ErrInvariant) {
		t.Errorf("Assign mismatched length: want ErrInvariant, got %v", err)
	}
}

func TestDistributedArrayConcurrentSetIsLinearizable(t *testing.T) {
	reg := locale.NewRegistry(4, 4)
	arr := locale.NewDistributedArray[int](reg, 1000)

	var wg sync.WaitGroup
	for i := 0; i < 1000; i++ {
		i := i
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = arr.Set(i, i)
		}()
	}
	wg.Wait()

	for i := 0; i < 1000; i++ {
		got, _ := arr.At(i)
		if got != i {
			t.Errorf("At(%d) = %d, want %d", i, got, i)
		}
	}
}

func TestBarrierPropagatesError(t *testing.T) {
	reg := locale.NewRegistry(5, 1)
	wantErr := errors.New("boom")

	err := reg.Barrier(context.Background(), func(ctx context.Context, n int) error {
		if n == 2 {
			return wantErr
		}
		return nil
	})
	if !errors.Is(err, wantErr) {
		t.Errorf("Barrier: want %v, got %v", wantErr, err)
	}
}

func TestBarrierRunsEveryLocale(t *testing.T) {
	reg := locale.NewRegistry(6, 1)
	var mu sync.Mutex
	seen := make(map[int]bool)

	err := reg.Barrier(context.Background(), func(ctx context.Context, n int) error {
		mu.Lock()
		seen[n] = true
		mu.Unlock()
		return nil
	})
	if err != nil {
		t.Fatalf("Barrier: %v", err)
	}
	if len(seen) != 6 {
		t.Errorf("Barrier visited %d locales, want 6", len(seen))
	}
}

func TestWorkerForEachBoundsConcurrency(t *testing.T) {
	w := locale.NewWorker(3)
	var mu sync.Mutex
	var cur, max int

	err := w.ForEach(context.Background(), 50, func(ctx context.Context, i int) error {
		mu.Lock()
		cur++
		if cur > max {
			max = cur
		}
		mu.Unlock()

		mu.Lock()
		cur--
		mu.Unlock()
		return nil
	})
	if err != nil {
		t.Fatalf("ForEach: %v", err)
	}
	if max > 3 {
		t.Errorf("observed concurrency %d, want <= 3", max)
	}
}

func TestScanInclusivePrefixSum(t *testing.T) {
	reg := locale.NewRegistry(3, 1)
	src := locale.NewDistributedArray[int64](reg, 7)
	vals := []int64{1, 2, 3, 4, 5, 6, 7}
	for i, v := range vals {
		_ = src.Set(i, v)
	}

	out := locale.Scan(src)
	want := []int64{1, 3, 6, 10, 15, 21, 28}
	for i, w := range want {
		got, err := out.At(i)
		if err != nil {
			t.Fatalf("At(%d): %v", i, err)
		}
		if got != w {
			t.Errorf("Scan[%d] = %d, want %d", i, got, w)
		}
	}
}
