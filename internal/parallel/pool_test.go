package parallel

import (
	"errors"
	"runtime"
	"sync/atomic"
	"testing"
	"time"
)

// =============================================================================
// WorkerPool Creation Tests
// =============================================================================

func TestWorkerPool_Create(t *testing.T) {
	pool := NewWorkerPool(4)
	defer pool.Close()

	if pool.Workers() != 4 {
		t.Errorf("Workers() = %d, want 4", pool.Workers())
	}
	if !pool.IsRunning() {
		t.Error("Pool should be running after creation")
	}
}

func TestWorkerPool_CreateZeroWorkers(t *testing.T) {
	pool := NewWorkerPool(0)
	defer pool.Close()

	expected := runtime.GOMAXPROCS(0)
	if pool.Workers() != expected {
		t.Errorf("Workers() = %d, want %d (GOMAXPROCS)", pool.Workers(), expected)
	}
}

func TestShared(t *testing.T) {
	a, b := Shared(), Shared()
	if a != b {
		t.Error("Shared() should return the same pool")
	}
	if !a.IsRunning() {
		t.Error("shared pool should be running")
	}
}

// =============================================================================
// ExecuteAll Tests
// =============================================================================

func TestWorkerPool_ExecuteAll(t *testing.T) {
	pool := NewWorkerPool(4)
	defer pool.Close()

	var counter atomic.Int64
	numTasks := 100

	work := make([]func(), numTasks)
	for i := range work {
		work[i] = func() {
			counter.Add(1)
		}
	}

	pool.ExecuteAll(work)

	if counter.Load() != int64(numTasks) {
		t.Errorf("counter = %d, want %d", counter.Load(), numTasks)
	}
}

func TestWorkerPool_ExecuteAll_Empty(t *testing.T) {
	pool := NewWorkerPool(2)
	defer pool.Close()

	pool.ExecuteAll(nil)
	pool.ExecuteAll([]func(){})
}

func TestWorkerPool_ExecuteAll_AfterClose(t *testing.T) {
	pool := NewWorkerPool(2)
	pool.Close()

	var counter atomic.Int64
	work := []func(){
		func() { counter.Add(1) },
		func() { counter.Add(1) },
		func() { counter.Add(1) },
	}
	pool.ExecuteAll(work)

	if counter.Load() != 3 {
		t.Errorf("counter = %d, want 3 (tasks run inline after Close)", counter.Load())
	}
}

func TestWorkerPool_WorkStealing(t *testing.T) {
	pool := NewWorkerPool(4)
	defer pool.Close()

	// Every slow task lands on worker 0's queue; the others must steal to
	// finish well before 8 sequential sleeps.
	const sleep = 20 * time.Millisecond
	work := make([]func(), 32)
	for i := range work {
		if i%4 == 0 {
			work[i] = func() { time.Sleep(sleep) }
		} else {
			work[i] = func() {}
		}
	}

	start := time.Now()
	pool.ExecuteAll(work)
	if elapsed := time.Since(start); elapsed > 8*sleep*2 {
		t.Errorf("ExecuteAll took %v, expected stealing to beat %v", elapsed, 8*sleep)
	}
}

// =============================================================================
// ForEach Tests
// =============================================================================

func TestWorkerPool_ForEach(t *testing.T) {
	pool := NewWorkerPool(3)
	defer pool.Close()

	out := make([]int, 10)
	err := pool.ForEach(len(out), func(i int) error {
		out[i] = i * i
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
	for i, v := range out {
		if v != i*i {
			t.Errorf("out[%d] = %d, want %d", i, v, i*i)
		}
	}
}

func TestWorkerPool_ForEachLowestError(t *testing.T) {
	pool := NewWorkerPool(4)
	defer pool.Close()

	errLow := errors.New("low")
	errHigh := errors.New("high")

	err := pool.ForEach(8, func(i int) error {
		switch i {
		case 2:
			return errLow
		case 6:
			return errHigh
		}
		return nil
	})
	if !errors.Is(err, errLow) {
		t.Errorf("err = %v, want %v", err, errLow)
	}
}

// =============================================================================
// Close Tests
// =============================================================================

func TestWorkerPool_CloseIdempotent(t *testing.T) {
	pool := NewWorkerPool(2)
	pool.Close()
	pool.Close()

	if pool.IsRunning() {
		t.Error("Pool should not be running after Close")
	}
}

func TestWorkerPool_NoGoroutineLeak(t *testing.T) {
	before := runtime.NumGoroutine()

	for range 10 {
		pool := NewWorkerPool(4)
		pool.ExecuteAll([]func(){func() {}, func() {}})
		pool.Close()
	}

	time.Sleep(10 * time.Millisecond)
	if after := runtime.NumGoroutine(); after > before+2 {
		t.Errorf("goroutines: before=%d after=%d, possible leak", before, after)
	}
}
