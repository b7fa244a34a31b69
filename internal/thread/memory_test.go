package thread

import (
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
)

func TestMemoryEvaluatorCachesRepeatedReads(t *testing.T) {
	var calls int32
	m := NewMemoryEvaluator(func(address uint64, byteSize int) ([]byte, error) {
		atomic.AddInt32(&calls, 1)
		return []byte{1, 2, 3, 4}, nil
	})

	first, err := m.ReadMemory(16, 4)
	if err != nil {
		t.Fatalf("ReadMemory: %v", err)
	}
	second, err := m.ReadMemory(16, 4)
	if err != nil {
		t.Fatalf("ReadMemory: %v", err)
	}
	if string(first) != string(second) {
		t.Fatalf("cached read returned different bytes: %v vs %v", first, second)
	}
	if calls != 1 {
		t.Fatalf("fetch called %d times, want 1", calls)
	}
}

func TestMemoryEvaluatorCoalescesConcurrentReads(t *testing.T) {
	var calls int32
	release := make(chan struct{})
	m := NewMemoryEvaluator(func(address uint64, byteSize int) ([]byte, error) {
		atomic.AddInt32(&calls, 1)
		<-release
		return []byte{9}, nil
	})

	var wg sync.WaitGroup
	results := make([][]byte, 4)
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			data, err := m.ReadMemory(32, 1)
			if err != nil {
				t.Errorf("ReadMemory: %v", err)
				return
			}
			results[i] = data
		}(i)
	}
	close(release)
	wg.Wait()

	if calls != 1 {
		t.Fatalf("fetch called %d times for concurrent identical reads, want 1", calls)
	}
	for i, r := range results {
		if string(r) != "\x09" {
			t.Fatalf("result[%d] = %v, want [9]", i, r)
		}
	}
}

func TestMemoryEvaluatorPropagatesFetchError(t *testing.T) {
	wantErr := fmt.Errorf("boom")
	m := NewMemoryEvaluator(func(address uint64, byteSize int) ([]byte, error) {
		return nil, wantErr
	})
	if _, err := m.ReadMemory(0, 1); err == nil {
		t.Fatal("ReadMemory: want error, got nil")
	}
}
