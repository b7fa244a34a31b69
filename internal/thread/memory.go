package thread

import (
	"fmt"
	"sync"
)

// fetchFunc reads one linear-memory slice from the paused target. It binds
// its own session context (the focused frame's thread proxy) rather than
// taking one as a parameter, since a MemoryEvaluator outlives any single
// caller's context and always addresses the same session.
type fetchFunc func(address uint64, byteSize int) ([]byte, error)

// cacheKey identifies one requested slice; the evaluator caches whole
// requests rather than individual bytes, since a composite value's member
// reads tend to repeat the same (address,size) pair across a single
// evaluation.
type cacheKey struct {
	address uint64
	size    int
}

// inflight tracks one outstanding fetch so concurrent requests for the
// same slice share a single round trip instead of racing duplicate CDP
// calls.
type inflight struct {
	done chan struct{}
	data []byte
	err  error
}

// MemoryEvaluator implements internal/symbols.MemoryReader, adding a
// per-pause cache and in-flight request coalescing on top of the raw CDP
// fetch: one evaluation often re-reads the same address (following a
// pointer chain back to a value already dumped), and a memory read is
// itself a full CDP round trip worth avoiding twice.
type MemoryEvaluator struct {
	fetch fetchFunc

	mu       sync.Mutex
	cache    map[cacheKey][]byte
	inflight map[cacheKey]*inflight
}

// NewMemoryEvaluator wraps fetch with caching, scoped to one pause.
func NewMemoryEvaluator(fetch fetchFunc) *MemoryEvaluator {
	return &MemoryEvaluator{
		fetch:    fetch,
		cache:    map[cacheKey][]byte{},
		inflight: map[cacheKey]*inflight{},
	}
}

// ReadMemory satisfies internal/symbols.MemoryReader.
func (m *MemoryEvaluator) ReadMemory(address uint64, byteSize int) ([]byte, error) {
	key := cacheKey{address, byteSize}

	m.mu.Lock()
	if data, ok := m.cache[key]; ok {
		m.mu.Unlock()
		return data, nil
	}
	if existing, ok := m.inflight[key]; ok {
		m.mu.Unlock()
		<-existing.done
		return existing.data, existing.err
	}
	req := &inflight{done: make(chan struct{})}
	m.inflight[key] = req
	m.mu.Unlock()

	data, err := m.fetch(address, byteSize)

	m.mu.Lock()
	req.data, req.err = data, err
	if err == nil {
		m.cache[key] = data
	}
	delete(m.inflight, key)
	m.mu.Unlock()
	close(req.done)

	if err != nil {
		return nil, fmt.Errorf("thread: reading memory at %#x (%d bytes): %w", address, byteSize, err)
	}
	return data, nil
}
