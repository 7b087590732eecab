package session

import (
	"context"
	"sync"
	"sync/atomic"
)

type MemoryTracker struct {
	counters sync.Map // viewer -> *atomic.Uint64
}

func NewMemoryTracker() *MemoryTracker {
	return &MemoryTracker{}
}

func (m *MemoryTracker) counter(viewer string) *atomic.Uint64 {
	v, _ := m.counters.LoadOrStore(viewer, new(atomic.Uint64))
	return v.(*atomic.Uint64)
}

func (m *MemoryTracker) Begin(_ context.Context, viewer string) (Token, error) {
	return Token(m.counter(viewer).Add(1)), nil
}

func (m *MemoryTracker) Current(_ context.Context, viewer string) (Token, error) {
	v, ok := m.counters.Load(viewer)
	if !ok {
		return 0, nil
	}
	return Token(v.(*atomic.Uint64).Load()), nil
}
