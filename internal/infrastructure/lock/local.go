// Package lock serializes critical sections by key, either within one process
// or across replicas through Redis.
package lock

import (
	"context"
	"fmt"
	"sync"

	"quote_service/internal/usecase/interfaces"
)

// LocalLocker holds one single-slot channel per key. Keys are never evicted,
// so callers should use a small key space (one key per year, for instance).
type LocalLocker struct {
	mu    sync.Mutex
	slots map[string]chan struct{}
}

var _ interfaces.ILocker = (*LocalLocker)(nil)

func NewLocalLocker() *LocalLocker {
	return &LocalLocker{slots: make(map[string]chan struct{})}
}

func (l *LocalLocker) Lock(ctx context.Context, key string) (func(), error) {
	slot := l.slot(key)

	select {
	case slot <- struct{}{}:
	case <-ctx.Done():
		return nil, fmt.Errorf("acquire lock %s: %w", key, ctx.Err())
	}

	var once sync.Once
	return func() {
		once.Do(func() { <-slot })
	}, nil
}

func (l *LocalLocker) slot(key string) chan struct{} {
	l.mu.Lock()
	defer l.mu.Unlock()

	s, ok := l.slots[key]
	if !ok {
		s = make(chan struct{}, 1)
		l.slots[key] = s
	}
	return s
}
