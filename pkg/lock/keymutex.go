package lock

import (
	"context"
	"sync"
)

// KeyMutex is an in-process Locker backed by one channel-based mutex per key.
// Entries are reference counted and removed once the last holder releases,
// so the map does not grow with the keyspace.
type KeyMutex struct {
	mu      sync.Mutex
	entries map[string]*keyEntry
}

type keyEntry struct {
	ch   chan struct{}
	refs int
}

func NewKeyMutex() *KeyMutex {
	return &KeyMutex{
		entries: make(map[string]*keyEntry),
	}
}

func (m *KeyMutex) Acquire(ctx context.Context, key string) (func(), error) {
	m.mu.Lock()
	entry, ok := m.entries[key]
	if !ok {
		entry = &keyEntry{ch: make(chan struct{}, 1)}
		m.entries[key] = entry
	}
	entry.refs++
	m.mu.Unlock()

	select {
	case entry.ch <- struct{}{}:
	case <-ctx.Done():
		m.unref(key, entry)
		return nil, ctx.Err()
	}

	var once sync.Once
	release := func() {
		once.Do(func() {
			<-entry.ch
			m.unref(key, entry)
		})
	}

	return release, nil
}

func (m *KeyMutex) unref(key string, entry *keyEntry) {
	m.mu.Lock()
	entry.refs--
	if entry.refs == 0 {
		delete(m.entries, key)
	}
	m.mu.Unlock()
}
