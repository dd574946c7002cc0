package sessionstore

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

type lockEntry struct {
	ch   chan struct{}
	refs int
}

// KeyedLocker is an in-process mutex per session ID. Entries are dropped once nobody holds or waits on them.
type KeyedLocker struct {
	mu    sync.Mutex
	locks map[uuid.UUID]*lockEntry
}

func NewKeyedLocker() *KeyedLocker {
	return &KeyedLocker{locks: make(map[uuid.UUID]*lockEntry)}
}

func (k *KeyedLocker) Lock(ctx context.Context, id uuid.UUID) (func(), error) {
	k.mu.Lock()
	entry, ok := k.locks[id]
	if !ok {
		entry = &lockEntry{ch: make(chan struct{}, 1)}
		k.locks[id] = entry
	}
	entry.refs++
	k.mu.Unlock()

	select {
	case entry.ch <- struct{}{}:
	case <-ctx.Done():
		k.release(id, entry)
		return nil, ctx.Err()
	}

	var once sync.Once
	return func() {
		once.Do(func() {
			<-entry.ch
			k.release(id, entry)
		})
	}, nil
}

func (k *KeyedLocker) release(id uuid.UUID, entry *lockEntry) {
	k.mu.Lock()
	defer k.mu.Unlock()

	entry.refs--
	if entry.refs == 0 {
		delete(k.locks, id)
	}
}
