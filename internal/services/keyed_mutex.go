package services

import "sync"

// keyedMutex hands out one mutex per auction id so bid attempts on the same
// auction serialize while different auctions stay concurrent. Mutexes are
// never discarded; the arena of auction ids only grows.
type keyedMutex struct {
	mu    sync.Mutex
	locks map[int64]*sync.Mutex
}

func newKeyedMutex() *keyedMutex {
	return &keyedMutex{locks: make(map[int64]*sync.Mutex)}
}

func (km *keyedMutex) get(id int64) *sync.Mutex {
	km.mu.Lock()
	defer km.mu.Unlock()

	m, ok := km.locks[id]
	if !ok {
		m = &sync.Mutex{}
		km.locks[id] = m
	}
	return m
}

func (km *keyedMutex) Lock(id int64) {
	km.get(id).Lock()
}

func (km *keyedMutex) Unlock(id int64) {
	km.get(id).Unlock()
}
