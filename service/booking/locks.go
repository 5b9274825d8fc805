// service/booking/locks.go
package booking

import "sync"

// itemLocks hands out one mutex per item name. Every check-then-commit
// sequence touching an item's interval set runs under that item's lock, which
// makes admission linearizable per item while leaving unrelated items fully
// parallel. Locks are never reclaimed; the inventory is small.
type itemLocks struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func newItemLocks() *itemLocks {
	return &itemLocks{locks: make(map[string]*sync.Mutex)}
}

func (l *itemLocks) get(item string) *sync.Mutex {
	l.mu.Lock()
	defer l.mu.Unlock()
	m, ok := l.locks[item]
	if !ok {
		m = &sync.Mutex{}
		l.locks[item] = m
	}
	return m
}
