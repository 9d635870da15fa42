package store

import (
	"sync"

	"github.com/KrishnaDabhi5/fintrack---personal-finance-dashboard/internal/entity/finance"
)

type memStore struct {
	mu    sync.RWMutex
	users map[string]*finance.UserRecord
}

func newMemStore() *memStore {
	return &memStore{users: make(map[string]*finance.UserRecord)}
}

func (m *memStore) get(key string) (*finance.UserRecord, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	rec, ok := m.users[key]
	if !ok {
		return nil, false
	}
	return rec.Clone(), true
}

func (m *memStore) put(key string, rec *finance.UserRecord) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.users[key] = rec.Clone()
}
