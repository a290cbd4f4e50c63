package queue

import (
	"context"
	"sync"
)

// MemoryLockManager is the single-process fallback used in tests and when
// redis is disabled in config.
type MemoryLockManager struct {
	mu   sync.Mutex
	held map[string]struct{}
}

func NewMemoryLockManager() *MemoryLockManager {
	return &MemoryLockManager{held: make(map[string]struct{})}
}

func (m *MemoryLockManager) AcquireUserLock(ctx context.Context, userID string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, taken := m.held[userID]; taken {
		return false, nil
	}
	m.held[userID] = struct{}{}
	return true, nil
}

func (m *MemoryLockManager) ReleaseUserLock(ctx context.Context, userID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.held, userID)
	return nil
}
