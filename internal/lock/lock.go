// Package lock provides the advisory per-account lock used around a
// transfer's read-compute-write cycle.
package lock

import (
	"sync"

	"github.com/pvieira/go-moneytransfer/internal/domain"
)

// Manager is an in-process keyed mutex: one mutex per account id, created
// on first use and never discarded. Callers must release in reverse
// acquisition order; deadlock avoidance (lower id first) is the caller's
// responsibility.
type Manager struct {
	mu    sync.Mutex
	locks map[domain.AccountID]*sync.Mutex
}

func NewManager() *Manager {
	return &Manager{locks: make(map[domain.AccountID]*sync.Mutex)}
}

func (m *Manager) LockAccount(id domain.AccountID) {
	m.acquire(id).Lock()
}

func (m *Manager) ReleaseAccount(id domain.AccountID) {
	m.acquire(id).Unlock()
}

func (m *Manager) acquire(id domain.AccountID) *sync.Mutex {
	m.mu.Lock()
	defer m.mu.Unlock()
	l, ok := m.locks[id]
	if !ok {
		l = &sync.Mutex{}
		m.locks[id] = l
	}
	return l
}

// NoOp provides no mutual exclusion. Useful in tests and in deployments
// that rely on database row locks instead.
type NoOp struct{}

func (NoOp) LockAccount(domain.AccountID)    {}
func (NoOp) ReleaseAccount(domain.AccountID) {}
