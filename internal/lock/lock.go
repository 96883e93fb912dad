// Package lock serializes commit-producing operations per repository.
//
// The committer pipeline is a read-modify-write sequence against the branch
// reference and assumes it never runs concurrently with another commit on
// the same repository. Callers acquire the repository's lock for the whole
// operation; independent repositories lock independently.
package lock

import "sync"

// Manager hands out one mutex per repository key
type Manager struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// NewManager creates an empty lock manager
func NewManager() *Manager {
	return &Manager{locks: make(map[string]*sync.Mutex)}
}

// Acquire blocks until the lock for key is held and returns the release
// function. Keys should be canonical, such as an absolute repository path.
func (m *Manager) Acquire(key string) func() {
	m.mu.Lock()
	l, ok := m.locks[key]
	if !ok {
		l = &sync.Mutex{}
		m.locks[key] = l
	}
	m.mu.Unlock()

	l.Lock()
	return l.Unlock
}
