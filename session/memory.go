package session

import (
	"sync"
	"time"
)

// MemoryStore keeps sessions in a mutex-guarded map. Expired entries are
// dropped lazily on Get and swept periodically once StartSweeper runs.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		sessions: make(map[string]*Session),
	}
}

func (m *MemoryStore) Get(id string) (*Session, error) {
	m.mu.RLock()
	s, ok := m.sessions[id]
	m.mu.RUnlock()

	if !ok {
		return nil, ErrNotFound
	}
	if time.Since(s.UpdatedAt) > Lifetime {
		m.mu.Lock()
		delete(m.sessions, id)
		m.mu.Unlock()
		return nil, ErrNotFound
	}

	// copy so callers never share the stored cart slice
	cp := *s
	cp.Cart = append(cp.Cart[:0:0], s.Cart...)
	return &cp, nil
}

func (m *MemoryStore) Save(s *Session) error {
	cp := *s
	cp.Cart = append(cp.Cart[:0:0], s.Cart...)
	cp.UpdatedAt = time.Now()

	m.mu.Lock()
	m.sessions[s.ID] = &cp
	m.mu.Unlock()
	return nil
}

func (m *MemoryStore) Delete(id string) error {
	m.mu.Lock()
	delete(m.sessions, id)
	m.mu.Unlock()
	return nil
}

// Sweep removes every session idle past its lifetime.
func (m *MemoryStore) Sweep() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	now := time.Now()
	for id, s := range m.sessions {
		if now.Sub(s.UpdatedAt) > Lifetime {
			delete(m.sessions, id)
		}
	}
	return nil
}

// StartSweeper sweeps expired sessions every hour until stop is closed.
func (m *MemoryStore) StartSweeper(stop <-chan struct{}) {
	go func() {
		ticker := time.NewTicker(1 * time.Hour)
		defer ticker.Stop()
		for {
			select {
			case <-stop:
				return
			case <-ticker.C:
				m.Sweep()
			}
		}
	}()
}
