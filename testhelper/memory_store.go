package testhelper

import (
	"context"
	"sync"
)

// MemoryStore is an in memory host state cell.
type MemoryStore struct {
	// GetErr and UpdateErr, when set, fail the matching call
	GetErr    error
	UpdateErr error

	Gets    int
	Updates int

	state []byte
	l     sync.Mutex
}

func NewMemoryStore(initial []byte) *MemoryStore {
	return &MemoryStore{state: initial}
}

func (m *MemoryStore) Get(_ context.Context) ([]byte, error) {
	m.l.Lock()
	defer m.l.Unlock()
	m.Gets++
	if m.GetErr != nil {
		return nil, m.GetErr
	}
	if m.state == nil {
		return nil, nil
	}
	out := make([]byte, len(m.state))
	copy(out, m.state)
	return out, nil
}

func (m *MemoryStore) Update(_ context.Context, state []byte) error {
	m.l.Lock()
	defer m.l.Unlock()
	m.Updates++
	if m.UpdateErr != nil {
		return m.UpdateErr
	}
	m.state = make([]byte, len(state))
	copy(m.state, state)
	return nil
}

// Raw returns what was written last.
func (m *MemoryStore) Raw() []byte {
	m.l.Lock()
	defer m.l.Unlock()
	return m.state
}
