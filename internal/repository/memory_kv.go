package repository

import (
	"context"
	"encoding/json"
	"strings"
	"sync"
)

// MemoryKV is an in-process KeyValueStore used by tests and local runs
// without a database.
type MemoryKV struct {
	mu      sync.RWMutex
	entries map[string]json.RawMessage
}

func NewMemoryKV() *MemoryKV {
	return &MemoryKV{entries: make(map[string]json.RawMessage)}
}

func (m *MemoryKV) Save(_ context.Context, key string, value interface{}) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[key] = raw
	return nil
}

func (m *MemoryKV) Load(_ context.Context, key string, dest interface{}) (bool, error) {
	m.mu.RLock()
	raw, ok := m.entries[key]
	m.mu.RUnlock()
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		return false, nil
	}
	return true, nil
}

func (m *MemoryKV) Remove(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.entries, key)
	return nil
}

func (m *MemoryKV) Clear(_ context.Context, prefix string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for k := range m.entries {
		if strings.HasPrefix(k, prefix) {
			delete(m.entries, k)
		}
	}
	return nil
}
