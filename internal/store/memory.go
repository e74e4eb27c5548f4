package store

import (
	"encoding/json"
	"sync"
)

// Memory implements Store with in-memory documents. It backs dev mode and
// tests; values round-trip through JSON so it preserves the file backend's
// serialization semantics.
type Memory struct {
	mu   sync.RWMutex
	docs map[string][]byte

	// FailWrites makes every Save report false, for exercising the
	// dropped-write path in tests.
	FailWrites bool
}

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{docs: make(map[string][]byte)}
}

func (m *Memory) Load(key string, out interface{}) bool {
	m.mu.RLock()
	data, ok := m.docs[key]
	m.mu.RUnlock()
	if !ok {
		return false
	}
	return json.Unmarshal(data, out) == nil
}

func (m *Memory) Save(key string, value interface{}) bool {
	if m.FailWrites {
		return false
	}
	data, err := json.Marshal(value)
	if err != nil {
		return false
	}
	m.mu.Lock()
	m.docs[key] = data
	m.mu.Unlock()
	return true
}

// Corrupt replaces the document under key with unparseable bytes, for
// exercising the corrupt-data path in tests.
func (m *Memory) Corrupt(key string) {
	m.mu.Lock()
	m.docs[key] = []byte("{not json")
	m.mu.Unlock()
}
