package storage

import (
	"context"
	"encoding/json"
	"sync"
)

// MemoryStore is an in-process SetStore with the same JSON encoding as the
// redis adapter. Used in tests and when running without redis.
type MemoryStore struct {
	mu     sync.Mutex
	values map[string][]byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string][]byte)}
}

func (s *MemoryStore) ReadSet(_ context.Context, key string) []int64 {
	s.mu.Lock()
	raw, ok := s.values[key]
	s.mu.Unlock()
	if !ok {
		return nil
	}

	var members []int64
	if err := json.Unmarshal(raw, &members); err != nil {
		return nil
	}
	return members
}

func (s *MemoryStore) WriteSet(_ context.Context, key string, members []int64) error {
	if members == nil {
		members = []int64{}
	}
	payload, err := json.Marshal(members)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.values[key] = payload
	s.mu.Unlock()
	return nil
}

// SetRaw stores an arbitrary payload under key, bypassing encoding. Tests use
// it to simulate corrupt stored data.
func (s *MemoryStore) SetRaw(key string, raw []byte) {
	s.mu.Lock()
	s.values[key] = raw
	s.mu.Unlock()
}
