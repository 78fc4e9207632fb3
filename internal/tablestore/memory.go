package tablestore

import (
	"context"
	"sync"
)

// MemoryStore holds tables in process memory. It backs tests and works as a
// throwaway backend; contents are lost when the process exits.
type MemoryStore struct {
	mu     sync.RWMutex
	tables map[string]*Table
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{tables: map[string]*Table{}}
}

func (s *MemoryStore) Load(ctx context.Context, schema Schema) (*Table, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	table, ok := s.tables[schema.Name]
	if !ok {
		return NewTable(schema), nil
	}
	// Tables are normalized on save; a clone keeps callers from mutating
	// the stored copy.
	return table.Clone(), nil
}

func (s *MemoryStore) Save(ctx context.Context, schema Schema, table *Table) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.tables[schema.Name] = Normalize(schema, table)
	return nil
}
