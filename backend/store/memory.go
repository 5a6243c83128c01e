package store

import (
	"context"
	"sort"
	"strings"
	"sync"
)

// MemoryStore — драйвер в памяти для тестов и локальной разработки.
// Повторяет контракт DynamoDB-драйвера: порядок по sort key,
// пустой не-nil срез при отсутствии совпадений
type MemoryStore struct {
	mu         sync.RWMutex
	partitions map[string][]Item
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{partitions: make(map[string][]Item)}
}

// Put добавляет или заменяет запись, сохраняя порядок sort key'ев
func (s *MemoryStore) Put(item Item) {
	s.mu.Lock()
	defer s.mu.Unlock()

	part := s.partitions[item.PK]
	for i := range part {
		if part[i].SK == item.SK {
			part[i] = item
			return
		}
	}
	part = append(part, item)
	sort.Slice(part, func(i, j int) bool { return part[i].SK < part[j].SK })
	s.partitions[item.PK] = part
}

func (s *MemoryStore) QueryByPrefix(_ context.Context, pk, skPrefix string, descending bool) ([]Item, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := []Item{}
	for _, it := range s.partitions[pk] {
		if strings.HasPrefix(it.SK, skPrefix) {
			items = append(items, it)
		}
	}
	if descending {
		for i, j := 0, len(items)-1; i < j; i, j = i+1, j-1 {
			items[i], items[j] = items[j], items[i]
		}
	}
	return items, nil
}

func (s *MemoryStore) QueryByRange(_ context.Context, pk, skFrom, skTo string) ([]Item, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := []Item{}
	for _, it := range s.partitions[pk] {
		if it.SK >= skFrom && it.SK <= skTo {
			items = append(items, it)
		}
	}
	return items, nil
}
