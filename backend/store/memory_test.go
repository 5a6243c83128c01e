package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func seedMemory() *MemoryStore {
	st := NewMemoryStore()
	st.Put(Item{PK: "USER#u1", SK: "COURSE#a", Title: "A"})
	st.Put(Item{PK: "USER#u1", SK: "COURSE#b", Title: "B"})
	st.Put(Item{PK: "USER#u1", SK: "ACT#2025-03-04#1", Minutes: 30})
	st.Put(Item{PK: "USER#u1", SK: "ACT#2025-03-06#1", Minutes: 15})
	st.Put(Item{PK: "USER#u2", SK: "COURSE#z", Title: "Z"})
	return st
}

func TestMemoryQueryByPrefix(t *testing.T) {
	st := seedMemory()

	items, err := st.QueryByPrefix(context.Background(), "USER#u1", "COURSE#", false)
	assert.NoError(t, err)
	assert.Len(t, items, 2)
	assert.Equal(t, "COURSE#a", items[0].SK)
	assert.Equal(t, "COURSE#b", items[1].SK)
}

func TestMemoryQueryByPrefixDescending(t *testing.T) {
	st := seedMemory()

	items, err := st.QueryByPrefix(context.Background(), "USER#u1", "COURSE#", true)
	assert.NoError(t, err)
	assert.Len(t, items, 2)
	assert.Equal(t, "COURSE#b", items[0].SK)
	assert.Equal(t, "COURSE#a", items[1].SK)
}

func TestMemoryQueryByRange(t *testing.T) {
	st := seedMemory()

	items, err := st.QueryByRange(context.Background(), "USER#u1", "ACT#2025-03-03", "ACT#2025-03-09~")
	assert.NoError(t, err)
	assert.Len(t, items, 2)
	assert.Equal(t, 30, items[0].Minutes)
	assert.Equal(t, 15, items[1].Minutes)

	// Границы включительны
	items, err = st.QueryByRange(context.Background(), "USER#u1", "ACT#2025-03-04#1", "ACT#2025-03-04#1")
	assert.NoError(t, err)
	assert.Len(t, items, 1)
}

func TestMemoryEmptyResultIsNotNil(t *testing.T) {
	st := seedMemory()

	items, err := st.QueryByPrefix(context.Background(), "USER#nobody", "COURSE#", false)
	assert.NoError(t, err)
	assert.NotNil(t, items)
	assert.Empty(t, items)

	items, err = st.QueryByRange(context.Background(), "USER#u1", "ACT#2026-01-01", "ACT#2026-01-31~")
	assert.NoError(t, err)
	assert.NotNil(t, items)
	assert.Empty(t, items)
}

func TestMemoryPutReplaces(t *testing.T) {
	st := NewMemoryStore()
	st.Put(Item{PK: "USER#u1", SK: "COURSE#a", Title: "old"})
	st.Put(Item{PK: "USER#u1", SK: "COURSE#a", Title: "new"})

	items, err := st.QueryByPrefix(context.Background(), "USER#u1", "COURSE#", false)
	assert.NoError(t, err)
	assert.Len(t, items, 1)
	assert.Equal(t, "new", items[0].Title)
}
