package store_test

import (
	"errors"
	"testing"

	"github.com/sghaida/genlab/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// DataStore
func TestDataStore_AddAndGetAll(t *testing.T) {
	t.Parallel()

	numbers := store.NewDataStore[int]()
	numbers.Add(1)
	numbers.Add(2)
	numbers.Add(3)
	assert.Equal(t, []int{1, 2, 3}, numbers.GetAll())
	assert.Equal(t, 3, numbers.Len())

	letters := store.NewDataStore("A", "B")
	letters.Add("C")
	assert.Equal(t, []string{"A", "B", "C"}, letters.GetAll())
}

func TestDataStore_GetAllReturnsCopy(t *testing.T) {
	t.Parallel()

	s := store.NewDataStore(1, 2)
	got := s.GetAll()
	got[0] = 99

	assert.Equal(t, []int{1, 2}, s.GetAll())
}

func TestDataStore_EmptyGetAllNotNil(t *testing.T) {
	t.Parallel()

	got := store.NewDataStore[string]().GetAll()
	require.NotNil(t, got)
	assert.Empty(t, got)
}

// LRU
func TestNewLRU_InvalidSize(t *testing.T) {
	t.Parallel()

	for _, size := range []int{0, -1} {
		s, err := store.NewLRU[string, int](size, nil)
		require.Error(t, err)
		assert.True(t, errors.Is(err, store.ErrInvalidSize))
		assert.Nil(t, s)
	}
}

func TestLRU_EvictsLeastRecentlyUsed(t *testing.T) {
	t.Parallel()

	var evicted []string
	s, err := store.NewLRU[string, int](2, func(k string, _ int) { evicted = append(evicted, k) })
	require.NoError(t, err)

	s.Set("a", 1)
	s.Set("b", 2)

	// touch "a" so "b" becomes the eviction candidate
	_, ok := s.Get("a")
	require.True(t, ok)

	s.Set("c", 3)

	assert.Equal(t, []string{"b"}, evicted)
	assert.Equal(t, 2, s.Len())
	assert.Equal(t, []string{"a", "c"}, s.Keys())

	_, ok = s.Peek("b")
	assert.False(t, ok)
}

func TestLRU_Delete(t *testing.T) {
	t.Parallel()

	s, err := store.NewLRU[int, string](4, nil)
	require.NoError(t, err)

	s.Set(1, "one")
	assert.True(t, s.Delete(1))
	assert.False(t, s.Delete(1))
	assert.Equal(t, 0, s.Len())
}

// Both key-value stores can be used through KV.
func TestKV_Implementations(t *testing.T) {
	t.Parallel()

	l, err := store.NewLRU[string, int](8, nil)
	require.NoError(t, err)

	impls := map[string]store.KV[string, int]{
		"map": store.NewKeyValueStore[string, int](),
		"lru": l,
	}

	for name, kv := range impls {
		kv := kv
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			kv.Set("age", 30)
			got, ok := kv.Get("age")
			require.True(t, ok)
			assert.Equal(t, 30, got)
			assert.Equal(t, []string{"age"}, kv.Keys())
			assert.True(t, kv.Delete("age"))
			assert.Equal(t, 0, kv.Len())
		})
	}
}
