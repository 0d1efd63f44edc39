package symtab

import (
	"fmt"
	"sort"

	"golang.org/x/exp/constraints"
)

type entry[K constraints.Ordered, V any] struct {
	key K
	val V
}

// SortedSequenceMap keeps its entries in a slice sorted by key. Lookups are
// binary searches, Select is an index, and Add shifts the tail on a miss.
type SortedSequenceMap[K constraints.Ordered, V any] struct {
	entries []entry[K, V]
}

func NewSortedSequenceMap[K constraints.Ordered, V any](opts ...Option) *SortedSequenceMap[K, V] {
	_ = newOptions(KindSorted, opts)
	return &SortedSequenceMap[K, V]{
		entries: make([]entry[K, V], 0),
	}
}

// search returns the leftmost position whose key is not less than key.
func (m *SortedSequenceMap[K, V]) search(key K) int {
	return sort.Search(len(m.entries), func(i int) bool {
		return m.entries[i].key >= key
	})
}

func (m *SortedSequenceMap[K, V]) Add(key K, val V) {
	i := m.search(key)
	if i < len(m.entries) && m.entries[i].key == key {
		m.entries[i].val = val
		return
	}
	m.entries = append(m.entries, entry[K, V]{})
	copy(m.entries[i+1:], m.entries[i:])
	m.entries[i] = entry[K, V]{key: key, val: val}
}

func (m *SortedSequenceMap[K, V]) Value(key K) (*V, bool) {
	i := m.search(key)
	if i < len(m.entries) && m.entries[i].key == key {
		return &m.entries[i].val, true
	}
	return nil, false
}

func (m *SortedSequenceMap[K, V]) Rank(key K) int {
	return m.search(key)
}

func (m *SortedSequenceMap[K, V]) Select(k int) (key K, ok bool) {
	if k < 0 || k >= len(m.entries) {
		return key, false
	}
	return m.entries[k].key, true
}

func (m *SortedSequenceMap[K, V]) Size() int {
	return len(m.entries)
}

func (m *SortedSequenceMap[K, V]) Keys() []K {
	keys := make([]K, len(m.entries))
	for i := range m.entries {
		keys[i] = m.entries[i].key
	}
	return keys
}

func (m *SortedSequenceMap[K, V]) Validate() error {
	for i := 1; i < len(m.entries); i++ {
		if m.entries[i-1].key >= m.entries[i].key {
			return fmt.Errorf("%w: %v before %v at index %d", ErrOrder, m.entries[i-1].key, m.entries[i].key, i)
		}
	}
	return nil
}
