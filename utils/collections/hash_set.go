package collections

// HashSetHashFunc maps an element to the comparable identity used for
// membership. Two elements with the same identity are the same element.
type HashSetHashFunc[R comparable, V any] func(V) R

type hashSet[R comparable, V any] struct {
	index    map[R]int
	entries  []V
	hashFunc HashSetHashFunc[R, V]
}

func NewHashSet[R comparable, V any](f HashSetHashFunc[R, V]) Set[V] {
	return &hashSet[R, V]{
		index:    make(map[R]int),
		entries:  make([]V, 0),
		hashFunc: f,
	}
}

// Identity is the hash function for sets of comparable elements.
func Identity[V comparable](v V) V {
	return v
}

func (s *hashSet[R, V]) Contains(v V) bool {
	_, ok := s.index[s.hashFunc(v)]
	return ok
}

func (s *hashSet[R, V]) Add(v V) error {
	hash := s.hashFunc(v)
	if _, ok := s.index[hash]; ok {
		return ErrValueExisted
	}
	s.index[hash] = len(s.entries)
	s.entries = append(s.entries, v)
	return nil
}

// Remove is linear: later entries shift down to keep insertion order.
func (s *hashSet[R, V]) Remove(v V) error {
	hash := s.hashFunc(v)
	at, ok := s.index[hash]
	if !ok {
		return ErrValueNotExisted
	}
	delete(s.index, hash)
	copy(s.entries[at:], s.entries[at+1:])
	var zero V
	s.entries[len(s.entries)-1] = zero
	s.entries = s.entries[:len(s.entries)-1]
	for i := at; i < len(s.entries); i++ {
		s.index[s.hashFunc(s.entries[i])] = i
	}
	return nil
}

func (s *hashSet[R, V]) Size() int {
	return len(s.entries)
}

func (s *hashSet[R, V]) Entries() []V {
	arr := make([]V, len(s.entries))
	copy(arr, s.entries)
	return arr
}
