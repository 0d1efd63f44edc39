package collections

// Map is a key/value container that remembers insertion order: Keys and
// Values list entries by first Put. Maps ordered by key with rank/select
// live in the symtab package.
type Map[K any, V any] interface {
	Contains(k K) bool
	// Put stores v under k. Unless forced, an existing entry is left untouched
	// and ErrValueExisted is returned.
	Put(k K, v V, forced bool) error
	Get(k K) (V, error)
	Delete(k K) error
	Size() int
	Keys() []K
	Values() []V
}
