package collections

// Set holds distinct elements. Entries lists them in insertion order.
type Set[V any] interface {
	Contains(v V) bool
	// Add returns ErrValueExisted when an equal element is already present.
	Add(v V) error
	Remove(v V) error
	Size() int
	Entries() []V
}
