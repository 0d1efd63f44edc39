package symtab

import (
	"fmt"
	"strings"

	"github.com/tuannh982/symtab/utils/collections"
	"golang.org/x/exp/constraints"
)

// OrderedMap is the contract shared by every strategy.
type OrderedMap[K constraints.Ordered, V any] interface {
	// Add stores val under key. An existing key only gets its value replaced;
	// the structure and all sizes stay as they are.
	Add(key K, val V)
	// Value returns a handle to the value stored under key. The handle is
	// valid until the next Add on the same map.
	Value(key K) (*V, bool)
	// Rank counts the keys strictly less than key. key need not be present.
	Rank(key K) int
	// Select returns the key with rank k, if 0 <= k < Size().
	Select(k int) (K, bool)
	Size() int
	// Keys returns all keys in ascending order.
	Keys() []K
	// Validate checks the structural invariant and every size augmentation.
	Validate() error
}

// Tree is implemented by the tree shaped strategies.
type Tree[K constraints.Ordered, V any] interface {
	OrderedMap[K, V]
	// Height is the number of nodes on the longest root-to-leaf path.
	Height() int
}

type Kind int

const (
	KindSorted Kind = iota
	KindUnbalanced
	KindPriority
	KindRedBlack
	KindTwoThree
)

var kindNames = [...]string{
	KindSorted:     "sorted",
	KindUnbalanced: "bst",
	KindPriority:   "treap",
	KindRedBlack:   "redblack",
	KindTwoThree:   "twothree",
}

// legacy tokens accepted by the benchmark input format
var kindTokens = map[Kind]string{
	KindSorted:     "vo",
	KindUnbalanced: "abb",
	KindPriority:   "tr",
	KindRedBlack:   "arn",
	KindTwoThree:   "a23",
}

var kindRegistry = newKindRegistry()

func newKindRegistry() collections.Map[string, Kind] {
	registry := collections.NewHashMap[string, Kind]()
	for _, kind := range Kinds() {
		must(registry.Put(kind.String(), kind, false))
		must(registry.Put(kindTokens[kind], kind, false))
	}
	return registry
}

func must(err error) {
	if err != nil {
		panic(err)
	}
}

// Kinds lists every strategy in declaration order.
func Kinds() []Kind {
	return []Kind{KindSorted, KindUnbalanced, KindPriority, KindRedBlack, KindTwoThree}
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// ParseKind resolves a strategy name, case insensitive. Both the canonical
// names and the benchmark tokens (VO, ABB, TR, ARN, A23) are accepted.
func ParseKind(name string) (Kind, error) {
	kind, err := kindRegistry.Get(strings.ToLower(strings.TrimSpace(name)))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrUnknownKind, name)
	}
	return kind, nil
}

// New builds an empty map of the given kind.
func New[K constraints.Ordered, V any](kind Kind, opts ...Option) (OrderedMap[K, V], error) {
	switch kind {
	case KindSorted:
		return NewSortedSequenceMap[K, V](opts...), nil
	case KindUnbalanced:
		return NewUnbalancedTreeMap[K, V](opts...), nil
	case KindPriority:
		return NewPriorityTreeMap[K, V](opts...), nil
	case KindRedBlack:
		return NewRedBlackTreeMap[K, V](opts...), nil
	case KindTwoThree:
		return NewTwoThreeTreeMap[K, V](opts...), nil
	}
	return nil, fmt.Errorf("%w: %s", ErrUnknownKind, kind)
}
