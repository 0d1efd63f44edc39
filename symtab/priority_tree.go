package symtab

import (
	"fmt"

	"github.com/tuannh982/symtab/utils/collections"
	"golang.org/x/exp/constraints"
)

type treapNode[K constraints.Ordered, V any] struct {
	key      K
	val      V
	priority uint64
	size     int
	child    [2]*treapNode[K, V]
}

func treapSize[K constraints.Ordered, V any](n *treapNode[K, V]) int {
	if n == nil {
		return 0
	}
	return n.size
}

func (n *treapNode[K, V]) pull() {
	n.size = 1 + treapSize(n.child[0]) + treapSize(n.child[1])
}

// PriorityTreeMap is a treap: a binary search tree on keys that is also a
// max-heap on priorities drawn when a node is created. The expected height is
// logarithmic for any insertion order.
type PriorityTreeMap[K constraints.Ordered, V any] struct {
	root       *treapNode[K, V]
	priorities PrioritySource
}

func NewPriorityTreeMap[K constraints.Ordered, V any](opts ...Option) *PriorityTreeMap[K, V] {
	o := newOptions(KindPriority, opts)
	return &PriorityTreeMap[K, V]{
		priorities: o.priorities,
	}
}

func (t *PriorityTreeMap[K, V]) Add(key K, val V) {
	t.root, _ = t.insert(t.root, key, val)
}

// insert returns the new root of the subtree. A freshly linked child whose
// priority beats its parent's is rotated above it, one level per return.
func (t *PriorityTreeMap[K, V]) insert(n *treapNode[K, V], key K, val V) (*treapNode[K, V], bool) {
	if n == nil {
		return &treapNode[K, V]{key: key, val: val, priority: t.priorities.Uint64(), size: 1}, true
	}
	if key == n.key {
		n.val = val
		return n, false
	}
	side := 0
	if key > n.key {
		side = 1
	}
	child, created := t.insert(n.child[side], key, val)
	if !created {
		return n, false
	}
	if child.priority <= n.priority {
		n.child[side] = child
		n.pull()
		return n, true
	}
	// rotate child above n; its inner subtree moves across to n
	n.child[side] = child.child[1-side]
	n.pull()
	child.child[1-side] = n
	child.pull()
	return child, true
}

func (t *PriorityTreeMap[K, V]) Value(key K) (*V, bool) {
	n := t.root
	for n != nil {
		if key == n.key {
			return &n.val, true
		}
		if key < n.key {
			n = n.child[0]
		} else {
			n = n.child[1]
		}
	}
	return nil, false
}

func (t *PriorityTreeMap[K, V]) Rank(key K) int {
	rank := 0
	for n := t.root; n != nil; {
		left := treapSize(n.child[0])
		if key == n.key {
			return rank + left
		}
		if key < n.key {
			n = n.child[0]
		} else {
			rank += left + 1
			n = n.child[1]
		}
	}
	return rank
}

func (t *PriorityTreeMap[K, V]) Select(k int) (key K, ok bool) {
	if k < 0 || k >= t.Size() {
		return key, false
	}
	n := t.root
	for {
		left := treapSize(n.child[0])
		if k == left {
			return n.key, true
		}
		if k < left {
			n = n.child[0]
		} else {
			k -= left + 1
			n = n.child[1]
		}
	}
}

func (t *PriorityTreeMap[K, V]) Size() int {
	return treapSize(t.root)
}

func (t *PriorityTreeMap[K, V]) Height() int {
	return treapHeight(t.root)
}

func treapHeight[K constraints.Ordered, V any](n *treapNode[K, V]) int {
	if n == nil {
		return 0
	}
	left, right := treapHeight(n.child[0]), treapHeight(n.child[1])
	if left > right {
		return left + 1
	}
	return right + 1
}

func (t *PriorityTreeMap[K, V]) Keys() []K {
	keys := make([]K, 0, t.Size())
	stack := collections.NewStackWithCapacity[*treapNode[K, V]](t.Height())
	n := t.root
	for n != nil || stack.Size() > 0 {
		for ; n != nil; n = n.child[0] {
			stack.Push(n)
		}
		n, _ = stack.Pop()
		keys = append(keys, n.key)
		n = n.child[1]
	}
	return keys
}

func (t *PriorityTreeMap[K, V]) Validate() error {
	_, err := t.check(t.root, nil, nil)
	return err
}

func (t *PriorityTreeMap[K, V]) check(n *treapNode[K, V], lo, hi *K) (int, error) {
	if n == nil {
		return 0, nil
	}
	if (lo != nil && n.key <= *lo) || (hi != nil && n.key >= *hi) {
		return 0, fmt.Errorf("%w: key %v", ErrOrder, n.key)
	}
	size := 1
	for side, c := range n.child {
		if c != nil && c.priority > n.priority {
			return 0, fmt.Errorf("%w: child %v (%d) above parent %v (%d)", ErrHeap, c.key, c.priority, n.key, n.priority)
		}
		clo, chi := lo, &n.key
		if side == 1 {
			clo, chi = &n.key, hi
		}
		cs, err := t.check(c, clo, chi)
		if err != nil {
			return 0, err
		}
		size += cs
	}
	if n.size != size {
		return 0, fmt.Errorf("%w: key %v stores %d, subtree holds %d", ErrSize, n.key, n.size, size)
	}
	return size, nil
}
