package symtab

import (
	"fmt"

	"github.com/tuannh982/symtab/utils/collections"
	"golang.org/x/exp/constraints"
)

type bstNode[K constraints.Ordered, V any] struct {
	key   K
	val   V
	size  int
	left  *bstNode[K, V]
	right *bstNode[K, V]
}

func bstSize[K constraints.Ordered, V any](n *bstNode[K, V]) int {
	if n == nil {
		return 0
	}
	return n.size
}

// UnbalancedTreeMap is a plain size-augmented binary search tree. Its height
// follows the insertion order: sorted input degenerates it into a list.
type UnbalancedTreeMap[K constraints.Ordered, V any] struct {
	root *bstNode[K, V]
}

func NewUnbalancedTreeMap[K constraints.Ordered, V any](opts ...Option) *UnbalancedTreeMap[K, V] {
	_ = newOptions(KindUnbalanced, opts)
	return &UnbalancedTreeMap[K, V]{}
}

func (t *UnbalancedTreeMap[K, V]) Add(key K, val V) {
	t.root, _ = t.insert(t.root, key, val)
}

// insert reports whether a node was created, in which case every node on the
// way back up counts one more descendant.
func (t *UnbalancedTreeMap[K, V]) insert(n *bstNode[K, V], key K, val V) (*bstNode[K, V], bool) {
	if n == nil {
		return &bstNode[K, V]{key: key, val: val, size: 1}, true
	}
	var created bool
	switch {
	case key < n.key:
		n.left, created = t.insert(n.left, key, val)
	case key > n.key:
		n.right, created = t.insert(n.right, key, val)
	default:
		n.val = val
		return n, false
	}
	if created {
		n.size++
	}
	return n, created
}

func (t *UnbalancedTreeMap[K, V]) Value(key K) (*V, bool) {
	n := t.root
	for n != nil {
		switch {
		case key < n.key:
			n = n.left
		case key > n.key:
			n = n.right
		default:
			return &n.val, true
		}
	}
	return nil, false
}

func (t *UnbalancedTreeMap[K, V]) Rank(key K) int {
	rank := 0
	n := t.root
	for n != nil {
		switch {
		case key < n.key:
			n = n.left
		case key > n.key:
			rank += bstSize(n.left) + 1
			n = n.right
		default:
			return rank + bstSize(n.left)
		}
	}
	return rank
}

func (t *UnbalancedTreeMap[K, V]) Select(k int) (key K, ok bool) {
	if k < 0 || k >= t.Size() {
		return key, false
	}
	n := t.root
	for {
		left := bstSize(n.left)
		switch {
		case k < left:
			n = n.left
		case k > left:
			k -= left + 1
			n = n.right
		default:
			return n.key, true
		}
	}
}

func (t *UnbalancedTreeMap[K, V]) Size() int {
	return bstSize(t.root)
}

func (t *UnbalancedTreeMap[K, V]) Height() int {
	return bstHeight(t.root)
}

func bstHeight[K constraints.Ordered, V any](n *bstNode[K, V]) int {
	// iterative level walk; a degenerate tree is as deep as it is large
	if n == nil {
		return 0
	}
	height := 0
	level := collections.NewQueue[*bstNode[K, V]]()
	level.Push(n)
	for level.Size() > 0 {
		height++
		for i, width := 0, level.Size(); i < width; i++ {
			cur, _ := level.Pop()
			if cur.left != nil {
				level.Push(cur.left)
			}
			if cur.right != nil {
				level.Push(cur.right)
			}
		}
	}
	return height
}

func (t *UnbalancedTreeMap[K, V]) Keys() []K {
	return bstKeys(t.root)
}

func bstKeys[K constraints.Ordered, V any](root *bstNode[K, V]) []K {
	keys := make([]K, 0, bstSize(root))
	stack := collections.NewStack[*bstNode[K, V]]()
	n := root
	for n != nil || stack.Size() > 0 {
		for n != nil {
			stack.Push(n)
			n = n.left
		}
		n, _ = stack.Pop()
		keys = append(keys, n.key)
		n = n.right
	}
	return keys
}

func (t *UnbalancedTreeMap[K, V]) Validate() error {
	_, err := checkBST(t.root, nil, nil)
	return err
}

// checkBST verifies that every key of n lies strictly between lo and hi (nil
// meaning unbounded) and that the stored sizes add up.
func checkBST[K constraints.Ordered, V any](n *bstNode[K, V], lo, hi *K) (int, error) {
	if n == nil {
		return 0, nil
	}
	if (lo != nil && n.key <= *lo) || (hi != nil && n.key >= *hi) {
		return 0, fmt.Errorf("%w: key %v", ErrOrder, n.key)
	}
	left, err := checkBST(n.left, lo, &n.key)
	if err != nil {
		return 0, err
	}
	right, err := checkBST(n.right, &n.key, hi)
	if err != nil {
		return 0, err
	}
	if n.size != left+right+1 {
		return 0, fmt.Errorf("%w: key %v stores %d, subtree holds %d", ErrSize, n.key, n.size, left+right+1)
	}
	return n.size, nil
}
