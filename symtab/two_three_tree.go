package symtab

import (
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/tuannh982/symtab/utils/collections"
	"golang.org/x/exp/constraints"
)

// ttNode is a 2-node (n == 1, two children) or a 3-node (n == 2, three
// children). Leaves have no children at all. Unused key and value slots hold
// zero values.
type ttNode[K constraints.Ordered, V any] struct {
	keys  [2]K
	vals  [2]V
	n     int
	child [3]*ttNode[K, V]
	size  int
}

func ttSize[K constraints.Ordered, V any](n *ttNode[K, V]) int {
	if n == nil {
		return 0
	}
	return n.size
}

func (n *ttNode[K, V]) leaf() bool {
	return n.child[0] == nil
}

func (n *ttNode[K, V]) recount() {
	n.size = n.n
	for i := 0; i <= n.n; i++ {
		n.size += ttSize(n.child[i])
	}
}

// branch picks the child slot whose key range holds key.
func (n *ttNode[K, V]) branch(key K) int {
	i := 0
	for i < n.n && key > n.keys[i] {
		i++
	}
	return i
}

// overflow is what a split node hands to its parent: two 2-nodes and the
// entry that separates them.
type overflow[K constraints.Ordered, V any] struct {
	left, right *ttNode[K, V]
	key         K
	val         V
}

// TwoThreeTreeMap is a 2-3 tree. Splits only ever push a key upward, and the
// tree only grows at the root, so all leaves share one depth.
type TwoThreeTreeMap[K constraints.Ordered, V any] struct {
	root   *ttNode[K, V]
	height int
	logger *log.Entry
}

func NewTwoThreeTreeMap[K constraints.Ordered, V any](opts ...Option) *TwoThreeTreeMap[K, V] {
	o := newOptions(KindTwoThree, opts)
	return &TwoThreeTreeMap[K, V]{
		logger: o.logger,
	}
}

func (t *TwoThreeTreeMap[K, V]) Add(key K, val V) {
	if t.root == nil {
		t.root = &ttNode[K, V]{n: 1, size: 1}
		t.root.keys[0], t.root.vals[0] = key, val
		t.height = 1
		return
	}
	up, _ := t.insert(t.root, key, val)
	if up == nil {
		return
	}
	root := &ttNode[K, V]{n: 1}
	root.keys[0], root.vals[0] = up.key, up.val
	root.child[0], root.child[1] = up.left, up.right
	root.recount()
	t.root = root
	t.height++
	if traceEnabled(t.logger) {
		t.logger.WithFields(log.Fields{
			"root":   up.key,
			"height": t.height,
			"size":   root.size,
		}).Trace("root split")
	}
}

// insert adds key below n. It reports whether a new entry was created; a
// non-nil overflow means n was split and the caller must absorb the result.
func (t *TwoThreeTreeMap[K, V]) insert(n *ttNode[K, V], key K, val V) (*overflow[K, V], bool) {
	i := n.branch(key)
	if i < n.n && n.keys[i] == key {
		n.vals[i] = val
		return nil, false
	}
	if n.leaf() {
		return n.absorb(i, key, val, nil, nil), true
	}
	up, created := t.insert(n.child[i], key, val)
	if !created {
		return nil, false
	}
	if up == nil {
		n.size++
		return nil, true
	}
	return n.absorb(i, up.key, up.val, up.left, up.right), true
}

// absorb places an entry at slot i, with left and right replacing child i.
// A 2-node becomes a 3-node. A 3-node would hold three entries, so it keeps
// the smallest, moves the largest to a new node and returns the middle one.
func (n *ttNode[K, V]) absorb(i int, key K, val V, left, right *ttNode[K, V]) *overflow[K, V] {
	if n.n == 1 {
		if i == 0 {
			n.keys[1], n.vals[1] = n.keys[0], n.vals[0]
			n.keys[0], n.vals[0] = key, val
			n.child[2] = n.child[1]
			n.child[0], n.child[1] = left, right
		} else {
			n.keys[1], n.vals[1] = key, val
			n.child[1], n.child[2] = left, right
		}
		n.n = 2
		n.recount()
		return nil
	}

	var (
		keys [3]K
		vals [3]V
		kids [4]*ttNode[K, V]
	)
	copy(keys[:i], n.keys[:i])
	copy(vals[:i], n.vals[:i])
	keys[i], vals[i] = key, val
	copy(keys[i+1:], n.keys[i:])
	copy(vals[i+1:], n.vals[i:])
	copy(kids[:i], n.child[:i])
	kids[i], kids[i+1] = left, right
	copy(kids[i+2:], n.child[i+1:])

	sibling := &ttNode[K, V]{n: 1}
	sibling.keys[0], sibling.vals[0] = keys[2], vals[2]
	sibling.child[0], sibling.child[1] = kids[2], kids[3]
	sibling.recount()

	var zeroK K
	var zeroV V
	n.keys = [2]K{keys[0], zeroK}
	n.vals = [2]V{vals[0], zeroV}
	n.child = [3]*ttNode[K, V]{kids[0], kids[1], nil}
	n.n = 1
	n.recount()

	return &overflow[K, V]{left: n, right: sibling, key: keys[1], val: vals[1]}
}

func (t *TwoThreeTreeMap[K, V]) Value(key K) (*V, bool) {
	for n := t.root; n != nil; {
		i := n.branch(key)
		if i < n.n && n.keys[i] == key {
			return &n.vals[i], true
		}
		n = n.child[i]
	}
	return nil, false
}

func (t *TwoThreeTreeMap[K, V]) Rank(key K) int {
	rank := 0
	for n := t.root; n != nil; {
		i := 0
		for ; i < n.n && key > n.keys[i]; i++ {
			rank += ttSize(n.child[i]) + 1
		}
		if i < n.n && key == n.keys[i] {
			return rank + ttSize(n.child[i])
		}
		n = n.child[i]
	}
	return rank
}

func (t *TwoThreeTreeMap[K, V]) Select(k int) (key K, ok bool) {
	if k < 0 || k >= t.Size() {
		return key, false
	}
	n := t.root
	for {
		i := 0
		for ; i < n.n; i++ {
			left := ttSize(n.child[i])
			if k < left {
				break
			}
			if k == left {
				return n.keys[i], true
			}
			k -= left + 1
		}
		n = n.child[i]
	}
}

func (t *TwoThreeTreeMap[K, V]) Size() int {
	return ttSize(t.root)
}

func (t *TwoThreeTreeMap[K, V]) Height() int {
	return t.height
}

func (t *TwoThreeTreeMap[K, V]) Keys() []K {
	keys := make([]K, 0, t.Size())
	var walk func(n *ttNode[K, V])
	walk = func(n *ttNode[K, V]) {
		if n == nil {
			return
		}
		for i := 0; i < n.n; i++ {
			walk(n.child[i])
			keys = append(keys, n.keys[i])
		}
		walk(n.child[n.n])
	}
	walk(t.root)
	return keys
}

func (t *TwoThreeTreeMap[K, V]) Validate() error {
	if t.root == nil {
		if t.height != 0 {
			return fmt.Errorf("%w: empty tree with height %d", ErrUnevenLeaves, t.height)
		}
		return nil
	}
	if _, err := t.check(t.root, nil, nil); err != nil {
		return err
	}
	return t.checkLeafDepth()
}

func (t *TwoThreeTreeMap[K, V]) check(n *ttNode[K, V], lo, hi *K) (int, error) {
	if n.n != 1 && n.n != 2 {
		return 0, fmt.Errorf("%w: node with %d keys", ErrArity, n.n)
	}
	if n.n == 2 && n.keys[0] >= n.keys[1] {
		return 0, fmt.Errorf("%w: separators %v, %v", ErrOrder, n.keys[0], n.keys[1])
	}
	if (lo != nil && n.keys[0] <= *lo) || (hi != nil && n.keys[n.n-1] >= *hi) {
		return 0, fmt.Errorf("%w: node %v outside its range", ErrOrder, n.keys[:n.n])
	}
	size := n.n
	for i := n.n + 1; i < len(n.child); i++ {
		if n.child[i] != nil {
			return 0, fmt.Errorf("%w: %d-key node has child %d", ErrArity, n.n, i)
		}
	}
	if !n.leaf() {
		for i := 0; i <= n.n; i++ {
			if n.child[i] == nil {
				return 0, fmt.Errorf("%w: %d-key node misses child %d", ErrArity, n.n, i)
			}
			clo, chi := lo, hi
			if i > 0 {
				clo = &n.keys[i-1]
			}
			if i < n.n {
				chi = &n.keys[i]
			}
			cs, err := t.check(n.child[i], clo, chi)
			if err != nil {
				return 0, err
			}
			size += cs
		}
	}
	if n.size != size {
		return 0, fmt.Errorf("%w: node %v stores %d, subtree holds %d", ErrSize, n.keys[:n.n], n.size, size)
	}
	return size, nil
}

type ttLevel[K constraints.Ordered, V any] struct {
	node  *ttNode[K, V]
	depth int
}

// checkLeafDepth walks the tree level by level and compares every leaf depth
// with the recorded height.
func (t *TwoThreeTreeMap[K, V]) checkLeafDepth() error {
	queue := collections.NewQueue[ttLevel[K, V]]()
	queue.Push(ttLevel[K, V]{node: t.root, depth: 1})
	for queue.Size() > 0 {
		cur, _ := queue.Pop()
		if cur.node.leaf() {
			if cur.depth != t.height {
				return fmt.Errorf("%w: leaf %v at depth %d, height %d",
					ErrUnevenLeaves, cur.node.keys[:cur.node.n], cur.depth, t.height)
			}
			continue
		}
		for i := 0; i <= cur.node.n; i++ {
			queue.Push(ttLevel[K, V]{node: cur.node.child[i], depth: cur.depth + 1})
		}
	}
	return nil
}
