package symtab

import (
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/tuannh982/symtab/utils/collections"
	"golang.org/x/exp/constraints"
)

type color uint8

const (
	red color = iota
	black
)

func (c color) String() string {
	if c == red {
		return "red"
	}
	return "black"
}

// nilIndex marks an absent parent or child.
const nilIndex int32 = -1

type rbNode[K constraints.Ordered, V any] struct {
	key    K
	val    V
	color  color
	size   int
	parent int32
	child  [2]int32
}

// RedBlackTreeMap is a red-black tree whose nodes live in a single slice.
// Parent and child links are indices into that slice, so rotations only
// rewrite integers.
type RedBlackTreeMap[K constraints.Ordered, V any] struct {
	nodes  []rbNode[K, V]
	root   int32
	logger *log.Entry
}

func NewRedBlackTreeMap[K constraints.Ordered, V any](opts ...Option) *RedBlackTreeMap[K, V] {
	o := newOptions(KindRedBlack, opts)
	return &RedBlackTreeMap[K, V]{
		nodes:  make([]rbNode[K, V], 0),
		root:   nilIndex,
		logger: o.logger,
	}
}

func (t *RedBlackTreeMap[K, V]) sizeOf(i int32) int {
	if i == nilIndex {
		return 0
	}
	return t.nodes[i].size
}

func (t *RedBlackTreeMap[K, V]) isRed(i int32) bool {
	return i != nilIndex && t.nodes[i].color == red
}

func (t *RedBlackTreeMap[K, V]) update(i int32) {
	n := &t.nodes[i]
	n.size = 1 + t.sizeOf(n.child[0]) + t.sizeOf(n.child[1])
}

// sideOf tells which child of its parent i is. i must have a parent.
func (t *RedBlackTreeMap[K, V]) sideOf(i int32) int {
	if t.nodes[t.nodes[i].parent].child[0] == i {
		return 0
	}
	return 1
}

// attach links child under parent on side. Either may be nilIndex.
func (t *RedBlackTreeMap[K, V]) attach(child, parent int32, side int) {
	if child != nilIndex {
		t.nodes[child].parent = parent
	}
	if parent != nilIndex {
		t.nodes[parent].child[side] = child
		t.update(parent)
	}
}

// rotate lifts a, the child of b on side, into b's place.
func (t *RedBlackTreeMap[K, V]) rotate(a, b int32, side int) {
	up := t.nodes[b].parent
	upSide := 0
	if up != nilIndex {
		upSide = t.sideOf(b)
	}
	t.attach(t.nodes[a].child[1-side], b, side)
	t.attach(b, a, 1-side)
	if up != nilIndex {
		t.attach(a, up, upSide)
		return
	}
	t.nodes[a].parent = nilIndex
	t.root = a
	if traceEnabled(t.logger) {
		t.logger.WithFields(log.Fields{
			"root": t.nodes[a].key,
			"size": len(t.nodes),
		}).Trace("root rotated")
	}
}

func (t *RedBlackTreeMap[K, V]) Add(key K, val V) {
	parent, side := nilIndex, 0
	for cur := t.root; cur != nilIndex; {
		n := &t.nodes[cur]
		if key == n.key {
			n.val = val
			return
		}
		parent = cur
		if key < n.key {
			side = 0
		} else {
			side = 1
		}
		cur = n.child[side]
	}
	i := int32(len(t.nodes))
	t.nodes = append(t.nodes, rbNode[K, V]{
		key:    key,
		val:    val,
		color:  red,
		size:   1,
		parent: nilIndex,
		child:  [2]int32{nilIndex, nilIndex},
	})
	if parent == nilIndex {
		t.root = i
	} else {
		t.attach(i, parent, side)
	}
	t.fixUp(i)
	// the root is black whatever path the fix-up took
	t.nodes[t.root].color = black
	for cur := i; cur != nilIndex; cur = t.nodes[cur].parent {
		t.update(cur)
	}
}

// fixUp restores the coloring after cur was linked in red.
func (t *RedBlackTreeMap[K, V]) fixUp(cur int32) {
	for {
		dad := t.nodes[cur].parent
		if dad == nilIndex || t.nodes[dad].color == black {
			return
		}
		grand := t.nodes[dad].parent
		if grand == nilIndex {
			t.nodes[dad].color = black
			return
		}
		side := t.sideOf(cur)
		dadSide := t.sideOf(dad)
		uncle := t.nodes[grand].child[1-dadSide]
		if t.isRed(uncle) {
			t.nodes[dad].color = black
			t.nodes[uncle].color = black
			t.nodes[grand].color = red
			cur = grand
			continue
		}
		if side == dadSide {
			t.rotate(dad, grand, side)
			t.nodes[dad].color = black
		} else {
			t.rotate(cur, dad, side)
			t.rotate(cur, grand, dadSide)
			t.nodes[cur].color = black
		}
		t.nodes[grand].color = red
		return
	}
}

func (t *RedBlackTreeMap[K, V]) find(key K) int32 {
	cur := t.root
	for cur != nilIndex {
		n := &t.nodes[cur]
		switch {
		case key < n.key:
			cur = n.child[0]
		case key > n.key:
			cur = n.child[1]
		default:
			return cur
		}
	}
	return nilIndex
}

func (t *RedBlackTreeMap[K, V]) Value(key K) (*V, bool) {
	i := t.find(key)
	if i == nilIndex {
		return nil, false
	}
	return &t.nodes[i].val, true
}

func (t *RedBlackTreeMap[K, V]) Rank(key K) int {
	rank := 0
	cur := t.root
	for cur != nilIndex {
		n := &t.nodes[cur]
		switch {
		case key < n.key:
			cur = n.child[0]
		case key > n.key:
			rank += t.sizeOf(n.child[0]) + 1
			cur = n.child[1]
		default:
			return rank + t.sizeOf(n.child[0])
		}
	}
	return rank
}

func (t *RedBlackTreeMap[K, V]) Select(k int) (key K, ok bool) {
	if k < 0 || k >= t.Size() {
		return key, false
	}
	cur := t.root
	for {
		n := &t.nodes[cur]
		left := t.sizeOf(n.child[0])
		switch {
		case k < left:
			cur = n.child[0]
		case k > left:
			k -= left + 1
			cur = n.child[1]
		default:
			return n.key, true
		}
	}
}

func (t *RedBlackTreeMap[K, V]) Size() int {
	return t.sizeOf(t.root)
}

func (t *RedBlackTreeMap[K, V]) Height() int {
	return t.height(t.root)
}

func (t *RedBlackTreeMap[K, V]) height(i int32) int {
	if i == nilIndex {
		return 0
	}
	left, right := t.height(t.nodes[i].child[0]), t.height(t.nodes[i].child[1])
	if left > right {
		return left + 1
	}
	return right + 1
}

func (t *RedBlackTreeMap[K, V]) Keys() []K {
	keys := make([]K, 0, len(t.nodes))
	stack := collections.NewStackWithCapacity[int32](t.Height())
	cur := t.root
	for cur != nilIndex || stack.Size() > 0 {
		for ; cur != nilIndex; cur = t.nodes[cur].child[0] {
			stack.Push(cur)
		}
		cur, _ = stack.Pop()
		keys = append(keys, t.nodes[cur].key)
		cur = t.nodes[cur].child[1]
	}
	return keys
}

func (t *RedBlackTreeMap[K, V]) Validate() error {
	if t.root == nilIndex {
		if len(t.nodes) != 0 {
			return fmt.Errorf("%w: %d nodes unreachable from an empty root", ErrSize, len(t.nodes))
		}
		return nil
	}
	if t.nodes[t.root].color != black {
		return ErrRootColor
	}
	if t.nodes[t.root].parent != nilIndex {
		return fmt.Errorf("%w: root has parent %d", ErrParentLink, t.nodes[t.root].parent)
	}
	_, size, err := t.check(t.root, nil, nil)
	if err != nil {
		return err
	}
	if size != len(t.nodes) {
		return fmt.Errorf("%w: %d nodes allocated, %d reachable", ErrSize, len(t.nodes), size)
	}
	return nil
}

// check returns the black height and the size of the subtree at i.
func (t *RedBlackTreeMap[K, V]) check(i int32, lo, hi *K) (int, int, error) {
	if i == nilIndex {
		return 1, 0, nil
	}
	n := &t.nodes[i]
	if (lo != nil && n.key <= *lo) || (hi != nil && n.key >= *hi) {
		return 0, 0, fmt.Errorf("%w: key %v", ErrOrder, n.key)
	}
	var blacks [2]int
	size := 1
	for side, c := range n.child {
		if c == nilIndex {
			blacks[side] = 1
			continue
		}
		if t.nodes[c].parent != i {
			return 0, 0, fmt.Errorf("%w: child %v of %v points to %d", ErrParentLink, t.nodes[c].key, n.key, t.nodes[c].parent)
		}
		if n.color == red && t.nodes[c].color == red {
			return 0, 0, fmt.Errorf("%w: %v under %v", ErrRedRed, t.nodes[c].key, n.key)
		}
		clo, chi := lo, &n.key
		if side == 1 {
			clo, chi = &n.key, hi
		}
		b, s, err := t.check(c, clo, chi)
		if err != nil {
			return 0, 0, err
		}
		blacks[side] = b
		size += s
	}
	if blacks[0] != blacks[1] {
		return 0, 0, fmt.Errorf("%w: %d left, %d right below %v", ErrBlackHeight, blacks[0], blacks[1], n.key)
	}
	if n.size != size {
		return 0, 0, fmt.Errorf("%w: key %v stores %d, subtree holds %d", ErrSize, n.key, n.size, size)
	}
	if n.color == black {
		return blacks[0] + 1, size, nil
	}
	return blacks[0], size, nil
}
