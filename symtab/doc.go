/*
Package symtab implements ordered symbol tables: key/value maps that answer
order-statistics queries next to point lookups.

Every table implements OrderedMap:

	Add(key, val)   insert, or overwrite the value of an existing key
	Value(key)      mutable handle to the stored value
	Rank(key)       number of stored keys strictly less than key
	Select(k)       the key of rank k (0-indexed)

Five strategies are provided, selected at construction time with New or
through their typed constructors:

  - SortedSequenceMap: a sorted slice, binary search, O(n) insertion.
  - UnbalancedTreeMap: a size-augmented binary search tree without balancing.
  - PriorityTreeMap: a treap; random priorities are heap ordered.
  - RedBlackTreeMap: a red-black tree allocated in an index-addressed arena.
  - TwoThreeTreeMap: a 2-3 tree; leaves are always at the same depth.

All of them keep a per-node subtree size so that Rank and Select run in time
proportional to the height. Keys are never removed.

Tables are not safe for concurrent use.
*/
package symtab
