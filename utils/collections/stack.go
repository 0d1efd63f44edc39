package collections

import "fmt"

// Stack is a LIFO container. Pop and Peek report false on an empty stack.
type Stack[V any] interface {
	Push(V)
	Pop() (V, bool)
	Peek() (V, bool)
	Size() int
}

type stack[V any] struct {
	entries []V
}

func NewStack[V any]() Stack[V] {
	return NewStackWithCapacity[V](0)
}

// NewStackWithCapacity preallocates room for n entries. Tree traversals size
// the stack by the tree height.
func NewStackWithCapacity[V any](n int) Stack[V] {
	return &stack[V]{
		entries: make([]V, 0, n),
	}
}

func (s *stack[V]) Push(v V) {
	s.entries = append(s.entries, v)
}

func (s *stack[V]) Pop() (v V, ok bool) {
	n := len(s.entries)
	if n == 0 {
		return v, false
	}
	v = s.entries[n-1]
	s.entries = s.entries[:n-1]
	return v, true
}

func (s *stack[V]) Peek() (v V, ok bool) {
	n := len(s.entries)
	if n == 0 {
		return v, false
	}
	return s.entries[n-1], true
}

func (s *stack[V]) Size() int {
	return len(s.entries)
}

func (s stack[V]) String() string {
	return fmt.Sprint(s.entries)
}
