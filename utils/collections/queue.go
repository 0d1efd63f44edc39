package collections

import (
	"fmt"
)

// Queue is a FIFO container. Pop and Peek report false on an empty queue.
type Queue[V any] interface {
	Push(V)
	Pop() (V, bool)
	Peek() (V, bool)
	Size() int
}

type queue[V any] struct {
	entries []V
	head    int
}

func NewQueue[V any]() Queue[V] {
	return &queue[V]{
		entries: make([]V, 0),
	}
}

func (s *queue[V]) Push(v V) {
	s.entries = append(s.entries, v)
}

func (s *queue[V]) Pop() (v V, ok bool) {
	if s.head == len(s.entries) {
		return v, false
	}
	var zero V
	v = s.entries[s.head]
	s.entries[s.head] = zero
	s.head++
	// reclaim the consumed prefix once it dominates the buffer
	if s.head > 32 && s.head*2 >= len(s.entries) {
		n := copy(s.entries, s.entries[s.head:])
		s.entries = s.entries[:n]
		s.head = 0
	}
	return v, true
}

func (s *queue[V]) Peek() (v V, ok bool) {
	if s.head == len(s.entries) {
		return v, false
	}
	return s.entries[s.head], true
}

func (s *queue[V]) Size() int {
	return len(s.entries) - s.head
}

func (s queue[V]) String() string {
	return fmt.Sprint(s.entries[s.head:])
}
