package slink

import "iter"

// A Stack is a LIFO container over a chain of singly owned nodes.
// Push and Pop both act on the head, so every node is reachable
// through exactly one link and no secondary access point is needed.
// A zero value Stack is ready to use.
//
// A Stack performs no synchronization.
type Stack[T any] struct {
	head *stackNode[T]
	len  int
}

type stackNode[T any] struct {
	elem T
	next *stackNode[T]
}

// Push places elem on top of the stack.
func (s *Stack[T]) Push(elem T) {
	s.head = &stackNode[T]{elem: elem, next: s.head}
	s.len++
}

// Pop removes and returns the element on top of the stack. It returns
// false without modifying the stack if the stack is empty.
func (s *Stack[T]) Pop() (T, bool) {
	if s.head == nil {
		var zero T
		return zero, false
	}

	n := s.head
	s.head = n.next
	n.next = nil
	s.len--
	return n.elem, true
}

// Peek returns the element on top of the stack without removing it,
// or false if the stack is empty.
func (s *Stack[T]) Peek() (T, bool) {
	if s.head == nil {
		var zero T
		return zero, false
	}
	return s.head.elem, true
}

// PeekPtr returns a pointer to the element on top of the stack, or
// false if the stack is empty. The pointer is valid until the element
// is popped.
func (s *Stack[T]) PeekPtr() (*T, bool) {
	if s.head == nil {
		return nil, false
	}
	return &s.head.elem, true
}

// Len returns the number of elements on the stack.
func (s *Stack[T]) Len() int {
	return s.len
}

// Empty returns whether the stack contains no elements.
func (s *Stack[T]) Empty() bool {
	return s.head == nil
}

// Clear removes all elements from the stack.
func (s *Stack[T]) Clear() {
	s.head = nil
	s.len = 0
}

// Drain returns an iterator that removes and yields elements from the
// top of the stack until the stack is empty. Elements not consumed
// remain on the stack.
func (s *Stack[T]) Drain() iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			v, ok := s.Pop()
			if !ok || !yield(v) {
				return
			}
		}
	}
}

// All returns an iterator over the elements of the stack from top to
// bottom.
func (s *Stack[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := s.head; n != nil; n = n.next {
			if !yield(n.elem) {
				return
			}
		}
	}
}

// Mut returns an iterator over pointers to the elements of the stack
// from top to bottom, permitting in-place modification. The stack
// must not be structurally modified during iteration.
func (s *Stack[T]) Mut() iter.Seq[*T] {
	return func(yield func(*T) bool) {
		for n := s.head; n != nil; n = n.next {
			if !yield(&n.elem) {
				return
			}
		}
	}
}
