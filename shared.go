package slink

import "iter"

// A Shared is a persistent, immutable list. Prepend and Tail return
// new lists that share their nodes with the original, so any number
// of lists may refer to the same chain; a node is reclaimed by the
// garbage collector once the last list referring to it goes away.
//
// A zero value Shared is an empty list. Shared values are copied
// freely and are safe for concurrent readers.
type Shared[T any] struct {
	head *sharedNode[T]
}

type sharedNode[T any] struct {
	elem T
	next *sharedNode[T]
}

// Prepend returns a list with elem in front of all the elements of l.
func (l Shared[T]) Prepend(elem T) Shared[T] {
	return Shared[T]{head: &sharedNode[T]{elem: elem, next: l.head}}
}

// Head returns the first element of the list, or false if the list is
// empty.
func (l Shared[T]) Head() (T, bool) {
	if l.head == nil {
		var zero T
		return zero, false
	}
	return l.head.elem, true
}

// Tail returns the list without its first element. The tail of an
// empty list is an empty list.
func (l Shared[T]) Tail() Shared[T] {
	if l.head == nil {
		return Shared[T]{}
	}
	return Shared[T]{head: l.head.next}
}

// Empty returns whether the list contains no elements.
func (l Shared[T]) Empty() bool {
	return l.head == nil
}

// All returns an iterator over the elements of the list from front to
// back.
func (l Shared[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := l.head; n != nil; n = n.next {
			if !yield(n.elem) {
				return
			}
		}
	}
}
