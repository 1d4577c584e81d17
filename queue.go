package slink

import "deedles.dev/slink/internal/arena"

// A Queue is an unbounded FIFO container backed by a manually managed
// slab of nodes. A zero value Queue is ready to use.
//
// The queue keeps two access points into a single chain of nodes: the
// head, where Pop removes, and the tail, where Push appends. The head
// owns the chain; the tail is a secondary, non-owning address into a
// node the chain already owns, and every operation that can empty the
// chain re-synchronizes it so that it never names a freed node.
//
// A Queue performs no synchronization and must not be copied after
// first use.
type Queue[T any] struct {
	_ noCopy

	slab arena.Slab[T]
	head arena.Addr
	tail arena.Addr

	// ver is bumped by every structural mutation so that the
	// iterators in queue_iter.go can detect a Push, Pop, or Clear
	// happening underneath them.
	ver uint64
}

// New returns a new, empty Queue.
func New[T any]() *Queue[T] {
	return new(Queue[T])
}

// Push appends elem at the tail of the queue.
func (q *Queue[T]) Push(elem T) {
	n := q.slab.Alloc(elem)

	if q.tail != arena.Nil {
		q.slab.SetNext(q.tail, n)
	} else {
		q.head = n
	}
	q.tail = n
	q.ver++
}

// Pop removes and returns the element at the head of the queue. It
// returns false without modifying the queue if the queue is empty.
func (q *Queue[T]) Pop() (T, bool) {
	if q.head == arena.Nil {
		var zero T
		return zero, false
	}

	n := q.head
	q.head = q.slab.Next(n)
	if q.head == arena.Nil {
		// The chain is empty now, so the tail must stop naming the
		// node that is about to be freed.
		q.tail = arena.Nil
	}

	elem := *q.slab.Elem(n)
	q.slab.Free(n)
	q.ver++
	return elem, true
}

// Peek returns the element at the head of the queue without removing
// it, or false if the queue is empty.
func (q *Queue[T]) Peek() (T, bool) {
	if q.head == arena.Nil {
		var zero T
		return zero, false
	}
	return *q.slab.Elem(q.head), true
}

// PeekPtr returns a pointer to the element at the head of the queue,
// or false if the queue is empty. The pointer is valid only until the
// next Push, Pop, or Clear.
func (q *Queue[T]) PeekPtr() (*T, bool) {
	if q.head == arena.Nil {
		return nil, false
	}
	return q.slab.Elem(q.head), true
}

// Len returns the number of elements in the queue.
func (q *Queue[T]) Len() int {
	return q.slab.Live()
}

// Empty returns whether the queue contains no elements.
func (q *Queue[T]) Empty() bool {
	return q.head == arena.Nil
}

// Clear removes all elements from the queue. It tears the chain down
// one node at a time, so it is safe for arbitrarily long chains.
func (q *Queue[T]) Clear() {
	for {
		if _, ok := q.Pop(); !ok {
			return
		}
	}
}
