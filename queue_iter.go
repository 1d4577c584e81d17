package slink

import (
	"iter"

	"deedles.dev/slink/internal/arena"
)

// Drain returns an iterator that removes and yields elements from the
// head of the queue until the queue is empty. Elements not consumed,
// because the loop broke early, remain in the queue.
func (q *Queue[T]) Drain() iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			v, ok := q.Pop()
			if !ok || !yield(v) {
				return
			}
		}
	}
}

// All returns an iterator over the elements of the queue in head to
// tail order. The queue must not be modified during iteration; doing
// so panics.
func (q *Queue[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		ver := q.ver
		for a := q.head; a != arena.Nil; a = q.slab.Next(a) {
			if q.ver != ver {
				panic("slink: queue modified during iteration")
			}
			if !yield(*q.slab.Elem(a)) {
				return
			}
		}
	}
}

// Mut returns an iterator over pointers to the elements of the queue
// in head to tail order, permitting in-place modification. Each
// yielded pointer is valid only for that step of the loop. The queue
// must not be structurally modified during iteration; doing so
// panics.
func (q *Queue[T]) Mut() iter.Seq[*T] {
	return func(yield func(*T) bool) {
		ver := q.ver
		for a := q.head; a != arena.Nil; a = q.slab.Next(a) {
			if q.ver != ver {
				panic("slink: queue modified during iteration")
			}
			if !yield(q.slab.Elem(a)) {
				return
			}
		}
	}
}
