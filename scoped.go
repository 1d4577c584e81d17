package slink

import "iter"

// A Frame is one link of a list that lives entirely on the call
// stack. Frames are created by PushFrame and each one borrows its
// parent, so a frame is valid only inside the callback it was created
// for and must not be retained after that callback returns.
type Frame[T any] struct {
	Elem T
	prev *Frame[T]
}

// PushFrame creates a frame holding elem on top of parent, which may
// be nil, and passes it to f. The frame's lifetime is exactly the
// call to f; f's result is returned as is.
func PushFrame[T, U any](parent *Frame[T], elem T, f func(*Frame[T]) U) U {
	fr := Frame[T]{Elem: elem, prev: parent}
	return f(&fr)
}

// Parent returns the frame below f, or nil if f is the root.
func (f *Frame[T]) Parent() *Frame[T] {
	return f.prev
}

// All returns an iterator over the elements of the chain from f down
// to the root.
func (f *Frame[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for fr := f; fr != nil; fr = fr.prev {
			if !yield(fr.Elem) {
				return
			}
		}
	}
}

// Frames returns an iterator over the frames of the chain from f down
// to the root. Elements can be modified in place through the yielded
// frames.
func (f *Frame[T]) Frames() iter.Seq[*Frame[T]] {
	return func(yield func(*Frame[T]) bool) {
		for fr := f; fr != nil; fr = fr.prev {
			if !yield(fr) {
				return
			}
		}
	}
}
