// Package arena provides the manually managed node storage behind the
// list types in the root package.
package arena

// An Addr is the address of a node slot in a Slab. The zero Addr is
// Nil, the null address, so a type holding Addrs is ready to use
// without initialization.
type Addr int32

// Nil is the null address. No slot is ever located at it.
const Nil Addr = 0

// A Slab owns a set of node slots addressed by Addr. Slots are
// allocated and freed explicitly; a freed slot is recycled by a later
// Alloc before the slab grows. A zero value Slab is an empty slab
// ready to use.
//
// The slab does not track which slots form a chain. The caller owns
// the chain structure and is responsible for freeing every slot it
// allocates exactly once. Using an address after freeing it, or
// freeing it twice, panics.
//
// A Slab performs no synchronization.
type Slab[T any] struct {
	slots []slot[T]
	free  Addr // head of the free list
	live  int
}

type slot[T any] struct {
	elem T
	next Addr // successor in the caller's chain, or the free list link
	dead bool
}

func (s *Slab[T]) at(a Addr) *slot[T] {
	if a == Nil {
		panic("slink: use of nil address")
	}
	sl := &s.slots[a-1]
	if sl.dead {
		panic("slink: use of freed node")
	}
	return sl
}

// Alloc places elem in a fresh slot with a Nil successor and returns
// the slot's address.
func (s *Slab[T]) Alloc(elem T) Addr {
	if s.free != Nil {
		a := s.free
		sl := &s.slots[a-1]
		s.free = sl.next
		sl.elem, sl.next, sl.dead = elem, Nil, false
		s.live++
		return a
	}

	s.slots = append(s.slots, slot[T]{elem: elem})
	s.live++
	return Addr(len(s.slots))
}

// Free returns the slot at a to the slab. The element is zeroed so
// the slab does not retain anything it references.
func (s *Slab[T]) Free(a Addr) {
	if a == Nil {
		panic("slink: free of nil address")
	}
	sl := &s.slots[a-1]
	if sl.dead {
		panic("slink: double free")
	}

	var zero T
	sl.elem = zero
	sl.dead = true
	sl.next = s.free
	s.free = a
	s.live--
}

// Next returns the successor address of the slot at a.
func (s *Slab[T]) Next(a Addr) Addr {
	return s.at(a).next
}

// SetNext points the slot at a to next as its successor.
func (s *Slab[T]) SetNext(a, next Addr) {
	s.at(a).next = next
}

// Elem returns a pointer to the element of the slot at a. The pointer
// is valid only until the next Alloc, which may move the slab.
func (s *Slab[T]) Elem(a Addr) *T {
	return &s.at(a).elem
}

// Live returns the number of currently allocated slots.
func (s *Slab[T]) Live() int {
	return s.live
}
