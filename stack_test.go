package slink_test

import (
	"slices"
	"testing"

	"deedles.dev/slink"
)

func TestStack(t *testing.T) {
	var s slink.Stack[int]

	if _, ok := s.Pop(); ok {
		t.Fatal("pop on empty stack succeeded")
	}

	s.Push(1)
	s.Push(2)
	s.Push(3)

	if v, _ := s.Pop(); v != 3 {
		t.Fatal(v)
	}
	if v, _ := s.Pop(); v != 2 {
		t.Fatal(v)
	}

	s.Push(4)
	s.Push(5)

	if v, _ := s.Pop(); v != 5 {
		t.Fatal(v)
	}
	if v, _ := s.Pop(); v != 4 {
		t.Fatal(v)
	}
	if v, _ := s.Pop(); v != 1 {
		t.Fatal(v)
	}
	if _, ok := s.Pop(); ok {
		t.Fatal("pop on empty stack succeeded")
	}
}

func TestStackPeek(t *testing.T) {
	var s slink.Stack[int]

	if _, ok := s.Peek(); ok {
		t.Fatal("peek on empty stack succeeded")
	}
	if _, ok := s.PeekPtr(); ok {
		t.Fatal("peek on empty stack succeeded")
	}

	s.Push(1)
	s.Push(2)
	s.Push(3)

	if v, _ := s.Peek(); v != 3 {
		t.Fatal(v)
	}
	if s.Len() != 3 {
		t.Fatal(s.Len())
	}

	p, _ := s.PeekPtr()
	*p = 4
	if v, _ := s.Pop(); v != 4 {
		t.Fatal(v)
	}
}

func TestStackIter(t *testing.T) {
	var s slink.Stack[int]
	s.Push(1)
	s.Push(2)
	s.Push(3)

	if got := slices.Collect(s.All()); !slices.Equal(got, []int{3, 2, 1}) {
		t.Fatal(got)
	}
	if s.Len() != 3 {
		t.Fatal(s.Len())
	}

	for p := range s.Mut() {
		*p *= 10
	}
	if got := slices.Collect(s.Drain()); !slices.Equal(got, []int{30, 20, 10}) {
		t.Fatal(got)
	}
	if !s.Empty() {
		t.Fatal(s.Len())
	}
}

func TestStackClear(t *testing.T) {
	var s slink.Stack[int]
	for i := range 100 {
		s.Push(i)
	}
	s.Clear()
	if !s.Empty() || s.Len() != 0 {
		t.Fatal(s.Len())
	}
	s.Push(1)
	if v, ok := s.Pop(); !ok || v != 1 {
		t.Fatal(v, ok)
	}
}
