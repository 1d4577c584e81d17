package slink_test

import (
	"slices"
	"testing"

	"deedles.dev/slink"
)

func TestShared(t *testing.T) {
	var list slink.Shared[int]
	if _, ok := list.Head(); ok {
		t.Fatal("head of empty list succeeded")
	}

	list = list.Prepend(1).Prepend(2).Prepend(3)
	if v, _ := list.Head(); v != 3 {
		t.Fatal(v)
	}

	list = list.Tail()
	if v, _ := list.Head(); v != 2 {
		t.Fatal(v)
	}

	list = list.Tail()
	if v, _ := list.Head(); v != 1 {
		t.Fatal(v)
	}

	list = list.Tail()
	if _, ok := list.Head(); ok {
		t.Fatal("head of empty list succeeded")
	}

	// Tail of an empty list is an empty list.
	list = list.Tail()
	if _, ok := list.Head(); ok {
		t.Fatal("head of empty list succeeded")
	}
}

func TestSharedIter(t *testing.T) {
	list := slink.Shared[int]{}.Prepend(1).Prepend(2).Prepend(3)

	got := slices.Collect(list.All())
	if !slices.Equal(got, []int{3, 2, 1}) {
		t.Fatal(got)
	}
}

func TestSharedStructure(t *testing.T) {
	base := slink.Shared[int]{}.Prepend(1).Prepend(2)
	l1 := base.Prepend(3)
	l2 := base.Prepend(4)

	if got := slices.Collect(l1.All()); !slices.Equal(got, []int{3, 2, 1}) {
		t.Fatal(got)
	}
	if got := slices.Collect(l2.All()); !slices.Equal(got, []int{4, 2, 1}) {
		t.Fatal(got)
	}
	if got := slices.Collect(base.All()); !slices.Equal(got, []int{2, 1}) {
		t.Fatal(got)
	}
}
