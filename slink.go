// Package slink provides singly-linked list variants with different
// ownership models: a FIFO queue over manually managed node storage, a
// single-owner stack, a persistent structurally-shared list, and a
// chain of frames scoped to the call stack.
package slink

type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}
