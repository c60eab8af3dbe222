package pairlist

/*
BSD 3-Clause License

Copyright (c) Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"fmt"
	"iter"
	"slices"
	"strings"
)

// View is a read-only window onto the keys or the values of a pair list.
//
// A view does not copy. It reads the backing slice of its list on every call
// and therefore reflects all changes of the list made after the view has been
// created. A view keeps the storage of its list reachable.
type View[T any] struct {
	items *[]T
	eq    func(a, b T) bool
}

func (v View[T]) slice() []T {
	if v.items == nil {
		return nil
	}
	return *v.items
}

// Len returns the number of items.
func (v View[T]) Len() int {
	return len(v.slice())
}

// At returns the item at position index.
func (v View[T]) At(index int) (T, error) {
	s := v.slice()
	if index < 0 || index >= len(s) {
		var zero T
		return zero, fmt.Errorf("%w: %d", ErrIndexOutOfBounds, index)
	}
	return s[index], nil
}

// Contains reports whether an item equal to x is present, using the
// equality of the underlying list.
func (v View[T]) Contains(x T) bool {
	return v.IndexOf(x) >= 0
}

// IndexOf returns the position of the first item equal to x, or -1.
func (v View[T]) IndexOf(x T) int {
	for i, item := range v.slice() {
		if v.eq(item, x) {
			return i
		}
	}
	return -1
}

// All returns an iterator over positions and items.
func (v View[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < v.Len(); i++ {
			if !yield(i, v.slice()[i]) {
				return
			}
		}
	}
}

// Items returns an iterator over the items.
func (v View[T]) Items() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, item := range v.All() {
			if !yield(item) {
				return
			}
		}
	}
}

// Copy returns the items as a new slice, detached from the list.
func (v View[T]) Copy() []T {
	return slices.Clone(v.slice())
}

func (v View[T]) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i, item := range v.slice() {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%v", item)
	}
	b.WriteByte(']')
	return b.String()
}
