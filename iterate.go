package pairlist

import "iter"

// All returns an iterator over all pairs in sorted order.
//
// Changing the list during iteration is allowed, but pairs may then be
// visited twice or be skipped.
func (l *List[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for i := 0; i < l.Len(); i++ {
			if !yield(l.keys[i], l.values[i]) {
				return
			}
		}
	}
}

// Pairs returns an iterator over all pairs in sorted order.
func (l *List[K, V]) Pairs() iter.Seq[Pair[K, V]] {
	return func(yield func(Pair[K, V]) bool) {
		for k, v := range l.All() {
			if !yield(Pair[K, V]{Key: k, Value: v}) {
				return
			}
		}
	}
}

// Each visits all pairs in sorted order.
//
// The callback receives each key and value together with their position.
// Iteration stops at the first callback error and returns that error to the
// caller.
func (l *List[K, V]) Each(f func(K, V, int) error) error {
	if f == nil {
		return ErrIllegalArguments
	}
	for i := 0; i < l.Len(); i++ {
		if err := f(l.keys[i], l.values[i], i); err != nil {
			return err
		}
	}
	return nil
}
