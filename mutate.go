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
	"sort"
)

// Add inserts a pair at its sorted position and returns that position.
// Add never replaces an existing pair, even if an equal key is present.
func (l *List[K, V]) Add(key K, value V) int {
	return l.addPair(key, value)
}

// AddPair is Add for a Pair.
func (l *List[K, V]) AddPair(p Pair[K, V]) int {
	return l.addPair(p.Key, p.Value)
}

// Put replaces the first pair with a key equal to key and returns the previous
// value together with true. If no such pair exists, Put behaves like Add and
// returns false.
//
// Replacement happens in place and does not re-sort. Replacing a key with one
// which does not compare equal to it may break the sort order.
func (l *List[K, V]) Put(key K, value V) (V, bool) {
	i := l.IndexOf(key)
	if i < 0 {
		l.addPair(key, value)
		var zero V
		return zero, false
	}
	if l.cfg.Compare(l.keys[i], key) != 0 {
		T().Errorf("pairlist: put replaces key %v at %d by %v, which sorts differently", l.keys[i], i, key)
	}
	prev := l.values[i]
	l.keys[i], l.values[i] = key, value
	return prev, true
}

// PutPair is Put for a Pair.
func (l *List[K, V]) PutPair(p Pair[K, V]) (V, bool) {
	return l.Put(p.Key, p.Value)
}

// PutAll adds every entry of m to l, in the iteration order of m.
// Entries are always added, never merged with present keys.
//
// PutAll is a function rather than a method, as map keys have to be
// comparable, while a List accepts any key type.
func PutAll[K comparable, V any](l *List[K, V], m map[K]V) {
	for k, v := range m {
		l.addPair(k, v)
	}
}

// PutSeq adds every pair of seq, in the order of seq.
func (l *List[K, V]) PutSeq(seq iter.Seq2[K, V]) {
	if seq == nil {
		return
	}
	for k, v := range seq {
		l.addPair(k, v)
	}
}

// PutList adds every pair of other, by position. other may be l itself.
func (l *List[K, V]) PutList(other *List[K, V]) {
	if other.Len() == 0 {
		return
	}
	keys, values := slices.Clone(other.keys), slices.Clone(other.values)
	for i := range keys {
		l.addPair(keys[i], values[i])
	}
}

// Remove deletes the first pair with a key equal to key and returns its value.
func (l *List[K, V]) Remove(key K) (V, bool) {
	i := l.IndexOf(key)
	if i < 0 {
		var zero V
		return zero, false
	}
	value := l.values[i]
	l.deleteAt(i)
	return value, true
}

// RemoveIndex deletes the pair at position index.
func (l *List[K, V]) RemoveIndex(index int) error {
	if index < 0 || index >= l.Len() {
		return fmt.Errorf("%w: %d", ErrIndexOutOfBounds, index)
	}
	l.deleteAt(index)
	return nil
}

// Clear removes all pairs. The predicates are retained.
func (l *List[K, V]) Clear() {
	clear(l.keys)
	clear(l.values)
	l.keys = l.keys[:0]
	l.values = l.values[:0]
}

// --- Internals -------------------------------------------------------------

func (l *List[K, V]) addPair(key K, value V) int {
	at := l.insertIndex(key)
	l.insertAt(at, key, value)
	return at
}

// insertIndex returns the upper bound for key, i.e. the position after the
// last key comparing equal to key, or else the position of the first key
// comparing greater. A plain binary search hit would only guarantee adjacency
// to some key of an equal run.
func (l *List[K, V]) insertIndex(key K) int {
	return sort.Search(len(l.keys), func(i int) bool {
		return l.cfg.Compare(l.keys[i], key) > 0
	})
}

// insertAt and deleteAt are the only places where keys and values change length.
func (l *List[K, V]) insertAt(at int, key K, value V) {
	if at >= len(l.keys) {
		l.keys = append(l.keys, key)
		l.values = append(l.values, value)
		return
	}
	l.keys = slices.Insert(l.keys, at, key)
	l.values = slices.Insert(l.values, at, value)
}

func (l *List[K, V]) deleteAt(at int) {
	l.keys = slices.Delete(l.keys, at, at+1)
	l.values = slices.Delete(l.values, at, at+1)
}
