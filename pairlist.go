package pairlist

/*
BSD 3-Clause License

Copyright (c) Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"fmt"
	"iter"
	"strconv"
	"strings"
)

// Config configures the predicates of a pair list.
//
// Compare is a total order over keys and is used for placement only.
// KeyEqual and ValueEqual are used for lookup only. All three are required.
type Config[K, V any] struct {
	Compare    func(a, b K) int
	KeyEqual   func(a, b K) bool
	ValueEqual func(a, b V) bool
}

func (cfg Config[K, V]) validate() error {
	if cfg.Compare == nil {
		return fmt.Errorf("%w: comparator is required", ErrIllegalArguments)
	}
	if cfg.KeyEqual == nil {
		return fmt.Errorf("%w: key equality is required", ErrIllegalArguments)
	}
	if cfg.ValueEqual == nil {
		return fmt.Errorf("%w: value equality is required", ErrIllegalArguments)
	}
	return nil
}

func equal[T comparable](a, b T) bool {
	return a == b
}

// Pair is a single key-value association.
type Pair[K, V any] struct {
	Key   K
	Value V
}

func (p Pair[K, V]) String() string {
	return fmt.Sprintf("%v=%v", p.Key, p.Value)
}

// List is a sequence of key-value pairs, sorted by key.
//
// Keys and values are held in two slices of equal length, where keys[i] is
// paired with values[i]. Both slices are only ever changed together.
//
// A List has to be created by one of the constructors; the zero value lacks
// a comparator.
type List[K, V any] struct {
	cfg    Config[K, V]
	keys   []K
	values []V
}

// New creates an empty pair list for key and value types which support ==.
// == serves as equality for lookups, cmp decides the sort order of keys.
func New[K, V comparable](cmp func(a, b K) int) *List[K, V] {
	assert(cmp != nil, "pairlist.New requires a comparator")
	return &List[K, V]{
		cfg: Config[K, V]{
			Compare:    cmp,
			KeyEqual:   equal[K],
			ValueEqual: equal[V],
		},
	}
}

// NewWithConfig creates an empty pair list with custom predicates.
// It returns ErrIllegalArguments if a predicate is missing.
func NewWithConfig[K, V any](cfg Config[K, V]) (*List[K, V], error) {
	if err := cfg.validate(); err != nil {
		T().Debugf("pairlist: %v", err)
		return nil, err
	}
	return &List[K, V]{cfg: cfg}, nil
}

// FromMap creates a pair list from the entries of a map, inserted in the
// iteration order of m. Changes to m are not reflected in the pair list.
func FromMap[K, V comparable](m map[K]V, cmp func(a, b K) int) *List[K, V] {
	l := New[K, V](cmp)
	PutAll(l, m)
	return l
}

// FromSeq creates a pair list from a sequence of key-value pairs, e.g., the
// All() iterator of another container.
func FromSeq[K, V comparable](seq iter.Seq2[K, V], cmp func(a, b K) int) *List[K, V] {
	l := New[K, V](cmp)
	l.PutSeq(seq)
	return l
}

// FromSlices creates a pair list from two slices, pairing keys[i] with values[i].
// Both slices have to be non-nil and of equal length, otherwise
// ErrIllegalArguments is returned.
func FromSlices[K, V comparable](keys []K, values []V, cmp func(a, b K) int) (*List[K, V], error) {
	if keys == nil || values == nil || len(keys) != len(values) {
		err := fmt.Errorf("%w: the number of keys (%s) does not equal the number of values (%s)",
			ErrIllegalArguments, count(keys), count(values))
		T().Debugf("pairlist: %v", err)
		return nil, err
	}
	l := New[K, V](cmp)
	for i := range keys {
		l.addPair(keys[i], values[i])
	}
	return l, nil
}

func count[T any](s []T) string {
	if s == nil {
		return "nil"
	}
	return strconv.Itoa(len(s))
}

// Config returns a copy of the predicates of l.
func (l *List[K, V]) Config() Config[K, V] {
	return l.cfg
}

// Len returns the number of pairs.
func (l *List[K, V]) Len() int {
	if l == nil {
		return 0
	}
	return len(l.keys)
}

// IsEmpty reports whether the list holds no pairs.
func (l *List[K, V]) IsEmpty() bool {
	return l.Len() == 0
}

// Get returns the value paired with the first key equal to key.
// If duplicate keys exist, the one at the lowest index wins.
func (l *List[K, V]) Get(key K) (V, bool) {
	if i := l.IndexOf(key); i >= 0 {
		return l.values[i], true
	}
	var zero V
	return zero, false
}

// IndexOf returns the index of the first key equal to key, or -1.
func (l *List[K, V]) IndexOf(key K) int {
	if l == nil {
		return -1
	}
	for i, k := range l.keys {
		if l.cfg.KeyEqual(k, key) {
			return i
		}
	}
	return -1
}

// At is the same as GetKey.
func (l *List[K, V]) At(index int) (K, error) {
	return l.GetKey(index)
}

// GetKey returns the key at position index.
func (l *List[K, V]) GetKey(index int) (K, error) {
	if index < 0 || index >= l.Len() {
		var zero K
		return zero, fmt.Errorf("%w: %d", ErrIndexOutOfBounds, index)
	}
	return l.keys[index], nil
}

// GetValue returns the value at position index.
func (l *List[K, V]) GetValue(index int) (V, error) {
	if index < 0 || index >= l.Len() {
		var zero V
		return zero, fmt.Errorf("%w: %d", ErrIndexOutOfBounds, index)
	}
	return l.values[index], nil
}

// ContainsKey reports whether a key equal to key is present.
func (l *List[K, V]) ContainsKey(key K) bool {
	return l.IndexOf(key) >= 0
}

// ContainsValue reports whether a value equal to value is present.
func (l *List[K, V]) ContainsValue(value V) bool {
	if l == nil {
		return false
	}
	return l.ValueList().Contains(value)
}

// KeyList returns a read-only view of the keys. The view follows all later
// changes of the list.
func (l *List[K, V]) KeyList() View[K] {
	if l == nil {
		return View[K]{}
	}
	return View[K]{items: &l.keys, eq: l.cfg.KeyEqual}
}

// ValueList returns a read-only view of the values. The view follows all later
// changes of the list.
func (l *List[K, V]) ValueList() View[V] {
	if l == nil {
		return View[V]{}
	}
	return View[V]{items: &l.values, eq: l.cfg.ValueEqual}
}

// Values is the same as ValueList.
func (l *List[K, V]) Values() View[V] {
	return l.ValueList()
}

// String renders the pairs as [k1=v1, k2=v2, …], for debugging.
func (l *List[K, V]) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i := range l.Len() {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%v=%v", l.keys[i], l.values[i])
	}
	b.WriteByte(']')
	return b.String()
}
