package pairlist

import "fmt"

// Check validates the structural invariants of a list: keys and values are of
// equal length and keys are sorted non-decreasing.
//
// Operations of this package maintain the invariants, with the exception of
// Put replacing a key by one that sorts differently. Check is mainly useful
// in tests.
func (l *List[K, V]) Check() error {
	if l == nil {
		return fmt.Errorf("%w: nil list", ErrInvariantViolated)
	}
	if l.cfg.Compare == nil {
		return fmt.Errorf("%w: list has no comparator", ErrInvariantViolated)
	}
	if len(l.keys) != len(l.values) {
		return fmt.Errorf("%w: %d keys, but %d values",
			ErrInvariantViolated, len(l.keys), len(l.values))
	}
	for i := 1; i < len(l.keys); i++ {
		if l.cfg.Compare(l.keys[i-1], l.keys[i]) > 0 {
			return fmt.Errorf("%w: keys %v at %d and %v at %d are out of order",
				ErrInvariantViolated, l.keys[i-1], i-1, l.keys[i], i)
		}
	}
	return nil
}
