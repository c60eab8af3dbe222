/*
Package observe lets clients follow the changes of a pair list.

An Observed wraps a pairlist.List and broadcasts a Change for every mutation
done through it. Subscribers receive changes on a channel, in the order the
mutations happened.

The pair list itself stays a single-threaded container. Only the delivery of
changes is asynchronous. Publishing blocks while a subscriber's buffer is
full, so subscribers have to keep reading or cancel their subscription.
Changes pending for a cancelled subscription are discarded.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package observe

import (
	"context"
	"fmt"

	"github.com/guiguan/caster"
	"github.com/npillmayer/pairlist"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'pairlist'
func tracer() tracing.Trace {
	return tracing.Select("pairlist")
}

// ErrClosed is flagged when subscribing to a closed Observed.
const ErrClosed = pairlist.PairListError("observed pair list is closed")

// Op is the kind of a change.
type Op int

const (
	Added Op = iota
	Replaced
	Removed
	Cleared
)

func (op Op) String() string {
	switch op {
	case Added:
		return "Added"
	case Replaced:
		return "Replaced"
	case Removed:
		return "Removed"
	case Cleared:
		return "Cleared"
	}
	return fmt.Sprintf("Op(%d)", int(op))
}

// Change describes a single mutation. Index is the position of the pair
// after Added or Replaced, and before Removed. For Cleared, Index is -1 and
// Key and Value are zero.
type Change[K, V any] struct {
	Op    Op
	Index int
	Key   K
	Value V
}

// Observed is a pair list which broadcasts its changes.
type Observed[K, V any] struct {
	list *pairlist.List[K, V]
	cast *caster.Caster // broadcaster for changes
}

// Wrap creates an Observed for l. Cancelling ctx closes the broadcaster.
// Changes done to l directly, bypassing the Observed, are not broadcast.
func Wrap[K, V any](ctx context.Context, l *pairlist.List[K, V]) (*Observed[K, V], error) {
	if l == nil {
		return nil, fmt.Errorf("%w: nil list", pairlist.ErrIllegalArguments)
	}
	return &Observed[K, V]{
		list: l,
		cast: caster.New(ctx),
	}, nil
}

// List returns the wrapped pair list, for queries.
func (o *Observed[K, V]) List() *pairlist.List[K, V] {
	return o.list
}

// Subscribe returns a channel which receives all changes from now on.
// capacity is the size of the subscriber's buffer. The channel is closed when
// ctx is done or the Observed is closed. Subscribing to a closed Observed
// fails with ErrClosed.
func (o *Observed[K, V]) Subscribe(ctx context.Context, capacity uint) (<-chan Change[K, V], error) {
	select {
	case <-o.cast.Done():
		return nil, ErrClosed
	default:
	}
	sub, _ := o.cast.Sub(ctx, capacity)
	ch := make(chan Change[K, V], capacity)
	go func() {
		defer close(ch)
		for m := range sub {
			select {
			case ch <- m.(Change[K, V]):
			case <-ctx.Done():
				// the broadcaster may be blocked sending to sub; it closes sub
				// with its next publication or when closed
				go drain(sub)
				return
			}
		}
	}()
	return ch, nil
}

func drain(sub <-chan interface{}) {
	for range sub {
	}
}

// Close stops broadcasting and closes all subscriber channels. Close returns
// after the broadcaster has shut down.
func (o *Observed[K, V]) Close() {
	o.cast.Close()
	<-o.cast.Done()
}

// Add inserts a pair, see pairlist.List.Add.
func (o *Observed[K, V]) Add(key K, value V) int {
	i := o.list.Add(key, value)
	o.publish(Change[K, V]{Op: Added, Index: i, Key: key, Value: value})
	return i
}

// Put replaces or inserts a pair, see pairlist.List.Put.
func (o *Observed[K, V]) Put(key K, value V) (V, bool) {
	prev, replaced := o.list.Put(key, value)
	change := Change[K, V]{Op: Added, Index: o.list.IndexOf(key), Key: key, Value: value}
	if replaced {
		change.Op = Replaced
	}
	o.publish(change)
	return prev, replaced
}

// Remove deletes the first pair with a key equal to key, see pairlist.List.Remove.
func (o *Observed[K, V]) Remove(key K) (V, bool) {
	i := o.list.IndexOf(key)
	if i < 0 {
		var zero V
		return zero, false
	}
	return o.removeAt(i), true
}

// RemoveIndex deletes the pair at position index, see pairlist.List.RemoveIndex.
func (o *Observed[K, V]) RemoveIndex(index int) error {
	if index < 0 || index >= o.list.Len() {
		return fmt.Errorf("%w: %d", pairlist.ErrIndexOutOfBounds, index)
	}
	o.removeAt(index)
	return nil
}

func (o *Observed[K, V]) removeAt(index int) V {
	key, _ := o.list.GetKey(index)
	value, _ := o.list.GetValue(index)
	err := o.list.RemoveIndex(index)
	assertNoError(err)
	o.publish(Change[K, V]{Op: Removed, Index: index, Key: key, Value: value})
	return value
}

// Clear removes all pairs, see pairlist.List.Clear.
func (o *Observed[K, V]) Clear() {
	o.list.Clear()
	o.publish(Change[K, V]{Op: Cleared, Index: -1})
}

func (o *Observed[K, V]) publish(change Change[K, V]) {
	if !o.cast.Pub(change) {
		tracer().Debugf("observe: %v at %d not published, broadcaster closed", change.Op, change.Index)
	}
}

func assertNoError(err error) {
	if err != nil {
		panic(err)
	}
}
