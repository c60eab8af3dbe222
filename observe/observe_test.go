package observe

import (
	"cmp"
	"context"
	"testing"
	"time"

	"github.com/npillmayer/pairlist"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func receive[K, V any](t *testing.T, ch <-chan Change[K, V], n int) []Change[K, V] {
	t.Helper()
	var changes []Change[K, V]
	timeout := time.After(2 * time.Second)
	for len(changes) < n {
		select {
		case c, ok := <-ch:
			if !ok {
				t.Fatalf("channel closed after %d of %d changes", len(changes), n)
			}
			changes = append(changes, c)
		case <-timeout:
			t.Fatalf("timeout after %d of %d changes", len(changes), n)
		}
	}
	return changes
}

func TestChangesAreBroadcast(t *testing.T) {
	gtrace.CoreTracer = gologadapter.New()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	o, err := Wrap(ctx, pairlist.New[int, string](cmp.Compare[int]))
	require.NoError(t, err)
	defer o.Close()
	events, err := o.Subscribe(ctx, 16)
	require.NoError(t, err)
	//
	assert.Equal(t, 0, o.Add(5, "x"))
	assert.Equal(t, 0, o.Add(1, "a"))
	prev, ok := o.Put(5, "y")
	assert.True(t, ok)
	assert.Equal(t, "x", prev)
	_, ok = o.Put(7, "z")
	assert.False(t, ok)
	v, ok := o.Remove(1)
	assert.True(t, ok)
	assert.Equal(t, "a", v)
	_, ok = o.Remove(42)
	assert.False(t, ok)
	require.NoError(t, o.RemoveIndex(1))
	assert.ErrorIs(t, o.RemoveIndex(3), pairlist.ErrIndexOutOfBounds)
	assert.Equal(t, "[5=y]", o.List().String())
	o.Clear()
	assert.True(t, o.List().IsEmpty())
	//
	changes := receive(t, events, 6)
	assert.Equal(t, []Change[int, string]{
		{Op: Added, Index: 0, Key: 5, Value: "x"},
		{Op: Added, Index: 0, Key: 1, Value: "a"},
		{Op: Replaced, Index: 1, Key: 5, Value: "y"},
		{Op: Added, Index: 2, Key: 7, Value: "z"},
		{Op: Removed, Index: 0, Key: 1, Value: "a"},
		{Op: Removed, Index: 1, Key: 7, Value: "z"},
	}, changes)
	last := receive(t, events, 1)
	assert.Equal(t, Cleared, last[0].Op)
	assert.Equal(t, -1, last[0].Index)
}

func TestCloseEndsSubscriptions(t *testing.T) {
	gtrace.CoreTracer = gologadapter.New()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	ctx := context.Background()
	o, err := Wrap(ctx, pairlist.New[string, int](cmp.Compare[string]))
	require.NoError(t, err)
	events, err := o.Subscribe(ctx, 1)
	require.NoError(t, err)
	o.Close()
	select {
	case _, ok := <-events:
		assert.False(t, ok, "no changes expected after close")
	case <-time.After(2 * time.Second):
		t.Fatal("subscription not closed")
	}
	_, err = o.Subscribe(ctx, 1)
	assert.ErrorIs(t, err, ErrClosed)
	o.Add("a", 1) // must not block
	assert.Equal(t, 1, o.List().Len())
}

func TestCancelledSubscriptionDoesNotBlock(t *testing.T) {
	gtrace.CoreTracer = gologadapter.New()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	o, err := Wrap(context.Background(), pairlist.New[int, int](cmp.Compare[int]))
	require.NoError(t, err)
	ctx, cancel := context.WithCancel(context.Background())
	_, err = o.Subscribe(ctx, 1) // never read
	require.NoError(t, err)
	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := range 4 {
			o.Add(i, i)
		}
		cancel()
		for i := range 3 {
			o.Add(10+i, i)
		}
		o.Close()
	}()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("mutations blocked after the subscriber cancelled")
	}
	assert.Equal(t, 7, o.List().Len())
	_, err = o.Subscribe(context.Background(), 1)
	assert.ErrorIs(t, err, ErrClosed)
}

func TestWrapNil(t *testing.T) {
	_, err := Wrap[int, int](context.Background(), nil)
	assert.ErrorIs(t, err, pairlist.ErrIllegalArguments)
	assert.Equal(t, "Removed", Removed.String())
	assert.Equal(t, "Op(9)", Op(9).String())
}
