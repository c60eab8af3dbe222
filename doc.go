/*
Package pairlist offers a sorted associative container which permits duplicate
keys and duplicate values.

# Pair Lists

Go maps (and most tree-based maps) forbid duplicate keys. A pair list keeps
all of its key-value pairs in one ordered sequence instead, sorted by an
injected key comparator. It combines map-like lookup

	l := pairlist.New[int, string](cmp.Compare[int])
	l.Add(5, "x")
	l.Add(5, "y")
	v, ok := l.Get(5)     // "x", true

with list-like positional access

	k, err := l.GetKey(1) // 5, nil
	v, err = l.GetValue(1) // "y", nil

Ordering and equality are kept apart deliberately. The comparator decides
where a pair is placed. Lookups (Get, ContainsKey, Put, Remove, IndexOf) use
an equality predicate, which is Go's == for lists created by New. Clients with
key types where the two disagree will observe that disagreement: two keys may
sort as equal yet be distinct for lookup, and vice versa.

Insertion of a key which compares equal to keys already present places the new
pair after the last of these keys. Runs of equal keys therefore preserve their
order of insertion.

Storage is contiguous. Locating an insertion point takes O(log n), moving the
pairs to make room takes O(n), as does every lookup by key.

	Operation        |  Cost
	-----------------+---------
	Add / Put        |  O(n)
	Get / Remove     |  O(n)
	GetKey/GetValue  |  O(1)
	Iterate          |  O(n)

A pair list is not safe for concurrent use. Clients have to serialize access
from several goroutines, e.g. with a mutex around every operation.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice, this
list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright notice,
this list of conditions and the following disclaimer in the documentation
and/or other materials provided with the distribution.

3. Neither the name of the copyright holder nor the names of its
contributors may be used to endorse or promote products derived from
this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE
FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY,
OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.

*/
package pairlist

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

// PairListError is an error type for the pairlist module
type PairListError string

func (e PairListError) Error() string {
	return string(e)
}

// ErrIndexOutOfBounds is flagged whenever a position is outside of [0, Len()).
const ErrIndexOutOfBounds = PairListError("index out of bounds")

// ErrIllegalArguments is flagged whenever function parameters are invalid.
const ErrIllegalArguments = PairListError("illegal arguments")

// ErrInvariantViolated is flagged by Check if the sort order or the alignment
// of keys and values is broken.
const ErrInvariantViolated = PairListError("pair list invariant violated")

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
