package enums

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"github.com/npillmayer/segment"
)

// Table maps enumeration names to values of type T. Entries are bucketed by
// name length, so a lookup only ever scans names of the probe's length.
//
// A table is immutable after Build and safe for concurrent readers.
type Table[T any] struct {
	buckets map[int][]entry[T]
	size    int
}

type entry[T any] struct {
	name  string
	value T
}

// Build creates a lookup table from a name→value map. Duplicate names
// cannot occur (map input); an empty name is skipped.
func Build[T any](names map[string]T) *Table[T] {
	t := &Table[T]{buckets: make(map[int][]entry[T], len(names))}
	for name, value := range names {
		if len(name) == 0 {
			tracer().Errorf("enums.Build: skipping empty enumeration name")
			continue
		}
		t.buckets[len(name)] = append(t.buckets[len(name)], entry[T]{name: name, value: value})
		t.size++
	}
	return t
}

// Len returns the number of names in the table.
func (t *Table[T]) Len() int {
	if t == nil {
		return 0
	}
	return t.size
}

// Lookup finds the value registered under name. With ignoreCase the match
// within the length bucket is case-insensitive (simple Unicode folding).
// Buckets are keyed by byte length, so a probe whose folded form differs
// in byte length from the registered name will not match.
func (t *Table[T]) Lookup(name string, ignoreCase bool) (T, bool) {
	var zero T
	if t == nil || len(name) == 0 {
		return zero, false
	}
	bucket := t.buckets[len(name)]
	for _, e := range bucket {
		if e.name == name {
			return e.value, true
		}
	}
	if ignoreCase {
		for _, e := range bucket {
			if segment.OrdinalIgnoreCase.Equals(e.name, name) {
				return e.value, true
			}
		}
	}
	return zero, false
}

// LookupSegment finds the value registered under the text windowed by seg,
// without materializing a substring.
func (t *Table[T]) LookupSegment(seg segment.Segment, ignoreCase bool) (T, bool) {
	if !seg.IsValid() {
		var zero T
		return zero, false
	}
	return t.Lookup(seg.Span(), ignoreCase)
}
