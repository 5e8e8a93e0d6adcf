package segment

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"unicode/utf8"

	"golang.org/x/text/collate"
)

// Comparer adapts segment content equality, ordering and a length-capped
// hash into a reusable key comparer for hashed containers. It lets
// segments act as map keys without materializing substrings: bucket by
// Hash, then confirm candidates with Equals.
//
// Comparer is immutable; construct it once and share it freely.
type Comparer struct {
	cmp        Comparison
	maxHashLen int
}

// NewComparer creates a comparer hashing at most maxHashLen runes of a
// segment. maxHashLen must be at least 1.
func NewComparer(cmp Comparison, maxHashLen int) (Comparer, error) {
	if maxHashLen < 1 {
		return Comparer{}, ErrIllegalArguments
	}
	return Comparer{cmp: cmp, maxHashLen: maxHashLen}, nil
}

// Comparison returns the comparison mode this comparer operates under.
func (c Comparer) Comparison() Comparison {
	return c.cmp
}

// Compare orders the contents of two segments.
func (c Comparer) Compare(a, b Segment) int {
	return a.CompareTo(b, c.cmp)
}

// Equals reports content equality of two segments. Equality always
// considers the complete window, regardless of the hash cap.
func (c Comparer) Equals(a, b Segment) bool {
	return a.ContentEquals(b, c.cmp)
}

// Hash computes a 64-bit length-capped hash of the segment's span. Equal
// segments (under this comparer's comparison mode) hash equal, because
// hashing operates on the same canonical form equality does: raw bytes for
// ordinal, folded runes for ordinal-ignore-case, and the collation key for
// culture comparisons.
//
// For the ordinal modes the cap cuts the span after maxHashLen runes,
// identically for every segment fed to the same comparer. Culture modes key
// the complete span and apply the cap to the collation key instead:
// canonically equivalent spans may differ in rune count, so truncating the
// source text would break the hash contract for them.
func (c Comparer) Hash(seg Segment) uint64 {
	if !seg.valid {
		return 0
	}
	var h uint64 = fnvOffset
	switch c.cmp.kind {
	case compOrdinal:
		span := truncateRunes(seg.Span(), c.maxHashLen)
		for i := 0; i < len(span); i++ {
			h = (h ^ uint64(span[i])) * fnvPrime
		}
		h = (h ^ uint64(len(span))) * fnvPrime
	case compOrdinalIgnoreCase:
		span := truncateRunes(seg.Span(), c.maxHashLen)
		n := 0
		for _, r := range span {
			f := foldRune(r)
			var buf [utf8.UTFMax]byte
			w := utf8.EncodeRune(buf[:], f)
			for i := 0; i < w; i++ {
				h = (h ^ uint64(buf[i])) * fnvPrime
			}
			n++
		}
		h = (h ^ uint64(n)) * fnvPrime
	default:
		var buf collate.Buffer
		key := c.cmp.collationKey(&buf, seg.Span())
		if max := c.maxHashLen * collKeyBytesPerRune; len(key) > max {
			key = key[:max]
		}
		for i := 0; i < len(key); i++ {
			h = (h ^ uint64(key[i])) * fnvPrime
		}
		h = (h ^ uint64(len(key))) * fnvPrime
	}
	return h
}

// collKeyBytesPerRune scales the rune-count cap to collation key bytes.
const collKeyBytesPerRune = 4

// FNV-1a parameters.
const (
	fnvOffset uint64 = 14695981039346656037
	fnvPrime  uint64 = 1099511628211
)

// truncateRunes cuts span after at most max runes, never inside a rune.
func truncateRunes(span string, max int) string {
	n := 0
	for i := range span {
		if n == max {
			return span[:i]
		}
		n++
	}
	return span
}
