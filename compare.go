package segment

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"sync"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Comparison selects a text-equality policy for segment contents. It is a
// closed set of variants: ordinal, ordinal-ignore-case, and collation-based
// comparison for a language tag (with and without case folding).
//
// Comparison values are immutable and safe to share across goroutines.
type Comparison struct {
	kind compKind
	tag  language.Tag
}

type compKind uint8

const (
	compOrdinal compKind = iota
	compOrdinalIgnoreCase
	compCulture
	compCultureIgnoreCase
)

// Ordinal compares byte-wise, the way Go string comparison does.
var Ordinal = Comparison{kind: compOrdinal}

// OrdinalIgnoreCase compares rune-wise after simple Unicode case folding.
var OrdinalIgnoreCase = Comparison{kind: compOrdinalIgnoreCase}

// Culture returns a comparison that delegates to the collation rules of the
// given language tag.
func Culture(tag language.Tag) Comparison {
	return Comparison{kind: compCulture, tag: tag}
}

// CultureIgnoreCase returns a case-insensitive collation comparison for the
// given language tag.
func CultureIgnoreCase(tag language.Tag) Comparison {
	return Comparison{kind: compCultureIgnoreCase, tag: tag}
}

// IgnoresCase reports whether the comparison folds case.
func (c Comparison) IgnoresCase() bool {
	return c.kind == compOrdinalIgnoreCase || c.kind == compCultureIgnoreCase
}

// Compare orders two spans under this comparison. It returns -1, 0 or +1.
func (c Comparison) Compare(a, b string) int {
	switch c.kind {
	case compOrdinal:
		return ordCompare(a, b)
	case compOrdinalIgnoreCase:
		return foldCompare(a, b)
	default:
		col := c.acquireCollator()
		defer c.releaseCollator(col)
		return col.CompareString(a, b)
	}
}

// Equals reports content equality of two spans under this comparison.
func (c Comparison) Equals(a, b string) bool {
	switch c.kind {
	case compOrdinal:
		return a == b
	case compOrdinalIgnoreCase:
		if len(a) != len(b) && utf8.RuneCountInString(a) != utf8.RuneCountInString(b) {
			return false
		}
		return foldCompare(a, b) == 0
	default:
		return c.Compare(a, b) == 0
	}
}

// foldRune maps a rune to its canonical case-folded form. It is used for
// every case-insensitive ordinal operation in this package (equality,
// ordering and hashing), so the three stay mutually consistent.
func foldRune(r rune) rune {
	return unicode.ToLower(unicode.ToUpper(r))
}

func ordCompare(a, b string) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

// foldCompare orders spans by their case-folded rune sequences.
func foldCompare(a, b string) int {
	for len(a) > 0 && len(b) > 0 {
		ra, wa := utf8.DecodeRuneInString(a)
		rb, wb := utf8.DecodeRuneInString(b)
		fa, fb := foldRune(ra), foldRune(rb)
		if fa != fb {
			if fa < fb {
				return -1
			}
			return 1
		}
		a, b = a[wa:], b[wb:]
	}
	switch {
	case len(a) > 0:
		return 1
	case len(b) > 0:
		return -1
	}
	return 0
}

// --- Collator caching ------------------------------------------------------

// Collators keep mutable scratch state and are not safe for concurrent use,
// so they are pooled per (tag, case-folding) pair.

type collKey struct {
	tag        string
	ignoreCase bool
}

var collPools sync.Map // collKey -> *sync.Pool

func (c Comparison) acquireCollator() *collate.Collator {
	key := collKey{tag: c.tag.String(), ignoreCase: c.kind == compCultureIgnoreCase}
	p, ok := collPools.Load(key)
	if !ok {
		tag := c.tag
		ignoreCase := key.ignoreCase
		pool := &sync.Pool{New: func() interface{} {
			if ignoreCase {
				return collate.New(tag, collate.IgnoreCase)
			}
			return collate.New(tag)
		}}
		p, _ = collPools.LoadOrStore(key, pool)
	}
	return p.(*sync.Pool).Get().(*collate.Collator)
}

func (c Comparison) releaseCollator(col *collate.Collator) {
	key := collKey{tag: c.tag.String(), ignoreCase: c.kind == compCultureIgnoreCase}
	if p, ok := collPools.Load(key); ok {
		p.(*sync.Pool).Put(col)
	}
}

// collationKey returns the collation sort key for s under a culture
// comparison. It must not be called for ordinal comparisons.
func (c Comparison) collationKey(buf *collate.Buffer, s string) []byte {
	col := c.acquireCollator()
	defer c.releaseCollator(col)
	return col.KeyFromString(buf, s)
}

// --- Segment-level comparison ----------------------------------------------

// CompareTo orders the contents of two segments under cmp. The invalid
// segment sorts before every valid segment and compares equal to itself.
func (seg Segment) CompareTo(other Segment, cmp Comparison) int {
	switch {
	case !seg.valid && !other.valid:
		return 0
	case !seg.valid:
		return -1
	case !other.valid:
		return 1
	}
	return cmp.Compare(seg.Span(), other.Span())
}

// ContentEquals reports whether two segments window equal text under cmp.
// This is distinct from == on Segment, which is identity equality over
// (backing string, index, length).
func (seg Segment) ContentEquals(other Segment, cmp Comparison) bool {
	if !seg.valid || !other.valid {
		return seg.valid == other.valid
	}
	return cmp.Equals(seg.Span(), other.Span())
}

// TrimmedEquals reports whether the whitespace-trimmed contents of two
// segments are equal under cmp. An invalid operand compares equal only to
// an invalid operand, trimmed or not.
func (seg Segment) TrimmedEquals(other Segment, cmp Comparison) bool {
	if !seg.valid || !other.valid {
		return seg.valid == other.valid
	}
	return cmp.Equals(seg.Trim().Span(), other.Trim().Span())
}
