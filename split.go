package segment

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"iter"
	"regexp"
	"strings"
	"unicode/utf8"
)

// SplitOptions modify which segments a split cursor yields.
type SplitOptions uint8

const (
	// RemoveEmpty suppresses zero-length output segments. It does not
	// change delimiter positions, only output.
	RemoveEmpty SplitOptions = 1 << iota

	// TrimEntries strips leading and trailing whitespace from every yielded
	// segment. A segment which becomes empty by trimming is dropped when
	// RemoveEmpty is also set.
	TrimEntries
)

// delimiter is the closed variant of split delimiters: a single rune, a
// fixed substring, or a regular expression.
type delimiter struct {
	kind delimKind
	r    rune
	seq  string
	re   *regexp.Regexp
	cmp  Comparison
}

type delimKind uint8

const (
	delimRune delimKind = iota
	delimSeq
	delimPattern
)

// find locates the next delimiter occurrence in span at or after from. It
// returns the occurrence as a byte interval [start, end).
func (d delimiter) find(span string, from int) (start, end int, ok bool) {
	rest := span[from:]
	switch d.kind {
	case delimRune:
		if d.cmp.kind == compOrdinal {
			i := strings.IndexRune(rest, d.r)
			if i < 0 {
				return 0, 0, false
			}
			return from + i, from + i + utf8.RuneLen(d.r), true
		}
		i, n := indexIn(rest, string(d.r), d.cmp)
		if i < 0 {
			return 0, 0, false
		}
		return from + i, from + i + n, true
	case delimSeq:
		i, n := indexIn(rest, d.seq, d.cmp)
		if i < 0 {
			return 0, 0, false
		}
		return from + i, from + i + n, true
	default:
		loc := d.re.FindStringIndex(rest)
		if loc == nil {
			return 0, 0, false
		}
		return from + loc[0], from + loc[1], true
	}
}

// Cursor is resumable split-iteration state. It is a value type: copying a
// cursor and advancing both copies independently is legal and neither copy
// affects the other. A single cursor must not be shared between concurrent
// consumers.
type Cursor struct {
	src   Segment
	delim delimiter
	opts  SplitOptions
	pos   int
	done  bool
}

// SplitRune creates a cursor splitting seg at every occurrence of r under
// cmp.
func SplitRune(seg Segment, r rune, cmp Comparison, opts SplitOptions) (Cursor, error) {
	if !seg.valid {
		return Cursor{}, ErrInvalidSegment
	}
	if !utf8.ValidRune(r) {
		return Cursor{}, ErrIllegalArguments
	}
	return Cursor{
		src:   seg,
		delim: delimiter{kind: delimRune, r: r, cmp: cmp},
		opts:  opts,
	}, nil
}

// Split creates a cursor splitting seg at every occurrence of the substring
// delim under cmp. An empty delimiter has no well-defined split semantics
// and is rejected with ErrIllegalDelimiter.
func Split(seg Segment, delim string, cmp Comparison, opts SplitOptions) (Cursor, error) {
	if !seg.valid {
		return Cursor{}, ErrInvalidSegment
	}
	if len(delim) == 0 {
		tracer().Errorf("sequence split: empty delimiter")
		return Cursor{}, ErrIllegalDelimiter
	}
	return Cursor{
		src:   seg,
		delim: delimiter{kind: delimSeq, seq: delim, cmp: cmp},
		opts:  opts,
	}, nil
}

// SplitPattern creates a cursor splitting seg at every match of re. A
// pattern matching the empty string is rejected with
// ErrIllegalDelimiterPattern, since it would produce zero-width delimiters.
func SplitPattern(seg Segment, re *regexp.Regexp, opts SplitOptions) (Cursor, error) {
	if !seg.valid {
		return Cursor{}, ErrInvalidSegment
	}
	if re == nil {
		return Cursor{}, ErrIllegalArguments
	}
	if re.MatchString("") {
		tracer().Errorf("split pattern /%s/ matches empty string", re)
		return Cursor{}, ErrIllegalDelimiterPattern
	}
	return Cursor{
		src:   seg,
		delim: delimiter{kind: delimPattern, re: re},
		opts:  opts,
	}, nil
}

// Next yields the next segment of the split, advancing the cursor. The
// second return value is false when the cursor has consumed the whole
// source.
//
// Scanning is left to right: each delimiter occurrence terminates the
// segment before it, and the remainder after the last occurrence is the
// final segment. A trailing delimiter therefore produces one empty final
// entry, and an empty source produces exactly one empty segment (both
// subject to RemoveEmpty).
func (c *Cursor) Next() (Segment, bool) {
	span := c.src.Span()
	for !c.done {
		start, end, ok := c.delim.find(span, c.pos)
		var out Segment
		if !ok {
			out = Segment{src: c.src.src, index: c.src.index + c.pos, length: len(span) - c.pos, valid: true}
			c.pos = len(span)
			c.done = true
		} else {
			out = Segment{src: c.src.src, index: c.src.index + c.pos, length: start - c.pos, valid: true}
			c.pos = end
		}
		if c.opts&TrimEntries != 0 {
			out = out.Trim()
		}
		if c.opts&RemoveEmpty != 0 && out.IsEmpty() {
			continue
		}
		return out, true
	}
	return Segment{}, false
}

// All returns an iterator over the remaining segments of the split. The
// cursor itself is not advanced; every call to All, and every range over
// its result, iterates an independent copy.
func (c Cursor) All() iter.Seq[Segment] {
	return func(yield func(Segment) bool) {
		cur := c
		for {
			seg, ok := cur.Next()
			if !ok {
				return
			}
			if !yield(seg) {
				return
			}
		}
	}
}

// Collect advances a copy of the cursor to exhaustion and returns all
// yielded segments.
func (c Cursor) Collect() []Segment {
	segs := make([]Segment, 0, 8)
	for seg := range c.All() {
		segs = append(segs, seg)
	}
	return segs
}
