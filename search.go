package segment

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"strings"
	"unicode/utf8"
)

// --- Index primitives ------------------------------------------------------

// IndexOf returns the byte offset within seg of the first occurrence of
// pattern under cmp, or -1 if pattern does not occur. An empty pattern
// never occurs.
func IndexOf(seg Segment, pattern string, cmp Comparison) int {
	start, _ := indexIn(seg.Span(), pattern, cmp)
	return start
}

// LastIndexOf returns the byte offset within seg of the last occurrence of
// pattern under cmp, or -1 if pattern does not occur.
func LastIndexOf(seg Segment, pattern string, cmp Comparison) int {
	start, _ := lastIndexIn(seg.Span(), pattern, cmp)
	return start
}

// IndexOfRune returns the byte offset within seg of the first occurrence of
// r under cmp, or -1.
func IndexOfRune(seg Segment, r rune, cmp Comparison) int {
	if cmp.kind == compOrdinal {
		return strings.IndexRune(seg.Span(), r)
	}
	start, _ := indexIn(seg.Span(), string(r), cmp)
	return start
}

// LastIndexOfRune returns the byte offset within seg of the last occurrence
// of r under cmp, or -1.
func LastIndexOfRune(seg Segment, r rune, cmp Comparison) int {
	if cmp.kind == compOrdinal {
		return strings.LastIndex(seg.Span(), string(r))
	}
	start, _ := lastIndexIn(seg.Span(), string(r), cmp)
	return start
}

// indexIn finds the first occurrence of pattern in span under cmp. It
// returns the byte offset of the match and the number of source bytes the
// match covers, or (-1, 0). Under case folding or collation the covered
// byte count may differ from len(pattern).
func indexIn(span, pattern string, cmp Comparison) (start, matchLen int) {
	if len(pattern) == 0 || len(span) == 0 {
		return -1, 0
	}
	if cmp.kind == compOrdinal {
		if i := strings.Index(span, pattern); i >= 0 {
			return i, len(pattern)
		}
		return -1, 0
	}
	for i := 0; i < len(span); {
		if n, ok := cmp.matchPrefix(span[i:], pattern); ok {
			return i, n
		}
		_, w := utf8.DecodeRuneInString(span[i:])
		i += w
	}
	return -1, 0
}

// lastIndexIn finds the last occurrence of pattern in span under cmp.
func lastIndexIn(span, pattern string, cmp Comparison) (start, matchLen int) {
	if len(pattern) == 0 || len(span) == 0 {
		return -1, 0
	}
	if cmp.kind == compOrdinal {
		if i := strings.LastIndex(span, pattern); i >= 0 {
			return i, len(pattern)
		}
		return -1, 0
	}
	start, matchLen = -1, 0
	for i := 0; i < len(span); {
		if n, ok := cmp.matchPrefix(span[i:], pattern); ok {
			start, matchLen = i, n
		}
		_, w := utf8.DecodeRuneInString(span[i:])
		i += w
	}
	return start, matchLen
}

// matchPrefix reports whether s starts with pattern under this comparison
// and, if so, how many bytes of s the match covers.
func (c Comparison) matchPrefix(s, pattern string) (int, bool) {
	switch c.kind {
	case compOrdinal:
		if strings.HasPrefix(s, pattern) {
			return len(pattern), true
		}
		return 0, false
	case compOrdinalIgnoreCase:
		rest := s
		for len(pattern) > 0 {
			if len(rest) == 0 {
				return 0, false
			}
			rp, wp := utf8.DecodeRuneInString(pattern)
			rs, ws := utf8.DecodeRuneInString(rest)
			if foldRune(rp) != foldRune(rs) {
				return 0, false
			}
			pattern = pattern[wp:]
			rest = rest[ws:]
		}
		return len(s) - len(rest), true
	default:
		// Collation match over a window with the pattern's rune count.
		k := utf8.RuneCountInString(pattern)
		n := 0
		rest := s
		for ; k > 0; k-- {
			if len(rest) == 0 {
				return 0, false
			}
			_, w := utf8.DecodeRuneInString(rest)
			rest = rest[w:]
			n += w
		}
		if c.Equals(s[:n], pattern) {
			return n, true
		}
		return 0, false
	}
}

// --- Search / Capture ------------------------------------------------------

// Search is a stateless descriptor for locating occurrences of a pattern
// within a segment. The zero value searches nothing.
type Search struct {
	Source      Segment
	Pattern     string
	Cmp         Comparison
	RightToLeft bool
}

// Find creates a forward search descriptor.
func Find(source Segment, pattern string, cmp Comparison) Search {
	return Search{Source: source, Pattern: pattern, Cmp: cmp}
}

// FindLast creates a right-to-left search descriptor.
func FindLast(source Segment, pattern string, cmp Comparison) Search {
	return Search{Source: source, Pattern: pattern, Cmp: cmp, RightToLeft: true}
}

// First performs one search step from the start (or, right-to-left, the
// end) of the source and returns the resulting capture. An empty pattern
// or an empty source yields a no-match capture.
func (s Search) First() Capture {
	if !s.Source.valid || len(s.Pattern) == 0 || s.Source.length == 0 {
		return Capture{search: s}
	}
	span := s.Source.Span()
	var start, n int
	if s.RightToLeft {
		start, n = lastIndexIn(span, s.Pattern, s.Cmp)
	} else {
		start, n = indexIn(span, s.Pattern, s.Cmp)
	}
	if start < 0 {
		return Capture{search: s}
	}
	return Capture{
		search: s,
		sub:    Subsegment{seg: s.Source, offset: start, length: n},
		found:  true,
	}
}

// Last returns the match a scan in the opposite direction would find first:
// for a forward search this is the right-most occurrence, for a
// right-to-left search the left-most.
func (s Search) Last() Capture {
	flipped := s
	flipped.RightToLeft = !s.RightToLeft
	c := flipped.First()
	c.search = s
	return c
}

// Capture is the outcome of one search step. It carries the search it came
// from, so the next occurrence can be located with Next.
type Capture struct {
	search Search
	sub    Subsegment
	found  bool
}

// Exists reports whether the capture holds a match.
func (c Capture) Exists() bool {
	return c.found
}

// Subsegment returns the matched window relative to the search source. For
// a no-match capture it returns the invalid subsegment.
func (c Capture) Subsegment() Subsegment {
	if !c.found {
		return Subsegment{}
	}
	return c.sub
}

// Segment materializes the matched window as an absolute segment. For a
// no-match capture it returns the invalid segment.
func (c Capture) Segment() Segment {
	if !c.found {
		return Segment{}
	}
	return c.sub.Segment()
}

// Or returns the matched window, or def if the capture holds no match.
func (c Capture) Or(def Segment) Segment {
	if !c.found {
		return def
	}
	return c.sub.Segment()
}

// Next advances the search past the current match: forward searches resume
// immediately after the match's end, right-to-left searches within the
// portion before the match's start. A no-match capture stays no-match.
func (c Capture) Next() Capture {
	if !c.found {
		return Capture{search: c.search}
	}
	s := c.search
	span := s.Source.Span()
	if s.RightToLeft {
		start, n := lastIndexIn(span[:c.sub.offset], s.Pattern, s.Cmp)
		if start < 0 {
			return Capture{search: s}
		}
		return Capture{
			search: s,
			sub:    Subsegment{seg: s.Source, offset: start, length: n},
			found:  true,
		}
	}
	from := c.sub.offset + c.sub.length
	start, n := indexIn(span[from:], s.Pattern, s.Cmp)
	if start < 0 {
		return Capture{search: s}
	}
	return Capture{
		search: s,
		sub:    Subsegment{seg: s.Source, offset: from + start, length: n},
		found:  true,
	}
}
