package segment

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"iter"
	"unicode"
	"unicode/utf8"
)

// SplitWords returns an iterator over the whitespace-delimited words of
// seg, as segments over the backing string. Runs of whitespace between
// words are skipped; no empty segments are produced. An invalid segment
// yields nothing.
func SplitWords(seg Segment) iter.Seq[Segment] {
	return func(yield func(Segment) bool) {
		if !seg.valid {
			return
		}
		span := seg.Span()
		for pos := 0; pos < len(span); {
			r, width := utf8.DecodeRuneInString(span[pos:])
			if unicode.IsSpace(r) {
				pos += width
				continue
			}
			start := pos
			pos += width
			for pos < len(span) {
				r, width = utf8.DecodeRuneInString(span[pos:])
				if unicode.IsSpace(r) {
					break
				}
				pos += width
			}
			word := Segment{src: seg.src, index: seg.index + start, length: pos - start, valid: true}
			if !yield(word) {
				return
			}
		}
	}
}

// WordCount returns the number of whitespace-delimited words in seg.
func WordCount(seg Segment) int {
	cnt := 0
	for range SplitWords(seg) {
		cnt++
	}
	return cnt
}
