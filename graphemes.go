package segment

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"iter"

	"github.com/npillmayer/uax/grapheme"
)

// GraphemeCount returns the number of grapheme clusters (user-perceived
// characters) in seg, according to UAX#29.
func GraphemeCount(seg Segment) int {
	if !seg.valid || seg.length == 0 {
		return 0
	}
	return grapheme.StringFromString(seg.Span()).Len()
}

// SplitGraphemes returns an iterator over the grapheme clusters of seg, as
// segments over the backing string. Grapheme breaking follows UAX#29; an
// invalid or empty segment yields nothing.
func SplitGraphemes(seg Segment) iter.Seq[Segment] {
	return func(yield func(Segment) bool) {
		if !seg.valid || seg.length == 0 {
			return
		}
		gstr := grapheme.StringFromString(seg.Span())
		pos := 0
		for i := 0; i < gstr.Len(); i++ {
			w := len(gstr.Nth(i))
			g := Segment{src: seg.src, index: seg.index + pos, length: w, valid: true}
			pos += w
			if !yield(g) {
				return
			}
		}
	}
}
