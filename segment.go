package segment

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Segment is an immutable, non-owning window into a backing string.
//
// A segment created by
//
//	Segment{}
//
// is the invalid segment: it has no backing string and IsValid reports
// false. A valid segment may still be empty; validity and emptiness are
// distinct properties.
//
// Methods that take or return positions use byte offsets into the backing
// string. Segments never mutate the backing string, and deriving a new
// window never copies text.
//
// Segment equality with == is identity equality: same backing string, same
// start index, same length. Content equality under a comparison mode is
// provided by Comparison and Comparer.
type Segment struct {
	src    string
	index  int
	length int
	valid  bool
}

// FromString creates a segment covering all of s.
func FromString(s string) Segment {
	return Segment{src: s, length: len(s), valid: true}
}

// WindowFrom creates a segment covering s from byte offset start to the end
// of s. It returns ErrIndexOutOfBounds if start is negative or greater than
// len(s).
func WindowFrom(s string, start int) (Segment, error) {
	if start < 0 || start > len(s) {
		return Segment{}, ErrIndexOutOfBounds
	}
	return Segment{src: s, index: start, length: len(s) - start, valid: true}, nil
}

// Window creates a segment covering the byte range [start, start+length)
// of s. It returns ErrIndexOutOfBounds if the range does not fit into s.
func Window(s string, start, length int) (Segment, error) {
	if start < 0 || length < 0 || start+length > len(s) {
		return Segment{}, ErrIndexOutOfBounds
	}
	return Segment{src: s, index: start, length: length, valid: true}, nil
}

// IsValid reports whether the segment has a backing string. The zero value
// is invalid; a valid segment of length 0 is not.
func (seg Segment) IsValid() bool {
	return seg.valid
}

// IsEmpty reports whether the segment window has no bytes.
func (seg Segment) IsEmpty() bool {
	return seg.length == 0
}

// Len returns the window size in bytes.
func (seg Segment) Len() int {
	return seg.length
}

// Index returns the window start as a byte offset into the backing string.
func (seg Segment) Index() int {
	return seg.index
}

// End returns the byte offset just past the window.
func (seg Segment) End() int {
	return seg.index + seg.length
}

// Source returns the complete backing string.
func (seg Segment) Source() string {
	return seg.src
}

// Span returns a zero-copy view of exactly the windowed bytes. For an
// invalid segment Span returns the empty string.
//
// The returned string shares the backing string's memory; it is a Go
// string slice, not a copy.
func (seg Segment) Span() string {
	if !seg.valid {
		return ""
	}
	return seg.src[seg.index : seg.index+seg.length]
}

// String returns the windowed text (it equals Span). Segment implements
// fmt.Stringer.
func (seg Segment) String() string {
	return seg.Span()
}

// Clone returns a copy of the windowed text that is detached from the
// backing string. This is the only operation on Segment which allocates
// character data; use it when a short window must not pin a large backing
// string in memory.
func (seg Segment) Clone() string {
	return strings.Clone(seg.Span())
}

// Byte returns the byte at offset i within the window.
func (seg Segment) Byte(i int) (byte, error) {
	if !seg.valid {
		return 0, ErrInvalidSegment
	}
	if i < 0 || i >= seg.length {
		return 0, ErrIndexOutOfBounds
	}
	return seg.src[seg.index+i], nil
}

// Preceding returns the window of the backing string before this segment.
// With includeSelf the returned window extends up to the segment's end
// instead of its start.
func (seg Segment) Preceding(includeSelf bool) Segment {
	if !seg.valid {
		return Segment{}
	}
	end := seg.index
	if includeSelf {
		end = seg.index + seg.length
	}
	return Segment{src: seg.src, index: 0, length: end, valid: true}
}

// PrecedingMax is like Preceding, but returns at most max bytes, clamping
// at the start of the backing string. A negative max is an error.
func (seg Segment) PrecedingMax(max int, includeSelf bool) (Segment, error) {
	if max < 0 {
		return Segment{}, ErrIllegalArguments
	}
	if !seg.valid {
		return Segment{}, ErrInvalidSegment
	}
	p := seg.Preceding(includeSelf)
	if p.length > max {
		p.index = p.length - max
		p.length = max
	}
	return p, nil
}

// Following returns the window of the backing string after this segment.
// With includeSelf the returned window starts at the segment's start
// instead of its end.
func (seg Segment) Following(includeSelf bool) Segment {
	if !seg.valid {
		return Segment{}
	}
	start := seg.index + seg.length
	if includeSelf {
		start = seg.index
	}
	return Segment{src: seg.src, index: start, length: len(seg.src) - start, valid: true}
}

// FollowingMax is like Following, but returns at most max bytes, clamping
// at the end of the backing string. A negative max is an error.
func (seg Segment) FollowingMax(max int, includeSelf bool) (Segment, error) {
	if max < 0 {
		return Segment{}, ErrIllegalArguments
	}
	if !seg.valid {
		return Segment{}, ErrInvalidSegment
	}
	f := seg.Following(includeSelf)
	if f.length > max {
		f.length = max
	}
	return f, nil
}

// OffsetIndex shifts the window start by delta bytes, keeping the length.
// The shifted window must stay within the backing string.
func (seg Segment) OffsetIndex(delta int) (Segment, error) {
	if !seg.valid {
		return Segment{}, ErrInvalidSegment
	}
	index := seg.index + delta
	if index < 0 || index+seg.length > len(seg.src) {
		return Segment{}, ErrIndexOutOfBounds
	}
	return Segment{src: seg.src, index: index, length: seg.length, valid: true}, nil
}

// OffsetLength resizes the window by delta bytes, keeping the start. The
// resized window must stay within the backing string and may not become
// negative.
func (seg Segment) OffsetLength(delta int) (Segment, error) {
	if !seg.valid {
		return Segment{}, ErrInvalidSegment
	}
	length := seg.length + delta
	if length < 0 || seg.index+length > len(seg.src) {
		return Segment{}, ErrIndexOutOfBounds
	}
	return Segment{src: seg.src, index: seg.index, length: length, valid: true}, nil
}

// Slice returns the sub-window [offset, offset+length) relative to this
// segment. The sub-window must lie entirely within the segment.
func (seg Segment) Slice(offset, length int) (Segment, error) {
	if !seg.valid {
		return Segment{}, ErrInvalidSegment
	}
	if offset < 0 || length < 0 || offset+length > seg.length {
		return Segment{}, ErrIndexOutOfBounds
	}
	return Segment{src: seg.src, index: seg.index + offset, length: length, valid: true}, nil
}

// SliceBeyond is like Slice, but the new window may extend past this
// segment's end. It may never extend past the end of the backing string.
func (seg Segment) SliceBeyond(offset, length int) (Segment, error) {
	if !seg.valid {
		return Segment{}, ErrInvalidSegment
	}
	if offset < 0 || length < 0 || seg.index+offset+length > len(seg.src) {
		return Segment{}, ErrIndexOutOfBounds
	}
	return Segment{src: seg.src, index: seg.index + offset, length: length, valid: true}, nil
}

// Subsegment returns the sub-window [offset, offset+length) as a
// Subsegment, i.e. a window expressed relative to this segment.
func (seg Segment) Subsegment(offset, length int) (Subsegment, error) {
	if !seg.valid {
		return Subsegment{}, ErrInvalidSegment
	}
	if offset < 0 || length < 0 || offset+length > seg.length {
		return Subsegment{}, ErrIndexOutOfBounds
	}
	return Subsegment{seg: seg, offset: offset, length: length}, nil
}

// --- Trimming --------------------------------------------------------------

// Trim returns a segment with leading and trailing whitespace excluded from
// the window. A segment consisting entirely of whitespace trims to a
// zero-length segment at the position of its first byte. Trimming the
// invalid segment yields the invalid segment.
func (seg Segment) Trim() Segment {
	return seg.trimFunc(unicode.IsSpace)
}

// TrimStart returns a segment with leading whitespace excluded.
func (seg Segment) TrimStart() Segment {
	return seg.trimStartFunc(unicode.IsSpace)
}

// TrimEnd returns a segment with trailing whitespace excluded.
func (seg Segment) TrimEnd() Segment {
	return seg.trimEndFunc(unicode.IsSpace)
}

// TrimRune returns a segment with leading and trailing occurrences of r
// excluded from the window.
func (seg Segment) TrimRune(r rune) Segment {
	return seg.trimFunc(func(c rune) bool { return c == r })
}

// TrimRuneStart returns a segment with leading occurrences of r excluded.
func (seg Segment) TrimRuneStart(r rune) Segment {
	return seg.trimStartFunc(func(c rune) bool { return c == r })
}

// TrimRuneEnd returns a segment with trailing occurrences of r excluded.
func (seg Segment) TrimRuneEnd(r rune) Segment {
	return seg.trimEndFunc(func(c rune) bool { return c == r })
}

// TrimAny returns a segment with leading and trailing runes contained in
// cutset excluded from the window.
func (seg Segment) TrimAny(cutset string) Segment {
	return seg.trimFunc(func(c rune) bool { return strings.ContainsRune(cutset, c) })
}

// TrimAnyStart returns a segment with leading runes from cutset excluded.
func (seg Segment) TrimAnyStart(cutset string) Segment {
	return seg.trimStartFunc(func(c rune) bool { return strings.ContainsRune(cutset, c) })
}

// TrimAnyEnd returns a segment with trailing runes from cutset excluded.
func (seg Segment) TrimAnyEnd(cutset string) Segment {
	return seg.trimEndFunc(func(c rune) bool { return strings.ContainsRune(cutset, c) })
}

// trimFunc drops from both ends. A window dropped in its entirety collapses
// to a zero-length segment at the original start offset.
func (seg Segment) trimFunc(drop func(rune) bool) Segment {
	if !seg.valid {
		return Segment{}
	}
	s := seg.trimStartFunc(drop)
	if s.length == 0 {
		return Segment{src: seg.src, index: seg.index, length: 0, valid: true}
	}
	return s.trimEndFunc(drop)
}

func (seg Segment) trimStartFunc(drop func(rune) bool) Segment {
	if !seg.valid {
		return Segment{}
	}
	span := seg.Span()
	i := 0
	for i < len(span) {
		r, w := utf8.DecodeRuneInString(span[i:])
		if !drop(r) {
			break
		}
		i += w
	}
	return Segment{src: seg.src, index: seg.index + i, length: seg.length - i, valid: true}
}

func (seg Segment) trimEndFunc(drop func(rune) bool) Segment {
	if !seg.valid {
		return Segment{}
	}
	span := seg.Span()
	j := len(span)
	for j > 0 {
		r, w := utf8.DecodeLastRuneInString(span[:j])
		if !drop(r) {
			break
		}
		j -= w
	}
	return Segment{src: seg.src, index: seg.index, length: j, valid: true}
}
