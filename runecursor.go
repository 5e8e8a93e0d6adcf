package segment

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"unicode/utf8"
)

// Pos is an immutable rune-aware position coordinate within a segment.
//
// A Pos carries both a rune offset and a byte offset. Both values always
// refer to the same logical boundary in a specific segment window.
type Pos struct {
	runes   int
	bytepos int
}

// Runes returns the rune offset of the position.
func (p Pos) Runes() int {
	return p.runes
}

// Bytes returns the byte offset of the position.
func (p Pos) Bytes() int {
	return p.bytepos
}

// PosStart returns the zero position of a segment.
func (seg Segment) PosStart() Pos {
	return Pos{}
}

// PosEnd returns the end position of a segment.
func (seg Segment) PosEnd() Pos {
	span := seg.Span()
	return Pos{runes: utf8.RuneCountInString(span), bytepos: len(span)}
}

// RuneCursor navigates a segment by UTF-8 rune positions.
//
// The cursor is bound to one segment value. Movement is in rune steps,
// while internal addressing uses byte offsets.
type RuneCursor struct {
	seg Segment
	pos Pos
}

// NewRuneCursor creates a rune-aware cursor at the start of seg.
func (seg Segment) NewRuneCursor() (*RuneCursor, error) {
	if !seg.valid {
		return nil, ErrInvalidSegment
	}
	return &RuneCursor{seg: seg}, nil
}

// Pos returns the current immutable cursor position.
func (rc *RuneCursor) Pos() Pos {
	if rc == nil {
		return Pos{}
	}
	return rc.pos
}

// ByteOffset returns the current cursor byte offset within the segment.
func (rc *RuneCursor) ByteOffset() int {
	if rc == nil {
		return 0
	}
	return rc.pos.bytepos
}

// SeekPos moves the cursor to p after validating p against the cursor's
// segment. The byte offset must lie on a UTF-8 rune boundary.
func (rc *RuneCursor) SeekPos(p Pos) error {
	if rc == nil {
		return ErrIllegalArguments
	}
	span := rc.seg.Span()
	if p.bytepos < 0 || p.bytepos > len(span) {
		return ErrIndexOutOfBounds
	}
	if p.bytepos < len(span) && !utf8.RuneStart(span[p.bytepos]) {
		return ErrIllegalArguments
	}
	if p.runes != utf8.RuneCountInString(span[:p.bytepos]) {
		return ErrIllegalArguments
	}
	rc.pos = p
	return nil
}

// SeekRunes moves the cursor to absolute rune offset n.
func (rc *RuneCursor) SeekRunes(n int) error {
	if rc == nil || n < 0 {
		return ErrIllegalArguments
	}
	span := rc.seg.Span()
	b := 0
	for r := 0; r < n; r++ {
		if b >= len(span) {
			return ErrIndexOutOfBounds
		}
		_, w := utf8.DecodeRuneInString(span[b:])
		b += w
	}
	rc.pos = Pos{runes: n, bytepos: b}
	return nil
}

// Next returns the rune at the current cursor position and advances by one
// rune. At the end of the segment ok is false.
func (rc *RuneCursor) Next() (r rune, ok bool) {
	if rc == nil {
		return 0, false
	}
	span := rc.seg.Span()
	if rc.pos.bytepos >= len(span) {
		return 0, false
	}
	r, w := utf8.DecodeRuneInString(span[rc.pos.bytepos:])
	rc.pos = Pos{runes: rc.pos.runes + 1, bytepos: rc.pos.bytepos + w}
	return r, true
}

// Prev moves the cursor back by one rune and returns the rune it now
// points at. At the start of the segment ok is false.
func (rc *RuneCursor) Prev() (r rune, ok bool) {
	if rc == nil {
		return 0, false
	}
	if rc.pos.bytepos == 0 {
		return 0, false
	}
	span := rc.seg.Span()
	r, w := utf8.DecodeLastRuneInString(span[:rc.pos.bytepos])
	rc.pos = Pos{runes: rc.pos.runes - 1, bytepos: rc.pos.bytepos - w}
	return r, true
}
