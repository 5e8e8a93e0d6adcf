/*
Package segment provides allocation-conscious string views and lazy
segmentation algorithms on top of them.

Segments

A Segment is an immutable, non-owning window into a backing string. It
carries the backing string together with a start index and a length, and
never copies the windowed characters. Slicing, trimming and searching all
produce further Segment values over the same backing string; the first
(and only) point where text is copied is an explicit call to Clone.

Because Go strings are immutable and garbage collected, a Segment may
outlive the expression it was created in without further ceremony; the
runtime keeps the backing string alive as long as any view on it exists.

Splitting and searching

The split cursors in this package are resumable, single-pass iterators
producing successive Segments, with delimiter variants for a single rune,
a fixed substring, and a regular expression. Search is expressed as a
Search descriptor producing Capture values which can be advanced to the
next occurrence. Join and Replace are lazy compositions over these
iterators and do not concatenate until a consumer asks for a string.

Comparison of segment contents is controlled by a Comparison value:
ordinal, ordinal-ignore-case, or collation-based comparison for a
specific language tag.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) 2020–21, Norbert Pillmayer

All rights reserved.

Please refer to the LICENSE file for details.
*/
package segment

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'segment'
func tracer() tracing.Trace {
	return tracing.Select("segment")
}

// SegmentError is an error type for the segment module
type SegmentError string

func (e SegmentError) Error() string {
	return string(e)
}

// ErrIndexOutOfBounds is flagged whenever a window position is negative or
// greater than the length of the backing string.
const ErrIndexOutOfBounds = SegmentError("index out of bounds")

// ErrIllegalArguments is flagged whenever function parameters are invalid.
const ErrIllegalArguments = SegmentError("illegal arguments")

// ErrInvalidSegment is flagged when an operation requires a valid segment
// but receives the zero value, which has no backing string.
const ErrInvalidSegment = SegmentError("segment has no backing string")

// ErrIllegalDelimiter signals that an empty delimiter string has been passed
// to a sequence-split. An empty delimiter has no well-defined split
// semantics and is rejected at cursor construction.
const ErrIllegalDelimiter = SegmentError("illegal delimiter")

// ErrIllegalDelimiterPattern signals that a split pattern matches the empty
// string, which would produce degenerate zero-width delimiters.
const ErrIllegalDelimiterPattern = SegmentError("delimiter pattern matches empty string")
