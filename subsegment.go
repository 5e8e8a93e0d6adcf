package segment

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

// Subsegment is a window expressed relative to a Segment rather than
// directly to the backing string.
//
// Subsegments are produced as transient search results: they carry the
// segment they were found in, which lets a search resume from the position
// of the previous hit without materializing intermediate segments.
// A Subsegment converts to an absolute Segment on demand.
//
// The zero value is the invalid subsegment.
type Subsegment struct {
	seg    Segment
	offset int
	length int
}

// IsValid reports whether the subsegment refers to a valid segment.
func (sub Subsegment) IsValid() bool {
	return sub.seg.valid
}

// Offset returns the window start relative to the enclosing segment.
func (sub Subsegment) Offset() int {
	return sub.offset
}

// Len returns the window size in bytes.
func (sub Subsegment) Len() int {
	return sub.length
}

// Enclosing returns the segment this subsegment is relative to.
func (sub Subsegment) Enclosing() Segment {
	return sub.seg
}

// Span returns a zero-copy view of exactly the windowed bytes.
func (sub Subsegment) Span() string {
	if !sub.seg.valid {
		return ""
	}
	start := sub.seg.index + sub.offset
	return sub.seg.src[start : start+sub.length]
}

// String returns the windowed text. Subsegment implements fmt.Stringer.
func (sub Subsegment) String() string {
	return sub.Span()
}

// Segment materializes the absolute window as a Segment over the backing
// string. When the subsegment covers its enclosing segment entirely, the
// enclosing segment value is returned unchanged.
func (sub Subsegment) Segment() Segment {
	if !sub.seg.valid {
		return Segment{}
	}
	if sub.offset == 0 && sub.length == sub.seg.length {
		return sub.seg
	}
	return Segment{
		src:    sub.seg.src,
		index:  sub.seg.index + sub.offset,
		length: sub.length,
		valid:  true,
	}
}

// Equals reports content equality of the windowed bytes under cmp.
func (sub Subsegment) Equals(other Subsegment, cmp Comparison) bool {
	if !sub.seg.valid || !other.seg.valid {
		return sub.seg.valid == other.seg.valid
	}
	return cmp.Equals(sub.Span(), other.Span())
}
