package segment

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"io"
	"iter"
	"regexp"
	"strings"
)

// Joined is a lazily evaluated character sequence interleaving a separator
// between the segments of an underlying sequence. It is a view composition:
// nothing is concatenated until a consumer drains it through String,
// WriteTo or Reader.
//
// The zero value behaves like the empty string.
type Joined struct {
	segs iter.Seq[Segment]
	sep  string
}

// Join lazily interleaves sep between the segments of segs. No separator is
// emitted before the first segment; between any two subsequent segments the
// separator is emitted even when the following segment is empty.
func Join(segs iter.Seq[Segment], sep string) Joined {
	return Joined{segs: segs, sep: sep}
}

// Pieces returns an iterator over the string pieces of the joined sequence:
// segment spans and separators in output order. Pieces never allocates
// character data.
func (j Joined) Pieces() iter.Seq[string] {
	return func(yield func(string) bool) {
		if j.segs == nil {
			return
		}
		first := true
		for seg := range j.segs {
			if !first && len(j.sep) > 0 {
				if !yield(j.sep) {
					return
				}
			}
			first = false
			if !yield(seg.Span()) {
				return
			}
		}
	}
}

// Len returns the total byte length of the joined sequence. It iterates the
// underlying sequence but allocates nothing.
func (j Joined) Len() int {
	n := 0
	for p := range j.Pieces() {
		n += len(p)
	}
	return n
}

// String materializes the joined sequence. This is the point where the
// lazy composition allocates. A single pass is used, so String works for
// single-use underlying sequences as well.
func (j Joined) String() string {
	var sb strings.Builder
	for p := range j.Pieces() {
		sb.WriteString(p)
	}
	return sb.String()
}

// WriteTo writes the joined sequence to w piece by piece.
func (j Joined) WriteTo(w io.Writer) (int64, error) {
	var written int64
	for p := range j.Pieces() {
		n, err := io.WriteString(w, p)
		written += int64(n)
		if err != nil {
			return written, err
		}
	}
	return written, nil
}

// Reader returns a reader for the bytes of the joined sequence.
func (j Joined) Reader() io.Reader {
	next, stop := iter.Pull(j.Pieces())
	return &joinedReader{next: next, stop: stop}
}

type joinedReader struct {
	next func() (string, bool)
	stop func()
	cur  string
	eof  bool
}

func (jr *joinedReader) Read(p []byte) (n int, err error) {
	for n < len(p) {
		if len(jr.cur) == 0 {
			if jr.eof {
				break
			}
			piece, ok := jr.next()
			if !ok {
				jr.eof = true
				jr.stop()
				break
			}
			jr.cur = piece
			continue
		}
		c := copy(p[n:], jr.cur)
		jr.cur = jr.cur[c:]
		n += c
	}
	if n == 0 && jr.eof {
		return 0, io.EOF
	}
	return n, nil
}

// --- Replace ---------------------------------------------------------------

// Replace returns a lazy view of seg with every occurrence of pattern
// (under cmp) replaced by repl. It is nothing but the composition of Split
// and Join: when pattern does not occur, the output equals the input; a
// pattern at the very start or end contributes no spurious leading or
// trailing replacement text.
func Replace(seg Segment, pattern, repl string, cmp Comparison) (Joined, error) {
	c, err := Split(seg, pattern, cmp, 0)
	if err != nil {
		return Joined{}, err
	}
	return Join(c.All(), repl), nil
}

// ReplacePattern returns a lazy view of seg with every match of re replaced
// by repl. Like Replace, it is a split-then-join composition.
func ReplacePattern(seg Segment, re *regexp.Regexp, repl string) (Joined, error) {
	c, err := SplitPattern(seg, re, 0)
	if err != nil {
		return Joined{}, err
	}
	return Join(c.All(), repl), nil
}
