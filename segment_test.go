package segment

import (
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestSegmentFromString(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	seg := FromString("Hello World")
	t.Logf("seg = '%s'", seg)
	if !seg.IsValid() {
		t.Errorf("expected segment to be valid, is not")
	}
	if seg.Len() != 11 || seg.Index() != 0 || seg.End() != 11 {
		t.Errorf("unexpected window geometry: [%d..%d)", seg.Index(), seg.End())
	}
	if seg.Span() != "Hello World" {
		t.Errorf("expected span to be 'Hello World', is '%s'", seg.Span())
	}
}

func TestSegmentInvalidVsEmpty(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	var invalid Segment
	if invalid.IsValid() {
		t.Errorf("zero-value segment should be invalid")
	}
	empty := FromString("")
	if !empty.IsValid() {
		t.Errorf("segment over empty string should be valid")
	}
	if !empty.IsEmpty() || !invalid.IsEmpty() {
		t.Errorf("both segments should be empty")
	}
	if invalid == empty {
		t.Errorf("invalid segment must be distinguishable from valid empty segment")
	}
}

func TestSegmentWindow(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	seg, err := Window("Hello World", 6, 5)
	if err != nil {
		t.Fatal(err.Error())
	}
	if seg.Span() != "World" {
		t.Errorf("expected span 'World', is '%s'", seg.Span())
	}
	if _, err = Window("Hello", 3, 4); err != ErrIndexOutOfBounds {
		t.Errorf("expected out-of-bounds error, got %v", err)
	}
	if _, err = Window("Hello", -1, 2); err != ErrIndexOutOfBounds {
		t.Errorf("expected out-of-bounds error, got %v", err)
	}
	rest, err := WindowFrom("Hello World", 6)
	if err != nil {
		t.Fatal(err.Error())
	}
	if rest.Span() != "World" {
		t.Errorf("expected span 'World', is '%s'", rest.Span())
	}
}

func TestSegmentPrecedingFollowing(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	seg, _ := Window("Hello World", 6, 5)
	if p := seg.Preceding(false); p.Span() != "Hello " {
		t.Errorf("preceding = '%s', should be 'Hello '", p.Span())
	}
	if p := seg.Preceding(true); p.Span() != "Hello World" {
		t.Errorf("preceding(includeSelf) = '%s', should be 'Hello World'", p.Span())
	}
	if f := seg.Following(false); f.Span() != "" {
		t.Errorf("following = '%s', should be empty", f.Span())
	}
	mid, _ := Window("Hello World", 3, 2)
	if f := mid.Following(false); f.Span() != " World" {
		t.Errorf("following = '%s', should be ' World'", f.Span())
	}
	p, err := mid.PrecedingMax(2, false)
	if err != nil {
		t.Fatal(err.Error())
	}
	if p.Span() != "el" {
		t.Errorf("bounded preceding = '%s', should be 'el'", p.Span())
	}
	p, err = mid.PrecedingMax(100, false) // clamps, does not fail
	if err != nil || p.Span() != "Hel" {
		t.Errorf("clamped preceding = '%s' (err=%v), should be 'Hel'", p.Span(), err)
	}
	if _, err = mid.PrecedingMax(-1, false); err != ErrIllegalArguments {
		t.Errorf("negative max should be rejected, got %v", err)
	}
	f, err := mid.FollowingMax(3, false)
	if err != nil || f.Span() != " Wo" {
		t.Errorf("bounded following = '%s' (err=%v), should be ' Wo'", f.Span(), err)
	}
}

func TestSegmentOffsets(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	seg, _ := Window("Hello World", 0, 5)
	shifted, err := seg.OffsetIndex(6)
	if err != nil {
		t.Fatal(err.Error())
	}
	if shifted.Span() != "World" {
		t.Errorf("shifted span = '%s', should be 'World'", shifted.Span())
	}
	if _, err = shifted.OffsetIndex(1); err != ErrIndexOutOfBounds {
		t.Errorf("expected out-of-bounds error, got %v", err)
	}
	grown, err := seg.OffsetLength(6)
	if err != nil || grown.Span() != "Hello World" {
		t.Errorf("grown span = '%s' (err=%v)", grown.Span(), err)
	}
	if _, err = seg.OffsetLength(-6); err != ErrIndexOutOfBounds {
		t.Errorf("negative length should be rejected, got %v", err)
	}
}

func TestSegmentSlice(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	seg, _ := Window("Hello World", 0, 5)
	s, err := seg.Slice(1, 3)
	if err != nil || s.Span() != "ell" {
		t.Errorf("slice = '%s' (err=%v), should be 'ell'", s.Span(), err)
	}
	if _, err = seg.Slice(1, 5); err != ErrIndexOutOfBounds {
		t.Errorf("slice beyond window should fail, got %v", err)
	}
	s, err = seg.SliceBeyond(1, 10)
	if err != nil || s.Span() != "ello World" {
		t.Errorf("ignoring the window boundary should give 'ello World', is '%s' (err=%v)", s.Span(), err)
	}
	if _, err = seg.SliceBeyond(1, 11); err != ErrIndexOutOfBounds {
		t.Errorf("slice beyond source should fail, got %v", err)
	}
	var invalid Segment
	if _, err = invalid.Slice(0, 0); err != ErrInvalidSegment {
		t.Errorf("slicing the invalid segment should fail, got %v", err)
	}
}

func TestSegmentTrim(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	seg := FromString("  Hello World\t\n")
	trimmed := seg.Trim()
	if trimmed.Span() != "Hello World" {
		t.Errorf("trimmed span = '%s'", trimmed.Span())
	}
	if trimmed.Index() != 2 {
		t.Errorf("trim should keep the window position, index = %d", trimmed.Index())
	}
	if again := trimmed.Trim(); again != trimmed {
		t.Errorf("trim should be idempotent")
	}
	if s := seg.TrimStart(); s.Span() != "Hello World\t\n" {
		t.Errorf("trimStart span = '%s'", s.Span())
	}
	if s := seg.TrimEnd(); s.Span() != "  Hello World" {
		t.Errorf("trimEnd span = '%s'", s.Span())
	}
}

func TestSegmentTrimAllWhitespace(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	seg, _ := Window("ab   cd", 2, 3)
	trimmed := seg.Trim()
	if trimmed.Len() != 0 {
		t.Errorf("all-whitespace window should trim to length 0, is %d", trimmed.Len())
	}
	if trimmed.Index() != seg.Index() {
		t.Errorf("all-whitespace trim should stay at the original start %d, is at %d",
			seg.Index(), trimmed.Index())
	}
}

func TestSegmentTrimVariants(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	seg := FromString("--Hello--")
	if s := seg.TrimRune('-'); s.Span() != "Hello" {
		t.Errorf("trimRune span = '%s'", s.Span())
	}
	seg = FromString("-=Hello=-")
	if s := seg.TrimAny("-="); s.Span() != "Hello" {
		t.Errorf("trimAny span = '%s'", s.Span())
	}
	if s := seg.TrimAnyStart("-="); s.Span() != "Hello=-" {
		t.Errorf("trimAnyStart span = '%s'", s.Span())
	}
}

func TestSegmentIdentityEquality(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	a := FromString("abc")
	b := FromString("abc")
	if a != b {
		// Go compares the backing strings by value, so equal windows over
		// equal sources are identical.
		t.Errorf("segments over equal backing strings and windows should be ==")
	}
	head, _ := Window("abcabc", 0, 3)
	tail, _ := Window("abcabc", 3, 3)
	if head == tail {
		t.Errorf("different windows must not be ==")
	}
	if !head.ContentEquals(tail, Ordinal) {
		t.Errorf("different windows with equal text should be content-equal")
	}
}

func TestSegmentByteAndClone(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	seg, _ := Window("Hello World", 6, 5)
	b, err := seg.Byte(0)
	if err != nil || b != 'W' {
		t.Errorf("byte(0) = %c (err=%v), should be 'W'", b, err)
	}
	if _, err = seg.Byte(5); err != ErrIndexOutOfBounds {
		t.Errorf("expected out-of-bounds error, got %v", err)
	}
	if seg.Clone() != "World" {
		t.Errorf("clone = '%s', should be 'World'", seg.Clone())
	}
}

func TestSubsegment(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	seg, _ := Window("Hello World", 6, 5)
	sub, err := seg.Subsegment(1, 3)
	if err != nil {
		t.Fatal(err.Error())
	}
	if sub.Span() != "orl" {
		t.Errorf("subsegment span = '%s', should be 'orl'", sub.Span())
	}
	abs := sub.Segment()
	if abs.Index() != 7 || abs.Len() != 3 {
		t.Errorf("materialized window = [%d..%d)", abs.Index(), abs.End())
	}
	full, _ := seg.Subsegment(0, seg.Len())
	if full.Segment() != seg {
		t.Errorf("a covering subsegment should materialize to the original segment value")
	}
	other, _ := FromString("xxorlxx").Subsegment(2, 3)
	if !sub.Equals(other, Ordinal) {
		t.Errorf("subsegments with equal text should be content-equal")
	}
}
