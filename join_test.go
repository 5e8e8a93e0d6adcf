package segment

import (
	"io"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestJoinReassembly(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	inputs := []string{
		"a,b,c",
		"a,b,",
		",a,,b",
		"",
		",",
		"apple,banana,,cherry",
	}
	for _, input := range inputs {
		c, err := SplitRune(FromString(input), ',', Ordinal, 0)
		if err != nil {
			t.Fatal(err.Error())
		}
		out := Join(c.All(), ",").String()
		t.Logf("'%s' -> '%s'", input, out)
		if out != input {
			t.Errorf("split+join should reproduce '%s', got '%s'", input, out)
		}
	}
}

func TestJoinSeparatorPlacement(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	c, _ := SplitRune(FromString("a,b"), ',', Ordinal, 0)
	j := Join(c.All(), " + ")
	if j.String() != "a + b" {
		t.Errorf("joined = '%s'", j.String())
	}
	if j.Len() != 5 {
		t.Errorf("joined length = %d, should be 5", j.Len())
	}
	// no separator before the first element, even when it is empty
	c, _ = SplitRune(FromString(",b"), ',', Ordinal, 0)
	if out := Join(c.All(), "+").String(); out != "+b" {
		t.Errorf("joined = '%s', should be '+b'", out)
	}
}

func TestJoinZeroValue(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	var j Joined
	if j.String() != "" || j.Len() != 0 {
		t.Errorf("zero-value Joined should behave like the empty string")
	}
}

func TestReplace(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	cases := []struct {
		src, pattern, repl, want string
	}{
		{"a-b-c", "-", "+", "a+b+c"},
		{"abc", "-", "+", "abc"},   // no match: unchanged
		{"-abc-", "-", "", "abc"},  // pattern at the edges: no spurious text
		{"aaa", "aa", "b", "ba"},   // non-overlapping, left to right
		{"x", "x", "yy", "yy"},     // whole-source match
	}
	for _, tc := range cases {
		j, err := Replace(FromString(tc.src), tc.pattern, tc.repl, Ordinal)
		if err != nil {
			t.Fatal(err.Error())
		}
		if out := j.String(); out != tc.want {
			t.Errorf("replace('%s', '%s', '%s') = '%s', want '%s'",
				tc.src, tc.pattern, tc.repl, out, tc.want)
		}
	}
	if _, err := Replace(FromString("abc"), "", "+", Ordinal); err != ErrIllegalDelimiter {
		t.Errorf("empty pattern should be rejected, got %v", err)
	}
}

func TestReplaceIgnoreCase(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	j, err := Replace(FromString("one SEP two sep three"), "sep", "|", OrdinalIgnoreCase)
	if err != nil {
		t.Fatal(err.Error())
	}
	if out := j.String(); out != "one | two | three" {
		t.Errorf("replace = '%s'", out)
	}
}

func TestJoinReader(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	c, _ := SplitRune(FromString("one,two,three"), ',', Ordinal, 0)
	j := Join(c.All(), "; ")
	data, err := io.ReadAll(j.Reader())
	if err != nil {
		t.Fatal(err.Error())
	}
	if string(data) != "one; two; three" {
		t.Errorf("read = '%s'", string(data))
	}
	// tiny destination buffers exercise piece spilling
	r := j.Reader()
	var sb strings.Builder
	buf := make([]byte, 3)
	for {
		n, err := r.Read(buf)
		sb.Write(buf[:n])
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatal(err.Error())
		}
	}
	if sb.String() != "one; two; three" {
		t.Errorf("chunked read = '%s'", sb.String())
	}
}

func TestJoinWriteTo(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	c, _ := SplitRune(FromString("a,b"), ',', Ordinal, 0)
	var sb strings.Builder
	n, err := Join(c.All(), "-").WriteTo(&sb)
	if err != nil {
		t.Fatal(err.Error())
	}
	if n != 3 || sb.String() != "a-b" {
		t.Errorf("wrote %d bytes: '%s'", n, sb.String())
	}
}
