package segment

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/uax11"
	"golang.org/x/term"
)

// DumpConfig controls the output of Dump.
type DumpConfig struct {
	LineWidth int            // target line width in fixed-width positions
	Context   *uax11.Context // script/region context for width calculation
	Colorize  bool
}

// ConfigFromTerminal is a simple helper for creating a dump configuration.
// It checks whether stdout is a terminal, and if so it reads the terminal's
// width and enables colorized output. Context is created from heuristics on
// the user environment.
func ConfigFromTerminal() *DumpConfig {
	config := &DumpConfig{
		LineWidth: 65,
		Context:   uax11.ContextFromEnvironment(),
	}
	if term.IsTerminal(0) {
		config.Colorize = true
		if w, _, err := term.GetSize(0); err == nil && w > 0 {
			config.LineWidth = w
		}
	}
	return config
}

// Dump outputs the windows of segs, interpreted as a segmentation of src,
// in a human-readable form (for debugging purposes). Each line shows a
// segment's byte interval and its text, with the text clipped to the
// configured line width. If config is nil, terminal heuristics apply.
func Dump(w io.Writer, src Segment, segs []Segment, config *DumpConfig) {
	if config == nil {
		config = ConfigFromTerminal()
	}
	if config.Context == nil {
		config = &DumpConfig{
			LineWidth: config.LineWidth,
			Context:   uax11.ContextFromEnvironment(),
			Colorize:  config.Colorize,
		}
	}
	header := color.New(color.FgCyan)
	window := color.New(color.FgBlue)
	if !config.Colorize {
		header.DisableColor()
		window.DisableColor()
	}
	header.Fprintf(w, "segmentation of [%d..%d) over %d byte(s), %d segment(s)\n",
		src.Index(), src.End(), len(src.Source()), len(segs))
	for i, seg := range segs {
		if !seg.IsValid() {
			fmt.Fprintf(w, "[%3d] <invalid>\n", i)
			continue
		}
		fmt.Fprintf(w, "[%3d] %4d..%-4d ", i, seg.Index(), seg.End())
		window.Fprintf(w, "“%s”", clipToWidth(seg.Span(), config))
		fmt.Fprintln(w)
	}
}

// clipToWidth cuts span after the last grapheme cluster that still fits the
// configured line width, appending an ellipsis when clipped. Width is
// measured in fixed-width positions via UAX#11.
func clipToWidth(span string, config *DumpConfig) string {
	if len(span) == 0 {
		return span
	}
	budget := config.LineWidth - 16 // room for the position prefix
	if budget < 8 {
		budget = 8
	}
	gstr := grapheme.StringFromString(span)
	if uax11.StringWidth(gstr, config.Context) <= budget {
		return span
	}
	taken, pos := 0, 0
	for i := 0; i < gstr.Len(); i++ {
		g := gstr.Nth(i)
		w := uax11.StringWidth(grapheme.StringFromString(g), config.Context)
		if taken+w > budget-1 {
			break
		}
		taken += w
		pos += len(g)
	}
	return span[:pos] + "…"
}
