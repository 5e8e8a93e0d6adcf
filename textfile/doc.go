/*
Package textfile provides API helpers to load UTF-8 text files as segments.

Loading reads a file in bounded fragments. The asynchronous variant
broadcasts loading progress to any number of subscribers while preserving
a synchronous `Load` API.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package textfile

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'segment'
func tracer() tracing.Trace {
	return tracing.Select("segment")
}
