/*
Package enums provides a compact name→value lookup table for enumeration
types, bucketed by name length.

Lookups come in exact and case-insensitive flavors and can be fed directly
from a segment window, so parsing an enum name out of a larger text does
not allocate a substring.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package enums

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'segment'
func tracer() tracing.Trace {
	return tracing.Select("segment")
}
