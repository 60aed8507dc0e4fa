/*
Package record parses course records from lines of comma-delimited text.

The input format is one course per line:

	identifier,title[,prerequisite]*

Spaces directly following a delimiter (or starting the line) are skipped.
There is no quoting and no escaping of commas. Lines without a delimiter, with
an empty identifier or with an empty title do not yield a record; they are
skipped without error. Empty prerequisite tokens are dropped. A leading UTF-8
byte order mark is ignored.

ParseLine handles a single line. Scanner drives ParseLine over an io.Reader,
one line at a time, and never holds more than the current line in memory.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the LICENSE file for details.
*/
package record

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'coursetree'
func tracer() tracing.Trace {
	return tracing.Select("coursetree")
}
