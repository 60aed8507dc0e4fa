/*
Package textfile loads course catalog text files into a course tree.

Files are read line by line (see package record); a file is never held in
memory as a whole. Every load produces a fresh tree. If a file cannot be
opened or read, no tree is returned, leaving any index the caller already
holds untouched.

Clients interested in the progress of a load may subscribe to a Loader's
event stream.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the LICENSE file for details.
*/
package textfile

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'coursetree'
func tracer() tracing.Trace {
	return tracing.Select("coursetree")
}
