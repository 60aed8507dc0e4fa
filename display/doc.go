/*
Package display renders course records for a console.

Output follows the layout of the course planner:

	CSCI300, Introduction to Algorithms
		Prerequisites:
		CSCI200, MATH201

Prerequisite lists are wrapped to the console's line width. Widths are
measured in fixed-width positions according to UAX#11 (East Asian Width),
so identifiers and titles in CJK scripts wrap correctly, too.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the LICENSE file for details.
*/
package display

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'coursetree'
func tracer() tracing.Trace {
	return tracing.Select("coursetree")
}
