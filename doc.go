/*
Package coursetree holds an in-memory index of course records.

Courses are kept in a plain binary search tree, keyed by their course
identifier. The tree supports insertion, point lookup and ascending
enumeration. It is filled from a line-oriented text file (see packages
record and textfile) and displayed by a driving shell (see package display
and cmd/courseplanner).

Tree

The tree is intentionally unbalanced: adverse insertion order (e.g., a
sorted input file) degenerates it into a linked list. All algorithms walk
the tree iteratively, so degenerate trees cost time, but never stack.

Duplicate identifiers

Insert routes a key equal to an existing key to the right. Search, however,
stops at the first equal key and never descends right because of equality.
A second record with an already known identifier is therefore stored and
enumerated, but can never be found by Search. This is observable behaviour
and kept as is.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the LICENSE file for details.
*/
package coursetree

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'coursetree'
func tracer() tracing.Trace {
	return tracing.Select("coursetree")
}

// CourseError is an error type for the coursetree module
type CourseError string

func (e CourseError) Error() string {
	return string(e)
}

// ErrIllegalArguments is flagged whenever function parameters are invalid.
const ErrIllegalArguments = CourseError("illegal arguments")

// ErrInvariant is flagged by Check whenever the tree structure is inconsistent.
const ErrInvariant = CourseError("tree invariant violated")

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
