package coursetree

/*
BSD 3-Clause License

Copyright (c) Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"slices"
	"strings"
)

// Course is a single course record: an identifier, a title, and the
// identifiers of the course's prerequisites.
//
// The identifier is the sort and equality key of the index. It is compared
// byte-wise and case-sensitive. Prerequisites keep their input order;
// duplicates are preserved.
type Course struct {
	ID      string
	Title   string
	Prereqs []string
}

// Valid reports whether a course has a non-empty identifier and title.
func (c Course) Valid() bool {
	return c.ID != "" && c.Title != ""
}

// HasPrereqs is a predicate: does c list any prerequisites?
func (c Course) HasPrereqs() bool {
	return len(c.Prereqs) > 0
}

// PrereqList returns the prerequisites comma-joined, in stored order.
func (c Course) PrereqList() string {
	return strings.Join(c.Prereqs, ", ")
}

// String returns the course in input-file shape, i.e.
//
//	ID, Title, Prereq, Prereq …
func (c Course) String() string {
	var b strings.Builder
	b.WriteString(c.ID)
	b.WriteString(", ")
	b.WriteString(c.Title)
	for _, p := range c.Prereqs {
		b.WriteString(", ")
		b.WriteString(p)
	}
	return b.String()
}

// clone copies the prerequisite slice, so the tree never shares backing
// arrays with its clients.
func (c Course) clone() Course {
	c.Prereqs = slices.Clone(c.Prereqs)
	return c
}
