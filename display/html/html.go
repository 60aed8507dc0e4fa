/*
Package html renders a course catalog as an HTML table and reads such tables
back into a course tree.

A catalog table has one row per course, with cells for the course identifier,
the title and the comma-separated list of prerequisites. Header rows (rows
without data cells) are ignored on import.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the LICENSE file for details.
*/
package html

import (
	"errors"
	"io"
	"iter"
	"strings"

	"github.com/npillmayer/coursetree"
	"github.com/npillmayer/coursetree/record"
	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// tracer writes to trace with key 'coursetree'
func tracer() tracing.Trace {
	return tracing.Select("coursetree")
}

// ErrNoTable is flagged if an HTML input does not contain a table.
var ErrNoTable = errors.New("html: no catalog table found")

// Render writes the courses of a sequence as an HTML table to w. It returns
// the number of courses written.
func Render(w io.Writer, courses iter.Seq[coursetree.Course]) (int, error) {
	table := element(atom.Table)
	table.Attr = []html.Attribute{{Key: "class", Val: "catalog"}}
	thead := element(atom.Thead)
	thead.AppendChild(row(atom.Th, "Course", "Title", "Prerequisites"))
	table.AppendChild(thead)
	tbody := element(atom.Tbody)
	n := 0
	for c := range courses {
		tbody.AppendChild(row(atom.Td, c.ID, c.Title, c.PrereqList()))
		n++
	}
	table.AppendChild(tbody)
	tracer().Debugf("rendering %d courses as HTML", n)
	if err := html.Render(w, table); err != nil {
		return 0, err
	}
	_, err := io.WriteString(w, "\n")
	return n, err
}

func element(a atom.Atom) *html.Node {
	return &html.Node{
		Type:     html.ElementNode,
		Data:     a.String(),
		DataAtom: a,
	}
}

func row(cell atom.Atom, texts ...string) *html.Node {
	tr := element(atom.Tr)
	for _, s := range texts {
		c := element(cell)
		if s != "" {
			c.AppendChild(&html.Node{Type: html.TextNode, Data: s})
		}
		tr.AppendChild(c)
	}
	return tr
}

// ParseCatalog reads the first table of an HTML document into a fresh tree.
// Every table row with data cells is turned into a catalog line by joining
// the cells' text with commas; the line is then parsed like a line of a
// catalog text file. Rows not holding a valid record are skipped.
func ParseCatalog(r io.Reader) (*coursetree.Tree, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, err
	}
	table := findFirst(doc, atom.Table)
	if table == nil {
		return nil, ErrNoTable
	}
	tree := coursetree.New()
	skipped := 0
	for _, tr := range findAll(table, atom.Tr) {
		var cells []string
		for c := tr.FirstChild; c != nil; c = c.NextSibling {
			if c.Type == html.ElementNode && c.DataAtom == atom.Td {
				cells = append(cells, strings.TrimSpace(InnerText(c)))
			}
		}
		if len(cells) == 0 { // header row
			continue
		}
		if course, ok := record.ParseLine(strings.Join(cells, ",")); ok {
			tree.Insert(course)
		} else {
			skipped++
		}
	}
	tracer().Infof("imported %d courses from HTML, skipped %d rows", tree.Len(), skipped)
	return tree, nil
}

// InnerText returns the textual content of an HTML element and all
// its descendents. It resembles the text produced by
//
//	document.getElementById("myNode").innerText
//
// in JavaScript (except that html.InnerText cannot respect CSS styling suppressing
// the visibility of the node's descendents).
func InnerText(n *html.Node) string {
	if n == nil {
		return ""
	}
	var b strings.Builder
	collectText(n, &b)
	return b.String()
}

func collectText(n *html.Node, b *strings.Builder) {
	if n.Type == html.TextNode {
		b.WriteString(n.Data)
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(c, b)
	}
}

// findFirst returns the first element of type a in document order.
func findFirst(n *html.Node, a atom.Atom) *html.Node {
	if n.Type == html.ElementNode && n.DataAtom == a {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findFirst(c, a); found != nil {
			return found
		}
	}
	return nil
}

// findAll collects all elements of type a below n, in document order.
func findAll(n *html.Node, a atom.Atom) []*html.Node {
	var found []*html.Node
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && c.DataAtom == a {
			found = append(found, c)
		}
		found = append(found, findAll(c, a)...)
	}
	return found
}
