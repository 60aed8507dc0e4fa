package textfile

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/guiguan/caster"
	"github.com/npillmayer/coursetree"
	"github.com/npillmayer/coursetree/record"
)

/*
BSD 3-Clause License

Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the LICENSE file for details.
*/

// ErrNotRegularFile is flagged if a catalog path names a directory, device, etc.
var ErrNotRegularFile = errors.New("textfile: not a regular file")

// Stats summarizes a load.
type Stats struct {
	Lines    int // lines read
	Inserted int // records inserted into the tree
	Skipped  int // lines not holding a valid record
}

// EventKind tells what happened to an input line.
type EventKind uint8

// Kinds of load events.
const (
	Inserted EventKind = iota // a record has been inserted
	Skipped                   // a line has been skipped
)

func (k EventKind) String() string {
	switch k {
	case Inserted:
		return "inserted"
	case Skipped:
		return "skipped"
	}
	return "<unknown>"
}

// Event is published to subscribers of a Loader for every line read.
type Event struct {
	Kind   EventKind
	Line   int               // line number, 1-based
	Course coursetree.Course // valid for Kind == Inserted
	Text   string            // raw line, set for Kind == Skipped
}

// Loader loads catalog files and broadcasts load events to subscribers.
//
// The zero Loader is ready to use and publishes no events. Loaders created
// by NewLoader broadcast; their subscribers have to drain their channels,
// otherwise loading will stall.
type Loader struct {
	cast *caster.Caster // broadcaster for load events, may be nil
}

// NewLoader creates a loader which broadcasts load events.
func NewLoader() *Loader {
	return &Loader{
		cast: caster.New(nil),
	}
}

// Subscribe returns a channel of load events (of type Event). The channel is
// closed when ctx is done or the loader is closed. ok is false if the loader
// does not broadcast or has been closed.
func (l *Loader) Subscribe(ctx context.Context, capacity uint) (events <-chan interface{}, ok bool) {
	if l == nil || l.cast == nil {
		return nil, false
	}
	return l.cast.Sub(ctx, capacity)
}

// Close stops broadcasting and closes all subscriber channels.
func (l *Loader) Close() {
	if l != nil && l.cast != nil {
		l.cast.Close()
	}
}

// Load reads the catalog file name into a fresh tree.
//
// If the file cannot be opened or an I/O error occurs while reading, Load
// returns a nil tree together with the error.
func Load(name string) (*coursetree.Tree, Stats, error) {
	var l Loader
	return l.Load(name)
}

// Load reads the catalog file name into a fresh tree, publishing an event
// for every line read.
func (l *Loader) Load(name string) (*coursetree.Tree, Stats, error) {
	tracer().Infof("loading file %s", name)
	file, err := openFile(name)
	if err != nil {
		return nil, Stats{}, fmt.Errorf("textfile: cannot load %q: %w", name, err)
	}
	defer file.Close()
	tree, stats, err := l.LoadFrom(file)
	if err != nil {
		return nil, stats, fmt.Errorf("textfile: cannot load %q: %w", name, err)
	}
	return tree, stats, nil
}

// LoadFrom reads catalog lines from r into a fresh tree.
func (l *Loader) LoadFrom(r io.Reader) (*coursetree.Tree, Stats, error) {
	var stats Stats
	tree := coursetree.New()
	sc := record.NewScanner(r)
	sc.OnSkip(func(lineno int, text string) {
		l.publish(Event{Kind: Skipped, Line: lineno, Text: text})
	})
	for sc.Scan() {
		c := sc.Course()
		tree.Insert(c)
		stats.Inserted++
		l.publish(Event{Kind: Inserted, Line: sc.Line(), Course: c})
	}
	stats.Lines = sc.Line()
	stats.Skipped = sc.Skipped()
	if err := sc.Err(); err != nil {
		tracer().Errorf("read error after line %d: %v", stats.Lines, err)
		tree.Teardown()
		return nil, stats, err
	}
	tracer().Infof("loaded %d courses, skipped %d of %d lines", stats.Inserted, stats.Skipped, stats.Lines)
	return tree, stats, nil
}

func (l *Loader) publish(ev Event) {
	if l != nil && l.cast != nil {
		l.cast.Pub(ev)
	}
}

// openFile opens an OS file for reading, checking for error conditions.
func openFile(name string) (*os.File, error) {
	fi, err := os.Stat(name)
	if err != nil {
		return nil, err
	} else if !fi.Mode().IsRegular() {
		return nil, ErrNotRegularFile
	}
	return os.Open(name) // just open for read access
}
