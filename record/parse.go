package record

import (
	"bufio"
	"io"

	"github.com/npillmayer/coursetree"
)

// maxLineLength limits the length of a single input line.
const maxLineLength = 1 << 20

// ParseLine converts one line of text into a course record.
// It returns false if the line does not hold a valid record, i.e. if it has
// no delimiter, an empty identifier or an empty title.
//
// ParseLine has no side effects.
func ParseLine(line string) (coursetree.Course, bool) {
	fields, delims := tokenize(line)
	if delims == 0 || fields[0] == "" || fields[1] == "" {
		return coursetree.Course{}, false
	}
	c := coursetree.Course{ID: fields[0], Title: fields[1]}
	for _, p := range fields[2:] {
		if p != "" {
			c.Prereqs = append(c.Prereqs, p)
		}
	}
	return c, true
}

// Scanner reads course records from an io.Reader, one line at a time.
// Lines not holding a valid record are skipped.
//
// Usage follows bufio.Scanner:
//
//	sc := record.NewScanner(r)
//	for sc.Scan() {
//	    tree.Insert(sc.Course())
//	}
//	if err := sc.Err(); err != nil {
//	    …
//	}
type Scanner struct {
	lines   *bufio.Scanner
	course  coursetree.Course
	lineno  int // current line number, 1-based
	skipped int // number of lines skipped so far
	onSkip  func(int, string)
}

// NewScanner creates a record scanner reading from r.
func NewScanner(r io.Reader) *Scanner {
	lines := bufio.NewScanner(r)
	lines.Buffer(make([]byte, 0, 4096), maxLineLength)
	return &Scanner{lines: lines}
}

// OnSkip registers a callback which is called for every line skipped,
// with the line number and the raw line text.
func (s *Scanner) OnSkip(f func(lineno int, text string)) {
	s.onSkip = f
}

// Scan advances to the next valid record. It returns false at the end of
// input or on a read error (see Err).
func (s *Scanner) Scan() bool {
	for s.lines.Scan() {
		s.lineno++
		text := s.lines.Text()
		if c, ok := ParseLine(text); ok {
			s.course = c
			return true
		}
		s.skipped++
		tracer().Debugf("record: skipping line %d: %q", s.lineno, text)
		if s.onSkip != nil {
			s.onSkip(s.lineno, text)
		}
	}
	s.course = coursetree.Course{}
	return false
}

// Course returns the record most recently found by Scan.
func (s *Scanner) Course() coursetree.Course {
	return s.course
}

// Line returns the number of the line most recently read (1-based).
func (s *Scanner) Line() int {
	return s.lineno
}

// Skipped returns the number of lines skipped so far.
func (s *Scanner) Skipped() int {
	return s.skipped
}

// Err returns the first non-EOF read error encountered by Scan.
func (s *Scanner) Err() error {
	return s.lines.Err()
}
