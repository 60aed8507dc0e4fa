package record

import "strings"

// bom is the UTF-8 encoded byte order mark.
const bom = "\xEF\xBB\xBF"

const delimiter = ','

// lexState is the state of the field tokenizer.
type lexState uint8

const (
	skipLeading lexState = iota // skipping spaces before a field's first byte
	inField                     // accumulating the bytes of a field
	atBoundary                  // a delimiter has just been consumed
)

// lexer splits a line into fields. It produces every field, including empty
// ones; dropping empty prerequisites is up to the caller.
type lexer struct {
	line   string
	state  lexState
	start  int      // start of current field within line
	fields []string // completed fields
	delims int      // number of delimiters seen
}

// tokenize scans one line and returns its fields together with the number
// of delimiters found. A line with n delimiters has n+1 fields.
func tokenize(line string) ([]string, int) {
	line = strings.TrimPrefix(line, bom)
	if i := strings.IndexAny(line, "\r\n"); i >= 0 {
		line = line[:i]
	}
	lx := &lexer{line: line, state: skipLeading}
	for i := 0; i < len(line); i++ {
		lx.step(i, line[i])
	}
	lx.flush()
	return lx.fields, lx.delims
}

func (lx *lexer) step(i int, ch byte) {
	switch lx.state {
	case skipLeading, atBoundary:
		switch ch {
		case ' ':
			lx.state = skipLeading
		case delimiter:
			lx.emit("")
		default:
			lx.start = i
			lx.state = inField
		}
	case inField:
		if ch == delimiter {
			lx.emit(lx.line[lx.start:i])
		}
	}
}

// emit completes a field at a delimiter.
func (lx *lexer) emit(field string) {
	lx.fields = append(lx.fields, field)
	lx.delims++
	lx.state = atBoundary
}

// flush completes the last field at end of line.
func (lx *lexer) flush() {
	if lx.state == inField {
		lx.fields = append(lx.fields, lx.line[lx.start:])
	} else {
		lx.fields = append(lx.fields, "")
	}
}
