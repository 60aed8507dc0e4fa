package display

import (
	"fmt"
	"io"
	"iter"
	"os"
	"sync"

	"github.com/fatih/color"
	"github.com/npillmayer/coursetree"
	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/uax11"
	"golang.org/x/term"
)

// Part denotes a part of the output which may be colored.
type Part uint8

// Parts of the output
const (
	IDPart     Part = iota // course identifier
	TitlePart              // course title
	LabelPart              // "Prerequisites:" label
	PrereqPart             // prerequisite identifiers
	NoticePart             // messages like "not found"
)

// tabWidth is the number of fixed-width positions a leading tab occupies.
const tabWidth = 8

// Config holds the parameters for console output.
type Config struct {
	LineWidth int            // target line length in fixed-width positions
	Context   *uax11.Context // context for East Asian Width; nil means Latin
}

// Console outputs course records to a console with a fixed width font.
// Parts of a record may be colored.
type Console struct {
	colors map[Part]*color.Color
	config Config
}

var setupGraphemes sync.Once

// NewConsole creates a console renderer.
//
// colors is a map from output parts to colors. It may contain just a subset
// of the parts; parts without color are written plain. If colors is nil, a
// default palette is used. If config is nil, a heuristic will create a config
// from the current terminal's properties.
func NewConsole(colors map[Part]*color.Color, config *Config) *Console {
	setupGraphemes.Do(grapheme.SetupGraphemeClasses)
	con := &Console{colors: colors}
	if colors == nil {
		con.colors = makeDefaultPalette()
	}
	if config == nil {
		config = ConfigFromTerminal()
		config.Context = uax11.ContextFromEnvironment()
	}
	con.config = *config
	if con.config.Context == nil {
		con.config.Context = uax11.LatinContext
	}
	return con
}

func makeDefaultPalette() map[Part]*color.Color {
	palette := map[Part]*color.Color{
		IDPart:     color.New(color.FgBlue, color.Bold),
		LabelPart:  color.New(color.Faint),
		PrereqPart: color.New(color.FgCyan),
		NoticePart: color.New(color.FgRed),
	}
	return palette
}

// PrintCourse outputs a single course: the identifier and title on one line,
// followed by the prerequisites (if any), comma-joined and wrapped to the
// line width.
func (con *Console) PrintCourse(w io.Writer, c coursetree.Course) error {
	pw := &partWriter{w: w, con: con}
	pw.text(c.ID, IDPart)
	pw.text(", ", TitlePart)
	pw.text(c.Title, TitlePart)
	pw.text("\n", TitlePart)
	if c.HasPrereqs() {
		pw.text("\t", LabelPart)
		pw.text("Prerequisites: ", LabelPart)
		pw.text("\n", LabelPart)
		for _, line := range con.wrap(c.Prereqs) {
			pw.text("\t", PrereqPart)
			for i, p := range line {
				if i > 0 {
					pw.text(", ", PrereqPart)
				}
				pw.text(p, PrereqPart)
			}
			pw.text("\n", PrereqPart)
		}
	}
	return pw.err
}

// PrintCatalog outputs all courses of a sequence, in sequence order, and
// returns the number of courses printed.
func (con *Console) PrintCatalog(w io.Writer, courses iter.Seq[coursetree.Course]) (int, error) {
	n := 0
	for c := range courses {
		if err := con.PrintCourse(w, c); err != nil {
			return n, err
		}
		n++
	}
	return n, nil
}

// PrintNotFound reports that no course with identifier id exists.
func (con *Console) PrintNotFound(w io.Writer, id string) error {
	pw := &partWriter{w: w, con: con}
	pw.text(fmt.Sprintf("Course Id %s not found.", id), NoticePart)
	pw.text("\n", NoticePart)
	return pw.err
}

// wrap distributes items onto lines, first-fit, so that no line exceeds the
// configured line width. Every line holds at least one item.
//
// Wikipedia:
//
//  1. |  SpaceLeft := LineWidth
//  2. |  for each Word in Text
//  3. |      if (Width(Word) + SpaceWidth) > SpaceLeft
//  4. |           insert line break before Word in Text
//  5. |           SpaceLeft := LineWidth - Width(Word)
//  6. |      else
//  7. |           SpaceLeft := SpaceLeft - (Width(Word) + SpaceWidth)
func (con *Console) wrap(items []string) [][]string {
	const sepWidth = 2 // ", "
	linewidth := con.config.LineWidth - tabWidth
	if linewidth <= 0 {
		linewidth = 1
	}
	var lines [][]string
	var line []string
	spaceleft := linewidth
	for _, item := range items {
		width := con.width(item)
		switch {
		case len(line) == 0:
			line = append(line, item)
			spaceleft = linewidth - width
		case width+sepWidth > spaceleft:
			lines = append(lines, line)
			line = []string{item}
			spaceleft = linewidth - width
		default:
			line = append(line, item)
			spaceleft -= width + sepWidth
		}
	}
	if len(line) > 0 {
		lines = append(lines, line)
	}
	tracer().Debugf("wrapped %d prerequisites onto %d lines", len(items), len(lines))
	return lines
}

// width returns the number of fixed-width positions s occupies.
// Printable ASCII always occupies one position per byte; all other
// runs of text are measured by their East Asian Width.
func (con *Console) width(s string) int {
	w, start := 0, 0
	for i := 0; i < len(s); i++ {
		if s[i] >= 0x20 && s[i] < 0x7f {
			if start < i {
				w += con.eaWidth(s[start:i])
			}
			w++
			start = i + 1
		}
	}
	if start < len(s) {
		w += con.eaWidth(s[start:])
	}
	return w
}

func (con *Console) eaWidth(s string) int {
	gstr := grapheme.StringFromString(s)
	return uax11.StringWidth(gstr, con.config.Context)
}

// partWriter writes text in the color of its part. It remembers the first
// write error and suppresses all further output.
type partWriter struct {
	w   io.Writer
	con *Console
	err error
}

func (pw *partWriter) text(s string, part Part) {
	if pw.err != nil {
		return
	}
	if c, ok := pw.con.colors[part]; ok && c != nil {
		_, pw.err = c.Fprint(pw.w, s)
		return
	}
	_, pw.err = io.WriteString(pw.w, s)
}

// --- Config for terminals --------------------------------------------------

// ConfigFromTerminal is a simple helper for creating a console Config.
// It checks wether stdout is a terminal, and if so it reads the terminal's width
// and sets the Config.LineWidth parameter accordingly.
func ConfigFromTerminal() *Config {
	config := &Config{}
	fd := int(os.Stdout.Fd())
	if term.IsTerminal(fd) {
		w, _, err := term.GetSize(fd)
		if err != nil {
			config.LineWidth = 80
		} else if w > 30 {
			config.LineWidth = w - 2
		} else {
			config.LineWidth = 30
		}
	} else {
		config.LineWidth = 80
	}
	tracer().P("format", "console").Infof("setting line length to %d en", config.LineWidth)
	return config
}
