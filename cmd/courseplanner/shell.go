package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"github.com/npillmayer/coursetree"
	"github.com/npillmayer/coursetree/display"
	"github.com/npillmayer/coursetree/display/html"
	"github.com/npillmayer/coursetree/textfile"
)

// Settings are the parameters of a shell session.
type Settings struct {
	Path     string // catalog file to load
	CourseID string // course to print after every successful load, if set
	Format   string // "console" or "html"
	Verbose  bool   // report skipped lines while loading
}

// Shell runs the course planner menu.
//
// Input is read in words, so a choice and a course identifier may be given
// on the same line.
type Shell struct {
	in       *bufio.Scanner
	out      io.Writer
	console  *display.Console
	settings Settings
	tree     *coursetree.Tree
}

// NewShell creates a shell reading choices from in and writing to out.
func NewShell(in io.Reader, out io.Writer, console *display.Console, settings Settings) *Shell {
	sc := bufio.NewScanner(in)
	sc.Split(bufio.ScanWords)
	return &Shell{
		in:       sc,
		out:      out,
		console:  console,
		settings: settings,
		tree:     coursetree.New(),
	}
}

// Run loops over the menu until the user chooses to exit or input ends.
// The index is torn down on return.
func (sh *Shell) Run() error {
	defer func() {
		n := sh.tree.Teardown()
		tracer().Debugf("released %d courses", n)
	}()
	fmt.Fprintln(sh.out, "Welcome to the course planner:")
	for {
		fmt.Fprintln(sh.out, "  1. Load Data Structure")
		fmt.Fprintln(sh.out, "  2. Print Course List")
		fmt.Fprintln(sh.out, "  3. Print Course")
		fmt.Fprintln(sh.out, "  9. Exit")
		fmt.Fprint(sh.out, "Enter choice: ")
		word, ok := sh.next()
		if !ok {
			fmt.Fprintln(sh.out)
			return sh.in.Err()
		}
		choice, err := strconv.Atoi(word)
		if err != nil {
			choice = -1
		}
		switch choice {
		case 1:
			sh.load()
		case 2:
			if err := sh.printCatalog(); err != nil {
				return err
			}
		case 3:
			fmt.Fprintln(sh.out, "What course do you want to know about?")
			id, ok := sh.next()
			if !ok {
				return sh.in.Err()
			}
			if err := sh.printCourse(id); err != nil {
				return err
			}
		case 9:
			fmt.Fprintln(sh.out, "Thank you for using the course planner!")
			return nil
		default:
			fmt.Fprintf(sh.out, "%s is not a valid option.\n", word)
		}
	}
}

func (sh *Shell) next() (string, bool) {
	if !sh.in.Scan() {
		return "", false
	}
	return sh.in.Text(), true
}

// load reads the catalog file into a fresh index. On success the fresh index
// replaces the current one; on failure the current one is kept.
func (sh *Shell) load() {
	fmt.Fprintf(sh.out, "Loading file %s\n", sh.settings.Path)
	var tree *coursetree.Tree
	var stats textfile.Stats
	var err error
	switch {
	case isHTML(sh.settings.Path):
		tree, err = loadHTML(sh.settings.Path)
		stats.Inserted = tree.Len()
	case sh.settings.Verbose:
		tree, stats, err = sh.loadVerbose()
	default:
		tree, stats, err = textfile.Load(sh.settings.Path)
	}
	if err != nil {
		tracer().Errorf("%v", err)
		fmt.Fprintln(sh.out, "Unable to open file")
		return
	}
	old := sh.tree
	sh.tree = tree
	old.Teardown()
	fmt.Fprintf(sh.out, "%d courses read\n", stats.Inserted)
	if sh.settings.CourseID != "" {
		if err := sh.printCourse(sh.settings.CourseID); err != nil {
			tracer().Errorf("%v", err)
		}
	}
}

func isHTML(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".html" || ext == ".htm"
}

// loadHTML imports a catalog table from an HTML file.
func loadHTML(path string) (*coursetree.Tree, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	tree, err := html.ParseCatalog(f)
	if err != nil {
		return nil, fmt.Errorf("cannot import %q: %w", path, err)
	}
	return tree, nil
}

// loadVerbose loads with a broadcasting loader and reports skipped lines
// after loading has finished.
func (sh *Shell) loadVerbose() (*coursetree.Tree, textfile.Stats, error) {
	loader := textfile.NewLoader()
	events, ok := loader.Subscribe(context.Background(), 64)
	done := make(chan []textfile.Event)
	go func() {
		var skipped []textfile.Event
		if ok {
			for m := range events {
				if ev, isEvent := m.(textfile.Event); isEvent && ev.Kind == textfile.Skipped {
					skipped = append(skipped, ev)
				}
			}
		}
		done <- skipped
	}()
	tree, stats, err := loader.Load(sh.settings.Path)
	loader.Close()
	for _, ev := range <-done {
		fmt.Fprintf(sh.out, "line %d skipped: %q\n", ev.Line, ev.Text)
	}
	return tree, stats, err
}

func (sh *Shell) printCatalog() error {
	if sh.settings.Format == "html" {
		_, err := html.Render(sh.out, sh.tree.All())
		return err
	}
	_, err := sh.console.PrintCatalog(sh.out, sh.tree.All())
	return err
}

func (sh *Shell) printCourse(id string) error {
	c, ok := sh.tree.Search(id)
	if !ok {
		return sh.console.PrintNotFound(sh.out, id)
	}
	if sh.settings.Format == "html" {
		_, err := html.Render(sh.out, slices.Values([]coursetree.Course{c}))
		return err
	}
	return sh.console.PrintCourse(sh.out, c)
}
