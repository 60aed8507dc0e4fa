package display

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/google/go-cmp/cmp"
	"github.com/npillmayer/coursetree"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/uax/uax11"
)

func plainConsole(width int) *Console {
	return NewConsole(map[Part]*color.Color{}, &Config{LineWidth: width, Context: uax11.LatinContext})
}

func TestPrintCourse(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "coursetree")
	defer teardown()
	//
	con := plainConsole(80)
	out := &bytes.Buffer{}
	c := coursetree.Course{
		ID:      "CSCI300",
		Title:   "Introduction to Algorithms",
		Prereqs: []string{"CSCI200", "MATH201"},
	}
	if err := con.PrintCourse(out, c); err != nil {
		t.Fatal(err)
	}
	want := "CSCI300, Introduction to Algorithms\n\tPrerequisites: \n\tCSCI200, MATH201\n"
	if diff := cmp.Diff(want, out.String()); diff != "" {
		t.Errorf("output mismatch (-want +got):\n%s", diff)
	}
}

func TestPrintCourseWithoutPrereqs(t *testing.T) {
	con := plainConsole(80)
	out := &bytes.Buffer{}
	c := coursetree.Course{ID: "CSCI100", Title: "Introduction to Computer Science"}
	if err := con.PrintCourse(out, c); err != nil {
		t.Fatal(err)
	}
	if out.String() != "CSCI100, Introduction to Computer Science\n" {
		t.Errorf("expected single line, got %q", out.String())
	}
}

func TestPrereqsAreWrapped(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "coursetree")
	defer teardown()
	//
	con := plainConsole(tabWidth + 16) // room for two 7-char identifiers
	for _, id := range []string{"CSCI100", "MATH201"} {
		if w := con.width(id); w != 7 {
			t.Fatalf("expected %s to occupy 7 positions, got %d", id, w)
		}
	}
	lines := con.wrap([]string{"CSCI100", "CSCI200", "CSCI300", "CSCI400", "CSCI500"})
	want := [][]string{
		{"CSCI100", "CSCI200"},
		{"CSCI300", "CSCI400"},
		{"CSCI500"},
	}
	if diff := cmp.Diff(want, lines); diff != "" {
		t.Errorf("wrap mismatch (-want +got):\n%s", diff)
	}
}

func TestOverlongPrereqGetsOwnLine(t *testing.T) {
	con := plainConsole(tabWidth + 5)
	lines := con.wrap([]string{"AB", "VERYLONGIDENTIFIER", "CD"})
	want := [][]string{{"AB"}, {"VERYLONGIDENTIFIER"}, {"CD"}}
	if diff := cmp.Diff(want, lines); diff != "" {
		t.Errorf("wrap mismatch (-want +got):\n%s", diff)
	}
}

func TestWideCharactersCount(t *testing.T) {
	con := plainConsole(tabWidth + 10)
	// each ideograph occupies two positions
	if w := con.width("数学"); w != 4 {
		t.Errorf("expected width 4 for two ideographs, got %d", w)
	}
	lines := con.wrap([]string{"数学一", "数学二"})
	if len(lines) != 2 {
		t.Errorf("expected wide identifiers on separate lines, got %v", lines)
	}
}

func TestPrintCatalog(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "coursetree")
	defer teardown()
	//
	tree := coursetree.New()
	tree.Insert(coursetree.Course{ID: "CSCI200", Title: "Data Structures", Prereqs: []string{"CSCI101"}})
	tree.Insert(coursetree.Course{ID: "CSCI100", Title: "Introduction to Computer Science"})
	con := plainConsole(80)
	out := &bytes.Buffer{}
	n, err := con.PrintCatalog(out, tree.All())
	if err != nil {
		t.Fatal(err)
	}
	if n != 2 {
		t.Errorf("expected 2 courses printed, got %d", n)
	}
	want := "CSCI100, Introduction to Computer Science\n" +
		"CSCI200, Data Structures\n\tPrerequisites: \n\tCSCI101\n"
	if diff := cmp.Diff(want, out.String()); diff != "" {
		t.Errorf("output mismatch (-want +got):\n%s", diff)
	}
}

func TestPrintNotFound(t *testing.T) {
	con := plainConsole(80)
	out := &bytes.Buffer{}
	if err := con.PrintNotFound(out, "CSCI999"); err != nil {
		t.Fatal(err)
	}
	if out.String() != "Course Id CSCI999 not found.\n" {
		t.Errorf("unexpected message %q", out.String())
	}
}

func TestDefaultPaletteWithoutColorIsPlain(t *testing.T) {
	saved := color.NoColor
	color.NoColor = true
	defer func() { color.NoColor = saved }()
	//
	con := NewConsole(nil, &Config{LineWidth: 80})
	out := &bytes.Buffer{}
	if err := con.PrintNotFound(out, "X"); err != nil {
		t.Fatal(err)
	}
	if strings.Contains(out.String(), "\x1b[") {
		t.Errorf("expected no escape sequences with color disabled, got %q", out.String())
	}
}

type failingWriter struct{ n int }

var errWrite = errors.New("write failed")

func (fw *failingWriter) Write(p []byte) (int, error) {
	fw.n++
	return 0, errWrite
}

func TestWriteErrorStopsOutput(t *testing.T) {
	con := plainConsole(80)
	fw := &failingWriter{}
	c := coursetree.Course{ID: "A", Title: "B", Prereqs: []string{"C"}}
	if err := con.PrintCourse(fw, c); !errors.Is(err, errWrite) {
		t.Errorf("expected write error, got %v", err)
	}
	if fw.n != 1 {
		t.Errorf("expected output to stop after first failed write, got %d writes", fw.n)
	}
}
