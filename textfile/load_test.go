package textfile

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

const advising = "\xEF\xBB\xBFMATH201,Discrete Mathematics\n" +
	"CSCI300,Introduction to Algorithms,CSCI200,MATH201\n" +
	"CSCI350,Operating Systems,CSCI300\n" +
	"CSCI101,Introduction to Programming in C++,CSCI100\n" +
	"CSCI100,Introduction to Computer Science\n" +
	"CSCI301,Advanced Programming in C++,CSCI101\n" +
	"CSCI400,Large Software Development,CSCI301,CSCI350\n" +
	"CSCI200,Data Structures,CSCI101\n" +
	"no delimiter in this line\n"

func writeCatalog(t *testing.T, content string) string {
	t.Helper()
	name := filepath.Join(t.TempDir(), "catalog.txt")
	if err := os.WriteFile(name, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return name
}

func TestLoad(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "coursetree")
	defer teardown()
	//
	tree, stats, err := Load(writeCatalog(t, advising))
	if err != nil {
		t.Fatal(err.Error())
	}
	if diff := cmp.Diff(Stats{Lines: 9, Inserted: 8, Skipped: 1}, stats); diff != "" {
		t.Errorf("stats mismatch (-want +got):\n%s", diff)
	}
	if tree.Len() != 8 {
		t.Errorf("expected 8 courses in tree, got %d", tree.Len())
	}
	if err := tree.Check(); err != nil {
		t.Error(err)
	}
	c, ok := tree.Search("CSCI400")
	if !ok {
		t.Fatalf("expected to find CSCI400")
	}
	if diff := cmp.Diff([]string{"CSCI301", "CSCI350"}, c.Prereqs); diff != "" {
		t.Errorf("prerequisites mismatch (-want +got):\n%s", diff)
	}
	var first string
	for c := range tree.All() {
		first = c.ID
		break
	}
	if first != "CSCI100" {
		t.Errorf("expected CSCI100 to be enumerated first, got %q", first)
	}
}

func TestLoadEmptyFile(t *testing.T) {
	tree, stats, err := Load(writeCatalog(t, ""))
	if err != nil {
		t.Fatal(err.Error())
	}
	if tree == nil || !tree.IsEmpty() || stats.Lines != 0 {
		t.Errorf("expected empty tree for empty file, got %v / %+v", tree, stats)
	}
}

func TestLoadMissingFile(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "coursetree")
	defer teardown()
	//
	tree, _, err := Load(filepath.Join(t.TempDir(), "does-not-exist.txt"))
	if err == nil {
		t.Fatalf("expected error for missing file")
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected wrapped os.ErrNotExist, got %v", err)
	}
	if tree != nil {
		t.Errorf("expected no tree on failure")
	}
}

func TestLoadDirectory(t *testing.T) {
	tree, _, err := Load(t.TempDir())
	if !errors.Is(err, ErrNotRegularFile) {
		t.Errorf("expected ErrNotRegularFile, got %v", err)
	}
	if tree != nil {
		t.Errorf("expected no tree on failure")
	}
}

func TestLoaderEvents(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "coursetree")
	defer teardown()
	//
	loader := NewLoader()
	events, ok := loader.Subscribe(context.Background(), 16)
	if !ok {
		t.Fatalf("expected subscription to succeed")
	}
	received := make(chan []Event)
	go func() {
		var evs []Event
		for m := range events {
			evs = append(evs, m.(Event))
		}
		received <- evs
	}()
	tree, stats, err := loader.Load(writeCatalog(t, advising))
	loader.Close()
	if err != nil {
		t.Fatal(err.Error())
	}
	var evs []Event
	select {
	case evs = <-received:
	case <-time.After(5 * time.Second):
		t.Fatalf("expected event channel to be closed after loader.Close()")
	}
	t.Logf("received %d events for %d lines", len(evs), stats.Lines)
	if len(evs) > stats.Lines {
		t.Errorf("expected at most one event per line, got %d for %d lines", len(evs), stats.Lines)
	}
	for _, ev := range evs {
		switch ev.Kind {
		case Inserted:
			if _, ok := tree.Search(ev.Course.ID); !ok {
				t.Errorf("event for line %d names course %q which is not in the tree", ev.Line, ev.Course.ID)
			}
		case Skipped:
			if ev.Line != 9 {
				t.Errorf("expected line 9 to be the skipped one, got %d", ev.Line)
			}
		default:
			t.Errorf("unexpected event kind %v", ev.Kind)
		}
	}
}

func TestZeroLoaderDoesNotBroadcast(t *testing.T) {
	var loader Loader
	if _, ok := loader.Subscribe(context.Background(), 1); ok {
		t.Errorf("expected zero loader not to accept subscriptions")
	}
	loader.Close()
}
