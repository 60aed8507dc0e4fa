package coursetree

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestCheckEmptyTree(t *testing.T) {
	if err := New().Check(); err != nil {
		t.Fatalf("expected empty tree to be valid, got %v", err)
	}
	var tree *Tree
	if err := tree.Check(); !errors.Is(err, ErrIllegalArguments) {
		t.Errorf("expected ErrIllegalArguments for nil tree, got %v", err)
	}
}

func TestCheckDetectsMisplacedNode(t *testing.T) {
	tree := sampleTree()
	if err := tree.Check(); err != nil {
		t.Fatalf("expected sample tree to validate, got %v", err)
	}
	// CS000 < CS300, so it must not live in the root's right subtree
	tree.root.right.left = &node{course: Course{ID: "CS000", Title: "misplaced"}}
	if err := tree.Check(); !errors.Is(err, ErrInvariant) {
		t.Errorf("expected ErrInvariant, got %v", err)
	}
}

func TestCheckDetectsSizeMismatch(t *testing.T) {
	tree := sampleTree()
	tree.size++
	if err := tree.Check(); !errors.Is(err, ErrInvariant) {
		t.Errorf("expected ErrInvariant for size mismatch, got %v", err)
	}
}

func TestTree2Dot(t *testing.T) {
	tree := New()
	tree.Insert(Course{ID: "CS200", Title: "Data \"Structures\""})
	tree.Insert(Course{ID: "CS100", Title: "Intro"})
	var buf bytes.Buffer
	Tree2Dot(tree, &buf)
	out := buf.String()
	t.Logf("\n%s", out)
	if !strings.HasPrefix(out, "strict digraph {") || !strings.HasSuffix(out, "}\n") {
		t.Errorf("expected DOT digraph frame")
	}
	if !strings.Contains(out, `CS200\nData \"Structures\"`) {
		t.Errorf("expected escaped node label for CS200")
	}
	// in-order numbering: CS100 is 1, root CS200 is 2
	if !strings.Contains(out, "\"2\" -> \"1\";") {
		t.Errorf("expected edge from root to its left child")
	}
	// root: 1 real child + 1 empty slot; leaf CS100: 2 empty slots
	if n := strings.Count(out, "->"); n != 4 {
		t.Errorf("expected 4 edges, got %d", n)
	}
}
