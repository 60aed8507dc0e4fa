package coursetree

/*
BSD 3-Clause License

Copyright (c) Norbert Pillmayer

Please refer to the License file in the repository root.

*/

// node is a tree node. It owns its course record and its children outright;
// nodes are never handed out to clients.
type node struct {
	course      Course
	left, right *node
}

// Tree is an unbalanced binary search tree of courses, ordered by course ID.
//
// A tree created by
//
//	&Tree{}
//
// is a valid, empty tree. Trees are not safe for concurrent use.
//
//	Operation     |   average       |  degenerate
//	--------------+-----------------+------------
//	Insert        |   O(log n)      |   O(n)
//	Search        |   O(log n)      |   O(n)
//	All           |   O(n)          |   O(n)
//	Teardown      |   O(n)          |   O(n)
type Tree struct {
	root *node
	size int
}

// New creates an empty tree.
func New() *Tree {
	return &Tree{}
}

// IsEmpty reports whether the tree holds no courses.
func (t *Tree) IsEmpty() bool {
	return t == nil || t.root == nil
}

// Len returns the number of courses in the tree, duplicates included.
func (t *Tree) Len() int {
	if t == nil {
		return 0
	}
	return t.size
}

// Height returns the number of nodes on the longest root-to-leaf path.
// An empty tree has height 0.
func (t *Tree) Height() int {
	if t.IsEmpty() {
		return 0
	}
	type level struct {
		n     *node
		depth int
	}
	height := 0
	stack := []level{{t.root, 1}}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		height = max(height, top.depth)
		if top.n.left != nil {
			stack = append(stack, level{top.n.left, top.depth + 1})
		}
		if top.n.right != nil {
			stack = append(stack, level{top.n.right, top.depth + 1})
		}
	}
	return height
}

// Insert adds a course to the tree. Insert never fails.
//
// Starting at the root, a course with an ID less than the node's ID descends
// left, anything else (equal or greater) descends right, until a free child
// slot is found. Equal IDs are therefore stored as right descendants and do
// not replace an existing record (see Search).
//
// The tree stores a copy of c.
func (t *Tree) Insert(c Course) {
	assert(t != nil, "Insert called for nil tree")
	leaf := &node{course: c.clone()}
	t.size++
	if t.root == nil {
		t.root = leaf
		return
	}
	n := t.root
	for {
		if c.ID < n.course.ID {
			if n.left == nil {
				n.left = leaf
				return
			}
			n = n.left
		} else {
			if n.right == nil {
				n.right = leaf
				return
			}
			n = n.right
		}
	}
}

// Search looks up the course with a given ID. If no such course exists,
// Search returns ok=false; this is a normal outcome, not an error.
//
// At every node Search compares the node's ID with id. It continues left
// if the node's ID is greater, and right if it is less. On equality it stops.
// As Insert routes equal IDs to the right, a course inserted with an
// already present ID is shadowed by the earlier one and will not be returned.
//
// The returned course is a copy; modifying it does not alter the tree.
func (t *Tree) Search(id string) (c Course, ok bool) {
	if t.IsEmpty() {
		return Course{}, false
	}
	n := t.root
	for n != nil {
		if n.course.ID == id {
			return n.course.clone(), true
		}
		if n.left != nil && n.course.ID > id {
			n = n.left
		} else if n.right != nil && n.course.ID < id {
			n = n.right
		} else {
			n = nil
		}
	}
	tracer().Debugf("course %q not found", id)
	return Course{}, false
}

// Teardown releases every node of the tree exactly once and returns the
// number of nodes released. Afterwards the tree is empty and may be re-used.
//
// Nodes are released in post-order (children before their parent).
func (t *Tree) Teardown() int {
	if t.IsEmpty() {
		return 0
	}
	// every frame remembers which of its children have been descended into
	const (
		descendLeft = iota
		descendRight
		release
	)
	type frame struct {
		n    *node
		step int
	}
	released := 0
	stack := []frame{{n: t.root, step: descendLeft}}
	for len(stack) > 0 {
		top := len(stack) - 1
		n := stack[top].n
		switch stack[top].step {
		case descendLeft:
			stack[top].step = descendRight
			if n.left != nil {
				stack = append(stack, frame{n: n.left})
			}
		case descendRight:
			stack[top].step = release
			if n.right != nil {
				stack = append(stack, frame{n: n.right})
			}
		default:
			stack = stack[:top]
			n.course = Course{}
			n.left, n.right = nil, nil
			released++
		}
	}
	assert(released == t.size, "Teardown: released node count differs from tree size")
	tracer().Debugf("tree teardown released %d nodes", released)
	t.root = nil
	t.size = 0
	return released
}
