package coursetree

import "iter"

// All returns an iterator over all courses in ascending ID order
// (left subtree, node, right subtree).
//
// Iteration is lazy and may be stopped early. Courses with equal IDs are
// yielded in insertion order. Every yielded course is a copy.
func (t *Tree) All() iter.Seq[Course] {
	return func(yield func(Course) bool) {
		if t.IsEmpty() {
			return
		}
		t.inOrder(func(n *node) bool {
			return yield(n.course.clone())
		})
	}
}

// Each visits all courses in ascending ID order.
//
// Iteration stops at the first callback error and returns that error to
// the caller.
func (t *Tree) Each(f func(Course) error) error {
	if t.IsEmpty() || f == nil {
		return nil
	}
	var err error
	t.inOrder(func(n *node) bool {
		err = f(n.course.clone())
		return err == nil
	})
	return err
}

// inOrder walks the nodes in-order with an explicit stack.
// Iteration stops early if fn returns false.
func (t *Tree) inOrder(fn func(*node) bool) {
	var stack []*node
	n := t.root
	for n != nil || len(stack) > 0 {
		for n != nil {
			stack = append(stack, n)
			n = n.left
		}
		n = stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !fn(n) {
			return
		}
		n = n.right
	}
}
