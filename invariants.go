package coursetree

import "fmt"

// Check validates structural tree invariants:
//
//   - every ID in a node's left subtree is less than the node's ID,
//   - every ID in a node's right subtree is greater than or equal to it,
//   - the number of reachable nodes matches Len.
//
// It is meant to be used in tests.
func (t *Tree) Check() error {
	if t == nil {
		return fmt.Errorf("%w: nil tree", ErrIllegalArguments)
	}
	if t.root == nil {
		if t.size != 0 {
			return fmt.Errorf("%w: empty tree must have size=0, has %d", ErrInvariant, t.size)
		}
		return nil
	}
	// every node carries the open key interval inherited from its ancestors
	type bounded struct {
		n      *node
		lo, hi string
		hasLo  bool
		hasHi  bool
	}
	count := 0
	stack := []bounded{{n: t.root}}
	for len(stack) > 0 {
		b := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		count++
		id := b.n.course.ID
		if b.hasLo && id < b.lo {
			return fmt.Errorf("%w: %q sorted right of %q", ErrInvariant, id, b.lo)
		}
		if b.hasHi && id >= b.hi {
			return fmt.Errorf("%w: %q sorted left of %q", ErrInvariant, id, b.hi)
		}
		if b.n.left != nil {
			stack = append(stack, bounded{n: b.n.left, lo: b.lo, hasLo: b.hasLo, hi: id, hasHi: true})
		}
		if b.n.right != nil {
			stack = append(stack, bounded{n: b.n.right, lo: id, hasLo: true, hi: b.hi, hasHi: b.hasHi})
		}
	}
	if count != t.size {
		return fmt.Errorf("%w: size mismatch (%d reachable, %d recorded)", ErrInvariant, count, t.size)
	}
	return nil
}
