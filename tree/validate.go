package tree

import "fmt"

// Validate checks the search-tree ordering, parent links and the invariants of
// the tree's Kind.
func (t *Tree) Validate() error {
	if t.Root != nil && t.Root.parent != nil {
		return fmt.Errorf("%w: root has a parent", ErrParentLink)
	}
	keys := t.InOrder()
	for i := 1; i < len(keys); i++ {
		if keys[i-1] >= keys[i] {
			return fmt.Errorf("%w: %d before %d", ErrOrder, keys[i-1], keys[i])
		}
	}
	if _, err := t.check(t.Root); err != nil {
		return err
	}
	if t.kind == RedBlack && isRed(t.Root) {
		return ErrRedRoot
	}

	return nil
}

// check verifies the subtree at n and returns its height: the AVL height
// for AVL trees, the black height for red-black trees and 0 otherwise.
func (t *Tree) check(n *Node) (int, error) {
	if n == nil {
		return 0, nil
	}
	for _, c := range []*Node{n.Left, n.Right} {
		if c != nil && c.parent != n {
			return 0, fmt.Errorf("%w: child %d of %d", ErrParentLink, c.Key, n.Key)
		}
	}
	lh, err := t.check(n.Left)
	if err != nil {
		return 0, err
	}
	rh, err := t.check(n.Right)
	if err != nil {
		return 0, err
	}

	switch t.kind {
	case AVL:
		if lh-rh > 1 || rh-lh > 1 {
			return 0, fmt.Errorf("%w: at %d (%d vs %d)", ErrUnbalanced, n.Key, lh, rh)
		}

		return 1 + max(lh, rh), nil
	case RedBlack:
		if isRed(n) && (isRed(n.Left) || isRed(n.Right)) {
			return 0, fmt.Errorf("%w: at %d", ErrRedViolation, n.Key)
		}
		if lh != rh {
			return 0, fmt.Errorf("%w: at %d (%d vs %d)", ErrBlackHeight, n.Key, lh, rh)
		}
		if n.Color == Black {
			lh++
		}

		return lh, nil
	default:
		return 0, nil
	}
}
