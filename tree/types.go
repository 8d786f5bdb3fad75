// Package tree builds binary search trees key by key, emitting a checkpoint for
// every node visited on the way down and for every structural change on the
// way back up.
//
// Three variants share one node type and one insertion path:
//
//	BST      - plain unbalanced binary search tree
//	AVL      - height balanced; LL, LR, RR and RL cases fixed with rotations
//	RedBlack - CLRS red-black insert fixup (recolor, rotate)
//
// Duplicate keys are ignored. Events target event.Tree and address nodes by
// key. Each key comparison on the search path is counted as a comparison and
// each rotation as a swap.
//
// An insertion has two phases. The descent only reads the tree and stops at
// its first cancelled checkpoint, leaving the tree unchanged. Attaching the new
// node and rebalancing happen as one unit: once started they always complete,
// without further suspension if the run is cancelled meanwhile. A tree
// therefore satisfies Validate after any cancellation.
package tree

import (
	"errors"
	"fmt"
)

// Kind selects the balancing scheme.
type Kind uint8

const (
	// BST never rebalances.
	BST Kind = iota
	// AVL keeps sibling subtree heights within one of each other.
	AVL
	// RedBlack keeps the red-black coloring invariants.
	RedBlack
)

// String implements fmt.Stringer.
func (k Kind) String() string {
	switch k {
	case BST:
		return "bst"
	case AVL:
		return "avl"
	case RedBlack:
		return "red-black"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// Color of a red-black node. Nodes of the other kinds stay Black.
type Color bool

const (
	Black Color = false
	Red   Color = true
)

// String implements fmt.Stringer.
func (c Color) String() string {
	if c == Red {
		return "red"
	}

	return "black"
}

// Event labels.
const (
	LabelAttach      = "attach"
	LabelDuplicate   = "duplicate"
	LabelRotateLeft  = "rotate-left"
	LabelRotateRight = "rotate-right"
	LabelRecolor     = "recolor"
)

// Sentinel errors reported by Validate.
var (
	ErrUnknownKind  = errors.New("tree: unknown kind")
	ErrOrder        = errors.New("tree: keys out of order")
	ErrParentLink   = errors.New("tree: inconsistent parent link")
	ErrUnbalanced   = errors.New("tree: AVL balance violated")
	ErrRedViolation = errors.New("tree: red node with red child")
	ErrRedRoot      = errors.New("tree: red root")
	ErrBlackHeight  = errors.New("tree: unequal black heights")
)

// Node is a tree node.
type Node struct {
	Key   int
	Left  *Node
	Right *Node
	Color Color

	parent *Node
	// height is maintained for AVL trees only; a leaf has height 1.
	height int
}

// Tree is a binary search tree of the given Kind. The zero value is an empty BST.
type Tree struct {
	Root *Node
	kind Kind
	size int
}

// New returns an empty tree of kind k.
func New(k Kind) (*Tree, error) {
	if k > RedBlack {
		return nil, fmt.Errorf("%w: %d", ErrUnknownKind, k)
	}

	return &Tree{kind: k}, nil
}

// Kind reports the balancing scheme.
func (t *Tree) Kind() Kind { return t.kind }

// Len returns the number of keys.
func (t *Tree) Len() int { return t.size }

// InOrder returns the keys in ascending order, or nil for an empty tree.
func (t *Tree) InOrder() []int {
	if t.size == 0 {
		return nil
	}
	out := make([]int, 0, t.size)
	var walk func(n *Node)
	walk = func(n *Node) {
		if n == nil {
			return
		}
		walk(n.Left)
		out = append(out, n.Key)
		walk(n.Right)
	}
	walk(t.Root)

	return out
}

// Height returns the number of nodes on the longest root-to-leaf path.
func (t *Tree) Height() int {
	var depth func(n *Node) int
	depth = func(n *Node) int {
		if n == nil {
			return 0
		}

		return 1 + max(depth(n.Left), depth(n.Right))
	}

	return depth(t.Root)
}
