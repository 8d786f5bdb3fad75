package tree

import (
	"github.com/katalvlaran/algostep/event"
	"github.com/katalvlaran/algostep/stepper"
)

// Build inserts keys into a new tree of kind k in order.
// On cancellation it returns the tree built so far and stepper.ErrCancelled.
func Build(h *stepper.Handle, k Kind, keys []int) (*Tree, error) {
	t, err := New(k)
	if err != nil {
		return nil, err
	}
	for _, key := range keys {
		if _, err = t.Insert(h, key); err != nil {
			return t, err
		}
	}

	return t, nil
}

// Insert adds key and reports whether it was new.
//
// Complexity: O(height) comparisons; height is O(log n) for AVL and RedBlack.
func (t *Tree) Insert(h *stepper.Handle, key int) (bool, error) {
	// 1) Descend, read only.
	var parent *Node
	for n := t.Root; n != nil; {
		h.AddComparisons(1)
		if !h.Checkpoint(event.Event{
			Kind:    event.Visit,
			Target:  event.Tree,
			Mark:    event.Comparing,
			Indices: []int{n.Key},
			Values:  []int{key},
		}) {
			return false, stepper.ErrCancelled
		}
		switch {
		case key == n.Key:
			ev := event.Event{Kind: event.Highlight, Target: event.Tree, Mark: event.Clear, Indices: []int{key}, Label: LabelDuplicate}
			if !h.Checkpoint(ev) {
				return false, stepper.ErrCancelled
			}

			return false, nil
		case key < n.Key:
			parent, n = n, n.Left
		default:
			parent, n = n, n.Right
		}
	}

	// 2) Attach and rebalance; never abandoned half way.
	z := &Node{Key: key, parent: parent, height: 1}
	if t.kind == RedBlack {
		z.Color = Red
	}
	switch {
	case parent == nil:
		t.Root = z
	case key < parent.Key:
		parent.Left = z
	default:
		parent.Right = z
	}
	t.size++

	attach := event.Event{Kind: event.Commit, Target: event.Tree, Indices: []int{key}, Label: LabelAttach}
	if parent != nil {
		attach.Values = []int{parent.Key}
	}
	h.Suspend(attach)

	switch t.kind {
	case AVL:
		t.avlFixup(h, z)
	case RedBlack:
		t.rbFixup(h, z)
	}

	if h.Cancelled() {
		return true, stepper.ErrCancelled
	}

	return true, nil
}

func height(n *Node) int {
	if n == nil {
		return 0
	}

	return n.height
}

func (n *Node) update() {
	n.height = 1 + max(height(n.Left), height(n.Right))
}

func balance(n *Node) int {
	if n == nil {
		return 0
	}

	return height(n.Left) - height(n.Right)
}

// replace hangs y where x used to hang.
func (t *Tree) replace(x, y *Node) {
	y.parent = x.parent
	switch {
	case x.parent == nil:
		t.Root = y
	case x == x.parent.Left:
		x.parent.Left = y
	default:
		x.parent.Right = y
	}
}

// rotateLeft lifts x.Right above x and returns it.
func (t *Tree) rotateLeft(h *stepper.Handle, x *Node) *Node {
	y := x.Right
	x.Right = y.Left
	if y.Left != nil {
		y.Left.parent = x
	}
	t.replace(x, y)
	y.Left = x
	x.parent = y
	x.update()
	y.update()
	t.rotated(h, LabelRotateLeft, x, y)

	return y
}

// rotateRight lifts x.Left above x and returns it.
func (t *Tree) rotateRight(h *stepper.Handle, x *Node) *Node {
	y := x.Left
	x.Left = y.Right
	if y.Right != nil {
		y.Right.parent = x
	}
	t.replace(x, y)
	y.Right = x
	x.parent = y
	x.update()
	y.update()
	t.rotated(h, LabelRotateRight, x, y)

	return y
}

func (t *Tree) rotated(h *stepper.Handle, label string, x, y *Node) {
	if h.Cancelled() {
		return
	}
	h.AddSwaps(1)
	h.Suspend(event.Event{Kind: event.Highlight, Target: event.Tree, Mark: event.Pivot, Indices: []int{x.Key, y.Key}, Label: label})
}

func (t *Tree) recolored(h *stepper.Handle, nodes ...*Node) {
	if h.Cancelled() {
		return
	}
	ev := event.Event{Kind: event.Highlight, Target: event.Tree, Mark: event.Active, Label: LabelRecolor}
	for _, n := range nodes {
		c := 0
		if n.Color == Red {
			c = 1
		}
		ev.Indices = append(ev.Indices, n.Key)
		ev.Values = append(ev.Values, c)
	}
	h.Suspend(ev)
}

// avlFixup walks from z to the root restoring heights and balance.
func (t *Tree) avlFixup(h *stepper.Handle, z *Node) {
	for n := z.parent; n != nil; n = n.parent {
		n.update()
		switch bf := balance(n); {
		case bf > 1:
			if balance(n.Left) < 0 {
				t.rotateLeft(h, n.Left) // LR
			}
			n = t.rotateRight(h, n) // LL
		case bf < -1:
			if balance(n.Right) > 0 {
				t.rotateRight(h, n.Right) // RL
			}
			n = t.rotateLeft(h, n) // RR
		}
	}
}

func isRed(n *Node) bool { return n != nil && n.Color == Red }

// rbFixup restores the red-black properties after attaching the red node z.
func (t *Tree) rbFixup(h *stepper.Handle, z *Node) {
	for isRed(z.parent) {
		p := z.parent
		g := p.parent // exists: a red node is never the root
		if p == g.Left {
			if u := g.Right; isRed(u) {
				p.Color, u.Color, g.Color = Black, Black, Red
				t.recolored(h, p, u, g)
				z = g

				continue
			}
			if z == p.Right {
				z = p
				t.rotateLeft(h, z)
				p = z.parent
			}
			p.Color, g.Color = Black, Red
			t.recolored(h, p, g)
			t.rotateRight(h, g)
		} else {
			if u := g.Left; isRed(u) {
				p.Color, u.Color, g.Color = Black, Black, Red
				t.recolored(h, p, u, g)
				z = g

				continue
			}
			if z == p.Left {
				z = p
				t.rotateRight(h, z)
				p = z.parent
			}
			p.Color, g.Color = Black, Red
			t.recolored(h, p, g)
			t.rotateLeft(h, g)
		}
	}
	if isRed(t.Root) {
		t.Root.Color = Black
		t.recolored(h, t.Root)
	}
}
