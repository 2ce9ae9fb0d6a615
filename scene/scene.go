// Package scene is the parsed vector scene consumed by the tessellator:
// a tree of groups and path shapes, each path carrying its outline, its
// optional fill and stroke, and its absolute transform.
//
// Trees are built by a parser (see package svg) or by hand:
//
//	tree := scene.NewTree(scene.ViewBox{Width: 100, Height: 100})
//	p := scene.NewPath().Rectangle(10, 10, 80, 80)
//	f := scene.DefaultFill()
//	p.Fill = &f
//	tree.Root.Append(p)
//
// A tree is read-only while it is being tessellated.
package scene

import "iter"

// NodeKind discriminates the node variants of a Tree.
type NodeKind uint8

const (
	// KindGroup is a container node.
	KindGroup NodeKind = iota
	// KindPath is a drawable shape.
	KindPath
)

// String returns a human-readable name for the kind.
func (k NodeKind) String() string {
	switch k {
	case KindGroup:
		return "Group"
	case KindPath:
		return "Path"
	default:
		return "Unknown"
	}
}

// Node is a tree node: a *Group or a *Path.
type Node interface {
	Kind() NodeKind
}

// Group is a container node. Its Transform is absolute like every other
// node transform; children already have it folded in.
type Group struct {
	ID        string
	Transform Transform
	Children  []Node
}

// NewGroup creates an empty group with an identity transform.
func NewGroup() *Group {
	return &Group{Transform: Identity()}
}

// Kind returns KindGroup.
func (g *Group) Kind() NodeKind { return KindGroup }

// Append adds children in drawing order.
func (g *Group) Append(nodes ...Node) *Group {
	g.Children = append(g.Children, nodes...)
	return g
}

// ViewBox is the user-space rectangle mapped onto the viewport.
type ViewBox struct {
	X, Y          float64
	Width, Height float64
}

// Tree is a complete scene.
type Tree struct {
	// ViewBox is the user-space area of interest.
	ViewBox ViewBox

	// Width and Height are the intrinsic viewport size.
	Width, Height float64

	// Root holds every top-level node.
	Root *Group
}

// NewTree creates an empty tree whose viewport matches the view box.
func NewTree(vb ViewBox) *Tree {
	return &Tree{
		ViewBox: vb,
		Width:   vb.Width,
		Height:  vb.Height,
		Root:    NewGroup(),
	}
}

// Descendants iterates over every node below the root in depth-first
// pre-order, which is also drawing order.
func (t *Tree) Descendants() iter.Seq[Node] {
	return func(yield func(Node) bool) {
		if t == nil || t.Root == nil {
			return
		}
		walk(t.Root, yield)
	}
}

// walk reports false when the consumer stopped early.
func walk(g *Group, yield func(Node) bool) bool {
	for _, child := range g.Children {
		if child == nil {
			continue
		}
		if !yield(child) {
			return false
		}
		if sub, ok := child.(*Group); ok {
			if !walk(sub, yield) {
				return false
			}
		}
	}
	return true
}

// Paths iterates over the path nodes of the tree in drawing order.
func (t *Tree) Paths() iter.Seq[*Path] {
	return func(yield func(*Path) bool) {
		for n := range t.Descendants() {
			if p, ok := n.(*Path); ok {
				if !yield(p) {
					return
				}
			}
		}
	}
}

// PathCount returns the number of path nodes in the tree.
func (t *Tree) PathCount() int {
	n := 0
	for range t.Paths() {
		n++
	}
	return n
}
