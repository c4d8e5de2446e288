package packet

import (
	"fmt"
	"slices"
)

// Kind represents the variant of a Node.
type Kind int

const (
	// KindInteger indicates an integer leaf.
	KindInteger Kind = iota
	// KindList indicates an ordered list of child nodes.
	KindList
)

// String returns the name of the kind.
func (k Kind) String() string {
	switch k {
	case KindInteger:
		return "integer"
	case KindList:
		return "list"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Node is a packet value: either an integer leaf or an ordered list of nodes.
//
// Trees returned by Parse are never modified by this package, and may be read
// from multiple goroutines. Append exists for programmatic construction only.
//
// Every node has at most one parent: a list exclusively owns its children,
// so trees never share subtrees and never contain cycles.
type Node struct {
	children []*Node // Children of a list node
	value    int32   // Value of an integer node
	kind     Kind    // Node variant
	attached bool    // Node is a child of some list
}

// Int creates an integer leaf.
func Int(v int32) *Node {
	return &Node{kind: KindInteger, value: v}
}

// Ints creates a list of integer leaves.
func Ints(vs ...int32) *Node {
	n := &Node{kind: KindList, children: make([]*Node, 0, len(vs))}
	for _, v := range vs {
		n.children = append(n.children, &Node{kind: KindInteger, value: v, attached: true})
	}

	return n
}

// List creates a list from already built nodes.
// It panics if any child is nil, appears twice, or already belongs to a list.
func List(children ...*Node) *Node {
	n := &Node{kind: KindList, children: make([]*Node, 0, len(children))}
	for _, c := range children {
		if err := n.Append(c); err != nil {
			panic(err)
		}
	}

	return n
}

// Append adds child to the end of a list node.
//
// The child must not already belong to a list, and n must not be the child
// or one of its descendants.
func (n *Node) Append(child *Node) error {
	switch {
	case n == nil:
		return fmt.Errorf("%w: nil receiver", ErrInvalidAppend)
	case n.kind != KindList:
		return fmt.Errorf("%w: cannot add a child to %s node", ErrInvalidAppend, n.kind)
	case child == nil:
		return fmt.Errorf("%w: nil child", ErrInvalidAppend)
	case child.attached:
		return fmt.Errorf("%w: child already belongs to a list", ErrInvalidAppend)
	case child.contains(n):
		return fmt.Errorf("%w: node cannot contain itself", ErrInvalidAppend)
	}

	child.attached = true
	n.children = append(n.children, child)
	return nil
}

// contains reports whether target is n or one of its descendants.
func (n *Node) contains(target *Node) bool {
	stack := []*Node{n}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if top == target {
			return true
		}
		stack = append(stack, top.children...)
	}

	return false
}

// Kind returns the variant of the node. The node must not be nil.
func (n *Node) Kind() Kind {
	return n.kind
}

// IsInt reports whether the node is an integer leaf.
func (n *Node) IsInt() bool {
	return n != nil && n.kind == KindInteger
}

// IsList reports whether the node is a list.
func (n *Node) IsList() bool {
	return n != nil && n.kind == KindList
}

// Value returns the integer value. It is 0 for lists and nil.
func (n *Node) Value() int32 {
	if n == nil {
		return 0
	}

	return n.value
}

// Len returns the number of children. It is 0 for integers.
func (n *Node) Len() int {
	if n == nil {
		return 0
	}

	return len(n.children)
}

// At returns the i-th child. It panics if n is nil, an integer, or i is out of range.
func (n *Node) At(i int) *Node {
	return n.children[i]
}

// Children returns a copy of the child slice.
func (n *Node) Children() []*Node {
	if n == nil {
		return nil
	}

	return slices.Clone(n.children)
}

// Equal reports whether n and other are structurally equal.
func (n *Node) Equal(other *Node) bool {
	if n == other {
		return true
	}
	if n == nil || other == nil {
		return false
	}
	if n.kind != other.kind {
		return false
	}
	if n.kind == KindInteger {
		return n.value == other.value
	}

	return slices.EqualFunc(n.children, other.children, (*Node).Equal)
}

// Clone returns a deep copy of the node.
func (n *Node) Clone() *Node {
	if n == nil {
		return nil
	}

	out := &Node{kind: n.kind, value: n.value}
	if n.kind == KindList {
		out.children = make([]*Node, len(n.children))
		for i, c := range n.children {
			cc := c.Clone()
			cc.attached = true
			out.children[i] = cc
		}
	}

	return out
}

// Depth returns the maximum list nesting depth.
// An integer has depth 0 and an empty list has depth 1.
func (n *Node) Depth() int {
	if n == nil || n.kind == KindInteger {
		return 0
	}

	d := 0
	for _, c := range n.children {
		d = max(d, c.Depth())
	}

	return d + 1
}
