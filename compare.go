package packet

import (
	"cmp"
	"slices"
)

// Ordering is the result of comparing two nodes.
type Ordering int

// Ordering values follow the sign convention of cmp.Compare.
const (
	Less    Ordering = -1
	Equal   Ordering = 0
	Greater Ordering = 1
)

// String returns the name of the ordering.
func (o Ordering) String() string {
	switch {
	case o < 0:
		return "less"
	case o > 0:
		return "greater"
	default:
		return "equal"
	}
}

// Compare orders two nodes.
//
// Integers compare numerically. Lists compare pairwise from the left; the
// first differing pair decides, and a strict prefix sorts first. An integer
// compared with a list is treated as a single-element list holding it.
// A nil node sorts before any other node.
func Compare(a, b *Node) Ordering {
	if a == b {
		return Equal
	}
	if a == nil {
		return Less
	}
	if b == nil {
		return Greater
	}

	switch {
	case a.kind == KindInteger && b.kind == KindInteger:
		return Ordering(cmp.Compare(a.value, b.value))
	case a.kind == KindList && b.kind == KindList:
		return compareLists(a.children, b.children)
	case a.kind == KindList:
		return compareListInt(a.children, b)
	default:
		return -compareListInt(b.children, a)
	}
}

// Compare is the method form of Compare.
func (n *Node) Compare(other *Node) Ordering {
	return Compare(n, other)
}

// Before reports whether a sorts strictly before b.
func Before(a, b *Node) bool {
	return Compare(a, b) == Less
}

// Sort sorts nodes in ascending order.
func Sort(nodes []*Node) {
	slices.SortFunc(nodes, compareFunc)
}

// SortStable sorts nodes in ascending order, keeping equal nodes in their original order.
func SortStable(nodes []*Node) {
	slices.SortStableFunc(nodes, compareFunc)
}

// IsSorted reports whether nodes are in ascending order.
func IsSorted(nodes []*Node) bool {
	return slices.IsSortedFunc(nodes, compareFunc)
}

// compareFunc adapts Compare to the slices package.
func compareFunc(a, b *Node) int {
	return int(Compare(a, b))
}

// compareLists compares two child sequences lexicographically.
func compareLists(a, b []*Node) Ordering {
	for i := range min(len(a), len(b)) {
		if c := Compare(a[i], b[i]); c != Equal {
			return c
		}
	}

	return Ordering(cmp.Compare(len(a), len(b)))
}

// compareListInt compares a list with an integer promoted to [v].
// The promoted list is never materialized.
func compareListInt(list []*Node, v *Node) Ordering {
	if len(list) == 0 {
		return Less
	}
	if c := Compare(list[0], v); c != Equal {
		return c
	}
	if len(list) > 1 {
		return Greater
	}

	return Equal
}
