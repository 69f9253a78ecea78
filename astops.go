package jsonls

// GetPath returns the sequence of path segments from the root down to
// n, skipping any node whose Location is absent (the root, and a
// property's key and value nodes).
func GetPath(n *Node) []Location {
	var segments []Location
	for cur := n; cur != nil; cur = cur.Parent {
		if cur.hasLoc {
			segments = append(segments, cur.Location)
		}
	}
	// segments were collected leaf-to-root; reverse in place.
	for i, j := 0, len(segments)-1; i < j; i, j = i+1, j-1 {
		segments[i], segments[j] = segments[j], segments[i]
	}
	return segments
}

// GetNodeFromOffset returns the deepest node whose range contains
// offset. When endInclusive is true, a node whose End equals offset
// still counts as containing it (used so that a cursor sitting right
// after a token still resolves to that token).
func GetNodeFromOffset(root *Node, offset int, endInclusive bool) *Node {
	if root == nil || !root.Range().Contains(offset, endInclusive) {
		return nil
	}
	return deepestContaining(root, offset, endInclusive)
}

func deepestContaining(n *Node, offset int, endInclusive bool) *Node {
	for _, child := range n.Children() {
		if child == nil {
			continue
		}
		// Children are in source order with disjoint ranges, so once a
		// child starts past offset, no later sibling can contain it.
		if child.Start > offset {
			break
		}
		if child.Range().Contains(offset, endInclusive) {
			return deepestContaining(child, offset, endInclusive)
		}
	}
	return n
}

// Visitor is invoked pre-order over the tree by Visit. Returning false
// prunes the subtree rooted at the node just visited: its children are
// skipped, but the traversal continues with later siblings.
type Visitor func(n *Node) bool

// Visit performs a pre-order traversal starting at n. Property nodes
// visit their key then their value. The overall return value is false
// if any visitor call returned false (something was pruned).
func Visit(n *Node, visit Visitor) bool {
	complete := true
	var walk func(*Node)
	walk = func(n *Node) {
		if n == nil {
			return
		}
		if !visit(n) {
			complete = false
			return
		}
		for _, child := range n.Children() {
			walk(child)
		}
	}
	walk(n)
	return complete
}

// GetValue projects the subtree rooted at n to a plain Go value:
// objects become map[string]any (properties with an absent value are
// omitted; duplicate keys resolve last-wins), arrays become []any, and
// scalars project to themselves.
func GetValue(n *Node) any {
	if n == nil {
		return nil
	}
	switch n.Kind {
	case KindNull:
		return nil
	case KindBoolean:
		return n.BoolValue
	case KindNumber:
		return n.NumValue
	case KindString:
		return n.StrValue
	case KindArray:
		out := make([]any, 0, len(n.Items))
		for _, item := range n.Items {
			out = append(out, GetValue(item))
		}
		return out
	case KindObject:
		out := make(map[string]any, len(n.Properties))
		for _, prop := range n.Properties {
			if prop.PropertyValue == nil {
				continue
			}
			out[prop.PropertyKey.StrValue] = GetValue(prop.PropertyValue)
		}
		return out
	case KindProperty:
		if n.PropertyValue == nil {
			return nil
		}
		return GetValue(n.PropertyValue)
	default:
		return nil
	}
}

// deepEqual reports the structural equality used by enum and const
// comparisons. Two values are equal iff both nil, both
// primitives of the same kind with equal value, both arrays of equal
// length with pairwise-equal elements, or both objects with equal key
// sets and pairwise-equal values (key order irrelevant).
func deepEqual(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	switch av := a.(type) {
	case bool:
		bv, ok := b.(bool)
		return ok && av == bv
	case float64:
		bv, ok := b.(float64)
		return ok && av == bv
	case string:
		bv, ok := b.(string)
		return ok && av == bv
	case []any:
		bv, ok := b.([]any)
		if !ok || len(av) != len(bv) {
			return false
		}
		for i := range av {
			if !deepEqual(av[i], bv[i]) {
				return false
			}
		}
		return true
	case map[string]any:
		bv, ok := b.(map[string]any)
		if !ok || len(av) != len(bv) {
			return false
		}
		for k, v := range av {
			bvv, ok := bv[k]
			if !ok || !deepEqual(v, bvv) {
				return false
			}
		}
		return true
	default:
		return false
	}
}
