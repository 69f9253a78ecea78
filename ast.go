package jsonls

// Range is a half-open byte-offset span into the source text: [Start, End).
type Range struct {
	Start int
	End   int
}

// Contains reports whether offset lies within the range. When
// endInclusive is true, offset == End also counts.
func (r Range) Contains(offset int, endInclusive bool) bool {
	if endInclusive {
		return offset >= r.Start && offset <= r.End
	}
	return offset >= r.Start && offset < r.End
}

// NodeKind is the tag of the AST sum type.
type NodeKind int

const (
	KindNull NodeKind = iota
	KindBoolean
	KindNumber
	KindString
	KindArray
	KindObject
	KindProperty
)

func (k NodeKind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBoolean:
		return "boolean"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	case KindProperty:
		return "property"
	default:
		return "unknown"
	}
}

// Location is a path segment from a node's parent: either a property
// name (PropertyName, set on property nodes), an array index (IsIndex,
// set on array items), or absent (the root, and the key and value
// children of a property).
type Location struct {
	PropertyName string
	Index        int
	IsIndex      bool
}

// Node is a position-annotated AST node. It is a tagged union over
// NodeKind: only the fields relevant to Kind are meaningful.
//
// Parent is a non-owning back-reference; the tree itself owns its
// children downward. There are no cycles.
type Node struct {
	Kind   NodeKind
	Start  int
	End    int
	Parent *Node

	// Location is this node's path segment from Parent. Absent for the
	// root and for the key and value children of a property (the
	// property's own Location carries that).
	Location Location
	hasLoc   bool

	// boolean
	BoolValue bool

	// number
	NumValue  float64
	IsInteger bool

	// string
	StrValue string
	IsKey    bool

	// array
	Items []*Node

	// object
	Properties []*Node

	// property
	PropertyKey   *Node
	PropertyValue *Node
	ColonOffset   int
	HasColon      bool
}

func (n *Node) Range() Range { return Range{n.Start, n.End} }

// HasLocation reports whether Location is meaningful for this node.
func (n *Node) HasLocation() bool { return n.hasLoc }

func (n *Node) setIndexLocation(i int) {
	n.Location = Location{Index: i, IsIndex: true}
	n.hasLoc = true
}

func (n *Node) setPropertyLocation(name string) {
	n.Location = Location{PropertyName: name}
	n.hasLoc = true
}

// Children returns this node's direct AST children in source order.
// Property nodes yield key then value (if present).
func (n *Node) Children() []*Node {
	switch n.Kind {
	case KindArray:
		return n.Items
	case KindObject:
		return n.Properties
	case KindProperty:
		if n.PropertyValue != nil {
			return []*Node{n.PropertyKey, n.PropertyValue}
		}
		return []*Node{n.PropertyKey}
	default:
		return nil
	}
}
