package vnode

// VKind is the node type discriminator.
type VKind uint8

const (
	KindElement   VKind = iota // <div>, <button>, etc.
	KindText                   // Plain text node
	KindFragment               // Grouping without wrapper
	KindSuspended              // Placeholder for pending async content
	KindComponent              // Type-erased user component
)

// String returns the string representation of the VKind.
func (k VKind) String() string {
	switch k {
	case KindElement:
		return "Element"
	case KindText:
		return "Text"
	case KindFragment:
		return "Fragment"
	case KindSuspended:
		return "Suspended"
	case KindComponent:
		return "Component"
	default:
		return "Unknown"
	}
}

// VNode is one position in the virtual UI tree. It is a tagged value:
// exactly one payload field is meaningful, selected by Kind.
//
// A VNode is five words and safe to copy; the Element, Fragment, and
// Component payloads are arena-owned and shared between copies. Copying a
// VNode never duplicates its subtree.
type VNode struct {
	Kind VKind
	El   *VElement   // KindElement
	Frag *VFragment  // KindFragment
	Comp *VComponent // KindComponent
	Text VText       // KindText, inline value payload
}

// Clone returns a shallow copy. Element, Fragment, and Component clones
// reference the same arena payload as the original; a Text clone carries
// the same string and the same mount cell, so a mount written through one
// copy is visible through all of them. Suspended has no payload.
func (n VNode) Clone() VNode {
	return n
}

// Key returns the node's reconciliation key. Text and Suspended nodes are
// never individually keyed and always report KeyNone, as does a node with
// no payload (the zero VNode has Kind KindElement and a nil El).
func (n VNode) Key() Key {
	switch n.Kind {
	case KindElement:
		if n.El == nil {
			return KeyNone
		}
		return n.El.Key
	case KindFragment:
		if n.Frag == nil {
			return KeyNone
		}
		return n.Frag.Key
	case KindComponent:
		if n.Comp == nil {
			return KeyNone
		}
		return n.Comp.Key
	default:
		return KeyNone
	}
}

// IsZero reports whether n is the zero VNode. The zero value carries no
// payload and is used by tree builders as "render nothing"; constructors
// never produce it.
func (n VNode) IsZero() bool {
	return n == VNode{}
}

// Suspended returns the placeholder node for a subtree whose real content
// depends on unfinished asynchronous work. It carries no payload and no
// key; the scheduler replaces it once the pending work resolves.
func Suspended() VNode {
	return VNode{Kind: KindSuspended}
}
