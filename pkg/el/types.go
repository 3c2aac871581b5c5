package el

import "github.com/vango-dev/arbor/pkg/vnode"

// Type aliases for the node primitives used by the DSL.
type VNode = vnode.VNode
type VKind = vnode.VKind
type Key = vnode.Key
type Attribute = vnode.Attribute
type Listener = vnode.Listener
type Builder = vnode.Builder

// Namespace selects a non-default element namespace when passed to a tag
// factory (e.g. SVG).
type Namespace string

// SVGNamespace is the namespace for svg elements and their descendants.
const SVGNamespace Namespace = "http://www.w3.org/2000/svg"

// MathMLNamespace is the namespace for math elements.
const MathMLNamespace Namespace = "http://www.w3.org/1998/Math/MathML"
