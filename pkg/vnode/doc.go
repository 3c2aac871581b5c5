// Package vnode defines the virtual node representation for Arbor.
//
// VNodes are lightweight, cheaply-constructed values describing one position
// in the UI tree. Element, Fragment, and Component payloads live in the
// render pass arena and are referenced, never copied; a VNode itself is a
// small value that can be duplicated freely without touching its subtree.
//
// The tree built here is inert: this package does not diff, mount, or
// schedule anything. The reconciler writes physical-node identity into the
// per-node mount cells after mounting, the dispatch runtime resolves
// listeners through the scope registry, and the scheduler drives component
// render shims. Those collaborators are external; only their in-memory
// contracts live here.
//
// # Construction
//
// A Builder pairs an arena with a scope and is the entry point for building
// trees:
//
//	b := vnode.NewBuilder(a, scope)
//	n := b.Element("div", vnode.KeyNone, nil, attrs, children, "")
//
// Components are generic over their props type and are constructed with
// NewComponent, which erases the concrete type behind a tagged pointer.
package vnode
