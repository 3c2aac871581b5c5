// Package el is the element DSL for building virtual trees.
//
// Tag factories take the pass's builder followed by variadic arguments and
// return a node:
//
//	el.Div(b, el.Class("card"), el.ID("main"),
//	    el.H1(b, "Title"),
//	    el.P(b, "Content"),
//	    el.OnClick(b, handler),
//	)
//
// Arguments can be: nil, Attribute, []Attribute, Listener, []Listener,
// VNode, []VNode, string (shorthand for a text child), Key, or Namespace.
// Zero VNodes are skipped, which makes conditional helpers like If and
// When compose without special cases.
package el
