package el

import "github.com/vango-dev/arbor/pkg/vnode"

// element builds an element node with the given tag from variadic arguments.
// Attributes, listeners, and children keep their argument order.
func element(b *Builder, tag string, args []any) VNode {
	var (
		key       = vnode.KeyNone
		namespace string
		attrs     []Attribute
		listeners []Listener
		children  []VNode
	)

	for _, arg := range args {
		switch v := arg.(type) {
		case nil:
			// Ignore nil (allows conditional attributes)

		case Attribute:
			if v.Name != "" {
				attrs = append(attrs, v)
			}

		case []Attribute:
			for _, a := range v {
				if a.Name != "" {
					attrs = append(attrs, a)
				}
			}

		case Listener:
			listeners = append(listeners, v)

		case []Listener:
			listeners = append(listeners, v...)

		case VNode:
			if !v.IsZero() {
				children = append(children, v)
			}

		case []VNode:
			for _, child := range v {
				if !child.IsZero() {
					children = append(children, child)
				}
			}

		case string:
			// Shorthand for a text child
			children = append(children, b.Text(v))

		case Key:
			key = v

		case Namespace:
			namespace = string(v)
		}
	}

	return b.Element(tag, key, listeners, attrs, children, namespace)
}

// Text creates a text node.
func Text(b *Builder, content string) VNode {
	return b.Text(content)
}

// Textf creates a formatted text node.
func Textf(b *Builder, format string, args ...any) VNode {
	return b.Textf(format, args...)
}

// Fragment groups children without a wrapper element.
func Fragment(b *Builder, args ...any) VNode {
	var (
		key      = vnode.KeyNone
		children []VNode
	)
	for _, arg := range args {
		switch v := arg.(type) {
		case nil:
		case Key:
			key = v
		case VNode:
			if !v.IsZero() {
				children = append(children, v)
			}
		case []VNode:
			for _, child := range v {
				if !child.IsZero() {
					children = append(children, child)
				}
			}
		case string:
			children = append(children, b.Text(v))
		}
	}
	return b.Fragment(key, children...)
}

// Keyed returns a present reconciliation key for a tag factory argument.
func Keyed(value string) Key {
	return vnode.NewKey(value)
}
