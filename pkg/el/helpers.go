package el

// Nothing is the "render nothing" node. Tag factories skip it.
func Nothing() VNode {
	return VNode{}
}

// If returns the node if condition is true, Nothing otherwise.
func If(condition bool, node VNode) VNode {
	if condition {
		return node
	}
	return VNode{}
}

// IfElse returns the first node if condition is true, the second otherwise.
func IfElse(condition bool, ifTrue, ifFalse VNode) VNode {
	if condition {
		return ifTrue
	}
	return ifFalse
}

// When is like If but with lazy evaluation.
// The function is only called if condition is true.
func When(condition bool, fn func() VNode) VNode {
	if condition {
		return fn()
	}
	return VNode{}
}

// Unless is the inverse of If.
func Unless(condition bool, node VNode) VNode {
	if !condition {
		return node
	}
	return VNode{}
}

// Case represents a case in a Switch.
type Case[T comparable] struct {
	Value     T
	Node      VNode
	IsDefault bool
}

// Case_ creates a case for Switch.
func Case_[T comparable](value T, node VNode) Case[T] {
	return Case[T]{Value: value, Node: node}
}

// Default creates a default case for Switch.
func Default[T comparable](node VNode) Case[T] {
	return Case[T]{Node: node, IsDefault: true}
}

// Switch returns the node for the matching case value, the default node if
// no case matches, or Nothing.
func Switch[T comparable](value T, cases ...Case[T]) VNode {
	for _, c := range cases {
		if !c.IsDefault && c.Value == value {
			return c.Node
		}
	}
	for _, c := range cases {
		if c.IsDefault {
			return c.Node
		}
	}
	return VNode{}
}

// Range maps a slice to nodes. Zero nodes returned by fn are dropped.
func Range[T any](items []T, fn func(item T, index int) VNode) []VNode {
	result := make([]VNode, 0, len(items))
	for i, item := range items {
		node := fn(item, i)
		if !node.IsZero() {
			result = append(result, node)
		}
	}
	return result
}

// Repeat creates n nodes using the given function.
func Repeat(n int, fn func(i int) VNode) []VNode {
	if n <= 0 {
		return nil
	}
	result := make([]VNode, 0, n)
	for i := 0; i < n; i++ {
		node := fn(i)
		if !node.IsZero() {
			result = append(result, node)
		}
	}
	return result
}
