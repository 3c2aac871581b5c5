package main

import (
	"strconv"

	"github.com/vango-dev/arbor/pkg/el"
	"github.com/vango-dev/arbor/pkg/vnode"
)

// syntheticTree builds a tree of the given shape for benchmarks: depth
// levels of elements, width children per level, leaves carrying text and
// a volatile value attribute.
func syntheticTree(b *vnode.Builder, width, depth int) vnode.VNode {
	if depth <= 0 {
		return el.Input(b, el.Type("text"), el.Value("leaf"))
	}
	return el.Ul(b, el.Class("level"),
		el.Repeat(width, func(i int) vnode.VNode {
			return el.Li(b, el.Keyed("item-"+strconv.Itoa(i)),
				syntheticTree(b, width, depth-1),
				el.Textf(b, "item %d", i),
			)
		}),
	)
}

// demoTree builds a small fixed tree for arbor dump and the inspector.
func demoTree(b *vnode.Builder) vnode.VNode {
	items := []string{"alpha", "beta", "gamma"}
	return el.Div(b, el.ID("app"), el.Class("demo"),
		el.H1(b, el.Text(b, "Arbor demo")),
		el.Input(b, el.Type("text"), el.Value("volatile")),
		el.Ul(b, el.Range(items, func(name string, i int) vnode.VNode {
			return el.Li(b, el.Keyed(name), el.Text(b, name))
		})),
	)
}
