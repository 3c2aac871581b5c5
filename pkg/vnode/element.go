package vnode

import (
	"fmt"

	"github.com/vango-dev/arbor/pkg/arena"
)

// VElement is the payload of an element node.
//
// Children order is render order. Attribute and listener order is insertion
// order and carries no semantic weight beyond name lookup.
type VElement struct {
	Key       Key
	Tag       string
	Namespace string // "" for the default namespace
	Listeners []Listener
	Attrs     []Attribute
	Children  []VNode

	// Dom is written once by the mount process when this element is bound
	// to a physical node.
	Dom MountCell
}

// VText is the payload of a text node. It is an inline value; copies share
// the mount cell, not the VText struct itself.
type VText struct {
	Text string
	Dom  *MountCell
}

// Element allocates an element payload in the builder's arena and returns
// its node. The listeners, attrs, and children slices are copied into
// arena-owned runs, so callers may reuse their argument slices. Exactly one
// payload allocation is performed.
func (b *Builder) Element(tag string, key Key, listeners []Listener, attrs []Attribute, children []VNode, namespace string) VNode {
	el := arena.Alloc(b.arena, VElement{
		Key:       key,
		Tag:       tag,
		Namespace: namespace,
		Listeners: arena.Slice(b.arena, listeners...),
		Attrs:     arena.Slice(b.arena, attrs...),
		Children:  arena.Slice(b.arena, children...),
	})
	return VNode{Kind: KindElement, El: el}
}

// Text wraps a string in a text node with an empty mount cell. The cell is
// arena-allocated so every copy of the node observes the same mount.
func (b *Builder) Text(text string) VNode {
	return VNode{
		Kind: KindText,
		Text: VText{
			Text: text,
			Dom:  arena.Alloc(b.arena, MountCell{}),
		},
	}
}

// Textf is Text with fmt.Sprintf formatting.
func (b *Builder) Textf(format string, args ...any) VNode {
	return b.Text(fmt.Sprintf(format, args...))
}
