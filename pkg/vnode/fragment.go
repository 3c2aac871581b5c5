package vnode

import "github.com/vango-dev/arbor/pkg/arena"

// VFragment is a keyed grouping of siblings with no physical node of its
// own. It lets a keyed group be reconciled as a unit without introducing a
// wrapper element on the physical surface, so it carries no mount cell.
type VFragment struct {
	Key      Key
	Children []VNode
}

// Fragment allocates a fragment payload in the builder's arena. The
// children are copied into an arena-owned run.
func (b *Builder) Fragment(key Key, children ...VNode) VNode {
	frag := arena.Alloc(b.arena, VFragment{
		Key:      key,
		Children: arena.Slice(b.arena, children...),
	})
	return VNode{Kind: KindFragment, Frag: frag}
}
