package vnode

import "github.com/vango-dev/arbor/pkg/arena"

// Builder pairs the arena owning one render pass with the scope whose
// render is producing the tree. Every constructor allocates only from the
// builder's arena; construction never performs I/O and never blocks.
type Builder struct {
	arena *arena.Arena
	scope *Scope
}

// NewBuilder creates a builder over the given arena and scope.
func NewBuilder(a *arena.Arena, s *Scope) *Builder {
	return &Builder{arena: a, scope: s}
}

// Arena returns the arena this builder allocates from.
func (b *Builder) Arena() *arena.Arena {
	return b.arena
}

// Scope returns the scope whose render owns the built tree.
func (b *Builder) Scope() *Scope {
	return b.scope
}
