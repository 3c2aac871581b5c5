package vnode

import (
	"reflect"
	"runtime"
	"unsafe"

	"github.com/vango-dev/arbor/pkg/arena"
)

// Properties constrains component props types. Props must be strictly
// comparable so memoized components can be compared by value.
type Properties interface {
	comparable
}

// Memoizer is the opt-in for render memoization. A props type that
// implements it and reports true gets a comparator at construction; the
// scheduler may then skip re-rendering a component whose props did not
// change. Types that do not implement Memoizer never get a comparator.
type Memoizer interface {
	Memoize() bool
}

// Ctx is the typed render context handed to a function component: its
// arena-resident props paired with the scope the render runs under.
type Ctx[P Properties] struct {
	Props *P
	Scope *Scope
}

// FC is a function component over props type P.
type FC[P Properties] func(Ctx[P]) VNode

// typeID is the component's type-identity tag. Two components share a tag
// iff they were built from the same render function over the same props
// type, which is what makes reinterpreting the erased props pointer sound.
// The code pointer alone is not enough in Go: generic instantiations with
// the same gc shape can share code, so the concrete props type rides along
// as part of the identity.
type typeID struct {
	fn    uintptr
	props reflect.Type
}

// VComponent is a type-erased user component instance. It is constructed
// once per render pass when a parent evaluates a child component; the
// erased props value and the wrapper itself live in that pass's arena.
type VComponent struct {
	Key Key

	// Mounted is the root physical node of the component's rendered
	// subtree, written by the mount process.
	Mounted MountCell

	// Children is the slot content passed by the parent. It is distinct
	// from the subtree the component renders.
	Children []VNode

	id         typeID
	rawProps   unsafe.Pointer
	caller     func(*Scope) VNode
	comparator func(*VComponent) bool

	scope    ScopeID
	hasScope bool
}

// NewComponent builds a component node from a concrete render function and
// props value. The props are allocated in the builder's arena — that
// allocation is their only storage, so they live exactly as long as the
// arena. The render function's identity is recorded as the type tag, and a
// memo comparator is built only if the props opt in via Memoizer.
//
// The returned node's render shim and comparator read the arena-resident
// props through an erased pointer. Neither may be invoked after the arena
// is released; that discipline belongs to the scheduler that owns the pass.
func NewComponent[P Properties](b *Builder, fn FC[P], props P, key Key, children ...VNode) VNode {
	propsPtr := arena.Alloc(b.arena, props)
	raw := unsafe.Pointer(propsPtr)
	id := typeID{
		fn:    reflect.ValueOf(fn).Pointer(),
		props: reflect.TypeOf((*P)(nil)).Elem(),
	}

	// The comparator may reinterpret another component's erased pointer as
	// *P. The tag check proves the other component was built from the same
	// render function over the same props type, so the cast cannot observe
	// a value of the wrong type. Tag mismatch means false, never a cast.
	var comparator func(*VComponent) bool
	if m, ok := any(props).(Memoizer); ok && m.Memoize() {
		comparator = func(other *VComponent) bool {
			if other.id != id {
				return false
			}
			return *(*P)(other.rawProps) == *propsPtr
		}
	}

	caller := func(s *Scope) VNode {
		p := (*P)(raw)
		return fn(Ctx[P]{Props: p, Scope: s})
	}

	comp := arena.Alloc(b.arena, VComponent{
		Key:        key,
		Children:   arena.Slice(b.arena, children...),
		id:         id,
		rawProps:   raw,
		caller:     caller,
		comparator: comparator,
	})
	return VNode{Kind: KindComponent, Comp: comp}
}

// Invoke runs the component's render function under the given scope and
// returns the produced subtree. Must not be called after the backing arena
// has been released.
func (c *VComponent) Invoke(s *Scope) VNode {
	return c.caller(s)
}

// ShouldReuse reports whether the previous render output of other can be
// reused in place of re-rendering c. It is true only when both components
// were built from the same render function and their props compare equal;
// components whose props did not opt into memoization always report false.
func (c *VComponent) ShouldReuse(other *VComponent) bool {
	if c.comparator == nil || other == nil {
		return false
	}
	return c.comparator(other)
}

// CanMemoize reports whether this component's props opted into memoization.
func (c *VComponent) CanMemoize() bool {
	return c.comparator != nil
}

// SameType reports whether two components were built from the same render
// function. The reconciler matches instances across renders by key plus
// this identity.
func (c *VComponent) SameType(other *VComponent) bool {
	return other != nil && c.id == other.id
}

// FuncName returns the render function's name, for diagnostics.
func (c *VComponent) FuncName() string {
	if f := runtime.FuncForPC(c.id.fn); f != nil {
		return f.Name()
	}
	return "unknown"
}

// AssociateScope records the runtime scope that owns this component's state
// once mounted. Written by the mount/diff process.
func (c *VComponent) AssociateScope(id ScopeID) {
	c.scope = id
	c.hasScope = true
}

// AssociatedScope returns the owning scope, if one has been associated.
func (c *VComponent) AssociatedScope() (ScopeID, bool) {
	return c.scope, c.hasScope
}

// ClearScope removes the scope association.
func (c *VComponent) ClearScope() {
	c.scope = 0
	c.hasScope = false
}
