package vnode

import (
	"testing"

	"github.com/vango-dev/arbor/pkg/arena"
)

// newTestBuilder returns a builder over a fresh arena and scope, plus the
// registry owning the scope.
func newTestBuilder(t *testing.T) (*Builder, *Registry) {
	t.Helper()
	reg := NewRegistry()
	b := NewBuilder(arena.New(), reg.NewScope())
	return b, reg
}

func TestVKindString(t *testing.T) {
	tests := []struct {
		kind VKind
		want string
	}{
		{KindElement, "Element"},
		{KindText, "Text"},
		{KindFragment, "Fragment"},
		{KindSuspended, "Suspended"},
		{KindComponent, "Component"},
		{VKind(255), "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.kind.String(); got != tt.want {
				t.Errorf("VKind.String() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNodeKey(t *testing.T) {
	b, _ := newTestBuilder(t)

	el := b.Element("div", NewKey("el"), nil, nil, nil, "")
	frag := b.Fragment(NewKey("frag"))
	text := b.Text("hello")

	tests := []struct {
		name string
		node VNode
		want Key
	}{
		{"element", el, NewKey("el")},
		{"fragment", frag, NewKey("frag")},
		{"text", text, KeyNone},
		{"suspended", Suspended(), KeyNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.node.Key(); got != tt.want {
				t.Errorf("Key() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCloneSharesElementPayload(t *testing.T) {
	b, _ := newTestBuilder(t)

	n := b.Element("div", KeyNone, nil, nil, nil, "")
	c := n.Clone()

	if c.El != n.El {
		t.Fatal("clone does not reference the same element payload")
	}

	// A mount written through one handle must be observable through the other.
	c.El.Dom.Set(NodeRef(7))
	if got := n.El.Dom.Get(); got != NodeRef(7) {
		t.Errorf("mount through clone not visible through original: got %v", got)
	}
}

func TestCloneSharesTextCell(t *testing.T) {
	b, _ := newTestBuilder(t)

	n := b.Text("hello")
	c := n.Clone()

	if c.Text.Dom != n.Text.Dom {
		t.Fatal("text clone does not share the mount cell")
	}

	n.Text.Dom.Set(NodeRef(3))
	if got := c.Text.Dom.Get(); got != NodeRef(3) {
		t.Errorf("mount not visible through text clone: got %v", got)
	}
}

func TestCloneSharesFragmentAndComponent(t *testing.T) {
	b, _ := newTestBuilder(t)

	frag := b.Fragment(NewKey("f"), b.Text("a"))
	if c := frag.Clone(); c.Frag != frag.Frag {
		t.Error("fragment clone does not reference the same payload")
	}

	comp := NewComponent(b, counter, counterProps{Count: 1}, KeyNone)
	if c := comp.Clone(); c.Comp != comp.Comp {
		t.Error("component clone does not reference the same payload")
	}
}

func TestSuspended(t *testing.T) {
	n := Suspended()

	if n.Kind != KindSuspended {
		t.Errorf("Kind = %v, want KindSuspended", n.Kind)
	}
	if n.El != nil || n.Frag != nil || n.Comp != nil {
		t.Error("suspended node carries a payload")
	}
}

func TestMountCell(t *testing.T) {
	var c MountCell

	if !c.IsEmpty() {
		t.Error("new cell is not empty")
	}
	c.Set(NodeRef(42))
	if c.IsEmpty() {
		t.Error("cell empty after Set")
	}
	if got := c.Get(); got != NodeRef(42) {
		t.Errorf("Get() = %v, want 42", got)
	}
}

func TestKeyNilPayload(t *testing.T) {
	if got := (VNode{}).Key(); !got.IsNone() {
		t.Errorf("zero node key = %v, want none", got)
	}
	for _, n := range []VNode{
		{Kind: KindFragment},
		{Kind: KindComponent},
	} {
		if got := n.Key(); !got.IsNone() {
			t.Errorf("%v with nil payload: key = %v, want none", n.Kind, got)
		}
	}
}
