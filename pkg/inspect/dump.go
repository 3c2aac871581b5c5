package inspect

import (
	"strings"

	"github.com/vango-dev/arbor/pkg/vnode"
)

// NodeDump is the JSON shape of one node in an inspector snapshot.
type NodeDump struct {
	Kind      string         `json:"kind"`
	Key       string         `json:"key,omitempty"`
	Tag       string         `json:"tag,omitempty"`
	Namespace string         `json:"namespace,omitempty"`
	Text      string         `json:"text,omitempty"`
	Attrs     []AttrDump     `json:"attrs,omitempty"`
	Listeners []ListenerDump `json:"listeners,omitempty"`
	Component *ComponentDump `json:"component,omitempty"`
	Children  []NodeDump     `json:"children,omitempty"`
}

// AttrDump is one attribute, with its volatility flag resolved.
type AttrDump struct {
	Name     string `json:"name"`
	Value    string `json:"value"`
	Volatile bool   `json:"volatile,omitempty"`
}

// ListenerDump identifies a listener without exposing its callback.
type ListenerDump struct {
	Event string `json:"event"`
	Scope uint64 `json:"scope"`
	ID    uint64 `json:"id"`
}

// ComponentDump describes a component node's identity.
type ComponentDump struct {
	Func       string `json:"func"`
	Memoizable bool   `json:"memoizable"`
	Scope      uint64 `json:"scope,omitempty"`
}

// Dump serializes a node tree into its inspector shape. The walk is
// read-only; the returned structure shares nothing with the tree. Kind
// names are lowercased for the wire ("element", "text", ...).
func Dump(n vnode.VNode) NodeDump {
	d := NodeDump{Kind: strings.ToLower(n.Kind.String())}
	if key := n.Key(); key.IsSome() {
		d.Key = key.Value()
	}

	switch n.Kind {
	case vnode.KindText:
		d.Text = n.Text.Text

	case vnode.KindElement:
		el := n.El
		if el == nil {
			break
		}
		d.Tag = el.Tag
		d.Namespace = el.Namespace
		for _, a := range el.Attrs {
			d.Attrs = append(d.Attrs, AttrDump{Name: a.Name, Value: a.Value, Volatile: a.IsVolatile()})
		}
		for _, l := range el.Listeners {
			d.Listeners = append(d.Listeners, ListenerDump{Event: l.Event, Scope: uint64(l.Scope), ID: l.ID})
		}
		for _, c := range el.Children {
			d.Children = append(d.Children, Dump(c))
		}

	case vnode.KindFragment:
		if n.Frag == nil {
			break
		}
		for _, c := range n.Frag.Children {
			d.Children = append(d.Children, Dump(c))
		}

	case vnode.KindComponent:
		comp := n.Comp
		if comp == nil {
			break
		}
		d.Component = &ComponentDump{
			Func:       comp.FuncName(),
			Memoizable: comp.CanMemoize(),
		}
		if id, ok := comp.AssociatedScope(); ok {
			d.Component.Scope = uint64(id)
		}
		for _, c := range comp.Children {
			d.Children = append(d.Children, Dump(c))
		}
	}

	return d
}
