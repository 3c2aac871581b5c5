package vnode

import "testing"

func TestAttributeIsVolatile(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"value", true},
		{"checked", true},
		{"selected", true},
		{"id", false},
		{"class", false},
		{"href", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := Attribute{Name: tt.name, Value: "x"}
			if got := a.IsVolatile(); got != tt.want {
				t.Errorf("IsVolatile() = %v, want %v", got, tt.want)
			}
		})
	}
}

// A volatile attribute must force reapplication even when old and new
// values compare equal: the physical surface can drift on its own.
func TestVolatileAttributeEqualValues(t *testing.T) {
	b, _ := newTestBuilder(t)

	old := b.Element("div", KeyNone, nil, []Attribute{{Name: "value", Value: "a"}}, nil, "")
	next := b.Element("div", KeyNone, nil, []Attribute{{Name: "value", Value: "a"}}, nil, "")

	oldAttr := old.El.Attrs[0]
	newAttr := next.El.Attrs[0]

	if oldAttr != newAttr {
		t.Fatal("attributes should compare equal")
	}
	if !newAttr.IsVolatile() {
		t.Error("equal values must not suppress reapplication of a volatile attribute")
	}
}
