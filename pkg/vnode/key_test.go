package vnode

import "testing"

func TestKeyNoneSome(t *testing.T) {
	tests := []struct {
		name string
		key  Key
		some bool
	}{
		{"none", KeyNone, false},
		{"zero value", Key{}, false},
		{"present", NewKey("list-1"), true},
		{"present empty string", NewKey(""), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.key.IsSome(); got != tt.some {
				t.Errorf("IsSome() = %v, want %v", got, tt.some)
			}
			// Exactly one of IsNone/IsSome holds.
			if tt.key.IsNone() == tt.key.IsSome() {
				t.Error("IsNone and IsSome agree; exactly one must hold")
			}
		})
	}
}

func TestKeyValue(t *testing.T) {
	if got := NewKey("abc").Value(); got != "abc" {
		t.Errorf("Value() = %q, want %q", got, "abc")
	}
	if got := KeyNone.Value(); got != "" {
		t.Errorf("KeyNone.Value() = %q, want empty", got)
	}
	if NewKey("") == KeyNone {
		t.Error("present empty key compares equal to KeyNone")
	}
}

func TestKeyString(t *testing.T) {
	if got := NewKey("k").String(); got != "k" {
		t.Errorf("String() = %q, want %q", got, "k")
	}
	if got := KeyNone.String(); got != "<no key>" {
		t.Errorf("KeyNone.String() = %q", got)
	}
}
