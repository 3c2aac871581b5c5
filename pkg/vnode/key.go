package vnode

// Key is the optional string identity used for keyed-list reconciliation.
//
// Keys must be unique among siblings, and within one sibling list either
// every sibling carries a key or none does. That invariant is a
// precondition of the reconciler; it is not validated here.
//
// The zero value is KeyNone. A present key is distinct from KeyNone even
// when its string is empty.
type Key struct {
	value   string
	present bool
}

// KeyNone is the absence of a key.
var KeyNone = Key{}

// NewKey creates a present key.
func NewKey(value string) Key {
	return Key{value: value, present: true}
}

// IsNone reports whether the key is KeyNone.
func (k Key) IsNone() bool {
	return !k.present
}

// IsSome reports whether a key is present.
func (k Key) IsSome() bool {
	return k.present
}

// Value returns the key string, or "" for KeyNone.
func (k Key) Value() string {
	return k.value
}

// String implements fmt.Stringer.
func (k Key) String() string {
	if !k.present {
		return "<no key>"
	}
	return k.value
}
