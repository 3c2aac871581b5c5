package vnode

// Attribute is a single attribute on an element, such as id="sidebar".
// Name is a statically known attribute name; Value is arena-owned.
type Attribute struct {
	Name  string
	Value string
}

// IsVolatile reports whether the attribute must always be re-applied to the
// physical node during patching, even when the old and new virtual values
// are equal. The physical surface's own state for these properties can
// diverge from the virtual value through user input without the virtual
// tree being informed.
func (a Attribute) IsVolatile() bool {
	switch a.Name {
	case "value", "checked", "selected":
		return true
	default:
		return false
	}
}
