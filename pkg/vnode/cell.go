package vnode

// NodeRef identifies a node on the physical display surface. RefNone means
// the virtual node has not been mounted yet.
type NodeRef uint64

// RefNone is the empty physical-node reference.
const RefNone NodeRef = 0

// MountCell holds a virtual node's physical-surface identity. Cells start
// empty and are written by the external mount process exactly once when the
// node is bound to a physical node; this package never writes them itself.
// A cell is the single piece of mutability in an otherwise immutable tree,
// and is only ever touched by one actor at a time by construction of the
// render pipeline, so no synchronization is used.
type MountCell struct {
	ref NodeRef
}

// Get returns the mounted reference, or RefNone.
func (c *MountCell) Get() NodeRef {
	return c.ref
}

// Set records the physical node this virtual node was mounted to.
// Reserved for the mount process.
func (c *MountCell) Set(ref NodeRef) {
	c.ref = ref
}

// IsEmpty reports whether the node has been mounted.
func (c *MountCell) IsEmpty() bool {
	return c.ref == RefNone
}
