// Package inspect serves a read-only view of virtual node trees for
// debugging. A Server accepts published trees, serializes them to JSON,
// and exposes them over HTTP along with Prometheus metrics and a
// WebSocket feed that notifies clients when a new tree arrives.
//
// The inspector never mutates or compares trees. Serialization is a
// plain walk over the node structure.
package inspect
