// Package renderpass owns the arena lifecycle for tree construction.
//
// A Runtime hands out Passes. Each Pass borrows a pooled arena, every node
// built during the pass lives in that arena, and Pass.End retires the whole
// region at once. The runtime records pass metrics to Prometheus and emits
// one OpenTelemetry span per pass.
//
// The safety contract the node layer cannot enforce lives here: nothing
// obtained from a pass — nodes, props, render shims — may be used after
// End. The scheduler that owns the pass is responsible for that ordering.
package renderpass
