// Package arena provides the region allocator backing one render pass.
//
// An Arena owns every node payload, attribute slice, and props value built
// during a single pass, and retires all of them together when Release is
// called. Allocation is a bump within per-type slab blocks; released blocks
// return to a per-type pool so steady-state rendering performs almost no
// heap allocation.
//
// An Arena is not safe for concurrent use. A render pass is single-threaded
// by construction, so no locking is needed.
package arena
