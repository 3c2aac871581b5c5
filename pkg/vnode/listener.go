package vnode

// Event is an erased event payload. Concrete payloads are the typed event
// structs in this package (MouseEvent, KeyboardEvent, ...); the dispatch
// runtime passes them through the listener's erased callback, which
// recovers the concrete type.
type Event any

// Listener is one event subscription on an element. The (Scope, ID) pair is
// the only identity the dispatch runtime needs to find and invoke the
// callback; the callback's concrete payload type stays private to it.
type Listener struct {
	// Event is the event name, e.g. "click". Statically known.
	Event string

	// Scope is the identity of the scope that owns the callback.
	Scope ScopeID

	// ID is the per-scope listener id, allocated at construction.
	ID uint64

	// Callback is the erased handler. Invoked by the dispatch runtime.
	Callback func(Event)
}

// On builds a listener for the named event, erasing the handler's concrete
// payload type. The callback is registered under the builder's scope so the
// dispatch runtime can resolve it by (scope id, listener id). An event
// whose dynamic type is not E is ignored.
func On[E any](b *Builder, event string, handler func(E)) Listener {
	cb := func(ev Event) {
		if e, ok := ev.(E); ok {
			handler(e)
		}
	}
	id := b.scope.bindListener(cb)
	return Listener{
		Event:    event,
		Scope:    b.scope.ID(),
		ID:       id,
		Callback: cb,
	}
}
