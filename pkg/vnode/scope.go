package vnode

import (
	"sync"
	"sync/atomic"
)

// ScopeID identifies the runtime scope that owns a component's state.
type ScopeID uint64

// Scope is the render context a component runs under. It allocates listener
// identities for the tree built during its render and keeps the callback
// table the dispatch runtime resolves against.
//
// A scope is written only by the render pass that owns it; the dispatch
// runtime reads it through the Registry.
type Scope struct {
	id           ScopeID
	nextListener uint64
	listeners    map[uint64]func(Event)
}

// ID returns the scope's identity.
func (s *Scope) ID() ScopeID {
	return s.id
}

// Reset discards the scope's listener table. Called at the start of a
// render pass so stale listener ids from the previous tree cannot resolve.
func (s *Scope) Reset() {
	s.nextListener = 0
	clear(s.listeners)
}

// bindListener allocates the next listener id and registers the callback.
func (s *Scope) bindListener(cb func(Event)) uint64 {
	id := s.nextListener
	s.nextListener++
	if s.listeners == nil {
		s.listeners = make(map[uint64]func(Event))
	}
	s.listeners[id] = cb
	return id
}

// Registry tracks live scopes and gives the dispatch runtime its
// (scope id, listener id) lookup. Removing a scope tears down all of its
// listeners at once; a dispatch against a removed scope is a no-op.
type Registry struct {
	mu     sync.RWMutex
	scopes map[ScopeID]*Scope
	nextID atomic.Uint64
}

// NewRegistry creates an empty scope registry.
func NewRegistry() *Registry {
	return &Registry{scopes: make(map[ScopeID]*Scope)}
}

// NewScope creates a scope with a fresh identity and registers it.
func (r *Registry) NewScope() *Scope {
	s := &Scope{id: ScopeID(r.nextID.Add(1))}
	r.mu.Lock()
	r.scopes[s.id] = s
	r.mu.Unlock()
	return s
}

// Get returns the scope with the given id, if it is still live.
func (r *Registry) Get(id ScopeID) (*Scope, bool) {
	r.mu.RLock()
	s, ok := r.scopes[id]
	r.mu.RUnlock()
	return s, ok
}

// Remove tears down a scope. Listeners owned by it can no longer be
// dispatched.
func (r *Registry) Remove(id ScopeID) {
	r.mu.Lock()
	delete(r.scopes, id)
	r.mu.Unlock()
}

// Dispatch invokes the listener registered under (scope, listener) with the
// given event payload. It reports whether a live listener was found; it
// never invokes a callback whose owning scope has been removed.
func (r *Registry) Dispatch(scope ScopeID, listener uint64, ev Event) bool {
	r.mu.RLock()
	s, ok := r.scopes[scope]
	r.mu.RUnlock()
	if !ok {
		return false
	}
	cb, ok := s.listeners[listener]
	if !ok {
		return false
	}
	cb(ev)
	return true
}
