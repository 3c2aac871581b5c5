package vnode

import "testing"

func TestOnAllocatesPerScopeIDs(t *testing.T) {
	b, _ := newTestBuilder(t)

	first := On(b, "click", func(MouseEvent) {})
	second := On(b, "input", func(InputEvent) {})

	if first.Scope != b.Scope().ID() || second.Scope != b.Scope().ID() {
		t.Error("listeners not owned by the builder's scope")
	}
	if first.ID == second.ID {
		t.Error("listener ids must be unique within a scope")
	}
	if first.Event != "click" || second.Event != "input" {
		t.Errorf("event names = %q, %q", first.Event, second.Event)
	}
}

func TestRegistryDispatch(t *testing.T) {
	b, reg := newTestBuilder(t)

	var got MouseEvent
	l := On(b, "click", func(e MouseEvent) { got = e })

	ok := reg.Dispatch(l.Scope, l.ID, MouseEvent{ClientX: 10, ClientY: 20})
	if !ok {
		t.Fatal("dispatch did not find the listener")
	}
	if got.ClientX != 10 || got.ClientY != 20 {
		t.Errorf("handler saw %+v", got)
	}
}

func TestDispatchWrongPayloadTypeIgnored(t *testing.T) {
	b, reg := newTestBuilder(t)

	called := false
	l := On(b, "click", func(MouseEvent) { called = true })

	// The listener exists, so dispatch reports true, but the handler only
	// runs for its concrete payload type.
	if ok := reg.Dispatch(l.Scope, l.ID, KeyboardEvent{Key: "Enter"}); !ok {
		t.Fatal("dispatch did not find the listener")
	}
	if called {
		t.Error("handler invoked with a payload of the wrong type")
	}
}

func TestDispatchAfterScopeTeardown(t *testing.T) {
	b, reg := newTestBuilder(t)

	called := false
	l := On(b, "click", func(MouseEvent) { called = true })

	reg.Remove(l.Scope)

	if ok := reg.Dispatch(l.Scope, l.ID, MouseEvent{}); ok {
		t.Error("dispatch succeeded against a torn-down scope")
	}
	if called {
		t.Error("callback invoked after its scope was removed")
	}
}

func TestScopeReset(t *testing.T) {
	b, reg := newTestBuilder(t)

	l := On(b, "click", func(MouseEvent) {})
	b.Scope().Reset()

	if ok := reg.Dispatch(l.Scope, l.ID, MouseEvent{}); ok {
		t.Error("stale listener id resolved after Reset")
	}

	// Ids restart after a reset, matching a fresh render of the scope.
	l2 := On(b, "click", func(MouseEvent) {})
	if l2.ID != 0 {
		t.Errorf("first id after reset = %d, want 0", l2.ID)
	}
}

func TestRegistryGetAndRemove(t *testing.T) {
	reg := NewRegistry()
	s := reg.NewScope()

	if got, ok := reg.Get(s.ID()); !ok || got != s {
		t.Fatal("Get did not return the registered scope")
	}

	reg.Remove(s.ID())
	if _, ok := reg.Get(s.ID()); ok {
		t.Error("scope still resolvable after Remove")
	}
}
