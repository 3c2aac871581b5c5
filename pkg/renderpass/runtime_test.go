package renderpass

import (
	"context"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/vango-dev/arbor/pkg/el"
	"github.com/vango-dev/arbor/pkg/vnode"
)

func newTestRuntime(t *testing.T) (*Runtime, *prometheus.Registry) {
	t.Helper()
	reg := prometheus.NewRegistry()
	return New(WithRegistry(reg)), reg
}

func TestBeginEnd(t *testing.T) {
	rt, _ := newTestRuntime(t)

	ctx, pass := rt.Begin(context.Background())
	if ctx == nil {
		t.Fatal("Begin returned nil context")
	}
	if pass.Seq() != 1 {
		t.Errorf("Seq = %d, want 1", pass.Seq())
	}
	if pass.Arena() == nil {
		t.Fatal("pass has no arena")
	}
	pass.End()

	if pass.Arena() != nil {
		t.Error("arena still reachable after End")
	}
}

func TestEndIdempotent(t *testing.T) {
	rt, reg := newTestRuntime(t)

	_, pass := rt.Begin(context.Background())
	pass.End()
	pass.End() // must not panic or double-count

	if got := testutil.ToFloat64(rt.passesActive); got != 0 {
		t.Errorf("passes_active = %v, want 0", got)
	}
	if n, err := testutil.GatherAndCount(reg); err != nil || n == 0 {
		t.Errorf("metrics not registered: n=%d err=%v", n, err)
	}
}

func TestPassBuildsTree(t *testing.T) {
	rt, _ := newTestRuntime(t)

	_, pass := rt.Begin(context.Background())
	defer pass.End()

	scope := rt.Scopes().NewScope()
	b := pass.Builder(scope)

	n := el.Div(b, el.Class("app"), el.Span(b, "hi"))
	if n.El.Tag != "div" || len(n.El.Children) != 1 {
		t.Error("tree construction through a pass failed")
	}
	if pass.Arena().Stats().Objects == 0 {
		t.Error("construction did not allocate from the pass arena")
	}
}

func TestBuilderResetsScope(t *testing.T) {
	rt, _ := newTestRuntime(t)

	scope := rt.Scopes().NewScope()

	_, p1 := rt.Begin(context.Background())
	b1 := p1.Builder(scope)
	el.OnClick(b1, func(vnode.MouseEvent) {})
	p1.End()

	_, p2 := rt.Begin(context.Background())
	b2 := p2.Builder(scope)
	l2 := el.OnClick(b2, func(vnode.MouseEvent) {})
	p2.End()

	if l2.ID != 0 {
		t.Errorf("listener ids not reset across passes: got %d", l2.ID)
	}
}

func TestPassMetrics(t *testing.T) {
	rt, _ := newTestRuntime(t)

	_, pass := rt.Begin(context.Background())
	if got := testutil.ToFloat64(rt.passesActive); got != 1 {
		t.Errorf("passes_active during pass = %v, want 1", got)
	}
	pass.End()

	if got := testutil.ToFloat64(rt.passesTotal); got != 1 {
		t.Errorf("passes_total = %v, want 1", got)
	}
}

func TestSequenceNumbersIncrease(t *testing.T) {
	rt, _ := newTestRuntime(t)

	_, p1 := rt.Begin(context.Background())
	_, p2 := rt.Begin(context.Background())
	defer p1.End()
	defer p2.End()

	if p2.Seq() <= p1.Seq() {
		t.Errorf("seq not increasing: %d then %d", p1.Seq(), p2.Seq())
	}
}
