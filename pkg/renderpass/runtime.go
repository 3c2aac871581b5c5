package renderpass

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/vango-dev/arbor/pkg/arena"
	"github.com/vango-dev/arbor/pkg/vnode"
)

// Runtime hands out render passes and owns their arena pool, scope
// registry, metrics, and tracing.
type Runtime struct {
	scopes *vnode.Registry
	arenas sync.Pool
	tracer trace.Tracer
	logger *slog.Logger
	seq    atomic.Uint64

	passesTotal  prometheus.Counter
	passesActive prometheus.Gauge
	passDuration prometheus.Histogram
	arenaObjects prometheus.Histogram
}

// New creates a Runtime.
func New(opts ...Option) *Runtime {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	factory := promauto.With(cfg.Registry)

	rt := &Runtime{
		scopes: vnode.NewRegistry(),
		tracer: otel.Tracer(cfg.TracerName),
		logger: cfg.Logger,

		passesTotal: factory.NewCounter(prometheus.CounterOpts{
			Namespace:   cfg.Namespace,
			Subsystem:   cfg.Subsystem,
			Name:        "passes_total",
			Help:        "Total number of render passes started.",
			ConstLabels: cfg.ConstLabels,
		}),
		passesActive: factory.NewGauge(prometheus.GaugeOpts{
			Namespace:   cfg.Namespace,
			Subsystem:   cfg.Subsystem,
			Name:        "passes_active",
			Help:        "Render passes currently between Begin and End.",
			ConstLabels: cfg.ConstLabels,
		}),
		passDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace:   cfg.Namespace,
			Subsystem:   cfg.Subsystem,
			Name:        "pass_duration_seconds",
			Help:        "Render pass duration from Begin to End.",
			Buckets:     cfg.Buckets,
			ConstLabels: cfg.ConstLabels,
		}),
		arenaObjects: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace:   cfg.Namespace,
			Subsystem:   cfg.Subsystem,
			Name:        "arena_objects",
			Help:        "Objects allocated in the pass arena at End.",
			Buckets:     prometheus.ExponentialBuckets(16, 4, 8),
			ConstLabels: cfg.ConstLabels,
		}),
	}
	rt.arenas.New = func() any { return arena.New() }
	return rt
}

// Scopes returns the registry of live scopes. The dispatch runtime resolves
// (scope id, listener id) pairs through it.
func (rt *Runtime) Scopes() *vnode.Registry {
	return rt.scopes
}

// Begin starts a render pass: it borrows an arena from the pool, starts the
// pass span, and returns the span context alongside the pass.
func (rt *Runtime) Begin(ctx context.Context) (context.Context, *Pass) {
	seq := rt.seq.Add(1)
	ctx, span := rt.tracer.Start(ctx, "arbor.render_pass",
		trace.WithAttributes(attribute.Int64("arbor.pass.seq", int64(seq))))

	rt.passesTotal.Inc()
	rt.passesActive.Inc()

	return ctx, &Pass{
		rt:    rt,
		arena: rt.arenas.Get().(*arena.Arena),
		span:  span,
		start: time.Now(),
		seq:   seq,
	}
}

// Pass is one render pass. Everything built through it lives in its arena
// and is retired together by End. Nodes, props, and render shims obtained
// from a pass must not be used after End.
type Pass struct {
	rt    *Runtime
	arena *arena.Arena
	span  trace.Span
	start time.Time
	seq   uint64
	ended bool
}

// Seq returns the pass's sequence number.
func (p *Pass) Seq() uint64 {
	return p.seq
}

// Arena returns the arena owning this pass.
func (p *Pass) Arena() *arena.Arena {
	return p.arena
}

// Builder returns a tree builder over this pass's arena for the given
// scope. The scope's listener table is reset so ids allocated by the new
// render start fresh.
func (p *Pass) Builder(s *vnode.Scope) *vnode.Builder {
	s.Reset()
	return vnode.NewBuilder(p.arena, s)
}

// End retires the pass: the arena is released back to the pool, metrics are
// observed, and the pass span ends. End is idempotent.
func (p *Pass) End() {
	if p.ended {
		return
	}
	p.ended = true

	stats := p.arena.Stats()
	elapsed := time.Since(p.start)

	p.arena.Release()
	p.rt.arenas.Put(p.arena)
	p.arena = nil

	p.rt.passesActive.Dec()
	p.rt.passDuration.Observe(elapsed.Seconds())
	p.rt.arenaObjects.Observe(float64(stats.Objects))

	p.span.SetAttributes(
		attribute.Int("arbor.pass.objects", stats.Objects),
		attribute.Int("arbor.pass.blocks", stats.Blocks),
	)
	p.span.End()

	p.rt.logger.Debug("render pass complete",
		"seq", p.seq,
		"duration", elapsed,
		"objects", stats.Objects,
	)
}
