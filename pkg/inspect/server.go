package inspect

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/vango-dev/arbor/pkg/snapshot"
	"github.com/vango-dev/arbor/pkg/vnode"
)

// Config configures an inspector Server.
type Config struct {
	// Registry is the Prometheus registry to use.
	// Default: prometheus.DefaultRegisterer.
	Registry prometheus.Registerer

	// Gatherer serves /metrics. Default: prometheus.DefaultGatherer.
	Gatherer prometheus.Gatherer

	// Store, if set, archives every published tree.
	Store snapshot.Store

	// Logger receives server logging. Default: slog.Default().
	Logger *slog.Logger
}

// Option configures the Server.
type Option func(*Config)

// WithRegistry sets the Prometheus registry.
func WithRegistry(registry prometheus.Registerer) Option {
	return func(c *Config) {
		c.Registry = registry
	}
}

// WithGatherer sets the gatherer backing /metrics.
func WithGatherer(g prometheus.Gatherer) Option {
	return func(c *Config) {
		c.Gatherer = g
	}
}

// WithStore sets the snapshot store that archives published trees.
func WithStore(store snapshot.Store) Option {
	return func(c *Config) {
		c.Store = store
	}
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Config) {
		c.Logger = logger
	}
}

func defaultConfig() Config {
	return Config{
		Registry: prometheus.DefaultRegisterer,
		Gatherer: prometheus.DefaultGatherer,
		Logger:   slog.Default(),
	}
}

// Server holds the most recently published tree and serves it over HTTP.
type Server struct {
	hub    *hub
	store  snapshot.Store
	logger *slog.Logger

	mu   sync.RWMutex
	tree *NodeDump
	seq  uint64

	gatherer prometheus.Gatherer

	publishesTotal prometheus.Counter
	treeNodes      prometheus.Gauge
	wsClients      prometheus.GaugeFunc
}

// NewServer creates an inspector server.
func NewServer(opts ...Option) *Server {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	h := newHub()
	factory := promauto.With(cfg.Registry)
	return &Server{
		hub:      h,
		store:    cfg.Store,
		logger:   cfg.Logger,
		gatherer: cfg.Gatherer,
		publishesTotal: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "arbor",
			Subsystem: "inspect",
			Name:      "publishes_total",
			Help:      "Total number of trees published to the inspector.",
		}),
		treeNodes: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: "arbor",
			Subsystem: "inspect",
			Name:      "tree_nodes",
			Help:      "Node count of the most recently published tree.",
		}),
		wsClients: factory.NewGaugeFunc(prometheus.GaugeOpts{
			Namespace: "arbor",
			Subsystem: "inspect",
			Name:      "ws_clients",
			Help:      "Number of connected WebSocket clients.",
		}, func() float64 { return float64(h.clientCount()) }),
	}
}

// Publish records a new tree snapshot, archives it if a store is
// configured, and notifies WebSocket clients. The tree is serialized
// immediately; the caller may release its arena afterward.
func (s *Server) Publish(ctx context.Context, n vnode.VNode) error {
	dump := Dump(n)

	s.mu.Lock()
	s.seq++
	seq := s.seq
	s.tree = &dump
	s.mu.Unlock()

	s.publishesTotal.Inc()
	s.treeNodes.Set(float64(countNodes(dump)))

	if s.store != nil {
		body, err := json.Marshal(dump)
		if err != nil {
			return err
		}
		rec := &snapshot.Record{Seq: seq, Body: body}
		if err := s.store.Save(ctx, rec); err != nil {
			s.logger.Warn("snapshot archive failed", "seq", seq, "error", err)
			return err
		}
	}

	s.hub.broadcast(wsMessage{Type: "tree", Seq: seq})
	s.logger.Debug("tree published", "seq", seq, "ws_clients", s.hub.clientCount())
	return nil
}

// Seq returns the sequence number of the last published tree.
func (s *Server) Seq() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.seq
}

// Handler returns the inspector's HTTP routes.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Get("/api/tree", s.handleTree)
	r.Get("/api/snapshots", s.handleSnapshots)
	r.Get("/api/snapshots/{id}", s.handleSnapshot)
	r.Handle("/metrics", promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{}))
	r.Get("/ws", s.hub.handleWebSocket)
	return r
}

// Close drops all WebSocket connections.
func (s *Server) Close() {
	s.hub.close()
}

func (s *Server) handleTree(w http.ResponseWriter, r *http.Request) {
	s.mu.RLock()
	tree, seq := s.tree, s.seq
	s.mu.RUnlock()

	if tree == nil {
		http.Error(w, "no tree published", http.StatusNotFound)
		return
	}
	writeJSON(w, map[string]any{"seq": seq, "tree": tree})
}

func (s *Server) handleSnapshots(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		http.Error(w, "no snapshot store configured", http.StatusNotFound)
		return
	}
	recs, err := s.store.List(r.Context(), 50)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, recs)
}

func (s *Server) handleSnapshot(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		http.Error(w, "no snapshot store configured", http.StatusNotFound)
		return
	}
	rec, err := s.store.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}
	writeJSON(w, rec)
}

// Serve runs the inspector on addr until ctx is canceled.
func (s *Server) Serve(ctx context.Context, addr string) error {
	srv := &http.Server{Addr: addr, Handler: s.Handler()}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		srv.Shutdown(shutdownCtx)
		s.Close()
	}()

	s.logger.Info("inspector listening", "addr", addr)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}

func countNodes(d NodeDump) int {
	n := 1
	for _, c := range d.Children {
		n += countNodes(c)
	}
	return n
}
