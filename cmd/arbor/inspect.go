package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/spf13/cobra"

	"github.com/vango-dev/arbor/internal/config"
	"github.com/vango-dev/arbor/pkg/inspect"
	"github.com/vango-dev/arbor/pkg/renderpass"
	"github.com/vango-dev/arbor/pkg/snapshot"
)

func inspectCmd() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Serve the tree inspector",
		Long: `Serve the tree inspector over HTTP.

The inspector exposes the last published tree as JSON, Prometheus
metrics, and a WebSocket feed that fires when a new tree arrives.
A demo tree is published on startup so the endpoints have content.

Endpoints:
  GET /api/tree       last published tree
  GET /api/snapshots  archived snapshots (if a store is configured)
  GET /metrics        Prometheus metrics
  GET /ws             WebSocket notifications

Examples:
  arbor inspect
  arbor inspect --addr=:7000`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInspect(addr)
		},
	}

	cmd.Flags().StringVarP(&addr, "addr", "a", "", "Listen address (default from arbor.json)")

	return cmd
}

func runInspect(addr string) error {
	cfg, err := config.LoadFromWorkingDir()
	if err != nil {
		return err
	}
	if addr != "" {
		cfg.Inspect.Addr = addr
	}

	store, closeStore, err := openStore(cfg)
	if err != nil {
		return err
	}
	if closeStore != nil {
		defer closeStore()
	}

	opts := []inspect.Option{}
	if store != nil {
		opts = append(opts, inspect.WithStore(store))
	}
	server := inspect.NewServer(opts...)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Publish a demo tree so the endpoints are not empty on first load.
	rt := renderpass.New()
	_, pass := rt.Begin(ctx)
	tree := demoTree(pass.Builder(rt.Scopes().NewScope()))
	if err := server.Publish(ctx, tree); err != nil {
		return err
	}
	pass.End()

	if store != nil && cfg.Snapshot.MaxAge != "" {
		maxAge, err := time.ParseDuration(cfg.Snapshot.MaxAge)
		if err != nil {
			return fmt.Errorf("invalid snapshot maxAge %q: %w", cfg.Snapshot.MaxAge, err)
		}
		if err := store.Cleanup(ctx, maxAge); err != nil {
			return err
		}
	}

	printBanner()
	info("inspector: http://%s", cfg.Inspect.Addr)
	if store != nil {
		info("snapshots: %s", cfg.Snapshot.Backend)
	}
	fmt.Println()

	return server.Serve(ctx, cfg.Inspect.Addr)
}

// openStore builds the snapshot store named by the config. The second
// return value closes it, when the backend needs closing.
func openStore(cfg *config.Config) (snapshot.Store, func() error, error) {
	switch cfg.Snapshot.Backend {
	case "none":
		return nil, nil, nil

	case "bolt":
		store, err := snapshot.OpenBolt(cfg.SnapshotPath())
		if err != nil {
			return nil, nil, err
		}
		return store, store.Close, nil

	case "s3":
		client := s3.New(s3.Options{Region: cfg.Snapshot.Region})
		return snapshot.NewS3Store(client, cfg.Snapshot.Bucket, cfg.Snapshot.Prefix), nil, nil

	default:
		return nil, nil, fmt.Errorf("unknown snapshot backend %q", cfg.Snapshot.Backend)
	}
}
