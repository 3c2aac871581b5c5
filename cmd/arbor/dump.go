package main

import (
	"context"
	"encoding/json"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/vango-dev/arbor/pkg/inspect"
	"github.com/vango-dev/arbor/pkg/renderpass"
)

func dumpCmd() *cobra.Command {
	var (
		width int
		depth int
	)

	cmd := &cobra.Command{
		Use:   "dump",
		Short: "Print a tree as JSON",
		Long: `Build a tree and print its inspector JSON to stdout.

Without flags a small demo tree is printed. With --width/--depth a
synthetic benchmark tree of that shape is printed instead.

Examples:
  arbor dump
  arbor dump --width=3 --depth=2 | jq .`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDump(width, depth)
		},
	}

	cmd.Flags().IntVarP(&width, "width", "w", 0, "Children per element (synthetic tree)")
	cmd.Flags().IntVarP(&depth, "depth", "d", 0, "Tree depth (synthetic tree)")

	return cmd
}

func runDump(width, depth int) error {
	rt := renderpass.New(renderpass.WithRegistry(prometheus.NewRegistry()))
	scope := rt.Scopes().NewScope()

	_, pass := rt.Begin(context.Background())
	defer pass.End()

	b := pass.Builder(scope)
	tree := demoTree(b)
	if width > 0 && depth > 0 {
		tree = syntheticTree(b, width, depth)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(inspect.Dump(tree))
}
