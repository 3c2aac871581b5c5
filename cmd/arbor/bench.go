package main

import (
	"context"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/vango-dev/arbor/internal/config"
	"github.com/vango-dev/arbor/pkg/renderpass"
	"github.com/vango-dev/arbor/pkg/vnode"
)

func benchCmd() *cobra.Command {
	var (
		passes int
		width  int
		depth  int
	)

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Benchmark tree construction",
		Long: `Build synthetic trees across repeated render passes and report
allocation and timing statistics.

Each pass owns an arena; nodes are built into it and released when
the pass ends. The reported numbers show what one pass of the given
shape costs.

Examples:
  arbor bench
  arbor bench --passes=1000 --width=20 --depth=5`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBench(passes, width, depth)
		},
	}

	cmd.Flags().IntVarP(&passes, "passes", "n", 0, "Number of passes (default from arbor.json)")
	cmd.Flags().IntVarP(&width, "width", "w", 0, "Children per element (default from arbor.json)")
	cmd.Flags().IntVarP(&depth, "depth", "d", 0, "Tree depth (default from arbor.json)")

	return cmd
}

func runBench(passes, width, depth int) error {
	cfg, err := config.LoadFromWorkingDir()
	if err != nil {
		return err
	}
	if passes > 0 {
		cfg.Bench.Passes = passes
	}
	if width > 0 {
		cfg.Bench.Width = width
	}
	if depth > 0 {
		cfg.Bench.Depth = depth
	}

	printBanner()
	info("bench: %d passes, width %d, depth %d", cfg.Bench.Passes, cfg.Bench.Width, cfg.Bench.Depth)
	fmt.Println()

	rt := renderpass.New(renderpass.WithRegistry(prometheus.NewRegistry()))
	scope := rt.Scopes().NewScope()
	ctx := context.Background()

	var (
		nodes   int
		objects int
		blocks  int
	)

	start := time.Now()
	for i := 0; i < cfg.Bench.Passes; i++ {
		_, pass := rt.Begin(ctx)
		b := pass.Builder(scope)
		tree := syntheticTree(b, cfg.Bench.Width, cfg.Bench.Depth)

		if i == 0 {
			nodes = countTree(tree)
			st := pass.Arena().Stats()
			objects = st.Objects
			blocks = st.Blocks
		}
		pass.End()
	}
	elapsed := time.Since(start)

	perPass := elapsed / time.Duration(cfg.Bench.Passes)
	info("tree size:      %d nodes", nodes)
	info("arena objects:  %d per pass", objects)
	info("arena blocks:   %d per pass", blocks)
	info("total time:     %s", elapsed.Round(time.Microsecond))
	info("per pass:       %s", perPass.Round(time.Nanosecond))
	if perPass > 0 {
		info("passes/sec:     %.0f", float64(time.Second)/float64(perPass))
	}
	fmt.Println()
	return nil
}

func countTree(n vnode.VNode) int {
	total := 1
	switch n.Kind {
	case vnode.KindElement:
		for _, c := range n.El.Children {
			total += countTree(c)
		}
	case vnode.KindFragment:
		for _, c := range n.Frag.Children {
			total += countTree(c)
		}
	case vnode.KindComponent:
		for _, c := range n.Comp.Children {
			total += countTree(c)
		}
	}
	return total
}
