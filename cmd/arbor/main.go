package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

const banner = `
  ┌─┐┬─┐┌┐ ┌─┐┬─┐
  ├─┤├┬┘├┴┐│ │├┬┘
  ┴ ┴┴└─└─┘└─┘┴└─
`

func main() {
	rootCmd := &cobra.Command{
		Use:   "arbor",
		Short: "Virtual node trees for Go UIs",
		Long: `Arbor is a virtual node layer for Go UI runtimes.

Trees of elements, text, fragments and components are built into
per-pass arenas, diff-ready and cheap to hand around. The CLI ships
developer tooling around the node layer:

  • arbor bench    build synthetic trees and report allocation stats
  • arbor dump     print a demo tree as JSON
  • arbor inspect  serve the tree inspector over HTTP`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(
		benchCmd(),
		dumpCmd(),
		inspectCmd(),
		versionCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "\033[31mError:\033[0m %s\n", err)
		os.Exit(1)
	}
}

// printBanner prints the Arbor ASCII art banner.
func printBanner() {
	fmt.Print(banner)
}

// info prints an info message.
func info(format string, args ...any) {
	fmt.Printf("  %s\n", fmt.Sprintf(format, args...))
}
