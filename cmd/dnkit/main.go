// Package main provides the dnkit command line tool for working with
// X.509 distinguished names.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

// run executes the CLI and returns an exit code. This is separated
// from main() to facilitate testing.
func run(args []string) int {
	root := newRootCmd()
	root.SetArgs(args)
	if err := root.Execute(); err != nil {
		return 1
	}
	return 0
}

// newRootCmd builds the root command with all subcommands attached.
func newRootCmd() *cobra.Command {
	var logLevel string
	root := &cobra.Command{
		Use:           "dnkit",
		Short:         "Work with X.509 distinguished names",
		Long:          "dnkit parses, normalizes, and DER-encodes X.509 distinguished names (RFC 4514 / RFC 5280).",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return setupLogging(logLevel)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}
	root.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "Log level: debug, info, warn, error")
	root.AddCommand(newEncodeCmd())
	root.AddCommand(newNormalizeCmd())
	root.AddCommand(newLookupCmd())
	root.AddCommand(newVersionCmd())
	return root
}

// setupLogging installs a text slog handler at the requested level.
func setupLogging(level string) error {
	var l slog.Level
	switch level {
	case "debug":
		l = slog.LevelDebug
	case "info":
		l = slog.LevelInfo
	case "warn":
		l = slog.LevelWarn
	case "error":
		l = slog.LevelError
	default:
		return fmt.Errorf("unknown log level %q", level)
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: l})))
	return nil
}
