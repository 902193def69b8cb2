// SPDX-License-Identifier: MIT
//
// Package cli implements the lsapctl command-line interface: solve reads a
// cost matrix from JSON/CSV and prints the optimal assignment; random
// generates a deterministic bipartite fixture via builder.CompleteBipartite.
// Both subcommands share the --verbose flag, gating the logrus level the
// same way stacktower's root command gates charmbracelet/log.
package cli

import (
	"context"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	version string
	commit  string
)

// SetVersion records build metadata injected via ldflags, displayed by
// --version.
func SetVersion(v, c string) {
	version = v
	commit = c
}

// Execute builds and runs the lsapctl command tree under ctx.
func Execute(ctx context.Context) error {
	var verbose bool
	var configPath string

	root := &cobra.Command{
		Use:          "lsapctl",
		Short:        "Solve rectangular linear sum assignment problems",
		Long:         "lsapctl solves the assignment problem (LSAP) for a dense cost matrix via the shortest-augmenting-path algorithm, or generates random bipartite fixtures for it.",
		Version:      version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := log.InfoLevel
			if verbose {
				level = log.DebugLevel
			}
			// lsap's WithVerbose tracer logs through the standard logger.
			log.SetLevel(level)
			cmd.SetContext(withLogger(cmd.Context(), newLogger(level)))
			return nil
		},
	}

	if commit != "" {
		root.SetVersionTemplate("lsapctl " + version + " (" + commit + ")\n")
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "trace every augmentation via structured logging")
	root.PersistentFlags().StringVar(&configPath, "config", "", "optional TOML file supplying default solve options")

	root.AddCommand(newSolveCmd(&configPath))
	root.AddCommand(newRandomCmd())

	return root.ExecuteContext(ctx)
}
