package main

import (
	"fmt"
	"log/slog"
	"os"

	"junit2html/internal/cli"
	"junit2html/internal/cli/commands"
	"junit2html/internal/config"

	"github.com/spf13/cobra"
)

var version = "dev"

func main() {
	// Create root command
	rootCmd := &cobra.Command{
		Use:     "junit2html",
		Short:   "Convert JUnit XML results into a single HTML report",
		Long:    `Convert one or more JUnit XML test-result files into a single self-contained HTML report with client-side filtering, sorting and search.`,
		Version: version,
	}

	// Create initial config with defaults
	cfg := config.New()

	// Create flags struct (will be populated by command flags)
	var flags cli.Flags

	var logLevel slog.LevelVar
	log := cli.NewLogger(os.Stderr, &logLevel)
	slog.SetDefault(log)

	// Create commands with dependencies
	cmds, err := commands.NewCommands(cfg, &flags, log, &logLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Register all commands
	cmds.Register(rootCmd, &flags, cfg)

	// Execute root command
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
