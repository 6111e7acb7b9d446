package commands

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"junit2html/internal/cli"
	"junit2html/internal/config"
	"junit2html/internal/report"
	"junit2html/internal/storage"
	"junit2html/internal/ui"
)

// Commands holds all CLI commands
type Commands struct {
	Render *RenderCommand
	Browse *BrowseCommand

	logLevel *slog.LevelVar
}

// NewCommands creates all commands with dependencies. The config is filled
// in once flags are parsed.
func NewCommands(cfg *config.Config, flags *cli.Flags, log *slog.Logger, logLevel *slog.LevelVar) (*Commands, error) {
	renderer, err := report.NewRenderer()
	if err != nil {
		return nil, err
	}

	p := newPipeline(cfg, log)
	jsonStorage := storage.NewJSONStorage()
	viewer := ui.NewErrorViewer(os.Stdout)

	return &Commands{
		Render:   NewRenderCommand(cfg, p, renderer, jsonStorage),
		Browse:   NewBrowseCommand(cfg, flags, p, jsonStorage, viewer),
		logLevel: logLevel,
	}, nil
}

// Register registers all commands with cobra
func (c *Commands) Register(rootCmd *cobra.Command, flags *cli.Flags, cfg *config.Config) {
	rootCmd.Use = "junit2html [flags] <input>..."
	rootCmd.Args = cobra.MinimumNArgs(1)
	rootCmd.RunE = c.Render.Execute
	rootCmd.SilenceUsage = true
	rootCmd.SilenceErrors = true
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		// Update config with flags after parsing
		loaded, err := config.Load(flags.ToConfigFlags(cmd.Flags()))
		if err != nil {
			return err
		}
		*cfg = *loaded
		cli.SetVerbose(c.logLevel, cfg.Verbose)
		return nil
	}

	rootCmd.Flags().StringVarP(&flags.Output, "output", "o", config.DefaultOutput, "Path of the HTML report to write")
	rootCmd.Flags().StringVar(&flags.JSONOutput, "json", "", "Also write the aggregated results as JSON to this path")

	persistent := rootCmd.PersistentFlags()
	persistent.StringVar(&flags.Title, "title", config.DefaultTitle, "Report title")
	persistent.StringVarP(&flags.Filter, "filter", "f", "", "Filter input files by name pattern (supports wildcards, e.g., 'TEST-*.xml' or '*integration*')")
	persistent.StringVarP(&flags.ConfigFile, "config", "c", "", "YAML config file")
	persistent.StringVar(&flags.EnvFile, "env-file", config.DefaultEnvFile, "Dotenv file read for JUNIT2HTML_* variables")
	persistent.BoolVar(&flags.NoProgress, "no-progress", false, "Do not draw a progress bar while parsing")
	persistent.BoolVarP(&flags.Verbose, "verbose", "v", false, "Print per-suite statistics and debug logs")

	// Browse command
	browseCmd := &cobra.Command{
		Use:   "browse [flags] <input>...",
		Short: "Browse test results interactively",
		Long:  "Parse JUnit XML inputs, or a JSON summary written with --json, and browse the failing cases in a terminal UI",
		Args:  c.Browse.Args,
		RunE:  c.Browse.Execute,
	}
	browseCmd.Flags().StringVar(&flags.FromJSON, "from-json", "", "Read results from a JSON summary instead of XML inputs")
	browseCmd.Flags().BoolVar(&flags.All, "all", false, "Show passing cases too")
	browseCmd.Flags().StringVarP(&flags.Status, "status", "s", "", "Only show cases with this status (pass, fail, error, skip)")
	rootCmd.AddCommand(browseCmd)
}
