package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"junit2html/internal/aggregate"
	"junit2html/internal/config"
	"junit2html/internal/report"
	"junit2html/internal/storage"
	"junit2html/internal/ui"
)

// RenderCommand converts JUnit XML inputs into the HTML report
type RenderCommand struct {
	config   *config.Config
	pipeline *pipeline
	renderer *report.Renderer
	storage  storage.Storage
	now      func() time.Time
}

// NewRenderCommand creates a new RenderCommand
func NewRenderCommand(cfg *config.Config, p *pipeline, renderer *report.Renderer, st storage.Storage) *RenderCommand {
	return &RenderCommand{
		config:   cfg,
		pipeline: p,
		renderer: renderer,
		storage:  st,
		now:      time.Now,
	}
}

// Execute runs the command
func (rc *RenderCommand) Execute(cmd *cobra.Command, args []string) error {
	rep, files, err := rc.pipeline.load(args, cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	generatedAt := rc.now()
	opts := report.Options{Title: rc.config.Title, GeneratedAt: generatedAt}
	if err := rc.renderer.WriteFile(rc.config.Output, rep, opts); err != nil {
		return fmt.Errorf("write report: %w", err)
	}

	formatter := ui.NewFormatter(cmd.OutOrStdout())
	formatter.PrintWritten(rc.config.Output)

	if rc.config.JSONOutput != "" {
		meta := storage.Meta{Title: rc.config.Title, GeneratedAt: generatedAt, Inputs: files}
		if err := rc.storage.Save(rc.config.JSONOutput, rep, meta); err != nil {
			return fmt.Errorf("failed to save summary: %w", err)
		}
		formatter.PrintWritten(rc.config.JSONOutput)
	}

	formatter.PrintSummary(rep.Totals)

	if rc.config.Verbose {
		formatter.PrintSuiteTable(rep.Suites)
		formatter.PrintFailureTree(aggregate.Group(rep.Cases))
	}
	return nil
}
