package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"junit2html/internal/cli"
	"junit2html/internal/config"
	"junit2html/internal/domain"
	"junit2html/internal/storage"
	"junit2html/internal/ui"
)

// BrowseCommand opens the interactive case browser
type BrowseCommand struct {
	config   *config.Config
	flags    *cli.Flags
	pipeline *pipeline
	storage  storage.Storage
	viewer   ui.Viewer
}

// NewBrowseCommand creates a new BrowseCommand
func NewBrowseCommand(cfg *config.Config, flags *cli.Flags, p *pipeline, st storage.Storage, viewer ui.Viewer) *BrowseCommand {
	return &BrowseCommand{
		config:   cfg,
		flags:    flags,
		pipeline: p,
		storage:  st,
		viewer:   viewer,
	}
}

// Args accepts no inputs only when a JSON summary is given
func (bc *BrowseCommand) Args(cmd *cobra.Command, args []string) error {
	if bc.flags.FromJSON == "" && len(args) == 0 {
		return errors.New("requires at least 1 input or --from-json")
	}
	return nil
}

// Execute runs the command
func (bc *BrowseCommand) Execute(cmd *cobra.Command, args []string) error {
	title := bc.config.Title
	var rep domain.Report

	if bc.flags.FromJSON != "" {
		export, err := bc.storage.Load(bc.flags.FromJSON)
		if err != nil {
			return err
		}
		rep = export.Report
		if export.Meta.Title != "" && !cmd.Flags().Changed("title") {
			title = export.Meta.Title
		}
	} else {
		var err error
		rep, _, err = bc.pipeline.load(args, cmd.ErrOrStderr())
		if err != nil {
			return err
		}
	}

	all := bc.flags.All
	if bc.flags.Status != "" && bc.flags.Status != "all" {
		status, ok := domain.ParseStatus(bc.flags.Status)
		if !ok {
			return fmt.Errorf("unknown status %q (want pass, fail, error or skip)", bc.flags.Status)
		}
		rep.Cases = casesWithStatus(rep.Cases, status)
		all = true
	}

	return bc.viewer.View(title, rep, all)
}

func casesWithStatus(cases []domain.TestCaseRecord, status domain.Status) []domain.TestCaseRecord {
	var out []domain.TestCaseRecord
	for _, tc := range cases {
		if tc.Status == status {
			out = append(out, tc)
		}
	}
	return out
}
