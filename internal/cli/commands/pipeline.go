package commands

import (
	"fmt"
	"io"
	"log/slog"

	"junit2html/internal/aggregate"
	"junit2html/internal/config"
	"junit2html/internal/discovery"
	"junit2html/internal/domain"
	"junit2html/internal/junit"
	"junit2html/internal/ui"
)

// pipeline turns command-line inputs into an aggregated report
type pipeline struct {
	config *config.Config
	filter *discovery.Filter
	parser *junit.Parser
	log    *slog.Logger
}

func newPipeline(cfg *config.Config, log *slog.Logger) *pipeline {
	return &pipeline{
		config: cfg,
		filter: discovery.NewFilter(),
		parser: junit.NewParser(log),
		log:    log,
	}
}

// inputs expands directories and applies the name filter
func (p *pipeline) inputs(args []string) ([]string, error) {
	scanner := discovery.NewScanner(p.config.PathsToIgnore)
	files, err := scanner.Expand(args)
	if err != nil {
		return nil, err
	}

	if p.config.Filter != "" {
		files = p.filter.FilterByName(files, p.config.Filter)
		if len(files) == 0 {
			return nil, fmt.Errorf("no JUnit XML files match filter %q", p.config.Filter)
		}
	}
	p.log.Debug("resolved inputs", "count", len(files), "filter", p.config.Filter)
	return files, nil
}

// load parses every input and aggregates the result. Progress is drawn on
// progressOut unless disabled.
func (p *pipeline) load(args []string, progressOut io.Writer) (domain.Report, []string, error) {
	files, err := p.inputs(args)
	if err != nil {
		return domain.Report{}, nil, err
	}

	var progress junit.Progress
	if !p.config.NoProgress && len(files) > 1 {
		progress = ui.NewProgressBar(progressOut, len(files))
	}

	suites, err := p.parser.Ingest(files, progress)
	if err != nil {
		return domain.Report{}, nil, err
	}

	rep := aggregate.Aggregate(suites)
	p.log.Debug("aggregated report", "suites", rep.Totals.Suites, "tests", rep.Totals.Tests)
	return rep, files, nil
}
