package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"junit2html/internal/domain"
)

// NewMeta fills the counters of meta from the report totals
func NewMeta(rep domain.Report, meta Meta) Meta {
	t := rep.Totals
	meta.Suites = t.Suites
	meta.Tests = t.Tests
	meta.Passed = t.Passed()
	meta.Failures = t.Failures
	meta.Errors = t.Errors
	meta.Skipped = t.Skipped
	meta.Duration = t.Elapsed.String()
	meta.DurationSeconds = t.Elapsed.Seconds()
	return meta
}

// Save writes the report and its summary to path.
func (s *JSONStorage) Save(path string, rep domain.Report, meta Meta) error {
	output := Export{
		Meta:   NewMeta(rep, meta),
		Report: rep,
	}

	data, err := json.MarshalIndent(output, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create output dir: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write summary: %w", err)
	}
	return nil
}

// Load reads a report previously written by Save.
func (s *JSONStorage) Load(path string) (*Export, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read summary file: %w", err)
	}
	var output Export
	if err := json.Unmarshal(data, &output); err != nil {
		return nil, fmt.Errorf("parse summary %s: %w", path, err)
	}
	return &output, nil
}
