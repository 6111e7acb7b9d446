// Package report renders the aggregated test results as a single,
// self-contained HTML document.
package report

import (
	"bytes"
	_ "embed"
	"fmt"
	"html/template"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"junit2html/internal/aggregate"
	"junit2html/internal/domain"
)

//go:embed assets/report.html.tmpl
var pageTemplate string

//go:embed assets/report.css
var pageStyles string

//go:embed assets/report.js
var pageScript string

// TimestampLayout is the format of the generation time shown in the header
const TimestampLayout = "2006-01-02 15:04:05"

// Options controls a single rendering
type Options struct {
	Title string
	// GeneratedAt is shown in the header. It is the only input that makes
	// two renderings of the same report differ.
	GeneratedAt time.Time
}

// pageData is the view model passed to the HTML template
type pageData struct {
	Title       string
	GeneratedAt string
	Totals      domain.ReportTotals
	Suites      []domain.SuiteSummary
	Groups      []aggregate.SuiteGroup
	Styles      template.CSS
	Script      template.JS
}

// Renderer renders reports with a parsed page template
type Renderer struct {
	tmpl *template.Template
}

// NewRenderer parses the embedded page template
func NewRenderer() (*Renderer, error) {
	tmpl, err := template.New("report").Funcs(template.FuncMap{
		"elapsed": FormatDuration,
		"seconds": machineSeconds,
		"trim":    strings.TrimSpace,
	}).Parse(pageTemplate)
	if err != nil {
		return nil, fmt.Errorf("could not parse HTML template: %w", err)
	}
	return &Renderer{tmpl: tmpl}, nil
}

// Render writes the HTML document for rep to w
func (r *Renderer) Render(w io.Writer, rep domain.Report, opts Options) error {
	data := pageData{
		Title:       opts.Title,
		GeneratedAt: opts.GeneratedAt.Format(TimestampLayout),
		Totals:      rep.Totals,
		Suites:      rep.Suites,
		Groups:      aggregate.Group(rep.Cases),
		Styles:      template.CSS(pageStyles),
		Script:      template.JS(pageScript),
	}
	if err := r.tmpl.Execute(w, data); err != nil {
		return fmt.Errorf("could not render HTML report: %w", err)
	}
	return nil
}

// RenderString renders the document into a string
func (r *Renderer) RenderString(rep domain.Report, opts Options) (string, error) {
	var buf bytes.Buffer
	if err := r.Render(&buf, rep, opts); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// WriteFile renders the document into path, creating parent directories.
// Nothing is written when rendering fails.
func (r *Renderer) WriteFile(path string, rep domain.Report, opts Options) error {
	var buf bytes.Buffer
	if err := r.Render(&buf, rep, opts); err != nil {
		return err
	}

	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("could not create report directory %q: %w", dir, err)
		}
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("could not write report %q: %w", path, err)
	}
	return nil
}
