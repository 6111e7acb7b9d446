package ui

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/schollz/progressbar/v3"
)

// ProgressBar shows how many input files have been parsed
type ProgressBar struct {
	bar    *progressbar.ProgressBar
	parsed int
}

// NewProgressBar creates a new progress bar for count files writing to w
func NewProgressBar(w io.Writer, count int) *ProgressBar {
	bar := progressbar.NewOptions(count,
		progressbar.OptionSetDescription(color.CyanString("Parsing reports: ")),
		progressbar.OptionSetWidth(50),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        color.CyanString("█"),
			SaucerHead:    color.CyanString("█"),
			SaucerPadding: "░",
			BarStart:      "│",
			BarEnd:        "│",
		}),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSetWriter(w),
		progressbar.OptionShowCount(),
		progressbar.OptionOnCompletion(func() {
			fmt.Fprint(w, "\n")
		}),
		progressbar.OptionSetRenderBlankState(true),
	)

	return &ProgressBar{bar: bar}
}

// Add advances the bar by one parsed file
func (p *ProgressBar) Add(path string) {
	p.parsed++
	p.bar.Describe(color.CyanString("Parsing reports: ") + filepath.Base(path))
	_ = p.bar.Set(p.parsed)
}

// Finish completes the progress bar
func (p *ProgressBar) Finish() {
	_ = p.bar.Finish()
}
