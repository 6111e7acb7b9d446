package storage

import (
	"time"

	"junit2html/internal/domain"
)

// Storage persists an aggregated report next to the HTML output and loads
// it back for the browse command.
type Storage interface {
	Save(path string, rep domain.Report, meta Meta) error
	Load(path string) (*Export, error)
}

// Meta describes the run that produced an export
type Meta struct {
	Title           string    `json:"title"`
	GeneratedAt     time.Time `json:"generated_at"`
	Inputs          []string  `json:"inputs,omitempty"`
	Suites          int       `json:"suites"`
	Tests           int       `json:"tests"`
	Passed          int       `json:"passed"`
	Failures        int       `json:"failures"`
	Errors          int       `json:"errors"`
	Skipped         int       `json:"skipped"`
	Duration        string    `json:"duration"`
	DurationSeconds float64   `json:"duration_seconds"`
}

// Export is the JSON document written by Save
type Export struct {
	Meta   Meta          `json:"meta"`
	Report domain.Report `json:"report"`
}

// JSONStorage stores reports as indented JSON files.
type JSONStorage struct{}

// NewJSONStorage returns a Storage backed by JSON files
func NewJSONStorage() *JSONStorage {
	return &JSONStorage{}
}
