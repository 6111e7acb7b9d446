package discovery

import (
	"path/filepath"
	"strings"
)

// Filter filters report files by name pattern
type Filter struct{}

// NewFilter creates a new Filter
func NewFilter() *Filter {
	return &Filter{}
}

// FilterByName keeps the files whose base name matches pattern.
// Supports patterns like "TEST-*.xml" or "*integration*"; a pattern without
// wildcards is a substring match.
func (f *Filter) FilterByName(files []string, pattern string) []string {
	if pattern == "" {
		return files
	}

	var filtered []string
	for _, file := range files {
		if matchName(pattern, filepath.Base(file)) {
			filtered = append(filtered, file)
		}
	}
	return filtered
}

func matchName(pattern, name string) bool {
	if matched, err := filepath.Match(pattern, name); err == nil && matched {
		return true
	}

	if !strings.ContainsAny(pattern, "*?") {
		return strings.Contains(name, pattern)
	}

	// "*Payment*" style patterns: every literal part must appear in order
	rest := name
	nonEmpty := false
	for _, part := range strings.Split(pattern, "*") {
		if part == "" {
			continue
		}
		if strings.Contains(part, "?") {
			return false
		}
		idx := strings.Index(rest, part)
		if idx < 0 {
			return false
		}
		rest = rest[idx+len(part):]
		nonEmpty = true
	}
	return nonEmpty
}
