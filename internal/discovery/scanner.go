package discovery

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// ErrNoInputs is returned when expansion yields no files at all
var ErrNoInputs = errors.New("no JUnit XML files found")

// Scanner expands report inputs into a list of XML files
type Scanner struct {
	skipDirs map[string]bool
}

// NewScanner creates a new Scanner with the given directories to skip
func NewScanner(skipDirs []string) *Scanner {
	skipMap := make(map[string]bool)
	for _, dir := range skipDirs {
		skipMap[dir] = true
	}
	return &Scanner{skipDirs: skipMap}
}

// Expand replaces every directory in paths by the XML files found beneath it.
// Other paths are kept as given, so a missing file is reported by the parser
// rather than here.
func (s *Scanner) Expand(paths []string) ([]string, error) {
	var files []string
	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil || !info.IsDir() {
			files = append(files, p)
			continue
		}
		found, err := s.Scan(p)
		if err != nil {
			return nil, err
		}
		files = append(files, found...)
	}
	if len(files) == 0 {
		return nil, ErrNoInputs
	}
	return files, nil
}

// Scan finds all XML files in the given root directory, sorted by path
func (s *Scanner) Scan(root string) ([]string, error) {
	var reports []string

	root = filepath.Clean(root)
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("report path does not exist: %s", root)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("report path is not a directory: %s", root)
	}

	err = filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			// the root was named explicitly and is always scanned
			if path == root {
				return nil
			}
			name := d.Name()
			if strings.HasPrefix(name, ".") || s.skipDirs[name] {
				return filepath.SkipDir
			}
			return nil
		}

		if strings.EqualFold(filepath.Ext(d.Name()), ".xml") {
			reports = append(reports, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scan %s: %w", root, err)
	}

	sort.Strings(reports)
	return reports, nil
}
