package junit

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"junit2html/internal/domain"
)

const singleSuite = `<?xml version="1.0" encoding="UTF-8"?>
<testsuite name="Suite1" tests="2" failures="1" errors="0" skipped="0" time="3.5">
  <testcase classname="pkg.Calc" name="test_a" time="1.0"/>
  <testcase classname="pkg.Calc" name="test_b" time="2.5">
    <failure message="assertion failed" type="AssertionError">Traceback line 1
line 2</failure>
  </testcase>
</testsuite>`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestParser_Parse(t *testing.T) {
	parser := NewParser(nil)

	t.Run("single testsuite root", func(t *testing.T) {
		suites, err := parser.Parse(strings.NewReader(singleSuite), "reports/TEST-calc.xml")
		require.NoError(t, err)
		require.Len(t, suites, 1)

		s := suites[0]
		assert.Equal(t, "Suite1", s.Name)
		assert.Equal(t, "TEST-calc.xml", s.File)
		require.NotNil(t, s.Tests)
		assert.Equal(t, 2, *s.Tests)
		require.NotNil(t, s.Time)
		assert.InDelta(t, 3.5, *s.Time, 1e-9)
		require.Len(t, s.Cases, 2)

		assert.Equal(t, domain.StatusPass, s.Cases[0].Status)
		assert.Equal(t, time.Second, s.Cases[0].Elapsed)

		b := s.Cases[1]
		assert.Equal(t, domain.StatusFail, b.Status)
		assert.Equal(t, "assertion failed", b.Message)
		assert.Equal(t, "Traceback line 1\nline 2", b.Detail)
		assert.Equal(t, 2500*time.Millisecond, b.Elapsed)
		assert.Equal(t, "Suite1", b.Suite)
		assert.Equal(t, "pkg.Calc", b.Classname)
	})

	t.Run("testsuites root with several suites", func(t *testing.T) {
		doc := `<testsuites>
  <testsuite name="A"><testcase name="one"/></testsuite>
  <testsuite name="B"><testcase name="two"/><testcase name="three"/></testsuite>
</testsuites>`
		suites, err := parser.Parse(strings.NewReader(doc), "all.xml")
		require.NoError(t, err)
		require.Len(t, suites, 2)
		assert.Equal(t, "A", suites[0].Name)
		assert.Equal(t, "B", suites[1].Name)
		assert.Len(t, suites[1].Cases, 2)
	})

	t.Run("nested suites are flattened", func(t *testing.T) {
		doc := `<testsuite name="outer"><testcase name="a"/>
  <testsuite name="inner"><testcase name="b"/></testsuite>
</testsuite>`
		suites, err := parser.Parse(strings.NewReader(doc), "nested.xml")
		require.NoError(t, err)
		require.Len(t, suites, 2)
		assert.Equal(t, "outer", suites[0].Name)
		assert.Equal(t, "inner", suites[1].Name)
		assert.Equal(t, "inner", suites[1].Cases[0].Suite)
	})

	t.Run("missing suite name falls back to file name", func(t *testing.T) {
		suites, err := parser.Parse(strings.NewReader(`<testsuite><testcase name="x"/></testsuite>`), "/tmp/out/TEST-x.xml")
		require.NoError(t, err)
		assert.Equal(t, "TEST-x.xml", suites[0].Name)
		assert.Equal(t, "TEST-x.xml", suites[0].Cases[0].Suite)
	})

	t.Run("missing optional attributes stay unset", func(t *testing.T) {
		suites, err := parser.Parse(strings.NewReader(`<testsuite name="S"><testcase name="x"/></testsuite>`), "s.xml")
		require.NoError(t, err)
		s := suites[0]
		assert.Nil(t, s.Tests)
		assert.Nil(t, s.Failures)
		assert.Nil(t, s.Errors)
		assert.Nil(t, s.Skipped)
		assert.Nil(t, s.Time)
		assert.Equal(t, time.Duration(0), s.Cases[0].Elapsed)
	})

	t.Run("disabled is used when skipped is absent", func(t *testing.T) {
		suites, err := parser.Parse(strings.NewReader(`<testsuite name="S" disabled="3"></testsuite>`), "s.xml")
		require.NoError(t, err)
		require.NotNil(t, suites[0].Skipped)
		assert.Equal(t, 3, *suites[0].Skipped)
	})

	t.Run("latin-1 declared encoding", func(t *testing.T) {
		doc := "<?xml version=\"1.0\" encoding=\"ISO-8859-1\"?>" +
			"<testsuite name=\"S\"><testcase name=\"caf\xe9\"><failure message=\"\xfcber\"/></testcase></testsuite>"
		suites, err := parser.Parse(strings.NewReader(doc), "latin1.xml")
		require.NoError(t, err)
		require.Len(t, suites[0].Cases, 1)
		assert.Equal(t, "café", suites[0].Cases[0].Name)
		assert.Equal(t, "über", suites[0].Cases[0].Message)
	})

	t.Run("unknown declared encoding", func(t *testing.T) {
		doc := `<?xml version="1.0" encoding="x-no-such-charset"?><testsuite name="S"/>`
		_, err := parser.Parse(strings.NewReader(doc), "odd.xml")
		var perr *ParseError
		require.True(t, errors.As(err, &perr))
		assert.Contains(t, err.Error(), "unsupported encoding")
	})

	t.Run("time with thousands separator", func(t *testing.T) {
		suites, err := parser.Parse(strings.NewReader(`<testsuite name="S" time="1,234.5"></testsuite>`), "s.xml")
		require.NoError(t, err)
		require.NotNil(t, suites[0].Time)
		assert.InDelta(t, 1234.5, *suites[0].Time, 1e-9)
	})
}

func TestParser_StatusClassification(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		status     domain.Status
		message    string
		hasDetails bool
	}{
		{name: "no child", body: ``, status: domain.StatusPass},
		{name: "failure", body: `<failure message="boom">trace</failure>`, status: domain.StatusFail, message: "boom", hasDetails: true},
		{name: "error", body: `<error message="npe">stack</error>`, status: domain.StatusError, message: "npe", hasDetails: true},
		{name: "bare skipped", body: `<skipped/>`, status: domain.StatusSkip},
		{name: "skipped with message", body: `<skipped message="not on CI"/>`, status: domain.StatusSkip, message: "not on CI", hasDetails: true},
		{name: "failure wins over error", body: `<error message="first"/><failure message="second"/>`, status: domain.StatusFail, message: "first", hasDetails: true},
		{name: "system-out ignored", body: `<system-out>hello</system-out>`, status: domain.StatusPass},
	}

	parser := NewParser(nil)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := `<testsuite name="S"><testcase name="c">` + tt.body + `</testcase></testsuite>`
			suites, err := parser.Parse(strings.NewReader(doc), "s.xml")
			require.NoError(t, err)
			c := suites[0].Cases[0]
			assert.Equal(t, tt.status, c.Status)
			assert.Equal(t, tt.message, c.Message)
			assert.Equal(t, tt.hasDetails, c.HasDetails())
		})
	}
}

func TestParser_Errors(t *testing.T) {
	parser := NewParser(nil)

	tests := []struct {
		name  string
		input string
	}{
		{name: "empty input", input: ""},
		{name: "not xml", input: "invalid xml"},
		{name: "truncated", input: `<testsuite name="S"><testcase name="a">`},
		{name: "foreign root", input: `<project><target/></project>`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parser.Parse(strings.NewReader(tt.input), "bad.xml")
			require.Error(t, err)
			var perr *ParseError
			require.True(t, errors.As(err, &perr), "expected ParseError, got %T", err)
			assert.Equal(t, "bad.xml", perr.Path)
		})
	}

	t.Run("foreign root wraps ErrNotJUnit", func(t *testing.T) {
		_, err := parser.Parse(strings.NewReader(`<html/>`), "page.html")
		assert.ErrorIs(t, err, ErrNotJUnit)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := parser.ParseFile(filepath.Join(t.TempDir(), "nope.xml"))
		var perr *ParseError
		require.ErrorAs(t, err, &perr)
		assert.ErrorIs(t, err, os.ErrNotExist)
	})
}

type countingProgress struct {
	paths    []string
	finished bool
}

func (c *countingProgress) Add(path string) { c.paths = append(c.paths, path) }
func (c *countingProgress) Finish()         { c.finished = true }

func TestParser_Ingest(t *testing.T) {
	dir := t.TempDir()
	good := writeFile(t, dir, "good.xml", singleSuite)
	other := writeFile(t, dir, "other.xml", `<testsuite name="Other"><testcase name="z"/></testsuite>`)
	bad := writeFile(t, dir, "bad.xml", "<testsuite")

	parser := NewParser(nil)

	t.Run("parses every file in order", func(t *testing.T) {
		progress := &countingProgress{}
		suites, err := parser.Ingest([]string{good, other}, progress)
		require.NoError(t, err)
		require.Len(t, suites, 2)
		assert.Equal(t, "Suite1", suites[0].Name)
		assert.Equal(t, "Other", suites[1].Name)
		assert.Equal(t, []string{good, other}, progress.paths)
		assert.True(t, progress.finished)
	})

	t.Run("aborts on first failure", func(t *testing.T) {
		suites, err := parser.Ingest([]string{good, bad, other}, nil)
		require.Error(t, err)
		assert.Nil(t, suites)
		var perr *ParseError
		require.ErrorAs(t, err, &perr)
		assert.Equal(t, bad, perr.Path)
	})
}
