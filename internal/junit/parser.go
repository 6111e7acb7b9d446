package junit

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"golang.org/x/text/encoding/ianaindex"

	"junit2html/internal/domain"
)

// xmlSuite mirrors a <testsuite> element. Counters are kept as strings so
// that absent attributes can be told apart from explicit zeros.
type xmlSuite struct {
	Name     string     `xml:"name,attr"`
	Tests    string     `xml:"tests,attr"`
	Failures string     `xml:"failures,attr"`
	Errors   string     `xml:"errors,attr"`
	Skipped  string     `xml:"skipped,attr"`
	Disabled string     `xml:"disabled,attr"`
	Time     string     `xml:"time,attr"`
	Cases    []xmlCase  `xml:"testcase"`
	Suites   []xmlSuite `xml:"testsuite"`
}

type xmlSuites struct {
	Suites []xmlSuite `xml:"testsuite"`
}

type xmlCase struct {
	Name      string      `xml:"name,attr"`
	Classname string      `xml:"classname,attr"`
	Time      string      `xml:"time,attr"`
	Results   []xmlResult `xml:",any"`
}

// xmlResult captures every child of <testcase>; only failure, error and
// skipped are interpreted.
type xmlResult struct {
	XMLName xml.Name
	Message string `xml:"message,attr"`
	Type    string `xml:"type,attr"`
	Text    string `xml:",chardata"`
}

// ParseError reports an input that could not be read or is not a JUnit report
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// ErrNotJUnit is wrapped by ParseError when the document root is neither
// <testsuites> nor <testsuite>.
var ErrNotJUnit = errors.New("not a JUnit XML report")

// Progress is advanced once per parsed input file
type Progress interface {
	Add(path string)
	Finish()
}

// Parser reads JUnit XML reports
type Parser struct {
	log *slog.Logger
}

// NewParser creates a new Parser
func NewParser(log *slog.Logger) *Parser {
	if log == nil {
		log = slog.Default()
	}
	return &Parser{log: log}
}

// Ingest parses all paths in order and stops at the first failure.
// progress may be nil.
func (p *Parser) Ingest(paths []string, progress Progress) ([]domain.ParsedSuite, error) {
	if progress != nil {
		defer progress.Finish()
	}

	var all []domain.ParsedSuite
	for _, path := range paths {
		suites, err := p.ParseFile(path)
		if err != nil {
			return nil, err
		}
		all = append(all, suites...)
		if progress != nil {
			progress.Add(path)
		}
	}
	return all, nil
}

// ParseFile parses a JUnit report from a file
func (p *Parser) ParseFile(path string) ([]domain.ParsedSuite, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}
	suites, err := p.Parse(bytes.NewReader(data), path)
	if err != nil {
		return nil, err
	}
	p.log.Debug("parsed junit report", "path", path, "suites", len(suites))
	return suites, nil
}

// Parse reads a JUnit report from r. origin names the source for error
// messages and as fallback suite name.
func (p *Parser) Parse(r io.Reader, origin string) ([]domain.ParsedSuite, error) {
	dec := xml.NewDecoder(r)
	dec.CharsetReader = charsetReader
	start, err := rootElement(dec)
	if err != nil {
		return nil, &ParseError{Path: origin, Err: err}
	}

	var raw []xmlSuite
	switch start.Name.Local {
	case "testsuites":
		var doc xmlSuites
		if err := dec.DecodeElement(&doc, &start); err != nil {
			return nil, &ParseError{Path: origin, Err: fmt.Errorf("decode XML: %w", err)}
		}
		raw = doc.Suites
	case "testsuite":
		var suite xmlSuite
		if err := dec.DecodeElement(&suite, &start); err != nil {
			return nil, &ParseError{Path: origin, Err: fmt.Errorf("decode XML: %w", err)}
		}
		raw = []xmlSuite{suite}
	default:
		return nil, &ParseError{Path: origin, Err: fmt.Errorf("%w: unexpected root <%s>", ErrNotJUnit, start.Name.Local)}
	}

	file := filepath.Base(origin)
	var suites []domain.ParsedSuite
	for _, s := range raw {
		suites = appendSuite(suites, s, file)
	}
	return suites, nil
}

// charsetReader decodes documents that declare a non UTF-8 encoding
func charsetReader(label string, input io.Reader) (io.Reader, error) {
	enc, err := ianaindex.IANA.Encoding(label)
	if err != nil {
		return nil, fmt.Errorf("unsupported encoding %q: %w", label, err)
	}
	if enc == nil {
		return nil, fmt.Errorf("unsupported encoding %q", label)
	}
	return enc.NewDecoder().Reader(input), nil
}

// rootElement skips the prolog and returns the first start element
func rootElement(dec *xml.Decoder) (xml.StartElement, error) {
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			return xml.StartElement{}, fmt.Errorf("%w: empty document", ErrNotJUnit)
		}
		if err != nil {
			return xml.StartElement{}, fmt.Errorf("decode XML: %w", err)
		}
		if start, ok := tok.(xml.StartElement); ok {
			return start, nil
		}
	}
}

// appendSuite converts s and flattens any nested suites after it
func appendSuite(out []domain.ParsedSuite, s xmlSuite, file string) []domain.ParsedSuite {
	name := s.Name
	if name == "" {
		name = file
	}

	skipped := parseCount(s.Skipped)
	if skipped == nil {
		skipped = parseCount(s.Disabled)
	}

	suite := domain.ParsedSuite{
		Name:     name,
		File:     file,
		Tests:    parseCount(s.Tests),
		Failures: parseCount(s.Failures),
		Errors:   parseCount(s.Errors),
		Skipped:  skipped,
		Time:     parseSeconds(s.Time),
		Cases:    make([]domain.TestCaseRecord, 0, len(s.Cases)),
	}
	for _, c := range s.Cases {
		suite.Cases = append(suite.Cases, convertCase(c, name, file))
	}

	out = append(out, suite)
	for _, nested := range s.Suites {
		out = appendSuite(out, nested, file)
	}
	return out
}

func convertCase(c xmlCase, suite, file string) domain.TestCaseRecord {
	record := domain.TestCaseRecord{
		Suite:     suite,
		File:      file,
		Classname: strings.TrimSpace(c.Classname),
		Name:      c.Name,
		Status:    domain.StatusPass,
	}
	if sec := parseSeconds(c.Time); sec != nil {
		record.Elapsed = domain.Seconds(*sec)
	}

	var first *xmlResult
	var hasFailure, hasError, hasSkip bool
	for i := range c.Results {
		switch c.Results[i].XMLName.Local {
		case "failure":
			hasFailure = true
		case "error":
			hasError = true
		case "skipped":
			hasSkip = true
		default:
			continue
		}
		if first == nil {
			first = &c.Results[i]
		}
	}

	switch {
	case hasFailure:
		record.Status = domain.StatusFail
	case hasError:
		record.Status = domain.StatusError
	case hasSkip:
		record.Status = domain.StatusSkip
	}
	if first != nil {
		record.Message = first.Message
		record.Detail = first.Text
	}
	return record
}

func parseCount(v string) *int {
	v = strings.TrimSpace(v)
	if v == "" {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		// some producers write counters as floats
		f, ferr := strconv.ParseFloat(v, 64)
		if ferr != nil {
			return nil
		}
		n = int(f)
	}
	return &n
}

func parseSeconds(v string) *float64 {
	v = strings.ReplaceAll(strings.TrimSpace(v), ",", "")
	if v == "" {
		return nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return nil
	}
	return &f
}
