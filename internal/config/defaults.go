package config

const (
	// DefaultOutput is the default HTML report path
	DefaultOutput = "junit-report.html"
	// DefaultTitle is the default report title
	DefaultTitle = "JUnit Report"
	// DefaultEnvFile is the dotenv file read on startup when present
	DefaultEnvFile = ".env"
)

// Environment variables overriding the config file
const (
	EnvOutput = "JUNIT2HTML_OUTPUT"
	EnvTitle  = "JUNIT2HTML_TITLE"
	EnvJSON   = "JUNIT2HTML_JSON"
	EnvFilter = "JUNIT2HTML_FILTER"
)

// DefaultPathsToIgnore are the directories skipped when scanning a directory for reports
var DefaultPathsToIgnore = []string{
	"node_modules",
	"vendor",
}
