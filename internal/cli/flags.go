package cli

import (
	"github.com/spf13/pflag"

	"junit2html/internal/config"
)

// Flags holds command-line flags
type Flags struct {
	Output     string
	Title      string
	JSONOutput string
	Filter     string
	ConfigFile string
	EnvFile    string
	NoProgress bool
	Verbose    bool

	// browse
	FromJSON string
	All      bool
	Status   string
}

// ToConfigFlags converts CLI flags to config flags. Flags the user did not
// set on the command line are left empty so that they do not mask the
// config file or the environment.
func (f *Flags) ToConfigFlags(fs *pflag.FlagSet) config.Flags {
	changed := func(name string, value string) string {
		if fs != nil && fs.Changed(name) {
			return value
		}
		return ""
	}
	return config.Flags{
		Output:     changed("output", f.Output),
		Title:      changed("title", f.Title),
		JSONOutput: changed("json", f.JSONOutput),
		Filter:     changed("filter", f.Filter),
		ConfigFile: f.ConfigFile,
		EnvFile:    f.EnvFile,
		NoProgress: f.NoProgress,
		Verbose:    f.Verbose,
	}
}
