package config

import (
	"flag"
	"os"

	"github.com/mattn/go-isatty"
)

// DefaultOutputFile is the report filename used when -o is not given.
const DefaultOutputFile = "context.txt"

// Config holds all application configuration settings
type Config struct {
	// Target settings
	Path       string
	OutputFile string

	// Collaborator settings
	NoClipboard bool

	// Logging settings
	Verbose     bool
	Quiet       bool
	LogLevel    string
	NoColor     bool
	UseColors   bool
	ShowSkipped bool

	// Version info
	ShowVersion bool
	Version     string
}

// New creates a new Config with values from command-line flags
func New() *Config {
	c := &Config{
		Version: "1.0.0", // Update this when releasing new versions
	}

	flag.StringVar(&c.OutputFile, "output", DefaultOutputFile, "Output file name")
	flag.StringVar(&c.OutputFile, "o", DefaultOutputFile, "Output file name (shorthand)")
	flag.BoolVar(&c.NoClipboard, "no-clipboard", false, "Do not copy the report to the system clipboard")
	flag.BoolVar(&c.Verbose, "verbose", false, "Enable verbose logging (DEBUG, WARN, ERROR)")
	flag.BoolVar(&c.Quiet, "quiet", false, "Suppress INFO messages (only show WARN, ERROR)")
	flag.StringVar(&c.LogLevel, "log-level", "", "Set the logging level (DEBUG, INFO, WARN, ERROR)")
	flag.BoolVar(&c.NoColor, "no-color", false, "Disable color output")
	flag.BoolVar(&c.ShowSkipped, "show-skipped", false, "Show a list of skipped files/directories and reasons at the end")
	flag.BoolVar(&c.ShowVersion, "version", false, "Show version information")

	flag.Parse()

	// The single positional argument is the directory or file to process.
	c.Path = flag.Arg(0)

	// Determine if colors should be used
	c.UseColors = !c.NoColor && isatty.IsTerminal(os.Stderr.Fd())

	return c
}
