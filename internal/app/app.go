package app

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/bethropolis/context-dumper/internal/clipboard"
	"github.com/bethropolis/context-dumper/internal/collector"
	"github.com/bethropolis/context-dumper/internal/config"
	"github.com/bethropolis/context-dumper/internal/logger"
	"github.com/bethropolis/context-dumper/internal/summary"
	"github.com/fatih/color"
)

// App encapsulates the main application functionality
type App struct {
	cfg *config.Config
	log *logger.Logger

	// Out receives user-facing status lines; errors are reported here
	// too, never through the exit code.
	Out io.Writer
}

// New creates a new App instance
func New(cfg *config.Config) *App {
	// Configure color globally
	color.NoColor = !cfg.UseColors

	// Set up logger
	log := logger.New(os.Stderr, cfg.Verbose, cfg.UseColors)

	// Apply log level if specified (overrides verbose/quiet flags)
	if cfg.LogLevel != "" {
		log.SetLevel(cfg.LogLevel)
	} else if cfg.Quiet {
		log.WithLevel(logger.LevelWarn)
	}

	return &App{
		cfg: cfg,
		log: log,
		Out: os.Stdout,
	}
}

// Run executes the main application logic. It always returns normally:
// failures are printed, and the process exit code stays zero.
func (a *App) Run() {
	if a.cfg.ShowVersion {
		fmt.Fprintf(a.Out, "context-dumper version %s\n", a.cfg.Version)
		return
	}

	if a.cfg.Path == "" {
		fmt.Fprintln(a.Out, "Error: no path given. Usage: context-dumper [flags] <path>")
		return
	}

	a.log.Debug("Target path: %s", a.cfg.Path)
	a.log.Debug("Output file: %s", a.cfg.OutputFile)
	a.log.Debug("Clipboard enabled: %v", !a.cfg.NoClipboard)

	// --- Build the report ---
	c := collector.New(collector.WithLogger(a.log))
	output, skipped := c.Collect(a.cfg.Path)

	// --- Save to file ---
	savedTo := ""
	if err := os.WriteFile(a.cfg.OutputFile, []byte(output), 0o644); err != nil {
		fmt.Fprintf(a.Out, "Error saving output to file %s: %v\n", a.cfg.OutputFile, err)
	} else {
		savedTo = a.cfg.OutputFile
	}

	// --- Copy to clipboard ---
	copied := false
	if !a.cfg.NoClipboard {
		if err := clipboard.Copy(output); err != nil {
			fmt.Fprintf(a.Out, "Error copying to clipboard: %v\n", err)
		} else {
			copied = true
		}
	}

	// --- Status lines ---
	info, err := os.Stat(a.cfg.Path)
	if err != nil {
		// The report itself already carries the error message for an
		// invalid target; only add a note when it does not.
		if !strings.HasPrefix(output, "Error:") {
			fmt.Fprintf(a.Out, "Path %s not found.\n", a.cfg.Path)
		}
		return
	}

	pathType := "File"
	if info.IsDir() {
		pathType = "Directory"
	}
	summary.Display(a.Out, summary.Result{
		PathType:   pathType,
		OutputFile: savedTo,
		Copied:     copied,
		Report:     output,
	})

	if a.cfg.ShowSkipped {
		summary.DisplaySkipped(os.Stderr, skipped)
	}
}
