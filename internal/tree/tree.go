// Package tree renders the filtered directory structure as an
// indented ASCII-art listing.
package tree

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bethropolis/context-dumper/internal/ignore"
	"github.com/bethropolis/context-dumper/internal/utils"
)

// Renderer produces the tree section of a report. Entries excluded by
// the matcher are omitted entirely; hidden directories are listed as
// leaves but never expanded.
type Renderer struct {
	matcher *ignore.Matcher
	logger  utils.Logger
}

// Option is a functional option for configuring the Renderer
type Option func(*Renderer)

// WithLogger sets the logger used for traversal tracing.
func WithLogger(logger utils.Logger) Option {
	return func(r *Renderer) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// New creates a Renderer that filters entries through matcher.
func New(matcher *ignore.Matcher, opts ...Option) *Renderer {
	r := &Renderer{
		matcher: matcher,
		logger:  utils.NoopLogger{},
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Render returns the tree for rootDir. The first line is the root's
// own base name; failures are reported as descriptive text in the
// returned string, never as an error value, so a partial tree is
// always usable inside a larger report.
func (r *Renderer) Render(rootDir string) string {
	abs, err := filepath.Abs(rootDir)
	if err != nil {
		return fmt.Sprintf("Error: %s is not a directory", rootDir)
	}
	info, err := os.Stat(abs)
	if err != nil || !info.IsDir() {
		return fmt.Sprintf("Error: %s is not a directory", rootDir)
	}

	// The accumulator is threaded through the recursion explicitly
	// rather than captured by a closure.
	b := &builder{}
	b.add(filepath.Base(abs))
	r.walk(abs, "", b)
	return b.String()
}

// builder accumulates rendered lines.
type builder struct {
	lines []string
}

func (b *builder) add(line string) {
	b.lines = append(b.lines, line)
}

func (b *builder) String() string {
	return strings.Join(b.lines, "\n")
}

func (r *Renderer) walk(dir, prefix string, b *builder) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsPermission(err) {
			b.add(prefix + "(Permission denied)")
		} else {
			b.add(fmt.Sprintf("%s(Error listing directory: %v)", prefix, err))
		}
		return
	}

	// os.ReadDir returns entries sorted by name. Filter before laying
	// out branches so the last surviving sibling gets the closing glyph.
	var kept []os.DirEntry
	for _, e := range entries {
		if r.matcher.IgnoredEntry(filepath.Join(dir, e.Name()), e.IsDir()) {
			r.logger.Debug("tree: omitting %q (ignore rule)", e.Name())
			continue
		}
		kept = append(kept, e)
	}

	for i, e := range kept {
		branch, childPrefix := "├── ", prefix+"│   "
		if i == len(kept)-1 {
			branch, childPrefix = "└── ", prefix+"    "
		}
		b.add(prefix + branch + e.Name())

		// Hidden directories appear as a leaf line but are not expanded.
		if e.IsDir() && !strings.HasPrefix(e.Name(), ".") {
			r.walk(filepath.Join(dir, e.Name()), childPrefix, b)
		}
	}
}
