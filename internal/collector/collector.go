// Package collector walks a file tree, filters it through the ignore
// matcher, and assembles the combined report.
package collector

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bethropolis/context-dumper/internal/ignore"
	"github.com/bethropolis/context-dumper/internal/report"
	"github.com/bethropolis/context-dumper/internal/tree"
	"github.com/bethropolis/context-dumper/internal/utils"
)

// Collector produces the report for one target path. It is a
// single-shot, synchronous worker: each Collect call owns its own
// report buffer and tracker.
type Collector struct {
	logger utils.Logger
}

// readFile is the content reader; a variable so the read-failure path
// (a file vanishing or losing permissions between the binary sniff and
// the read) can be simulated.
var readFile = os.ReadFile

// Option is a functional option for configuring the Collector
type Option func(*Collector)

// WithLogger sets the logger used during collection.
func WithLogger(logger utils.Logger) Option {
	return func(c *Collector) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// New creates a Collector.
func New(opts ...Option) *Collector {
	c := &Collector{logger: utils.NoopLogger{}}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Collect builds the report for target, which may be a directory or a
// single file. It never fails: an unusable target yields a report that
// consists solely of an error message. The returned slice records
// entries that were filtered out of a directory run and why.
func (c *Collector) Collect(target string) (string, []SkippedItem) {
	abs, err := filepath.Abs(target)
	if err != nil {
		return fmt.Sprintf("Error: %s is neither a file nor a directory", target), nil
	}

	info, err := os.Stat(abs)
	switch {
	case err == nil && info.IsDir():
		return c.collectDirectory(abs)
	case err == nil:
		return c.collectSingleFile(abs), nil
	default:
		return fmt.Sprintf("Error: %s is neither a file nor a directory", abs), nil
	}
}

// collectSingleFile emits a short header plus one content block.
// Ignore rules do not apply to a single-file invocation.
func (c *Collector) collectSingleFile(abs string) string {
	b := report.New()
	b.StartSingleFile(filepath.Base(abs))

	data, err := readFile(abs)
	if err != nil {
		b.AddErrorLine(err)
		return b.String()
	}
	b.AddFile(filepath.Base(abs), decode(data))
	return b.String()
}

func (c *Collector) collectDirectory(abs string) (string, []SkippedItem) {
	matcher, err := ignore.New(abs, ignore.WithLogger(c.logger))
	if err != nil {
		// Degrade to an empty pattern set; filtering simply stops
		// applying rather than aborting the run.
		c.logger.Warn("collector: could not initialize ignore rules for %s: %v", abs, err)
		matcher, _ = ignore.New(abs, ignore.WithPatterns(nil))
	}

	b := report.New()
	b.StartDirectory(tree.New(matcher, tree.WithLogger(c.logger)).Render(abs))

	t := &tracker{}
	c.walk(abs, abs, matcher, b, t)
	return b.String(), t.items
}

// walk processes the files of dir, then descends into the surviving
// subdirectories. Entries are partitioned into an explicit keep-set
// before recursion; nothing is mutated mid-iteration.
func (c *Collector) walk(dir, root string, matcher *ignore.Matcher, b *report.Builder, t *tracker) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		// The subtree is simply absent from content collection; the
		// tree section carries its own marker for this directory.
		c.logger.Warn("collector: could not list %s: %v", dir, err)
		t.track(dir, ReasonListError, true)
		return
	}

	var files, dirs []os.DirEntry
	for _, e := range entries {
		if e.IsDir() {
			dirs = append(dirs, e)
		} else {
			files = append(files, e)
		}
	}

	// Subdirectories are pruned in two passes: ignore rules first,
	// hidden names second.
	var kept []os.DirEntry
	for _, d := range dirs {
		if matcher.IgnoredEntry(filepath.Join(dir, d.Name()), true) {
			t.track(filepath.Join(dir, d.Name()), ReasonIgnoredRule, true)
			continue
		}
		kept = append(kept, d)
	}
	var descend []os.DirEntry
	for _, d := range kept {
		if strings.HasPrefix(d.Name(), ".") {
			t.track(filepath.Join(dir, d.Name()), ReasonHidden, true)
			continue
		}
		descend = append(descend, d)
	}

	for _, f := range files {
		c.collectFile(filepath.Join(dir, f.Name()), root, matcher, b, t)
	}
	for _, d := range descend {
		c.walk(filepath.Join(dir, d.Name()), root, matcher, b, t)
	}
}

func (c *Collector) collectFile(path, root string, matcher *ignore.Matcher, b *report.Builder, t *tracker) {
	name := filepath.Base(path)

	if matcher.IgnoredEntry(path, false) {
		t.track(path, ReasonIgnoredRule, false)
		return
	}
	if strings.HasPrefix(name, ".") {
		t.track(path, ReasonHidden, false)
		return
	}
	if IsBinary(path) {
		t.track(path, ReasonBinary, false)
		return
	}

	rel, err := filepath.Rel(root, path)
	if err != nil {
		rel = name
	}

	data, err := readFile(path)
	if err != nil {
		c.logger.Warn("collector: could not read %s: %v", rel, err)
		t.track(path, ReasonReadError, false)
		b.AddErrorBlock(rel, err)
		return
	}

	content := decode(data)
	if strings.TrimSpace(content) == "" {
		t.track(path, ReasonEmpty, false)
		return
	}

	c.logger.Debug("collector: adding %s (%d bytes)", rel, len(data))
	b.AddFile(rel, content)
}

// decode interprets raw bytes as UTF-8 text, replacing invalid
// sequences instead of failing.
func decode(data []byte) string {
	return strings.ToValidUTF8(string(data), "�")
}
