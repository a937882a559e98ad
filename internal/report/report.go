// Package report assembles the combined output document: an optional
// tree section followed by delimited per-file content blocks.
package report

import (
	"fmt"
	"strings"
	"sync/atomic"
)

// delimiter separates block headers from content.
var delimiter = strings.Repeat("=", 80)

// Builder accumulates the report text in memory. Each run owns its
// Builder exclusively; only the file counter is atomic, so it can be
// read while a status line is being produced elsewhere.
type Builder struct {
	buf   strings.Builder
	count atomic.Int64
}

// New creates an empty report Builder.
func New() *Builder {
	return &Builder{}
}

// StartDirectory writes the directory-mode preamble: the rendered tree
// followed by the content-section header.
func (b *Builder) StartDirectory(tree string) {
	fmt.Fprintf(&b.buf, "Directory Structure:\n%s\n\nFile Contents:\n", tree)
}

// StartSingleFile writes the single-file-mode preamble.
func (b *Builder) StartSingleFile(name string) {
	fmt.Fprintf(&b.buf, "Processing single file: %s\n", name)
}

// AddFile appends one content block for the file at displayPath.
func (b *Builder) AddFile(displayPath, content string) {
	b.count.Add(1)
	fmt.Fprintf(&b.buf, "\n%s\nFile: %s\n%s\n%s\n", delimiter, displayPath, delimiter, content)
}

// AddErrorBlock appends a content block whose body is a read-failure
// message; unreadable files are reported in place, not dropped.
func (b *Builder) AddErrorBlock(displayPath string, err error) {
	fmt.Fprintf(&b.buf, "\n%s\nFile: %s\n%s\nError reading file: %v\n", delimiter, displayPath, delimiter, err)
}

// AddErrorLine appends a bare read-failure line, used in single-file
// mode where there is no block to attach the message to.
func (b *Builder) AddErrorLine(err error) {
	fmt.Fprintf(&b.buf, "\nError reading file: %v\n", err)
}

// Count returns the number of content blocks added with AddFile.
func (b *Builder) Count() int64 {
	return b.count.Load()
}

// String returns the assembled report.
func (b *Builder) String() string {
	return b.buf.String()
}
