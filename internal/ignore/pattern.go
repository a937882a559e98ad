// Package ignore implements the .gitignore-style pattern store and
// matcher used to filter directory traversal.
//
// The dialect is deliberately small: blank lines and "#" comments are
// skipped, a trailing "/" restricts a pattern to directories, a
// leading "/" anchors it to the base directory, and globs use fnmatch
// syntax (*, ?, [...]). Negation patterns ("!pattern") are parsed but
// never un-ignore anything; this is a documented limitation, not an
// oversight.
package ignore

import "strings"

// Pattern is a single ignore rule, immutable once parsed.
type Pattern struct {
	// Raw is the line as it appeared in the ignore file, trimmed.
	Raw string

	// Negated marks a leading "!". Negated patterns are recorded but
	// have no un-ignoring effect during matching.
	Negated bool

	// DirOnly marks a trailing "/": the pattern applies to directories.
	DirOnly bool

	// Anchored marks a leading "/": the pattern is scoped to the base
	// directory rather than matchable at any depth.
	Anchored bool

	// HasSlash is true when the stripped pattern still contains a "/",
	// which makes it match against the whole relative path.
	HasSlash bool

	// body is Raw with the marker characters stripped; this is what
	// the glob engine sees.
	body string
}

// ParseLine parses one ignore-file line into a Pattern. The second
// return value is false for blank lines and comments.
func ParseLine(line string) (Pattern, bool) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return Pattern{}, false
	}

	p := Pattern{Raw: line}
	body := line
	if strings.HasPrefix(body, "!") {
		p.Negated = true
		body = body[1:]
	}
	if strings.HasSuffix(body, "/") {
		p.DirOnly = true
		body = body[:len(body)-1]
	}
	if strings.HasPrefix(body, "/") {
		p.Anchored = true
		body = body[1:]
	}
	p.HasSlash = strings.Contains(body, "/")
	p.body = body
	return p, true
}

// ParseLines parses a sequence of ignore-file lines, preserving order.
func ParseLines(lines []string) []Pattern {
	var patterns []Pattern
	for _, line := range lines {
		if p, ok := ParseLine(line); ok {
			patterns = append(patterns, p)
		}
	}
	return patterns
}
