package ignore

import "github.com/bethropolis/context-dumper/internal/utils"

// Option functions for configuration
type Option func(*Matcher)

// WithLogger sets the logger used for match tracing and load warnings.
func WithLogger(logger utils.Logger) Option {
	return func(m *Matcher) {
		if logger != nil {
			m.logger = logger
		}
	}
}

// WithPatterns supplies an explicit pattern list instead of loading
// the ignore file from disk.
func WithPatterns(patterns []Pattern) Option {
	return func(m *Matcher) {
		m.patterns = patterns
		m.loaded = true
	}
}
