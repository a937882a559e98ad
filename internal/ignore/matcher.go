package ignore

import (
	"fmt"
	"os"
	"path"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/bethropolis/context-dumper/internal/utils"
	"github.com/danwakefield/fnmatch"
)

// Matcher decides whether paths under a fixed base directory are
// excluded by an ordered list of patterns. Patterns are evaluated in
// file order and the first matching non-negated pattern wins.
type Matcher struct {
	baseDir   string // absolute
	patterns  []Pattern
	logger    utils.Logger
	globFlags int
	loaded    bool // true once WithPatterns supplied an explicit list
}

// New creates a Matcher rooted at baseDir. Unless WithPatterns is
// given, the pattern list is loaded from the ignore file at baseDir.
func New(baseDir string, opts ...Option) (*Matcher, error) {
	absBase, err := filepath.Abs(baseDir)
	if err != nil {
		return nil, fmt.Errorf("ignore: failed to get absolute path for baseDir '%s': %w", baseDir, err)
	}

	m := &Matcher{
		baseDir:   absBase,
		logger:    utils.NoopLogger{},
		globFlags: platformGlobFlags(),
	}
	for _, opt := range opts {
		opt(m)
	}

	if !m.loaded {
		m.patterns = Load(absBase, m.logger)
	}
	return m, nil
}

// platformGlobFlags follows the host filesystem's native convention
// for case sensitivity. Case folds on Windows only; this is an
// accepted cross-platform deviation, not something to paper over.
func platformGlobFlags() int {
	if runtime.GOOS == "windows" {
		return fnmatch.FNM_CASEFOLD
	}
	return 0
}

// BaseDir returns the absolute base directory of the matcher.
func (m *Matcher) BaseDir() string {
	return m.baseDir
}

// Patterns returns the ordered pattern list.
func (m *Matcher) Patterns() []Pattern {
	return m.patterns
}

// Ignored reports whether path is excluded. The path is expected to
// exist; whether it names a directory is resolved with a stat call.
func (m *Matcher) Ignored(p string) bool {
	if m == nil || len(m.patterns) == 0 {
		return false
	}
	abs, err := filepath.Abs(p)
	if err != nil {
		return false
	}
	info, err := os.Stat(abs)
	isDir := err == nil && info.IsDir()
	return m.ignoredAbs(abs, isDir)
}

// IgnoredEntry is like Ignored for callers that already know whether
// the candidate is a directory, avoiding a redundant stat during
// traversal.
func (m *Matcher) IgnoredEntry(p string, isDir bool) bool {
	if m == nil || len(m.patterns) == 0 {
		return false
	}
	abs, err := filepath.Abs(p)
	if err != nil {
		return false
	}
	return m.ignoredAbs(abs, isDir)
}

func (m *Matcher) ignoredAbs(abs string, isDir bool) bool {
	rel, err := filepath.Rel(m.baseDir, abs)
	if err != nil {
		// Different volume or otherwise unrelatable; this matcher only
		// judges paths inside its own tree.
		return false
	}
	rel = filepath.ToSlash(rel)

	if rel == "." {
		return false // the root never ignores itself
	}
	if rel == ".." || strings.HasPrefix(rel, "../") {
		return false // outside the base tree (e.g. a symlink escape)
	}

	ignored := m.match(rel, isDir)
	if ignored {
		m.logger.Debug("ignore: %q excluded (isDir: %v)", rel, isDir)
	}
	return ignored
}

// match evaluates the normalized relative path against each pattern in
// file order until one matches.
func (m *Matcher) match(rel string, isDir bool) bool {
	base := path.Base(rel)

	// Directory components of the containing directory, consulted by
	// simple (slash-free) patterns. For "src/build/index.html" these
	// are "src" and "build".
	var parents []string
	if dir := path.Dir(rel); dir != "." {
		parents = strings.Split(dir, "/")
	}

	for _, p := range m.patterns {
		if p.Negated {
			// Negations are parsed but have no un-ignoring effect.
			continue
		}

		switch {
		case p.Anchored:
			if fnmatch.Match(p.body, rel, m.globFlags) {
				if p.DirOnly && !isDir {
					continue // e.g. "/foo/" must not match a file "foo"
				}
				return true
			}
			// The pattern names an ancestor directory at the root,
			// e.g. "/logs/" and candidate "logs/today.txt".
			if strings.HasPrefix(rel, p.body+"/") {
				return true
			}

		case p.HasSlash:
			if fnmatch.Match(p.body, rel, m.globFlags) {
				if p.DirOnly && !isDir && rel == p.body {
					continue // "foo/bar/" must not match a file "foo/bar"
				}
				return true
			}
			if strings.HasPrefix(rel, p.body+"/") {
				return true
			}

		default:
			if fnmatch.Match(p.body, base, m.globFlags) {
				if p.DirOnly && !isDir {
					continue // "build/" must not match a file "build"
				}
				return true
			}
			// A bare name also excludes everything beneath any matching
			// directory component: "build" ignores "src/build/index.html".
			for _, part := range parents {
				if fnmatch.Match(p.body, part, m.globFlags) {
					return true
				}
			}
		}
	}
	return false
}
