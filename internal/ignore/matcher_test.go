package ignore_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/bethropolis/context-dumper/internal/ignore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, root, rel string) string {
	t.Helper()
	path := filepath.Join(root, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))
	return path
}

func mkDir(t *testing.T, root, rel string) string {
	t.Helper()
	path := filepath.Join(root, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(path, 0o755))
	return path
}

func newMatcher(t *testing.T, base string, lines ...string) *ignore.Matcher {
	t.Helper()
	m, err := ignore.New(base, ignore.WithPatterns(ignore.ParseLines(lines)))
	require.NoError(t, err)
	return m
}

func TestMatcherEmptyPatternsIgnoreNothing(t *testing.T) {
	tmp := t.TempDir()
	file := writeFile(t, tmp, "main.go")

	m := newMatcher(t, tmp)
	assert.False(t, m.Ignored(file))
}

func TestMatcherRootNeverIgnored(t *testing.T) {
	tmp := t.TempDir()

	m := newMatcher(t, tmp, "*")
	assert.False(t, m.Ignored(tmp), "the traversal root must not ignore itself")
}

func TestMatcherOutsideBaseNeverIgnored(t *testing.T) {
	tmp := t.TempDir()
	base := mkDir(t, tmp, "base")
	outside := writeFile(t, tmp, "elsewhere/secret.log")

	m := newMatcher(t, base, "*.log", "*")
	assert.False(t, m.Ignored(outside), "paths outside the base directory are not judged")
}

func TestMatcherGlobOnBasename(t *testing.T) {
	tmp := t.TempDir()
	logFile := writeFile(t, tmp, "debug.log")
	goFile := writeFile(t, tmp, "main.go")
	nested := writeFile(t, tmp, "sub/trace.log")

	m := newMatcher(t, tmp, "*.log")
	assert.True(t, m.Ignored(logFile))
	assert.True(t, m.Ignored(nested), "slash-free globs match at any depth")
	assert.False(t, m.Ignored(goFile))
}

func TestMatcherDirOnlyNeverMatchesPlainFile(t *testing.T) {
	tmp := t.TempDir()
	asFile := writeFile(t, tmp, "build")
	asDir := mkDir(t, tmp, "sub/build")

	m := newMatcher(t, tmp, "build/")
	assert.False(t, m.Ignored(asFile), "directory-only pattern must not match a plain file")
	assert.True(t, m.Ignored(asDir))
}

func TestMatcherSimplePatternMatchesPathComponent(t *testing.T) {
	tmp := t.TempDir()
	inside := writeFile(t, tmp, "a/x/b.txt")
	lookalike := writeFile(t, tmp, "ax/b.txt")

	m := newMatcher(t, tmp, "x")
	assert.True(t, m.Ignored(inside), "component 'x' of the containing directory matches")
	assert.False(t, m.Ignored(lookalike), "'ax' is not the component 'x'")
}

func TestMatcherAnchoredScopedToRoot(t *testing.T) {
	tmp := t.TempDir()
	topLevel := mkDir(t, tmp, "x")
	descendant := writeFile(t, tmp, "x/inner.txt")
	nested := mkDir(t, tmp, "other/x")
	nestedFile := writeFile(t, tmp, "other/x/inner.txt")

	m := newMatcher(t, tmp, "/x")
	assert.True(t, m.Ignored(topLevel))
	assert.True(t, m.Ignored(descendant), "descendants of an anchored directory are ignored")
	assert.False(t, m.Ignored(nested), "anchored patterns do not match below the root")
	assert.False(t, m.Ignored(nestedFile))
}

func TestMatcherAnchoredGlob(t *testing.T) {
	tmp := t.TempDir()
	topLog := writeFile(t, tmp, "build.log")
	nestedLog := writeFile(t, tmp, "sub/build.log")

	m := newMatcher(t, tmp, "/*.log")
	assert.True(t, m.Ignored(topLog))
	// In the fnmatch dialect "*" also spans separators, so the anchored
	// glob reaches nested paths too.
	assert.True(t, m.Ignored(nestedLog))
}

func TestMatcherInternalSlashPattern(t *testing.T) {
	tmp := t.TempDir()
	exact := mkDir(t, tmp, "docs/build")
	child := writeFile(t, tmp, "docs/build/index.html")
	other := writeFile(t, tmp, "src/docs/build.txt")

	m := newMatcher(t, tmp, "docs/build")
	assert.True(t, m.Ignored(exact))
	assert.True(t, m.Ignored(child), "children of a matched directory path are ignored")
	assert.False(t, m.Ignored(other), "patterns with a slash match the whole relative path")
}

func TestMatcherNegationIsInert(t *testing.T) {
	tmp := t.TempDir()
	kept := writeFile(t, tmp, "important.log")
	dropped := writeFile(t, tmp, "debug.log")

	// The negation is parsed but never un-ignores anything.
	m := newMatcher(t, tmp, "*.log", "!important.log")
	assert.True(t, m.Ignored(dropped))
	assert.True(t, m.Ignored(kept), "negation patterns have no un-ignoring effect")

	// A negated pattern on its own ignores nothing either.
	m = newMatcher(t, tmp, "!important.log")
	assert.False(t, m.Ignored(kept))
}

func TestMatcherFirstMatchWins(t *testing.T) {
	tmp := t.TempDir()
	file := writeFile(t, tmp, "notes.txt")

	// Order is preserved from the file; a later pattern cannot retract
	// an earlier match.
	m := newMatcher(t, tmp, "notes.txt", "!notes.txt")
	assert.True(t, m.Ignored(file))
}

func TestMatcherQuestionMarkAndClassGlobs(t *testing.T) {
	tmp := t.TempDir()
	a := writeFile(t, tmp, "a1.tmp")
	b := writeFile(t, tmp, "b2.tmp")
	c := writeFile(t, tmp, "c10.tmp")

	m := newMatcher(t, tmp, "[ab]?.tmp")
	assert.True(t, m.Ignored(a))
	assert.True(t, m.Ignored(b))
	assert.False(t, m.Ignored(c))
}

func TestMatcherLoadsIgnoreFileFromBase(t *testing.T) {
	tmp := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(tmp, ".gitignore"), []byte("*.bin\n"), 0o644))
	bin := writeFile(t, tmp, "data.bin")
	txt := writeFile(t, tmp, "data.txt")

	m, err := ignore.New(tmp)
	require.NoError(t, err)
	assert.True(t, m.Ignored(bin))
	assert.False(t, m.Ignored(txt))
}
