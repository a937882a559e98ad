package ignore

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/bethropolis/context-dumper/internal/utils"
)

// IgnoreFileName is the ignore file consulted at the root of a scan.
const IgnoreFileName = ".gitignore"

// Load reads the ignore file at the root of baseDir and parses it into
// an ordered pattern list. An absent file yields an empty list. A read
// failure is reported as a warning and degrades to whatever could be
// parsed, so a broken ignore file never aborts a run.
func Load(baseDir string, log utils.Logger) []Pattern {
	if log == nil {
		log = utils.NoopLogger{}
	}

	path := filepath.Join(baseDir, IgnoreFileName)
	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Warn("ignore: could not read %s: %v", path, err)
		}
		return nil
	}

	// Invalid UTF-8 bytes are replaced rather than treated as fatal.
	text := strings.ToValidUTF8(string(data), "�")
	patterns := ParseLines(strings.Split(text, "\n"))
	log.Debug("ignore: loaded %d patterns from %s", len(patterns), path)
	return patterns
}
