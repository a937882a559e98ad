package summary_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/bethropolis/context-dumper/internal/collector"
	"github.com/bethropolis/context-dumper/internal/summary"
	"github.com/stretchr/testify/assert"
)

func TestDisplayStatusLines(t *testing.T) {
	var buf bytes.Buffer
	summary.Display(&buf, summary.Result{
		PathType:   "Directory",
		OutputFile: "context.txt",
		Copied:     true,
		Report:     "héllo", // 5 characters, 6 bytes
	})

	out := buf.String()
	assert.Contains(t, out, "Directory contents processed.\n")
	assert.Contains(t, out, "Output saved to context.txt\n")
	assert.Contains(t, out, "Output copied to clipboard.\n")
	assert.Contains(t, out, "Total size: 5 characters\n")
}

func TestDisplayOmitsFailedCollaborators(t *testing.T) {
	var buf bytes.Buffer
	summary.Display(&buf, summary.Result{PathType: "File"})

	out := buf.String()
	assert.NotContains(t, out, "Output saved to")
	assert.NotContains(t, out, "copied to clipboard")
}

func TestDisplaySkippedDoesNotMutateInput(t *testing.T) {
	items := []collector.SkippedItem{
		{Path: "z/later.txt", Reason: collector.ReasonBinary},
		{Path: "a/first.txt", Reason: collector.ReasonHidden},
	}

	var buf bytes.Buffer
	summary.DisplaySkipped(&buf, items)

	// The caller's traversal order survives the sorted printout.
	assert.Equal(t, "z/later.txt", items[0].Path)
	assert.Equal(t, "a/first.txt", items[1].Path)

	out := buf.String()
	assert.Less(t, strings.Index(out, "a/first.txt"), strings.Index(out, "z/later.txt"))
}

func TestDisplaySkippedEmpty(t *testing.T) {
	var buf bytes.Buffer
	summary.DisplaySkipped(&buf, nil)
	assert.Contains(t, buf.String(), "No items were skipped.")
}
