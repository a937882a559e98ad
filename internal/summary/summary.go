// Package summary handles display of run results and skipped entries
package summary

import (
	"fmt"
	"io"
	"sort"
	"unicode/utf8"

	"github.com/bethropolis/context-dumper/internal/collector"
)

// Result describes the outcome of one run for the status lines printed
// after the report has been produced.
type Result struct {
	PathType   string // "Directory" or "File"
	OutputFile string // empty when saving failed or was skipped
	Copied     bool
	Report     string
}

// Display prints the end-of-run status lines.
func Display(out io.Writer, res Result) {
	fmt.Fprintf(out, "%s contents processed.\n", res.PathType)
	if res.OutputFile != "" {
		fmt.Fprintf(out, "Output saved to %s\n", res.OutputFile)
	}
	if res.Copied {
		fmt.Fprintln(out, "Output copied to clipboard.")
	}
	fmt.Fprintf(out, "Total size: %d characters\n", utf8.RuneCountInString(res.Report))
}

// DisplaySkipped formats and prints information about skipped entries
func DisplaySkipped(out io.Writer, items []collector.SkippedItem) {
	fmt.Fprintf(out, "--- Skipped Items (%d) ---\n", len(items))
	if len(items) == 0 {
		fmt.Fprintln(out, "No items were skipped.")
	} else {
		// Sort a copy for consistent output; the caller's slice keeps
		// its traversal order.
		sorted := append([]collector.SkippedItem(nil), items...)
		sort.Slice(sorted, func(i, j int) bool {
			return sorted[i].Path < sorted[j].Path
		})
		for _, item := range sorted {
			typeStr := "FILE"
			if item.IsDir {
				typeStr = "DIR " // Add space for alignment
			}
			fmt.Fprintf(out, "Skipped %s: %s [%s]\n", typeStr, item.Path, item.Reason)
		}
	}
	fmt.Fprintln(out, "--- End Skipped Items ---")
}
