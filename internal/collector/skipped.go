package collector

// SkipReason clarifies why an entry was left out of the report.
type SkipReason string

const (
	ReasonIgnoredRule SkipReason = "Ignored (Ignore Rule)"
	ReasonHidden      SkipReason = "Skipped (Hidden)"
	ReasonBinary      SkipReason = "Skipped (Binary)"
	ReasonEmpty       SkipReason = "Skipped (Empty)"
	ReasonReadError   SkipReason = "Error (Read Failed)"
	ReasonListError   SkipReason = "Error (List Failed)"
)

// SkippedItem holds information about a skipped path.
type SkippedItem struct {
	Path   string
	Reason SkipReason
	IsDir  bool
}

// tracker records skipped items during one collection run. Collection
// is single-threaded, so a plain slice suffices.
type tracker struct {
	items []SkippedItem
}

func (t *tracker) track(path string, reason SkipReason, isDir bool) {
	t.items = append(t.items, SkippedItem{Path: path, Reason: reason, IsDir: isDir})
}
