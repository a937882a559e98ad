// Package clipboard wraps the system clipboard collaborator behind an
// explicit result: callers learn from the return value whether the
// copy happened, instead of probing for a mechanism at runtime.
package clipboard

import (
	"errors"
	"fmt"

	"github.com/atotto/clipboard"
)

// ErrUnavailable is returned when no clipboard mechanism exists on
// this system (on Linux this usually means xclip or xsel is missing).
var ErrUnavailable = errors.New("clipboard: no copy/paste mechanism available (on Linux, install xclip or xsel)")

// Available reports whether a clipboard mechanism exists.
func Available() bool {
	return !clipboard.Unsupported
}

// Copy places text on the system clipboard.
func Copy(text string) error {
	if clipboard.Unsupported {
		return ErrUnavailable
	}
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("clipboard: copy failed: %w", err)
	}
	return nil
}
