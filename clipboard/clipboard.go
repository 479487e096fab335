// Package clipboard copies generated content to the system clipboard.
package clipboard

import (
	"github.com/atotto/clipboard"
)

// Write copies text to the system clipboard. Returns an error when no
// clipboard is available (headless environments); callers degrade to
// printing the content instead.
func Write(text string) error {
	return clipboard.WriteAll(text)
}

// Available reports whether a system clipboard can be reached.
func Available() bool {
	return !clipboard.Unsupported
}
