package textpage

import (
	"fmt"
	"strings"

	"github.com/tsawler/textpage/text"
)

// Warning describes an appended fragment that was dropped during
// reconstruction. Warnings never stop the rest of the page from being
// reconstructed.
type Warning struct {
	// Index is the position of the fragment in append order
	Index int
	// Text is the fragment's raw text
	Text string
	// Reason explains why the fragment was dropped
	Reason string
}

// String returns a human-readable description of the warning
func (w Warning) String() string {
	return fmt.Sprintf("fragment %d %q: %s", w.Index, w.Text, w.Reason)
}

// FormatWarnings renders warnings one per line
func FormatWarnings(warnings []Warning) string {
	lines := make([]string, len(warnings))
	for i, w := range warnings {
		lines[i] = w.String()
	}
	return strings.Join(lines, "\n")
}

func warningsFrom(rejected []text.Rejection) []Warning {
	if len(rejected) == 0 {
		return nil
	}
	out := make([]Warning, len(rejected))
	for i, r := range rejected {
		out[i] = Warning{Index: r.Index, Text: r.Text, Reason: r.Reason}
	}
	return out
}
