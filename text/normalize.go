package text

import (
	"strings"
	"unicode"

	"github.com/tsawler/textpage/model"
	"golang.org/x/text/unicode/norm"
)

// Rejection reasons reported by Normalize
const (
	ReasonEmptyText   = "empty text"
	ReasonInvalidArea = "invalid area"
	ReasonOutsidePage = "outside page"
)

// Rejection describes a fragment that Normalize filtered out
type Rejection struct {
	// Index is the fragment's position in the input
	Index int
	// Text is the fragment's raw text
	Text string
	// Reason is one of the Reason constants
	Reason string
}

// Normalize turns raw fragments into entities. Text is NFC-normalized and
// stripped of zero-width and control characters; areas with swapped corners
// are reordered and clamped to the page. Fragments that cannot be repaired
// are dropped and reported as rejections instead of failing the whole page.
func Normalize(fragments []Fragment) ([]Entity, []Rejection) {
	entities := make([]Entity, 0, len(fragments))
	var rejected []Rejection

	for i, f := range fragments {
		txt := CleanText(f.Text)
		if txt == "" {
			rejected = append(rejected, Rejection{Index: i, Text: f.Text, Reason: ReasonEmptyText})
			continue
		}

		area := f.Area
		if !area.IsValid() {
			// Swapped corners are repairable, non-finite values are not
			area = model.NewNormalizedRect(area.Left, area.Top, area.Right, area.Bottom)
			if !area.IsValid() {
				rejected = append(rejected, Rejection{Index: i, Text: f.Text, Reason: ReasonInvalidArea})
				continue
			}
		}
		if !area.Intersects(model.PageRect()) {
			rejected = append(rejected, Rejection{Index: i, Text: f.Text, Reason: ReasonOutsidePage})
			continue
		}

		entities = append(entities, NewEntity(txt, area.Clamp()))
	}

	return entities, rejected
}

// CleanText applies NFC normalization and removes invisible zero-width and
// control characters that would break word matching. Whitespace is kept.
func CleanText(s string) string {
	s = norm.NFC.String(s)
	if !strings.ContainsFunc(s, isInvisible) {
		return s
	}

	var sb strings.Builder
	sb.Grow(len(s))
	for _, r := range s {
		if !isInvisible(r) {
			sb.WriteRune(r)
		}
	}
	return sb.String()
}

func isInvisible(r rune) bool {
	switch r {
	case '\u200b', '\u200c', '\u200d', '\u2060', '\ufeff', '\u00ad':
		return true
	}
	return unicode.IsControl(r) && !unicode.IsSpace(r)
}
