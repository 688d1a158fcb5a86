// Package search implements text search over a reconstructed page.
//
// An Index flattens the page's entities in reading order, joining lines with
// a single space, and remembers for every rune which entity produced it.
// Matches are found on that flat text and mapped back to page regions, one
// rect per line of the match.
//
// Searches are resumable: every hit is returned as a Cursor that can be
// passed back to find the next (or previous) occurrence. Repeating the
// search id with a needle that extends the previous one performs an
// incremental search where the current match may grow in place.
//
//	ix := search.NewIndex(result.Entities, result.Lines)
//	hit := ix.Find(search.Query{Needle: "lo", Case: search.CaseInsensitive}, nil)
//	for hit != nil {
//	    fmt.Println(hit.Area())
//	    hit = ix.Find(search.Query{Needle: "lo", Case: search.CaseInsensitive}, hit)
//	}
package search
