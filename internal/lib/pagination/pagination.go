// Package pagination resolves the optional page / results_per_page query
// parameters into a Window that repositories turn into LIMIT/OFFSET.
//
// The policy:
//   - both absent: every record.
//   - results_per_page only: page 1.
//   - page only: page 1 returns every record, any later page returns nothing.
//   - both: offset (page-1)*results_per_page, limit results_per_page.
//
// The page-only case mirrors the behavior clients already depend on; it is
// asymmetric with the results_per_page-only case and is kept as-is.
package pagination

import "math"

// Params holds the parsed query parameters. Nil means "absent".
type Params struct {
	Page           *int
	ResultsPerPage *int
}

// Window is a resolved slice of an ordered collection.
type Window struct {
	// All selects every record; Offset and Limit are ignored.
	All bool

	// Empty selects nothing; callers can skip the query entirely.
	Empty bool

	Offset int
	Limit  int
}

// Resolve applies the pagination policy. Values are expected to be >= 1;
// validation happens before this point.
func Resolve(p Params) Window {
	switch {
	case p.Page == nil && p.ResultsPerPage == nil:
		return Window{All: true}

	case p.ResultsPerPage == nil:
		if *p.Page <= 1 {
			return Window{All: true}
		}
		return Window{Empty: true}
	}

	page := 1
	if p.Page != nil {
		page = *p.Page
	}
	perPage := *p.ResultsPerPage

	// An offset past math.MaxInt is past the end of any collection.
	if page-1 > math.MaxInt/perPage {
		return Window{Empty: true}
	}

	return Window{
		Offset: (page - 1) * perPage,
		Limit:  perPage,
	}
}

// Apply cuts an already-ordered slice to the window.
func Apply[T any](records []T, w Window) []T {
	switch {
	case w.All:
		return records
	case w.Empty || w.Offset < 0 || w.Limit < 1 || w.Offset >= len(records):
		return records[:0:0]
	}

	end := len(records)
	if w.Limit < end-w.Offset {
		end = w.Offset + w.Limit
	}
	return records[w.Offset:end]
}
