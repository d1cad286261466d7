package search

import "iconpick/internal/domain"

// Result holds the per-source result lists of one search. Each list is
// independently populated and ordered best-first by its own matcher;
// a source that was skipped for the active tab, or that failed, is
// simply empty.
type Result struct {
	Icons  []domain.IconItem
	Emojis []domain.IconItem
}

// Total returns the combined number of hits
func (r Result) Total() int {
	return len(r.Icons) + len(r.Emojis)
}

// Matcher finds ranked matches for a query within one corpus
type Matcher func(query string) []domain.IconItem

// GlyphMatchLimit caps the ranked glyph matches returned per query
const GlyphMatchLimit = 100
