// Package search dispatches a query across the two corpora and merges
// the per-source hits into one result. The glyph corpus is matched with
// sahilm/fuzzy, the emoji catalog with its own fuzzysearch matcher;
// neither source can fail the other.
package search

import (
	"context"
	"log"
	"sort"
	"strings"

	fuzzysearch "github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/sahilm/fuzzy"

	"iconpick/internal/corpus"
	"iconpick/internal/domain"
)

// Service routes queries to the corpus matchers gated by the active tab
type Service struct {
	glyphMatcher Matcher
	emojiMatcher Matcher
}

// NewService creates a search service wired to the real corpora
func NewService() *Service {
	return &Service{
		glyphMatcher: matchGlyphs,
		emojiMatcher: matchEmojis,
	}
}

// SetGlyphMatcher overrides the glyph corpus matcher
func (s *Service) SetGlyphMatcher(fn Matcher) {
	s.glyphMatcher = fn
}

// SetEmojiMatcher overrides the emoji catalog matcher
func (s *Service) SetEmojiMatcher(fn Matcher) {
	s.emojiMatcher = fn
}

// Search runs the query against the corpora selected by tab. A tab
// fixed to one type never invokes the other corpus's matcher; the text
// and avatar tabs have no corpus and return an empty result. A matcher
// that panics degrades to an empty list for that source only.
func (s *Service) Search(ctx context.Context, query string, tab domain.Tab) Result {
	query = strings.TrimSpace(query)
	if query == "" {
		return Result{}
	}

	var result Result
	if ctx.Err() != nil {
		return result
	}

	if tab == domain.TabAll || tab == domain.TabIcon {
		result.Icons = runSource("glyph", s.glyphMatcher, query)
	}
	if ctx.Err() != nil {
		return result
	}
	if tab == domain.TabAll || tab == domain.TabEmoji {
		result.Emojis = runSource("emoji", s.emojiMatcher, query)
	}
	return result
}

// runSource isolates one corpus matcher so a failure there degrades to
// an empty list instead of failing the whole search
func runSource(name string, matcher Matcher, query string) (items []domain.IconItem) {
	if matcher == nil {
		return nil
	}
	defer func() {
		if r := recover(); r != nil {
			log.Printf("Search source %s failed for %q: %v", name, query, r)
			items = nil
		}
	}()
	return matcher(query)
}

// matchGlyphs fuzzy-matches the query against the lazily-built glyph
// corpus, returning up to GlyphMatchLimit hits in ranking order
func matchGlyphs(query string) []domain.IconItem {
	glyphs := corpus.Glyphs()
	matches := fuzzy.Find(query, corpus.GlyphDisplayNames())

	items := make([]domain.IconItem, 0, min(len(matches), GlyphMatchLimit))
	for i, m := range matches {
		if i >= GlyphMatchLimit {
			break
		}
		items = append(items, domain.NewIconItem(domain.TypeIcon, glyphs[m.Index].Name))
	}
	return items
}

// matchEmojis matches the query against each emoji's id, name and
// keywords, best (lowest distance) first
func matchEmojis(query string) []domain.IconItem {
	emojis := corpus.Emojis()
	targets := make([]string, len(emojis))
	for i, e := range emojis {
		targets[i] = e.ID + " " + e.Name + " " + strings.Join(e.Keywords, " ")
	}

	ranks := fuzzysearch.RankFindNormalizedFold(query, targets)
	sort.Sort(ranks)

	items := make([]domain.IconItem, 0, len(ranks))
	for _, r := range ranks {
		e := emojis[r.OriginalIndex]
		item := domain.NewIconItem(domain.TypeEmoji, e.ID)
		item.Label = e.Name
		items = append(items, item)
	}
	return items
}
