package search

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"iconpick/internal/domain"
)

func TestSearch_BlankQuery(t *testing.T) {
	svc := NewService()
	result := svc.Search(context.Background(), "   ", domain.TabAll)
	assert.Empty(t, result.Icons)
	assert.Empty(t, result.Emojis)
}

func TestSearch_GlyphCorpus(t *testing.T) {
	svc := NewService()

	result := svc.Search(context.Background(), "arrow up", domain.TabIcon)
	require.NotEmpty(t, result.Icons)
	assert.LessOrEqual(t, len(result.Icons), GlyphMatchLimit)

	found := false
	for _, item := range result.Icons {
		assert.Equal(t, domain.TypeIcon, item.Type)
		if item.ID == "icon-arrow-up" {
			found = true
		}
	}
	assert.True(t, found, "expected icon-arrow-up in results")
}

func TestSearch_EmojiCatalog(t *testing.T) {
	svc := NewService()

	result := svc.Search(context.Background(), "grin", domain.TabEmoji)
	require.NotEmpty(t, result.Emojis)

	found := false
	for _, item := range result.Emojis {
		assert.Equal(t, domain.TypeEmoji, item.Type)
		if item.ID == "emoji-grinning" {
			found = true
		}
	}
	assert.True(t, found, "expected emoji-grinning in results")
}

func TestSearch_IconTabSkipsEmojiMatcher(t *testing.T) {
	svc := NewService()

	emojiCalls := 0
	svc.SetEmojiMatcher(func(string) []domain.IconItem {
		emojiCalls++
		return nil
	})

	svc.Search(context.Background(), "arrow", domain.TabIcon)
	assert.Zero(t, emojiCalls, "icon tab must never invoke the emoji matcher")
}

func TestSearch_EmojiTabSkipsGlyphMatcher(t *testing.T) {
	svc := NewService()

	glyphCalls := 0
	svc.SetGlyphMatcher(func(string) []domain.IconItem {
		glyphCalls++
		return nil
	})

	svc.Search(context.Background(), "fire", domain.TabEmoji)
	assert.Zero(t, glyphCalls)
}

func TestSearch_AllTabQueriesBoth(t *testing.T) {
	svc := NewService()

	glyphCalls, emojiCalls := 0, 0
	svc.SetGlyphMatcher(func(string) []domain.IconItem {
		glyphCalls++
		return nil
	})
	svc.SetEmojiMatcher(func(string) []domain.IconItem {
		emojiCalls++
		return nil
	})

	svc.Search(context.Background(), "star", domain.TabAll)
	assert.Equal(t, 1, glyphCalls)
	assert.Equal(t, 1, emojiCalls)
}

func TestSearch_TextTabQueriesNeither(t *testing.T) {
	svc := NewService()

	calls := 0
	svc.SetGlyphMatcher(func(string) []domain.IconItem { calls++; return nil })
	svc.SetEmojiMatcher(func(string) []domain.IconItem { calls++; return nil })

	result := svc.Search(context.Background(), "anything", domain.TabText)
	assert.Zero(t, calls)
	assert.Zero(t, result.Total())
}

func TestSearch_SourceFailureIsIsolated(t *testing.T) {
	svc := NewService()

	svc.SetGlyphMatcher(func(string) []domain.IconItem {
		panic("corpus exploded")
	})

	result := svc.Search(context.Background(), "grin", domain.TabAll)
	assert.Empty(t, result.Icons, "failed source degrades to empty")
	assert.NotEmpty(t, result.Emojis, "healthy source is unaffected")
}

func TestSearch_CancelledContext(t *testing.T) {
	svc := NewService()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result := svc.Search(ctx, "arrow", domain.TabAll)
	assert.Zero(t, result.Total())
}

func TestSearch_RankingOrderPreserved(t *testing.T) {
	svc := NewService()

	result := svc.Search(context.Background(), "arrow", domain.TabIcon)
	require.NotEmpty(t, result.Icons)
	// The matcher's best hit comes first; an exact-prefix name should
	// outrank looser fuzzy matches
	assert.Contains(t, result.Icons[0].Data.Value, "arrow")
}
