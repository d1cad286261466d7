package corpus

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGlyphs_SortedAndDenylisted(t *testing.T) {
	glyphs := Glyphs()
	require.NotEmpty(t, glyphs)

	for i := 1; i < len(glyphs); i++ {
		assert.Less(t, glyphs[i-1].Name, glyphs[i].Name, "corpus must be name-sorted")
	}
	for _, g := range glyphs {
		assert.False(t, glyphDenylist[g.Name], "denylisted glyph %s leaked into the corpus", g.Name)
	}
}

func TestGlyphs_DisplayNamesAligned(t *testing.T) {
	glyphs := Glyphs()
	names := GlyphDisplayNames()
	require.Equal(t, len(glyphs), len(names))

	for i, g := range glyphs {
		assert.Equal(t, strings.ReplaceAll(g.Name, "-", " "), names[i])
	}
}

func TestGlyphByName(t *testing.T) {
	g, ok := GlyphByName("arrow-up")
	require.True(t, ok)
	assert.Equal(t, "arrow up", g.DisplayName)
	assert.NotEmpty(t, g.Codepoint)

	_, ok = GlyphByName("no-such-glyph")
	assert.False(t, ok)
}

func TestGlyphChar(t *testing.T) {
	ch := GlyphChar("arrow-up")
	require.NotEmpty(t, ch)
	assert.Len(t, []rune(ch), 1)

	assert.Empty(t, GlyphChar("no-such-glyph"))
}

func TestEmojis_CatalogLoaded(t *testing.T) {
	emojis := Emojis()
	require.NotEmpty(t, emojis)

	for _, e := range emojis {
		assert.NotEmpty(t, e.ID)
		assert.NotEmpty(t, e.Char)
	}
}

func TestEmojiByID(t *testing.T) {
	e, ok := EmojiByID("grinning")
	require.True(t, ok)
	assert.Equal(t, "😀", e.Char)

	_, ok = EmojiByID("definitely-not-an-emoji")
	assert.False(t, ok)
	assert.True(t, HasEmojiID("grinning"))
	assert.False(t, HasEmojiID(""))
}

func TestEmojiByChar(t *testing.T) {
	e, ok := EmojiByChar("🔥")
	require.True(t, ok)
	assert.Equal(t, "fire", e.ID)

	_, ok = EmojiByChar("x")
	assert.False(t, ok)
}
