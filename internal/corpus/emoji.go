package corpus

import (
	_ "embed"
	"encoding/json"
)

//go:embed data/emoji.json
var emojiJSON []byte

// Emoji is one entry of the emoji catalog
type Emoji struct {
	ID       string   `json:"id"`
	Char     string   `json:"char"`
	Name     string   `json:"name"`
	Keywords []string `json:"keywords"`
}

// The emoji catalog is static and preloaded once at startup; unlike the
// glyph corpus there is nothing to derive lazily.
var (
	emojiTable  []Emoji
	emojiByID   map[string]Emoji
	emojiByChar map[string]Emoji
)

func init() {
	if err := json.Unmarshal(emojiJSON, &emojiTable); err != nil {
		panic("corpus: failed to parse embedded emoji catalog: " + err.Error())
	}

	emojiByID = make(map[string]Emoji, len(emojiTable))
	emojiByChar = make(map[string]Emoji, len(emojiTable))
	for _, e := range emojiTable {
		emojiByID[e.ID] = e
		emojiByChar[e.Char] = e
	}
}

// Emojis returns the full emoji catalog in catalog order
func Emojis() []Emoji {
	return emojiTable
}

// EmojiByID looks up an emoji by its catalog id, e.g. "grinning"
func EmojiByID(id string) (Emoji, bool) {
	e, ok := emojiByID[id]
	return e, ok
}

// EmojiByChar looks up an emoji by its literal character
func EmojiByChar(ch string) (Emoji, bool) {
	e, ok := emojiByChar[ch]
	return e, ok
}

// HasEmojiID reports whether id names a catalog entry
func HasEmojiID(id string) bool {
	_, ok := emojiByID[id]
	return ok
}
