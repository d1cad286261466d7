// Package normalize reconciles every historical icon encoding into the
// one canonical domain.IconItem shape. Three generations of stored
// values are still in the wild: bare strings (ambiguous between emoji
// and glyph name), maps tagged with the old vocabulary (the icon type
// used to be tagged "tabler-icon"), and maps with no usable tag at all.
package normalize

import (
	"strings"
	"unicode/utf16"

	"iconpick/internal/domain"
)

// The deprecated tag the icon type carried before it was renamed
const legacyIconTag = "tabler-icon"

// Fallback payload when a legacy map carries neither a usable id nor
// value. Emitting a placeholder icon instead of failing keeps unknown
// future encodings round-tripping.
const unknownValue = "unknown"

// Engine converts raw icon encodings to canonical items. Lookups are
// injected so the engine stays a pure function over its inputs.
type Engine struct {
	hasEmojiID          func(id string) bool
	emojiIDByChar       func(ch string) (string, bool)
	defaultAvatarColors func() (color, background string)
}

// New creates a normalization engine
func New(hasEmojiID func(string) bool, emojiIDByChar func(string) (string, bool), defaultAvatarColors func() (string, string)) *Engine {
	return &Engine{
		hasEmojiID:          hasEmojiID,
		emojiIDByChar:       emojiIDByChar,
		defaultAvatarColors: defaultAvatarColors,
	}
}

// Normalize converts any supported raw encoding into a canonical item.
// A nil result means "no icon"; callers render nothing. The function is
// total and side-effect-free: malformed input degrades, it never fails.
func (e *Engine) Normalize(raw any) *domain.IconItem {
	switch v := raw.(type) {
	case nil:
		return nil
	case domain.IconItem:
		return e.normalizeItem(v)
	case *domain.IconItem:
		if v == nil {
			return nil
		}
		return e.normalizeItem(*v)
	case string:
		return e.classifyString(v)
	case map[string]any:
		return e.normalizeMap(v)
	}
	return nil
}

// normalizeItem passes an already-canonical item through, filling in a
// missing id or label so re-normalization stabilizes.
func (e *Engine) normalizeItem(item domain.IconItem) *domain.IconItem {
	if !item.Type.IsValid() || item.Data.Value == "" {
		return nil
	}
	if item.ID == "" {
		item.ID = domain.ItemID(item.Type, item.Data.Value)
	}
	if item.Label == "" {
		item.Label = item.Data.Value
	}
	if item.Type == domain.TypeAvatar {
		item = e.fillAvatarDefaults(item)
	}
	return &item
}

func (e *Engine) normalizeMap(m map[string]any) *domain.IconItem {
	tag, _ := m["type"].(string)
	if tag == legacyIconTag {
		tag = string(domain.TypeIcon)
	}

	typ := domain.IconType(tag)
	if !typ.IsValid() {
		if tag == "" {
			// No recognizable type: best-effort string classification
			// over the value/id fields, nil when neither is present
			if value := recoverValue(m); value != "" {
				return e.classifyString(value)
			}
			return nil
		}
		// Unrecognized tag: guess from the payload, then fall back to a
		// generic icon so future type tags still round-trip
		if value := recoverValue(m); value != "" {
			if item := e.classifyString(value); item != nil {
				return item
			}
		}
		value := recoverValue(m)
		if value == "" {
			value = unknownValue
		}
		item := domain.NewIconItem(domain.TypeIcon, value)
		return &item
	}

	// Already canonical: known type plus a data payload
	if data, ok := m["data"].(map[string]any); ok {
		return e.fromCanonicalMap(typ, m, data)
	}

	value := recoverValue(m)
	if value == "" {
		return nil
	}

	item := domain.NewIconItem(typ, value)
	if id, ok := m["id"].(string); ok && id != "" {
		item.ID = id
	}
	if label, ok := m["label"].(string); ok && label != "" {
		item.Label = label
	}

	switch typ {
	case domain.TypeIcon:
		if color, ok := m["color"].(string); ok {
			item.Data.Color = color
		}
	case domain.TypeAvatar:
		item = e.fillAvatarDefaults(item)
	}
	return &item
}

func (e *Engine) fromCanonicalMap(typ domain.IconType, m, data map[string]any) *domain.IconItem {
	value, _ := data["value"].(string)
	if value == "" {
		return nil
	}

	item := domain.NewIconItem(typ, value)
	if id, ok := m["id"].(string); ok && id != "" {
		item.ID = id
	}
	if label, ok := m["label"].(string); ok && label != "" {
		item.Label = label
	}
	if color, ok := data["color"].(string); ok {
		item.Data.Color = color
	}
	if bg, ok := data["backgroundColor"].(string); ok {
		item.Data.BackgroundColor = bg
	}
	if typ == domain.TypeAvatar {
		item = e.fillAvatarDefaults(item)
	}
	return &item
}

// classifyString resolves the ambiguity of a bare stored string: emoji
// when the catalog knows it as an id, or when it is a short literal
// emoji glyph the catalog knows by character; glyph icon otherwise.
// Best-effort, not guaranteed: a glyph name that collides with an
// emoji id classifies as emoji.
func (e *Engine) classifyString(s string) *domain.IconItem {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}

	if e.hasEmojiID != nil && e.hasEmojiID(s) {
		item := domain.NewIconItem(domain.TypeEmoji, s)
		return &item
	}

	// A literal emoji character is at most two UTF-16 code units
	if e.emojiIDByChar != nil && len(utf16.Encode([]rune(s))) <= 2 {
		if id, ok := e.emojiIDByChar(s); ok {
			item := domain.NewIconItem(domain.TypeEmoji, id)
			return &item
		}
	}

	item := domain.NewIconItem(domain.TypeIcon, s)
	return &item
}

func (e *Engine) fillAvatarDefaults(item domain.IconItem) domain.IconItem {
	if e.defaultAvatarColors == nil {
		return item
	}
	color, background := e.defaultAvatarColors()
	if item.Data.Color == "" {
		item.Data.Color = color
	}
	if item.Data.BackgroundColor == "" {
		item.Data.BackgroundColor = background
	}
	return item
}

// recoverValue pulls whatever usable payload a legacy map still carries
func recoverValue(m map[string]any) string {
	if v, ok := m["value"].(string); ok && v != "" {
		return v
	}
	if v, ok := m["id"].(string); ok && v != "" {
		return v
	}
	return ""
}
