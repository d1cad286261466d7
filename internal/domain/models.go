package domain

import "fmt"

// IconType identifies which kind of visual identifier an IconItem carries
type IconType string

const (
	TypeEmoji  IconType = "emoji"
	TypeIcon   IconType = "icon"
	TypeText   IconType = "text"
	TypeAvatar IconType = "avatar"
)

// IsValid reports whether t is one of the four canonical icon types
func (t IconType) IsValid() bool {
	switch t {
	case TypeEmoji, TypeIcon, TypeText, TypeAvatar:
		return true
	}
	return false
}

// IconData is the semantic payload of an IconItem. Value is the emoji
// key, glyph name, literal text or avatar initials. Color and
// BackgroundColor are only meaningful for icon and avatar types.
type IconData struct {
	Value           string `json:"value"`
	Color           string `json:"color,omitempty"`
	BackgroundColor string `json:"backgroundColor,omitempty"`
}

// IconItem is the canonical representation every raw or legacy icon
// encoding is normalized to before rendering or persistence. Items are
// never mutated in place; applying a color override produces a new item.
type IconItem struct {
	Type  IconType `json:"type"`
	ID    string   `json:"id"`
	Label string   `json:"label,omitempty"`
	Data  IconData `json:"data"`
}

// ItemID derives the stable id for a (type, value) pair. Used as the
// render key and the used-items dedup key.
func ItemID(t IconType, value string) string {
	return fmt.Sprintf("%s-%s", t, value)
}

// NewIconItem builds a canonical item, filling in the derived id and
// defaulting the label to the value.
func NewIconItem(t IconType, value string) IconItem {
	return IconItem{
		Type:  t,
		ID:    ItemID(t, value),
		Label: value,
		Data:  IconData{Value: value},
	}
}

// WithColor returns a copy of the item with the foreground color set
func (i IconItem) WithColor(color string) IconItem {
	i.Data.Color = color
	return i
}

// WithAvatarColors returns a copy with avatar colors set
func (i IconItem) WithAvatarColors(color, background string) IconItem {
	i.Data.Color = color
	i.Data.BackgroundColor = background
	return i
}

// Tab is the user-selected filter determining which corpus a search or
// default listing draws from
type Tab string

const (
	TabAll    Tab = "all"
	TabEmoji  Tab = "emoji"
	TabIcon   Tab = "icon"
	TabText   Tab = "text"
	TabAvatar Tab = "avatar"
)

// Tabs lists the selectable tabs in display order
func Tabs() []Tab {
	return []Tab{TabAll, TabEmoji, TabIcon, TabText, TabAvatar}
}
