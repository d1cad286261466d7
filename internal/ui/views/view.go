// Package views renders the picker: tab bar, query input, and the
// sectioned result grid with the focused cell highlighted.
package views

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"iconpick/internal/corpus"
	"iconpick/internal/domain"
	"iconpick/internal/ui/grid"
)

// PickerView is the data the view renders from; it never inspects
// anything outside this snapshot.
type PickerView struct {
	Title     string
	InputView string
	ActiveTab domain.Tab
	Sections  []grid.Section
	Nav       *grid.Navigator
	Preset    string
	Status    string
}

var tabLabels = map[domain.Tab]string{
	domain.TabAll:    "All",
	domain.TabEmoji:  "Emoji",
	domain.TabIcon:   "Icon",
	domain.TabText:   "Text",
	domain.TabAvatar: "Avatar",
}

// Render produces the full picker view
func Render(v PickerView, s *Styles) string {
	var b strings.Builder

	b.WriteString(s.Title.Render(v.Title))
	b.WriteString("\n")
	b.WriteString(renderTabs(v.ActiveTab, s))
	b.WriteString("\n")
	b.WriteString(v.InputView)
	b.WriteString("\n")

	if len(v.Sections) == 0 {
		b.WriteString("\n")
		if v.ActiveTab == domain.TabText {
			b.WriteString(s.Dim.Render("Type some text and press enter to use it as the icon"))
		} else {
			b.WriteString(s.Dim.Render("No matches"))
		}
		b.WriteString("\n")
	}

	for si, section := range v.Sections {
		b.WriteString(s.SectionTitle.Render(section.Title))
		b.WriteString("\n")
		b.WriteString(renderSection(si, section, v.Nav, s))
	}

	if v.Preset != "" {
		b.WriteString(s.Status.Render("Color preset: " + s.Preset.Render(v.Preset)))
		b.WriteString("\n")
	}
	if v.Status != "" {
		b.WriteString(s.Status.Render(v.Status))
		b.WriteString("\n")
	}
	b.WriteString(s.Help.Render("tab/arrows navigate · enter select · shift+tab switch tab · ctrl+o color · esc clear/close"))

	return b.String()
}

func renderTabs(active domain.Tab, s *Styles) string {
	parts := make([]string, 0, len(domain.Tabs()))
	for _, t := range domain.Tabs() {
		label := tabLabels[t]
		if t == active {
			parts = append(parts, s.TabActive.Render(label))
		} else {
			parts = append(parts, s.TabInactive.Render(label))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func renderSection(si int, section grid.Section, nav *grid.Navigator, s *Styles) string {
	var b strings.Builder
	for i, item := range section.Items {
		style := s.Cell
		if nav != nil && nav.IsFocused(si, i) {
			style = s.CellFocused
		}
		b.WriteString(style.Render(cellContent(item)))
		if (i+1)%grid.RowWidth == 0 {
			b.WriteString("\n")
		}
	}
	if len(section.Items)%grid.RowWidth != 0 {
		b.WriteString("\n")
	}
	return b.String()
}

// cellContent renders the short visual form of an item
func cellContent(item domain.IconItem) string {
	switch item.Type {
	case domain.TypeEmoji:
		if e, ok := corpus.EmojiByID(item.Data.Value); ok {
			return e.Char
		}
		return item.Data.Value
	case domain.TypeIcon:
		if ch := corpus.GlyphChar(item.Data.Value); ch != "" {
			styled := lipgloss.NewStyle()
			if item.Data.Color != "" {
				styled = styled.Foreground(lipgloss.Color(item.Data.Color))
			}
			return styled.Render(ch)
		}
		return truncate(item.Data.Value, 3)
	case domain.TypeAvatar:
		style := lipgloss.NewStyle()
		if item.Data.Color != "" {
			style = style.Foreground(lipgloss.Color(item.Data.Color))
		}
		if item.Data.BackgroundColor != "" {
			style = style.Background(lipgloss.Color(item.Data.BackgroundColor))
		}
		return style.Render(truncate(item.Data.Value, 2))
	case domain.TypeText:
		return truncate(item.Data.Value, 3)
	}
	return "?"
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
