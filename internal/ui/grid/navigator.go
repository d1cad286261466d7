// Package grid implements the keyboard focus state machine over the
// picker's sectioned result grid. The navigator is data-driven: it is
// rebuilt from the result sections themselves, never by inspecting
// rendered output.
package grid

import "iconpick/internal/domain"

// InputIndex is the focus index meaning "focus is on the query input"
const InputIndex = -1

// Navigator tracks keyboard focus within the flattened, sentinel-padded
// item list spanning all rendered sections.
type Navigator struct {
	width int
	slots []slot
	index int
}

// NewNavigator creates a navigator with the fixed row width
func NewNavigator() *Navigator {
	return &Navigator{width: RowWidth, index: InputIndex}
}

// Rebuild recomputes the flattened list from the current sections and
// moves focus to the first real item. Called whenever the rendered item
// set changes (query edit, tab switch).
func (n *Navigator) Rebuild(sections []Section) {
	n.slots = n.slots[:0]
	for si := range sections {
		for ii := range sections[si].Items {
			n.slots = append(n.slots, slot{
				item:        &sections[si].Items[ii],
				section:     si,
				sectionItem: ii,
			})
		}
		// Pad the section up to the next multiple of the row width
		for len(n.slots)%n.width != 0 {
			n.slots = append(n.slots, slot{section: si})
		}
	}
	n.FocusFirst()
}

// Len returns the flattened list length including sentinels
func (n *Navigator) Len() int {
	return len(n.slots)
}

// Index returns the current focus position, or InputIndex when focus is
// on the query input
func (n *Navigator) Index() int {
	return n.index
}

// InGrid reports whether focus is currently inside the grid
func (n *Navigator) InGrid() bool {
	return n.index != InputIndex
}

// Current returns the focused item, or nil when focus is on the input
// or the grid is empty
func (n *Navigator) Current() *domain.IconItem {
	if n.index < 0 || n.index >= len(n.slots) {
		return nil
	}
	return n.slots[n.index].item
}

// IsFocused reports whether the given section item holds focus; used by
// the view to highlight the focused cell.
func (n *Navigator) IsFocused(section, sectionItem int) bool {
	cur := n.index
	if cur < 0 || cur >= len(n.slots) {
		return false
	}
	s := n.slots[cur]
	return s.item != nil && s.section == section && s.sectionItem == sectionItem
}

// FocusFirst moves focus to the first real item, or back to the input
// when the grid is empty
func (n *Navigator) FocusFirst() {
	for i, s := range n.slots {
		if s.item != nil {
			n.index = i
			return
		}
	}
	n.index = InputIndex
}

// FocusInput returns focus to the query input
func (n *Navigator) FocusInput() {
	n.index = InputIndex
}

// EnterFromInput moves focus from the query input into the grid.
// Returns false when there is nothing to focus.
func (n *Navigator) EnterFromInput() bool {
	n.FocusFirst()
	return n.index != InputIndex
}

// Move shifts focus one step in the given direction, skipping sentinel
// padding by continuing in the same direction. Crossing either boundary
// of the flattened list returns focus to the query input. Returns true
// while focus remains inside the grid.
func (n *Navigator) Move(dir Direction) bool {
	if n.index == InputIndex {
		return n.EnterFromInput()
	}

	pos := n.index + dir.delta()
	step := 1
	if !dir.forward() {
		step = -1
	}
	for pos >= 0 && pos < len(n.slots) && n.slots[pos].item == nil {
		pos += step
	}

	if pos < 0 || pos >= len(n.slots) {
		n.index = InputIndex
		return false
	}
	n.index = pos
	return true
}
