package grid

import "iconpick/internal/domain"

// RowWidth is the fixed column count of the logical grid
const RowWidth = 9

// Direction of a focus move within the grid
type Direction int

const (
	DirectionLeft Direction = iota
	DirectionRight
	DirectionUp
	DirectionDown
)

// delta returns the flat-index offset of one move in this direction
func (d Direction) delta() int {
	switch d {
	case DirectionLeft:
		return -1
	case DirectionRight:
		return 1
	case DirectionUp:
		return -RowWidth
	case DirectionDown:
		return RowWidth
	}
	return 0
}

// forward reports whether the direction travels toward higher indices
func (d Direction) forward() bool {
	return d == DirectionRight || d == DirectionDown
}

// Section is one titled group of selectable items rendered top-to-bottom
type Section struct {
	Title string
	Items []domain.IconItem
}

// slot is one position in the flattened navigation list. A nil item is
// a sentinel: padding that keeps each section's length a multiple of
// RowWidth so row/column arithmetic stays exact across section
// boundaries. Sentinels are never focusable.
type slot struct {
	item        *domain.IconItem
	section     int
	sectionItem int
}
